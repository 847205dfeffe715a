// Package renderer declares the GPU collaborator surface consumed by render
// nodes. The graph core never touches the GPU itself; nodes acquire and use
// resources exclusively through this interface.
package renderer

import "github.com/vk/rendergraph/internal/resource"

// Renderer is implemented by a rendering backend. All calls happen on the
// single thread driving the frame loop; implementations do not need to be
// concurrency-safe.
type Renderer interface {
	// Name identifies the backend in logs.
	Name() string

	// CreateTexture allocates GPU storage for the descriptor and fills in
	// its Handle.
	CreateTexture(t *resource.Texture) error

	// DestroyTexture releases a texture created by CreateTexture. Safe to
	// call with a texture that was never created.
	DestroyTexture(t *resource.Texture)

	// CreateFramebuffer assembles a render target from the descriptor's
	// attachments and fills in its Handle. Attachments must already exist.
	CreateFramebuffer(f *resource.Framebuffer) error

	// DestroyFramebuffer releases a framebuffer created by CreateFramebuffer.
	// Safe to call with a framebuffer that was never created.
	DestroyFramebuffer(f *resource.Framebuffer)

	// Clear fills the framebuffer's colour attachment with the given RGBA
	// colour and resets its depth attachment, if any.
	Clear(f *resource.Framebuffer, colour [4]float64) error

	// Draw enqueues a render pass into the framebuffer. The label names the
	// pass for diagnostics; the actual geometry is the node's business.
	Draw(f *resource.Framebuffer, label string) error

	// Submit flushes all work enqueued since the previous Submit.
	Submit() error
}
