package renderer

import "github.com/vk/rendergraph/internal/resource"

// Null is a no-op Renderer that only counts calls. It backs the CLI's
// validate mode and the test suite, the same role a software fallback plays
// for a GPU backend.
type Null struct {
	TexturesCreated     int
	TexturesDestroyed   int
	FramebuffersCreated int
	Clears              int
	Draws               int
	Submits             int

	// DrawLabels records every Draw's pass label, in call order.
	DrawLabels []string

	nextHandle int
}

// NewNull creates a no-op renderer.
func NewNull() *Null {
	return &Null{}
}

// Name implements Renderer.
func (n *Null) Name() string { return "null" }

// CreateTexture implements Renderer. It assigns a fake monotonically
// increasing handle so nodes can observe that creation happened.
func (n *Null) CreateTexture(t *resource.Texture) error {
	n.TexturesCreated++
	n.nextHandle++
	t.Handle = n.nextHandle
	return nil
}

// DestroyTexture implements Renderer.
func (n *Null) DestroyTexture(t *resource.Texture) {
	if t == nil || t.Handle == nil {
		return
	}
	n.TexturesDestroyed++
	t.Handle = nil
}

// CreateFramebuffer implements Renderer.
func (n *Null) CreateFramebuffer(f *resource.Framebuffer) error {
	n.FramebuffersCreated++
	n.nextHandle++
	f.Handle = n.nextHandle
	return nil
}

// DestroyFramebuffer implements Renderer.
func (n *Null) DestroyFramebuffer(f *resource.Framebuffer) {
	if f == nil || f.Handle == nil {
		return
	}
	f.Handle = nil
}

// Clear implements Renderer.
func (n *Null) Clear(f *resource.Framebuffer, colour [4]float64) error {
	n.Clears++
	return nil
}

// Draw implements Renderer.
func (n *Null) Draw(f *resource.Framebuffer, label string) error {
	n.Draws++
	n.DrawLabels = append(n.DrawLabels, label)
	return nil
}

// Submit implements Renderer.
func (n *Null) Submit() error {
	n.Submits++
	return nil
}
