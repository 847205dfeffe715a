// Package resource defines the resource vocabulary exchanged between render
// nodes: the kind enum used for sink/source type checking and the GPU-facing
// descriptors carried as source values.
package resource

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// Kind classifies what a source produces and a sink expects. A sink may only
// bind to a source of the identical kind.
type Kind int

const (
	// KindTexture is a single GPU texture (colour, depth or shadow map).
	KindTexture Kind = iota
	// KindFramebuffer is a render target composed of colour and depth attachments.
	KindFramebuffer
	// KindNumber is a plain scalar parameter (e.g. a shadow bias).
	KindNumber
)

// String returns the configuration-file spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindTexture:
		return "texture"
	case KindFramebuffer:
		return "framebuffer"
	case KindNumber:
		return "number"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a configuration string into a Kind. Matching is
// case-insensitive to mirror how node type names are looked up.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "texture":
		return KindTexture, nil
	case "framebuffer":
		return KindFramebuffer, nil
	case "number":
		return KindNumber, nil
	default:
		return 0, fmt.Errorf("unknown resource kind %q", s)
	}
}

// Texture describes one GPU texture. Handle is assigned by the Renderer when
// the texture is created and is opaque to the graph core.
type Texture struct {
	Label  string
	Format gputypes.TextureFormat
	Size   gputypes.Extent3D
	Usage  gputypes.TextureUsage
	Handle any
}

// Framebuffer is a render target: a colour attachment plus an optional depth
// attachment. Handle is assigned by the Renderer.
type Framebuffer struct {
	Label  string
	Color  *Texture
	Depth  *Texture
	Handle any
}

// Value is the tagged union carried by a source. Exactly the field selected
// by Kind is meaningful.
type Value struct {
	Kind        Kind
	Texture     *Texture
	Framebuffer *Framebuffer
	Number      float64
}

// TextureValue wraps a texture descriptor as a source value.
func TextureValue(t *Texture) Value {
	return Value{Kind: KindTexture, Texture: t}
}

// FramebufferValue wraps a framebuffer descriptor as a source value.
func FramebufferValue(f *Framebuffer) Value {
	return Value{Kind: KindFramebuffer, Framebuffer: f}
}

// NumberValue wraps a scalar as a source value.
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Number: n}
}
