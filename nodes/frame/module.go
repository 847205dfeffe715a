// Package frame provides the two mandatory anchor node types: frame_begin,
// which owns the per-frame render target, and frame_end, which submits the
// finished frame.
package frame

import (
	"context"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/vk/rendergraph/internal/config"
	"github.com/vk/rendergraph/internal/graph"
	"github.com/vk/rendergraph/internal/node"
	"github.com/vk/rendergraph/internal/registry"
	"github.com/vk/rendergraph/internal/renderer"
	"github.com/vk/rendergraph/internal/resource"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers both anchor node types.
func (Module) Register(r *registry.Registry) {
	r.RegisterNode(graph.TypeFrameBegin, func() node.Handler { return &beginHandler{} })
	r.RegisterNode(graph.TypeFrameEnd, func() node.Handler { return &endHandler{} })
}

// beginConfig is the optional config block of a frame_begin node.
type beginConfig struct {
	Width  int    `hcl:"width,optional"`
	Height int    `hcl:"height,optional"`
	Format string `hcl:"format,optional"`
}

// beginHandler owns the frame's backbuffer: a colour+depth framebuffer
// published as the "colourbuffer" source, with the depth attachment also
// exposed separately as "depthbuffer".
type beginHandler struct {
	target *resource.Framebuffer
	rend   renderer.Renderer
}

func (h *beginHandler) Create(ctx context.Context, n *node.Node, cfg *config.Node) error {
	bc := beginConfig{Width: 1280, Height: 720, Format: "rgba8"}
	if cfg.Config != nil {
		if diags := gohcl.DecodeBody(cfg.Config, nil, &bc); diags.HasErrors() {
			return fmt.Errorf("decoding frame_begin config: %w", diags)
		}
	}
	format, err := parseFormat(bc.Format)
	if err != nil {
		return err
	}

	size := gputypes.Extent3D{Width: uint32(bc.Width), Height: uint32(bc.Height), DepthOrArrayLayers: 1}
	colour := &resource.Texture{
		Label:  n.Name + ".colour",
		Format: format,
		Size:   size,
		Usage:  gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding,
	}
	depth := &resource.Texture{
		Label:  n.Name + ".depth",
		Format: gputypes.TextureFormatDepth24PlusStencil8,
		Size:   size,
		Usage:  gputypes.TextureUsageRenderAttachment,
	}
	h.target = &resource.Framebuffer{Label: n.Name, Color: colour, Depth: depth}

	if _, err := n.AddSource("colourbuffer", resource.KindFramebuffer, resource.FramebufferValue(h.target)); err != nil {
		return err
	}
	if _, err := n.AddSource("depthbuffer", resource.KindTexture, resource.TextureValue(depth)); err != nil {
		return err
	}
	return n.DeclareConfiguredSinks(cfg, resource.KindFramebuffer)
}

func (h *beginHandler) LoadResources(ctx context.Context, n *node.Node, r renderer.Renderer) error {
	// Remember the renderer before creating anything so Destroy can release
	// whatever a partially failed load left behind.
	h.rend = r
	if err := r.CreateTexture(h.target.Color); err != nil {
		return err
	}
	if err := r.CreateTexture(h.target.Depth); err != nil {
		return err
	}
	return r.CreateFramebuffer(h.target)
}

func (h *beginHandler) Destroy(ctx context.Context, n *node.Node) {
	if h.rend == nil {
		return
	}
	h.rend.DestroyFramebuffer(h.target)
	h.rend.DestroyTexture(h.target.Depth)
	h.rend.DestroyTexture(h.target.Color)
}

// endHandler consumes the final framebuffer and submits the frame.
type endHandler struct{}

func (h *endHandler) Create(ctx context.Context, n *node.Node, cfg *config.Node) error {
	return n.DeclareConfiguredSinks(cfg, resource.KindFramebuffer)
}

func (h *endHandler) Execute(ctx context.Context, n *node.Node, fc *node.FrameContext) error {
	return fc.Renderer.Submit()
}

func parseFormat(s string) (gputypes.TextureFormat, error) {
	switch s {
	case "rgba8":
		return gputypes.TextureFormatRGBA8Unorm, nil
	case "bgra8":
		return gputypes.TextureFormatBGRA8Unorm, nil
	default:
		return gputypes.TextureFormatUndefined, fmt.Errorf("unknown backbuffer format %q (want rgba8 or bgra8)", s)
	}
}
