// Package shadow provides the shadow node type: a depth-only pass rendering
// the scene from the light's point of view into a shadow map. It produces a
// "shadowmap" texture source plus a "bias" number source for consumers that
// sample it.
package shadow

import (
	"context"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/vk/rendergraph/internal/config"
	"github.com/vk/rendergraph/internal/node"
	"github.com/vk/rendergraph/internal/registry"
	"github.com/vk/rendergraph/internal/renderer"
	"github.com/vk/rendergraph/internal/resource"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the shadow node type.
func (Module) Register(r *registry.Registry) {
	r.RegisterNode("shadow", func() node.Handler { return &handler{} })
}

type shadowConfig struct {
	Resolution int     `hcl:"resolution,optional"`
	Bias       float64 `hcl:"bias,optional"`
}

type handler struct {
	// target is the pass's private depth-only render target wrapping the
	// published shadowmap texture.
	target *resource.Framebuffer
	rend   renderer.Renderer
}

func (h *handler) Create(ctx context.Context, n *node.Node, cfg *config.Node) error {
	sc := shadowConfig{Resolution: 1024, Bias: 0.005}
	if cfg.Config != nil {
		if diags := gohcl.DecodeBody(cfg.Config, nil, &sc); diags.HasErrors() {
			return fmt.Errorf("decoding shadow config: %w", diags)
		}
	}
	if sc.Resolution <= 0 {
		return fmt.Errorf("node %q: resolution must be positive, got %d", n.Name, sc.Resolution)
	}

	shadowmap := &resource.Texture{
		Label:  n.Name + ".shadowmap",
		Format: gputypes.TextureFormatDepth24PlusStencil8,
		Size:   gputypes.Extent3D{Width: uint32(sc.Resolution), Height: uint32(sc.Resolution), DepthOrArrayLayers: 1},
		Usage:  gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding,
	}
	h.target = &resource.Framebuffer{Label: n.Name, Depth: shadowmap}

	if _, err := n.AddSource("shadowmap", resource.KindTexture, resource.TextureValue(shadowmap)); err != nil {
		return err
	}
	if _, err := n.AddSource("bias", resource.KindNumber, resource.NumberValue(sc.Bias)); err != nil {
		return err
	}
	return n.DeclareConfiguredSinks(cfg, resource.KindTexture)
}

func (h *handler) LoadResources(ctx context.Context, n *node.Node, r renderer.Renderer) error {
	// Remember the renderer before creating anything so Destroy can release
	// whatever a partially failed load left behind.
	h.rend = r
	if err := r.CreateTexture(h.target.Depth); err != nil {
		return err
	}
	return r.CreateFramebuffer(h.target)
}

func (h *handler) Execute(ctx context.Context, n *node.Node, fc *node.FrameContext) error {
	if err := fc.Renderer.Clear(h.target, [4]float64{0, 0, 0, 0}); err != nil {
		return err
	}
	return fc.Renderer.Draw(h.target, n.Name+".depth")
}

func (h *handler) Destroy(ctx context.Context, n *node.Node) {
	if h.rend == nil {
		return
	}
	h.rend.DestroyFramebuffer(h.target)
	h.rend.DestroyTexture(h.target.Depth)
}
