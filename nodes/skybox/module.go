// Package skybox provides the skybox node type: a pass-through pass drawing
// an environment cubemap behind everything already in the framebuffer. A
// skybox without a configured cubemap stays in the graph but sits out every
// frame.
package skybox

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

// Register registers the skybox node type.
func (Module) Register(r *registry.Registry) {
	r.RegisterNode("skybox", func() node.Handler { return &handler{} })
}

type skyboxConfig struct {
	Cubemap string `hcl:"cubemap,optional"`
	Size    int    `hcl:"size,optional"`
}

type handler struct {
	cubemap *resource.Texture
	rend    renderer.Renderer
}

func (h *handler) Create(ctx context.Context, n *node.Node, cfg *config.Node) error {
	sc := skyboxConfig{Size: 512}
	if cfg.Config != nil {
		if diags := gohcl.DecodeBody(cfg.Config, nil, &sc); diags.HasErrors() {
			return fmt.Errorf("decoding skybox config: %w", diags)
		}
	}
	if sc.Cubemap != "" {
		h.cubemap = &resource.Texture{
			Label:  sc.Cubemap,
			Format: gputypes.TextureFormatRGBA8Unorm,
			Size:   gputypes.Extent3D{Width: uint32(sc.Size), Height: uint32(sc.Size), DepthOrArrayLayers: 6},
			Usage:  gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		}
	}

	if _, err := n.AddSource("colourbuffer", resource.KindFramebuffer, resource.Value{Kind: resource.KindFramebuffer}); err != nil {
		return err
	}
	return n.DeclareConfiguredSinks(cfg, resource.KindFramebuffer)
}

func (h *handler) Init(ctx context.Context, n *node.Node) error {
	in := n.Sink("colourbuffer")
	if in == nil {
		return fmt.Errorf("node %q needs a colourbuffer sink", n.Name)
	}
	return n.SetSourceValue("colourbuffer", in.Source.Value)
}

func (h *handler) LoadResources(ctx context.Context, n *node.Node, r renderer.Renderer) error {
	if h.cubemap == nil {
		return nil
	}
	h.rend = r
	return r.CreateTexture(h.cubemap)
}

// Active reports whether a cubemap is configured; without one there is
// nothing to draw.
func (h *handler) Active(n *node.Node, fc *node.FrameContext) bool {
	return h.cubemap != nil
}

func (h *handler) Execute(ctx context.Context, n *node.Node, fc *node.FrameContext) error {
	return fc.Renderer.Draw(n.Sink("colourbuffer").Source.Value.Framebuffer, n.Name+".skybox")
}

func (h *handler) Destroy(ctx context.Context, n *node.Node) {
	if h.rend != nil {
		h.rend.DestroyTexture(h.cubemap)
	}
}
