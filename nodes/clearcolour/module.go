// Package clearcolour provides the clear_colour node type: a pass-through
// pass that fills its framebuffer with a constant colour at the start of each
// frame.
package clearcolour

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/vk/rendergraph/internal/config"
	"github.com/vk/rendergraph/internal/node"
	"github.com/vk/rendergraph/internal/registry"
	"github.com/vk/rendergraph/internal/resource"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the clear_colour node type.
func (Module) Register(r *registry.Registry) {
	r.RegisterNode("clear_colour", func() node.Handler { return &handler{} })
}

type clearConfig struct {
	Colour []float64 `hcl:"colour,optional"`
}

type handler struct {
	colour [4]float64
}

func (h *handler) Create(ctx context.Context, n *node.Node, cfg *config.Node) error {
	cc := clearConfig{}
	if cfg.Config != nil {
		if diags := gohcl.DecodeBody(cfg.Config, nil, &cc); diags.HasErrors() {
			return fmt.Errorf("decoding clear_colour config: %w", diags)
		}
	}
	switch len(cc.Colour) {
	case 0:
		h.colour = [4]float64{0, 0, 0, 1}
	case 4:
		copy(h.colour[:], cc.Colour)
	default:
		return fmt.Errorf("node %q: colour needs 4 components, got %d", n.Name, len(cc.Colour))
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

func (h *handler) Execute(ctx context.Context, n *node.Node, fc *node.FrameContext) error {
	return fc.Renderer.Clear(n.Sink("colourbuffer").Source.Value.Framebuffer, h.colour)
}
