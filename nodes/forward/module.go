// Package forward provides the forward node type: the main opaque-geometry
// pass. It draws into the framebuffer it is handed and passes it on. When a
// shadowmap sink is wired, the pass samples it while shading.
package forward

import (
	"context"
	"fmt"

	"github.com/vk/rendergraph/internal/config"
	"github.com/vk/rendergraph/internal/node"
	"github.com/vk/rendergraph/internal/registry"
	"github.com/vk/rendergraph/internal/resource"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the forward node type.
func (Module) Register(r *registry.Registry) {
	r.RegisterNode("forward", func() node.Handler { return &handler{} })
}

type handler struct{}

func (h *handler) Create(ctx context.Context, n *node.Node, cfg *config.Node) error {
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
	if sm := n.Sink("shadowmap"); sm != nil && sm.Kind != resource.KindTexture {
		return fmt.Errorf("node %q: shadowmap sink must be a texture, is %s", n.Name, sm.Kind)
	}
	return n.SetSourceValue("colourbuffer", in.Source.Value)
}

func (h *handler) Execute(ctx context.Context, n *node.Node, fc *node.FrameContext) error {
	label := n.Name + ".opaque"
	if n.Sink("shadowmap") != nil {
		label = n.Name + ".opaque+shadows"
	}
	return fc.Renderer.Draw(n.Sink("colourbuffer").Source.Value.Framebuffer, label)
}
