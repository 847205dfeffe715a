package graph

import (
	"context"
	"fmt"

	"github.com/vk/rendergraph/internal/ctxlog"
	"github.com/vk/rendergraph/internal/node"
	"github.com/vk/rendergraph/internal/renderer"
)

// Setup runs the post-construction lifecycle: Init on every node (so node
// types may inspect their bound sources), then LoadResources to acquire GPU
// resources sized by the now-known bindings. Both walk the execution order.
// The first failure aborts and is returned; the caller should Destroy the
// graph afterwards.
func (g *Graph) Setup(ctx context.Context, r renderer.Renderer) error {
	logger := ctxlog.FromContext(ctx)

	for _, i := range g.Order {
		n := g.Nodes[i]
		init, ok := n.Handler.(node.Initializer)
		if !ok {
			continue
		}
		if err := init.Init(ctx, n); err != nil {
			return fmt.Errorf("initializing node %q: %w", n.Name, err)
		}
	}
	logger.Debug("Setup: initialization complete.", "build_id", g.BuildID)

	for _, i := range g.Order {
		n := g.Nodes[i]
		loader, ok := n.Handler.(node.ResourceLoader)
		if !ok {
			continue
		}
		if err := loader.LoadResources(ctx, n, r); err != nil {
			return fmt.Errorf("loading resources for node %q: %w", n.Name, err)
		}
	}
	logger.Debug("Setup: resource loading complete.", "build_id", g.BuildID, "renderer", r.Name())
	return nil
}

// ExecuteFrame walks the execution order once, invoking each node's execute
// callback. Nodes that report themselves inactive for this frame are
// skipped. The first failure aborts the remaining iteration and is returned;
// already-executed nodes are not rolled back and the graph remains valid for
// the next frame.
func (g *Graph) ExecuteFrame(ctx context.Context, fc *node.FrameContext) error {
	logger := ctxlog.FromContext(ctx)

	for _, i := range g.Order {
		n := g.Nodes[i]
		ex, ok := n.Handler.(node.Executor)
		if !ok {
			continue
		}
		if act, ok := n.Handler.(node.Activatable); ok && !act.Active(n, fc) {
			logger.Debug("Skipping inactive node.", "node", n.Name, "frame", fc.Frame)
			continue
		}
		if err := ex.Execute(ctx, n, fc); err != nil {
			return fmt.Errorf("%w: node %q, frame %d: %v", ErrNodeFailed, n.Name, fc.Frame, err)
		}
	}
	return nil
}

// Destroy tears the graph down, invoking each node's destroy callback once.
// Teardown order carries no dependency constraint and never fails.
func (g *Graph) Destroy(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	for _, n := range g.Nodes {
		if d, ok := n.Handler.(node.Destroyer); ok {
			d.Destroy(ctx, n)
		}
	}
	logger.Debug("Graph destroyed.", "build_id", g.BuildID)
}
