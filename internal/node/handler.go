package node

import (
	"context"

	"github.com/vk/rendergraph/internal/config"
	"github.com/vk/rendergraph/internal/renderer"
)

// FrameContext carries per-frame state through a node's Execute call.
type FrameContext struct {
	// Frame is the zero-based frame counter.
	Frame uint64
	// Delta is the elapsed time since the previous frame, in seconds.
	Delta float64
	// Renderer is the backend the frame is being recorded against.
	Renderer renderer.Renderer
}

// Handler is the contract every node type implements. Create runs once
// during graph construction and must declare the node's sources and sinks;
// bindings happen later, in the resolve phase.
//
// All further lifecycle stages are optional and discovered through the
// capability interfaces below, mirroring the optional callback slots of the
// factory contract.
type Handler interface {
	Create(ctx context.Context, n *Node, cfg *config.Node) error
}

// Initializer runs once after the whole graph is resolved, so it may inspect
// bound sources through the node's sinks.
type Initializer interface {
	Init(ctx context.Context, n *Node) error
}

// ResourceLoader runs once after Init to acquire GPU resources sized by the
// now-known bindings.
type ResourceLoader interface {
	LoadResources(ctx context.Context, n *Node, r renderer.Renderer) error
}

// Executor runs once per frame, in execution order.
type Executor interface {
	Execute(ctx context.Context, n *Node, fc *FrameContext) error
}

// Destroyer runs once at graph teardown. Teardown order is unspecified and
// Destroy must not fail.
type Destroyer interface {
	Destroy(ctx context.Context, n *Node)
}

// Activatable lets a node opt out of a frame. Inactive nodes are skipped,
// not failed.
type Activatable interface {
	Active(n *Node, fc *FrameContext) bool
}
