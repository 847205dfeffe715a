package graph

import (
	"github.com/google/uuid"

	"github.com/vk/rendergraph/internal/node"
)

// Reserved node types. Every pipeline must declare exactly one node of each;
// they are pinned to the first and last execution positions.
const (
	TypeFrameBegin = "frame_begin"
	TypeFrameEnd   = "frame_end"
)

// Graph is a fully constructed, validated render graph. It owns its nodes.
// After Build returns, the graph is immutable apart from node-internal state
// touched during the lifecycle calls.
type Graph struct {
	// Name is the pipeline name from configuration.
	Name string
	// BuildID uniquely identifies this construction of the graph in logs
	// and frame traces.
	BuildID uuid.UUID
	// Nodes holds every node, positioned by declaration index.
	Nodes []*node.Node
	// Order is the execution order: a permutation of node indices with the
	// frame_begin node first and the frame_end node last.
	Order []int
	// Begin and End are the anchor nodes.
	Begin *node.Node
	End   *node.Node

	byName map[string]*node.Node
	deps   *depGraph
}

// NodeByName returns the node with the given instance name, or nil.
func (g *Graph) NodeByName(name string) *node.Node {
	return g.byName[name]
}

// Edges returns every recorded dependency edge as {consumer, producer} index
// pairs, in resolution order.
func (g *Graph) Edges() [][2]int {
	return g.deps.edges()
}
