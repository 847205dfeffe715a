package graph

import (
	"fmt"
	"slices"
)

// visitState is the DFS three-coloring used for cycle detection.
type visitState uint8

const (
	unvisited visitState = iota
	visiting
	visited
)

// depGraph is the adjacency structure over node indices. Edges point from a
// consumer to the producer it depends on.
type depGraph struct {
	nodes []depNode
	// order preserves edge insertion order for Edges().
	order [][2]int
}

type depNode struct {
	state visitState
	out   []int
}

func newDepGraph(n int) *depGraph {
	return &depGraph{nodes: make([]depNode, n)}
}

// addEdge records that consumer must run after producer. Duplicate edges
// (two sinks of one node referencing the same producer) collapse into one.
func (d *depGraph) addEdge(consumer, producer int) {
	if slices.Contains(d.nodes[consumer].out, producer) {
		return
	}
	d.nodes[consumer].out = append(d.nodes[consumer].out, producer)
	d.order = append(d.order, [2]int{consumer, producer})
}

func (d *depGraph) edges() [][2]int {
	return slices.Clone(d.order)
}

func (d *depGraph) edgeCount() int {
	return len(d.order)
}

// sortNodes computes the execution order: a depth-first post-order walk over
// the consumer->producer edges, which emits every producer before the
// consumers depending on it, followed by pinning the anchor nodes to the
// first and last positions. Ties between unrelated nodes fall back to
// declaration order, which makes the result reproducible for identical
// input.
func (g *Graph) sortNodes() error {
	order := make([]int, 0, len(g.Nodes))

	var visit func(i int) error
	visit = func(i int) error {
		dn := &g.deps.nodes[i]
		dn.state = visiting
		for _, p := range dn.out {
			switch g.deps.nodes[p].state {
			case visiting:
				return fmt.Errorf("%w: between %q and %q", ErrCycleDetected, g.Nodes[i].Name, g.Nodes[p].Name)
			case unvisited:
				if err := visit(p); err != nil {
					return err
				}
			}
		}
		dn.state = visited
		order = append(order, i)
		return nil
	}

	for i := range g.Nodes {
		if g.deps.nodes[i].state == unvisited {
			if err := visit(i); err != nil {
				return err
			}
		}
	}

	// Pin the anchors: frame_begin first, frame_end last, everything else
	// keeping its relative order.
	final := make([]int, 0, len(order))
	final = append(final, g.Begin.Index)
	for _, i := range order {
		if i != g.Begin.Index && i != g.End.Index {
			final = append(final, i)
		}
	}
	final = append(final, g.End.Index)
	g.Order = final
	return nil
}
