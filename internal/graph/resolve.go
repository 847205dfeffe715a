package graph

import (
	"context"
	"fmt"

	"github.com/vk/rendergraph/internal/ctxlog"
	"github.com/vk/rendergraph/internal/ref"
)

// resolve binds every sink of every node to its producing source and records
// the consumer->producer edges of the dependency graph. The result does not
// depend on visitation order; nodes and sinks are walked in declaration
// order anyway so diagnostics are stable.
func (g *Graph) resolve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	g.deps = newDepGraph(len(g.Nodes))

	for _, n := range g.Nodes {
		for _, s := range n.Sinks {
			r, err := ref.Parse(s.SourceRef)
			if err != nil {
				return fmt.Errorf("%w: sink %q on node %q: %v", ErrMalformedReference, s.Name, n.Name, err)
			}

			producer, ok := g.byName[r.Node]
			if !ok {
				return fmt.Errorf("%w: sink %q on node %q names unknown node %q",
					ErrUnresolvedReference, s.Name, n.Name, r.Node)
			}

			src := producer.Source(r.Source)
			if src == nil {
				return fmt.Errorf("%w: sink %q on node %q names unknown source %q on node %q",
					ErrUnresolvedReference, s.Name, n.Name, r.Source, r.Node)
			}

			if src.Kind != s.Kind {
				return fmt.Errorf("%w: sink %q on node %q is %s, source %q is %s",
					ErrTypeMismatch, s.Name, n.Name, s.Kind, s.SourceRef, src.Kind)
			}

			s.Source = src
			src.Bound = true
			g.deps.addEdge(n.Index, producer.Index)
			logger.Debug("Bound sink.", "node", n.Name, "sink", s.Name, "source", s.SourceRef)
		}
	}
	return nil
}
