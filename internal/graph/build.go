package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vk/rendergraph/internal/config"
	"github.com/vk/rendergraph/internal/ctxlog"
	"github.com/vk/rendergraph/internal/node"
	"github.com/vk/rendergraph/internal/registry"
)

// Build constructs a complete, validated render graph from a pipeline model.
// It runs the four construction passes in order: node creation, anchor scan,
// sink resolution and topological sort. Any failure tears down the nodes
// created so far and aborts; no partially built graph escapes.
func Build(ctx context.Context, p *config.Pipeline, reg *registry.Registry) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	g := &Graph{
		Name:    p.Name,
		BuildID: uuid.New(),
		byName:  make(map[string]*node.Node, len(p.Nodes)),
	}
	logger.Debug("Build: starting graph construction.", "pipeline", g.Name, "build_id", g.BuildID)

	if err := g.createNodes(ctx, p, reg); err != nil {
		g.teardown(ctx)
		return nil, err
	}
	logger.Debug("Build: node creation complete.", "node_count", len(g.Nodes))

	if err := g.findAnchors(); err != nil {
		g.teardown(ctx)
		return nil, err
	}

	if err := g.resolve(ctx); err != nil {
		g.teardown(ctx)
		return nil, err
	}
	logger.Debug("Build: sink resolution complete.", "edge_count", g.deps.edgeCount())

	if err := g.sortNodes(); err != nil {
		g.teardown(ctx)
		return nil, err
	}
	logger.Debug("Build: graph construction successful.", "order", g.Order)

	return g, nil
}

// createNodes performs the first pass: one node per config entry, in
// declaration order, each populated by its type's handler.
func (g *Graph) createNodes(ctx context.Context, p *config.Pipeline, reg *registry.Registry) error {
	logger := ctxlog.FromContext(ctx)
	for i, nc := range p.Nodes {
		if _, exists := g.byName[nc.Name]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, nc.Name)
		}

		factory, ok := reg.Lookup(nc.Type)
		if !ok {
			return fmt.Errorf("%w: node %q declares type %q (registered: %s)",
				ErrFactoryNotFound, nc.Name, nc.Type, strings.Join(reg.Types(), ", "))
		}

		n := &node.Node{
			Name:    nc.Name,
			Type:    strings.ToLower(nc.Type),
			Index:   i,
			Handler: factory(),
		}
		if err := n.Handler.Create(ctx, n, nc); err != nil {
			return fmt.Errorf("creating node %q: %w", nc.Name, err)
		}

		g.Nodes = append(g.Nodes, n)
		g.byName[n.Name] = n
		logger.Debug("Created node.", "name", n.Name, "type", n.Type, "sources", len(n.Sources), "sinks", len(n.Sinks))
	}
	return nil
}

// findAnchors locates the mandatory frame_begin and frame_end nodes.
func (g *Graph) findAnchors() error {
	for _, n := range g.Nodes {
		switch n.Type {
		case TypeFrameBegin:
			if g.Begin != nil {
				return fmt.Errorf("%w: second %s node %q", ErrMissingAnchor, TypeFrameBegin, n.Name)
			}
			g.Begin = n
		case TypeFrameEnd:
			if g.End != nil {
				return fmt.Errorf("%w: second %s node %q", ErrMissingAnchor, TypeFrameEnd, n.Name)
			}
			g.End = n
		}
	}
	if g.Begin == nil {
		return fmt.Errorf("%w: no %s node", ErrMissingAnchor, TypeFrameBegin)
	}
	if g.End == nil {
		return fmt.Errorf("%w: no %s node", ErrMissingAnchor, TypeFrameEnd)
	}
	return nil
}

// teardown destroys any nodes constructed before a build failure. Teardown
// order is unconstrained.
func (g *Graph) teardown(ctx context.Context) {
	for _, n := range g.Nodes {
		if d, ok := n.Handler.(node.Destroyer); ok {
			d.Destroy(ctx, n)
		}
	}
	g.Nodes = nil
	g.byName = nil
}
