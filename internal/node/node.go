// Package node defines the render node data model: nodes with their declared
// sources (outputs) and sinks (inputs), and the handler contract implemented
// by each node type.
package node

import (
	"fmt"

	"github.com/vk/rendergraph/internal/config"
	"github.com/vk/rendergraph/internal/resource"
)

// Source is a named output, produced and owned by exactly one node. A source
// may be referenced by any number of sinks (fan-out).
type Source struct {
	Name string
	Kind resource.Kind
	// Value is the payload handed to consumers. Pass-through nodes fill it
	// in during Init, once their own sinks are bound.
	Value resource.Value
	// Bound becomes true once at least one sink references this source.
	Bound bool
}

// Sink is a named input. It is bound to exactly one source, which it never
// owns.
type Sink struct {
	Name string
	Kind resource.Kind
	// SourceRef is the configured "<producer_node>.<source_name>" reference,
	// kept verbatim for diagnostics.
	SourceRef string
	// Source is set by the resolver. Nil until the graph is resolved.
	Source *Source
}

// Node is one stage of the render pipeline. Nodes are owned by the graph
// that built them.
type Node struct {
	// Name is the unique instance name from configuration.
	Name string
	// Type is the registered node type that produced this node.
	Type string
	// Index is the node's position in declaration order; execution order is
	// expressed as a permutation of indices.
	Index int

	Sources []*Source
	Sinks   []*Sink

	// Handler carries the node type's behavior and private state.
	Handler Handler
}

// AddSource declares a new output on the node. Declaring the same source
// name twice is a programming error in the node type and fails.
func (n *Node) AddSource(name string, kind resource.Kind, value resource.Value) (*Source, error) {
	if n.Source(name) != nil {
		return nil, fmt.Errorf("node %q declares source %q twice", n.Name, name)
	}
	s := &Source{Name: name, Kind: kind, Value: value}
	n.Sources = append(n.Sources, s)
	return s, nil
}

// Source returns the source with the given name, or nil.
func (n *Node) Source(name string) *Source {
	for _, s := range n.Sources {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Sink returns the sink with the given name, or nil.
func (n *Node) Sink(name string) *Sink {
	for _, s := range n.Sinks {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// SetSourceValue replaces the payload of an already declared source. Used by
// pass-through nodes whose output is only known after resolution.
func (n *Node) SetSourceValue(name string, v resource.Value) error {
	s := n.Source(name)
	if s == nil {
		return fmt.Errorf("node %q has no source %q", n.Name, name)
	}
	if s.Kind != v.Kind {
		return fmt.Errorf("node %q source %q is %s, value is %s", n.Name, name, s.Kind, v.Kind)
	}
	s.Value = v
	return nil
}

// DeclareConfiguredSinks records the node's sinks from its configuration
// entry, verbatim. A sink's kind comes from its declared type when present,
// otherwise from the node type's fixed default kind. Node constructors call
// this exactly once.
func (n *Node) DeclareConfiguredSinks(cfg *config.Node, fallback resource.Kind) error {
	for _, sc := range cfg.Sinks {
		if n.Sink(sc.Name) != nil {
			return fmt.Errorf("node %q declares sink %q twice", n.Name, sc.Name)
		}
		kind := fallback
		if sc.Kind != "" {
			parsed, err := resource.ParseKind(sc.Kind)
			if err != nil {
				return fmt.Errorf("sink %q on node %q: %w", sc.Name, n.Name, err)
			}
			kind = parsed
		}
		n.Sinks = append(n.Sinks, &Sink{Name: sc.Name, Kind: kind, SourceRef: sc.SourceRef})
	}
	return nil
}
