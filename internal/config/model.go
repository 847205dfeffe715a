package config

import "github.com/hashicorp/hcl/v2"

// Pipeline is the parsed declaration of one render graph: an ordered list of
// node entries. Declaration order is preserved because it decides the
// tie-break order of the topological sort.
type Pipeline struct {
	Name  string
	Nodes []*Node
}

// Node is the declaration of a single render node instance.
type Node struct {
	// Type selects the registered node factory, e.g. "clear_colour".
	Type string
	// Name is the unique instance name sinks refer to.
	Name string
	// Config is the node-specific configuration block. It is opaque to the
	// graph core and handed verbatim to the node's constructor. Nil when the
	// declaration carries no config block.
	Config hcl.Body
	// Sinks lists the inputs this node instance consumes.
	Sinks []*Sink
}

// Sink is the declaration of one input of a node.
type Sink struct {
	Name string
	// Kind is the declared resource kind ("texture", "framebuffer",
	// "number"). Empty when the node type has a fixed, self-evident sink
	// kind.
	Kind string
	// SourceRef is the "<producer_node>.<source_name>" reference, verbatim
	// from configuration.
	SourceRef string
}
