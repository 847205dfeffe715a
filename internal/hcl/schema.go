package hcl

import "github.com/hashicorp/hcl/v2"

// configBlock captures the node-specific config body without interpreting it.
type configBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// sinkBlock is a `sink "<name>" {}` block inside a node. source_name is kept
// as an expression so translation can insist on a static string.
type sinkBlock struct {
	Name      string         `hcl:"name,label"`
	Kind      string         `hcl:"type,optional"`
	SourceRef hcl.Expression `hcl:"source_name"`
}

// nodeBlock is a `node "<name>" {}` block inside a pipeline.
type nodeBlock struct {
	Name   string       `hcl:"name,label"`
	Type   string       `hcl:"type"`
	Config *configBlock `hcl:"config,block"`
	Sinks  []*sinkBlock `hcl:"sink,block"`
}

// pipelineBlock is the top-level `pipeline "<name>" {}` block.
type pipelineBlock struct {
	Name  string       `hcl:"name,label"`
	Nodes []*nodeBlock `hcl:"node,block"`
}

// fileRoot decodes all recognised top-level blocks from one file.
type fileRoot struct {
	Pipelines []*pipelineBlock `hcl:"pipeline,block"`
	Remain    hcl.Body         `hcl:",remain"`
}
