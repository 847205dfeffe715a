package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/rendergraph/internal/config"
)

// translatePipeline converts the HCL-specific pipeline schema into the
// agnostic model, preserving declaration order.
func translatePipeline(p *pipelineBlock) (*config.Pipeline, error) {
	out := &config.Pipeline{Name: p.Name}
	for _, n := range p.Nodes {
		translated, err := translateNode(n)
		if err != nil {
			return nil, err
		}
		out.Nodes = append(out.Nodes, translated)
	}
	return out, nil
}

func translateNode(n *nodeBlock) (*config.Node, error) {
	out := &config.Node{
		Type: n.Type,
		Name: n.Name,
	}
	if n.Config != nil {
		out.Config = n.Config.Body
	}
	for _, s := range n.Sinks {
		translated, err := translateSink(s, n.Name)
		if err != nil {
			return nil, err
		}
		out.Sinks = append(out.Sinks, translated)
	}
	return out, nil
}

// translateSink evaluates the sink's source_name, which must be a static,
// non-empty string; references or expressions are not allowed there.
func translateSink(s *sinkBlock, nodeName string) (*config.Sink, error) {
	val, diags := s.SourceRef.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("sink %q on node %q: source_name must be a static string: %w", s.Name, nodeName, diags)
	}
	if val.IsNull() || val.Type() != cty.String {
		return nil, fmt.Errorf("sink %q on node %q: source_name must be a string", s.Name, nodeName)
	}
	return &config.Sink{
		Name:      s.Name,
		Kind:      s.Kind,
		SourceRef: val.AsString(),
	}, nil
}
