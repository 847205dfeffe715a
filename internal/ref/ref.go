// Package ref parses the source reference strings used by sink
// configuration, of the canonical form "<producer_node>.<source_name>".
package ref

import (
	"fmt"
	"strings"
)

// Ref is a parsed source reference.
type Ref struct {
	// Node is the name of the producer node.
	Node string
	// Source is the name of the source on that node.
	Source string
}

// Parse splits a reference string into its producer and source halves. The
// string must contain exactly one '.' separator with non-empty text on both
// sides; anything else is a configuration error.
func Parse(raw string) (Ref, error) {
	if raw == "" {
		return Ref{}, fmt.Errorf("reference is empty")
	}
	if strings.Count(raw, ".") != 1 {
		return Ref{}, fmt.Errorf("reference %q must have exactly one '.' separator", raw)
	}
	node, source, _ := strings.Cut(raw, ".")
	if node == "" || source == "" {
		return Ref{}, fmt.Errorf("reference %q has an empty segment", raw)
	}
	return Ref{Node: node, Source: source}, nil
}

// String serializes the reference back into its canonical form.
func (r Ref) String() string {
	return r.Node + "." + r.Source
}
