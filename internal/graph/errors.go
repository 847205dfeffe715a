package graph

import "errors"

// Construction-time failure classes. Any of them aborts the whole build; no
// partially built graph is ever returned.
var (
	// ErrFactoryNotFound reports a node whose type has no registered factory.
	ErrFactoryNotFound = errors.New("node factory not found")

	// ErrDuplicateNode reports two nodes declared under the same name.
	ErrDuplicateNode = errors.New("duplicate node name")

	// ErrMissingAnchor reports zero or more than one frame_begin/frame_end node.
	ErrMissingAnchor = errors.New("pipeline requires exactly one frame_begin and one frame_end node")

	// ErrMalformedReference reports a sink reference that does not split into
	// "<producer>.<source>".
	ErrMalformedReference = errors.New("malformed source reference")

	// ErrUnresolvedReference reports a reference to a node or source that
	// does not exist.
	ErrUnresolvedReference = errors.New("unresolved source reference")

	// ErrTypeMismatch reports a sink bound to a source of a different
	// resource kind.
	ErrTypeMismatch = errors.New("sink and source resource kinds differ")

	// ErrCycleDetected reports a cycle in the producer/consumer relation.
	ErrCycleDetected = errors.New("dependency cycle detected")
)

// ErrNodeFailed wraps a node's execute error during a frame. The frame is
// aborted; the graph stays valid for the next one.
var ErrNodeFailed = errors.New("node execution failed")
