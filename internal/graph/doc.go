// Package graph builds and drives the render-pass dependency graph. It
// instantiates one node per configuration entry via the registry, binds
// every sink reference to its producing source, validates the resulting
// dependency relation as acyclic, and computes the deterministic execution
// order walked once per frame.
//
// Construction (Build) is single-threaded and runs once. A built graph is
// immutable; frame execution takes no locks and may be read concurrently.
package graph
