// Package registry maps node type names to the factories that construct
// their handlers. The registry is an explicit object owned by the
// application, not process-wide state; node type packages contribute to it
// through the Module interface.
package registry

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/vk/rendergraph/internal/node"
)

// Factory constructs a fresh handler for one node instance.
type Factory func() node.Handler

// Module is implemented by packages that contribute node types.
type Module interface {
	Register(r *Registry)
}

// Registry holds the node type factories for a single application instance.
type Registry struct {
	factories map[string]Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// RegisterNode registers a factory under the given type name. Names are
// case-insensitive. Registering a name twice replaces the earlier factory
// and logs a warning.
func (r *Registry) RegisterNode(typeName string, f Factory) {
	key := strings.ToLower(typeName)
	if _, exists := r.factories[key]; exists {
		slog.Warn("Node type already registered, replacing.", "type", key)
	} else {
		slog.Debug("Registering node type.", "type", key)
	}
	r.factories[key] = f
}

// Lookup returns the factory for a type name, case-insensitively.
func (r *Registry) Lookup(typeName string) (Factory, bool) {
	f, ok := r.factories[strings.ToLower(typeName)]
	return f, ok
}

// Types returns the registered type names, sorted, for diagnostics.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
