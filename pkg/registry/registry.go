// Package registry maps handler names to handler functions.
//
// Pattern cards reference handlers by name; the registry is the lookup table
// that binds those names to executable code. The builtin handlers register
// themselves here, and embedders can add their own before building an engine.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Handler defines the signature for a pattern handler implementation.
// It receives the wildcard bindings captured by the match, in template order,
// and returns the answer lines or an error.
type Handler func(ctx context.Context, bindings []string) ([]string, error)

// Registry manages the available handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register adds a handler to the registry.
// If a handler with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = fn
}

// Resolve looks up a handler by name.
// Returns an error if the handler is not found.
func (r *Registry) Resolve(name string) (Handler, error) {
	r.mu.RLock()
	fn, ok := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("handler not found: %s", name)
	}

	return fn, nil
}

// Names returns the registered handler names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
