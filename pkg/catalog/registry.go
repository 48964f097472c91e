package catalog

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/schemakit/pkg/schema"
)

// Registry maps schema names to nodes. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	nodes map[string]*schema.Node
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]*schema.Node)}
}

// Default returns a new registry holding the built-in schemas.
func Default() *Registry {
	r := NewRegistry()
	for name, fn := range builtins() {
		r.nodes[name] = fn()
	}
	return r
}

func builtins() map[string]func() *schema.Node {
	return map[string]func() *schema.Node{
		"email":      Email,
		"password":   Password,
		"username":   Username,
		"url":        URL,
		"phone":      Phone,
		"address":    Address,
		"product":    Product,
		"order":      Order,
		"pagination": Pagination,
	}
}

// Register adds or replaces the node stored under name.
func (r *Registry) Register(name string, node *schema.Node) error {
	if name == "" {
		return ErrInvalidName
	}
	if node == nil {
		return fmt.Errorf("%w: %s", ErrNilNode, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes[name] = node
	return nil
}

// Get returns a copy of the node registered under name.
func (r *Registry) Get(name string) (*schema.Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	node, ok := r.nodes[name]
	if !ok {
		return nil, false
	}
	return node.Clone(), true
}

// MustGet is Get that panics when name is not registered.
func (r *Registry) MustGet(name string) *schema.Node {
	node, ok := r.Get(name)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrNotFound, name))
	}
	return node
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.nodes))
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}
