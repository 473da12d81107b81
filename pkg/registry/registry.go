package registry

import (
	"sync"

	"github.com/arthur-debert/roster/pkg/errors"
)

// Registry stores items by unique name and remembers the order they were
// registered in
type Registry[T any] interface {
	// Register appends an item to the registry
	Register(name string, item T) error

	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// Has checks if an item is registered
	Has(name string) bool

	// List returns all registered names in registration order
	List() []string

	// Items returns all registered items in registration order
	Items() []T

	// Count returns the number of registered items
	Count() int
}

type entry[T any] struct {
	name string
	item T
}

// registry is the internal implementation of Registry
type registry[T any] struct {
	mu      sync.RWMutex
	entries []entry[T]
	index   map[string]int
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return &registry[T]{
		index: make(map[string]int),
	}
}

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}

	r.index[name] = len(r.entries)
	r.entries = append(r.entries, entry[T]{name: name, item: item})
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, exists := r.index[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}

	return r.entries[i].item, nil
}

func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.index[name]
	return exists
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

func (r *registry[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, len(r.entries))
	for i, e := range r.entries {
		items[i] = e.item
	}
	return items
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
