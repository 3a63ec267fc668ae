package robotmap

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownMap is returned by Resolve when no factory is registered for a name.
var ErrUnknownMap = errors.New("robotmap: unknown map")

// Factory constructs a robot map.
type Factory[T any] func() (T, error)

// Registry maintains named map factories.
type Registry[T any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{factories: map[string]Factory[T]{}}
}

// Register installs a factory. Returns an error if the name already exists.
func (r *Registry[T]) Register(name string, factory Factory[T]) error {
	if name == "" {
		return fmt.Errorf("robotmap: name is required")
	}
	if factory == nil {
		return fmt.Errorf("robotmap: factory is required for %s", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("robotmap: %s already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// MustRegister panics if registration fails.
func (r *Registry[T]) MustRegister(name string, factory Factory[T]) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Resolve constructs the map registered under name.
func (r *Registry[T]) Resolve(name string) (T, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrUnknownMap, name)
	}
	m, err := factory()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("robotmap: build %s: %w", name, err)
	}
	return m, nil
}

// ResolveOr constructs the map registered under name, or returns fallback
// when the name is unknown or its factory fails.
func (r *Registry[T]) ResolveOr(name string, fallback T) T {
	m, err := r.Resolve(name)
	if err != nil {
		return fallback
	}
	return m
}

// Names returns the registered names, sorted.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
