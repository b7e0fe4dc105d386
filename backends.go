/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package objectops

import (
	"fmt"
	"sync"
)

// Backends is a registry of named backend stores. Applications register
// each backend once at startup and retrieve it wherever handles are built.
// Note that Register and lookup are not generic; use GetBackend for a
// type-asserted retrieval.
type Backends struct {
	mu     sync.RWMutex
	stores map[string]any
}

// NewBackends creates and returns an empty backend registry.
func NewBackends() *Backends {
	return &Backends{
		stores: make(map[string]any),
	}
}

// Register stores the provided backend under the given name.
func (b *Backends) Register(name string, store any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.stores[name]; exists {
		return fmt.Errorf("backend with name %q already registered", name)
	}
	b.stores[name] = store
	return nil
}

// Get retrieves the backend registered under the given name.
// The caller must type-assert the returned value to the appropriate store type.
func (b *Backends) Get(name string) (any, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	store, exists := b.stores[name]
	if !exists {
		return nil, fmt.Errorf("backend with name %q not found", name)
	}
	return store, nil
}

// Remove deletes the backend registered under the given name.
func (b *Backends) Remove(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.stores[name]; !exists {
		return fmt.Errorf("backend with name %q not found", name)
	}
	delete(b.stores, name)
	return nil
}

// List returns all registered backend names.
func (b *Backends) List() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.stores))
	for name := range b.stores {
		names = append(names, name)
	}
	return names
}

// GetBackend retrieves the backend registered under the given name,
// type-asserted to S.
func GetBackend[S any](b *Backends, name string) (S, error) {
	var zero S

	store, err := b.Get(name)
	if err != nil {
		return zero, err
	}

	typed, ok := store.(S)
	if !ok {
		return zero, fmt.Errorf("backend %q has type %T, not %T", name, store, zero)
	}
	return typed, nil
}
