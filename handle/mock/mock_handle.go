/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides mock implementations of the handle interfaces for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/objectops/opmodels"
)

// Call records a single capability invocation on a mock handle.
type Call struct {
	Op      string
	Options *opmodels.Options
}

// Query is a mock implementation of handle.Query[T] for testing
type Query[T any] struct {
	mu        sync.Mutex
	items     []T
	countFunc func(ctx context.Context, opts *opmodels.Options) (int64, error)
	findFunc  func(ctx context.Context, opts *opmodels.Options) ([]T, error)
	firstFunc func(ctx context.Context, opts *opmodels.Options) (*T, error)
	countErr  error
	findErr   error
	firstErr  error
	calls     []Call
}

// NewQuery creates a new mock query handle
func NewQuery[T any]() *Query[T] {
	return &Query[T]{}
}

// WithItems seeds the items returned by the default Find/First/Count behavior
func (m *Query[T]) WithItems(items ...T) *Query[T] {
	m.items = items
	return m
}

// WithCountFunc sets a custom count function for testing
func (m *Query[T]) WithCountFunc(f func(ctx context.Context, opts *opmodels.Options) (int64, error)) *Query[T] {
	m.countFunc = f
	return m
}

// WithFindFunc sets a custom find function for testing
func (m *Query[T]) WithFindFunc(f func(ctx context.Context, opts *opmodels.Options) ([]T, error)) *Query[T] {
	m.findFunc = f
	return m
}

// WithFirstFunc sets a custom first function for testing
func (m *Query[T]) WithFirstFunc(f func(ctx context.Context, opts *opmodels.Options) (*T, error)) *Query[T] {
	m.firstFunc = f
	return m
}

// WithCountError makes Count return an error
func (m *Query[T]) WithCountError(err error) *Query[T] {
	m.countErr = err
	return m
}

// WithFindError makes Find return an error
func (m *Query[T]) WithFindError(err error) *Query[T] {
	m.findErr = err
	return m
}

// WithFirstError makes First return an error
func (m *Query[T]) WithFirstError(err error) *Query[T] {
	m.firstErr = err
	return m
}

// Count returns the number of seeded items, or delegates to the custom function
func (m *Query[T]) Count(ctx context.Context, opts *opmodels.Options) (int64, error) {
	m.record("count", opts)
	if m.countErr != nil {
		return 0, m.countErr
	}
	if m.countFunc != nil {
		return m.countFunc(ctx, opts)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.items)), nil
}

// Find returns a copy of the seeded items, or delegates to the custom function
func (m *Query[T]) Find(ctx context.Context, opts *opmodels.Options) ([]T, error) {
	m.record("find", opts)
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.findFunc != nil {
		return m.findFunc(ctx, opts)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out, nil
}

// First returns the first seeded item, or (nil, nil) when there is none
func (m *Query[T]) First(ctx context.Context, opts *opmodels.Options) (*T, error) {
	m.record("first", opts)
	if m.firstErr != nil {
		return nil, m.firstErr
	}
	if m.firstFunc != nil {
		return m.firstFunc(ctx, opts)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.items) == 0 {
		return nil, nil
	}
	first := m.items[0]
	return &first, nil
}

// Calls returns the recorded capability invocations in order
func (m *Query[T]) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// LastOptions returns the options forwarded by the most recent call, if any
func (m *Query[T]) LastOptions() *opmodels.Options {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return nil
	}
	return m.calls[len(m.calls)-1].Options
}

func (m *Query[T]) record(op string, opts *opmodels.Options) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Op: op, Options: opts})
}

// Record is a mock implementation of handle.Record[*Record[T]] for testing
type Record[T any] struct {
	mu          sync.Mutex
	object      *T
	fetchFunc   func(ctx context.Context, opts *opmodels.Options) (*Record[T], error)
	saveFunc    func(ctx context.Context, opts *opmodels.Options) (*Record[T], error)
	destroyFunc func(ctx context.Context, opts *opmodels.Options) (*Record[T], error)
	fetchErr    error
	saveErr     error
	destroyErr  error
	saved       bool
	destroyed   bool
	calls       []Call
}

// NewRecord creates a new mock record handle wrapping the given object
func NewRecord[T any](object *T) *Record[T] {
	return &Record[T]{object: object}
}

// WithFetchFunc sets a custom fetch function for testing
func (m *Record[T]) WithFetchFunc(f func(ctx context.Context, opts *opmodels.Options) (*Record[T], error)) *Record[T] {
	m.fetchFunc = f
	return m
}

// WithSaveFunc sets a custom save function for testing
func (m *Record[T]) WithSaveFunc(f func(ctx context.Context, opts *opmodels.Options) (*Record[T], error)) *Record[T] {
	m.saveFunc = f
	return m
}

// WithDestroyFunc sets a custom destroy function for testing
func (m *Record[T]) WithDestroyFunc(f func(ctx context.Context, opts *opmodels.Options) (*Record[T], error)) *Record[T] {
	m.destroyFunc = f
	return m
}

// WithFetchError makes Fetch return an error
func (m *Record[T]) WithFetchError(err error) *Record[T] {
	m.fetchErr = err
	return m
}

// WithSaveError makes Save return an error
func (m *Record[T]) WithSaveError(err error) *Record[T] {
	m.saveErr = err
	return m
}

// WithDestroyError makes Destroy return an error
func (m *Record[T]) WithDestroyError(err error) *Record[T] {
	m.destroyErr = err
	return m
}

// Fetch returns the handle itself, or delegates to the custom function
func (m *Record[T]) Fetch(ctx context.Context, opts *opmodels.Options) (*Record[T], error) {
	m.record("fetch", opts)
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, opts)
	}
	return m, nil
}

// Save marks the handle saved and returns it, or delegates to the custom function
func (m *Record[T]) Save(ctx context.Context, opts *opmodels.Options) (*Record[T], error) {
	m.record("save", opts)
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	if m.saveFunc != nil {
		return m.saveFunc(ctx, opts)
	}
	m.mu.Lock()
	m.saved = true
	m.mu.Unlock()
	return m, nil
}

// Destroy marks the handle destroyed and returns it, or delegates to the custom function
func (m *Record[T]) Destroy(ctx context.Context, opts *opmodels.Options) (*Record[T], error) {
	m.record("destroy", opts)
	if m.destroyErr != nil {
		return nil, m.destroyErr
	}
	if m.destroyFunc != nil {
		return m.destroyFunc(ctx, opts)
	}
	m.mu.Lock()
	m.destroyed = true
	m.mu.Unlock()
	return m, nil
}

// Helper methods for testing

// Object returns the wrapped object
func (m *Record[T]) Object() *T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.object
}

// SetObject replaces the wrapped object (for testing)
func (m *Record[T]) SetObject(object *T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.object = object
}

// Saved reports whether the default Save behavior ran
func (m *Record[T]) Saved() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved
}

// Destroyed reports whether the default Destroy behavior ran
func (m *Record[T]) Destroyed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.destroyed
}

// Calls returns the recorded capability invocations in order
func (m *Record[T]) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// LastOptions returns the options forwarded by the most recent call, if any
func (m *Record[T]) LastOptions() *opmodels.Options {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return nil
	}
	return m.calls[len(m.calls)-1].Options
}

func (m *Record[T]) record(op string, opts *opmodels.Options) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Op: op, Options: opts})
}
