// Package resource implements the list-fetch, mutate, refetch cycle shared
// by every feature service.
package resource

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Loader fetches the full list of a resource.
type Loader[T any] func(ctx context.Context) ([]T, error)

// Collection holds the last fetched snapshot of one server-side list. The
// snapshot is only ever replaced wholesale by a refetch, never patched.
type Collection[T any] struct {
	load Loader[T]

	mu      sync.RWMutex
	items   []T
	err     error
	loading bool
	loaded  bool
}

func NewCollection[T any](load Loader[T]) *Collection[T] {
	return &Collection[T]{load: load}
}

// Refresh refetches the list. On failure the previous items are kept and
// the error is also retained for Err.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	items, err := c.load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.err = err
	if err != nil {
		return err
	}
	c.items = items
	c.loaded = true
	return nil
}

// Mutate runs fn and, once it has succeeded, refetches the whole list
// before returning.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	if err := c.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh after update: %w", err)
	}
	return nil
}

// Items returns a copy of the current snapshot.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Find returns the first item matching fn.
func (c *Collection[T]) Find(fn func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if fn(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

func (c *Collection[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Loaded reports whether at least one refresh has succeeded.
func (c *Collection[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}
