package services

import (
	"context"
	"sync"
)

// snapshot holds the latest value of a single server object.
type snapshot[T any] struct {
	load func(ctx context.Context) (*T, error)

	mu  sync.RWMutex
	val *T
}

func newSnapshot[T any](load func(ctx context.Context) (*T, error)) *snapshot[T] {
	return &snapshot[T]{load: load}
}

func (s *snapshot[T]) Refresh(ctx context.Context) error {
	v, err := s.load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.val = v
	s.mu.Unlock()
	return nil
}

// Get returns the last loaded value, or nil.
func (s *snapshot[T]) Get() *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.val
}

func (s *snapshot[T]) Reset() {
	s.mu.Lock()
	s.val = nil
	s.mu.Unlock()
}
