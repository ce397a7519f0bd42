package model

import (
	"context"
	"sync"
)

// Loader fetches one related record by its key.
type Loader[K comparable, T any] func(ctx context.Context, id K) (*T, error)

// Lazy is a reference to a related record that is only fetched when Get is
// called. The fetch runs at most once and its result, error included, is
// cached.
type Lazy[T any] struct {
	mu    sync.Mutex
	fetch func(ctx context.Context) (*T, error)
	value *T
	err   error
	done  bool
}

func NewLazy[T any](fetch func(ctx context.Context) (*T, error)) *Lazy[T] {
	return &Lazy[T]{fetch: fetch}
}

// Resolved wraps a value that is already in memory.
func Resolved[T any](v *T) *Lazy[T] {
	return &Lazy[T]{value: v, done: true}
}

// Get holds the lock across the fetch so concurrent callers wait for the
// first one instead of fetching again.
func (l *Lazy[T]) Get(ctx context.Context) (*T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.done {
		l.value, l.err = l.fetch(ctx)
		l.done = true
		l.fetch = nil
	}
	return l.value, l.err
}

// Loaded reports whether the reference has been resolved.
func (l *Lazy[T]) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}
