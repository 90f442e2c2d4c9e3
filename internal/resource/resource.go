// Package resource tracks asynchronously fetched values by key.
//
// It replaces per-component copies of the fetch-plus-loading-flag pattern with
// one parameterized cache: callers supply a key and a Fetcher, and read back a
// State that is idle, loading, success or error.
package resource

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Status is the lifecycle phase of a resource.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// State is the observable state of one key.
type State[T any] struct {
	Status    Status
	Value     T
	Err       error
	UpdatedAt time.Time
}

// Loading reports whether a fetch is in flight.
func (s State[T]) Loading() bool { return s.Status == StatusLoading }

// Fetcher produces the value for key.
type Fetcher[K comparable, T any] func(ctx context.Context, key K) (T, error)

// Cache holds the latest State per key. It is safe for concurrent use.
type Cache[K comparable, T any] struct {
	name   string
	mu     sync.RWMutex
	states map[K]State[T]
	group  singleflight.Group
	now    func() time.Time
}

// NewCache returns an empty cache. name prefixes singleflight keys and errors.
func NewCache[K comparable, T any](name string) *Cache[K, T] {
	return &Cache[K, T]{
		name:   name,
		states: make(map[K]State[T]),
		now:    time.Now,
	}
}

// Name returns the cache name.
func (c *Cache[K, T]) Name() string {
	return c.name
}

// Get returns the state for key, StatusIdle when never requested.
func (c *Cache[K, T]) Get(key K) State[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.states[key]
}

// Begin marks key as loading. Any previous value is kept so a refetch can
// still show it.
func (c *Cache[K, T]) Begin(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.states[key]
	st.Status = StatusLoading
	st.Err = nil
	c.states[key] = st
}

// Resolve records the outcome of a fetch for key.
func (c *Cache[K, T]) Resolve(key K, value T, err error) State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.states[key]
	st.UpdatedAt = c.now()
	if err != nil {
		st.Status = StatusError
		st.Err = err
	} else {
		st.Status = StatusSuccess
		st.Value = value
		st.Err = nil
	}
	c.states[key] = st
	return st
}

// Invalidate forgets key so the next read is idle.
func (c *Cache[K, T]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.states, key)
}

// Fetch loads key with fetcher and records the result. Concurrent calls for
// the same key share one fetch.
func (c *Cache[K, T]) Fetch(ctx context.Context, key K, fetcher Fetcher[K, T]) State[T] {
	if fetcher == nil {
		var zero T
		return c.Resolve(key, zero, fmt.Errorf("%s: fetcher is nil", c.name))
	}
	c.Begin(key)
	v, err, _ := c.group.Do(fmt.Sprintf("%s/%v", c.name, key), func() (any, error) {
		return fetcher(ctx, key)
	})
	value, _ := v.(T)
	if err != nil {
		err = fmt.Errorf("%s %v: %w", c.name, key, err)
	}
	return c.Resolve(key, value, err)
}

// Delayed wraps fetcher so it waits d before running. The wait ends early
// with the context error when ctx is cancelled.
func Delayed[K comparable, T any](d time.Duration, fetcher Fetcher[K, T]) Fetcher[K, T] {
	return func(ctx context.Context, key K) (T, error) {
		if d > 0 {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				var zero T
				return zero, ctx.Err()
			case <-timer.C:
			}
		}
		return fetcher(ctx, key)
	}
}
