package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// entry holds one built value and when it was built.
type entry[T any] struct {
	value T
	built time.Time
	ttl   time.Duration
}

func (e *entry[T]) expired(now time.Time) bool {
	if e.ttl <= 0 {
		return true // No caching
	}
	return now.Sub(e.built) > e.ttl
}

// Cache holds values built from snapshots, keyed by snapshot key.
// Concurrent misses for the same key share a single build.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]*entry[T]
	sf      singleflight.Group
	now     func() time.Time
}

// NewCache creates an empty cache.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]*entry[T]),
		now:     time.Now,
	}
}

// GetOrBuild returns the value cached under key, or builds and stores a new one
// if it doesn't exist or has expired. A ttl of zero disables caching.
func (c *Cache[T]) GetOrBuild(ctx context.Context, key string, ttl time.Duration, build func(ctx context.Context) (T, error)) (T, error) {
	if v, ok := c.fresh(key); ok {
		return v, nil
	}

	result, err, _ := c.sf.Do(key, func() (any, error) {
		// Double-check after acquiring the singleflight slot
		if v, ok := c.fresh(key); ok {
			return v, nil
		}

		v, err := build(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = &entry[T]{value: v, built: c.now(), ttl: ttl}
		c.mu.Unlock()

		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result.(T), nil
}

// Invalidate removes the value cached under key.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Cache[T]) fresh(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && !e.expired(c.now()) {
		return e.value, true
	}
	var zero T
	return zero, false
}
