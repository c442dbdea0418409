package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	items     []T
	total     int64
	expiresAt time.Time
}

// TTLListCache is an in-memory list cache with a fixed TTL per entry.
// Expired entries are evicted lazily on read and opportunistically on write.
// Safe for concurrent use.
type TTLListCache[T any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry[T]
	now     func() time.Time
}

// Option configures a TTLListCache.
type Option[T any] func(*TTLListCache[T])

// WithClock overrides the time source, for tests.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(c *TTLListCache[T]) {
		c.now = now
	}
}

// New creates a list cache whose entries live for ttl.
func New[T any](ttl time.Duration, opts ...Option[T]) *TTLListCache[T] {
	c := &TTLListCache[T]{
		ttl:     ttl,
		entries: make(map[string]entry[T]),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached page for key, if present and not expired.
func (c *TTLListCache[T]) Get(key string) ([]T, int64, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, 0, false
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, 0, false
	}
	return e.items, e.total, true
}

// Set stores a page under key.
func (c *TTLListCache[T]) Set(key string, items []T, total int64) {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = entry[T]{items: items, total: total, expiresAt: now.Add(c.ttl)}
}

// Invalidate drops every entry. Called after any write to the entity.
func (c *TTLListCache[T]) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]entry[T])
	c.mu.Unlock()
}
