package cache

import (
	"sync"
	"time"
)

// TTLCache is a small in-process cache of (value, fetchedAt) entries with a
// fixed time-to-live. It backs the dashboard's recommendation-count lookups
// so navigating back and forth does not re-rank the whole catalog.
//
// The clock is injectable so expiry is testable without sleeping.
type TTLCache[V any] struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time
	m   map[string]ttlEntry[V]
}

type ttlEntry[V any] struct {
	value     V
	fetchedAt time.Time
}

// NewTTLCache returns a cache whose entries expire ttl after being set.
// A nil now defaults to time.Now.
func NewTTLCache[V any](ttl time.Duration, now func() time.Time) *TTLCache[V] {
	if now == nil {
		now = time.Now
	}
	return &TTLCache[V]{
		ttl: ttl,
		now: now,
		m:   make(map[string]ttlEntry[V]),
	}
}

// Get returns the cached value for key if it exists and has not expired.
// Expired entries are removed on access.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.m[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().Sub(e.fetchedAt) >= c.ttl {
		delete(c.m, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, stamped with the current time.
func (c *TTLCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = ttlEntry[V]{value: value, fetchedAt: c.now()}
}

// Invalidate drops key immediately, e.g. after the underlying profile
// changes.
func (c *TTLCache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
}
