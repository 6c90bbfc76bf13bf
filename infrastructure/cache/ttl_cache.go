package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is the fixed expiry window of every cache entry.
const DefaultTTL = 20 * time.Minute

type entry struct {
	value    []byte
	storedAt time.Time
}

// TTLCache is an in-memory store safe for concurrent use.
// Entries older than the TTL are evicted lazily when their key is looked up.
type TTLCache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a TTLCache.
type Option func(*TTLCache)

// WithClock replaces time.Now, mainly for freshness tests.
func WithClock(now func() time.Time) Option {
	return func(c *TTLCache) { c.now = now }
}

// NewTTLCache creates an empty cache whose entries expire after ttl.
func NewTTLCache(ttl time.Duration, opts ...Option) *TTLCache {
	c := &TTLCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the stored value, or false when the key is unknown or expired.
func (c *TTLCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set overwrites the entry for key, stamping it with the current time.
func (c *TTLCache) Set(_ context.Context, key string, value []byte) {
	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	c.entries[key] = entry{value: stored, storedAt: c.now()}
	c.mu.Unlock()
}

// Delete removes a single key.
func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear removes all entries.
func (c *TTLCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// Len returns the number of stored entries, including expired ones not yet looked up.
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
