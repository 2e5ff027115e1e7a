package memory

import (
	"sync"
	"time"
)

// Default limits matching the storefront's read traffic profile.
const (
	DefaultTTL        = 60 * time.Second
	DefaultMaxEntries = 100
)

type entry struct {
	value    interface{}
	storedAt time.Time
}

// Cache is a mutex-guarded in-memory TTL cache. An entry is valid for
// reads while its age is strictly below the TTL; stale entries are removed
// lazily on read, or in bulk by a sweep triggered when the entry count
// exceeds maxEntries after a Put. There is no write invalidation: a
// catalog write may be invisible to readers for up to TTL.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the entry time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithMaxEntries overrides the sweep high-water mark.
func WithMaxEntries(n int) Option {
	return func(c *Cache) { c.maxEntries = n }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates an empty cache with the default TTL and size limit.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries:    make(map[string]entry),
		ttl:        DefaultTTL,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value for key, or false when the key is absent
// or the entry has expired. Expired entries are deleted on the way out.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Put inserts or overwrites the entry for key, stamping it with the
// current time. Last writer wins. When the insert pushes the entry count
// above the high-water mark every stale entry is swept out.
func (c *Cache) Put(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, storedAt: c.now()}
	if len(c.entries) > c.maxEntries {
		c.sweep()
	}
}

// Len returns the current entry count, stale entries included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// sweep removes every entry whose age has reached the TTL. Caller must
// hold the mutex.
func (c *Cache) sweep() {
	now := c.now()
	for key, e := range c.entries {
		if now.Sub(e.storedAt) >= c.ttl {
			delete(c.entries, key)
		}
	}
}
