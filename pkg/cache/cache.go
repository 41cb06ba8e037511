// Package cache holds the short-lived full-sheet read used between
// interactions, with explicit invalidation on write.
package cache

import (
	"context"
	"sync"
	"time"

	"tableflip.dev/moodq/pkg/store"
)

// DefaultTTL bounds how stale a cached read may get before the next Get
// reloads from the sheet.
const DefaultTTL = 60 * time.Second

// Loader fetches a fresh full read from the store.
type Loader func(ctx context.Context) (store.Load, error)

// Cache memoizes the last successful load for a TTL. A successful append
// must call Invalidate before the next read so the writer always sees their
// own record.
type Cache struct {
	mu     sync.Mutex
	loader Loader
	ttl    time.Duration

	cached store.Load
	last   time.Time
	valid  bool

	now func() time.Time
}

func New(loader Loader, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		loader: loader,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Get returns the cached load when fresh, otherwise reloads. Failed loads
// are not cached.
func (c *Cache) Get(ctx context.Context) (store.Load, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.now().Sub(c.last) < c.ttl {
		return c.cached, nil
	}

	load, err := c.loader(ctx)
	if err != nil {
		return store.Load{}, err
	}
	c.cached = load
	c.last = c.now()
	c.valid = true
	return load, nil
}

// Invalidate drops the cached read synchronously.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.cached = store.Load{}
}

// LastFetch reports when the cached read was taken; zero when nothing is
// cached.
func (c *Cache) LastFetch() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return time.Time{}
	}
	return c.last
}
