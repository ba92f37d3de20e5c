package cache

import (
	"context"
	"sync"
	"time"
)

// MapCache is an in-memory cache guarded by a mutex, for memoization
// within a single process (spec §6.5): cheap, and gone when the process
// exits.
type MapCache struct {
	mu      sync.Mutex
	entries map[string]mapEntry
}

type mapEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMapCache creates an empty in-memory cache.
func NewMapCache() Cache {
	return &MapCache{entries: make(map[string]mapEntry)}
}

// Get implements Cache.
func (c *MapCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return e.data, true, nil
}

// Set implements Cache.
func (c *MapCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := mapEntry{data: data}
	if ttl != 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	c.entries[key] = e
	return nil
}

// Delete implements Cache.
func (c *MapCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Close implements Cache; MapCache holds no external resources.
func (c *MapCache) Close() error { return nil }

var _ Cache = (*MapCache)(nil)
