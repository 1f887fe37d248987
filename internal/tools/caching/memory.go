package caching

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

type memoryCache struct {
	entries map[string]memoryEntry
	now     func() time.Time
	sync.Mutex
}

func NewMemoryCache() *Cacher {
	return &Cacher{
		engine: newMemoryEngine(time.Now),
	}
}

func newMemoryEngine(now func() time.Time) *memoryCache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

func (c *memoryCache) Store(ctx context.Context, key string, value any, ttl time.Duration) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("memory cache stores []byte values, got %T", value)
	}

	c.Lock()
	c.entries[key] = memoryEntry{
		value:     bytes,
		expiresAt: c.now().Add(ttl),
	}
	c.Unlock()

	return nil
}

func (c *memoryCache) Fetch(ctx context.Context, key string) ([]byte, error) {
	c.Lock()
	defer c.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, nil
	}

	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, key)
		return nil, nil
	}

	return entry.value, nil
}
