package cache

import (
	"context"
	"sync"
	"time"

	"github.com/gti/resource-planner/internal/utilization"
)

type memoryEntry struct {
	payload  utilization.AlertPayload
	storedAt time.Time
}

// MemoryCache is a process-local PayloadCache with a fixed TTL.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	gen     int64
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates a cache whose entries expire ttl after they were
// stored. A nil clock uses time.Now.
func NewMemoryCache(ttl time.Duration, clock func() time.Time) *MemoryCache {
	if clock == nil {
		clock = time.Now
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     clock,
	}
}

func (c *MemoryCache) Generation(_ context.Context) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen, nil
}

func (c *MemoryCache) Get(_ context.Context, key string) (utilization.AlertPayload, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return utilization.AlertPayload{}, false, nil
	}

	if c.ttl > 0 && c.now().Sub(entry.storedAt) >= c.ttl {
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && current.storedAt.Equal(entry.storedAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return utilization.AlertPayload{}, false, nil
	}

	return entry.payload, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, gen int64, payload utilization.AlertPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil
	}
	c.entries[key] = memoryEntry{payload: payload, storedAt: c.now()}
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memoryEntry)
	c.gen++
	return nil
}

// Len reports how many entries are held, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
