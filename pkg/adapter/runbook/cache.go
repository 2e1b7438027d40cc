package runbook

import (
	"sync"
	"time"
)

type cacheEntry struct {
	content  string
	storedAt time.Time
}

// cache holds fetched runbook content keyed by download URL. Expired
// entries are removed lazily on read; there is no sweeper goroutine.
type cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *cache) get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}
	if time.Since(entry.storedAt) > c.ttl {
		// Re-check under the write lock: a concurrent set may have
		// refreshed the entry since the read lock was dropped.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.storedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return "", false
	}

	return entry.content, true
}

func (c *cache) set(key, content string) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{content: content, storedAt: time.Now()}
	c.mu.Unlock()
}
