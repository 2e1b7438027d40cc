package runbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := newCache(time.Minute)

	_, ok := c.get("https://example.com/a.md")
	assert.False(t, ok)

	c.set("https://example.com/a.md", "content-a")

	got, ok := c.get("https://example.com/a.md")
	assert.True(t, ok)
	assert.Equal(t, "content-a", got)
}

func TestCacheExpiry(t *testing.T) {
	c := newCache(10 * time.Millisecond)

	c.set("key", "stale")
	time.Sleep(25 * time.Millisecond)

	_, ok := c.get("key")
	assert.False(t, ok)

	// The expired entry was removed, not just hidden.
	c.mu.RLock()
	_, present := c.entries["key"]
	c.mu.RUnlock()
	assert.False(t, present)
}

func TestCacheSetRefreshes(t *testing.T) {
	c := newCache(30 * time.Millisecond)

	c.set("key", "v1")
	time.Sleep(20 * time.Millisecond)
	c.set("key", "v2")
	time.Sleep(20 * time.Millisecond)

	// 40ms after the first set but only 20ms after the refresh.
	got, ok := c.get("key")
	assert.True(t, ok)
	assert.Equal(t, "v2", got)
}
