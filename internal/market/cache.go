package market

import (
	"sync"
	"time"
)

// Cache durations per data class. Crypto moves fast and is refreshed
// often; historical series barely change intraday.
const (
	cryptoTTL     = 1 * time.Minute
	stockTTL      = 5 * time.Minute
	indicesTTL    = 5 * time.Minute
	historicalTTL = 30 * time.Minute
)

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// ttlCache is a small in-memory cache with per-entry expiry. It exists
// to absorb the upstream providers' tight rate limits, not to be a
// general cache: entries are only evicted lazily on read.
type ttlCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func newTTLCache() *ttlCache {
	return &ttlCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *ttlCache) get(key string) (any, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.value, true
}

func (c *ttlCache) set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}
