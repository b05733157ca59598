package resolver

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache sizing. Resolutions are cheap to recompute; the cache exists to
// absorb bursts of identical lines during an invoice import.
const (
	defaultCacheSize = 512
	defaultCacheTTL  = 5 * time.Minute
)

// CacheStats exposes hit/miss counters for monitoring.
type CacheStats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Entries int    `json:"entries"`
}

// resolutionCache is an expirable LRU over resolver results. Negative
// results are cached too: a nil *Resolution entry means "known miss".
type resolutionCache struct {
	lru    *expirable.LRU[string, *Resolution]
	hits   atomic.Uint64
	misses atomic.Uint64
}

func newResolutionCache(size int, ttl time.Duration) *resolutionCache {
	return &resolutionCache{
		lru: expirable.NewLRU[string, *Resolution](size, nil, ttl),
	}
}

func (c *resolutionCache) Get(key string) (*Resolution, bool) {
	res, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return res, true
}

func (c *resolutionCache) Set(key string, res *Resolution) {
	c.lru.Add(key, res)
}

// Purge drops every entry. Called on upsert: a new mapping can change any
// fuzzy result, so single-key invalidation would be wrong.
func (c *resolutionCache) Purge() {
	c.lru.Purge()
}

func (c *resolutionCache) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.lru.Len(),
	}
}
