package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedResult is a matcher result and the time it was computed.
type cachedResult struct {
	result *Result
	built  time.Time
}

// ResultCache keeps matcher results per dataset id for a fixed TTL.
// Concurrent misses for the same key share a single computation.
type ResultCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cachedResult
	sf      singleflight.Group
	now     func() time.Time
}

// NewResultCache creates a cache. A zero TTL disables caching.
func NewResultCache(ttl time.Duration) *ResultCache {
	return &ResultCache{
		ttl:     ttl,
		entries: make(map[string]cachedResult),
		now:     time.Now,
	}
}

func (c *ResultCache) fresh(key string) (*Result, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().Sub(entry.built) > c.ttl {
		return nil, false
	}
	return entry.result, true
}

// GetOrCompute returns the cached result for key, or runs compute and stores
// its result. The boolean reports whether the result came from the cache.
func (c *ResultCache) GetOrCompute(ctx context.Context, key string, compute func(ctx context.Context) (*Result, error)) (*Result, bool, error) {
	if res, ok := c.fresh(key); ok {
		return res, true, nil
	}

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// another caller may have stored it while we waited
		if res, ok := c.fresh(key); ok {
			return res, nil
		}

		res, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = cachedResult{result: res, built: c.now()}
			c.mu.Unlock()
		}
		return res, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*Result), false, nil
}

// Invalidate drops the entry for key.
func (c *ResultCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
