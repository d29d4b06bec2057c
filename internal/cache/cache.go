package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// Cache is a small TTL cache for provider responses. Quote data goes
// stale quickly, so callers pick a short default TTL and can override it
// per entry for slow-moving data like asset listings.
type Cache struct {
	c   *ristretto.Cache
	ttl time.Duration
}

func New(maxCost int64, ttl time.Duration) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{c: c, ttl: ttl}, nil
}

func (c *Cache) Get(key string) (any, bool) { return c.c.Get(key) }

func (c *Cache) Set(key string, val any) { c.c.SetWithTTL(key, val, 1, c.ttl) }

func (c *Cache) SetWithTTL(key string, val any, ttl time.Duration) {
	c.c.SetWithTTL(key, val, 1, ttl)
}

func (c *Cache) Del(key string) { c.c.Del(key) }

// Wait blocks until buffered writes are applied. Only tests need it.
func (c *Cache) Wait() { c.c.Wait() }
