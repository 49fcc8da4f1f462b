package keyframe

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache memoises baked tracks by key.
type Cache struct {
	tracks *cache.Cache
}

// NewCache keeps tracks for ttl. A non-positive ttl keeps them until
// Flush.
func NewCache(ttl time.Duration) *Cache {
	cleanup := ttl * 2
	if ttl <= 0 {
		ttl = cache.NoExpiration
		cleanup = 0
	}
	return &Cache{tracks: cache.New(ttl, cleanup)}
}

func (c *Cache) Get(key string) (*Track, bool) {
	v, ok := c.tracks.Get(key)
	if !ok {
		return nil, false
	}
	t, ok := v.(*Track)
	return t, ok
}

func (c *Cache) Set(key string, t *Track) {
	c.tracks.Set(key, t, cache.DefaultExpiration)
}

// GetOrBake returns the cached track for key, or bakes and caches it.
// Tracks that fail to bake are not cached.
func (c *Cache) GetOrBake(key string, bake func() (*Track, error)) (*Track, error) {
	if t, ok := c.Get(key); ok {
		return t, nil
	}
	t, err := bake()
	if err != nil {
		return t, err
	}
	c.Set(key, t)
	return t, nil
}

func (c *Cache) Len() int { return c.tracks.ItemCount() }

func (c *Cache) Flush() { c.tracks.Flush() }
