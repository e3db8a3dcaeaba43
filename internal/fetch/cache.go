package fetch

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultCacheTTL is how long a fetched posting stays fresh.
	DefaultCacheTTL = 15 * time.Minute
	// DefaultCacheSize bounds the number of postings kept in memory.
	DefaultCacheSize = 256
)

// Getter fetches a page.
type Getter func(ctx context.Context, raw string) (*Page, error)

// Cache memoizes successful fetches per URL. Entries expire after the TTL and the least
// recently used entry is evicted once the cache is full.
type Cache struct {
	ttl     time.Duration
	get     Getter
	entries *expirable.LRU[string, *Page]
}

// NewCache wraps get. Non-positive size and ttl fall back to the defaults; a nil get uses
// URL with default options.
func NewCache(size int, ttl time.Duration, get Getter) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if get == nil {
		get = func(ctx context.Context, raw string) (*Page, error) {
			return URL(ctx, raw, nil)
		}
	}
	return &Cache{
		ttl:     ttl,
		get:     get,
		entries: expirable.NewLRU[string, *Page](size, nil, ttl),
	}
}

// Get returns a cached page when fresh, otherwise fetches and stores it.
// Failed fetches are not cached. The second result reports a cache hit.
func (c *Cache) Get(ctx context.Context, raw string) (*Page, bool, error) {
	if page, ok := c.entries.Get(raw); ok {
		return page, true, nil
	}

	page, err := c.get(ctx, raw)
	if err != nil {
		return page, false, err
	}
	c.entries.Add(raw, page)
	return page, false, nil
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}
