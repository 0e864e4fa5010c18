package autocomplete

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// CachingFetcher remembers successful lookups for a while and collapses
// identical lookups that are in flight at the same time.
type CachingFetcher struct {
	next  Fetcher
	cache *expirable.LRU[string, []string]
	group singleflight.Group
}

// NewCachingFetcher wraps next. A size of zero or less returns next unchanged.
func NewCachingFetcher(next Fetcher, size int, ttl time.Duration) Fetcher {
	if size <= 0 {
		return next
	}
	return &CachingFetcher{
		next:  next,
		cache: expirable.NewLRU[string, []string](size, nil, ttl),
	}
}

// Fetch serves query from the cache or from the wrapped fetcher. Errors are
// never cached.
func (c *CachingFetcher) Fetch(ctx context.Context, query string) ([]string, error) {
	key := strings.TrimSpace(query)
	if key == "" {
		return nil, ErrEmptyQuery
	}
	if titles, ok := c.cache.Get(key); ok {
		return slices.Clone(titles), nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		titles, err := c.next.Fetch(ctx, key)
		if err != nil {
			return nil, err
		}
		c.cache.Add(key, titles)
		return titles, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]string)), nil
}

// Purge empties the cache
func (c *CachingFetcher) Purge() {
	c.cache.Purge()
}
