package wildcard

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"mosi-wildcard/pkg/logging"
)

const LOG = "WILDCARD"

const DefaultCacheCapacity = 1000

type CacheKey struct {
	Pattern       string
	CaseSensitive bool
	AcceptPrefix  bool
}

// Cache is a bounded LRU of compiled matchers. Lookups and inserts both
// count as use.
type Cache struct {
	mu  sync.Mutex
	lru *simplelru.LRU[CacheKey, *Matcher]
}

func NewCache(capacity int) (*Cache, error) {
	lru, err := simplelru.NewLRU[CacheKey, *Matcher](capacity, onEvict)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: lru}, nil
}

func onEvict(key CacheKey, _ *Matcher) {
	logging.Debug(LOG, "evicted pattern %q (case sensitive: %v, accept prefix: %v)", key.Pattern, key.CaseSensitive, key.AcceptPrefix)
}

// Get returns the cached matcher for the key, compiling and inserting it on a
// miss. Compile errors are returned as is and nothing is cached.
func (c *Cache) Get(pattern string, caseSensitive, acceptPrefix bool) (*Matcher, error) {
	key := CacheKey{Pattern: pattern, CaseSensitive: caseSensitive, AcceptPrefix: acceptPrefix}

	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.lru.Get(key); ok {
		return m, nil
	}

	m, err := Compile(pattern, caseSensitive, acceptPrefix)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, m)
	return m, nil
}

// Contains reports whether the key is cached without touching its recency.
func (c *Cache) Contains(pattern string, caseSensitive, acceptPrefix bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Contains(CacheKey{Pattern: pattern, CaseSensitive: caseSensitive, AcceptPrefix: acceptPrefix})
}

// Keys returns the cached keys from least to most recently used.
func (c *Cache) Keys() []CacheKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Keys()
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
}
