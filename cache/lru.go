package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/crochee/ope/errors"
)

// Interface is a bounded key-value cache shared across concurrent callers.
// Implementations must synchronize internally; values stored in the cache
// are treated as immutable and may be used after retrieval without locking.
type Interface[K comparable, V any] interface {
	// Get returns the value for key and marks it recently used.
	Get(key K) (V, bool)
	// Add stores a value under key, evicting the least-recently-used entry
	// if the cache is at capacity. Reports whether an eviction occurred.
	Add(key K, value V) bool
	// Contains reports whether key is present without updating recency.
	Contains(key K) bool
	// Len returns the number of cached entries.
	Len() int
	// Purge removes all entries.
	Purge()
}

// LRU is a fixed-capacity least-recently-used cache.
type LRU[K comparable, V any] struct {
	lruCache *lru.Cache[K, V]
}

// NewLRU creates an LRU cache with the given capacity.
// Capacity is fixed for the cache's lifetime and must be at least 1.
func NewLRU[K comparable, V any](size int) (*LRU[K, V], error) {
	if size < 1 {
		return nil, errors.InvalidCacheSize(size)
	}
	lruCache, err := lru.New[K, V](size)
	if err != nil {
		return nil, errors.InvalidCacheSize(size).WithCause(err)
	}
	return &LRU[K, V]{lruCache: lruCache}, nil
}

// Get returns the value for key and marks it recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	return c.lruCache.Get(key)
}

// Add stores a value, evicting the LRU entry when at capacity.
func (c *LRU[K, V]) Add(key K, value V) bool {
	return c.lruCache.Add(key, value)
}

// Contains reports whether key is present without updating recency.
func (c *LRU[K, V]) Contains(key K) bool {
	return c.lruCache.Contains(key)
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	return c.lruCache.Len()
}

// Purge removes all entries.
func (c *LRU[K, V]) Purge() {
	c.lruCache.Purge()
}

// Interface Guards
var _ Interface[string, int] = (*LRU[string, int])(nil)
