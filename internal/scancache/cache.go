// Package scancache caches span streams keyed by language and content, so
// repeated previews of unchanged sources reuse the scanned spans.
package scancache

import (
	"context"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/glintlabs/glint/internal/log"
)

const DefaultExpiration = 5 * time.Minute
const DefaultCleanupInterval = 10 * time.Minute

// DefaultMaxEntries bounds the store; 0 means unbounded.
const DefaultMaxEntries = 256

// CacheManager is the storage contract the read-through layer runs on.
type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}

// Stats counts cache effectiveness for the status bar.
type Stats struct {
	Hits   int64
	Misses int64
}

// InMemory is the concrete CacheManager backed by go-cache.
type InMemory[K ~string, V any] struct {
	useCase    string
	cache      *gocache.Cache
	maxEntries int
	hits       atomic.Int64
	misses     atomic.Int64
}

// NewInMemory initializes the in-memory cache. maxEntries of 0 disables the
// size bound.
func NewInMemory[K ~string, V any](useCase string, defaultExpiration, cleanupInterval time.Duration, maxEntries int) *InMemory[K, V] {
	return &InMemory[K, V]{
		useCase:    useCase,
		cache:      gocache.New(defaultExpiration, cleanupInterval),
		maxEntries: maxEntries,
	}
}

// Get retrieves an item from the cache by its key.
func (c *InMemory[K, V]) Get(ctx context.Context, key K) (V, bool) {
	var zeroValue V

	value, found := c.cache.Get(string(key))
	if !found {
		c.misses.Add(1)
		return zeroValue, false
	}

	// Type assertion check to ensure the type is correct
	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "cache", c.useCase, "key", key)
		c.misses.Add(1)
		return zeroValue, false
	}

	log.Debug(log.CatCache, "cache hit", "cache", c.useCase, "key", key)
	c.hits.Add(1)

	return v, true
}

// GetWithRefresh retrieves an item from the cache; if one is found the ttl
// is extended by putting the item back.
func (c *InMemory[K, V]) GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool) {
	value, found := c.Get(ctx, key)
	if !found {
		return value, found
	}

	c.Set(ctx, key, value, ttl)

	return value, found
}

// Set stores a value with a key and TTL, evicting expired entries first when
// the store is at capacity. A still-full store drops the write rather than
// growing without bound.
func (c *InMemory[K, V]) Set(ctx context.Context, key K, value V, ttl time.Duration) {
	if c.maxEntries > 0 && c.cache.ItemCount() >= c.maxEntries {
		if _, exists := c.cache.Get(string(key)); !exists {
			c.cache.DeleteExpired()
			if c.cache.ItemCount() >= c.maxEntries {
				log.Debug(log.CatCache, "cache full, dropping write", "cache", c.useCase, "key", key)
				return
			}
		}
	}
	c.cache.Set(string(key), value, ttl)
}

// Delete removes values from the cache by key.
func (c *InMemory[K, V]) Delete(ctx context.Context, keys ...K) error {
	if len(keys) == 0 {
		return nil
	}

	for _, key := range keys {
		c.cache.Delete(string(key))
	}

	return nil
}

// Flush drops every entry.
func (c *InMemory[K, V]) Flush(ctx context.Context) error {
	c.cache.Flush()

	return nil
}

// Len returns the number of stored entries, including not-yet-swept expired ones.
func (c *InMemory[K, V]) Len() int {
	return c.cache.ItemCount()
}

// Stats returns hit/miss counts since construction.
func (c *InMemory[K, V]) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
