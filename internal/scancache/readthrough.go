package scancache

import (
	"context"
	"time"
)

// ReadThrough wraps a CacheManager with a compute function. Scanning is
// total, so unlike a loader hitting storage the function cannot fail; the
// boolean reports whether the value came from the cache.
type ReadThrough[K ~string, V any, I any] struct {
	cache           CacheManager[K, V]
	fn              func(ctx context.Context, input I) V
	shouldSkipCache bool
}

func NewReadThrough[K ~string, V any, I any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, input I) V,
	shouldSkipCache bool,
) *ReadThrough[K, V, I] {
	return &ReadThrough[K, V, I]{
		cache:           cache,
		fn:              fn,
		shouldSkipCache: shouldSkipCache,
	}
}

// Get returns the cached value for key, computing and storing it on a miss.
func (r *ReadThrough[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, bool) {
	if r.shouldSkipCache {
		return r.fn(ctx, input), false
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, true
	}

	value := r.fn(ctx, input)
	r.cache.Set(ctx, key, value, ttl)

	return value, false
}

// GetWithRefresh behaves like Get but extends the ttl of entries it finds.
func (r *ReadThrough[K, V, I]) GetWithRefresh(ctx context.Context, key K, input I, ttl time.Duration) (V, bool) {
	if r.shouldSkipCache {
		return r.fn(ctx, input), false
	}

	if value, ok := r.cache.GetWithRefresh(ctx, key, ttl); ok {
		return value, true
	}

	value := r.fn(ctx, input)
	r.cache.Set(ctx, key, value, ttl)

	return value, false
}
