package lokat

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes loaded dictionaries per locale for the lifetime of the
// instance. Concurrent loads for the same locale are collapsed into a single
// loader call (singleflight); all waiters observe the same result or the same
// error. A failed load leaves no trace in the cache, so the next call for
// that locale starts a fresh attempt.
//
// Each Cache owns its entries exclusively. Two caches never share state, even
// for identical locales; construct one per tenant or per request when
// isolation matters.
type Cache[D any] struct {
	loader  Loader[D]
	flight  singleflight.Group
	mu      sync.Mutex
	entries map[string]D
	bypass  bool
}

// CacheOption configures a Cache during construction.
type CacheOption func(*cacheConfig)

type cacheConfig struct {
	bypass bool
}

// CacheBypass disables caching entirely: every Load calls the loader
// directly, with no memoization and no in-flight deduplication. Intended for
// diagnostics only; correctness must never depend on it.
func CacheBypass() CacheOption {
	return func(c *cacheConfig) {
		c.bypass = true
	}
}

// NewCache creates a cache backed by the given loader.
// Panics if loader is nil.
func NewCache[D any](loader Loader[D], opts ...CacheOption) *Cache[D] {
	if loader == nil {
		panic("lokat: loader is not provided")
	}

	var cfg cacheConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cache[D]{
		loader:  loader,
		entries: make(map[string]D),
		bypass:  cfg.bypass,
	}
}

// Load returns the dictionary for locale, invoking the loader at most once
// per locale across all concurrent callers. Resolved dictionaries are
// retained until the cache is discarded; failures are not.
func (c *Cache[D]) Load(ctx context.Context, locale string) (D, error) {
	if c.bypass {
		return c.loader(ctx, locale)
	}

	c.mu.Lock()
	if d, ok := c.entries[locale]; ok {
		c.mu.Unlock()
		return d, nil
	}
	c.mu.Unlock()

	v, err, _ := c.flight.Do(locale, func() (any, error) {
		// Re-check under the flight: a previous call for this locale may have
		// resolved between the miss above and entering the group.
		c.mu.Lock()
		if d, ok := c.entries[locale]; ok {
			c.mu.Unlock()
			return d, nil
		}
		c.mu.Unlock()

		d, err := c.loader(ctx, locale)
		if err != nil {
			// Nothing is stored on failure: the next Load for this locale is
			// an independent retry, while every waiter on this flight still
			// receives the original error.
			return nil, err
		}

		c.mu.Lock()
		c.entries[locale] = d
		c.mu.Unlock()

		return d, nil
	})
	if err != nil {
		var zero D
		return zero, err
	}

	return v.(D), nil
}

// Cached returns the resolved dictionary for locale without triggering a
// load. The second result reports whether an entry exists.
func (c *Cache[D]) Cached(locale string) (D, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.entries[locale]
	return d, ok
}
