package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lcw/v2"
)

// cacheEntry remembers a lookup result, including "nothing stored".
type cacheEntry struct {
	theme string
	found bool
}

// Cached wraps a store Interface with a loading cache and satisfies the Interface itself.
// Cache is populated on reads via loader function, invalidated on writes.
// Writes wait for in-flight loads, so a loader can't cache a value older than the last write.
type Cached struct {
	store Interface
	cache lcw.LoadingCache[cacheEntry]
	mu    sync.RWMutex // read-locked by loads, write-locked by store writes and invalidation
}

// NewCached creates a new cached store wrapper.
// maxKeys sets the maximum number of entries in the cache.
func NewCached(store Interface, maxKeys int) (*Cached, error) {
	cache, err := lcw.NewLruCache(lcw.NewOpts[cacheEntry]().MaxKeys(maxKeys))
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Cached{store: store, cache: cache}, nil
}

// Get returns the client's theme, using cache with load-through. Misses are cached too,
// every page load of a new client asks for a preference which is not there.
func (c *Cached) Get(ctx context.Context, client string) (string, error) {
	key := NormalizeClient(client)
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, err := c.cache.Get(key, func() (cacheEntry, error) {
		theme, loadErr := c.store.Get(ctx, key)
		if errors.Is(loadErr, ErrNotFound) {
			return cacheEntry{}, nil
		}
		if loadErr != nil {
			return cacheEntry{}, fmt.Errorf("load from store: %w", loadErr)
		}
		return cacheEntry{theme: theme, found: true}, nil
	})
	if err != nil {
		return "", fmt.Errorf("cache get: %w", err)
	}
	if !entry.found {
		return "", ErrNotFound
	}
	return entry.theme, nil
}

// Set stores the theme and invalidates the cache entry.
func (c *Cached) Set(ctx context.Context, client, theme string) error {
	key := NormalizeClient(client)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Set(ctx, key, theme); err != nil {
		return fmt.Errorf("store set: %w", err)
	}
	c.cache.Invalidate(func(k string) bool { return k == key })
	return nil
}

// Delete removes the preference and invalidates the cache entry.
func (c *Cached) Delete(ctx context.Context, client string) error {
	key := NormalizeClient(client)
	c.mu.Lock()
	defer c.mu.Unlock()
	// invalidate regardless of error - the miss might have been cached
	c.cache.Invalidate(func(k string) bool { return k == key })
	if err := c.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("store delete: %w", err)
	}
	return nil
}

// List returns all preferences from the underlying store (not cached).
func (c *Cached) List(ctx context.Context) ([]Preference, error) {
	prefs, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("store list: %w", err)
	}
	return prefs, nil
}

// Prune removes stale preferences and drops the whole cache if anything was removed.
func (c *Cached) Prune(ctx context.Context, before time.Time) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, err := c.store.Prune(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("store prune: %w", err)
	}
	if n > 0 {
		c.cache.Purge()
	}
	return n, nil
}

// Close closes the cache and underlying store.
func (c *Cached) Close() error {
	_ = c.cache.Close()
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("store close: %w", err)
	}
	return nil
}

// Stats returns cache statistics.
func (c *Cached) Stats() lcw.CacheStat {
	return c.cache.Stat()
}
