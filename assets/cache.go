// Package assets loads resources in the background and caches them by key.
package assets

import (
	"sync"
	"time"
)

// Loader produces the value for key. It runs on its own goroutine.
type Loader[T any] func(key string) (T, error)

// Cache maps keys to lazily loaded values. A Get for a missing key returns
// the placeholder and starts a single background load for that key; later
// Gets return the loaded value once it is published.
//
// A failed load is logged and forgotten, so the next Get retries it.
type Cache[T any] struct {
	load        Loader[T]
	placeholder T

	items   map[string]T
	itemsMu sync.RWMutex

	fetching   map[string]bool
	fetchingMu sync.Mutex

	inflight sync.WaitGroup
}

// NewCache returns an empty cache that loads values with load.
func NewCache[T any](load Loader[T], placeholder T) *Cache[T] {
	return &Cache[T]{
		load:        load,
		placeholder: placeholder,
		items:       make(map[string]T),
		fetching:    make(map[string]bool),
	}
}

// Get returns the value for key and whether it is loaded. When it is not,
// the placeholder is returned and a load is started unless one is running.
func (c *Cache[T]) Get(key string) (T, bool) {
	if v, ok := c.Lookup(key); ok {
		return v, true
	}

	c.fetchingMu.Lock()
	defer c.fetchingMu.Unlock()
	// A load may have published between Lookup and here.
	if v, ok := c.Lookup(key); ok {
		return v, true
	}
	if !c.fetching[key] {
		c.fetching[key] = true
		c.inflight.Add(1)
		go c.fetchAndCache(key)
	}
	return c.placeholder, false
}

// Lookup returns the value for key without starting a load.
func (c *Cache[T]) Lookup(key string) (T, bool) {
	c.itemsMu.RLock()
	defer c.itemsMu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

// Loading reports whether a load for key is in flight.
func (c *Cache[T]) Loading(key string) bool {
	c.fetchingMu.Lock()
	defer c.fetchingMu.Unlock()
	return c.fetching[key]
}

// fetchAndCache publishes the value and clears the fetching flag under
// fetchingMu, so Get sees at least one of them.
func (c *Cache[T]) fetchAndCache(key string) {
	defer c.inflight.Done()

	start := time.Now()
	v, err := c.load(key)

	c.fetchingMu.Lock()
	if err == nil {
		c.itemsMu.Lock()
		c.items[key] = v
		c.itemsMu.Unlock()
	}
	delete(c.fetching, key)
	c.fetchingMu.Unlock()

	if err != nil {
		Logger().Warn("assets: load failed", "key", key, "err", err)
		return
	}
	Logger().Debug("assets: loaded", "key", key, "elapsed", time.Since(start))
}

// Wait blocks until every load started so far has finished.
func (c *Cache[T]) Wait() {
	c.inflight.Wait()
}

// Len returns the number of loaded values.
func (c *Cache[T]) Len() int {
	c.itemsMu.RLock()
	defer c.itemsMu.RUnlock()
	return len(c.items)
}

// Evict drops the value for key. A load in flight still publishes its result.
func (c *Cache[T]) Evict(key string) {
	c.itemsMu.Lock()
	delete(c.items, key)
	c.itemsMu.Unlock()
}

// Placeholder returns the value Get hands out while a key is loading.
func (c *Cache[T]) Placeholder() T { return c.placeholder }
