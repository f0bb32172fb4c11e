// Package cache provides caller-side memoization for introspection results.
// The introspection engine itself computes every result from scratch; wrap a
// chain in an InfoCache when hot types are introspected repeatedly.
package cache

import (
	"reflect"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Konsultn-Engineering/beankit/beaninfo"
)

// Introspector resolves a type's properties or backs off.
type Introspector interface {
	BeanInfo(t reflect.Type) (*beaninfo.BeanInfo, bool)
}

// InfoCache memoizes positive introspection results in an LRU keyed by type.
// Back-offs are passed through uncached, so a factory registered later can
// still claim a previously declined type.
type InfoCache struct {
	next  Introspector
	cache *lru.Cache[reflect.Type, *beaninfo.BeanInfo]
	mu    sync.RWMutex
}

// NewInfoCache wraps next with an LRU of the given size. Sizes below one fall
// back to a default of 256 entries.
func NewInfoCache(next Introspector, size int) *InfoCache {
	if size < 1 {
		size = 256
	}
	cache, _ := lru.New[reflect.Type, *beaninfo.BeanInfo](size)
	return &InfoCache{next: next, cache: cache}
}

// BeanInfo implements Introspector.
func (c *InfoCache) BeanInfo(t reflect.Type) (*beaninfo.BeanInfo, bool) {
	// Fast path: read lock lookup
	c.mu.RLock()
	if info, ok := c.cache.Get(t); ok {
		c.mu.RUnlock()
		return info, true
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if info, ok := c.cache.Get(t); ok {
		return info, true
	}

	info, ok := c.next.BeanInfo(t)
	if !ok {
		return nil, false
	}
	c.cache.Add(t, info)
	return info, true
}

// Purge drops all cached results.
func (c *InfoCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Purge()
}

// Len returns the number of cached results.
func (c *InfoCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}
