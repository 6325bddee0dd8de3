package geo

import (
	"context"
	"sync"
)

// CachedLocator wraps a Locator with an in-memory LRU cache.
type CachedLocator struct {
	inner Locator
	cache *lruCache
}

// NewCachedLocator creates a cache decorator around a locator.
func NewCachedLocator(inner Locator, maxEntries int) *CachedLocator {
	return &CachedLocator{
		inner: inner,
		cache: newLRUCache(maxEntries),
	}
}

// Locate serves from the cache when possible. Only successful lookups are
// cached so transient failures can be retried.
func (c *CachedLocator) Locate(ctx context.Context, city, country string) (Coordinates, error) {
	key := coordKey(city, country)
	if coords, ok := c.cache.get(key); ok {
		return coords, nil
	}
	coords, err := c.inner.Locate(ctx, city, country)
	if err != nil {
		return coords, err
	}
	c.cache.put(key, coords)
	return coords, nil
}

// lruCache is a simple thread-safe LRU cache for Coordinates.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value Coordinates
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (Coordinates, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return Coordinates{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value Coordinates) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
