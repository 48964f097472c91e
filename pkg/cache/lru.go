// Package cache holds small in-process caches.
package cache

import (
	"container/list"
	"sync"
)

// LRU is a fixed-capacity map that drops the least recently used entry
// when full. It is safe for concurrent use.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front is most recently used
	index    map[K]*list.Element
}

type slot[K comparable, V any] struct {
	key K
	val V
}

// NewLRU returns an empty cache. It panics if capacity is not positive.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: capacity must be positive")
	}
	return &LRU[K, V]{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[K]*list.Element, capacity),
	}
}

// Get returns the value stored under key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*slot[K, V]).val, true
	}
	var zero V
	return zero, false
}

// Add stores val under key, evicting the oldest entry when the cache is full.
func (c *LRU[K, V]) Add(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		el.Value.(*slot[K, V]).val = val
		c.order.MoveToFront(el)
		return
	}

	c.index[key] = c.order.PushFront(&slot[K, V]{key: key, val: val})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.index, oldest.Value.(*slot[K, V]).key)
	}
}

// GetOrAdd returns the cached value for key, building and storing it on a
// miss. Build errors are returned and nothing is stored. build runs without
// the lock held, so concurrent misses on one key may each call it.
func (c *LRU[K, V]) GetOrAdd(key K, build func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := build()
	if err != nil {
		return v, err
	}
	c.Add(key, v)
	return v, nil
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
