package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultCapacity is the entry limit used when New is given a non-positive capacity.
// It comfortably holds every printable ASCII glyph in a handful of styles.
const DefaultCapacity = 1024

// LRU is a thread-safe least-recently-used cache with a hard capacity.
// Fonts use it to memoize per-(codepoint, style) glyph metrics, which are
// queried once per glyph on every layout.
//
// LRU is safe for concurrent use and must not be copied after creation.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*lruEntry[K, V]
	order    *lruList[K]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// lruEntry holds a cached value with its position in the recency list.
type lruEntry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates an LRU holding at most capacity entries.
// If capacity <= 0, DefaultCapacity is used.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[K, V]{
		entries:  make(map[K]*lruEntry[K, V]),
		order:    newLRUList[K](),
		capacity: capacity,
	}
}

// Get retrieves a value and marks it as most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.order.MoveToFront(entry.node)
	c.hits.Add(1)
	return entry.value, true
}

// Set stores a value, evicting the least recently used entry when full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

// GetOrCreate returns the cached value for key, computing and storing it
// with create on a miss. create runs under the cache lock, so it must not
// call back into the same cache.
func (c *LRU[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.order.MoveToFront(entry.node)
		c.hits.Add(1)
		return entry.value
	}
	c.misses.Add(1)
	value := create()
	c.setLocked(key, value)
	return value
}

// setLocked inserts or updates key. Caller must hold c.mu.
func (c *LRU[K, V]) setLocked(key K, value V) {
	if existing, ok := c.entries[key]; ok {
		existing.value = value
		c.order.MoveToFront(existing.node)
		return
	}
	for c.order.Len() >= c.capacity {
		oldest, ok := c.order.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, oldest)
		c.evictions.Add(1)
	}
	c.entries[key] = &lruEntry[K, V]{
		value: value,
		node:  c.order.PushFront(key),
	}
}

// Delete removes an entry. Returns true if the entry was present.
func (c *LRU[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.Remove(entry.node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries. Statistics are kept.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*lruEntry[K, V])
	c.order.Clear()
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the cache counters.
func (c *LRU[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits is the number of lookups answered from the cache.
	Hits uint64
	// Misses is the number of lookups that had to compute a value.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 when nothing was looked up.
	HitRate float64
	// Evictions is the number of entries dropped to respect Capacity.
	Evictions uint64
}
