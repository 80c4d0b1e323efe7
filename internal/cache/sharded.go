package cache

import (
	"hash/fnv"
)

// ShardCount is the number of shards of a Sharded cache.
// Must be a power of 2 for fast modulo via bitwise AND.
const ShardCount = 16

const shardMask = ShardCount - 1

// Hasher computes the hash used to pick the shard of a key.
type Hasher[K any] func(K) uint64

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Sharded is an LRU cache split into ShardCount independent shards, so
// goroutines working on different keys rarely contend for a lock.
// The engine keeps finished paragraphs in one, keyed by their inputs.
type Sharded[K comparable, V any] struct {
	shards [ShardCount]*LRU[K, V]
	hasher Hasher[K]
}

// NewSharded creates a sharded cache holding about capacity entries in
// total. If capacity <= 0, DefaultCapacity is used.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	perShard := max(1, (capacity+ShardCount-1)/ShardCount)

	c := &Sharded[K, V]{hasher: hasher}
	for i := range c.shards {
		c.shards[i] = New[K, V](perShard)
	}
	return c
}

func (c *Sharded[K, V]) shard(key K) *LRU[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get retrieves a value and marks it as most recently used in its shard.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	return c.shard(key).Get(key)
}

// Set stores a value.
func (c *Sharded[K, V]) Set(key K, value V) {
	c.shard(key).Set(key, value)
}

// GetOrCreate returns the cached value for key or creates it. create runs
// with the shard lock held, so concurrent callers never build the same
// value twice.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() V) V {
	return c.shard(key).GetOrCreate(key, create)
}

// Delete removes an entry. Returns true if the entry was present.
func (c *Sharded[K, V]) Delete(key K) bool {
	return c.shard(key).Delete(key)
}

// Clear removes all entries.
func (c *Sharded[K, V]) Clear() {
	for _, s := range c.shards {
		s.Clear()
	}
}

// Len returns the total number of entries across all shards.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		total += s.Len()
	}
	return total
}

// Capacity returns the total capacity across all shards.
func (c *Sharded[K, V]) Capacity() int {
	return c.shards[0].Capacity() * ShardCount
}

// Stats returns the counters summed over all shards.
func (c *Sharded[K, V]) Stats() Stats {
	var st Stats
	for _, s := range c.shards {
		ss := s.Stats()
		st.Len += ss.Len
		st.Capacity += ss.Capacity
		st.Hits += ss.Hits
		st.Misses += ss.Misses
		st.Evictions += ss.Evictions
	}
	if total := st.Hits + st.Misses; total > 0 {
		st.HitRate = float64(st.Hits) / float64(total)
	}
	return st
}
