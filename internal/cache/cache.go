package cache

import (
	"cmp"
	"slices"
	"sync"
)

// Cache maps keys to values that are dropped once they stop being used.
//
// Lookups stamp an entry with the current generation; FlushUnused removes
// entries from older generations and advances it. With a positive limit,
// inserting past the limit also drops the least recently used quarter.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu         sync.Mutex
	entries    map[K]*cacheEntry[V]
	limit      int
	clock      int64
	generation uint64

	hits, misses, evictions uint64
}

type cacheEntry[V any] struct {
	value      V
	lastUsed   int64
	generation uint64
}

// New creates a cache holding at most about limit entries between
// flushes. A limit of 0 means unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*cacheEntry[V]),
		limit:   max(limit, 0),
	}
}

// GetOrCreate returns the value for key, calling create on a miss.
// create runs under the lock, so a key is created once.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock++
	if e, ok := c.entries[key]; ok {
		c.hits++
		e.lastUsed = c.clock
		e.generation = c.generation
		return e.value
	}

	c.misses++
	v := create()
	c.entries[key] = &cacheEntry[V]{value: v, lastUsed: c.clock, generation: c.generation}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.shrink()
	}
	return v
}

// FlushUnused drops every entry not used since the previous flush and
// returns how many were dropped.
func (c *Cache[K, V]) FlushUnused() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for k, e := range c.entries {
		if e.generation != c.generation {
			delete(c.entries, k)
			n++
		}
	}
	c.evictions += uint64(n)
	c.generation++
	return n
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Len:        len(c.entries),
		Limit:      c.limit,
		Generation: c.generation,
		Hits:       c.hits,
		Misses:     c.misses,
		Evictions:  c.evictions,
	}
}

// shrink drops least recently used entries down to three quarters of the
// limit. Caller must hold c.mu.
func (c *Cache[K, V]) shrink() {
	keep := max(c.limit*3/4, 1)
	drop := len(c.entries) - keep
	if drop <= 0 {
		return
	}

	type aged struct {
		key      K
		lastUsed int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.lastUsed})
	}
	slices.SortFunc(all, func(a, b aged) int { return cmp.Compare(a.lastUsed, b.lastUsed) })
	for _, a := range all[:drop] {
		delete(c.entries, a.key)
	}
	c.evictions += uint64(drop)
}

// Stats holds cache counters.
type Stats struct {
	Len        int
	Limit      int    // 0 for unlimited
	Generation uint64 // number of flushes
	Hits       uint64
	Misses     uint64
	Evictions  uint64 // by flushes and by the limit
}

// HitRate returns Hits / (Hits + Misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
