// Package cache provides a generic, mutex-guarded cache with frame-based
// eviction.
//
// Values that are rebuilt every UI frame (laid out text, for example) are
// memoized for as long as they keep being requested:
//
//	c := cache.New[uint64, *Galley](0)
//	g := c.GetOrCreate(key, func() *Galley { return layout(job) })
//	// ... once per frame:
//	c.FlushUnused()
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
