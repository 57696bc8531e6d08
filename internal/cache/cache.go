// Package cache provides the generic LRU cache behind texconv.ShaderCache.
//
//	c := cache.New[string, string](64)
//	c.Set(key, source)
//	source, ok := c.Get(key)
package cache

import "sync"

// Cache is a thread-safe LRU cache. When a limit is set, inserting past it
// evicts the least recently used entry.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	order   recencyList[K, V]
	limit   int

	hits      uint64
	misses    uint64
	evictions uint64
}

// New creates a cache holding at most limit entries.
// A limit of 0 means unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[K, V]),
		limit:   limit,
	}
}

// Get retrieves a value and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.moveToFront(e)
	return e.value, true
}

// Set stores a value, replacing any previous value for key.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.order.moveToFront(e)
		return
	}
	e := &entry[K, V]{key: key, value: value}
	c.entries[key] = e
	c.order.pushFront(e)

	for c.limit > 0 && c.order.len > c.limit {
		old := c.order.removeOldest()
		delete(c.entries, old.key)
		c.evictions++
	}
}

// GetOrCreate returns the cached value or stores the result of create.
// The second result reports a hit. create runs without the lock held, so
// concurrent misses on one key may both call it; the last result is kept.
// When create fails nothing is stored.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, bool, error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}
	v, err := create()
	if err != nil {
		return v, false, err
	}
	c.Set(key, v)
	return v, false, nil
}

// Delete removes key. It reports whether the key was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.unlink(e)
	delete(c.entries, key)
	return true
}

// Clear removes all entries. Counters are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[K, V])
	c.order.clear()
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Keys returns the keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.entries))
	for e := c.order.head; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.entries),
		Limit:     c.limit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Limit is the entry limit, 0 when unlimited.
	Limit int
	// Hits is the number of Get calls that found their key.
	Hits uint64
	// Misses is the number of Get calls that did not.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 before the first Get.
	HitRate float64
	// Evictions is the number of entries removed to honor Limit.
	Evictions uint64
}
