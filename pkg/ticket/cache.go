package ticket

import (
	"sync"
	"time"
)

// cacheEntry holds a cached lookup result with a timestamp for TTL
// expiration. found=false caches a definitive not-found answer so repeated
// imports referencing the same missing ticket don't hammer the API.
type cacheEntry struct {
	record    *Record
	found     bool
	fetchedAt time.Time
}

// cache is a thread-safe in-memory lookup cache with TTL expiration.
// Expired entries are cleaned up lazily on get(), no background goroutine.
type cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// get returns the cached result if present and not expired. The second
// return reports a cache hit; a hit with a nil record means cached
// not-found.
func (c *cache) get(key string) (*Record, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Expired, clean up lazily.
		// Re-check under write lock: a concurrent set() may have replaced
		// the entry with a fresh one between RUnlock and Lock.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	if !entry.found {
		return nil, true
	}
	return entry.record, true
}

func (c *cache) set(key string, record *Record) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry{
		record:    record,
		found:     record != nil,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}
