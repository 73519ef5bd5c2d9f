package cache

import (
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Cache provides size-bounded LRU caching for rendered dashboard
// payloads. Keys combine the dataset version hash with the session's
// canonical filter key, so two sessions with identical filters share
// one entry and a reload naturally orphans the old version's entries.
type Cache struct {
	storage     map[string]*Entry
	maxSize     int64
	currentSize int64
	lru         *lruList
	mutex       sync.RWMutex

	hits   int64
	misses int64
}

// New creates a cache bounded to maxSize bytes.
func New(maxSize int64) *Cache {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Cache{
		storage: make(map[string]*Entry),
		maxSize: maxSize,
		lru:     newLRUList(),
	}
}

// Get retrieves a cached payload and marks it as recently used.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.storage[key]
	if !exists {
		atomic.AddInt64(&c.misses, 1)
		log.Printf("[VIEW_CACHE_MISS] Key: %s", key)
		return nil, false
	}

	entry.AccessTime = time.Now().Unix()
	c.lru.touch(key)
	atomic.AddInt64(&c.hits, 1)
	log.Printf("[VIEW_CACHE_HIT] Key: %s, Size: %d bytes", key, entry.Size)
	return entry.Payload, true
}

// Store adds or replaces a cached payload, evicting least recently
// used entries until it fits. Oversized payloads are rejected rather
// than flushing the whole cache.
func (c *Cache) Store(key string, payload []byte) {
	size := int64(len(payload)) + int64(len(key)) + 64

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if size > c.maxSize {
		log.Printf("[VIEW_CACHE_REJECT] Entry too large: %d bytes > %d cache limit", size, c.maxSize)
		return
	}

	if existing, exists := c.storage[key]; exists {
		c.currentSize -= existing.Size
		c.lru.remove(key)
	}

	for c.currentSize+size > c.maxSize {
		oldestKey := c.lru.removeOldest()
		if oldestKey == "" {
			break
		}
		if entry, exists := c.storage[oldestKey]; exists {
			delete(c.storage, oldestKey)
			c.currentSize -= entry.Size
			log.Printf("[VIEW_CACHE_EVICT] Evicted entry: %s (%d bytes), Remaining: %d/%d bytes",
				oldestKey, entry.Size, c.currentSize, c.maxSize)
		}
	}

	c.storage[key] = &Entry{
		Payload:    payload,
		Size:       size,
		AccessTime: time.Now().Unix(),
		CreateTime: time.Now(),
	}
	c.currentSize += size
	c.lru.touch(key)

	log.Printf("[VIEW_CACHE_STORE] Key: %s, Size: %d bytes, Total Cache: %d/%d bytes",
		key, size, c.currentSize, c.maxSize)
}

// InvalidateDataset removes every entry derived from the given dataset
// version. Called on reload so nothing serves the replaced data.
func (c *Cache) InvalidateDataset(datasetHash string) int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	prefix := datasetPrefix(datasetHash)
	var keysToRemove []string
	for key := range c.storage {
		if strings.HasPrefix(key, prefix) {
			keysToRemove = append(keysToRemove, key)
		}
	}

	for _, key := range keysToRemove {
		if entry, exists := c.storage[key]; exists {
			delete(c.storage, key)
			c.currentSize -= entry.Size
			c.lru.remove(key)
		}
	}

	if len(keysToRemove) > 0 {
		log.Printf("[VIEW_CACHE_INVALIDATE] Removed %d entries for dataset %s, Remaining: %d/%d bytes",
			len(keysToRemove), datasetHash, c.currentSize, c.maxSize)
	}
	return len(keysToRemove)
}

// Clear removes all cache entries.
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.storage = make(map[string]*Entry)
	c.currentSize = 0
	c.lru = newLRUList()
}

// Size returns the current cache size in bytes.
func (c *Cache) Size() int64 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.currentSize
}

// MaxSize returns the maximum cache size.
func (c *Cache) MaxSize() int64 {
	return c.maxSize
}

// EntryCount returns the number of cached entries.
func (c *Cache) EntryCount() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.storage)
}

// GetStats returns cache statistics.
func (c *Cache) GetStats() Stats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	stats := Stats{
		TotalEntries: len(c.storage),
		TotalSize:    c.currentSize,
		MaxSize:      c.maxSize,
		UsagePercent: float64(c.currentSize) / float64(c.maxSize) * 100,
		Hits:         atomic.LoadInt64(&c.hits),
		Misses:       atomic.LoadInt64(&c.misses),
	}
	if total := stats.Hits + stats.Misses; total > 0 {
		stats.HitRate = float64(stats.Hits) / float64(total)
	}
	return stats
}
