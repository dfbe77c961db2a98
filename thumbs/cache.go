package thumbs

import (
	"container/list"
	"sync"

	"github.com/lvbauer/retrovault/logging"
)

// Cache is an in-memory LRU byte cache for derived thumbnails, so a record
// whose thumbnail was derived lazily is not re-probed on every display.
type Cache interface {
	// Get retrieves thumbnail bytes for a record ID
	Get(id string) ([]byte, bool)
	// Set stores thumbnail bytes for a record ID
	Set(id string, data []byte)
	// Delete removes a record's thumbnail from the cache
	Delete(id string)
	// Stats returns cache statistics
	Stats() CacheStats
}

// CacheStats provides information about cache usage
type CacheStats struct {
	TotalSize     int64
	MaxSize       int64
	EntryCount    int
	HitCount      int64
	MissCount     int64
	EvictionCount int64
}

type cacheEntry struct {
	id      string
	data    []byte
	element *list.Element
}

type lruCache struct {
	mu          sync.Mutex
	maxSize     int64
	currentSize int64
	entries     map[string]*cacheEntry
	lruList     *list.List // most recently used at front
	logger      logging.Logger

	hitCount      int64
	missCount     int64
	evictionCount int64
}

const defaultCacheSize = 32 * 1024 * 1024

// NewCache creates an LRU thumbnail cache with the given byte budget.
func NewCache(maxSizeBytes int64, logger logging.Logger) Cache {
	if logger == nil {
		logger = logging.NopLogger
	}

	if maxSizeBytes <= 0 {
		logger.Warn("Invalid thumbnail cache size, using default", "providedSize", maxSizeBytes)
		maxSizeBytes = defaultCacheSize
	}

	return &lruCache{
		maxSize: maxSizeBytes,
		entries: make(map[string]*cacheEntry),
		lruList: list.New(),
		logger:  logger,
	}
}

func (c *lruCache) Get(id string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[id]
	if !exists {
		c.missCount++
		return nil, false
	}

	c.lruList.MoveToFront(entry.element)
	c.hitCount++

	out := make([]byte, len(entry.data))
	copy(out, entry.data)
	return out, true
}

func (c *lruCache) Set(id string, data []byte) {
	if len(data) == 0 {
		return
	}
	if int64(len(data)) > c.maxSize {
		c.logger.Warn("Thumbnail too large for cache", "id", id, "size", len(data))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[id]; ok {
		c.currentSize -= int64(len(existing.data))
		existing.data = data
		c.currentSize += int64(len(data))
		c.lruList.MoveToFront(existing.element)
		return
	}

	for c.currentSize+int64(len(data)) > c.maxSize {
		c.evictOldest()
	}

	entry := &cacheEntry{id: id, data: data}
	entry.element = c.lruList.PushFront(entry)
	c.entries[id] = entry
	c.currentSize += int64(len(data))
}

func (c *lruCache) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[id]; ok {
		c.removeEntry(entry)
	}
}

func (c *lruCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		TotalSize:     c.currentSize,
		MaxSize:       c.maxSize,
		EntryCount:    len(c.entries),
		HitCount:      c.hitCount,
		MissCount:     c.missCount,
		EvictionCount: c.evictionCount,
	}
}

// evictOldest removes the least recently used entry. Caller holds the lock.
func (c *lruCache) evictOldest() {
	back := c.lruList.Back()
	if back == nil {
		return
	}
	entry := back.Value.(*cacheEntry)
	c.removeEntry(entry)
	c.evictionCount++
	c.logger.Debug("Evicted thumbnail from cache", "id", entry.id)
}

// removeEntry removes an entry from the map and list. Caller holds the lock.
func (c *lruCache) removeEntry(entry *cacheEntry) {
	c.lruList.Remove(entry.element)
	delete(c.entries, entry.id)
	c.currentSize -= int64(len(entry.data))
}
