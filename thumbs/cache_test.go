package thumbs

import (
	"fmt"
	"testing"
)

func TestNewCacheInvalidSize(t *testing.T) {
	cache := NewCache(-1, nil)

	stats := cache.Stats()
	if stats.MaxSize != defaultCacheSize {
		t.Errorf("Expected default size %d, got %d", int64(defaultCacheSize), stats.MaxSize)
	}
}

func TestCacheSetAndGet(t *testing.T) {
	cache := NewCache(1024, nil)

	// Miss first.
	if _, found := cache.Get("rec-1"); found {
		t.Error("Expected cache miss for unknown record")
	}

	data := []byte("thumbnail bytes")
	cache.Set("rec-1", data)

	got, found := cache.Get("rec-1")
	if !found {
		t.Fatal("Expected cache hit after Set")
	}
	if string(got) != string(data) {
		t.Errorf("Expected %q, got %q", data, got)
	}

	stats := cache.Stats()
	if stats.EntryCount != 1 {
		t.Errorf("Expected 1 entry, got %d", stats.EntryCount)
	}
	if stats.TotalSize != int64(len(data)) {
		t.Errorf("Expected size %d, got %d", len(data), stats.TotalSize)
	}
	if stats.HitCount != 1 || stats.MissCount != 1 {
		t.Errorf("Expected 1 hit and 1 miss, got %d/%d", stats.HitCount, stats.MissCount)
	}
}

func TestCacheGetReturnsCopy(t *testing.T) {
	cache := NewCache(1024, nil)
	cache.Set("rec-1", []byte("original"))

	got, _ := cache.Get("rec-1")
	got[0] = 'X'

	again, _ := cache.Get("rec-1")
	if string(again) != "original" {
		t.Errorf("Expected cached data unchanged, got %q", again)
	}
}

func TestCacheUpdateReplacesData(t *testing.T) {
	cache := NewCache(1024, nil)

	cache.Set("rec-1", []byte("short"))
	cache.Set("rec-1", []byte("considerably longer data"))

	got, found := cache.Get("rec-1")
	if !found || string(got) != "considerably longer data" {
		t.Errorf("Expected updated data, got %q (found=%v)", got, found)
	}

	stats := cache.Stats()
	if stats.EntryCount != 1 {
		t.Errorf("Expected entry count to stay 1, got %d", stats.EntryCount)
	}
	if stats.TotalSize != int64(len("considerably longer data")) {
		t.Errorf("Expected size of updated data, got %d", stats.TotalSize)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewCache(30, nil)

	cache.Set("a", []byte("0123456789")) // 10 bytes
	cache.Set("b", []byte("0123456789"))
	cache.Set("c", []byte("0123456789"))

	// Touch "a" so "b" becomes the oldest.
	cache.Get("a")

	cache.Set("d", []byte("0123456789"))

	if _, found := cache.Get("b"); found {
		t.Error("Expected b to be evicted as least recently used")
	}
	for _, id := range []string{"a", "c", "d"} {
		if _, found := cache.Get(id); !found {
			t.Errorf("Expected %s to survive eviction", id)
		}
	}

	stats := cache.Stats()
	if stats.EvictionCount != 1 {
		t.Errorf("Expected 1 eviction, got %d", stats.EvictionCount)
	}
}

func TestCacheRejectsOversizedData(t *testing.T) {
	cache := NewCache(8, nil)

	cache.Set("huge", []byte("far too large for this cache"))

	if _, found := cache.Get("huge"); found {
		t.Error("Expected oversized data not to be cached")
	}
	if stats := cache.Stats(); stats.EntryCount != 0 {
		t.Errorf("Expected empty cache, got %d entries", stats.EntryCount)
	}
}

func TestCacheDelete(t *testing.T) {
	cache := NewCache(1024, nil)
	cache.Set("rec-1", []byte("data"))

	cache.Delete("rec-1")

	if _, found := cache.Get("rec-1"); found {
		t.Error("Expected record removed from cache")
	}
	if stats := cache.Stats(); stats.TotalSize != 0 {
		t.Errorf("Expected zero size after delete, got %d", stats.TotalSize)
	}
}

func TestCacheManyEntries(t *testing.T) {
	cache := NewCache(100, nil)

	for i := 0; i < 50; i++ {
		cache.Set(fmt.Sprintf("rec-%d", i), []byte("0123456789"))
	}

	stats := cache.Stats()
	if stats.TotalSize > 100 {
		t.Errorf("Expected total size within budget, got %d", stats.TotalSize)
	}
	if stats.EntryCount != 10 {
		t.Errorf("Expected 10 surviving entries, got %d", stats.EntryCount)
	}
}
