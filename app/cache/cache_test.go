package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStoreAndGet(t *testing.T) {
	c := New(1024)
	key := Key("abc123", "all")
	payload := []byte(`{"views":{}}`)

	c.Store(key, payload)

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(got) != string(payload) {
		t.Errorf("payload = %q, want %q", got, payload)
	}

	if _, ok := c.Get(Key("abc123", "other")); ok {
		t.Error("unexpected hit for unstored key")
	}
}

func TestEvictionOrder(t *testing.T) {
	// Each entry is payload + key + 64 bytes overhead; size the cache so
	// only two fit at once
	c := New(400)
	payload := make([]byte, 100)

	c.Store("data:a|filter:1", payload)
	c.Store("data:a|filter:2", payload)

	// Touch entry 1 so entry 2 becomes the eviction candidate
	if _, ok := c.Get("data:a|filter:1"); !ok {
		t.Fatal("entry 1 missing before eviction")
	}

	c.Store("data:a|filter:3", payload)

	if _, ok := c.Get("data:a|filter:2"); ok {
		t.Error("least recently used entry survived eviction")
	}
	if _, ok := c.Get("data:a|filter:1"); !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := c.Get("data:a|filter:3"); !ok {
		t.Error("new entry missing after store")
	}
}

func TestOversizedEntryRejected(t *testing.T) {
	c := New(128)
	c.Store("data:a|filter:all", make([]byte, 1024))

	if c.EntryCount() != 0 {
		t.Errorf("oversized entry was stored, count = %d", c.EntryCount())
	}
	if c.Size() != 0 {
		t.Errorf("size = %d after rejected store, want 0", c.Size())
	}
}

func TestInvalidateDataset(t *testing.T) {
	c := New(DefaultMaxSize)
	payload := []byte("x")

	c.Store(Key("old", "all"), payload)
	c.Store(Key("old", "f1"), payload)
	c.Store(Key("new", "all"), payload)

	removed := c.InvalidateDataset("old")
	if removed != 2 {
		t.Errorf("removed %d entries, want 2", removed)
	}
	if _, ok := c.Get(Key("old", "all")); ok {
		t.Error("invalidated entry still retrievable")
	}
	if _, ok := c.Get(Key("new", "all")); !ok {
		t.Error("entry for other dataset was invalidated")
	}
}

func TestStatsTrackHitsAndMisses(t *testing.T) {
	c := New(1024)
	c.Store("data:a|filter:all", []byte("x"))

	c.Get("data:a|filter:all")
	c.Get("data:a|filter:all")
	c.Get("data:a|filter:missing")

	stats := c.GetStats()
	if stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 2/1", stats.Hits, stats.Misses)
	}
	if stats.HitRate < 0.66 || stats.HitRate > 0.67 {
		t.Errorf("hit rate = %v, want ~0.667", stats.HitRate)
	}
	if stats.TotalEntries != 1 {
		t.Errorf("entries = %d, want 1", stats.TotalEntries)
	}
}

func TestHashFileStableAndContentSensitive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	h1, err := HashFile(path)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Errorf("hash not stable: %s vs %s", h1, h2)
	}

	if err := os.WriteFile(path, []byte("a,b\n1,3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	h3, err := HashFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if h3 == h1 {
		t.Error("hash unchanged after content change")
	}
}

func TestKeyComposition(t *testing.T) {
	key := Key("deadbeef", "dept=Eng")
	if !strings.HasPrefix(key, datasetPrefix("deadbeef")) {
		t.Errorf("key %q missing dataset prefix", key)
	}
	if key != fmt.Sprintf("data:%s|filter:%s", "deadbeef", "dept=Eng") {
		t.Errorf("unexpected key format: %q", key)
	}
}
