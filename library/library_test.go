package library

import (
	"testing"

	"github.com/lvbauer/retrovault/videos"
)

func testRecords() []videos.VideoRecord {
	return []videos.VideoRecord{
		{ID: "a", Title: "First", Category: "PROGRAMMING", Duration: "10:00", Size: "100 MB", Views: 5},
		{ID: "b", Title: "Second", Category: "DESIGN", Duration: "5:30", Size: "50 MB", IsFavorite: true},
	}
}

func TestNewPreservesSeedOrder(t *testing.T) {
	lib := New(nil, testRecords())

	snapshot := lib.Snapshot()
	if len(snapshot) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(snapshot))
	}
	if snapshot[0].ID != "a" || snapshot[1].ID != "b" {
		t.Errorf("Expected seed order a, b; got %s, %s", snapshot[0].ID, snapshot[1].ID)
	}
}

func TestAddPrepends(t *testing.T) {
	lib := New(nil, testRecords())

	lib.Add(videos.VideoRecord{ID: "c", Title: "Newest"})

	snapshot := lib.Snapshot()
	if snapshot[0].ID != "c" {
		t.Errorf("Expected newest record first, got %s", snapshot[0].ID)
	}
	if lib.Len() != 3 {
		t.Errorf("Expected 3 records, got %d", lib.Len())
	}
}

func TestAddAssignsIDWhenBlank(t *testing.T) {
	lib := New(nil, nil)

	stored := lib.Add(videos.VideoRecord{Title: "No ID"})
	if stored.ID == "" {
		t.Error("Expected a generated ID for a blank record ID")
	}
}

func TestAddReplacesDuplicateID(t *testing.T) {
	lib := New(nil, testRecords())

	stored := lib.Add(videos.VideoRecord{ID: "a", Title: "Duplicate"})
	if stored.ID == "a" {
		t.Error("Expected a fresh ID for a colliding record ID")
	}

	seen := make(map[string]bool)
	for _, r := range lib.Snapshot() {
		if seen[r.ID] {
			t.Errorf("Duplicate ID in collection: %s", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestToggleFavoriteTwiceRestoresOriginal(t *testing.T) {
	lib := New(nil, testRecords())

	if !lib.ToggleFavorite("a") {
		t.Fatal("Expected toggle to find record a")
	}
	record, _ := lib.Get("a")
	if !record.IsFavorite {
		t.Error("Expected record a to be a favorite after one toggle")
	}

	lib.ToggleFavorite("a")
	record, _ = lib.Get("a")
	if record.IsFavorite {
		t.Error("Expected record a back to non-favorite after two toggles")
	}
}

func TestToggleFavoriteAbsentIDIsNoOp(t *testing.T) {
	lib := New(nil, testRecords())
	before := lib.Snapshot()

	if lib.ToggleFavorite("missing") {
		t.Error("Expected toggle of an absent ID to report false")
	}

	after := lib.Snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Expected collection unchanged, record %d differs", i)
		}
	}
}

func TestRecordPlayIncrementsViewsOnce(t *testing.T) {
	lib := New(nil, testRecords())

	snapshot, ok := lib.RecordPlay("a")
	if !ok {
		t.Fatal("Expected record a to exist")
	}

	// The returned snapshot reflects the state at play time.
	if snapshot.Views != 5 {
		t.Errorf("Expected pre-increment snapshot with 5 views, got %d", snapshot.Views)
	}

	record, _ := lib.Get("a")
	if record.Views != 6 {
		t.Errorf("Expected 6 views after play, got %d", record.Views)
	}
}

func TestRecordPlayNTimes(t *testing.T) {
	lib := New(nil, testRecords())

	const plays = 7
	for i := 0; i < plays; i++ {
		if _, ok := lib.RecordPlay("b"); !ok {
			t.Fatal("Expected record b to exist")
		}
	}

	record, _ := lib.Get("b")
	if record.Views != plays {
		t.Errorf("Expected %d views after %d plays, got %d", plays, plays, record.Views)
	}
}

func TestRecordPlayAbsentID(t *testing.T) {
	lib := New(nil, testRecords())

	if _, ok := lib.RecordPlay("missing"); ok {
		t.Error("Expected play of an absent ID to report false")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	lib := New(nil, testRecords())

	snapshot := lib.Snapshot()
	snapshot[0].Title = "mutated"
	snapshot[0].Views = 9999

	record, _ := lib.Get(snapshot[0].ID)
	if record.Title == "mutated" || record.Views == 9999 {
		t.Error("Expected library records to be unaffected by snapshot mutation")
	}
}

func TestSetThumbnailURL(t *testing.T) {
	lib := New(nil, testRecords())

	if !lib.SetThumbnailURL("a", "/thumbs/a.jpg") {
		t.Fatal("Expected record a to exist")
	}
	record, _ := lib.Get("a")
	if record.ThumbnailURL != "/thumbs/a.jpg" {
		t.Errorf("Expected thumbnail URL to be set, got %q", record.ThumbnailURL)
	}

	if lib.SetThumbnailURL("missing", "x") {
		t.Error("Expected false for an absent ID")
	}
}
