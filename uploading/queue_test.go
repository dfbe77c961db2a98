package uploading

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lvbauer/retrovault/thumbs"
	"github.com/lvbauer/retrovault/videos"
)

// fakeExtractor fails extraction for refs listed in failing.
type fakeExtractor struct {
	mu       sync.Mutex
	failing  map[string]bool
	extracts []string
	releases []string
}

func newFakeExtractor(failing ...string) *fakeExtractor {
	f := &fakeExtractor{failing: make(map[string]bool)}
	for _, ref := range failing {
		f.failing[ref] = true
	}
	return f
}

func (f *fakeExtractor) Extract(ctx context.Context, src videos.Source) (*videos.Metadata, error) {
	f.mu.Lock()
	f.extracts = append(f.extracts, src.Ref)
	f.mu.Unlock()

	if f.failing[src.Ref] {
		return nil, videos.NewLoadFailureError(src.Ref, errors.New("decode failed"))
	}

	meta := &videos.Metadata{
		Duration:  "1:30",
		Thumbnail: &videos.Thumbnail{Data: []byte("jpeg"), Width: 640, Height: 360, MimeType: "image/jpeg"},
	}
	if src.Local {
		meta.Size = videos.FormatSize(src.ByteSize)
	}
	return meta, nil
}

func (f *fakeExtractor) Release(src videos.Source) {
	f.mu.Lock()
	f.releases = append(f.releases, src.Ref)
	f.mu.Unlock()
}

func newTestQueue(t *testing.T, extractor videos.Extractor, bufferSize int) Queue {
	t.Helper()
	store, err := thumbs.NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Failed to create thumbnail store: %v", err)
	}
	return NewQueue(nil, extractor, store, bufferSize, time.Second)
}

func TestQueueRejectsNonVideoFiles(t *testing.T) {
	extractor := newFakeExtractor()
	q := newTestQueue(t, extractor, 4)

	if q.Queue(&Job{Path: "/tmp/notes.txt", Name: "notes.txt"}) {
		t.Error("Expected a non-video file to be rejected")
	}
	if len(q.Progress()) != 0 {
		t.Error("Expected no progress slot for a rejected file")
	}

	q.Drain(time.Second)
	if len(extractor.extracts) != 0 {
		t.Error("Expected no extraction attempt for a rejected file")
	}
}

func TestQueueRejectsWhenFull(t *testing.T) {
	q := newTestQueue(t, newFakeExtractor(), 1)

	if !q.Queue(&Job{Path: "/tmp/a.mp4", Name: "a.mp4"}) {
		t.Fatal("Expected first job to be accepted")
	}
	if q.Queue(&Job{Path: "/tmp/b.mp4", Name: "b.mp4"}) {
		t.Error("Expected second job to be rejected when the buffer is full")
	}
}

func TestBatchIsolatesFailures(t *testing.T) {
	extractor := newFakeExtractor("/tmp/broken.mp4")
	q := newTestQueue(t, extractor, 4)

	q.Queue(&Job{Path: "/tmp/broken.mp4", Name: "broken.mp4", ByteSize: 1024})
	q.Queue(&Job{Path: "/tmp/second.mp4", Name: "second.mp4", ByteSize: 2048})
	q.Queue(&Job{Path: "/tmp/third.webm", Name: "third.webm", ByteSize: 4096})

	var completed []videos.VideoRecord
	stopChan := make(chan struct{})
	close(stopChan)
	var wg sync.WaitGroup
	wg.Add(1)
	q.Start(stopChan, &wg, func(r videos.VideoRecord) {
		completed = append(completed, r)
	})
	wg.Wait()

	if len(completed) != 2 {
		t.Fatalf("Expected exactly 2 records from a 3-file batch with one failure, got %d", len(completed))
	}
	if completed[0].Title != "second" || completed[1].Title != "third" {
		t.Errorf("Expected completion order second, third; got %s, %s", completed[0].Title, completed[1].Title)
	}

	// Every source was released, including the failed one.
	if len(extractor.releases) != 3 {
		t.Errorf("Expected all 3 sources released, got %d", len(extractor.releases))
	}

	// The failed file no longer occupies a progress slot.
	if len(q.Progress()) != 0 {
		t.Errorf("Expected empty progress set after the batch, got %d entries", len(q.Progress()))
	}
}

func TestCompletedRecordFields(t *testing.T) {
	extractor := newFakeExtractor()
	q := newTestQueue(t, extractor, 4)

	q.Queue(&Job{Path: "/tmp/holiday clip.mp4", Name: "holiday clip.mp4", ByteSize: 2048})

	var record videos.VideoRecord
	stopChan := make(chan struct{})
	close(stopChan)
	var wg sync.WaitGroup
	wg.Add(1)
	q.Start(stopChan, &wg, func(r videos.VideoRecord) { record = r })
	wg.Wait()

	if record.ID == "" {
		t.Error("Expected a generated record ID")
	}
	if record.Title != "holiday clip" {
		t.Errorf("Expected extension-stripped title, got %q", record.Title)
	}
	if record.Category != "PERSONAL" {
		t.Errorf("Expected default category PERSONAL, got %q", record.Category)
	}
	if record.Duration != "1:30" {
		t.Errorf("Expected extracted duration, got %q", record.Duration)
	}
	if record.Size != "2 KB" {
		t.Errorf("Expected formatted size 2 KB, got %q", record.Size)
	}
	if record.ThumbnailURL == "" {
		t.Error("Expected a stored thumbnail reference")
	}
	if record.Views != 0 || record.IsFavorite {
		t.Error("Expected a fresh record with zero views and no favorite flag")
	}
}

func TestTrackerLifecycle(t *testing.T) {
	tracker := NewTracker()

	tracker.Add("a.mp4")
	tracker.Add("b.mp4")

	snapshot := tracker.Snapshot()
	if len(snapshot) != 2 {
		t.Fatalf("Expected 2 tracked files, got %d", len(snapshot))
	}
	if snapshot[0].Name != "a.mp4" || snapshot[0].State != StatePending {
		t.Errorf("Expected a.mp4 pending first, got %+v", snapshot[0])
	}

	tracker.Set("a.mp4", 50, StateExtracting)
	snapshot = tracker.Snapshot()
	if snapshot[0].Percent != 50 || snapshot[0].State != StateExtracting {
		t.Errorf("Expected a.mp4 at 50%% extracting, got %+v", snapshot[0])
	}

	tracker.Remove("a.mp4")
	snapshot = tracker.Snapshot()
	if len(snapshot) != 1 || snapshot[0].Name != "b.mp4" {
		t.Errorf("Expected only b.mp4 left, got %+v", snapshot)
	}
}

func TestIsVideoFile(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"clip.mp4", true},
		{"clip.MP4", true},
		{"clip.webm", true},
		{"clip.avi", true},
		{"clip.mov", true},
		{"clip.mkv", true},
		{"document.pdf", false},
		{"notes.txt", false},
		{"archive.mp4.gz", false},
		{"noextension", false},
	}

	for _, c := range cases {
		if got := IsVideoFile(c.name); got != c.want {
			t.Errorf("IsVideoFile(%q) = %v, expected %v", c.name, got, c.want)
		}
	}
}
