package library

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lvbauer/retrovault/logging"
	"github.com/lvbauer/retrovault/videos"
)

// Library is the in-memory video collection. Records are kept most-recent
// first; new records are prepended. All access goes through the mutex, so
// concurrent extraction workers can add records without breaking the ordering
// or ID uniqueness guarantees.
type Library struct {
	logger logging.Logger

	mu      sync.RWMutex
	records []videos.VideoRecord
	ids     map[string]struct{}
}

// New creates a library pre-populated with the given records, oldest last.
func New(logger logging.Logger, seed []videos.VideoRecord) *Library {
	if logger == nil {
		logger = logging.NopLogger
	}

	lib := &Library{
		logger:  logger,
		records: make([]videos.VideoRecord, 0, len(seed)),
		ids:     make(map[string]struct{}),
	}

	for i := len(seed) - 1; i >= 0; i-- {
		lib.Add(seed[i])
	}
	return lib
}

// Add prepends a record to the collection and returns it as stored. A blank
// or colliding ID is replaced with a fresh UUID so IDs stay unique.
func (l *Library) Add(record videos.VideoRecord) videos.VideoRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	} else if _, taken := l.ids[record.ID]; taken {
		l.logger.Warn("duplicate record ID, assigning a new one", "id", record.ID, "title", record.Title)
		record.ID = uuid.NewString()
	}

	l.ids[record.ID] = struct{}{}
	l.records = append([]videos.VideoRecord{record}, l.records...)
	return record
}

// ToggleFavorite flips the favorite flag on the matching record. It reports
// whether a record with that ID exists; an absent ID leaves the collection
// unchanged.
func (l *Library) ToggleFavorite(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.records {
		if l.records[i].ID == id {
			l.records[i].IsFavorite = !l.records[i].IsFavorite
			return true
		}
	}
	return false
}

// RecordPlay increments the view count of the matching record by exactly one
// and returns the record as it was at play time, before the increment. The
// player should display that snapshot rather than re-read the collection.
func (l *Library) RecordPlay(id string) (videos.VideoRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.records {
		if l.records[i].ID == id {
			snapshot := l.records[i]
			l.records[i].Views++
			return snapshot, true
		}
	}
	return videos.VideoRecord{}, false
}

// Get returns the record with the given ID.
func (l *Library) Get(id string) (videos.VideoRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.records {
		if l.records[i].ID == id {
			return l.records[i], true
		}
	}
	return videos.VideoRecord{}, false
}

// SetThumbnailURL attaches a lazily derived thumbnail reference to the
// matching record.
func (l *Library) SetThumbnailURL(id, url string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.records {
		if l.records[i].ID == id {
			l.records[i].ThumbnailURL = url
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the collection in display order. Mutating the
// returned slice does not affect the library.
func (l *Library) Snapshot() []videos.VideoRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]videos.VideoRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records in the collection.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
