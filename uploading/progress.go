package uploading

import "sync"

// FileState is the lifecycle stage of one file in an upload batch.
type FileState string

const (
	StatePending    FileState = "pending"
	StateExtracting FileState = "extracting"
	StateDone       FileState = "done"
)

// FileProgress is the displayable progress of one file.
type FileProgress struct {
	Name    string
	Percent int
	State   FileState
}

// Tracker tracks per-file upload progress. Files that finish or fail are
// removed, so the tracker only ever holds the in-flight set.
type Tracker struct {
	mu    sync.Mutex
	order []string
	files map[string]*FileProgress
}

func NewTracker() *Tracker {
	return &Tracker{
		files: make(map[string]*FileProgress),
	}
}

// Add registers a file as pending.
func (t *Tracker) Add(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.files[name]; exists {
		return
	}
	t.order = append(t.order, name)
	t.files[name] = &FileProgress{Name: name, State: StatePending}
}

// Set updates a file's progress.
func (t *Tracker) Set(name string, percent int, state FileState) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if f, ok := t.files[name]; ok {
		f.Percent = percent
		f.State = state
	}
}

// Remove drops a file from the tracker once it has settled.
func (t *Tracker) Remove(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.files[name]; !ok {
		return
	}
	delete(t.files, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Snapshot returns the in-flight files in submission order.
func (t *Tracker) Snapshot() []FileProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]FileProgress, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, *t.files[name])
	}
	return out
}
