package uploading

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lvbauer/retrovault/logging"
	"github.com/lvbauer/retrovault/thumbs"
	"github.com/lvbauer/retrovault/videos"
)

// Job represents one local file submitted for ingestion into the archive.
type Job struct {
	Path     string
	Name     string
	ByteSize int64
	Category string // defaults to PERSONAL when empty
}

// Queue ingests uploaded files: each accepted job is extracted, its thumbnail
// stored, and the finished record handed to the completion callback. Failures
// are isolated per job; one bad file never aborts the rest of a batch.
type Queue interface {
	// Queue adds an upload job. Non-video files are rejected with a notice
	// and never occupy a progress slot. Returns false if the job was not
	// accepted.
	Queue(job *Job) bool

	// Start begins processing jobs until stopChan closes, then drains the
	// remaining jobs with the configured timeout.
	Start(stopChan <-chan struct{}, wg *sync.WaitGroup, onComplete func(videos.VideoRecord))

	// Drain processes remaining jobs with a timeout, without a callback.
	Drain(timeout time.Duration)

	// Progress returns the in-flight files in submission order.
	Progress() []FileProgress
}

type uploadQueue struct {
	logger       logging.Logger
	extractor    videos.Extractor
	store        *thumbs.Store
	jobs         chan *Job
	tracker      *Tracker
	drainTimeout time.Duration
}

// NewQueue creates an upload queue with the given buffer size.
func NewQueue(logger logging.Logger, extractor videos.Extractor, store *thumbs.Store, bufferSize int, drainTimeout time.Duration) Queue {
	if logger == nil {
		logger = logging.NopLogger
	}

	return &uploadQueue{
		logger:       logger,
		extractor:    extractor,
		store:        store,
		jobs:         make(chan *Job, bufferSize),
		tracker:      NewTracker(),
		drainTimeout: drainTimeout,
	}
}

func (q *uploadQueue) Queue(job *Job) bool {
	if !IsVideoFile(job.Name) {
		q.logger.Warn("Skipping non-video file", "name", job.Name)
		return false
	}

	select {
	case q.jobs <- job:
		q.tracker.Add(job.Name)
		q.logger.Info("Queued file for ingestion", "name", job.Name, "bytes", job.ByteSize)
		return true
	default:
		q.logger.Warn("Upload queue full, dropping file", "name", job.Name)
		return false
	}
}

func (q *uploadQueue) Start(stopChan <-chan struct{}, wg *sync.WaitGroup, onComplete func(videos.VideoRecord)) {
	defer wg.Done()

	for {
		select {
		case job := <-q.jobs:
			q.processJob(job, onComplete)
		case <-stopChan:
			q.drainWithCallback(q.drainTimeout, onComplete)
			return
		}
	}
}

func (q *uploadQueue) Drain(timeout time.Duration) {
	q.drainWithCallback(timeout, nil)
}

func (q *uploadQueue) Progress() []FileProgress {
	return q.tracker.Snapshot()
}

func (q *uploadQueue) drainWithCallback(timeout time.Duration, onComplete func(videos.VideoRecord)) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case job := <-q.jobs:
			q.processJob(job, onComplete)
		case <-timer.C:
			q.logger.Warn("Upload queue drain timeout, dropping remaining jobs")
			return
		default:
			// No more jobs in queue
			return
		}
	}
}

// processJob runs extraction for one file and hands the finished record to
// the callback. The job is removed from progress tracking whether it
// succeeded or failed.
func (q *uploadQueue) processJob(job *Job, onComplete func(videos.VideoRecord)) {
	defer q.tracker.Remove(job.Name)

	q.tracker.Set(job.Name, 50, StateExtracting)

	src := videos.Source{
		Ref:      job.Path,
		Name:     job.Name,
		ByteSize: job.ByteSize,
		MimeType: MimeTypeFor(job.Name),
		Local:    true,
	}

	meta, err := q.extractor.Extract(context.Background(), src)
	q.extractor.Release(src)
	if err != nil {
		q.logger.Error(fmt.Sprintf("Failed to extract %s", job.Name), "error", err)
		return
	}

	id := uuid.NewString()

	thumbnailURL := ""
	if q.store != nil && meta.Thumbnail != nil {
		thumbnailURL, err = q.store.Put(id, meta.Thumbnail.Data)
		if err != nil {
			q.logger.Warn("Failed to store thumbnail, proceeding without one", "name", job.Name, "error", err)
			thumbnailURL = ""
		}
	}

	category := job.Category
	if category == "" {
		category = "PERSONAL"
	}

	record := videos.VideoRecord{
		ID:           id,
		Title:        TitleFor(job.Name),
		Description:  fmt.Sprintf("Uploaded video: %s", job.Name),
		ThumbnailURL: thumbnailURL,
		VideoURL:     job.Path,
		UploadDate:   strings.ToUpper(time.Now().Format("Jan 2, 2006")),
		Category:     category,
		Duration:     meta.Duration,
		Size:         meta.Size,
	}

	q.tracker.Set(job.Name, 100, StateDone)
	q.logger.Info("Ingested file into archive", "name", job.Name, "id", id)

	if onComplete != nil {
		onComplete(record)
	}
}
