package thumbs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lvbauer/retrovault/logging"
	"github.com/lvbauer/retrovault/videos"
)

// Store writes thumbnail images to a directory and hands out file paths that
// records can carry as their thumbnail reference.
type Store struct {
	dir    string
	logger logging.Logger
}

// NewStore creates the thumbnail directory if needed.
func NewStore(dir string, logger logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NopLogger
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	return &Store{dir: dir, logger: logger}, nil
}

// Put writes the thumbnail bytes for a record and returns the file path.
func (s *Store) Put(id string, data []byte) (string, error) {
	path := s.Path(id)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write thumbnail: %w", err)
	}
	s.logger.Debug("Stored thumbnail", "id", id, "path", path, "bytes", len(data))
	return path, nil
}

// Path returns the file path a record's thumbnail would be stored at.
func (s *Store) Path(id string) string {
	return filepath.Join(s.dir, id+".jpg")
}

// Provider derives thumbnails lazily for records that do not carry one,
// keeping the result in the store and the byte cache.
type Provider struct {
	logger    logging.Logger
	store     *Store
	cache     Cache
	extractor videos.Extractor
}

// NewProvider creates a thumbnail provider.
func NewProvider(logger logging.Logger, store *Store, cache Cache, extractor videos.Extractor) *Provider {
	if logger == nil {
		logger = logging.NopLogger
	}

	return &Provider{
		logger:    logger,
		store:     store,
		cache:     cache,
		extractor: extractor,
	}
}

// Ensure returns a thumbnail reference for the record, deriving one from its
// video source on first display if none exists yet.
func (p *Provider) Ensure(ctx context.Context, record videos.VideoRecord) (string, error) {
	if record.ThumbnailURL != "" {
		return record.ThumbnailURL, nil
	}

	if _, ok := p.cache.Get(record.ID); ok {
		return p.store.Path(record.ID), nil
	}

	src := videos.Source{Ref: record.VideoURL, Name: record.Title}
	meta, err := p.extractor.Extract(ctx, src)
	p.extractor.Release(src)
	if err != nil {
		return "", err
	}

	path, err := p.store.Put(record.ID, meta.Thumbnail.Data)
	if err != nil {
		return "", err
	}

	p.cache.Set(record.ID, meta.Thumbnail.Data)
	return path, nil
}
