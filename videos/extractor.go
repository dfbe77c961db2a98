package videos

import (
	"context"
	"fmt"

	"github.com/lvbauer/retrovault/logging"
)

// Source identifies one media input for extraction.
type Source struct {
	Ref      string // local file path or remote URL
	Name     string // display name, usually the file name
	ByteSize int64  // raw byte length; meaningful only when Local is true
	MimeType string
	Local    bool
}

// Extractor derives duration, a representative thumbnail and, for local
// sources, a human-readable size from a media source. Each source is
// extracted at most once; there is no retry.
type Extractor interface {
	// Extract probes the source and captures its thumbnail frame.
	Extract(ctx context.Context, src Source) (*Metadata, error)

	// Release frees the temporary resources bound to the source. Callers
	// must release every source once extraction has settled, whether it
	// succeeded or failed.
	Release(src Source)
}

type probeExtractor struct {
	logger logging.Logger
	probe  MediaProbe
}

// NewProbeExtractor creates an extractor on top of the given media probe.
func NewProbeExtractor(logger logging.Logger, probe MediaProbe) *probeExtractor {
	if logger == nil {
		logger = logging.NopLogger
	}

	return &probeExtractor{
		logger: logger,
		probe:  probe,
	}
}

func (e *probeExtractor) Extract(ctx context.Context, src Source) (*Metadata, error) {
	if e.probe == nil {
		return nil, NewDecodeUnavailableError("")
	}

	info, err := e.probe.Load(ctx, src.Ref)
	if err != nil {
		e.logger.Error("failed to load media source", "ref", src.Ref, "error", err)
		return nil, err
	}

	seekAt := SeekTarget(info.DurationSeconds)
	e.logger.Debug(fmt.Sprintf("Capturing thumbnail frame at %.2fs of %.2fs", seekAt, info.DurationSeconds))

	frame, err := e.probe.CaptureFrame(ctx, src.Ref, seekAt)
	if err != nil {
		e.logger.Error("failed to capture thumbnail frame", "ref", src.Ref, "error", err)
		return nil, err
	}

	meta := &Metadata{
		Duration: FormatDuration(info.DurationSeconds),
		Thumbnail: &Thumbnail{
			Data:     frame,
			Width:    info.Width,
			Height:   info.Height,
			MimeType: "image/jpeg",
		},
	}

	if src.Local {
		meta.Size = FormatSize(src.ByteSize)
	}

	return meta, nil
}

func (e *probeExtractor) Release(src Source) {
	if e.probe != nil {
		e.probe.Release(src.Ref)
	}
}
