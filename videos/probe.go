package videos

import "context"

// ProbeInfo describes a loaded media source.
type ProbeInfo struct {
	DurationSeconds float64
	Width           int
	Height          int
	MimeType        string
}

// MediaProbe abstracts the decode, seek and rasterize capabilities the
// extractor needs, so the extraction algorithm does not depend on a concrete
// media stack.
//
// Load prepares a source for probing and reports its metadata. CaptureFrame
// rasterizes the frame at the given timestamp into JPEG bytes at the source's
// native dimensions. Release frees whatever Load and CaptureFrame allocated
// for the reference; callers must release every reference they load, whether
// or not extraction succeeded.
type MediaProbe interface {
	Load(ctx context.Context, ref string) (*ProbeInfo, error)
	CaptureFrame(ctx context.Context, ref string, atSeconds float64) ([]byte, error)
	Release(ref string)
}
