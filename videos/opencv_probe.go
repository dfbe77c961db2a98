package videos

import (
	"context"
	"fmt"
	"sync"

	"gocv.io/x/gocv"

	"github.com/lvbauer/retrovault/logging"
)

// OpenCVProbe implements MediaProbe using gocv. It keeps the capture handle
// open between Load and CaptureFrame, so seeking does not re-open the source.
type OpenCVProbe struct {
	logger logging.Logger

	mu   sync.Mutex
	open map[string]*gocv.VideoCapture
}

// NewOpenCVProbe creates a new OpenCV-based media probe
func NewOpenCVProbe(logger logging.Logger) *OpenCVProbe {
	if logger == nil {
		logger = logging.NopLogger
	}

	return &OpenCVProbe{
		logger: logger,
		open:   make(map[string]*gocv.VideoCapture),
	}
}

// Load opens the source and reads its dimensions and duration from the
// container's frame count and frame rate.
func (p *OpenCVProbe) Load(ctx context.Context, ref string) (*ProbeInfo, error) {
	capture, err := gocv.VideoCaptureFile(ref)
	if err != nil {
		return nil, NewLoadFailureError(ref, err)
	}

	fps := capture.Get(gocv.VideoCaptureFPS)
	frames := capture.Get(gocv.VideoCaptureFrameCount)
	width := int(capture.Get(gocv.VideoCaptureFrameWidth))
	height := int(capture.Get(gocv.VideoCaptureFrameHeight))

	if fps <= 0 || width == 0 || height == 0 {
		capture.Close()
		return nil, NewLoadFailureError(ref, fmt.Errorf("could not read video properties"))
	}

	p.mu.Lock()
	p.open[ref] = capture
	p.mu.Unlock()

	info := &ProbeInfo{
		DurationSeconds: frames / fps,
		Width:           width,
		Height:          height,
		MimeType:        "video/mp4",
	}

	p.logger.Debug(fmt.Sprintf("Opened media source: %dx%d, %.2f fps, %.0f frames", width, height, fps, frames))
	return info, nil
}

// CaptureFrame seeks to the given timestamp, reads one frame and encodes it
// as JPEG at native dimensions.
func (p *OpenCVProbe) CaptureFrame(ctx context.Context, ref string, atSeconds float64) ([]byte, error) {
	p.mu.Lock()
	capture, ok := p.open[ref]
	p.mu.Unlock()

	if !ok {
		return nil, NewLoadFailureError(ref, fmt.Errorf("source not loaded"))
	}

	capture.Set(gocv.VideoCapturePosMsec, atSeconds*1000)

	img := gocv.NewMat()
	defer img.Close()

	if ok := capture.Read(&img); !ok || img.Empty() {
		return nil, NewLoadFailureError(ref, fmt.Errorf("failed to read frame at %.2fs", atSeconds))
	}

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, img, []int{gocv.IMWriteJpegQuality, thumbnailJPEGQuality})
	if err != nil {
		return nil, NewEncodeFailureError(ref, err)
	}
	defer buf.Close()

	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())

	p.logger.Debug(fmt.Sprintf("Captured frame at %.2fs: %d bytes JPEG", atSeconds, len(data)))
	return data, nil
}

// Release closes the capture handle for the reference.
func (p *OpenCVProbe) Release(ref string) {
	p.mu.Lock()
	capture, ok := p.open[ref]
	delete(p.open, ref)
	p.mu.Unlock()

	if ok {
		capture.Close()
	}
}
