package videos

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // ffmpeg emits the captured frame as PNG
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/xfrr/goffmpeg/transcoder"

	"github.com/lvbauer/retrovault/logging"
)

const thumbnailJPEGQuality = 80

// FFmpegProbe implements MediaProbe using FFmpeg. It handles both local
// files and remote URLs, since ffmpeg reads either directly.
type FFmpegProbe struct {
	logger logging.Logger

	mu     sync.Mutex
	loaded map[string]*ffmpegMedia
}

type ffmpegMedia struct {
	info    *ProbeInfo
	workDir string // holds captured frames until Release
}

// NewFFmpegProbe creates a new FFmpeg-based media probe
func NewFFmpegProbe(logger logging.Logger) *FFmpegProbe {
	if logger == nil {
		logger = logging.NopLogger
	}

	return &FFmpegProbe{
		logger: logger,
		loaded: make(map[string]*ffmpegMedia),
	}
}

// Load probes the source metadata and allocates a working directory for
// subsequent frame captures.
func (p *FFmpegProbe) Load(ctx context.Context, ref string) (*ProbeInfo, error) {
	trans := new(transcoder.Transcoder)
	if err := trans.Initialize(ref, ""); err != nil {
		return nil, NewLoadFailureError(ref, err)
	}

	metadata := trans.MediaFile().Metadata()

	durationSeconds, err := strconv.ParseFloat(metadata.Format.Duration, 64)
	if err != nil {
		return nil, NewLoadFailureError(ref, fmt.Errorf("could not parse duration %q: %w", metadata.Format.Duration, err))
	}

	var width, height int
	var mimeType string

	for _, stream := range metadata.Streams {
		if stream.CodecType == "video" {
			width = stream.Width
			height = stream.Height
			mimeType = codecToMimeType(stream.CodecName, metadata.Format.FormatName)
			break // Use first video stream
		}
	}

	if width == 0 || height == 0 {
		return nil, NewLoadFailureError(ref, fmt.Errorf("could not extract video dimensions"))
	}

	workDir, err := os.MkdirTemp("", "retrovault_probe_")
	if err != nil {
		return nil, NewLoadFailureError(ref, fmt.Errorf("failed to create work directory: %w", err))
	}

	info := &ProbeInfo{
		DurationSeconds: durationSeconds,
		Width:           width,
		Height:          height,
		MimeType:        mimeType,
	}

	p.mu.Lock()
	p.loaded[ref] = &ffmpegMedia{info: info, workDir: workDir}
	p.mu.Unlock()

	p.logger.Debug(fmt.Sprintf("Probed media source: %dx%d, %.2fs, %s", width, height, durationSeconds, mimeType))
	return info, nil
}

// CaptureFrame extracts the frame at the given timestamp as JPEG bytes at
// the source's native dimensions.
func (p *FFmpegProbe) CaptureFrame(ctx context.Context, ref string, atSeconds float64) ([]byte, error) {
	p.mu.Lock()
	media, ok := p.loaded[ref]
	p.mu.Unlock()

	if !ok {
		return nil, NewLoadFailureError(ref, fmt.Errorf("source not loaded"))
	}

	frameFile := filepath.Join(media.workDir, "frame.png")

	trans := new(transcoder.Transcoder)
	if err := trans.Initialize(ref, frameFile); err != nil {
		return nil, NewLoadFailureError(ref, fmt.Errorf("failed to initialize transcoder: %w", err))
	}

	trans.MediaFile().SetSeekTime(fmt.Sprintf("%.2f", atSeconds))
	trans.MediaFile().SetVideoCodec("png")      // Lossless intermediate frame
	trans.MediaFile().SetSkipAudio(true)        // Skip audio processing
	trans.MediaFile().SetOutputFormat("image2") // Single image output
	trans.MediaFile().SetVideoBitRate("1")      // Minimal bitrate for single frame

	done := trans.Run(false)
	if err := <-done; err != nil {
		return nil, NewLoadFailureError(ref, fmt.Errorf("ffmpeg frame extraction failed: %w", err))
	}

	frameData, err := os.ReadFile(frameFile)
	if err != nil {
		return nil, NewEncodeFailureError(ref, fmt.Errorf("failed to read captured frame: %w", err))
	}

	jpegData, err := frameToJPEG(frameData)
	if err != nil {
		return nil, NewEncodeFailureError(ref, err)
	}

	p.logger.Debug(fmt.Sprintf("Captured frame at %.2fs: %d bytes JPEG", atSeconds, len(jpegData)))
	return jpegData, nil
}

// Release removes the working directory for the reference and forgets it.
func (p *FFmpegProbe) Release(ref string) {
	p.mu.Lock()
	media, ok := p.loaded[ref]
	delete(p.loaded, ref)
	p.mu.Unlock()

	if ok && media.workDir != "" {
		os.RemoveAll(media.workDir)
	}
}

// frameToJPEG re-encodes the captured frame as JPEG.
func frameToJPEG(frame []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(frame))
	if err != nil {
		return nil, fmt.Errorf("failed to decode captured frame: %w", err)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: thumbnailJPEGQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return out.Bytes(), nil
}

// codecToMimeType maps a video codec to a MIME type, falling back to the
// container format when the codec is unknown.
func codecToMimeType(codec, formatName string) string {
	switch codec {
	case "h264", "h265", "hevc":
		return "video/mp4"
	case "vp8", "vp9", "av1":
		return "video/webm"
	}

	switch {
	case strings.Contains(formatName, "mp4"):
		return "video/mp4"
	case strings.Contains(formatName, "webm"):
		return "video/webm"
	case strings.Contains(formatName, "avi"):
		return "video/avi"
	case strings.Contains(formatName, "matroska"):
		return "video/x-matroska"
	default:
		return "video/mp4"
	}
}
