package uploading

import (
	"path/filepath"
	"strings"
)

// videoExtensions maps the accepted upload extensions to their MIME types.
var videoExtensions = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
}

// IsVideoFile reports whether the file name carries a recognized video
// extension. Anything else is rejected before extraction is attempted.
func IsVideoFile(name string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// MimeTypeFor returns the MIME type for a video file name, defaulting to
// video/mp4 for unknown extensions.
func MimeTypeFor(name string) string {
	if mime, ok := videoExtensions[strings.ToLower(filepath.Ext(name))]; ok {
		return mime
	}
	return "video/mp4"
}

// TitleFor derives a display title from a file name by stripping the
// extension.
func TitleFor(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
