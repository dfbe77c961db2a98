package videos

// CategoryAll is the reserved category label meaning "no category filter".
// It is never assigned to a record.
const CategoryAll = "ALL ARCHIVES"

// VideoRecord is one catalogued entry in the archive.
type VideoRecord struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string // may be empty; a thumbnail is then derived on first display
	VideoURL     string // local file path or remote URL
	UploadDate   string
	Category     string
	Duration     string // formatted H:MM:SS or M:SS
	Size         string // formatted human-readable byte count, e.g. "245 MB"
	Views        int
	IsFavorite   bool
}

// Thumbnail represents a captured still frame with its metadata
type Thumbnail struct {
	Data     []byte
	Width    int
	Height   int
	MimeType string
}

// Metadata is the result of extracting a single media source.
type Metadata struct {
	Duration  string
	Thumbnail *Thumbnail
	Size      string // empty for remote sources, where the byte length is unknown
}
