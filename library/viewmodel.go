package library

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lvbauer/retrovault/videos"
)

// ViewMode is the top-level display mode controlling which records are
// eligible before search and category filtering.
type ViewMode string

const (
	ViewHome      ViewMode = "home"
	ViewAll       ViewMode = "all"
	ViewFavorites ViewMode = "favorites"
	ViewUpload    ViewMode = "upload"
)

// Filter is the UI-selected filter state applied to the collection.
type Filter struct {
	Mode     ViewMode
	Query    string
	Category string // videos.CategoryAll means no category restriction
}

// DerivedStats are display aggregates over the full collection. They are
// recomputed on every change, never stored.
type DerivedStats struct {
	TotalVideos     int
	TotalCategories int
	TotalSize       string
	TotalDuration   string
}

// Visible returns the records to render for the given filter state. It is a
// pure function of its inputs: the favorites view keeps only favorites, a
// non-empty query keeps case-insensitive substring matches on title,
// description or category, and a concrete category keeps exact matches.
func Visible(records []videos.VideoRecord, f Filter) []videos.VideoRecord {
	filtered := make([]videos.VideoRecord, 0, len(records))

	query := strings.ToLower(f.Query)

	for _, r := range records {
		if f.Mode == ViewFavorites && !r.IsFavorite {
			continue
		}

		if query != "" {
			if !strings.Contains(strings.ToLower(r.Title), query) &&
				!strings.Contains(strings.ToLower(r.Description), query) &&
				!strings.Contains(strings.ToLower(r.Category), query) {
				continue
			}
		}

		if f.Category != "" && f.Category != videos.CategoryAll && r.Category != f.Category {
			continue
		}

		filtered = append(filtered, r)
	}

	return filtered
}

// Stats computes the display aggregates over the full collection, not the
// filtered view.
//
// TotalSize keeps the archive's historical arithmetic: each record
// contributes the numeric component of its formatted size string and the sum
// is divided by 1000 and labelled GB. The result is only meaningful while
// every record's size is megabyte-denominated; it is kept for display parity
// with the existing archive UI.
func Stats(records []videos.VideoRecord) DerivedStats {
	categories := make(map[string]struct{})
	sizeSum := 0
	durationSeconds := 0

	for _, r := range records {
		if r.Category != "" {
			categories[r.Category] = struct{}{}
		}
		sizeSum += numericComponent(r.Size)
		durationSeconds += parseDurationSeconds(r.Duration)
	}

	return DerivedStats{
		TotalVideos:     len(records),
		TotalCategories: len(categories),
		TotalSize:       fmt.Sprintf("%.1f GB", float64(sizeSum)/1000),
		TotalDuration:   formatTotalDuration(durationSeconds),
	}
}

// numericComponent strips everything but digits from a formatted size string
// and parses the remainder, so "245 MB" contributes 245.
func numericComponent(s string) int {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

// parseDurationSeconds parses a formatted H:MM:SS or M:SS duration string.
// Unparseable strings contribute zero.
func parseDurationSeconds(s string) int {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}

	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

func formatTotalDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}
