package videos

import (
	"fmt"
	"math"
)

// FormatDuration renders a duration in seconds as H:MM:SS, or M:SS when the
// duration is under an hour. Negative input is treated as zero.
func FormatDuration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}

	total := int(math.Floor(seconds))
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

var sizeUnits = [...]string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count as "<N> <UNIT>", dividing by 1024 until the
// value drops below 1024 or the unit sequence runs out at GB. The final value
// is rounded to the nearest integer.
func FormatSize(bytes int64) string {
	size := float64(bytes)
	unit := 0

	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}

	return fmt.Sprintf("%d %s", int(math.Round(size)), sizeUnits[unit])
}

// SeekTarget returns the timestamp, in seconds, at which the thumbnail frame
// is captured: one second in, or 10% through the clip for clips shorter than
// ten seconds. Skipping the opening frame avoids black lead-ins.
func SeekTarget(durationSeconds float64) float64 {
	target := durationSeconds * 0.1
	if target > 1.0 {
		target = 1.0
	}
	if target < 0 {
		target = 0
	}
	return target
}
