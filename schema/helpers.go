package schema

import (
	"path"
	"strings"
)

// Clamp bounds v to the [low, high] interval.
func Clamp(low, high, v float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// FileExtension extracts the lower-cased extension of a filename without
// the leading dot. Files without an extension return "".
func FileExtension(filename string) string {
	ext := path.Ext(filename)
	if ext == "" || ext == "." {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// WeekdayLabels are the weekday histogram labels, Sunday first to match
// calendar charting downstream.
var WeekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// SizeRangeLabels are the commit size histogram bucket labels, in order.
var SizeRangeLabels = []string{"0-50", "51-100", "101-200", "201-500", "500+"}

// SizeBucketIndex returns the histogram bucket for a commit of the given
// total changed line count.
func SizeBucketIndex(size int) int {
	switch {
	case size <= 50:
		return 0
	case size <= 100:
		return 1
	case size <= 200:
		return 2
	case size <= 500:
		return 3
	default:
		return 4
	}
}
