package tokentax

import (
	"fmt"
	"strings"
	"time"
)

// TimeFormat is the UTC date-time format of the Date column.
const TimeFormat = "2006-01-02 15:04:05"

// ParseTime parses a UTC date-time in TimeFormat and returns milliseconds
// since the epoch. Surrounding spaces are ignored.
func ParseTime(s string) (int64, error) {
	str := strings.TrimSpace(s)
	on, err := time.ParseInLocation(TimeFormat, str, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q want format %q: %w", str, TimeFormat, err)
	}
	return on.UnixMilli(), nil
}

// MustParseTime is like ParseTime but panics on error.
func MustParseTime(s string) int64 {
	ms, err := ParseTime(s)
	if err != nil {
		panic(err.Error())
	}
	return ms
}

// FormatTime formats milliseconds since the epoch in TimeFormat, in UTC.
// Milliseconds are truncated.
func FormatTime(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(TimeFormat)
}
