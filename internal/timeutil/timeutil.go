// Package timeutil provides calendar helpers shared by the window filter
// and the CLI date flags.
package timeutil

import (
	"fmt"
	"time"
)

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsInRange checks if the given time t falls within the range [start, end] (inclusive)
func IsInRange(t, start, end time.Time) bool {
	return (t.Equal(start) || t.After(start)) && (t.Equal(end) || t.Before(end))
}

// FormatDate formats a time as a YYYY-MM-DD calendar date.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDate parses a calendar date in YYYY-MM-DD or DD/MM/YYYY format.
func ParseDate(input string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or DD/MM/YYYY)", input)
}
