package logbook

import (
	"fmt"
	"regexp"
	"strconv"
)

// clockPattern matches a 24h clock time in HH:MM format (e.g. "09:30", "23:05")
var clockPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// ParseClock parses a 24h clock time in HH:MM format and returns minutes
// since midnight.
// Valid inputs: "00:00" (returns 0), "9:30" (returns 570), "23:59" (returns 1439)
// Invalid inputs: "24:00", "12:5", "noon", ""
func ParseClock(input string) (minutes int, err error) {
	matches := clockPattern.FindStringSubmatch(input)
	if matches == nil {
		return 0, fmt.Errorf("invalid clock time: expected HH:MM (24h), got %q", input)
	}

	hours, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time: expected HH:MM (24h), got %q", input)
	}

	mins, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time: expected HH:MM (24h), got %q", input)
	}

	return hours*60 + mins, nil
}

// FormatClock formats minutes since midnight as an HH:MM clock time.
// Values are taken modulo a day so midnight spillover formats as the
// next day's clock time.
func FormatClock(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ComputeDuration returns the minutes between two clock times on a nominal
// day. When end is lexically before start the activity is treated as
// crossing midnight and a full day is added:
//
//	ComputeDuration("22:00", "23:00") == 60
//	ComputeDuration("23:30", "00:45") == 75
//
// This is the single source of truth for entry durations; every path that
// changes either time field must call it and overwrite the stored duration.
func ComputeDuration(start, end string) (int, error) {
	startMins, err := ParseClock(start)
	if err != nil {
		return 0, fmt.Errorf("start time: %w", err)
	}

	endMins, err := ParseClock(end)
	if err != nil {
		return 0, fmt.Errorf("end time: %w", err)
	}

	if endMins < startMins {
		endMins += MinutesPerDay
	}

	return endMins - startMins, nil
}
