// Package cli provides the CLI presentation layer for the actlog
// application. It handles command-line output formatting and user
// interaction.
package cli

import (
	"fmt"

	"actlog/internal/logbook"
)

// FormatDuration formats minutes as a human-readable string
// Examples: "30m", "2h", "1h 30m"
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatTimeRange formats an entry's clock range, flagging ranges that
// cross midnight. Examples: "09:00-10:30", "23:30-00:45 (+1d)"
func FormatTimeRange(e logbook.Entry) string {
	if e.SpansMidnight() {
		return fmt.Sprintf("%s-%s (+1d)", e.StartTime, e.EndTime)
	}
	return fmt.Sprintf("%s-%s", e.StartTime, e.EndTime)
}

// FormatActivity formats an entry's category/subcategory pair, eliding
// the sentinel subcategory. Examples: "Work/Meetings", "Sleep"
func FormatActivity(e logbook.Entry) string {
	if e.Subcategory == "" || e.Subcategory == logbook.NoSubcategoryName {
		return e.Category
	}
	return fmt.Sprintf("%s/%s", e.Category, e.Subcategory)
}

// FormatEntry formats an entry as a single listing line (without index).
func FormatEntry(e logbook.Entry) string {
	return fmt.Sprintf("%s %s  %s (%s)",
		e.Date, FormatTimeRange(e), FormatActivity(e), FormatDuration(e.DurationMinutes))
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// SpansMultipleDays checks if entries span multiple calendar days
func SpansMultipleDays(entries []logbook.Entry) bool {
	if len(entries) < 2 {
		return false
	}
	firstDay := entries[0].Date
	for _, e := range entries[1:] {
		if e.Date != firstDay {
			return true
		}
	}
	return false
}
