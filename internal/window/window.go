// Package window implements the named time-window filtering applied to log
// entries for display and charting. The filter is pure: callers pass the
// current instant explicitly, and nothing here touches storage or the clock.
package window

import (
	"fmt"
	"strings"
	"time"

	"actlog/internal/logbook"
	"actlog/internal/timeutil"
)

// Window is a named relative time range used to filter log entries.
type Window int

const (
	All Window = iota
	Today
	Yesterday
	Week
	Month
)

var windowNames = map[Window]string{
	All:       "all",
	Today:     "today",
	Yesterday: "yesterday",
	Week:      "week",
	Month:     "month",
}

// String returns the window's name as used on the CLI and in config.
func (w Window) String() string {
	if name, ok := windowNames[w]; ok {
		return name
	}
	return "unknown"
}

// Parse resolves a window name (case-insensitive) to a Window.
func Parse(name string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "all", "a":
		return All, nil
	case "today", "t", "":
		return Today, nil
	case "yesterday", "y":
		return Yesterday, nil
	case "week", "w":
		return Week, nil
	case "month", "m":
		return Month, nil
	}
	return All, fmt.Errorf("unknown window %q (valid: all, today, yesterday, week, month)", name)
}

// Names returns all window names in display order.
func Names() []string {
	return []string{"today", "yesterday", "week", "month", "all"}
}

// Filter returns the entries that overlap the given window relative to now.
//
// An activity whose end clock time is lexically before its start time spans
// past midnight, so it also belongs to the day after its nominal date; a
// plain date-equality check would hide half of such an entry from one of
// the two days' views. Every window predicate therefore applies the overlap
// rule, not raw equality.
//
// Entries with malformed date or clock fields are excluded rather than
// raising. Filtering never reorders: results keep the input order, and All
// returns the input slice unchanged.
func Filter(logs []logbook.Entry, w Window, now time.Time) []logbook.Entry {
	if w == All {
		return logs
	}

	var pred func(logbook.Entry) bool
	today := timeutil.StartOfDay(now)

	switch w {
	case Today:
		pred = overlapsDay(today)
	case Yesterday:
		pred = overlapsDay(today.AddDate(0, 0, -1))
	case Week:
		pred = overlapsRange(today.AddDate(0, 0, -7), today)
	case Month:
		pred = overlapsRange(today.AddDate(0, -1, 0), today)
	default:
		return logs
	}

	filtered := make([]logbook.Entry, 0, len(logs))
	for _, e := range logs {
		if pred(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// overlapsDay builds a predicate matching entries that overlap the single
// calendar day target: the entry's own date equals it, or the entry is from
// the previous day and spills past midnight onto it.
func overlapsDay(target time.Time) func(logbook.Entry) bool {
	return func(e logbook.Entry) bool {
		day, ok := entryDay(e, target.Location())
		if !ok {
			return false
		}
		if day.Equal(target) {
			return true
		}
		return e.SpansMidnight() && day.AddDate(0, 0, 1).Equal(target)
	}
}

// overlapsRange builds a predicate matching entries whose own date falls in
// [from, to] (inclusive both ends), or whose midnight spillover day does.
func overlapsRange(from, to time.Time) func(logbook.Entry) bool {
	return func(e logbook.Entry) bool {
		day, ok := entryDay(e, from.Location())
		if !ok {
			return false
		}
		if timeutil.IsInRange(day, from, to) {
			return true
		}
		return e.SpansMidnight() && timeutil.IsInRange(day.AddDate(0, 0, 1), from, to)
	}
}

// entryDay parses the entry's nominal date at midnight in loc. Entries with
// a malformed date, or with clock times that would make the overlap rule
// undecidable, are reported as unusable and dropped by the caller.
func entryDay(e logbook.Entry, loc *time.Location) (time.Time, bool) {
	day, err := time.ParseInLocation(logbook.DateLayout, e.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	if _, err := logbook.ParseClock(e.StartTime); err != nil {
		return time.Time{}, false
	}
	if _, err := logbook.ParseClock(e.EndTime); err != nil {
		return time.Time{}, false
	}
	return day, true
}
