// Package logbook defines the activity log entry domain type and the
// duration arithmetic that keeps its invariant.
package logbook

import (
	"sort"
	"strconv"
	"sync"
	"time"
)

// Sentinel names used when a category or subcategory reference is removed.
// Log entries are rewritten to these instead of being left dangling.
const (
	UncategorizedName = "Uncategorized"
	NoSubcategoryName = "None"
)

// DateLayout is the calendar-date format used on entries (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Entry represents a single time-boxed activity.
// DurationMinutes must equal the minutes between StartTime and EndTime,
// with midnight wraparound when EndTime is lexically before StartTime.
type Entry struct {
	ID              string     `json:"id"`
	Date            string     `json:"date"`        // YYYY-MM-DD
	Category        string     `json:"category"`
	Subcategory     string     `json:"subcategory"`
	StartTime       string     `json:"start_time"`  // HH:MM, 24h
	EndTime         string     `json:"end_time"`    // HH:MM, 24h
	DurationMinutes int        `json:"duration_minutes"`
	LastModified    *time.Time `json:"last_modified,omitempty"`
}

// SpansMidnight reports whether the activity runs past midnight into the
// calendar day after Date. False when either clock time is malformed.
func (e Entry) SpansMidnight() bool {
	start, err := ParseClock(e.StartTime)
	if err != nil {
		return false
	}
	end, err := ParseClock(e.EndTime)
	if err != nil {
		return false
	}
	return end < start
}

// Patch describes a partial update to an entry. Nil fields are left
// untouched by Apply; a set field replaces the entry's value.
type Patch struct {
	Date            *string
	Category        *string
	Subcategory     *string
	StartTime       *string
	EndTime         *string
	DurationMinutes *int
}

// ChangesTimes reports whether the patch touches either clock time.
// Callers must recompute the duration before persisting such a patch.
func (p Patch) ChangesTimes() bool {
	return p.StartTime != nil || p.EndTime != nil
}

// Apply merges the patch over the entry and returns the result.
// DurationMinutes is only updated when the patch carries it; the merge
// never infers a duration from new clock times.
func (p Patch) Apply(e Entry) Entry {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Subcategory != nil {
		e.Subcategory = *p.Subcategory
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.DurationMinutes != nil {
		e.DurationMinutes = *p.DurationMinutes
	}
	return e
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns an opaque, creation-ordered entry id.
// Ids are nanosecond timestamps, bumped when the clock has not advanced so
// that ids generated in a tight loop stay strictly increasing.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()

	now := time.Now().UnixNano()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}

// SortByDateDesc returns a copy of entries sorted by date descending, the
// display order used by the table and the index-based commands. Entries
// sharing a date keep their relative (insertion) order; malformed dates
// sort last.
func SortByDateDesc(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return dateAfter(sorted[i].Date, sorted[j].Date)
	})
	return sorted
}

// dateAfter reports whether date a sorts before b in the descending view,
// i.e. a is the later date. Malformed dates sort last.
func dateAfter(a, b string) bool {
	ta, errA := time.Parse(DateLayout, a)
	tb, errB := time.Parse(DateLayout, b)
	if errA != nil {
		return false
	}
	if errB != nil {
		return true
	}
	return ta.After(tb)
}
