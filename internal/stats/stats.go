// Package stats aggregates log entries into the totals behind the chart
// views. Callers filter by window first; aggregation itself is window-blind.
package stats

import (
	"sort"

	"actlog/internal/logbook"
)

// Dimension selects the grouping key for a breakdown.
type Dimension string

const (
	ByCategory    Dimension = "category"
	BySubcategory Dimension = "subcategory"
	ByDate        Dimension = "date"
)

// ParseDimension resolves a dimension name. Empty input means ByCategory.
func ParseDimension(name string) (Dimension, bool) {
	switch Dimension(name) {
	case ByCategory, BySubcategory, ByDate:
		return Dimension(name), true
	case "":
		return ByCategory, true
	}
	return ByCategory, false
}

// GroupTotal is the aggregate for one group of a breakdown.
type GroupTotal struct {
	Name         string
	TotalMinutes int
	EntryCount   int
}

// Summary contains overall totals for a set of entries.
type Summary struct {
	TotalMinutes    int
	EntryCount      int
	DaysWithEntries int
}

// Summarize computes overall totals for the given entries.
func Summarize(entries []logbook.Entry) Summary {
	s := Summary{}
	days := make(map[string]bool)

	for _, e := range entries {
		s.TotalMinutes += e.DurationMinutes
		s.EntryCount++
		days[e.Date] = true
	}

	s.DaysWithEntries = len(days)
	return s
}

// Breakdown groups entries by the given dimension and returns totals sorted
// by minutes descending (name ascending on ties, so output is stable).
// Entries with an empty group value are skipped.
func Breakdown(entries []logbook.Entry, dim Dimension) []GroupTotal {
	groups := make(map[string]*GroupTotal)

	for _, e := range entries {
		var key string
		switch dim {
		case BySubcategory:
			key = e.Subcategory
		case ByDate:
			key = e.Date
		default:
			key = e.Category
		}
		if key == "" {
			continue
		}

		g, ok := groups[key]
		if !ok {
			g = &GroupTotal{Name: key}
			groups[key] = g
		}
		g.TotalMinutes += e.DurationMinutes
		g.EntryCount++
	}

	totals := make([]GroupTotal, 0, len(groups))
	for _, g := range groups {
		totals = append(totals, *g)
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].TotalMinutes != totals[j].TotalMinutes {
			return totals[i].TotalMinutes > totals[j].TotalMinutes
		}
		return totals[i].Name < totals[j].Name
	})

	return totals
}
