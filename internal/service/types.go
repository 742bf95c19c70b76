package service

import (
	"time"

	"actlog/internal/logbook"
	"actlog/internal/window"
)

// ListResult is a window-filtered view of the log collection, sorted for
// display (date descending) with its total duration precomputed.
type ListResult struct {
	Entries      []logbook.Entry
	Window       window.Window
	Now          time.Time
	TotalMinutes int
}

// ImportResult describes the outcome of a wholesale CSV import.
type ImportResult struct {
	Imported int // entries accepted into the new collection
	Repaired int // entries whose duration was recomputed from the times
	Skipped  int // rows rejected as malformed
}

// CascadeResult describes what a category removal touched.
type CascadeResult struct {
	RewrittenLogs int
}
