package handlers

import (
	"strings"
	"testing"

	"actlog/internal/logbook"
	"actlog/internal/window"
)

func TestAddLog(t *testing.T) {
	td := newTestDeps(t)

	AddLog(td.Deps, "2024-01-15", "Work", "Meetings", "09:00", "10:30")
	td.assertNoExit(t)
	td.assertStdoutContains(t, "Logged:")
	td.assertStdoutContains(t, "Work/Meetings")
	td.assertStdoutContains(t, "1h 30m")
}

func TestAddLogDefaultsDateToToday(t *testing.T) {
	td := newTestDeps(t)

	AddLog(td.Deps, "", "", "", "09:00", "10:00")
	td.assertNoExit(t)

	today := td.Config.Now().Format(logbook.DateLayout)
	td.assertStdoutContains(t, today)
	td.assertStdoutContains(t, "Uncategorized")
}

func TestAddLogInvalidTime(t *testing.T) {
	td := newTestDeps(t)

	AddLog(td.Deps, "2024-01-15", "Work", "None", "25:00", "10:00")
	td.assertExit(t)
	td.assertStderrContains(t, "Error:")
	td.assertStderrContains(t, "Usage:")
}

func TestListLogsEmpty(t *testing.T) {
	td := newTestDeps(t)

	ListLogs(td.Deps, window.All)
	td.assertNoExit(t)
	td.assertStdoutContains(t, "No entries found for all")
}

func TestListLogsAll(t *testing.T) {
	td := newTestDeps(t)

	AddLog(td.Deps, "2024-01-15", "Work", "Meetings", "09:00", "10:00")
	AddLog(td.Deps, "2024-01-16", "Sleep", "None", "23:30", "00:45")
	td.stdout.Reset()

	ListLogs(td.Deps, window.All)
	td.assertNoExit(t)
	td.assertStdoutContains(t, "Entries for all:")
	td.assertStdoutContains(t, "[1] 2024-01-16 23:30-00:45 (+1d)  Sleep (1h 15m)")
	td.assertStdoutContains(t, "[2] 2024-01-15 09:00-10:00  Work/Meetings (1h)")
	td.assertStdoutContains(t, "Total: 2h 15m across 2 entries")
}

func TestEditLog(t *testing.T) {
	td := newTestDeps(t)

	AddLog(td.Deps, "2024-01-15", "Work", "None", "09:00", "10:00")
	td.stdout.Reset()

	newEnd := "12:00"
	EditLog(td.Deps, "1", logbook.Patch{EndTime: &newEnd})
	td.assertNoExit(t)
	td.assertStdoutContains(t, "Updated:")
	td.assertStdoutContains(t, "3h")
}

func TestEditLogNoFlags(t *testing.T) {
	td := newTestDeps(t)

	AddLog(td.Deps, "2024-01-15", "Work", "None", "09:00", "10:00")
	td.stdout.Reset()

	EditLog(td.Deps, "1", logbook.Patch{})
	td.assertExit(t)
	td.assertStderrContains(t, "At least one flag is required")
}

func TestEditLogInvalidIndex(t *testing.T) {
	tests := []struct {
		name  string
		index string
	}{
		{"not a number", "abc"},
		{"out of range", "5"},
		{"zero", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td := newTestDeps(t)
			AddLog(td.Deps, "2024-01-15", "Work", "None", "09:00", "10:00")

			category := "Study"
			EditLog(td.Deps, tt.index, logbook.Patch{Category: &category})
			td.assertExit(t)
			td.assertStderrContains(t, "Hint:")
		})
	}
}

func TestDeleteLogWithConfirmation(t *testing.T) {
	td := newTestDeps(t)

	AddLog(td.Deps, "2024-01-15", "Work", "None", "09:00", "10:00")
	td.stdout.Reset()

	td.withStdin("y\n")
	DeleteLog(td.Deps, "1", false)
	td.assertNoExit(t)
	td.assertStdoutContains(t, "Deleted:")
	td.assertStdoutContains(t, "actlog undo")

	entries, err := td.Services.Log.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty collection, got %d entries", len(entries))
	}
}

func TestDeleteLogCancelled(t *testing.T) {
	td := newTestDeps(t)

	AddLog(td.Deps, "2024-01-15", "Work", "None", "09:00", "10:00")
	td.stdout.Reset()

	td.withStdin("n\n")
	DeleteLog(td.Deps, "1", false)
	td.assertNoExit(t)
	td.assertStdoutContains(t, "Deletion cancelled")

	entries, err := td.Services.Log.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected collection untouched, got %d entries", len(entries))
	}
}

func TestDeleteLogSkipConfirm(t *testing.T) {
	td := newTestDeps(t)

	AddLog(td.Deps, "2024-01-15", "Work", "None", "09:00", "10:00")
	td.stdout.Reset()

	DeleteLog(td.Deps, "1", true)
	td.assertNoExit(t)
	td.assertStdoutContains(t, "Deleted:")
}

func TestUndoDelete(t *testing.T) {
	td := newTestDeps(t)

	AddLog(td.Deps, "2024-01-15", "Work", "None", "09:00", "10:00")
	DeleteLog(td.Deps, "1", true)
	td.stdout.Reset()

	UndoDelete(td.Deps)
	td.assertNoExit(t)
	td.assertStdoutContains(t, "Restored:")
	td.assertStdoutContains(t, "2024-01-15")
}

func TestUndoDeleteEmptyTrash(t *testing.T) {
	td := newTestDeps(t)

	UndoDelete(td.Deps)
	td.assertExit(t)
	td.assertStderrContains(t, "no deleted entries found")
}

func TestPurgeTrash(t *testing.T) {
	td := newTestDeps(t)

	AddLog(td.Deps, "2024-01-15", "Work", "None", "09:00", "10:00")
	DeleteLog(td.Deps, "1", true)
	td.stdout.Reset()

	PurgeTrash(td.Deps, true)
	td.assertNoExit(t)
	td.assertStdoutContains(t, "Purged 1 deleted entry")

	// The trash is empty afterwards.
	td.stderr.Reset()
	UndoDelete(td.Deps)
	td.assertExit(t)
}

func TestPurgeTrashCancelled(t *testing.T) {
	td := newTestDeps(t)

	td.withStdin("\n")
	PurgeTrash(td.Deps, false)
	td.assertNoExit(t)
	td.assertStdoutContains(t, "Purge cancelled")
}

func TestListLogsShowsTimesOnlyForSingleDay(t *testing.T) {
	td := newTestDeps(t)

	today := td.Config.Now().Format(logbook.DateLayout)
	AddLog(td.Deps, today, "Work", "None", "09:00", "10:00")
	td.stdout.Reset()

	ListLogs(td.Deps, window.Today)
	td.assertNoExit(t)

	// Single-day windows omit the date column.
	if strings.Contains(td.stdout.String(), today) {
		t.Errorf("expected no date column for a single-day listing, got:\n%s", td.stdout.String())
	}
	td.assertStdoutContains(t, "09:00-10:00")
}
