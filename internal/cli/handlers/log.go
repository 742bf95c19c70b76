// Package handlers implements the CLI command handlers, bridging cobra
// commands to the service layer through injectable deps.
package handlers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"actlog/internal/cli"
	"actlog/internal/logbook"
	"actlog/internal/service"
	"actlog/internal/window"
)

// ListLogs lists log entries for the given window
func ListLogs(deps *cli.Deps, w window.Window) {
	if warning := deps.Services.Log.SnapshotWarning(); warning != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: %v (starting with an empty collection)\n\n", warning)
	}

	result, err := deps.Services.Log.ListWindow(w)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(result.Entries) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries found for %s\n", w)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Entries for %s:\n", w)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))

	maxIndexWidth := len(strconv.Itoa(len(result.Entries)))
	showDate := w == window.All || cli.SpansMultipleDays(result.Entries)

	for i, e := range result.Entries {
		if showDate {
			_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %s %s  %s (%s)\n",
				maxIndexWidth, i+1,
				e.Date,
				cli.FormatTimeRange(e),
				cli.FormatActivity(e),
				cli.FormatDuration(e.DurationMinutes))
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %s  %s (%s)\n",
				maxIndexWidth, i+1,
				cli.FormatTimeRange(e),
				cli.FormatActivity(e),
				cli.FormatDuration(e.DurationMinutes))
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s across %d %s\n",
		cli.FormatDuration(result.TotalMinutes),
		len(result.Entries),
		cli.Pluralize("entry", len(result.Entries)))
}

// AddLog creates a new log entry
func AddLog(deps *cli.Deps, date, category, sub, from, to string) {
	if date == "" {
		date = deps.Config.Now().Format(logbook.DateLayout)
	}

	entry, err := deps.Services.Log.Create(date, category, sub, from, to)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: actlog add --from 09:00 --to 10:30 [--date YYYY-MM-DD] [--category NAME] [--sub NAME]")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s\n", cli.FormatEntry(*entry))
}

// EditLog edits the entry at the given 1-based listing index
func EditLog(deps *cli.Deps, indexStr string, patch logbook.Patch) {
	entry, err := resolveIndex(deps, indexStr)
	if err != nil {
		deps.Exit(1)
		return
	}

	updated, err := deps.Services.Log.Edit(entry.ID, patch)
	if err != nil {
		if errors.Is(err, service.ErrNoChangesSpecified) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: At least one flag is required")
			_, _ = fmt.Fprintln(deps.Stderr, "Usage: actlog edit <index> [--date YYYY-MM-DD] [--category NAME] [--sub NAME] [--from HH:MM] [--to HH:MM]")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Updated: %s\n", cli.FormatEntry(*updated))
}

// DeleteLog deletes the entry at the given 1-based listing index,
// prompting for confirmation unless skipConfirm is set
func DeleteLog(deps *cli.Deps, indexStr string, skipConfirm bool) {
	entry, err := resolveIndex(deps, indexStr)
	if err != nil {
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Entry to delete:")
	_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", cli.FormatEntry(*entry))

	if !skipConfirm {
		if !promptConfirmation(deps.Stdout, deps.Stdin) {
			_, _ = fmt.Fprintln(deps.Stdout, "Deletion cancelled")
			return
		}
	}

	if err := deps.Services.Log.Delete(entry.ID); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Deleted: %s\n", cli.FormatEntry(*entry))
	_, _ = fmt.Fprintln(deps.Stdout, "Tip: Use 'actlog undo' to recover this entry if needed")
}

// UndoDelete restores the most recently deleted entry
func UndoDelete(deps *cli.Deps) {
	restored, err := deps.Services.Log.Undo()
	if err != nil {
		if errors.Is(err, service.ErrNoDeletedEntries) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: no deleted entries found")
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Delete an entry first with 'actlog delete <index>'")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Restored: %s\n", cli.FormatEntry(*restored))
}

// PurgeTrash permanently removes all deleted entries
func PurgeTrash(deps *cli.Deps, skipConfirm bool) {
	if !skipConfirm {
		_, _ = fmt.Fprintln(deps.Stdout, "This permanently removes all deleted entries.")
		if !promptConfirmation(deps.Stdout, deps.Stdin) {
			_, _ = fmt.Fprintln(deps.Stdout, "Purge cancelled")
			return
		}
	}

	count, err := deps.Services.Log.PurgeTrash()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Purged %d deleted %s\n", count, cli.Pluralize("entry", count))
}

// resolveIndex parses and resolves a 1-based listing index, printing the
// error itself; callers only decide the exit path.
func resolveIndex(deps *cli.Deps, indexStr string) (*logbook.Entry, error) {
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid index '%s'. Index must be a number\n", indexStr)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List entries with 'actlog all' to see available indices")
		return nil, err
	}

	entry, err := deps.Services.Log.GetByIndex(index)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List entries with 'actlog all' to see available indices")
		return nil, err
	}
	return entry, nil
}

// promptConfirmation asks the user to confirm a destructive action
func promptConfirmation(stdout io.Writer, stdin io.Reader) bool {
	_, _ = fmt.Fprint(stdout, "Are you sure? [y/N]: ")

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
