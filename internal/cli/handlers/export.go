package handlers

import (
	"fmt"
	"io"

	"actlog/internal/cli"
)

// ExportLogs writes the log collection as CSV to stdout
func ExportLogs(deps *cli.Deps) {
	if _, err := deps.Services.Export.ExportLogs(deps.Stdout); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
	}
}

// ExportCategories writes the taxonomy as CSV to stdout
func ExportCategories(deps *cli.Deps) {
	if _, err := deps.Services.Export.ExportCategories(deps.Stdout); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
	}
}

// ImportLogs replaces the log collection with the rows of a log CSV
func ImportLogs(deps *cli.Deps, r io.Reader) {
	result, err := deps.Services.Export.ImportLogs(r)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Expected the columns produced by 'actlog export logs'")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Imported %d %s (previous collection backed up)\n",
		result.Imported, cli.Pluralize("entry", result.Imported))
	if result.Repaired > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: recomputed the duration of %d %s from their clock times\n",
			result.Repaired, cli.Pluralize("row", result.Repaired))
	}
	if result.Skipped > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: skipped %d malformed %s\n",
			result.Skipped, cli.Pluralize("row", result.Skipped))
	}
}

// ImportCategories replaces the taxonomy with the rows of a category CSV
func ImportCategories(deps *cli.Deps, r io.Reader) {
	result, err := deps.Services.Export.ImportCategories(r)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Expected the columns produced by 'actlog export categories'")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Imported %d categories (previous taxonomy backed up)\n", result.Imported)
	if result.Skipped > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: skipped %d malformed %s\n",
			result.Skipped, cli.Pluralize("row", result.Skipped))
	}
}
