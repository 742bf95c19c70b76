package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"actlog/internal/cli"
	"actlog/internal/stats"
	"actlog/internal/window"
)

const chartBarWidth = 30

var chartBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

// ShowStats prints a summary and a horizontal bar chart of the window's
// entries broken down along the given dimension
func ShowStats(deps *cli.Deps, w window.Window, dim stats.Dimension) {
	report, err := deps.Services.Stats.Report(w, dim)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Statistics for %s (by %s):\n", w, dim)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Total time:    %s\n", cli.FormatDuration(report.Summary.TotalMinutes))
	_, _ = fmt.Fprintf(deps.Stdout, "Total entries: %d %s\n",
		report.Summary.EntryCount, cli.Pluralize("entry", report.Summary.EntryCount))
	_, _ = fmt.Fprintf(deps.Stdout, "Active days:   %d %s\n",
		report.Summary.DaysWithEntries, cli.Pluralize("day", report.Summary.DaysWithEntries))

	if len(report.Groups) == 0 {
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))

	nameWidth := 0
	for _, g := range report.Groups {
		if len(g.Name) > nameWidth {
			nameWidth = len(g.Name)
		}
	}
	maxMinutes := report.Groups[0].TotalMinutes

	for _, g := range report.Groups {
		_, _ = fmt.Fprintf(deps.Stdout, "%-*s %s %s\n",
			nameWidth, g.Name,
			chartBarStyle.Render(renderBar(g.TotalMinutes, maxMinutes)),
			cli.FormatDuration(g.TotalMinutes))
	}
}

// renderBar scales a value against the chart maximum. Non-zero values
// always get at least one cell so small groups stay visible.
func renderBar(minutes, maxMinutes int) string {
	if maxMinutes <= 0 || minutes <= 0 {
		return ""
	}
	width := minutes * chartBarWidth / maxMinutes
	if width < 1 {
		width = 1
	}
	return strings.Repeat("█", width)
}
