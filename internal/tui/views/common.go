package views

import (
	"fmt"
	"strings"

	"actlog/internal/logbook"
	"actlog/internal/tui/ui"
)

// LogRenderOptions configures how log entries are rendered
type LogRenderOptions struct {
	ShowDate bool // Show the date column (multi-day windows)
	Width    int  // Available width for rendering
	Cursor   int  // Currently selected row index (-1 for none)
}

// RenderLogRows renders a list of log entries with aligned columns
func RenderLogRows(entries []logbook.Entry, styles ui.Styles, opts LogRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	type rowData struct {
		index    string
		date     string
		time     string
		activity string
		duration string
	}

	maxIndexWidth := 0
	maxActivityWidth := 0
	data := make([]rowData, len(entries))

	for i, e := range entries {
		indexStr := fmt.Sprintf("[%d]", i+1)
		if len(indexStr) > maxIndexWidth {
			maxIndexWidth = len(indexStr)
		}

		activity := formatActivity(e)
		if len(activity) > maxActivityWidth {
			maxActivityWidth = len(activity)
		}

		data[i] = rowData{
			index:    indexStr,
			date:     e.Date,
			time:     formatTimeRange(e),
			activity: activity,
			duration: formatDuration(e.DurationMinutes),
		}
	}

	// Limit activity width to leave room for the duration column
	maxAllowed := opts.Width - maxIndexWidth - 30
	if maxAllowed < 20 {
		maxAllowed = 20
	}
	if maxActivityWidth > maxAllowed {
		maxActivityWidth = maxAllowed
	}

	var b strings.Builder
	for i, rd := range data {
		style := styles.RowNormal
		if i == opts.Cursor {
			style = styles.RowSelected
		}

		activity := rd.activity
		if len(activity) > maxActivityWidth {
			activity = activity[:maxActivityWidth-1] + "…"
		}

		index := styles.RowIndex.Render(fmt.Sprintf("%-*s", maxIndexWidth, rd.index))
		cols := []string{index}
		if opts.ShowDate {
			cols = append(cols, styles.RowDate.Render(rd.date))
		}
		cols = append(cols,
			styles.RowTime.Render(rd.time),
			fmt.Sprintf("%-*s", maxActivityWidth, activity),
			styles.RowDuration.Render(rd.duration),
		)

		b.WriteString(style.Render(strings.Join(cols, " ")))
		b.WriteString("\n")
	}

	return b.String()
}

// formatActivity renders "Category/Subcategory", eliding a None subcategory
func formatActivity(e logbook.Entry) string {
	if e.Subcategory == "" || e.Subcategory == logbook.NoSubcategoryName {
		return e.Category
	}
	return e.Category + "/" + e.Subcategory
}

// formatTimeRange renders "HH:MM-HH:MM", marking overnight activities
func formatTimeRange(e logbook.Entry) string {
	if e.SpansMidnight() {
		return fmt.Sprintf("%s-%s (+1d)", e.StartTime, e.EndTime)
	}
	return fmt.Sprintf("%s-%s", e.StartTime, e.EndTime)
}

// formatDuration formats minutes as human-readable duration
func formatDuration(minutes int) string {
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

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
