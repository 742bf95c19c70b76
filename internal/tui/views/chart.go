package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"actlog/internal/service"
	"actlog/internal/stats"
	"actlog/internal/tui/ui"
	"actlog/internal/window"
)

// chartBarWidth is the width of the longest bar in cells
const chartBarWidth = 30

// dimensionCycle is the order in which 'b' cycles the grouping dimension
var dimensionCycle = []stats.Dimension{stats.ByCategory, stats.BySubcategory, stats.ByDate}

// ChartModel is the model for the chart view
type ChartModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	win     window.Window
	dim     stats.Dimension
	report  *service.StatsReport
	loading bool
	err     error
}

// NewChartModel creates a new chart view model
func NewChartModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) ChartModel {
	return ChartModel{
		services: services,
		styles:   styles,
		keys:     keys,
		win:      window.Week,
		dim:      stats.ByCategory,
	}
}

// reportLoadedMsg is sent when a stats report is loaded
type reportLoadedMsg struct {
	report *service.StatsReport
	err    error
}

// Init implements tea.Model
func (m ChartModel) Init() tea.Cmd {
	return m.loadReport()
}

// Update implements tea.Model
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Today):
			m.win = window.Today
			return m, m.loadReport()
		case key.Matches(msg, m.keys.Yesterday):
			m.win = window.Yesterday
			return m, m.loadReport()
		case key.Matches(msg, m.keys.ThisWeek):
			m.win = window.Week
			return m, m.loadReport()
		case key.Matches(msg, m.keys.ThisMonth):
			m.win = window.Month
			return m, m.loadReport()
		case key.Matches(msg, m.keys.AllTime):
			m.win = window.All
			return m, m.loadReport()
		case key.Matches(msg, m.keys.Dimension):
			m.dim = nextDimension(m.dim)
			return m, m.loadReport()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadReport()
		}

	case reportLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.report = msg.report
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m ChartModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Time by %s (%s)", m.dim, m.win)
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if m.report == nil {
		b.WriteString("No data")
		return b.String()
	}

	summary := m.report.Summary
	b.WriteString(m.renderStatLine("Total time:", formatDuration(summary.TotalMinutes)))
	b.WriteString(m.renderStatLine("Total entries:", fmt.Sprintf("%d %s", summary.EntryCount, pluralize("entry", summary.EntryCount))))
	b.WriteString(m.renderStatLine("Active days:", fmt.Sprintf("%d %s", summary.DaysWithEntries, pluralize("day", summary.DaysWithEntries))))

	if len(m.report.Groups) == 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("No entries in this window"))
		return b.String()
	}

	maxMinutes := 0
	maxNameWidth := 0
	for _, g := range m.report.Groups {
		if g.TotalMinutes > maxMinutes {
			maxMinutes = g.TotalMinutes
		}
		if len(g.Name) > maxNameWidth {
			maxNameWidth = len(g.Name)
		}
	}

	b.WriteString("\n")
	for _, g := range m.report.Groups {
		label := m.styles.ChartLabel.Render(fmt.Sprintf("%-*s", maxNameWidth, g.Name))
		bar := m.styles.ChartBar.Render(renderBar(g.TotalMinutes, maxMinutes))
		b.WriteString(fmt.Sprintf("%s %s %s\n", label, bar, formatDuration(g.TotalMinutes)))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("t/y/w/m/a window  b group by  r refresh"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *ChartModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Window returns the currently selected window
func (m ChartModel) Window() window.Window {
	return m.win
}

// Dimension returns the current grouping dimension
func (m ChartModel) Dimension() stats.Dimension {
	return m.dim
}

// loadReport creates a command to compute the stats report
func (m ChartModel) loadReport() tea.Cmd {
	win, dim := m.win, m.dim
	return func() tea.Msg {
		report, err := m.services.Stats.Report(win, dim)
		return reportLoadedMsg{report: report, err: err}
	}
}

func (m ChartModel) renderStatLine(label, value string) string {
	return m.styles.StatLabel.Render(label) + " " + m.styles.StatValue.Render(value) + "\n"
}

// renderBar renders a proportional bar, at least one cell for non-zero values
func renderBar(minutes, maxMinutes int) string {
	if minutes <= 0 || maxMinutes <= 0 {
		return ""
	}
	cells := minutes * chartBarWidth / maxMinutes
	if cells < 1 {
		cells = 1
	}
	return strings.Repeat("█", cells)
}

// nextDimension cycles to the next grouping dimension
func nextDimension(dim stats.Dimension) stats.Dimension {
	for i, d := range dimensionCycle {
		if d == dim {
			return dimensionCycle[(i+1)%len(dimensionCycle)]
		}
	}
	return dimensionCycle[0]
}
