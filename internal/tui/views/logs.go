package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"actlog/internal/logbook"
	"actlog/internal/service"
	"actlog/internal/tui/ui"
	"actlog/internal/window"
)

// logMode represents the current mode of the logs view
type logMode int

const (
	logModeNormal logMode = iota
	logModeAdd
	logModeEdit
	logModeDelete
)

// Form field order: date, category, subcategory, start, end
const (
	fieldDate = iota
	fieldCategory
	fieldSubcategory
	fieldStart
	fieldEnd
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Date (YYYY-MM-DD, blank = today)",
	"Category",
	"Subcategory",
	"Start (HH:MM)",
	"End (HH:MM)",
}

// LogsModel is the model for the logs view
type LogsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	cursor  int
	entries []logbook.Entry
	win     window.Window
	total   int
	loading bool
	err     error
	status  string

	// Input mode state
	mode         logMode
	inputs       [fieldCount]textinput.Model
	focusedInput int
	editID       string
}

// NewLogsModel creates a new logs view model
func NewLogsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) LogsModel {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		in := textinput.New()
		in.CharLimit = 60
		in.Width = 30
		inputs[i] = in
	}
	inputs[fieldDate].Placeholder = "2024-01-15"
	inputs[fieldCategory].Placeholder = logbook.UncategorizedName
	inputs[fieldSubcategory].Placeholder = logbook.NoSubcategoryName
	inputs[fieldStart].Placeholder = "09:00"
	inputs[fieldEnd].Placeholder = "10:30"

	return LogsModel{
		services: services,
		styles:   styles,
		keys:     keys,
		win:      window.Today,
		inputs:   inputs,
	}
}

// logsLoadedMsg is sent when log entries are loaded
type logsLoadedMsg struct {
	entries []logbook.Entry
	win     window.Window
	total   int
	status  string
	err     error
}

// Init implements tea.Model
func (m LogsModel) Init() tea.Cmd {
	return m.loadLogs("")
}

// Update implements tea.Model
func (m LogsModel) Update(msg tea.Msg) (LogsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case logModeAdd, logModeEdit:
			return m.handleFormMode(msg)
		case logModeDelete:
			return m.handleDeleteMode(msg)
		}

		// Normal mode key handling
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Today):
			m.win = window.Today
			return m, m.loadLogs("")
		case key.Matches(msg, m.keys.Yesterday):
			m.win = window.Yesterday
			return m, m.loadLogs("")
		case key.Matches(msg, m.keys.ThisWeek):
			m.win = window.Week
			return m, m.loadLogs("")
		case key.Matches(msg, m.keys.ThisMonth):
			m.win = window.Month
			return m, m.loadLogs("")
		case key.Matches(msg, m.keys.AllTime):
			m.win = window.All
			return m, m.loadLogs("")
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadLogs("")
		case key.Matches(msg, m.keys.New):
			m.mode = logModeAdd
			m.resetForm("", "", "", "", "")
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Edit):
			if len(m.entries) > 0 && m.cursor < len(m.entries) {
				e := m.entries[m.cursor]
				m.mode = logModeEdit
				m.editID = e.ID
				m.resetForm(e.Date, e.Category, e.Subcategory, e.StartTime, e.EndTime)
				return m, textinput.Blink
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if len(m.entries) > 0 && m.cursor < len(m.entries) {
				m.mode = logModeDelete
			}
			return m, nil
		case key.Matches(msg, m.keys.Undo):
			return m, m.undoDelete()
		}

	case logsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.mode = logModeNormal
		m.status = msg.status
		if msg.err == nil {
			m.entries = msg.entries
			m.win = msg.win
			m.total = msg.total
			if m.cursor >= len(m.entries) {
				m.cursor = max(0, len(m.entries)-1)
			}
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleFormMode handles key events when the add/edit form is open
func (m LogsModel) handleFormMode(msg tea.KeyMsg) (LogsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		start := strings.TrimSpace(m.inputs[fieldStart].Value())
		end := strings.TrimSpace(m.inputs[fieldEnd].Value())
		if start == "" || end == "" {
			return m, nil
		}
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		date := strings.TrimSpace(m.inputs[fieldDate].Value())
		cat := strings.TrimSpace(m.inputs[fieldCategory].Value())
		sub := strings.TrimSpace(m.inputs[fieldSubcategory].Value())
		if m.mode == logModeAdd {
			return m, m.addLog(date, cat, sub, start, end)
		}
		return m, m.editLog(m.editID, date, cat, sub, start, end)

	case key.Matches(msg, m.keys.Back): // Escape
		m.mode = logModeNormal
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		return m, nil

	case msg.String() == "tab":
		m.inputs[m.focusedInput].Blur()
		m.focusedInput = (m.focusedInput + 1) % fieldCount
		m.inputs[m.focusedInput].Focus()
		return m, textinput.Blink

	case msg.String() == "shift+tab":
		m.inputs[m.focusedInput].Blur()
		m.focusedInput = (m.focusedInput - 1 + fieldCount) % fieldCount
		m.inputs[m.focusedInput].Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
	return m, cmd
}

// handleDeleteMode handles key events in the delete confirmation dialog
func (m LogsModel) handleDeleteMode(msg tea.KeyMsg) (LogsModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.cursor < len(m.entries) {
			id := m.entries[m.cursor].ID
			m.mode = logModeNormal
			return m, m.deleteLog(id)
		}
	case "n", "N", "esc":
		m.mode = logModeNormal
	}
	return m, nil
}

// View implements tea.Model
func (m LogsModel) View() string {
	switch m.mode {
	case logModeAdd:
		return m.renderForm("New Activity")
	case logModeEdit:
		return m.renderForm("Edit Activity")
	case logModeDelete:
		return m.renderDeleteConfirm()
	}

	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Logs for %s", m.win)))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(m.styles.StatLabel.Render("No entries found"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Press 'n' to log an activity"))
		return b.String()
	}

	b.WriteString(RenderLogRows(m.entries, m.styles, LogRenderOptions{
		ShowDate: m.isMultiDayWindow(),
		Width:    m.width,
		Cursor:   m.cursor,
	}))

	b.WriteString(strings.Repeat("─", min(50, max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %s across %d %s",
		formatDuration(m.total),
		len(m.entries),
		pluralize("entry", len(m.entries))))

	return b.String()
}

// renderForm renders the add/edit form
func (m LogsModel) renderForm(title string) string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := fieldLabels[i] + ":"
		if i == m.focusedInput {
			label = "▸ " + label
		}
		b.WriteString(m.styles.StatLabel.Render(label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatLabel.Render("Tab to switch fields, Enter to save, Esc to cancel"))
	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m LogsModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Entry"))
	b.WriteString("\n\n")

	if m.cursor < len(m.entries) {
		e := m.entries[m.cursor]
		b.WriteString(m.styles.Warning.Render("Are you sure you want to delete this entry?"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Activity: "))
		b.WriteString(m.styles.StatValue.Render(formatActivity(e)))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("When: "))
		b.WriteString(m.styles.StatValue.Render(e.Date + " " + formatTimeRange(e)))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Duration: "))
		b.WriteString(m.styles.StatValue.Render(formatDuration(e.DurationMinutes)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatLabel.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *LogsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m LogsModel) IsInputMode() bool {
	return m.mode == logModeAdd || m.mode == logModeEdit
}

// Window returns the currently selected window
func (m LogsModel) Window() window.Window {
	return m.win
}

// isMultiDayWindow reports whether the active window spans multiple days
func (m LogsModel) isMultiDayWindow() bool {
	switch m.win {
	case window.Today, window.Yesterday:
		return false
	default:
		return true
	}
}

// resetForm seeds the form inputs and focuses the first field
func (m *LogsModel) resetForm(date, category, sub, start, end string) {
	values := [fieldCount]string{date, category, sub, start, end}
	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
		m.inputs[i].Blur()
	}
	m.focusedInput = 0
	m.inputs[0].Focus()
}

// loadLogs creates a command to load entries for the active window
func (m LogsModel) loadLogs(status string) tea.Cmd {
	win := m.win
	return func() tea.Msg {
		result, err := m.services.Log.ListWindow(win)
		if err != nil {
			return logsLoadedMsg{err: err}
		}
		return logsLoadedMsg{
			entries: result.Entries,
			win:     result.Window,
			total:   result.TotalMinutes,
			status:  status,
		}
	}
}

// addLog creates a command to log a new activity
func (m LogsModel) addLog(date, category, sub, start, end string) tea.Cmd {
	win := m.win
	cfg := m.services.Config.Get()
	return func() tea.Msg {
		if date == "" {
			date = cfg.Now().Format(logbook.DateLayout)
		}
		entry, err := m.services.Log.Create(date, category, sub, start, end)
		if err != nil {
			return logsLoadedMsg{err: err}
		}
		return reloadLogs(m.services, win, fmt.Sprintf("Logged %s (%s)",
			formatActivity(*entry), formatDuration(entry.DurationMinutes)))
	}
}

// editLog creates a command to rewrite an existing entry
func (m LogsModel) editLog(id, date, category, sub, start, end string) tea.Cmd {
	win := m.win
	return func() tea.Msg {
		patch := logbook.Patch{
			StartTime: &start,
			EndTime:   &end,
		}
		if date != "" {
			patch.Date = &date
		}
		if category != "" {
			patch.Category = &category
		}
		if sub != "" {
			patch.Subcategory = &sub
		}
		if _, err := m.services.Log.Edit(id, patch); err != nil {
			return logsLoadedMsg{err: err}
		}
		return reloadLogs(m.services, win, "Entry updated")
	}
}

// deleteLog creates a command to delete an entry
func (m LogsModel) deleteLog(id string) tea.Cmd {
	win := m.win
	return func() tea.Msg {
		if err := m.services.Log.Delete(id); err != nil {
			return logsLoadedMsg{err: err}
		}
		return reloadLogs(m.services, win, "Entry deleted (press 'u' to undo)")
	}
}

// undoDelete creates a command to restore the most recently deleted entry
func (m LogsModel) undoDelete() tea.Cmd {
	win := m.win
	return func() tea.Msg {
		entry, err := m.services.Log.Undo()
		if err != nil {
			return logsLoadedMsg{err: err}
		}
		return reloadLogs(m.services, win, fmt.Sprintf("Restored %s on %s",
			formatActivity(*entry), entry.Date))
	}
}

// reloadLogs fetches the active window after a mutation
func reloadLogs(services *service.Services, win window.Window, status string) tea.Msg {
	result, err := services.Log.ListWindow(win)
	if err != nil {
		return logsLoadedMsg{err: err}
	}
	return logsLoadedMsg{
		entries: result.Entries,
		win:     result.Window,
		total:   result.TotalMinutes,
		status:  status,
	}
}
