package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"actlog/internal/category"
	"actlog/internal/logbook"
	"actlog/internal/service"
	"actlog/internal/tui/ui"
)

// catMode represents the current mode of the categories view
type catMode int

const (
	catModeNormal catMode = iota
	catModeAddCategory
	catModeAddSub
	catModeDelete
)

// catRow is one selectable row: a category, or a subcategory under one
type catRow struct {
	category string
	sub      string // empty for category rows
}

// CategoriesModel is the model for the categories view
type CategoriesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	cursor  int
	rows    []catRow
	loading bool
	err     error
	status  string

	// Input mode state
	mode      catMode
	nameInput textinput.Model
	target    string // parent category when adding a subcategory
}

// NewCategoriesModel creates a new categories view model
func NewCategoriesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) CategoriesModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "Name..."
	nameInput.CharLimit = 60
	nameInput.Width = 30

	return CategoriesModel{
		services:  services,
		styles:    styles,
		keys:      keys,
		nameInput: nameInput,
	}
}

// categoriesLoadedMsg is sent when the taxonomy is loaded
type categoriesLoadedMsg struct {
	rows   []catRow
	status string
	err    error
}

// Init implements tea.Model
func (m CategoriesModel) Init() tea.Cmd {
	return m.loadCategories("")
}

// Update implements tea.Model
func (m CategoriesModel) Update(msg tea.Msg) (CategoriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case catModeAddCategory, catModeAddSub:
			return m.handleNameInput(msg)
		case catModeDelete:
			return m.handleDeleteMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.New):
			m.mode = catModeAddCategory
			m.nameInput.SetValue("")
			m.nameInput.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.NewSub):
			if len(m.rows) > 0 && m.cursor < len(m.rows) {
				m.mode = catModeAddSub
				m.target = m.rows[m.cursor].category
				m.nameInput.SetValue("")
				m.nameInput.Focus()
				return m, textinput.Blink
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if len(m.rows) > 0 && m.cursor < len(m.rows) {
				m.mode = catModeDelete
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadCategories("")
		}

	case categoriesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.mode = catModeNormal
		m.status = msg.status
		if msg.err == nil {
			m.rows = msg.rows
			if m.cursor >= len(m.rows) {
				m.cursor = max(0, len(m.rows)-1)
			}
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleNameInput handles key events when the name prompt is open
func (m CategoriesModel) handleNameInput(msg tea.KeyMsg) (CategoriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.nameInput.Blur()
		if m.mode == catModeAddCategory {
			return m, m.addCategory(name)
		}
		return m, m.addSubcategory(m.target, name)

	case key.Matches(msg, m.keys.Back): // Escape
		m.mode = catModeNormal
		m.nameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleDeleteMode handles key events in the delete confirmation dialog
func (m CategoriesModel) handleDeleteMode(msg tea.KeyMsg) (CategoriesModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.cursor < len(m.rows) {
			row := m.rows[m.cursor]
			m.mode = catModeNormal
			if row.sub == "" {
				return m, m.deleteCategory(row.category)
			}
			return m, m.deleteSubcategory(row.category, row.sub)
		}
	case "n", "N", "esc":
		m.mode = catModeNormal
	}
	return m, nil
}

// View implements tea.Model
func (m CategoriesModel) View() string {
	switch m.mode {
	case catModeAddCategory:
		return m.renderNamePrompt("New Category")
	case catModeAddSub:
		return m.renderNamePrompt(fmt.Sprintf("New Subcategory under %s", m.target))
	case catModeDelete:
		return m.renderDeleteConfirm()
	}

	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Categories"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n")
	}

	for i, row := range m.rows {
		label := row.category
		indent := ""
		if row.sub != "" {
			label = row.sub
			indent = "    "
		}

		line := indent + label
		if i == m.cursor {
			b.WriteString(m.styles.RowSelected.Render("▸ " + line))
		} else {
			if row.sub == "" {
				b.WriteString("  " + m.styles.StatValue.Render(line))
			} else {
				b.WriteString("  " + m.styles.RowActivity.Render(line))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderNamePrompt renders the add category/subcategory prompt
func (m CategoriesModel) renderNamePrompt(title string) string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Render("Enter to save, Esc to cancel"))
	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m CategoriesModel) renderDeleteConfirm() string {
	var b strings.Builder

	if m.cursor >= len(m.rows) {
		return b.String()
	}
	row := m.rows[m.cursor]

	if row.sub == "" {
		b.WriteString(m.styles.ViewTitle.Render("Delete Category"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf(
			"Delete %q? Its entries move to %s.", row.category, logbook.UncategorizedName)))
	} else {
		b.WriteString(m.styles.ViewTitle.Render("Delete Subcategory"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf(
			"Delete %q? Its entries move to %s/%s.", row.sub, row.category, logbook.NoSubcategoryName)))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *CategoriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m CategoriesModel) IsInputMode() bool {
	return m.mode == catModeAddCategory || m.mode == catModeAddSub
}

// loadCategories creates a command to load the taxonomy as flat rows
func (m CategoriesModel) loadCategories(status string) tea.Cmd {
	return func() tea.Msg {
		cats, err := m.services.Category.List()
		if err != nil {
			return categoriesLoadedMsg{err: err}
		}
		return categoriesLoadedMsg{rows: flattenCategories(cats), status: status}
	}
}

// addCategory creates a command to add a category
func (m CategoriesModel) addCategory(name string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.services.Category.Add(name); err != nil {
			return categoriesLoadedMsg{err: err}
		}
		return reloadCategories(m.services, fmt.Sprintf("Added category %q", name))
	}
}

// addSubcategory creates a command to add a subcategory
func (m CategoriesModel) addSubcategory(parent, name string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.services.Category.AddSubcategory(parent, name); err != nil {
			return categoriesLoadedMsg{err: err}
		}
		return reloadCategories(m.services, fmt.Sprintf("Added %s/%s", parent, name))
	}
}

// deleteCategory creates a command to remove a category, cascading its logs
func (m CategoriesModel) deleteCategory(name string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.Category.DeleteCategory(name)
		if err != nil {
			return categoriesLoadedMsg{err: err}
		}
		status := fmt.Sprintf("Removed %q", name)
		if result.RewrittenLogs > 0 {
			status += fmt.Sprintf(", moved %d %s to %s",
				result.RewrittenLogs, pluralize("entry", result.RewrittenLogs), logbook.UncategorizedName)
		}
		return reloadCategories(m.services, status)
	}
}

// deleteSubcategory creates a command to remove a subcategory, cascading its logs
func (m CategoriesModel) deleteSubcategory(parent, name string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.Category.DeleteSubcategory(parent, name)
		if err != nil {
			return categoriesLoadedMsg{err: err}
		}
		status := fmt.Sprintf("Removed %s/%s", parent, name)
		if result.RewrittenLogs > 0 {
			status += fmt.Sprintf(", moved %d %s to %s/%s",
				result.RewrittenLogs, pluralize("entry", result.RewrittenLogs), parent, logbook.NoSubcategoryName)
		}
		return reloadCategories(m.services, status)
	}
}

// reloadCategories fetches the taxonomy after a mutation
func reloadCategories(services *service.Services, status string) tea.Msg {
	cats, err := services.Category.List()
	if err != nil {
		return categoriesLoadedMsg{err: err}
	}
	return categoriesLoadedMsg{rows: flattenCategories(cats), status: status}
}

// flattenCategories turns the taxonomy into selectable rows, each category
// followed by its subcategories
func flattenCategories(cats []category.Category) []catRow {
	var rows []catRow
	for _, c := range cats {
		rows = append(rows, catRow{category: c.Name})
		for _, s := range c.Subcategories {
			rows = append(rows, catRow{category: c.Name, sub: s.Name})
		}
	}
	return rows
}
