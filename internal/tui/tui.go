// Package tui provides the terminal user interface for actlog.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"actlog/internal/service"
	"actlog/internal/tui/ui"
	"actlog/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabLogs Tab = iota
	TabChart
	TabCategories
	TabConfig
)

var tabNames = []string{"Logs", "Chart", "Categories", "Config"}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	logsView       views.LogsModel
	chartView      views.ChartModel
	categoriesView views.CategoriesModel
	configView     views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeName := services.Config.Get().Theme
	themeProvider := ui.NewThemeProvider(themeName)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:       services,
		activeTab:      TabLogs,
		themeProvider:  themeProvider,
		styles:         styles,
		keys:           keys,
		logsView:       views.NewLogsModel(services, styles, keys),
		chartView:      views.NewChartModel(services, styles, keys),
		categoriesView: views.NewCategoriesModel(services, styles, keys),
		configView:     views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.logsView.Init(),
		m.categoriesView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Input mode blocks global character keys so typing works
		inputMode := m.isInputMode()

		switch {
		case key.Matches(msg, m.keys.Quit) && !inputMode:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !inputMode:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !inputMode:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !inputMode:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !inputMode:
			m.activeTab = TabLogs
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !inputMode:
			m.activeTab = TabChart
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !inputMode:
			m.activeTab = TabCategories
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab4) && !inputMode:
			m.activeTab = TabConfig
			return m, m.initCurrentView()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Account for tabs and status bar
		contentHeight := m.height - 4
		m.logsView.SetSize(m.width, contentHeight)
		m.chartView.SetSize(m.width, contentHeight)
		m.categoriesView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		// Broadcast theme change to all views
		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.logsView, _ = m.logsView.Update(themeMsg)
		m.chartView, _ = m.chartView.Update(themeMsg)
		m.categoriesView, _ = m.categoriesView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(newTheme)
	}

	// Update the active view
	switch m.activeTab {
	case TabLogs:
		m.logsView, cmd = m.logsView.Update(msg)
	case TabChart:
		m.chartView, cmd = m.chartView.Update(msg)
	case TabCategories:
		m.categoriesView, cmd = m.categoriesView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}

	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabLogs:
		b.WriteString(m.logsView.View())
	case TabChart:
		b.WriteString(m.chartView.View())
	case TabCategories:
		b.WriteString(m.categoriesView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isInputMode() {
		parts = append(parts, m.renderKeyHelp("Tab", "switch field"))
		parts = append(parts, m.renderKeyHelp("Enter", "save"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabLogs:
			parts = append(parts, m.renderKeyHelp("n", "new"))
			parts = append(parts, m.renderKeyHelp("e", "edit"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
			parts = append(parts, m.renderKeyHelp("u", "undo"))
			parts = append(parts, m.renderKeyHelp("t/y/w/m/a", "window"))
		case TabChart:
			parts = append(parts, m.renderKeyHelp("t/y/w/m/a", "window"))
			parts = append(parts, m.renderKeyHelp("b", "group by"))
		case TabCategories:
			parts = append(parts, m.renderKeyHelp("n", "new"))
			parts = append(parts, m.renderKeyHelp("s", "new sub"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("t", "themes"))
		}

		parts = append(parts, m.renderKeyHelp("1-4", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	// Fill to width
	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isInputMode checks if the active view is capturing keyboard input
func (m Model) isInputMode() bool {
	switch m.activeTab {
	case TabLogs:
		return m.logsView.IsInputMode()
	case TabCategories:
		return m.categoriesView.IsInputMode()
	}
	return false
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabLogs:
		return m.logsView.Init()
	case TabChart:
		return m.chartView.Init()
	case TabCategories:
		return m.categoriesView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		_ = m.services.Config.SetTheme(themeName)
		return nil
	}
}

// renderHelpOverlay renders a help overlay on top of the current view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-4    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabLogs:
		help.WriteString(m.styles.StatLabel.Render("Logs:"))
		help.WriteString("\n")
		help.WriteString("  t/y        Today/Yesterday\n")
		help.WriteString("  w/m/a      Week/Month/All time\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  n          Log an activity\n")
		help.WriteString("  e          Edit entry\n")
		help.WriteString("  d          Delete entry\n")
		help.WriteString("  u          Undo last delete\n")
		help.WriteString("  r          Refresh\n")
	case TabChart:
		help.WriteString(m.styles.StatLabel.Render("Chart:"))
		help.WriteString("\n")
		help.WriteString("  t/y/w/m/a  Change window\n")
		help.WriteString("  b          Cycle grouping dimension\n")
		help.WriteString("  r          Refresh\n")
	case TabCategories:
		help.WriteString(m.styles.StatLabel.Render("Categories:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  n          New category\n")
		help.WriteString("  s          New subcategory\n")
		help.WriteString("  d          Delete (entries move to the fallback)\n")
		help.WriteString("  r          Refresh\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Enter      Select theme\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	helpBox := m.styles.Dialog.Render(help.String())
	return m.styles.App.Render(helpBox)
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
