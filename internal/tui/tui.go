// Package tui provides the terminal user interface for the sked application.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/veodin/sked/internal/service"
	"github.com/veodin/sked/internal/timeutil"
	"github.com/veodin/sked/internal/tui/ui"
	"github.com/veodin/sked/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabSchedule Tab = iota
	TabChart
	TabConfig
)

var tabNames = []string{"Schedule", "Chart", "Config"}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	activeTab Tab
	day       time.Time
	width     int
	height    int
	showHelp  bool

	// View models
	scheduleView views.ScheduleModel
	chartView    views.ChartModel
	configView   views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	// Initialize theme from config
	themeName := services.Config.Get().Theme
	themeProvider := ui.NewThemeProvider(themeName)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabSchedule,
		day:           timeutil.Today(),
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		scheduleView:  views.NewScheduleModel(services, styles, keys),
		chartView:     views.NewChartModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.scheduleView.Init(),
		m.chartView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// A view capturing input keeps global keys out of its way
		capturing := m.isCapturingKeys()

		switch {
		case key.Matches(msg, m.keys.Quit) && !capturing:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !capturing:
			m.activeTab = TabSchedule
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !capturing:
			m.activeTab = TabChart
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !capturing:
			m.activeTab = TabConfig
			return m, m.initCurrentView()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Update view dimensions
		contentHeight := m.height - 4 // Account for tabs and status bar
		m.scheduleView.SetSize(m.width, contentHeight)
		m.chartView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.DayChangeRequestMsg:
		m.day = msg.Day

		// Broadcast the new day so every view stays in sync
		dayMsg := ui.DayChangedMsg{Day: msg.Day}
		m.scheduleView, cmd = m.scheduleView.Update(dayMsg)
		cmds = append(cmds, cmd)
		m.chartView, cmd = m.chartView.Update(dayMsg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		// Broadcast theme change to all views
		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.scheduleView, _ = m.scheduleView.Update(themeMsg)
		m.chartView, _ = m.chartView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(newTheme)
	}

	// Update the active view
	switch m.activeTab {
	case TabSchedule:
		m.scheduleView, cmd = m.scheduleView.Update(msg)
	case TabChart:
		m.chartView, cmd = m.chartView.Update(msg)
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
	case TabSchedule:
		b.WriteString(m.scheduleView.View())
	case TabChart:
		b.WriteString(m.chartView.View())
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
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	date := m.styles.DayHeader.Render(timeutil.FormatDay(m.day))
	return m.styles.TabBar.Render(bar + "  " + date)
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isCapturingKeys() && m.activeTab == TabSchedule {
		parts = append(parts, m.renderKeyHelp("Tab", "switch field"))
		parts = append(parts, m.renderKeyHelp("Enter", "apply"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabSchedule:
			parts = append(parts, m.renderKeyHelp("n", "new"))
			parts = append(parts, m.renderKeyHelp("e", "edit"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
			parts = append(parts, m.renderKeyHelp("J/K", "reorder"))
			parts = append(parts, m.renderKeyHelp("s", "save"))
			parts = append(parts, m.renderKeyHelp("h/l", "day"))
		case TabChart:
			parts = append(parts, m.renderKeyHelp("b", "group by"))
			parts = append(parts, m.renderKeyHelp("h/l", "day"))
			parts = append(parts, m.renderKeyHelp("r", "refresh"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("t", "themes"))
		}

		parts = append(parts, m.renderKeyHelp("1-3", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

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

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	switch m.activeTab {
	case TabSchedule:
		return m.scheduleView.IsInputMode()
	case TabConfig:
		return m.configView.IsInputMode()
	}
	return false
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabSchedule:
		return m.scheduleView.Init()
	case TabChart:
		return m.chartView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		_ = m.services.Config.Update(cfg)
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
	help.WriteString("  Tab/1-3    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabSchedule:
		help.WriteString(m.styles.StatLabel.Render("Schedule:"))
		help.WriteString("\n")
		help.WriteString("  h/l        Previous/next day\n")
		help.WriteString("  t          Jump to today\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  J/K        Move interval down/up\n")
		help.WriteString("  n          New interval\n")
		help.WriteString("  e          Edit interval\n")
		help.WriteString("  d          Delete interval\n")
		help.WriteString("  s          Save changes\n")
		help.WriteString("  r          Reload (discard changes)\n")
	case TabChart:
		help.WriteString(m.styles.StatLabel.Render("Chart:"))
		help.WriteString("\n")
		help.WriteString("  b          Cycle grouping field\n")
		help.WriteString("  h/l        Previous/next day\n")
		help.WriteString("  t          Jump to today\n")
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
	help.WriteString(m.styles.Hint.Render("Press ? to close"))

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
