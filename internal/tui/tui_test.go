package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/veodin/sked/internal/config"
	"github.com/veodin/sked/internal/service"
	"github.com/veodin/sked/internal/timeutil"
	"github.com/veodin/sked/internal/tui/ui"
)

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	return service.NewServicesWithPaths(tmpDir, configPath, config.DefaultConfig())
}

func TestNew(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	if model.activeTab != TabSchedule {
		t.Errorf("expected initial tab to be Schedule, got %d", model.activeTab)
	}
	if model.services == nil {
		t.Error("expected services to be set")
	}
	if model.showHelp {
		t.Error("expected showHelp to be false initially")
	}
	if !timeutil.SameDay(model.day, timeutil.Today()) {
		t.Errorf("expected initial day to be today, got %s", model.day)
	}
}

func TestInit(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	cmd := model.Init()
	if cmd == nil {
		t.Error("expected Init to return a command")
	}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m := newModel.(Model)

	if m.width != 100 {
		t.Errorf("expected width 100, got %d", m.width)
	}
	if m.height != 50 {
		t.Errorf("expected height 50, got %d", m.height)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestUpdate_HelpKey(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m := newModel.(Model)

	if !m.showHelp {
		t.Error("expected showHelp to be true after pressing ?")
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = newModel.(Model)

	if m.showHelp {
		t.Error("expected showHelp to be false after pressing ? again")
	}
}

func TestUpdate_TabNavigation(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := newModel.(Model)

	if m.activeTab != TabChart {
		t.Errorf("expected TabChart after pressing tab, got %d", m.activeTab)
	}
}

func TestUpdate_DirectTabKeys(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	tests := []struct {
		key      rune
		expected Tab
	}{
		{'2', TabChart},
		{'3', TabConfig},
		{'1', TabSchedule},
	}

	m := model
	for _, tt := range tests {
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tt.key}})
		m = newModel.(Model)

		if m.activeTab != tt.expected {
			t.Errorf("pressing %c: expected tab %d, got %d", tt.key, tt.expected, m.activeTab)
		}
	}
}

func TestUpdate_PrevTab_Wraparound(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m := newModel.(Model)

	if m.activeTab != TabConfig {
		t.Errorf("expected TabConfig (wraparound) after shift+tab from TabSchedule, got %d", m.activeTab)
	}
}

func TestUpdate_NextTab_Wraparound(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)
	model.activeTab = TabConfig

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := newModel.(Model)

	if m.activeTab != TabSchedule {
		t.Errorf("expected TabSchedule (wraparound) after tab from TabConfig, got %d", m.activeTab)
	}
}

func TestUpdate_DayChangeRequest(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	target := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	newModel, cmd := model.Update(ui.DayChangeRequestMsg{Day: target})
	m := newModel.(Model)

	if !timeutil.SameDay(m.day, target) {
		t.Errorf("expected day %s, got %s", target, m.day)
	}
	if cmd == nil {
		t.Error("expected reload commands after day change")
	}
}

func TestUpdate_ThemeChangeRequest(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	themes := model.themeProvider.AvailableThemes()
	if len(themes) < 2 {
		t.Skip("need at least two themes")
	}

	target := themes[0]
	if target == model.themeProvider.CurrentName() {
		target = themes[1]
	}

	newModel, cmd := model.Update(ui.ThemeChangeRequestMsg{ThemeName: target})
	m := newModel.(Model)

	if m.themeProvider.CurrentName() != target {
		t.Errorf("expected theme %q, got %q", target, m.themeProvider.CurrentName())
	}
	if cmd == nil {
		t.Error("expected a command to persist the theme")
	}

	// Run the persist command and verify the config was written
	if msg := cmd(); msg != nil {
		t.Errorf("expected nil message from save command, got %v", msg)
	}
	if got := services.Config.Get().Theme; got != target {
		t.Errorf("expected persisted theme %q, got %q", target, got)
	}
}

func TestView_Loading(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	view := model.View()

	if !strings.Contains(view, "Loading") {
		t.Errorf("expected 'Loading...' when width is 0, got %q", view)
	}
}

func TestView_WithSize(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := newModel.(Model)

	view := m.View()

	if !strings.Contains(view, "Schedule") {
		t.Error("expected 'Schedule' tab in view")
	}
	if !strings.Contains(view, "quit") {
		t.Error("expected 'quit' in status bar")
	}
}

func TestView_AllTabs(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := newModel.(Model)

	for _, tab := range []Tab{TabSchedule, TabChart, TabConfig} {
		m.activeTab = tab
		if m.View() == "" {
			t.Errorf("expected non-empty view for tab %d", tab)
		}
	}
}

func TestRenderTabs(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	tabs := model.renderTabs()

	for _, name := range tabNames {
		if !strings.Contains(tabs, name) {
			t.Errorf("expected tab name %s in rendered tabs", name)
		}
	}
	if !strings.Contains(tabs, timeutil.FormatDay(model.day)) {
		t.Error("expected current date in tab bar")
	}
}

func TestRenderStatusBar(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)
	model.width = 80

	statusBar := model.renderStatusBar()

	if !strings.Contains(statusBar, "1-3") {
		t.Error("expected '1-3' in status bar")
	}
	if !strings.Contains(statusBar, "quit") {
		t.Error("expected 'quit' in status bar")
	}
}

func TestRenderStatusBar_ScheduleTab(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)
	model.width = 80
	model.activeTab = TabSchedule

	statusBar := model.renderStatusBar()

	if !strings.Contains(statusBar, "new") {
		t.Error("expected 'new' in status bar for schedule tab")
	}
	if !strings.Contains(statusBar, "reorder") {
		t.Error("expected 'reorder' in status bar for schedule tab")
	}
	if !strings.Contains(statusBar, "save") {
		t.Error("expected 'save' in status bar for schedule tab")
	}
}

func TestRenderStatusBar_ChartTab(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)
	model.width = 80
	model.activeTab = TabChart

	statusBar := model.renderStatusBar()

	if !strings.Contains(statusBar, "group by") {
		t.Error("expected 'group by' in status bar for chart tab")
	}
}

func TestInitCurrentView(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	for _, tab := range []Tab{TabSchedule, TabChart, TabConfig} {
		model.activeTab = tab
		_ = model.initCurrentView()
	}
}

func TestInitCurrentView_InvalidTab(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	model.activeTab = Tab(999)
	if cmd := model.initCurrentView(); cmd != nil {
		t.Error("expected nil command for invalid tab")
	}
}

func TestTabNames(t *testing.T) {
	expectedNames := []string{"Schedule", "Chart", "Config"}

	if len(tabNames) != len(expectedNames) {
		t.Fatalf("expected %d tab names, got %d", len(expectedNames), len(tabNames))
	}
	for i, name := range expectedNames {
		if tabNames[i] != name {
			t.Errorf("expected tab name %d to be %s, got %s", i, name, tabNames[i])
		}
	}
}

func TestUpdate_InputModeBlocksTabSwitch(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := newModel.(Model)

	// Enter add mode on the schedule tab
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = newModel.(Model)

	// Pressing '2' should not switch tabs while the form is open
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = newModel.(Model)

	if m.activeTab != TabSchedule {
		t.Errorf("expected to stay on TabSchedule in input mode, got %d", m.activeTab)
	}

	// Tab cycles form fields, not views
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = newModel.(Model)

	if m.activeTab != TabSchedule {
		t.Errorf("expected Tab to not switch views in input mode, got %d", m.activeTab)
	}

	// Escape leaves input mode, tab switching works again
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = newModel.(Model)
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = newModel.(Model)

	if m.activeTab != TabChart {
		t.Errorf("expected TabChart after leaving input mode, got %d", m.activeTab)
	}
}
