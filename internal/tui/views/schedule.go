package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/veodin/sked/internal/schedule"
	"github.com/veodin/sked/internal/service"
	"github.com/veodin/sked/internal/timeutil"
	"github.com/veodin/sked/internal/tui/ui"
)

// scheduleMode represents the current mode of the schedule view
type scheduleMode int

const (
	scheduleModeNormal scheduleMode = iota
	scheduleModeAdd
	scheduleModeEdit
	scheduleModeDelete
)

// Input field order in the add/edit form
const (
	inputStart = iota
	inputEnd
	inputCategory
	inputActivity
	inputComment
	inputCount
)

// ScheduleModel is the model for the schedule view. Edits are held in
// memory until the user saves explicitly.
type ScheduleModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	day     time.Time
	cursor  int
	entries []schedule.Entry
	dirty   bool
	loading bool
	err     error
	status  string

	// Input mode state
	mode         scheduleMode
	inputs       []textinput.Model
	focusedInput int
	editIndex    int
}

// NewScheduleModel creates a new schedule view model
func NewScheduleModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) ScheduleModel {
	inputs := make([]textinput.Model, inputCount)
	placeholders := []string{"Start (HH:MM)", "End (HH:MM)", "Category", "Activity", "Comment"}
	limits := []int{5, 5, 50, 50, 200}
	widths := []int{10, 10, 30, 30, 50}
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = widths[i]
		inputs[i] = ti
	}

	return ScheduleModel{
		services: services,
		styles:   styles,
		keys:     keys,
		day:      timeutil.Today(),
		inputs:   inputs,
	}
}

// scheduleLoadedMsg is sent when a day's schedule is loaded
type scheduleLoadedMsg struct {
	day     time.Time
	entries []schedule.Entry
	warning string
	err     error
}

// scheduleSavedMsg is sent when a save completes
type scheduleSavedMsg struct {
	err error
}

// Init implements tea.Model
func (m ScheduleModel) Init() tea.Cmd {
	return m.loadSchedule(m.day)
}

// Update implements tea.Model
func (m ScheduleModel) Update(msg tea.Msg) (ScheduleModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case scheduleModeAdd, scheduleModeEdit:
			return m.handleInputMode(msg)
		case scheduleModeDelete:
			return m.handleDeleteMode(msg)
		}
		return m.handleNormalMode(msg)

	case scheduleLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.mode = scheduleModeNormal
		if msg.err == nil {
			m.day = msg.day
			m.entries = msg.entries
			m.dirty = false
			m.status = msg.warning
			if m.cursor >= len(m.entries) {
				m.cursor = max(0, len(m.entries)-1)
			}
		}

	case scheduleSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.dirty = false
		m.status = "Saved"
		return m, nil

	case ui.DayChangedMsg:
		return m, m.loadSchedule(msg.Day)

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleNormalMode handles key events outside input and confirm modes
func (m ScheduleModel) handleNormalMode(msg tea.KeyMsg) (ScheduleModel, tea.Cmd) {
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

	case key.Matches(msg, m.keys.MoveUp):
		if m.cursor > 0 {
			m.entries[m.cursor-1], m.entries[m.cursor] = m.entries[m.cursor], m.entries[m.cursor-1]
			m.cursor--
			m.dirty = true
			m.status = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.MoveDown):
		if m.cursor < len(m.entries)-1 {
			m.entries[m.cursor], m.entries[m.cursor+1] = m.entries[m.cursor+1], m.entries[m.cursor]
			m.cursor++
			m.dirty = true
			m.status = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevDay):
		return m.requestDayChange(timeutil.PrevDay(m.day))

	case key.Matches(msg, m.keys.NextDay):
		return m.requestDayChange(timeutil.NextDay(m.day))

	case key.Matches(msg, m.keys.Today):
		return m.requestDayChange(timeutil.Today())

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadSchedule(m.day)

	case key.Matches(msg, m.keys.Save):
		if !m.dirty {
			return m, nil
		}
		return m, m.saveSchedule()

	case key.Matches(msg, m.keys.New):
		m.mode = scheduleModeAdd
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.setFocus(inputStart)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if len(m.entries) > 0 && m.cursor < len(m.entries) {
			m.mode = scheduleModeEdit
			m.editIndex = m.cursor
			e := m.entries[m.cursor]
			m.inputs[inputStart].SetValue(e.Start)
			m.inputs[inputEnd].SetValue(e.End)
			m.inputs[inputCategory].SetValue(e.Field(schedule.FieldCategory))
			m.inputs[inputActivity].SetValue(e.Field(schedule.FieldActivity))
			m.inputs[inputComment].SetValue(e.Field(schedule.FieldComment))
			m.setFocus(inputStart)
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if len(m.entries) > 0 && m.cursor < len(m.entries) {
			m.mode = scheduleModeDelete
		}
		return m, nil
	}

	return m, nil
}

// requestDayChange asks the root model to switch days. Unsaved changes
// block the switch until saved or discarded.
func (m ScheduleModel) requestDayChange(day time.Time) (ScheduleModel, tea.Cmd) {
	if m.dirty {
		m.status = "Unsaved changes: press s to save or r to discard"
		return m, nil
	}
	return m, requestDay(day)
}

// handleInputMode handles key events when the add/edit form is open
func (m ScheduleModel) handleInputMode(msg tea.KeyMsg) (ScheduleModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		start := strings.TrimSpace(m.inputs[inputStart].Value())
		end := strings.TrimSpace(m.inputs[inputEnd].Value())
		if start == "" || end == "" {
			return m, nil
		}
		m.applyForm(start, end)
		return m, nil

	case key.Matches(msg, m.keys.Back): // Escape
		m.mode = scheduleModeNormal
		m.blurAll()
		return m, nil

	case msg.String() == "tab":
		m.setFocus((m.focusedInput + 1) % inputCount)
		return m, textinput.Blink

	case msg.String() == "shift+tab":
		m.setFocus((m.focusedInput - 1 + inputCount) % inputCount)
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
	return m, cmd
}

// applyForm commits the form values to the in-memory schedule
func (m *ScheduleModel) applyForm(start, end string) {
	var e schedule.Entry
	if m.mode == scheduleModeEdit {
		e = m.entries[m.editIndex]
	}
	e.Start = start
	e.End = end
	e.SetField(schedule.FieldCategory, strings.TrimSpace(m.inputs[inputCategory].Value()))
	e.SetField(schedule.FieldActivity, strings.TrimSpace(m.inputs[inputActivity].Value()))
	e.SetField(schedule.FieldComment, strings.TrimSpace(m.inputs[inputComment].Value()))
	e.Recalculate()

	if m.mode == scheduleModeEdit {
		m.entries[m.editIndex] = e
	} else {
		m.entries = append(m.entries, e)
		m.cursor = len(m.entries) - 1
	}

	m.mode = scheduleModeNormal
	m.dirty = true
	m.status = ""
	m.blurAll()
}

// handleDeleteMode handles key events in the delete confirmation
func (m ScheduleModel) handleDeleteMode(msg tea.KeyMsg) (ScheduleModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.cursor < len(m.entries) {
			m.entries = append(m.entries[:m.cursor], m.entries[m.cursor+1:]...)
			if m.cursor >= len(m.entries) {
				m.cursor = max(0, len(m.entries)-1)
			}
			m.dirty = true
			m.status = ""
		}
		m.mode = scheduleModeNormal
	case "n", "N", "esc":
		m.mode = scheduleModeNormal
	}
	return m, nil
}

// setFocus focuses the given input and blurs the rest
func (m *ScheduleModel) setFocus(index int) {
	m.focusedInput = index
	for i := range m.inputs {
		if i == index {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// blurAll removes focus from all inputs
func (m *ScheduleModel) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// View implements tea.Model
func (m ScheduleModel) View() string {
	switch m.mode {
	case scheduleModeAdd:
		return m.renderForm("New Interval")
	case scheduleModeEdit:
		return m.renderForm("Edit Interval")
	case scheduleModeDelete:
		return m.renderDeleteConfirm()
	}

	var b strings.Builder

	title := fmt.Sprintf("Schedule for %s", timeutil.FormatHuman(m.day))
	if m.dirty {
		title += " (unsaved)"
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if len(m.entries) == 0 {
		b.WriteString(m.styles.Hint.Render("No intervals for this day"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Hint.Render("Press 'n' to add an interval, h/l to change days"))
		return b.String()
	}

	b.WriteString(RenderScheduleRows(m.entries, m.styles, RowRenderOptions{
		Width:  m.width,
		Cursor: m.cursor,
	}))

	totalMinutes, totalPercent := schedule.Total(m.entries)
	b.WriteString(strings.Repeat("─", min(50, max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %s (%.1f%% of day, %d %s)",
		formatDuration(totalMinutes),
		totalPercent,
		len(m.entries),
		pluralize("interval", len(m.entries))))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render(m.status))
	}

	return b.String()
}

// renderForm renders the add/edit interval form
func (m ScheduleModel) renderForm(title string) string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n\n")

	labels := []string{"Start:", "End:", "Category:", "Activity:", "Comment:"}
	for i, label := range labels {
		if i == m.focusedInput {
			label = "▸ " + label
		}
		b.WriteString(m.styles.StatLabel.Render(label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Hint.Render("Tab to switch fields, Enter to apply, Esc to cancel"))
	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m ScheduleModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Interval"))
	b.WriteString("\n\n")

	if m.cursor < len(m.entries) {
		e := m.entries[m.cursor]
		b.WriteString(m.styles.Warning.Render("Are you sure you want to delete this interval?"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Interval: "))
		b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%s-%s", e.Start, e.End)))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Duration: "))
		b.WriteString(m.styles.StatValue.Render(formatDuration(e.DurationMinutes)))
		if fields := joinFields(e); fields != "" {
			b.WriteString("\n")
			b.WriteString(m.styles.StatLabel.Render("Fields: "))
			b.WriteString(m.styles.StatValue.Render(fields))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Hint.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *ScheduleModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Day returns the currently displayed day
func (m ScheduleModel) Day() time.Time {
	return m.day
}

// IsDirty reports whether the view holds unsaved changes
func (m ScheduleModel) IsDirty() bool {
	return m.dirty
}

// IsInputMode returns true when the view is capturing keyboard input
func (m ScheduleModel) IsInputMode() bool {
	return m.mode == scheduleModeAdd || m.mode == scheduleModeEdit
}

// loadSchedule creates a command to load a day's schedule
func (m ScheduleModel) loadSchedule(day time.Time) tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.Day.Load(day)
		if err != nil {
			return scheduleLoadedMsg{day: day, err: err}
		}
		warning := ""
		if len(result.Warnings) > 0 {
			warning = fmt.Sprintf("Warning: %s could not be read, starting empty", result.Warnings[0].File)
		}
		return scheduleLoadedMsg{day: day, entries: result.Entries, warning: warning}
	}
}

// saveSchedule creates a command to persist the in-memory schedule
func (m ScheduleModel) saveSchedule() tea.Cmd {
	entries := make([]schedule.Entry, len(m.entries))
	copy(entries, m.entries)
	day := m.day
	return func() tea.Msg {
		return scheduleSavedMsg{err: m.services.Day.Save(day, entries)}
	}
}
