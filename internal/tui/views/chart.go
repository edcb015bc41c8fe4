package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/veodin/sked/internal/chart"
	"github.com/veodin/sked/internal/schedule"
	"github.com/veodin/sked/internal/service"
	"github.com/veodin/sked/internal/timeutil"
	"github.com/veodin/sked/internal/tui/ui"
)

// groupFields is the cycle order for the grouping key.
var groupFields = []string{
	schedule.FieldCategory,
	schedule.FieldActivity,
	schedule.FieldComment,
}

// ChartModel is the model for the chart view. It shows one day's entries
// aggregated by a grouping field as a horizontal bar chart.
type ChartModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width   int
	height  int
	day     time.Time
	groupBy string
	buckets []schedule.Bucket
	loading bool
	err     error
}

// NewChartModel creates a new chart view model
func NewChartModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) ChartModel {
	groupBy := services.Report.DefaultGroupBy()
	if groupBy == "" {
		groupBy = schedule.FieldCategory
	}
	return ChartModel{
		services: services,
		styles:   styles,
		keys:     keys,
		day:      timeutil.Today(),
		groupBy:  groupBy,
	}
}

// chartLoadedMsg is sent when the day's buckets are loaded
type chartLoadedMsg struct {
	day     time.Time
	buckets []schedule.Bucket
	err     error
}

// Init implements tea.Model
func (m ChartModel) Init() tea.Cmd {
	return m.loadBuckets(m.day, m.groupBy)
}

// Update implements tea.Model
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.GroupBy):
			m.groupBy = nextGroupField(m.groupBy)
			return m, m.loadBuckets(m.day, m.groupBy)

		case key.Matches(msg, m.keys.PrevDay):
			return m, requestDay(timeutil.PrevDay(m.day))

		case key.Matches(msg, m.keys.NextDay):
			return m, requestDay(timeutil.NextDay(m.day))

		case key.Matches(msg, m.keys.Today):
			return m, requestDay(timeutil.Today())

		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadBuckets(m.day, m.groupBy)
		}

	case chartLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.day = msg.day
			m.buckets = msg.buckets
		}
		return m, nil

	case ui.DayChangedMsg:
		return m, m.loadBuckets(msg.Day, m.groupBy)

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m ChartModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("%s, by %s", timeutil.FormatHuman(m.day), m.groupBy)))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	chartWidth := m.width
	if chartWidth <= 0 || chartWidth > chart.DefaultWidth+20 {
		chartWidth = chart.DefaultWidth + 20
	}
	b.WriteString(chart.Render(m.buckets, chartWidth))
	b.WriteString("\n")

	if len(m.buckets) > 0 {
		totalMinutes := 0
		totalPercent := 0.0
		for _, bucket := range m.buckets {
			totalMinutes += bucket.TotalMinutes
			totalPercent += bucket.PercentOfDay
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Total: %s (%.1f%% of day)", formatDuration(totalMinutes), totalPercent))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Hint.Render("Press 'b' to change grouping, h/l to change days"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *ChartModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// GroupBy returns the current grouping field
func (m ChartModel) GroupBy() string {
	return m.groupBy
}

// loadBuckets creates a command to aggregate a day's entries
func (m ChartModel) loadBuckets(day time.Time, groupBy string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.Report.Buckets(day, groupBy)
		if err != nil {
			return chartLoadedMsg{day: day, err: err}
		}
		return chartLoadedMsg{day: day, buckets: result.Buckets}
	}
}

// nextGroupField returns the grouping field after the given one
func nextGroupField(current string) string {
	for i, f := range groupFields {
		if f == current {
			return groupFields[(i+1)%len(groupFields)]
		}
	}
	return groupFields[0]
}

// requestDay creates a command asking the root model to switch days
func requestDay(day time.Time) tea.Cmd {
	return func() tea.Msg {
		return ui.DayChangeRequestMsg{Day: day}
	}
}
