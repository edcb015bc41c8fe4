package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	ViewTitle lipgloss.Style
	DayHeader lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Schedule rows
	RowSelected lipgloss.Style
	RowNormal   lipgloss.Style
	RowIndex    lipgloss.Style
	RowTime     lipgloss.Style
	RowFields   lipgloss.Style
	RowDuration lipgloss.Style
	RowPercent  lipgloss.Style

	// Value pairs
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Prose hints and status sentences. No fixed width, so lipgloss
	// never wraps them.
	Hint lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Dialog
	Dialog lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// NewStylesFromRegistry creates a Styles struct using colors from a
// bubbletint registry. Theme colors map to semantic UI elements:
// - Purple: tabs, titles
// - Cyan: times, key hints
// - BrightPurple: durations
// - BrightBlack: inactive elements, labels
// - Green/Yellow/Red: success, warning, error
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	success := r.Green()
	warning := r.Yellow()
	errorColor := r.Red()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		DayHeader: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		RowSelected: lipgloss.NewStyle().
			Background(muted).
			Bold(true),
		RowNormal: lipgloss.NewStyle(),
		RowIndex: lipgloss.NewStyle().
			Foreground(muted).
			Width(5),
		RowTime: lipgloss.NewStyle().
			Foreground(secondary).
			Width(13),
		RowFields: lipgloss.NewStyle().
			Foreground(fg),
		RowDuration: lipgloss.NewStyle().
			Foreground(accent).
			Width(8).
			Align(lipgloss.Right),
		RowPercent: lipgloss.NewStyle().
			Foreground(accent).
			Width(7).
			Align(lipgloss.Right),

		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),

		Hint: lipgloss.NewStyle().
			Foreground(muted),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(50),

		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}
