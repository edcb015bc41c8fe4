package ui

import "time"

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// DayChangeRequestMsg is sent when a view asks to show another day.
type DayChangeRequestMsg struct {
	Day time.Time
}

// DayChangedMsg is broadcast to all views when the displayed day changes.
type DayChangedMsg struct {
	Day time.Time
}
