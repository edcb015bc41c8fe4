// Package timeutil provides date parsing and day navigation helpers.
package timeutil

import (
	"fmt"
	"time"
)

// DayLayout is the canonical date format used in file names and flags.
const DayLayout = "2006-01-02"

// HumanLayout is the date format used in headings.
const HumanLayout = "Mon, 02 Jan 2006"

// ParseDate parses a date string in YYYY-MM-DD or DD/MM/YYYY format.
// Returns the parsed date at midnight in the local timezone. For ambiguous
// inputs ISO format is preferred.
func ParseDate(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15)")
	}

	if t, err := time.ParseInLocation(DayLayout, input, time.Local); err == nil {
		return StartOfDay(t), nil
	}

	if t, err := time.ParseInLocation("02/01/2006", input, time.Local); err == nil {
		return StartOfDay(t), nil
	}

	return time.Time{}, fmt.Errorf("invalid date '%s' (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)", input)
}

// StartOfDay returns the given time truncated to midnight local time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the current date at midnight local time.
func Today() time.Time {
	return StartOfDay(time.Now())
}

// Yesterday returns yesterday's date at midnight local time.
func Yesterday() time.Time {
	return Today().AddDate(0, 0, -1)
}

// NextDay returns the date one calendar day after d.
func NextDay(d time.Time) time.Time {
	return StartOfDay(d.AddDate(0, 0, 1))
}

// PrevDay returns the date one calendar day before d.
func PrevDay(d time.Time) time.Time {
	return StartOfDay(d.AddDate(0, 0, -1))
}

// FormatDay renders a date as YYYY-MM-DD.
func FormatDay(d time.Time) string {
	return d.Format(DayLayout)
}

// FormatHuman renders a date for headings, e.g. "Mon, 15 Jan 2024".
func FormatHuman(d time.Time) string {
	return d.Format(HumanLayout)
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
