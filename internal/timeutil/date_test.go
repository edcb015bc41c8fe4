package timeutil

import (
	"testing"
	"time"
)

func TestParseDate_ValidFormats(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string // formatted back as YYYY-MM-DD
	}{
		{"ISO format", "2024-01-15", "2024-01-15"},
		{"European format", "15/01/2024", "2024-01-15"},
		{"ambiguous date prefers ISO", "2024-05-06", "2024-05-06"},
		{"end of year", "31/12/2024", "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDate(%q) returned error: %v", tt.input, err)
			}
			if got.Format(DayLayout) != tt.expected {
				t.Errorf("ParseDate(%q) = %s, expected %s", tt.input, got.Format(DayLayout), tt.expected)
			}
			// Midnight local time.
			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
				t.Errorf("ParseDate(%q) not at midnight: %v", tt.input, got)
			}
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	inputs := []string{"", "2024", "2024-01", "15-01", "not-a-date", "2024/01/15", "32/01/2024"}
	for _, input := range inputs {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q) should have failed", input)
		}
	}
}

func TestDayStepping(t *testing.T) {
	d := time.Date(2024, 2, 29, 13, 45, 0, 0, time.Local) // leap day, mid-afternoon

	next := NextDay(d)
	if FormatDay(next) != "2024-03-01" {
		t.Errorf("NextDay = %s, expected 2024-03-01", FormatDay(next))
	}
	if next.Hour() != 0 {
		t.Errorf("NextDay not at midnight: %v", next)
	}

	prev := PrevDay(d)
	if FormatDay(prev) != "2024-02-28" {
		t.Errorf("PrevDay = %s, expected 2024-02-28", FormatDay(prev))
	}
}

func TestTodayAndYesterday(t *testing.T) {
	today := Today()
	if !SameDay(today, time.Now()) {
		t.Error("Today() is not the current date")
	}
	if today.Hour() != 0 || today.Minute() != 0 {
		t.Errorf("Today() not at midnight: %v", today)
	}

	if got := Yesterday(); !SameDay(got, time.Now().AddDate(0, 0, -1)) {
		t.Error("Yesterday() is not one day before now")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 1, 15, 0, 1, 0, 0, time.Local)
	b := time.Date(2024, 1, 15, 23, 59, 0, 0, time.Local)
	c := time.Date(2024, 1, 16, 0, 0, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Error("expected a and b on the same day")
	}
	if SameDay(b, c) {
		t.Error("expected b and c on different days")
	}
}

func TestFormatHuman(t *testing.T) {
	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	if got := FormatHuman(d); got != "Mon, 15 Jan 2024" {
		t.Errorf("FormatHuman = %q, expected %q", got, "Mon, 15 Jan 2024")
	}
}
