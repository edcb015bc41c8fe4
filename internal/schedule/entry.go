// Package schedule implements the day-schedule model: rows with wall-clock
// start/end times, derived duration and share of a fixed 12-hour day, and
// grouped rollups for reporting.
package schedule

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// BaselineMinutes is the fixed denominator for percentage calculations:
// a 12-hour day. A schedule may total more than 100% of it.
const BaselineMinutes = 12 * 60

// clockLayout is the only accepted time-of-day format. Hours may be
// written with or without a leading zero; there is no seconds field.
const clockLayout = "15:04"

const minutesPerDay = 24 * 60

// Reserved JSON keys on the entry wire format. Everything else in a stored
// record is treated as a free-text field.
const (
	keyStart    = "start"
	keyEnd      = "end"
	keyDuration = "duration_minutes"
	keyPercent  = "percent_of_day"
)

// Canonical field names used by the CLI and TUI. The engine itself does not
// care: Fields is an open mapping and any name can be aggregated on.
const (
	FieldCategory = "category"
	FieldActivity = "activity"
	FieldComment  = "comment"
)

// Entry represents a single schedule row.
//
// Start and End are kept as the raw strings the user typed. The derived
// DurationMinutes and PercentOfDay are pure functions of (Start, End):
// they are recomputed by Recalculate on every load and every mutation and
// are never set independently. Malformed or missing times are not an
// error; they yield zero duration and zero percent.
type Entry struct {
	Start  string
	End    string
	Fields map[string]string

	DurationMinutes int
	PercentOfDay    float64
}

// Field returns the value of the named free-text field, or "" if unset.
func (e *Entry) Field(name string) string {
	return e.Fields[name]
}

// SetField sets a free-text field, allocating the map on first use.
// An empty value removes the field.
func (e *Entry) SetField(name, value string) {
	if value == "" {
		delete(e.Fields, name)
		return
	}
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[name] = value
}

// Recalculate refreshes the derived fields from the current Start/End.
func (e *Entry) Recalculate() {
	e.DurationMinutes, e.PercentOfDay = ComputeMetrics(e.Start, e.End)
}

// ComputeMetrics converts a start/end pair of "HH:MM" strings into a
// duration in minutes and its share of the 12-hour baseline, rounded to
// one decimal place (half away from zero).
//
// The function is total: empty, missing, or unparseable times yield (0, 0)
// rather than an error. An end earlier than the start by clock time is
// taken to be on the following day, so an overnight row like 23:30-00:15
// is 45 minutes. Equal times are zero minutes, not a full day, and the
// wrap is applied at most once.
func ComputeMetrics(start, end string) (int, float64) {
	s, ok := parseClock(start)
	if !ok {
		return 0, 0
	}
	e, ok := parseClock(end)
	if !ok {
		return 0, 0
	}
	if e < s {
		e += minutesPerDay
	}
	minutes := e - s
	return minutes, percentOfBaseline(minutes)
}

// parseClock parses a "HH:MM" time-of-day into minutes since midnight.
// Surrounding whitespace is tolerated.
func parseClock(s string) (int, bool) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func percentOfBaseline(minutes int) float64 {
	return math.Round(float64(minutes)/BaselineMinutes*100*10) / 10
}

// MarshalJSON flattens the entry into a single JSON object: the reserved
// keys plus every free-text field at the top level, matching the stored
// per-day record shape.
func (e Entry) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(e.Fields)+4)
	for k, v := range e.Fields {
		if !reservedKey(k) {
			obj[k] = v
		}
	}
	obj[keyStart] = e.Start
	obj[keyEnd] = e.End
	obj[keyDuration] = e.DurationMinutes
	obj[keyPercent] = e.PercentOfDay
	return json.Marshal(obj)
}

// UnmarshalJSON reads the flattened record shape. Stored duration and
// percent values are discarded and recomputed so the derived fields can
// never drift from the times they were computed from. Non-string values
// under unknown keys are ignored.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	e.Start = ""
	e.End = ""
	e.Fields = nil

	for k, v := range obj {
		switch k {
		case keyStart:
			if s, ok := v.(string); ok {
				e.Start = s
			}
		case keyEnd:
			if s, ok := v.(string); ok {
				e.End = s
			}
		case keyDuration, keyPercent:
			// Derived; recomputed below.
		default:
			if s, ok := v.(string); ok {
				e.SetField(k, s)
			}
		}
	}

	e.Recalculate()
	return nil
}

func reservedKey(k string) bool {
	switch k {
	case keyStart, keyEnd, keyDuration, keyPercent:
		return true
	}
	return false
}
