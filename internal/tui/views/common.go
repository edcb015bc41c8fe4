// Package views contains the individual tab views of the TUI.
package views

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/veodin/sked/internal/schedule"
	"github.com/veodin/sked/internal/tui/ui"
)

// RowRenderOptions configures how schedule rows are rendered
type RowRenderOptions struct {
	Width  int // Available width for rendering
	Cursor int // Currently selected row index (-1 for none)
}

// RenderScheduleRows renders a day's intervals with aligned columns
func RenderScheduleRows(entries []schedule.Entry, styles ui.Styles, opts RowRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	maxFieldsWidth := 0
	fields := make([]string, len(entries))
	for i, e := range entries {
		fields[i] = joinFields(e)
		if n := utf8.RuneCountInString(fields[i]); n > maxFieldsWidth {
			maxFieldsWidth = n
		}
	}

	// Leave room for index, times, duration and percent columns
	maxAllowedFieldsWidth := opts.Width - 5 - 13 - 17
	if maxAllowedFieldsWidth < 20 {
		maxAllowedFieldsWidth = 20
	}
	if maxFieldsWidth > maxAllowedFieldsWidth {
		maxFieldsWidth = maxAllowedFieldsWidth
	}

	var b strings.Builder
	for i, e := range entries {
		style := styles.RowNormal
		if i == opts.Cursor {
			style = styles.RowSelected
		}

		// Measure and cut by runes so multi-byte field values stay valid UTF-8
		fieldsStr := fields[i]
		if runes := []rune(fieldsStr); len(runes) > maxFieldsWidth {
			fieldsStr = string(runes[:maxFieldsWidth-1]) + "…"
		}
		if pad := maxFieldsWidth - utf8.RuneCountInString(fieldsStr); pad > 0 {
			fieldsStr += strings.Repeat(" ", pad)
		}

		index := styles.RowIndex.Render(fmt.Sprintf("[%d]", i+1))
		timeCol := styles.RowTime.Render(fmt.Sprintf("%s-%s", e.Start, e.End))
		fieldsCol := styles.RowFields.Render(fieldsStr)
		duration := styles.RowDuration.Render(formatDuration(e.DurationMinutes))
		percent := styles.RowPercent.Render(fmt.Sprintf("%.1f%%", e.PercentOfDay))

		line := fmt.Sprintf("%s %s %s %s %s", index, timeCol, fieldsCol, duration, percent)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// joinFields renders the well-known fields of an entry for a row
func joinFields(e schedule.Entry) string {
	var parts []string
	for _, name := range []string{schedule.FieldCategory, schedule.FieldActivity, schedule.FieldComment} {
		if v := e.Field(name); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " / ")
}

// formatDuration formats minutes as human-readable duration
func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
