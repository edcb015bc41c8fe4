// Package chart renders aggregate buckets as a horizontal bar chart for
// terminals, the textual counterpart of the schedule's summary pie chart.
package chart

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/veodin/sked/internal/schedule"
)

// DefaultWidth is the chart width used when the caller has no better idea.
const DefaultWidth = 60

const (
	maxLabelWidth = 20
	minBarWidth   = 8
	barRune       = "█"
)

// NoDataMessage is rendered when no bucket qualifies. Keeping the
// placeholder here means every frontend shows the same empty state.
const NoDataMessage = "No data"

// barColors are cycled across buckets in order, so a given input sequence
// always gets the same coloring.
var barColors = []lipgloss.Color{
	"99",  // purple
	"39",  // cyan
	"212", // pink
	"82",  // green
	"214", // orange
	"63",  // blue
	"196", // red
	"228", // yellow
}

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	statsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noDataStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Render draws one line per bucket: a label, a bar proportional to the
// largest bucket, and the minutes and percent-of-day figures. Bucket order
// is preserved. An empty input renders the no-data placeholder.
func Render(buckets []schedule.Bucket, width int) string {
	if len(buckets) == 0 {
		return noDataStyle.Render(NoDataMessage)
	}

	if width <= 0 {
		width = DefaultWidth
	}

	labelWidth := 0
	maxMinutes := 0
	for _, b := range buckets {
		if n := utf8.RuneCountInString(b.Key); n > labelWidth {
			labelWidth = n
		}
		if b.TotalMinutes > maxMinutes {
			maxMinutes = b.TotalMinutes
		}
	}
	if labelWidth > maxLabelWidth {
		labelWidth = maxLabelWidth
	}

	// Stats column: " 1234 min 100.0%" worst case.
	const statsWidth = 17
	barWidth := width - labelWidth - statsWidth - 2
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	var b strings.Builder
	for i, bucket := range buckets {
		// Measure and cut by runes so multi-byte keys stay valid UTF-8
		label := bucket.Key
		if runes := []rune(label); len(runes) > labelWidth {
			label = string(runes[:labelWidth-1]) + "…"
		}

		barLen := 0
		if maxMinutes > 0 {
			barLen = bucket.TotalMinutes * barWidth / maxMinutes
		}
		if barLen == 0 && bucket.TotalMinutes > 0 {
			barLen = 1
		}

		color := barColors[i%len(barColors)]
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(barRune, barLen))

		stats := statsStyle.Render(fmt.Sprintf("%d min %.1f%%", bucket.TotalMinutes, bucket.PercentOfDay))

		b.WriteString(labelStyle.Render(label))
		if pad := labelWidth - utf8.RuneCountInString(label); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(" ")
		b.WriteString(bar)
		if barLen < barWidth {
			b.WriteString(strings.Repeat(" ", barWidth-barLen))
		}
		b.WriteString(" ")
		b.WriteString(stats)
		if i < len(buckets)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
