package chart

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/veodin/sked/internal/schedule"
)

func countBarRunes(line string) int {
	return strings.Count(line, barRune)
}

func TestRender_NoData(t *testing.T) {
	out := Render(nil, DefaultWidth)
	if !strings.Contains(out, NoDataMessage) {
		t.Errorf("empty chart = %q, expected the no-data placeholder", out)
	}

	out = Render([]schedule.Bucket{}, DefaultWidth)
	if !strings.Contains(out, NoDataMessage) {
		t.Errorf("empty chart = %q, expected the no-data placeholder", out)
	}
}

func TestRender_OneLinePerBucket(t *testing.T) {
	buckets := []schedule.Bucket{
		{Key: "Work", TotalMinutes: 90, PercentOfDay: 12.5},
		{Key: "Rest", TotalMinutes: 45, PercentOfDay: 6.3},
	}

	out := Render(buckets, DefaultWidth)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2:\n%s", len(lines), out)
	}

	if !strings.Contains(lines[0], "Work") || !strings.Contains(lines[0], "90 min") || !strings.Contains(lines[0], "12.5%") {
		t.Errorf("first line missing label or stats: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Rest") || !strings.Contains(lines[1], "45 min") || !strings.Contains(lines[1], "6.3%") {
		t.Errorf("second line missing label or stats: %q", lines[1])
	}
}

func TestRender_BarsProportional(t *testing.T) {
	buckets := []schedule.Bucket{
		{Key: "big", TotalMinutes: 200, PercentOfDay: 27.8},
		{Key: "small", TotalMinutes: 50, PercentOfDay: 6.9},
	}

	lines := strings.Split(Render(buckets, DefaultWidth), "\n")
	big, small := countBarRunes(lines[0]), countBarRunes(lines[1])
	if big <= small {
		t.Errorf("bar lengths not proportional: big=%d small=%d", big, small)
	}
	if small < 1 {
		t.Errorf("nonzero bucket should render at least one bar rune, got %d", small)
	}
}

func TestRender_ZeroMinuteBucket(t *testing.T) {
	buckets := []schedule.Bucket{
		{Key: "empty", TotalMinutes: 0, PercentOfDay: 0},
	}

	out := Render(buckets, DefaultWidth)
	if countBarRunes(out) != 0 {
		t.Errorf("zero-minute bucket should have no bar, got %q", out)
	}
	if !strings.Contains(out, "0 min") || !strings.Contains(out, "0.0%") {
		t.Errorf("zero-minute stats missing: %q", out)
	}
}

func TestRender_LongLabelTruncated(t *testing.T) {
	buckets := []schedule.Bucket{
		{Key: strings.Repeat("x", 40), TotalMinutes: 60, PercentOfDay: 8.3},
	}

	out := Render(buckets, DefaultWidth)
	if strings.Contains(out, strings.Repeat("x", 25)) {
		t.Errorf("label not truncated: %q", out)
	}
	if !strings.Contains(out, "…") {
		t.Errorf("truncated label should end with ellipsis: %q", out)
	}
}

func TestRender_MultiByteLabelTruncatedOnRuneBoundary(t *testing.T) {
	buckets := []schedule.Bucket{
		{Key: strings.Repeat("日本語", 10), TotalMinutes: 60, PercentOfDay: 8.3},
		{Key: "Работа и отдых дома снова", TotalMinutes: 30, PercentOfDay: 4.2},
	}

	out := Render(buckets, DefaultWidth)
	if !utf8.ValidString(out) {
		t.Fatalf("truncated output is not valid UTF-8: %q", out)
	}
	if !strings.Contains(out, "…") {
		t.Errorf("long labels should end with ellipsis: %q", out)
	}
}

func TestRender_PercentOverBaselineShown(t *testing.T) {
	buckets := []schedule.Bucket{
		{Key: "Work", TotalMinutes: 1080, PercentOfDay: 150.0},
	}

	out := Render(buckets, DefaultWidth)
	if !strings.Contains(out, "150.0%") {
		t.Errorf("over-baseline percent should render unclamped: %q", out)
	}
}
