package cmd

import (
	"strings"
	"testing"

	"github.com/veodin/sked/internal/chart"
	"github.com/veodin/sked/internal/schedule"
	"github.com/veodin/sked/internal/timeutil"
)

func TestShowChart(t *testing.T) {
	env := setupTest(t)
	day := timeutil.Today()
	seedDay(t, env, day, []schedule.Entry{
		testEntry("08:00", "12:00", "work", "coding"),
		testEntry("12:00", "13:00", "rest", "lunch"),
		testEntry("13:00", "15:00", "work", "review"),
	})

	showChart(chartCmd)

	if env.exited {
		t.Fatalf("Unexpected exit with code %d, stderr: %s", env.exitCode, env.stderr.String())
	}

	output := env.stdout.String()
	// Default grouping is by category
	for _, expected := range []string{"by category", "work", "rest", "█", "360 min", "50.0%", "Total: 7h (58.3% of day)"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Output missing %q\nGot: %s", expected, output)
		}
	}
}

func TestShowChart_GroupByFlag(t *testing.T) {
	env := setupTest(t)
	day := timeutil.Today()
	seedDay(t, env, day, []schedule.Entry{
		testEntry("08:00", "09:00", "work", "coding"),
		testEntry("09:00", "10:00", "work", "review"),
	})

	if err := chartCmd.Flags().Set("by", "activity"); err != nil {
		t.Fatalf("Failed to set flag: %v", err)
	}
	defer func() { _ = chartCmd.Flags().Set("by", "") }()

	showChart(chartCmd)

	output := env.stdout.String()
	for _, expected := range []string{"by activity", "coding", "review"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Output missing %q\nGot: %s", expected, output)
		}
	}
}

func TestShowChart_EmptyDay(t *testing.T) {
	env := setupTest(t)

	showChart(chartCmd)

	if env.exited {
		t.Fatalf("Unexpected exit with code %d, stderr: %s", env.exitCode, env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), chart.NoDataMessage) {
		t.Errorf("Expected %q, got: %s", chart.NoDataMessage, env.stdout.String())
	}
}
