package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/veodin/sked/internal/schedule"
	"github.com/veodin/sked/internal/storage"
	"github.com/veodin/sked/internal/timeutil"
)

var rootCmd = &cobra.Command{
	Use:   "sked",
	Short: "A personal day-schedule tracker",
	Long: `sked is a CLI tool for planning a day as a sequence of time intervals
and seeing where the time goes, measured against a 12-hour day.

Usage:
  sked                                      List today's schedule
  sked y                                    List yesterday's schedule
  sked add 08:00 09:30 --activity coding    Add an interval
  sked edit 2 --end 10:00                   Edit an interval
  sked delete 2                             Delete an interval (with confirmation)
  sked move 3 1                             Move an interval to a new position
  sked chart --by category                  Show a grouped bar chart
  sked days                                 List all days with stored schedules
  sked export json|csv                      Export schedules
  sked validate                             Check day-file health
  sked restore [n]                          Restore a day from backup

Times use 24-hour HH:MM format. Intervals that end before they start are
treated as crossing midnight. Use --date YYYY-MM-DD on any command to work
with a day other than today.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		day, ok := selectedDay(cmd)
		if !ok {
			return
		}
		listSchedule(day)
	},
}

// yCmd represents the yesterday command
var yCmd = &cobra.Command{
	Use:   "y",
	Short: "List yesterday's schedule",
	Long:  `List all schedule intervals stored for yesterday.`,
	Run: func(cmd *cobra.Command, args []string) {
		listSchedule(timeutil.Yesterday())
	},
}

func init() {
	rootCmd.AddCommand(yCmd)

	rootCmd.PersistentFlags().String("date", "", "Day to operate on (YYYY-MM-DD or DD/MM/YYYY, default today)")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"sked version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// selectedDay resolves the --date persistent flag, defaulting to today.
// On a malformed date it reports the error and returns ok=false.
func selectedDay(cmd *cobra.Command) (time.Time, bool) {
	dateStr, _ := cmd.Root().PersistentFlags().GetString("date")
	if dateStr == "" {
		return timeutil.Today(), true
	}
	day, err := timeutil.ParseDate(dateStr)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'\n", dateStr)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use YYYY-MM-DD or DD/MM/YYYY, e.g. 2026-08-26")
		deps.Exit(1)
		return time.Time{}, false
	}
	return day, true
}

// listSchedule reads and displays the schedule for the given day
func listSchedule(day time.Time) {
	svc, err := dayService()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine data directory")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	result, err := svc.Load(day)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read schedule")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that file is readable: %s\n", svc.Path(day))
		deps.Exit(1)
		return
	}

	printWarnings(result.Warnings)

	entries := result.Entries
	if len(entries) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No schedule for %s\n", timeutil.FormatHuman(day))
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Schedule for %s:\n", timeutil.FormatHuman(day))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))

	// Calculate width for right-aligned indices
	maxIndexWidth := len(fmt.Sprintf("%d", len(entries)))

	for i, e := range entries {
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %s\n", maxIndexWidth, i+1, formatEntryLine(e))
	}

	totalMinutes, totalPercent := schedule.Total(entries)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s (%.1f%% of day)\n", formatDuration(totalMinutes), totalPercent)
}

// formatEntryLine renders one interval for list output
func formatEntryLine(e schedule.Entry) string {
	line := fmt.Sprintf("%s-%s  %-7s %5.1f%%",
		e.Start, e.End, formatDuration(e.DurationMinutes), e.PercentOfDay)
	if fields := formatFields(e); fields != "" {
		line += "  " + fields
	}
	return line
}

// formatFields joins the well-known fields of an entry for display,
// like "deep work / coding / refactor the parser".
func formatFields(e schedule.Entry) string {
	var parts []string
	for _, name := range []string{schedule.FieldCategory, schedule.FieldActivity, schedule.FieldComment} {
		if v := e.Field(name); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " / ")
}

// printWarnings reports day-file corruption warnings to stderr
func printWarnings(warnings []storage.ParseWarning) {
	if len(warnings) == 0 {
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Warning: Found %d corrupted day file(s):\n", len(warnings))
	for _, w := range warnings {
		_, _ = fmt.Fprintln(deps.Stderr, formatCorruptionWarning(w))
	}
	_, _ = fmt.Fprintln(deps.Stderr)
}

// formatCorruptionWarning formats a ParseWarning into a human-readable string.
func formatCorruptionWarning(warning storage.ParseWarning) string {
	return fmt.Sprintf("  %s (error: %s)", warning.File, warning.Error)
}

// formatDuration formats minutes as a human-readable string
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

// pluralize returns the singular or plural form of a word based on count
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
