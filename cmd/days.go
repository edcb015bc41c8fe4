package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/veodin/sked/internal/schedule"
	"github.com/veodin/sked/internal/timeutil"
)

// daysCmd represents the days command
var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List all days with stored schedules",
	Long: `List every day that has a stored schedule, oldest first,
with the number of intervals and the total tracked time per day.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listDays()
	},
}

func init() {
	rootCmd.AddCommand(daysCmd)
}

// listDays prints a summary line per stored day
func listDays() {
	svc, err := dayService()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to determine data directory: %v\n", err)
		deps.Exit(1)
		return
	}

	days, err := svc.ListDays()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to list days")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that directory is readable: %s\n", svc.DataDir())
		deps.Exit(1)
		return
	}

	if len(days) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No schedules stored yet")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Stored schedules in %s:\n", svc.DataDir())
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))

	for _, day := range days {
		result, err := svc.Load(day)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read %s: %v\n", timeutil.FormatDay(day), err)
			deps.Exit(1)
			return
		}
		printWarnings(result.Warnings)

		totalMinutes, totalPercent := schedule.Total(result.Entries)
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %2d %-9s %8s  %5.1f%%\n",
			timeutil.FormatDay(day),
			len(result.Entries),
			pluralize("interval", len(result.Entries)),
			formatDuration(totalMinutes),
			totalPercent)
	}
}
