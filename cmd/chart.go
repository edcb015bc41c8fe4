package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/veodin/sked/internal/chart"
	"github.com/veodin/sked/internal/schedule"
	"github.com/veodin/sked/internal/service"
	"github.com/veodin/sked/internal/timeutil"
)

// chartCmd represents the chart command
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show a grouped bar chart for a day",
	Long: `Show a bar chart of a day's schedule, grouped by a field.

Each bar represents the total time spent per distinct value of the
grouping field, with percentages measured against a 12-hour day.
Entries without a value for the field are excluded.

Examples:
  sked chart                        Group by the configured default field
  sked chart --by activity          Group by activity
  sked chart --date 2026-08-25      Chart a specific day
  sked chart --width 80             Use a wider chart`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showChart(cmd)
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().String("by", "", "Field to group by (default from config)")
	chartCmd.Flags().Int("width", chart.DefaultWidth, "Total chart width in characters")
}

// showChart renders the grouped chart for the selected day
func showChart(cmd *cobra.Command) {
	day, ok := selectedDay(cmd)
	if !ok {
		return
	}

	groupBy, _ := cmd.Flags().GetString("by")
	width, _ := cmd.Flags().GetInt("width")

	svc, err := dayService()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine data directory")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your config file is valid TOML format")
		deps.Exit(1)
		return
	}

	reports := service.NewReportService(svc, cfg)
	result, err := reports.Buckets(day, groupBy)
	if err != nil {
		if errors.Is(err, schedule.ErrEmptyGroupField) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Grouping field name cannot be empty")
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use --by category or set default_group_by in config")
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to build chart")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	printWarnings(result.Warnings)

	_, _ = fmt.Fprintf(deps.Stdout, "%s, by %s:\n", timeutil.FormatHuman(day), result.GroupBy)
	_, _ = fmt.Fprintln(deps.Stdout, chart.Render(result.Buckets, width))

	if len(result.Buckets) > 0 {
		totalMinutes, totalPercent := 0, 0.0
		for _, b := range result.Buckets {
			totalMinutes += b.TotalMinutes
			totalPercent += b.PercentOfDay
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Total: %s (%.1f%% of day)\n", formatDuration(totalMinutes), totalPercent)
	}
}
