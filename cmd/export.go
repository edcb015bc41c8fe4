package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/veodin/sked/internal/schedule"
	"github.com/veodin/sked/internal/timeutil"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export schedules to various formats",
	Long: `Export schedules to various formats for programmatic use, backup, or migration.

Available formats:
  json    Export schedules as JSON
  csv     Export schedules as CSV

By default all stored days are exported. Use --date for a single day,
or --from/--to for a range.

Examples:
  sked export json                  Export all days as JSON
  sked export json > backup.json    Export to file
  sked export csv --date 2026-08-25 Export one day as CSV
  sked export csv --from 2026-08-01 --to 2026-08-31`,
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export schedules as JSON",
	Long: `Export schedules to JSON format.

Output includes metadata (export timestamp, day and entry counts,
filter criteria) and one object per day holding its intervals.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportJSON(cmd)
	},
}

// exportCSVCmd represents the export csv command
var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export schedules as CSV",
	Long: `Export schedules to CSV format.

Output is in standard CSV format with headers, one row per interval.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportCSV(cmd)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportCSVCmd)

	for _, c := range []*cobra.Command{exportJSONCmd, exportCSVCmd} {
		c.Flags().String("from", "", "Start date for filtering (YYYY-MM-DD or DD/MM/YYYY)")
		c.Flags().String("to", "", "End date for filtering (YYYY-MM-DD or DD/MM/YYYY)")
	}

	// Note: --date is inherited from the root command's PersistentFlags
}

// dayExport is one day's schedule in JSON export output.
type dayExport struct {
	Date    string           `json:"date"`
	Entries []schedule.Entry `json:"entries"`
}

// collectExportDays resolves the filter flags and loads the matching
// days. Returns nil with ok=false after reporting an error.
func collectExportDays(cmd *cobra.Command) ([]dayExport, map[string]interface{}, bool) {
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")
	dateStr, _ := cmd.Root().PersistentFlags().GetString("date")

	if dateStr != "" && (fromStr != "" || toStr != "") {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Cannot use --date with --from or --to")
		_, _ = fmt.Fprintln(deps.Stderr, "Use either --date for a single day or --from/--to for a range")
		deps.Exit(1)
		return nil, nil, false
	}

	criteria := make(map[string]interface{})

	var from, to time.Time
	hasFrom, hasTo := false, false
	if dateStr != "" {
		day, err := timeutil.ParseDate(dateStr)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --date: %v\n", err)
			deps.Exit(1)
			return nil, nil, false
		}
		from, to = day, day
		hasFrom, hasTo = true, true
		criteria["date"] = timeutil.FormatDay(day)
	} else {
		if fromStr != "" {
			day, err := timeutil.ParseDate(fromStr)
			if err != nil {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --from date: %v\n", err)
				deps.Exit(1)
				return nil, nil, false
			}
			from, hasFrom = day, true
			criteria["from"] = timeutil.FormatDay(day)
		}
		if toStr != "" {
			day, err := timeutil.ParseDate(toStr)
			if err != nil {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --to date: %v\n", err)
				deps.Exit(1)
				return nil, nil, false
			}
			to, hasTo = day, true
			criteria["to"] = timeutil.FormatDay(day)
		}
	}

	svc, err := dayService()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to determine data directory: %v\n", err)
		deps.Exit(1)
		return nil, nil, false
	}

	days, err := svc.ListDays()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to list days")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return nil, nil, false
	}

	exports := make([]dayExport, 0, len(days))
	for _, day := range days {
		if hasFrom && day.Before(from) {
			continue
		}
		if hasTo && day.After(to) {
			continue
		}
		result, err := svc.Load(day)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read %s: %v\n", timeutil.FormatDay(day), err)
			deps.Exit(1)
			return nil, nil, false
		}
		printWarnings(result.Warnings)
		exports = append(exports, dayExport{
			Date:    timeutil.FormatDay(day),
			Entries: result.Entries,
		})
	}

	return exports, criteria, true
}

// exportJSON handles the export json command logic
func exportJSON(cmd *cobra.Command) {
	exports, criteria, ok := collectExportDays(cmd)
	if !ok {
		return
	}

	totalEntries := 0
	for _, d := range exports {
		totalEntries += len(d.Entries)
	}

	output := struct {
		Metadata struct {
			ExportTimestamp time.Time              `json:"export_timestamp"`
			TotalDays       int                    `json:"total_days"`
			TotalEntries    int                    `json:"total_entries"`
			FilterCriteria  map[string]interface{} `json:"filter_criteria"`
		} `json:"metadata"`
		Days []dayExport `json:"days"`
	}{}

	output.Metadata.ExportTimestamp = time.Now()
	output.Metadata.TotalDays = len(exports)
	output.Metadata.TotalEntries = totalEntries
	output.Metadata.FilterCriteria = criteria
	output.Days = exports

	encoder := json.NewEncoder(deps.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to encode JSON output")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
}

// exportCSV handles the export csv command logic
func exportCSV(cmd *cobra.Command) {
	exports, _, ok := collectExportDays(cmd)
	if !ok {
		return
	}

	writer := csv.NewWriter(deps.Stdout)

	headers := []string{"date", "start", "end", "duration_minutes", "percent_of_day", "category", "activity", "comment"}
	if err := writeCSVRow(writer, headers); err != nil {
		return
	}

	for _, d := range exports {
		for _, e := range d.Entries {
			row := []string{
				d.Date,
				e.Start,
				e.End,
				strconv.Itoa(e.DurationMinutes),
				strconv.FormatFloat(e.PercentOfDay, 'f', 1, 64),
				e.Field(schedule.FieldCategory),
				e.Field(schedule.FieldActivity),
				e.Field(schedule.FieldComment),
			}
			if err := writeCSVRow(writer, row); err != nil {
				return
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to flush CSV output")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
}

// writeCSVRow writes one CSV record, reporting failures to stderr.
func writeCSVRow(writer *csv.Writer, row []string) error {
	if err := writer.Write(row); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write CSV row")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return err
	}
	return nil
}
