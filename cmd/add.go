package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/veodin/sked/internal/schedule"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <start> <end>",
	Short: "Add an interval to a day's schedule",
	Long: `Add a time interval to a day's schedule.

Times use 24-hour HH:MM format. An interval that ends before it starts
is treated as crossing midnight (23:30 to 00:15 is 45 minutes).
Malformed times are stored as-is with zero duration so the schedule
never rejects input; fix them later with 'sked edit'.

Examples:
  sked add 08:00 09:30 --category work --activity coding
  sked add 23:30 00:15 --activity sleep
  sked add 12:00 12:45 --field location=office`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		addEntry(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().String("category", "", "Category for the interval (e.g. work, rest)")
	addCmd.Flags().String("activity", "", "Activity for the interval (e.g. coding, lunch)")
	addCmd.Flags().String("comment", "", "Free-form comment")
	addCmd.Flags().StringArray("field", nil, "Extra field as key=value (repeatable)")
}

// addEntry creates a new interval and appends it to the selected day
func addEntry(cmd *cobra.Command, args []string) {
	day, ok := selectedDay(cmd)
	if !ok {
		return
	}

	e := schedule.Entry{Start: args[0], End: args[1]}

	category, _ := cmd.Flags().GetString("category")
	activity, _ := cmd.Flags().GetString("activity")
	comment, _ := cmd.Flags().GetString("comment")
	e.SetField(schedule.FieldCategory, category)
	e.SetField(schedule.FieldActivity, activity)
	e.SetField(schedule.FieldComment, comment)

	extraFields, _ := cmd.Flags().GetStringArray("field")
	fields, err := parseFieldFlags(extraFields)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use --field key=value, e.g. --field location=office")
		deps.Exit(1)
		return
	}
	for name, value := range fields {
		e.SetField(name, value)
	}

	svc, err := dayService()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine data directory")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	added, index, err := svc.Add(day, e)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save entry")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that directory exists and is writable: %s\n", svc.DataDir())
		deps.Exit(1)
		return
	}

	if added.DurationMinutes == 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: Interval %s-%s has zero duration (malformed or equal times)\n", added.Start, added.End)
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added entry %d: %s\n", index+1, formatEntryLine(added))
}

// parseFieldFlags parses repeated key=value flags into a field map.
func parseFieldFlags(raw []string) (map[string]string, error) {
	fields := make(map[string]string, len(raw))
	for _, pair := range raw {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("invalid field %q, expected key=value", pair)
		}
		fields[key] = strings.TrimSpace(value)
	}
	return fields, nil
}
