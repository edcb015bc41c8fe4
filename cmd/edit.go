package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/veodin/sked/internal/schedule"
	"github.com/veodin/sked/internal/service"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit an existing interval",
	Long: `Edit the times or fields of an existing schedule interval.

Usage:
  sked edit <index> --start 08:30               Update the start time
  sked edit <index> --end 10:00                 Update the end time
  sked edit <index> --category rest             Update the category
  sked edit <index> --activity lunch            Update the activity
  sked edit <index> --comment ''                Clear the comment
  sked edit <index> --field location=office     Set an extra field

The index refers to the entry number shown in list output (starting from 1).
Duration and percent-of-day are recalculated automatically.
At least one flag is required.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		editEntry(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().String("start", "", "New start time (HH:MM)")
	editCmd.Flags().String("end", "", "New end time (HH:MM)")
	editCmd.Flags().String("category", "", "New category (empty string clears it)")
	editCmd.Flags().String("activity", "", "New activity (empty string clears it)")
	editCmd.Flags().String("comment", "", "New comment (empty string clears it)")
	editCmd.Flags().StringArray("field", nil, "Extra field as key=value, empty value clears (repeatable)")
}

// editEntry modifies an existing schedule interval
func editEntry(cmd *cobra.Command, args []string) {
	userIndex, err := strconv.Atoi(args[0])
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid index '%s'. Index must be a number\n", args[0])
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List entries with 'sked' to see available indices")
		deps.Exit(1)
		return
	}

	day, ok := selectedDay(cmd)
	if !ok {
		return
	}

	patch := service.EntryPatch{Fields: map[string]string{}}
	patch.Start, _ = cmd.Flags().GetString("start")
	patch.End, _ = cmd.Flags().GetString("end")

	// Changed() distinguishes "clear this field" from "leave it alone".
	for _, name := range []string{schedule.FieldCategory, schedule.FieldActivity, schedule.FieldComment} {
		if cmd.Flags().Changed(name) {
			value, _ := cmd.Flags().GetString(name)
			patch.Fields[name] = value
		}
	}

	extraFields, _ := cmd.Flags().GetStringArray("field")
	fields, err := parseFieldFlags(extraFields)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use --field key=value, e.g. --field location=office")
		deps.Exit(1)
		return
	}
	for name, value := range fields {
		patch.Fields[name] = value
	}

	if !patch.HasChanges() {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: At least one flag is required")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage:")
		_, _ = fmt.Fprintln(deps.Stderr, "  sked edit <index> --start 08:30")
		_, _ = fmt.Fprintln(deps.Stderr, "  sked edit <index> --end 10:00 --activity lunch")
		deps.Exit(1)
		return
	}

	svc, err := dayService()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine data directory")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	updated, err := svc.Update(day, userIndex-1, patch)
	if err != nil {
		reportEntryError(err, userIndex, svc)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Updated entry %d: %s\n", userIndex, formatEntryLine(updated))
}

// reportEntryError prints a user-facing message for index and IO errors
// shared by the edit, delete and move commands.
func reportEntryError(err error, userIndex int, svc *service.DayService) {
	switch {
	case errors.Is(err, service.ErrNoEntries):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No entries found for this day")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Create an entry first with 'sked add <start> <end>'")
	case errors.Is(err, service.ErrIndexOutOfRange):
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Index %d is out of range\n", userIndex)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List entries with 'sked' to see all indices")
	default:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to update schedule")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that directory is writable: %s\n", svc.DataDir())
	}
	deps.Exit(1)
}
