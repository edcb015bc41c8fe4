package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/veodin/sked/internal/schedule"
)

var yesFlag bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete a schedule interval by index",
	Long: `Delete a schedule interval by its index number.
The index corresponds to the position in the list output.
A confirmation prompt will be shown unless --yes is specified.
The day file is backed up before deletion; use 'sked restore' to undo.

Example:
  sked delete 3
  sked delete 3 --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteEntry(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip confirmation prompt")
}

// deleteEntry handles the deletion of a schedule interval
func deleteEntry(cmd *cobra.Command, indexStr string) {
	userIndex, err := strconv.Atoi(indexStr)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid index '%s'. Index must be a number\n", indexStr)
		deps.Exit(1)
		return
	}

	if userIndex < 1 {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Index must be 1 or greater (got %d)\n", userIndex)
		deps.Exit(1)
		return
	}

	day, ok := selectedDay(cmd)
	if !ok {
		return
	}

	svc, err := dayService()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to determine data directory: %v\n", err)
		deps.Exit(1)
		return
	}

	result, err := svc.Load(day)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read schedule: %v\n", err)
		deps.Exit(1)
		return
	}

	entries := result.Entries
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No entries to delete")
		deps.Exit(1)
		return
	}

	internalIndex := userIndex - 1
	if internalIndex >= len(entries) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Index %d out of range. Valid range: 1-%d\n", userIndex, len(entries))
		deps.Exit(1)
		return
	}

	showEntryForDeletion(entries[internalIndex])

	if !yesFlag {
		if !promptConfirmation() {
			_, _ = fmt.Fprintln(deps.Stdout, "Deletion cancelled")
			return
		}
	}

	deleted, err := svc.Delete(day, internalIndex)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to delete entry: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Deleted: %s\n", formatEntryLine(deleted))
}

// showEntryForDeletion displays the interval that is about to be deleted
func showEntryForDeletion(e schedule.Entry) {
	_, _ = fmt.Fprintln(deps.Stdout, "Entry to delete:")
	_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", formatEntryLine(e))
}

// promptConfirmation asks the user to confirm deletion
// Returns true if user confirms with 'y' or 'Y', false otherwise
func promptConfirmation() bool {
	_, _ = fmt.Fprint(deps.Stdout, "Delete this entry? [y/N]: ")

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
