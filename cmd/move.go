package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// moveCmd represents the move command
var moveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move an interval to a new position",
	Long: `Move a schedule interval from one position to another.
Both positions refer to the entry numbers shown in list output
(starting from 1). The remaining entries shift to fill the gap.

Example:
  sked move 3 1     Move entry 3 to the top`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		moveEntry(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

// moveEntry reorders a schedule interval within its day
func moveEntry(cmd *cobra.Command, args []string) {
	from, err := strconv.Atoi(args[0])
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid index '%s'. Index must be a number\n", args[0])
		deps.Exit(1)
		return
	}
	to, err := strconv.Atoi(args[1])
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid index '%s'. Index must be a number\n", args[1])
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

	if err := svc.Move(day, from-1, to-1); err != nil {
		reportEntryError(err, from, svc)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Moved entry %d to position %d\n", from, to)
}
