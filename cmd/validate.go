package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check day-file health",
	Long:  `Validate the stored day files and report on their health status, including any corrupted files.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		validateStorage()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validateStorage checks the day files and reports status
func validateStorage() {
	svc, err := dayService()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to determine data directory: %v\n", err)
		deps.Exit(1)
		return
	}

	health, err := svc.Validate()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to validate storage: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Data directory: %s\n", svc.DataDir())
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	_, _ = fmt.Fprintf(deps.Stdout, "Total day files:   %d\n", health.TotalFiles)
	_, _ = fmt.Fprintf(deps.Stdout, "Valid files:       %d\n", health.ValidFiles)
	_, _ = fmt.Fprintf(deps.Stdout, "Corrupted files:   %d\n", health.CorruptFiles)
	_, _ = fmt.Fprintf(deps.Stdout, "Total entries:     %d\n", health.TotalEntries)

	if len(health.Warnings) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Corrupted files:")
		for _, warning := range health.Warnings {
			_, _ = fmt.Fprintln(deps.Stdout, formatCorruptionWarning(warning))
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if health.CorruptFiles == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Day files are healthy")
	} else {
		_, _ = fmt.Fprintf(deps.Stderr, "Status: ⚠ %d corrupted day file(s)\n", health.CorruptFiles)
	}
}
