package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/veodin/sked/internal/storage"
	"github.com/veodin/sked/internal/timeutil"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore a day's schedule from a backup",
	Long: `Restore a day's schedule file from a backup.

Backups are created automatically before destructive operations.
By default, restores from the most recent backup (.bak.1).
Optionally specify a backup number to restore from (1-3).

Examples:
  sked restore                        Restore today from most recent backup
  sked restore 2                      Restore today from backup #2
  sked restore --date 2026-08-25      Restore a specific day`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		restoreFromBackup(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

// restoreFromBackup handles the restore command logic
func restoreFromBackup(cmd *cobra.Command, args []string) {
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

	backups := svc.Backups(day)
	if len(backups) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No backups available for %s\n", timeutil.FormatDay(day))
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Available backups for %s:\n", timeutil.FormatDay(day))
	for _, backup := range backups {
		if backup.Number == 1 {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s (most recent)\n", backup.Number, backup.Path)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s\n", backup.Number, backup.Path)
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	backupNum := 1
	if len(args) > 0 {
		num, err := strconv.Atoi(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid backup number '%s'\n", args[0])
			deps.Exit(1)
			return
		}
		if num < 1 || num > storage.MaxBackupCount {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Backup number must be between 1 and %d (got %d)\n", storage.MaxBackupCount, num)
			deps.Exit(1)
			return
		}
		backupNum = num
	}

	backupExists := false
	for _, backup := range backups {
		if backup.Number == backupNum {
			backupExists = true
			break
		}
	}

	if !backupExists {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Backup %d does not exist\n", backupNum)
		deps.Exit(1)
		return
	}

	if err := svc.Restore(day, backupNum); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to restore backup: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Successfully restored %s from backup %d\n", timeutil.FormatDay(day), backupNum)
}
