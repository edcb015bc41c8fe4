package storage

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backups kept per day file
	MaxBackupCount = 3
)

// BackupPath returns the path of a day file's backup with the given
// rotation number (1 is the most recent, MaxBackupCount the oldest).
func BackupPath(dayPath string, n int) string {
	return fmt.Sprintf("%s%s.%d", dayPath, BackupSuffix, n)
}

// rotateBackups shifts existing backups to make room for a new one:
// .bak.1 -> .bak.2, .bak.2 -> .bak.3, dropping the oldest. Missing files
// along the way are fine.
func rotateBackups(dayPath string) error {
	oldest := BackupPath(dayPath, MaxBackupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(BackupPath(dayPath, i), BackupPath(dayPath, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup snapshots a day file before a destructive modification.
// If the day file doesn't exist there is nothing to back up and no error.
func CreateBackup(dayPath string) error {
	data, err := os.ReadFile(dayPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(dayPath); err != nil {
		return err
	}

	return os.WriteFile(BackupPath(dayPath, 1), data, 0644)
}

// BackupInfo describes one available backup of a day file.
type BackupInfo struct {
	Number int    // Rotation number (1 is most recent)
	Path   string // Full path to the backup file
}

// ListBackups returns the available backups for a day file, most recent
// first. Returns an empty slice if none exist.
func ListBackups(dayPath string) []BackupInfo {
	var backups []BackupInfo

	for i := 1; i <= MaxBackupCount; i++ {
		path := BackupPath(dayPath, i)
		if _, err := os.Stat(path); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: path})
		}
	}

	return backups
}

// RestoreBackup replaces a day file with one of its backups. The current
// state is backed up first so a restore is itself recoverable.
// Returns ErrNoBackup if the requested backup doesn't exist.
func RestoreBackup(dayPath string, backupNum int) error {
	if backupNum < 1 || backupNum > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", backupNum, MaxBackupCount)
	}

	data, err := os.ReadFile(BackupPath(dayPath, backupNum))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoBackup
		}
		return err
	}

	if err := CreateBackup(dayPath); err != nil {
		return err
	}

	return os.WriteFile(dayPath, data, 0644)
}
