// Package storage persists schedules as one JSON file per calendar date
// under a data directory (e.g. 2024-01-15.json), each holding an array of
// entry records.
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/veodin/sked/internal/schedule"
)

const (
	// AppName is the application name used for the config directory
	AppName = "sked"
	// DaysDirName is the subdirectory holding per-date schedule files
	DaysDirName = "days"
	// DayFileExt is the extension of per-date schedule files
	DayFileExt = ".json"
)

// dayFileLayout is the date format used for file names.
const dayFileLayout = "2006-01-02"

// ParseWarning describes a day file that could not be read as a schedule.
// A corrupt file yields an empty day rather than an error; the warning
// lets frontends tell the user.
type ParseWarning struct {
	File  string // Path of the affected file
	Error string // Description of the problem
}

// DayResult contains the entries loaded for one date plus any warnings.
type DayResult struct {
	Entries  []schedule.Entry
	Warnings []ParseWarning
}

// GetDataDir returns the directory holding per-date schedule files.
// Uses os.UserConfigDir() for a cross-platform XDG-compliant location.
// Creates the directory if it doesn't exist.
func GetDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(configDir, AppName, DaysDirName)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// DayPath returns the path of the schedule file for the given date.
func DayPath(dir string, day time.Time) string {
	return filepath.Join(dir, day.Format(dayFileLayout)+DayFileExt)
}

// LoadDay reads the schedule stored at path. A missing file is an empty
// day. A file that cannot be parsed is also an empty day, reported through
// a warning instead of an error. Derived entry fields are recomputed
// during decoding, so stored values can never drift from the times.
func LoadDay(path string) (DayResult, error) {
	result := DayResult{
		Entries:  []schedule.Entry{},
		Warnings: []ParseWarning{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return result, err
	}

	var entries []schedule.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		result.Warnings = append(result.Warnings, ParseWarning{
			File:  path,
			Error: err.Error(),
		})
		return result, nil
	}

	if entries != nil {
		result.Entries = entries
	}
	return result, nil
}

// SaveDay writes the schedule for one date. Uses the atomic write pattern
// (temp file, then rename) so a failed write never truncates the day.
// Creates the file with 0644 permissions.
func SaveDay(path string, entries []schedule.Entry) error {
	if entries == nil {
		entries = []schedule.Entry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}

// ListDays returns the dates that have a stored schedule, ascending.
// Files that don't look like a date-named schedule file are skipped.
func ListDays(dir string) ([]time.Time, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []time.Time{}, nil
		}
		return nil, err
	}

	days := []time.Time{}
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if filepath.Ext(name) != DayFileExt {
			continue
		}
		day, err := time.ParseInLocation(dayFileLayout, name[:len(name)-len(DayFileExt)], time.Local)
		if err != nil {
			continue
		}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days, nil
}

// Health contains the health status of the data directory.
type Health struct {
	TotalFiles   int            // Date-named schedule files found
	ValidFiles   int            // Files that parsed as a schedule
	CorruptFiles int            // Files that did not
	TotalEntries int            // Entries across all valid files
	Warnings     []ParseWarning // Details for each corrupt file
}

// Validate analyzes every day file in the data directory and reports on
// its health. A missing directory is healthy and empty.
func Validate(dir string) (Health, error) {
	health := Health{Warnings: []ParseWarning{}}

	days, err := ListDays(dir)
	if err != nil {
		return health, err
	}

	for _, day := range days {
		path := DayPath(dir, day)
		health.TotalFiles++

		result, err := LoadDay(path)
		if err != nil {
			return health, err
		}
		if len(result.Warnings) > 0 {
			health.CorruptFiles++
			health.Warnings = append(health.Warnings, result.Warnings...)
			continue
		}
		health.ValidFiles++
		health.TotalEntries += len(result.Entries)
	}

	return health, nil
}

// ErrNoBackup is returned when a requested backup does not exist.
var ErrNoBackup = errors.New("backup does not exist")
