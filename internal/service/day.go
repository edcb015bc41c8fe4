package service

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/veodin/sked/internal/schedule"
	"github.com/veodin/sked/internal/storage"
)

// Common errors for the day service
var (
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrNoEntries          = errors.New("no entries found")
	ErrNoChangesSpecified = errors.New("at least one change must be specified")
)

func mkdirAll(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// DayService provides operations on one date's schedule. Every mutation
// recomputes derived metrics and persists the whole day, mirroring the
// recompute-from-scratch model: a day's schedule is small.
type DayService struct {
	dataDir string
}

// NewDayService creates a new DayService rooted at the given data directory
func NewDayService(dataDir string) *DayService {
	return &DayService{dataDir: dataDir}
}

// DataDir returns the directory holding per-date schedule files.
func (s *DayService) DataDir() string {
	return s.dataDir
}

// Path returns the file path for the given date's schedule.
func (s *DayService) Path(day time.Time) string {
	return storage.DayPath(s.dataDir, day)
}

// Load reads the schedule for a date. Missing or corrupt files degrade to
// an empty day (corruption is reported through warnings, not errors).
func (s *DayService) Load(day time.Time) (storage.DayResult, error) {
	return storage.LoadDay(s.Path(day))
}

// Save persists a full schedule for a date, recomputing every entry's
// derived fields first so stored metrics always match the stored times.
func (s *DayService) Save(day time.Time, entries []schedule.Entry) error {
	for i := range entries {
		entries[i].Recalculate()
	}
	return storage.SaveDay(s.Path(day), entries)
}

// EntryPatch describes a partial update to one entry. Empty Start/End
// leave the time unchanged; Fields entries are applied one by one, with an
// empty value removing the field.
type EntryPatch struct {
	Start  string
	End    string
	Fields map[string]string
}

// HasChanges reports whether the patch would change anything.
func (p EntryPatch) HasChanges() bool {
	return p.Start != "" || p.End != "" || len(p.Fields) > 0
}

// Add appends an entry to the date's schedule and persists it. Returns
// the stored entry (with metrics computed) and its 0-based index. Rows
// with malformed times are accepted and stored with zero metrics.
func (s *DayService) Add(day time.Time, e schedule.Entry) (schedule.Entry, int, error) {
	result, err := s.Load(day)
	if err != nil {
		return schedule.Entry{}, 0, err
	}

	e.Recalculate()
	entries := append(result.Entries, e)

	if err := storage.SaveDay(s.Path(day), entries); err != nil {
		return schedule.Entry{}, 0, fmt.Errorf("failed to save schedule: %w", err)
	}

	return e, len(entries) - 1, nil
}

// Update applies a patch to the entry at the given 0-based index.
func (s *DayService) Update(day time.Time, index int, patch EntryPatch) (schedule.Entry, error) {
	if !patch.HasChanges() {
		return schedule.Entry{}, ErrNoChangesSpecified
	}

	result, err := s.Load(day)
	if err != nil {
		return schedule.Entry{}, err
	}
	if len(result.Entries) == 0 {
		return schedule.Entry{}, ErrNoEntries
	}
	if index < 0 || index >= len(result.Entries) {
		return schedule.Entry{}, ErrIndexOutOfRange
	}

	e := result.Entries[index]
	if patch.Start != "" {
		e.Start = patch.Start
	}
	if patch.End != "" {
		e.End = patch.End
	}
	for name, value := range patch.Fields {
		e.SetField(name, value)
	}
	e.Recalculate()
	result.Entries[index] = e

	if err := storage.SaveDay(s.Path(day), result.Entries); err != nil {
		return schedule.Entry{}, fmt.Errorf("failed to save schedule: %w", err)
	}

	return e, nil
}

// Delete removes the entry at the given 0-based index and returns it.
// The day file is backed up first so a deletion can be recovered.
func (s *DayService) Delete(day time.Time, index int) (schedule.Entry, error) {
	result, err := s.Load(day)
	if err != nil {
		return schedule.Entry{}, err
	}
	if len(result.Entries) == 0 {
		return schedule.Entry{}, ErrNoEntries
	}
	if index < 0 || index >= len(result.Entries) {
		return schedule.Entry{}, ErrIndexOutOfRange
	}

	if err := storage.CreateBackup(s.Path(day)); err != nil {
		return schedule.Entry{}, fmt.Errorf("failed to back up schedule: %w", err)
	}

	deleted := result.Entries[index]
	entries := append(result.Entries[:index], result.Entries[index+1:]...)

	if err := storage.SaveDay(s.Path(day), entries); err != nil {
		return schedule.Entry{}, fmt.Errorf("failed to save schedule: %w", err)
	}

	return deleted, nil
}

// Move reorders a row within the date's schedule (0-based indices), the
// command-line counterpart of dragging a row to a new position.
func (s *DayService) Move(day time.Time, from, to int) error {
	result, err := s.Load(day)
	if err != nil {
		return err
	}
	if len(result.Entries) == 0 {
		return ErrNoEntries
	}
	if from < 0 || from >= len(result.Entries) || to < 0 || to >= len(result.Entries) {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}

	entries := result.Entries
	moved := entries[from]
	entries = append(entries[:from], entries[from+1:]...)

	// Re-insert at the target position.
	entries = append(entries, schedule.Entry{})
	copy(entries[to+1:], entries[to:])
	entries[to] = moved

	return storage.SaveDay(s.Path(day), entries)
}

// Restore replaces the date's schedule with one of its backups.
func (s *DayService) Restore(day time.Time, backupNum int) error {
	return storage.RestoreBackup(s.Path(day), backupNum)
}

// Backups lists the available backups for a date.
func (s *DayService) Backups(day time.Time) []storage.BackupInfo {
	return storage.ListBackups(s.Path(day))
}

// ListDays returns the dates that have a stored schedule, ascending.
func (s *DayService) ListDays() ([]time.Time, error) {
	return storage.ListDays(s.dataDir)
}

// Validate reports on the health of every stored day file.
func (s *DayService) Validate() (storage.Health, error) {
	return storage.Validate(s.dataDir)
}
