package schedule

import (
	"errors"
	"fmt"
	"testing"
)

func entryWith(field, value string, minutes int) Entry {
	// Build an entry whose duration comes out to the requested number of
	// minutes via a real start/end pair, so derived fields stay honest.
	start := "00:00"
	end := clockFromMinutes(minutes)
	e := Entry{Start: start, End: end}
	e.SetField(field, value)
	e.Recalculate()
	return e
}

func clockFromMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", (minutes/60)%24, minutes%60)
}

func bucketSet(buckets []Bucket) map[string]Bucket {
	set := make(map[string]Bucket, len(buckets))
	for _, b := range buckets {
		set[b.Key] = b
	}
	return set
}

func TestAggregate_GroupsByExactKey(t *testing.T) {
	entries := []Entry{
		entryWith(FieldCategory, "Work", 60),
		entryWith(FieldCategory, "Work", 30),
		entryWith(FieldCategory, "Rest", 90),
	}

	buckets, err := Aggregate(entries, FieldCategory)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}

	// Order is first-seen and intentionally not asserted here; compare as a set.
	set := bucketSet(buckets)
	if len(set) != 2 {
		t.Fatalf("got %d buckets, expected 2: %v", len(set), buckets)
	}

	work, ok := set["Work"]
	if !ok {
		t.Fatal("missing Work bucket")
	}
	if work.TotalMinutes != 90 || work.PercentOfDay != 12.5 {
		t.Errorf("Work bucket = (%d, %v), expected (90, 12.5)", work.TotalMinutes, work.PercentOfDay)
	}

	rest, ok := set["Rest"]
	if !ok {
		t.Fatal("missing Rest bucket")
	}
	if rest.TotalMinutes != 90 || rest.PercentOfDay != 12.5 {
		t.Errorf("Rest bucket = (%d, %v), expected (90, 12.5)", rest.TotalMinutes, rest.PercentOfDay)
	}
}

func TestAggregate_DoesNotNormalizeKeys(t *testing.T) {
	entries := []Entry{
		entryWith(FieldCategory, "Work", 60),
		entryWith(FieldCategory, " Work", 30),
		entryWith(FieldCategory, "work", 15),
	}

	buckets, err := Aggregate(entries, FieldCategory)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}

	// Keys that differ only in whitespace or case stay separate buckets.
	set := bucketSet(buckets)
	if len(set) != 3 {
		t.Fatalf("got %d buckets, expected 3: %v", len(set), buckets)
	}
	if set["Work"].TotalMinutes != 60 {
		t.Errorf("Work bucket = %d minutes, expected 60", set["Work"].TotalMinutes)
	}
	if set[" Work"].TotalMinutes != 30 {
		t.Errorf("' Work' bucket = %d minutes, expected 30", set[" Work"].TotalMinutes)
	}
	if set["work"].TotalMinutes != 15 {
		t.Errorf("work bucket = %d minutes, expected 15", set["work"].TotalMinutes)
	}
}

func TestAggregate_ExcludesEntriesWithoutGroupValue(t *testing.T) {
	blank := Entry{Start: "09:00", End: "10:00"}
	blank.Recalculate()

	whitespace := Entry{Start: "10:00", End: "11:00"}
	whitespace.SetField(FieldCategory, "   ")
	whitespace.Recalculate()

	buckets, err := Aggregate([]Entry{blank, whitespace}, FieldCategory)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if len(buckets) != 0 {
		t.Errorf("got %d buckets, expected none: %v", len(buckets), buckets)
	}
	if buckets == nil {
		t.Error("expected empty slice, not nil")
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	buckets, err := Aggregate(nil, FieldActivity)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if len(buckets) != 0 {
		t.Errorf("got %d buckets, expected none", len(buckets))
	}
}

func TestAggregate_EmptyGroupFieldIsAnError(t *testing.T) {
	_, err := Aggregate([]Entry{entryWith(FieldCategory, "Work", 60)}, "")
	if !errors.Is(err, ErrEmptyGroupField) {
		t.Errorf("err = %v, expected ErrEmptyGroupField", err)
	}

	_, err = Aggregate(nil, "  ")
	if !errors.Is(err, ErrEmptyGroupField) {
		t.Errorf("err = %v, expected ErrEmptyGroupField for whitespace name", err)
	}
}

func TestAggregate_PercentMayExceedBaseline(t *testing.T) {
	// Three six-hour blocks: 1080 minutes against a 720-minute baseline.
	entries := []Entry{
		entryWith(FieldCategory, "Work", 360),
		entryWith(FieldCategory, "Work", 360),
		entryWith(FieldCategory, "Work", 360),
	}

	buckets, err := Aggregate(entries, FieldCategory)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("got %d buckets, expected 1", len(buckets))
	}
	if buckets[0].TotalMinutes != 1080 {
		t.Errorf("TotalMinutes = %d, expected 1080", buckets[0].TotalMinutes)
	}
	if buckets[0].PercentOfDay <= 100 {
		t.Errorf("PercentOfDay = %v, expected > 100 (must not be clamped)", buckets[0].PercentOfDay)
	}
	if buckets[0].PercentOfDay != 150.0 {
		t.Errorf("PercentOfDay = %v, expected 150.0", buckets[0].PercentOfDay)
	}
}

func TestAggregate_ZeroDurationEntriesStillBucketed(t *testing.T) {
	// A row with unparseable times has zero duration but a real category;
	// it still belongs to its bucket.
	broken := Entry{Start: "not-a-time", End: "10:00"}
	broken.SetField(FieldCategory, "Work")
	broken.Recalculate()

	buckets, err := Aggregate([]Entry{broken}, FieldCategory)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if len(buckets) != 1 || buckets[0].TotalMinutes != 0 {
		t.Errorf("buckets = %v, expected single zero-minute Work bucket", buckets)
	}
}

func TestAggregate_AlternateGroupField(t *testing.T) {
	e1 := entryWith(FieldActivity, "reading", 30)
	e1.SetField(FieldCategory, "Rest")
	e2 := entryWith(FieldActivity, "reading", 45)

	buckets, err := Aggregate([]Entry{e1, e2}, FieldActivity)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	set := bucketSet(buckets)
	if b := set["reading"]; b.TotalMinutes != 75 {
		t.Errorf("reading bucket = %d minutes, expected 75", b.TotalMinutes)
	}
}

func TestTotal(t *testing.T) {
	entries := []Entry{
		entryWith(FieldCategory, "Work", 60),
		entryWith(FieldCategory, "Rest", 30),
	}
	minutes, percent := Total(entries)
	if minutes != 90 || percent != 12.5 {
		t.Errorf("Total = (%d, %v), expected (90, 12.5)", minutes, percent)
	}

	minutes, percent = Total(nil)
	if minutes != 0 || percent != 0 {
		t.Errorf("Total(nil) = (%d, %v), expected (0, 0)", minutes, percent)
	}
}
