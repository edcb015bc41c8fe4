package cmd

import (
	"strings"
	"testing"

	"github.com/veodin/sked/internal/schedule"
	"github.com/veodin/sked/internal/service"
	"github.com/veodin/sked/internal/timeutil"
)

func TestParseFieldFlags(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    map[string]string
		wantErr bool
	}{
		{"empty", nil, map[string]string{}, false},
		{"single pair", []string{"location=office"}, map[string]string{"location": "office"}, false},
		{"value with equals", []string{"note=a=b"}, map[string]string{"note": "a=b"}, false},
		{"trimmed", []string{" location = office "}, map[string]string{"location": "office"}, false},
		{"empty value", []string{"location="}, map[string]string{"location": ""}, false},
		{"missing equals", []string{"location"}, nil, true},
		{"empty key", []string{"=office"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFieldFlags(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseFieldFlags(%v) expected error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFieldFlags(%v) failed: %v", tt.raw, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseFieldFlags(%v) = %v, expected %v", tt.raw, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("field %q = %q, expected %q", k, got[k], v)
				}
			}
		})
	}
}

func TestAddEntry(t *testing.T) {
	env := setupTest(t)

	if err := addCmd.Flags().Set("category", "work"); err != nil {
		t.Fatalf("Failed to set flag: %v", err)
	}
	if err := addCmd.Flags().Set("activity", "coding"); err != nil {
		t.Fatalf("Failed to set flag: %v", err)
	}

	addEntry(addCmd, []string{"08:00", "09:30"})

	if env.exited {
		t.Fatalf("Unexpected exit with code %d, stderr: %s", env.exitCode, env.stderr.String())
	}

	output := env.stdout.String()
	for _, expected := range []string{"Added entry 1", "08:00-09:30", "1h 30m", "12.5%", "work / coding"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Output missing %q\nGot: %s", expected, output)
		}
	}

	// Verify persistence
	svc := service.NewDayService(env.dataDir)
	result, err := svc.Load(timeutil.Today())
	if err != nil {
		t.Fatalf("Failed to load day: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("Expected 1 stored entry, got %d", len(result.Entries))
	}
	if result.Entries[0].DurationMinutes != 90 {
		t.Errorf("Stored duration = %d, expected 90", result.Entries[0].DurationMinutes)
	}

	// Reset flags for other tests
	_ = addCmd.Flags().Set("category", "")
	_ = addCmd.Flags().Set("activity", "")
}

func TestAddEntry_MalformedTimesWarn(t *testing.T) {
	env := setupTest(t)

	addEntry(addCmd, []string{"8am", "9am"})

	if env.exited {
		t.Fatalf("Malformed times should not fail, stderr: %s", env.stderr.String())
	}
	if !strings.Contains(env.stderr.String(), "zero duration") {
		t.Errorf("Expected zero duration warning, got: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Added entry 1") {
		t.Errorf("Entry should still be stored, got: %s", env.stdout.String())
	}
}

func TestAddEntry_AppendsToExistingDay(t *testing.T) {
	env := setupTest(t)
	day := timeutil.Today()
	seedDay(t, env, day, []schedule.Entry{testEntry("08:00", "09:30", "work", "coding")})

	addEntry(addCmd, []string{"10:00", "11:00"})

	if !strings.Contains(env.stdout.String(), "Added entry 2") {
		t.Errorf("Expected index 2 for appended entry, got: %s", env.stdout.String())
	}
}
