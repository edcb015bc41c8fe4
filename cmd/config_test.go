package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/veodin/sked/internal/config"
)

func TestShowConfig_Defaults(t *testing.T) {
	env := setupTest(t)

	showConfig()

	if env.exited {
		t.Fatalf("Unexpected exit with code %d, stderr: %s", env.exitCode, env.stderr.String())
	}

	output := env.stdout.String()
	expected := []string{
		"Configuration for sked",
		"No config file (using defaults)",
		"Data Dir:        (default)",
		"Group By:        category",
		"Theme:           dracula",
		"sked config init",
	}
	for _, s := range expected {
		if !strings.Contains(output, s) {
			t.Errorf("Output missing %q\nGot: %s", s, output)
		}
	}
}

func TestShowConfig_WithFile(t *testing.T) {
	env := setupTest(t)

	configPath := filepath.Join(env.dataDir, "config.toml")
	content := "default_group_by = \"activity\"\ntheme = \"nord\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	showConfig()

	output := env.stdout.String()
	for _, s := range []string{"File exists", "Group By:        activity", "Theme:           nord"} {
		if !strings.Contains(output, s) {
			t.Errorf("Output missing %q\nGot: %s", s, output)
		}
	}
}

func TestShowConfig_InvalidTOML(t *testing.T) {
	env := setupTest(t)

	configPath := filepath.Join(env.dataDir, "config.toml")
	if err := os.WriteFile(configPath, []byte("not [ valid toml"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	showConfig()

	if !env.exited || env.exitCode != 1 {
		t.Errorf("Expected exit 1, got exited=%v code=%d", env.exited, env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Failed to load configuration") {
		t.Errorf("Expected load error, got: %s", env.stderr.String())
	}
}

func TestInitConfig(t *testing.T) {
	env := setupTest(t)

	initConfig()

	if env.exited {
		t.Fatalf("Unexpected exit with code %d, stderr: %s", env.exitCode, env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Created config file at") {
		t.Errorf("Expected creation message, got: %s", env.stdout.String())
	}

	// The generated sample must load back to the defaults
	configPath := filepath.Join(env.dataDir, "config.toml")
	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Generated config does not load: %v", err)
	}
	if cfg != config.DefaultConfig() {
		t.Errorf("Generated config = %+v, expected defaults", cfg)
	}

	// Second init refuses to overwrite
	initConfig()
	if !env.exited || env.exitCode != 1 {
		t.Errorf("Expected exit 1 on second init, got exited=%v code=%d", env.exited, env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "already exists") {
		t.Errorf("Expected already exists error, got: %s", env.stderr.String())
	}
}
