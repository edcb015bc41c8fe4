// Package config handles the TOML configuration file for sked.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/veodin/sked/internal/schedule"
)

const (
	// AppName is the application name used for the config directory
	AppName = "sked"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// DataDir overrides the directory holding per-date schedule files.
	// Empty means the default location under the user config directory.
	DataDir string `toml:"data_dir"`
	// DefaultGroupBy is the grouping field used by charts when no --by
	// flag is given (e.g. "category" or "activity")
	DefaultGroupBy string `toml:"default_group_by"`
	// Theme is the TUI theme name (a bubbletint theme ID)
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
// - data_dir: "" (default location)
// - default_group_by: "category"
// - theme: "dracula"
func DefaultConfig() Config {
	return Config{
		DataDir:        "",
		DefaultGroupBy: schedule.FieldCategory,
		Theme:          "dracula",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at the given path.
// Missing keys keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOrDefault loads the config file if it exists, otherwise returns
// defaults. A file that exists but fails to parse or validate is an error.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Normalize cleans up user-provided values: trims whitespace and
// lowercases the grouping field name.
func (c *Config) Normalize() {
	c.DataDir = strings.TrimSpace(c.DataDir)
	c.DefaultGroupBy = strings.ToLower(strings.TrimSpace(c.DefaultGroupBy))
	c.Theme = strings.TrimSpace(c.Theme)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.DefaultGroupBy == "" {
		return fmt.Errorf("default_group_by cannot be empty (e.g., %q or %q)",
			schedule.FieldCategory, schedule.FieldActivity)
	}
	return nil
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	cfg := DefaultConfig()
	return fmt.Sprintf(`# sked configuration file

# Directory holding per-date schedule files.
# Empty means the default location under your user config directory.
data_dir = %q

# Grouping field used by charts when no --by flag is given.
default_group_by = %q

# TUI theme name.
theme = %q
`, cfg.DataDir, cfg.DefaultGroupBy, cfg.Theme)
}
