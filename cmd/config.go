package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/veodin/sked/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for sked.

Shows the configuration file location, whether it exists, and all current
settings. Configuration values are merged from the config file with
sensible defaults.

By default, sked works without any configuration file. All settings have defaults:
  - data_dir: (empty, uses the platform config directory)
  - default_group_by: category
  - theme: dracula

Examples:

  Display current configuration:
    sked config                      Show all current settings

  Create a starter config file:
    sked config init                 Write a commented sample config

Configuration file location:
  ~/.config/sked/config.toml         Linux/macOS
  %APPDATA%\sked\config.toml         Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample configuration file",
	Long: `Create a commented sample configuration file at the default location.
Fails if a config file already exists.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		_, _ = fmt.Fprintln(deps.Stderr, "Valid settings: data_dir, default_group_by, theme")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for sked")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))

	if cfg.DataDir == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Data Dir:        (default)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Data Dir:        %s\n", cfg.DataDir)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Group By:        %s\n", cfg.DefaultGroupBy)
	_, _ = fmt.Fprintf(deps.Stdout, "Theme:           %s\n", cfg.Theme)

	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'sked config init' to create a starter config file.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// initConfig writes a commented sample config file
func initConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if _, err := os.Stat(configPath); err == nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Config file already exists at %s\n", configPath)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Edit it directly, or delete it first to regenerate")
		deps.Exit(1)
		return
	}

	if err := os.WriteFile(configPath, []byte(config.GenerateSampleConfig()), 0644); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that directory exists and is writable: %s\n", configPath)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created config file at %s\n", configPath)
}
