package cmd

import (
	"io"
	"os"

	"github.com/veodin/sked/internal/config"
	"github.com/veodin/sked/internal/service"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Stdin      io.Reader
	Exit       func(code int)
	DataDir    func() (string, error)
	ConfigPath func() (string, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Exit:       os.Exit,
		DataDir:    resolveDefaultDataDir,
		ConfigPath: config.GetConfigPath,
	}
}

// resolveDefaultDataDir resolves the day-file directory, honoring a
// data_dir override in the config file.
func resolveDefaultDataDir() (string, error) {
	path, err := config.GetConfigPath()
	if err != nil {
		return "", err
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return "", err
	}
	return service.ResolveDataDir(cfg)
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// dayService builds a DayService against the configured data directory.
func dayService() (*service.DayService, error) {
	dir, err := deps.DataDir()
	if err != nil {
		return nil, err
	}
	return service.NewDayService(dir), nil
}

// loadConfig loads the effective configuration, falling back to
// defaults if the config file is absent.
func loadConfig() (config.Config, error) {
	path, err := deps.ConfigPath()
	if err != nil {
		return config.Config{}, err
	}
	return config.LoadOrDefault(path)
}
