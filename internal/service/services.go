// Package service provides the business logic layer for sked. It wraps
// the schedule, storage, and config packages behind a small API shared by
// the CLI and TUI frontends.
package service

import (
	"github.com/veodin/sked/internal/config"
	"github.com/veodin/sked/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Day    *DayService
	Report *ReportService
	Config *ConfigService
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	dataDir, err := ResolveDataDir(cfg)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(dataDir, configPath, cfg), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths
// (useful for testing)
func NewServicesWithPaths(dataDir, configPath string, cfg config.Config) *Services {
	dayService := NewDayService(dataDir)

	return &Services{
		Day:    dayService,
		Report: NewReportService(dayService, cfg),
		Config: NewConfigService(configPath, cfg),
	}
}

// ResolveDataDir returns the data directory to use for the given config:
// the configured override, or the default location.
func ResolveDataDir(cfg config.Config) (string, error) {
	if cfg.DataDir != "" {
		if err := mkdirAll(cfg.DataDir); err != nil {
			return "", err
		}
		return cfg.DataDir, nil
	}
	return storage.GetDataDir()
}
