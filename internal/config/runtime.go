// Package config provides centralized configuration for club portal runtime values.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
)

// AppName is the application name used for data directories.
const AppName = "clubportal"

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	Storage   StorageConfig   `envPrefix:"CLUBPORTAL_"`
	Server    ServerConfig    `envPrefix:"CLUBPORTAL_"`
	Dashboard DashboardConfig `envPrefix:"CLUBPORTAL_"`
}

// StorageConfig holds backing-file configuration.
type StorageConfig struct {
	// DataDir holds both CSV files.
	// Default: $XDG_DATA_HOME/clubportal
	DataDir string `env:"DATA_DIR"`

	// AttendanceFile is the attendance ledger file name inside DataDir.
	// Default: attendance.csv
	AttendanceFile string `env:"ATTENDANCE_FILE"`

	// ProjectsFile is the project tracker file name inside DataDir.
	// Default: projects.csv
	ProjectsFile string `env:"PROJECTS_FILE"`

	// MinFreeSpace is the minimum free space required before a table is rewritten.
	// Default: 1MB
	MinFreeSpace uint64 `env:"MIN_FREE_SPACE"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// Addr is the listen address.
	// Default: :8080
	Addr string `env:"ADDR"`

	// Mode is the gin mode: debug, release or test.
	// Default: release
	Mode string `env:"GIN_MODE"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`
}

// DashboardConfig holds TUI configuration.
type DashboardConfig struct {
	// RefreshInterval is how often the dashboard reloads both tables.
	// Default: 5s
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// MaxLogRows caps the attendance log shown on the dashboard.
	// Default: 8
	MaxLogRows int `env:"MAX_LOG_ROWS"`
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Storage: StorageConfig{
			DataDir:        filepath.Join(xdg.DataHome, AppName),
			AttendanceFile: "attendance.csv",
			ProjectsFile:   "projects.csv",
			MinFreeSpace:   1024 * 1024,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			Mode:         "release",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Dashboard: DashboardConfig{
			RefreshInterval: 5 * time.Second,
			MaxLogRows:      8,
		},
	}
}

// Load returns the defaults overridden by CLUBPORTAL_* environment variables.
func Load() (*RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromEnv overrides fields whose environment variable is set.
func (c *RuntimeConfig) loadFromEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// AttendancePath returns the full path of the attendance ledger file.
func (c *RuntimeConfig) AttendancePath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.AttendanceFile)
}

// ProjectsPath returns the full path of the project tracker file.
func (c *RuntimeConfig) ProjectsPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.ProjectsFile)
}
