package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	if filepath.Base(cfg.Storage.DataDir) != AppName {
		t.Errorf("expected DataDir to end in %q, got %q", AppName, cfg.Storage.DataDir)
	}
	if cfg.Storage.AttendanceFile != "attendance.csv" {
		t.Errorf("expected AttendanceFile = attendance.csv, got %q", cfg.Storage.AttendanceFile)
	}
	if cfg.Storage.ProjectsFile != "projects.csv" {
		t.Errorf("expected ProjectsFile = projects.csv, got %q", cfg.Storage.ProjectsFile)
	}
	if cfg.Storage.MinFreeSpace != 1024*1024 {
		t.Errorf("expected MinFreeSpace = 1MB, got %d", cfg.Storage.MinFreeSpace)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected Server.Addr = :8080, got %q", cfg.Server.Addr)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("expected Server.Mode = release, got %q", cfg.Server.Mode)
	}
	if cfg.Dashboard.RefreshInterval != 5*time.Second {
		t.Errorf("expected Dashboard.RefreshInterval = 5s, got %v", cfg.Dashboard.RefreshInterval)
	}
	if cfg.Dashboard.MaxLogRows != 8 {
		t.Errorf("expected Dashboard.MaxLogRows = 8, got %d", cfg.Dashboard.MaxLogRows)
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLUBPORTAL_DATA_DIR", dir)
	t.Setenv("CLUBPORTAL_PROJECTS_FILE", "board.csv")
	t.Setenv("CLUBPORTAL_ADDR", "127.0.0.1:9000")
	t.Setenv("CLUBPORTAL_REFRESH_INTERVAL", "30s")
	t.Setenv("CLUBPORTAL_MAX_LOG_ROWS", "20")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Storage.DataDir != dir {
		t.Errorf("expected DataDir = %q, got %q", dir, cfg.Storage.DataDir)
	}
	if cfg.ProjectsPath() != filepath.Join(dir, "board.csv") {
		t.Errorf("unexpected ProjectsPath %q", cfg.ProjectsPath())
	}
	if cfg.AttendancePath() != filepath.Join(dir, "attendance.csv") {
		t.Errorf("unexpected AttendancePath %q", cfg.AttendancePath())
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("expected Server.Addr override, got %q", cfg.Server.Addr)
	}
	if cfg.Dashboard.RefreshInterval != 30*time.Second {
		t.Errorf("expected RefreshInterval = 30s, got %v", cfg.Dashboard.RefreshInterval)
	}
	if cfg.Dashboard.MaxLogRows != 20 {
		t.Errorf("expected MaxLogRows = 20, got %d", cfg.Dashboard.MaxLogRows)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("unset variables should keep defaults, got Mode %q", cfg.Server.Mode)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("CLUBPORTAL_MAX_LOG_ROWS", "many")

	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric CLUBPORTAL_MAX_LOG_ROWS")
	}
}
