package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manav03panchal/clubportal/internal/errors"
)

// DiskSpaceInfo contains information about available disk space.
type DiskSpaceInfo struct {
	Path       string
	TotalBytes uint64
	FreeBytes  uint64
	UsedBytes  uint64
}

// FreePercent returns the percentage of free space.
func (d *DiskSpaceInfo) FreePercent() float64 {
	if d.TotalBytes == 0 {
		return 0
	}
	return float64(d.FreeBytes) / float64(d.TotalBytes) * 100
}

// CheckDiskSpace returns a SystemError when less than minFree bytes are
// available at path. A zero minFree disables the check. If free space cannot
// be determined the write proceeds.
func CheckDiskSpace(path string, minFree uint64) error {
	if minFree == 0 {
		return nil
	}
	info, err := GetDiskSpace(path)
	if err != nil {
		return nil
	}

	if info.FreeBytes < minFree {
		return errors.NewSystemError(
			fmt.Sprintf("insufficient disk space: %d KB free, need at least %d KB",
				info.FreeBytes/1024, minFree/1024),
			errors.ErrDiskFull,
		)
	}
	return nil
}

// existingAncestor walks up from path until it finds something that exists.
func existingAncestor(path string) string {
	for {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}

// writeAtomic writes a file through a temp file in the same directory and
// renames it over path, so readers never see a half-written table.
func writeAtomic(path string, write func(f *os.File) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return diskFullOr(err, "mkdir", "failed to create data directory")
	}

	tmpFile, err := os.CreateTemp(dir, ".clubportal-*.tmp")
	if err != nil {
		return diskFullOr(err, "create temp file", "failed to create temp file")
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if err := write(tmpFile); err != nil {
		tmpFile.Close()
		return diskFullOr(err, "write", "failed to write table")
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return diskFullOr(err, "sync", "failed to sync table")
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}

	success = true
	return nil
}

// diskFullOr maps a disk-full failure to a SystemError and wraps anything else.
func diskFullOr(err error, op, message string) error {
	if isDiskFullError(err) {
		return errors.NewSystemErrorWithOp(op, "disk full", errors.ErrDiskFull)
	}
	return fmt.Errorf("%s: %w", message, err)
}
