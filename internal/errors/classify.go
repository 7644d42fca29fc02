package errors

import (
	"errors"
	"os"
	"syscall"
)

// Category represents the type of error for display and handling purposes.
type Category int

const (
	// CategoryUnknown is the default for unclassified errors.
	CategoryUnknown Category = iota
	// CategoryUser indicates an error the user can fix (blank name, bad date).
	CategoryUser
	// CategorySystem indicates a storage or environment error.
	CategorySystem
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategorySystem:
		return "system"
	default:
		return "unknown"
	}
}

// Classify determines the category of an error.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}
	if IsUserError(err) {
		return CategoryUser
	}
	if IsSystemError(err) || isSystemLevel(err) {
		return CategorySystem
	}
	return CategoryUnknown
}

// isSystemLevel checks for OS errors that never originate from user input.
func isSystemLevel(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOSPC, syscall.EACCES, syscall.EPERM, syscall.EROFS:
			return true
		}
	}
	if errors.Is(err, os.ErrPermission) {
		return true
	}
	return errors.Is(err, ErrDiskFull) || errors.Is(err, ErrMalformedTable)
}

// IsDiskFull reports whether err is, or wraps, a no-space-left condition.
func IsDiskFull(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDiskFull) {
		return true
	}
	var errno syscall.Errno
	return errors.As(err, &errno) && errno == syscall.ENOSPC
}

// IsPermission reports whether err is a permission failure.
func IsPermission(err error) bool {
	return err != nil && (errors.Is(err, os.ErrPermission) || errors.Is(err, ErrPermissionDenied))
}
