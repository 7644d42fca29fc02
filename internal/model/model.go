// Package model defines the domain models for the club portal.
package model

import "time"

// Layouts used when records are written to and read from their backing tables.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Column headers of the backing tables, in file order.
var (
	AttendanceColumns = []string{"Name", "Date", "Time"}
	ProjectColumns    = []string{"Project", "Owner", "Status", "Start Date", "Due Date"}
)

// Clock returns the current instant. Ledgers take one so tests can pin "now".
type Clock func() time.Time

// DateOf truncates t to midnight of its calendar day in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a stored date column. Timestamps written with a time part
// ("2025-08-01 00:00:00") are accepted and truncated to the day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// FormatDate formats a date for storage and display.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
