package model

import (
	"fmt"
	"time"
)

// AttendanceRecord is a single check-in. Records are never edited once written.
type AttendanceRecord struct {
	Name string    `json:"name"`
	Date time.Time `json:"-"`
	Time string    `json:"time"`
}

// NewAttendanceRecord creates a check-in for name at the given instant.
func NewAttendanceRecord(name string, at time.Time) AttendanceRecord {
	return AttendanceRecord{
		Name: name,
		Date: DateOf(at),
		Time: at.Format(TimeLayout),
	}
}

// DateString returns the record's date as stored.
func (r AttendanceRecord) DateString() string {
	return FormatDate(r.Date)
}

// Row returns the record as a table row matching AttendanceColumns.
func (r AttendanceRecord) Row() []string {
	return []string{r.Name, r.DateString(), r.Time}
}

// AttendanceFromRow parses a row written by Row.
func AttendanceFromRow(row []string) (AttendanceRecord, error) {
	if len(row) != len(AttendanceColumns) {
		return AttendanceRecord{}, fmt.Errorf("expected %d columns, got %d", len(AttendanceColumns), len(row))
	}
	date, err := ParseDate(row[1])
	if err != nil {
		return AttendanceRecord{}, fmt.Errorf("invalid date %q: %w", row[1], err)
	}
	if _, err := time.Parse(TimeLayout, row[2]); err != nil {
		return AttendanceRecord{}, fmt.Errorf("invalid time %q: %w", row[2], err)
	}
	return AttendanceRecord{Name: row[0], Date: date, Time: row[2]}, nil
}

// AttendanceTable is the full in-memory copy of the attendance ledger.
type AttendanceTable []AttendanceRecord

// Len returns the number of check-ins.
func (t AttendanceTable) Len() int {
	return len(t)
}

// Rows converts the table to rows for storage.
func (t AttendanceTable) Rows() [][]string {
	rows := make([][]string, len(t))
	for i, r := range t {
		rows[i] = r.Row()
	}
	return rows
}
