package model

import (
	"fmt"
	"strings"
	"time"
)

// Status is a free-form lifecycle label. Any status may follow any other.
type Status string

const (
	StatusPlanned    Status = "Planned"
	StatusInProgress Status = "In Progress"
	StatusBlocked    Status = "Blocked"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusPlanned, StatusInProgress, StatusBlocked, StatusCompleted}

// DefaultOwner is stored when a project is added without an owner.
const DefaultOwner = "Unassigned"

// String returns the status label.
func (s Status) String() string {
	return string(s)
}

// IsCompleted reports whether the status is Completed.
func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

// ParseStatus maps user input onto one of the four statuses.
func ParseStatus(s string) (Status, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", " ", "_", " ").Replace(key)
	for _, st := range Statuses {
		if strings.ToLower(string(st)) == key {
			return st, true
		}
	}
	return "", false
}

// ProjectRecord is one row of the project tracker.
type ProjectRecord struct {
	Name      string    `json:"project"`
	Owner     string    `json:"owner"`
	Status    Status    `json:"status"`
	StartDate time.Time `json:"-"`
	DueDate   time.Time `json:"-"`
}

// NewProjectRecord builds a record, defaulting a blank owner.
func NewProjectRecord(name, owner string, status Status, start, due time.Time) ProjectRecord {
	if strings.TrimSpace(owner) == "" {
		owner = DefaultOwner
	}
	return ProjectRecord{
		Name:      name,
		Owner:     owner,
		Status:    status,
		StartDate: DateOf(start),
		DueDate:   DateOf(due),
	}
}

// Row returns the record as a table row matching ProjectColumns.
func (p ProjectRecord) Row() []string {
	return []string{p.Name, p.Owner, string(p.Status), FormatDate(p.StartDate), FormatDate(p.DueDate)}
}

// ProjectFromRow parses a row written by Row. The status column is taken
// verbatim since the label is free-form.
func ProjectFromRow(row []string) (ProjectRecord, error) {
	if len(row) != len(ProjectColumns) {
		return ProjectRecord{}, fmt.Errorf("expected %d columns, got %d", len(ProjectColumns), len(row))
	}
	start, err := ParseDate(row[3])
	if err != nil {
		return ProjectRecord{}, fmt.Errorf("invalid start date %q: %w", row[3], err)
	}
	due, err := ParseDate(row[4])
	if err != nil {
		return ProjectRecord{}, fmt.Errorf("invalid due date %q: %w", row[4], err)
	}
	return ProjectRecord{
		Name:      row[0],
		Owner:     row[1],
		Status:    Status(row[2]),
		StartDate: start,
		DueDate:   due,
	}, nil
}

// ProjectTable is the full in-memory copy of the project tracker.
type ProjectTable []ProjectRecord

// Len returns the number of projects.
func (t ProjectTable) Len() int {
	return len(t)
}

// Rows converts the table to rows for storage.
func (t ProjectTable) Rows() [][]string {
	rows := make([][]string, len(t))
	for i, p := range t {
		rows[i] = p.Row()
	}
	return rows
}

// SeedProjects returns the rows written the first time the tracker is loaded.
func SeedProjects() ProjectTable {
	d := func(s string) time.Time {
		t, _ := time.ParseInLocation(DateLayout, s, time.Local)
		return t
	}
	return ProjectTable{
		{Name: "Member Onboarding", Owner: "Afaf", Status: StatusInProgress, StartDate: d("2025-08-01"), DueDate: d("2025-09-01")},
		{Name: "Website Refresh", Owner: "Team Web", Status: StatusPlanned, StartDate: d("2025-08-20"), DueDate: d("2025-10-05")},
		{Name: "Hack Night", Owner: "Events", Status: StatusCompleted, StartDate: d("2025-07-10"), DueDate: d("2025-07-25")},
	}
}
