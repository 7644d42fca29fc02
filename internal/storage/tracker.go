package storage

import (
	"fmt"
	"time"

	"github.com/manav03panchal/clubportal/internal/errors"
	"github.com/manav03panchal/clubportal/internal/logging"
	"github.com/manav03panchal/clubportal/internal/model"
	"github.com/manav03panchal/clubportal/internal/validate"
)

// ProjectInput is what the "add project" form submits.
type ProjectInput struct {
	Name   string
	Owner  string
	Status model.Status
	// Zero dates default to today, like the form's date pickers.
	StartDate time.Time
	DueDate   time.Time
}

// ProjectTracker is the project table. Rows are only ever appended.
type ProjectTracker struct {
	table Table
	now   model.Clock
}

// NewProjectTracker creates a tracker over table. A nil clock uses time.Now.
func NewProjectTracker(table Table, now model.Clock) *ProjectTracker {
	if now == nil {
		now = time.Now
	}
	return &ProjectTracker{table: table, now: now}
}

// Load returns every project. The first load against an empty store writes
// the seed rows so there is always something to show.
func (t *ProjectTracker) Load() (model.ProjectTable, error) {
	header, rows, err := t.table.Load()
	if err != nil {
		if IsErrTableNotFound(err) {
			return t.seed()
		}
		return nil, err
	}
	if err := checkHeader(t.table.Name(), header, model.ProjectColumns); err != nil {
		return nil, err
	}

	projects := make(model.ProjectTable, 0, len(rows))
	for i, row := range rows {
		p, err := model.ProjectFromRow(row)
		if err != nil {
			return nil, malformed(t.table.Name(), fmt.Sprintf("row %d: %v", i+2, err))
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (t *ProjectTracker) seed() (model.ProjectTable, error) {
	projects := model.SeedProjects()
	if err := t.table.Save(model.ProjectColumns, projects.Rows()); err != nil {
		return nil, errors.Wrapf(err, "seed %s", t.table.Name())
	}
	logging.Info("project tracker seeded",
		logging.KeyTable, t.table.Name(),
		logging.KeyCount, projects.Len())
	return projects, nil
}

// Append adds a project. The name is required; a blank owner is stored as
// "Unassigned" and an empty status as Planned. Dates are not cross-checked.
func (t *ProjectTracker) Append(in ProjectInput) (model.ProjectRecord, error) {
	name, err := validate.Required("project", in.Name, errors.ErrProjectNameRequired)
	if err != nil {
		return model.ProjectRecord{}, err
	}

	status := in.Status
	if status == "" {
		status = model.StatusPlanned
	}
	today := t.now()
	start, due := in.StartDate, in.DueDate
	if start.IsZero() {
		start = today
	}
	if due.IsZero() {
		due = today
	}
	rec := model.NewProjectRecord(name, validate.Trim(in.Owner), status, start, due)

	projects, err := t.Load()
	if err != nil {
		return model.ProjectRecord{}, err
	}
	projects = append(projects, rec)

	if err := t.table.Save(model.ProjectColumns, projects.Rows()); err != nil {
		return model.ProjectRecord{}, errors.Wrapf(err, "save %s", t.table.Name())
	}

	logging.Info("project added",
		logging.KeyProject, rec.Name,
		logging.KeyStatus, string(rec.Status),
		logging.KeyCount, projects.Len())
	return rec, nil
}
