package storage

import (
	"fmt"
	"time"

	"github.com/manav03panchal/clubportal/internal/errors"
	"github.com/manav03panchal/clubportal/internal/logging"
	"github.com/manav03panchal/clubportal/internal/model"
	"github.com/manav03panchal/clubportal/internal/validate"
)

// AttendanceLedger is the append-only check-in table.
type AttendanceLedger struct {
	table Table
	now   model.Clock
}

// NewAttendanceLedger creates a ledger over table. A nil clock uses time.Now.
func NewAttendanceLedger(table Table, now model.Clock) *AttendanceLedger {
	if now == nil {
		now = time.Now
	}
	return &AttendanceLedger{table: table, now: now}
}

// Load returns every check-in. A ledger that has never been written loads
// as an empty table.
func (l *AttendanceLedger) Load() (model.AttendanceTable, error) {
	header, rows, err := l.table.Load()
	if err != nil {
		if IsErrTableNotFound(err) {
			return model.AttendanceTable{}, nil
		}
		return nil, err
	}
	if err := checkHeader(l.table.Name(), header, model.AttendanceColumns); err != nil {
		return nil, err
	}

	records := make(model.AttendanceTable, 0, len(rows))
	for i, row := range rows {
		rec, err := model.AttendanceFromRow(row)
		if err != nil {
			return nil, malformed(l.table.Name(), fmt.Sprintf("row %d: %v", i+2, err))
		}
		records = append(records, rec)
	}
	return records, nil
}

// Append checks in name at the current instant. Blank names are rejected
// before anything is read or written.
func (l *AttendanceLedger) Append(name string) (model.AttendanceRecord, error) {
	name, err := validate.Required("name", name, errors.ErrNameRequired)
	if err != nil {
		return model.AttendanceRecord{}, err
	}

	rec := model.NewAttendanceRecord(name, l.now())
	if err := l.AppendRecord(rec); err != nil {
		return model.AttendanceRecord{}, err
	}
	return rec, nil
}

// AppendRecord adds a fully formed record, reloading and rewriting the
// whole table.
func (l *AttendanceLedger) AppendRecord(rec model.AttendanceRecord) error {
	records, err := l.Load()
	if err != nil {
		return err
	}
	records = append(records, rec)

	if err := l.table.Save(model.AttendanceColumns, records.Rows()); err != nil {
		return errors.Wrapf(err, "save %s", l.table.Name())
	}

	logging.Info("attendance recorded",
		logging.KeyMember, rec.Name,
		logging.KeyCount, records.Len())
	return nil
}

// AppendMany adds several records with a single load and save. Records with
// a blank name are skipped; the number written is returned.
func (l *AttendanceLedger) AppendMany(recs []model.AttendanceRecord) (int, error) {
	records, err := l.Load()
	if err != nil {
		return 0, err
	}

	added := 0
	for _, rec := range recs {
		name, err := validate.Required("name", rec.Name, errors.ErrNameRequired)
		if err != nil {
			continue
		}
		rec.Name = name
		records = append(records, rec)
		added++
	}
	if added == 0 {
		return 0, nil
	}

	if err := l.table.Save(model.AttendanceColumns, records.Rows()); err != nil {
		return 0, errors.Wrapf(err, "save %s", l.table.Name())
	}
	return added, nil
}
