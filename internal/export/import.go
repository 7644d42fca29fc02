package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/manav03panchal/clubportal/internal/errors"
	"github.com/manav03panchal/clubportal/internal/logging"
	"github.com/manav03panchal/clubportal/internal/model"
)

// spreadsheetDateLayouts are tried after the stored layout. Spreadsheet apps
// show date cells in their locale format, and excelize reads the shown text.
var spreadsheetDateLayouts = []string{
	"01-02-06",
	"1/2/2006",
	"1/2/06",
	"2006/01/02",
}

// ReadAttendanceXLSX reads check-ins from the first sheet of a workbook.
// Columns are Name, Date, Time; the first row is a header and is skipped.
// Rows without a name are skipped. A missing date or time takes the value of now.
func ReadAttendanceXLSX(r io.Reader, now time.Time) ([]model.AttendanceRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Warn("closing workbook failed", logging.KeyError, err)
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.NewUserError("excel file does not contain any sheets",
			"Export the roster with at least one sheet of Name, Date, Time columns.")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheetName, err)
	}

	var records []model.AttendanceRecord
	for i, row := range rows {
		if i == 0 {
			continue
		}

		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		name := cell(0)
		if name == "" {
			continue
		}

		rec, err := attendanceFromCells(name, cell(1), cell(2), now)
		if err != nil {
			return nil, fmt.Errorf("sheet %s row %d: %w", sheetName, i+1, err)
		}
		records = append(records, rec)
	}

	logging.DebugLog("attendance workbook read",
		logging.KeyTable, sheetName,
		logging.KeyCount, len(records))
	return records, nil
}

func attendanceFromCells(name, date, clock string, now time.Time) (model.AttendanceRecord, error) {
	rec := model.NewAttendanceRecord(name, now)

	if date != "" {
		d, err := parseSheetDate(date, now.Location())
		if err != nil {
			return rec, err
		}
		rec.Date = d
	}

	if clock != "" {
		t, err := parseSheetTime(clock)
		if err != nil {
			return rec, err
		}
		rec.Time = t
	}
	return rec, nil
}

func parseSheetDate(s string, loc *time.Location) (time.Time, error) {
	if d, err := model.ParseDate(s); err == nil {
		return d, nil
	}
	for _, layout := range spreadsheetDateLayouts {
		if d, err := time.ParseInLocation(layout, s, loc); err == nil {
			return model.DateOf(d), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q", errors.ErrInvalidDate, s)
}

func parseSheetTime(s string) (string, error) {
	for _, layout := range []string{model.TimeLayout, "15:04", "3:04:05 PM", "3:04 PM"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(model.TimeLayout), nil
		}
	}
	return "", fmt.Errorf("invalid time %q", s)
}
