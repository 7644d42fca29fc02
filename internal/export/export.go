// Package export writes the backing tables out as CSV, JSON or spreadsheets
// and reads attendance back in from a spreadsheet.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/manav03panchal/clubportal/internal/model"
	"github.com/manav03panchal/clubportal/internal/output"
	"github.com/manav03panchal/clubportal/internal/validate"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Formats lists every supported export format.
var Formats = []Format{FormatCSV, FormatJSON, FormatXLSX}

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if err := validate.OneOf("format", string(f), "csv", "json", "xlsx"); err != nil {
		return "", err
	}
	return f, nil
}

// Sheet is one table ready to be written. Records is what the JSON export
// emits; Header and Rows feed the tabular formats.
type Sheet struct {
	Name    string
	Header  []string
	Rows    [][]string
	Records any
}

// AttendanceSheet prepares the attendance ledger for export.
func AttendanceSheet(records model.AttendanceTable) Sheet {
	return Sheet{
		Name:    "Attendance",
		Header:  model.AttendanceColumns,
		Rows:    records.Rows(),
		Records: output.NewAttendanceOutputs(records),
	}
}

// ProjectSheet prepares the project tracker for export.
func ProjectSheet(projects model.ProjectTable) Sheet {
	return Sheet{
		Name:    "Projects",
		Header:  model.ProjectColumns,
		Rows:    projects.Rows(),
		Records: output.NewProjectOutputs(projects),
	}
}

// Write writes sheet to w in the given format.
func Write(w io.Writer, format Format, sheet Sheet, now time.Time) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, sheet)
	case FormatJSON:
		return WriteJSON(w, sheet, now)
	case FormatXLSX:
		return WriteXLSX(w, sheet)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteCSV writes the sheet with its header row.
func WriteCSV(w io.Writer, sheet Sheet) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(sheet.Header); err != nil {
		return err
	}
	if err := writer.WriteAll(sheet.Rows); err != nil {
		return err
	}
	return writer.Error()
}

// WriteJSON writes the sheet's records wrapped with export metadata.
func WriteJSON(w io.Writer, sheet Sheet, now time.Time) error {
	doc := struct {
		Table      string `json:"table"`
		ExportedAt string `json:"exported_at"`
		Count      int    `json:"count"`
		Records    any    `json:"records"`
	}{
		Table:      sheet.Name,
		ExportedAt: now.Format(time.RFC3339),
		Count:      len(sheet.Rows),
		Records:    sheet.Records,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// WriteXLSX writes the sheet as a single-sheet workbook with a bold header.
func WriteXLSX(w io.Writer, sheet Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	name := sheet.Name
	if name == "" {
		name = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if len(sheet.Header) > 0 {
		last, err := excelize.CoordinatesToCellName(len(sheet.Header), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(name, "A1", last, bold); err != nil {
			return err
		}
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	for i, width := range columnWidths(sheet) {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, col, col, width); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// columnWidths sizes each column to its longest value, within limits.
func columnWidths(sheet Sheet) []float64 {
	widths := make([]float64, len(sheet.Header))
	for i, h := range sheet.Header {
		widths[i] = float64(len(h))
	}
	for _, row := range sheet.Rows {
		for i, v := range row {
			if i < len(widths) && float64(len(v)) > widths[i] {
				widths[i] = float64(len(v))
			}
		}
	}
	for i := range widths {
		widths[i] = min(max(widths[i]+2, 10), 60)
	}
	return widths
}
