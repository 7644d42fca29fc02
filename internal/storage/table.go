// Package storage provides the flat-file persistence layer for the club portal.
//
// Each logical store (attendance ledger, project tracker) sits on a Table:
// a header plus string rows that is read whole and rewritten whole. There is
// no locking here; two writers racing on the same file means the last save wins.
package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	apperrors "github.com/manav03panchal/clubportal/internal/errors"
	"github.com/manav03panchal/clubportal/internal/logging"
)

// ErrTableNotFound is returned by Table.Load when no backing store exists yet.
var ErrTableNotFound = errors.New("table not found")

// IsErrTableNotFound returns true if the error is a table not found error.
func IsErrTableNotFound(err error) bool {
	return errors.Is(err, ErrTableNotFound)
}

// Table is the storage port behind a ledger or tracker.
type Table interface {
	// Name identifies the table in logs and errors.
	Name() string
	// Load returns the header and every data row. It returns ErrTableNotFound
	// when the backing store has never been written.
	Load() (header []string, rows [][]string, err error)
	// Save replaces the whole table.
	Save(header []string, rows [][]string) error
}

// CSVFile is a Table backed by a CSV file with a header row.
type CSVFile struct {
	path         string
	minFreeSpace uint64
}

// NewCSVFile returns a Table stored at path. Saves are refused when fewer
// than minFreeSpace bytes are free on the target filesystem.
func NewCSVFile(path string, minFreeSpace uint64) *CSVFile {
	return &CSVFile{path: path, minFreeSpace: minFreeSpace}
}

// Name returns the file name.
func (f *CSVFile) Name() string {
	return filepath.Base(f.path)
}

// Path returns the full file path.
func (f *CSVFile) Path() string {
	return f.path
}

// Load reads the whole file.
func (f *CSVFile) Load() ([]string, [][]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, ErrTableNotFound
		}
		return nil, nil, fmt.Errorf("open %s: %w", f.Name(), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, malformed(f.Name(), "missing header row")
		}
		return nil, nil, malformed(f.Name(), err.Error())
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, malformed(f.Name(), err.Error())
	}

	logging.DebugLog("table loaded",
		logging.KeyTable, f.Name(),
		logging.KeyPath, f.path,
		logging.KeyCount, len(rows))

	return header, rows, nil
}

// Save overwrites the file with header and rows.
func (f *CSVFile) Save(header []string, rows [][]string) error {
	if err := CheckDiskSpace(filepath.Dir(f.path), f.minFreeSpace); err != nil {
		return err
	}

	err := writeAtomic(f.path, func(file *os.File) error {
		w := csv.NewWriter(file)
		if err := w.Write(header); err != nil {
			return err
		}
		if err := w.WriteAll(rows); err != nil {
			return err
		}
		return w.Error()
	})
	if err != nil {
		return err
	}

	logging.DebugLog("table saved",
		logging.KeyTable, f.Name(),
		logging.KeyPath, f.path,
		logging.KeyCount, len(rows))
	return nil
}

// MemoryTable is an in-process Table, used as a fake in tests and for
// throwaway sessions.
type MemoryTable struct {
	name   string
	header []string
	rows   [][]string
	exists bool
	saves  int
}

// NewMemoryTable returns an empty MemoryTable that has never been saved.
func NewMemoryTable(name string) *MemoryTable {
	return &MemoryTable{name: name}
}

// Name returns the table name.
func (m *MemoryTable) Name() string {
	return m.name
}

// Load returns copies of the stored header and rows.
func (m *MemoryTable) Load() ([]string, [][]string, error) {
	if !m.exists {
		return nil, nil, ErrTableNotFound
	}
	return slices.Clone(m.header), cloneRows(m.rows), nil
}

// Save stores copies of header and rows.
func (m *MemoryTable) Save(header []string, rows [][]string) error {
	m.header = slices.Clone(header)
	m.rows = cloneRows(rows)
	m.exists = true
	m.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (m *MemoryTable) Saves() int {
	return m.saves
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = slices.Clone(r)
	}
	return out
}

// checkHeader validates the header read from a table against want.
func checkHeader(table string, got, want []string) error {
	if !slices.Equal(got, want) {
		return malformed(table, fmt.Sprintf("unexpected columns %q, want %q", got, want))
	}
	return nil
}

// malformed reports a backing store whose contents cannot be trusted.
func malformed(table, detail string) error {
	return apperrors.NewSystemError(
		fmt.Sprintf("%s: %s", table, detail),
		apperrors.ErrMalformedTable,
	)
}
