package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/manav03panchal/clubportal/internal/errors"
	"github.com/manav03panchal/clubportal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins "now" to 2025-09-12 18:30:05 local time.
func fixedClock() time.Time {
	return time.Date(2025, 9, 12, 18, 30, 5, 0, time.Local)
}

func setupLedger(t *testing.T) (*AttendanceLedger, *MemoryTable) {
	t.Helper()
	table := NewMemoryTable("attendance")
	return NewAttendanceLedger(table, fixedClock), table
}

func setupTracker(t *testing.T) (*ProjectTracker, *MemoryTable) {
	t.Helper()
	table := NewMemoryTable("projects")
	return NewProjectTracker(table, fixedClock), table
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// =============================================================================
// Attendance Ledger Tests
// =============================================================================

func TestLedgerLoadMissing(t *testing.T) {
	ledger, table := setupLedger(t)

	records, err := ledger.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 0, table.Saves(), "loading must not create the ledger")
}

func TestLedgerAppend(t *testing.T) {
	ledger, _ := setupLedger(t)

	rec, err := ledger.Append("  Sam  ")
	require.NoError(t, err)
	assert.Equal(t, "Sam", rec.Name)
	assert.Equal(t, "2025-09-12", rec.DateString())
	assert.Equal(t, "18:30:05", rec.Time)

	records, err := ledger.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Sam", records[0].Name)
	assert.Equal(t, "2025-09-12", records[0].DateString())
	assert.Equal(t, "18:30:05", records[0].Time)
}

func TestLedgerAppendBlankName(t *testing.T) {
	for _, name := range []string{"", " ", "\t\n"} {
		t.Run(fmt.Sprintf("%q", name), func(t *testing.T) {
			ledger, table := setupLedger(t)

			_, err := ledger.Append(name)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrNameRequired))
			assert.True(t, apperrors.IsUserError(err))
			assert.Equal(t, 0, table.Saves())
		})
	}
}

func TestLedgerAppendPreservesOrder(t *testing.T) {
	ledger, _ := setupLedger(t)

	for _, name := range []string{"Sam", "Afaf", "Sam", "Lee"} {
		_, err := ledger.Append(name)
		require.NoError(t, err)
	}

	records, err := ledger.Load()
	require.NoError(t, err)
	require.Len(t, records, 4)
	var names []string
	for _, r := range records {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Sam", "Afaf", "Sam", "Lee"}, names)
}

func TestLedgerAppendRecord(t *testing.T) {
	ledger, table := setupLedger(t)

	at := time.Date(2025, 8, 1, 9, 0, 0, 0, time.Local)
	require.NoError(t, ledger.AppendRecord(model.NewAttendanceRecord("Afaf", at)))

	_, rows, err := table.Load()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Afaf", "2025-08-01", "09:00:00"}}, rows)
}

func TestLedgerAppendMany(t *testing.T) {
	ledger, table := setupLedger(t)

	at := time.Date(2025, 8, 1, 9, 0, 0, 0, time.Local)
	added, err := ledger.AppendMany([]model.AttendanceRecord{
		model.NewAttendanceRecord("Afaf", at),
		model.NewAttendanceRecord("  ", at),
		model.NewAttendanceRecord(" Lee ", at),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, table.Saves())

	records, err := ledger.Load()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Lee", records[1].Name)
}

func TestLedgerAppendManyNothingValid(t *testing.T) {
	ledger, table := setupLedger(t)

	added, err := ledger.AppendMany([]model.AttendanceRecord{{Name: ""}})
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.Equal(t, 0, table.Saves())
}

func TestLedgerMalformed(t *testing.T) {
	t.Run("wrong_header", func(t *testing.T) {
		table := NewMemoryTable("attendance")
		require.NoError(t, table.Save([]string{"Who", "When"}, nil))

		_, err := NewAttendanceLedger(table, fixedClock).Load()
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrMalformedTable))
		assert.True(t, apperrors.IsSystemError(err))
	})

	t.Run("bad_row", func(t *testing.T) {
		table := NewMemoryTable("attendance")
		require.NoError(t, table.Save(model.AttendanceColumns, [][]string{
			{"Sam", "2025-09-12", "18:30:05"},
			{"Lee", "yesterday", "18:30:05"},
		}))

		_, err := NewAttendanceLedger(table, fixedClock).Load()
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrMalformedTable))
		assert.Contains(t, err.Error(), "row 3")
	})

	t.Run("append_does_not_overwrite", func(t *testing.T) {
		table := NewMemoryTable("attendance")
		require.NoError(t, table.Save([]string{"Who"}, [][]string{{"Sam"}}))

		_, err := NewAttendanceLedger(table, fixedClock).Append("Lee")
		require.Error(t, err)
		assert.Equal(t, 1, table.Saves())
	})
}

// =============================================================================
// Project Tracker Tests
// =============================================================================

func TestTrackerSeedsOnFirstLoad(t *testing.T) {
	tracker, table := setupTracker(t)

	projects, err := tracker.Load()
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "Member Onboarding", projects[0].Name)
	assert.Equal(t, "Website Refresh", projects[1].Name)
	assert.Equal(t, "Hack Night", projects[2].Name)
	assert.Equal(t, 1, table.Saves(), "seed rows must be persisted")

	again, err := tracker.Load()
	require.NoError(t, err)
	assert.Len(t, again, 3)
	assert.Equal(t, 1, table.Saves(), "second load must not reseed")
}

func TestTrackerDoesNotReseedEmptyTable(t *testing.T) {
	table := NewMemoryTable("projects")
	require.NoError(t, table.Save(model.ProjectColumns, nil))

	projects, err := NewProjectTracker(table, fixedClock).Load()
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestTrackerAppend(t *testing.T) {
	tracker, _ := setupTracker(t)

	rec, err := tracker.Append(ProjectInput{
		Name:      " Robot Build ",
		Owner:     "Hardware",
		Status:    model.StatusBlocked,
		StartDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.Local),
		DueDate:   time.Date(2025, 11, 30, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)
	assert.Equal(t, "Robot Build", rec.Name)

	projects, err := tracker.Load()
	require.NoError(t, err)
	require.Len(t, projects, 4, "three seed rows plus the new one")
	last := projects[3]
	assert.Equal(t, []string{"Robot Build", "Hardware", "Blocked", "2025-09-01", "2025-11-30"}, last.Row())
}

func TestTrackerAppendDefaults(t *testing.T) {
	tracker, _ := setupTracker(t)

	rec, err := tracker.Append(ProjectInput{Name: "Game Jam", Owner: "   "})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultOwner, rec.Owner)
	assert.Equal(t, model.StatusPlanned, rec.Status)
	assert.Equal(t, "2025-09-12", model.FormatDate(rec.StartDate))
	assert.Equal(t, "2025-09-12", model.FormatDate(rec.DueDate))
}

func TestTrackerAppendKeepsInvertedDates(t *testing.T) {
	tracker, _ := setupTracker(t)

	rec, err := tracker.Append(ProjectInput{
		Name:      "Backwards",
		StartDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local),
		DueDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)
	assert.True(t, rec.DueDate.Before(rec.StartDate))
}

func TestTrackerAppendFreeFormStatus(t *testing.T) {
	tracker, _ := setupTracker(t)

	_, err := tracker.Append(ProjectInput{Name: "Odd", Status: model.Status("On Hold")})
	require.NoError(t, err)

	projects, err := tracker.Load()
	require.NoError(t, err)
	assert.Equal(t, model.Status("On Hold"), projects[len(projects)-1].Status)
}

func TestTrackerAppendBlankName(t *testing.T) {
	tracker, table := setupTracker(t)

	_, err := tracker.Append(ProjectInput{Name: "  ", Owner: "Events"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrProjectNameRequired))
	assert.Equal(t, 0, table.Saves())
}

// =============================================================================
// CSV File Tests
// =============================================================================

func TestCSVFileMissing(t *testing.T) {
	f := NewCSVFile(filepath.Join(t.TempDir(), "attendance.csv"), 0)

	_, _, err := f.Load()
	assert.True(t, IsErrTableNotFound(err))
}

func TestCSVFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	f := NewCSVFile(filepath.Join(dir, "nested", "attendance.csv"), 0)
	assert.Equal(t, "attendance.csv", f.Name())

	rows := [][]string{
		{"Lee, Sam", "2025-09-12", "18:30:05"},
		{`Quote "Q" Person`, "2025-09-12", "18:31:00"},
	}
	require.NoError(t, f.Save(model.AttendanceColumns, rows))

	header, got, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, model.AttendanceColumns, header)
	assert.Equal(t, rows, got)

	entries, err := os.ReadDir(filepath.Dir(f.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	assert.Equal(t, "attendance.csv", entries[0].Name())
}

func TestCSVFileHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.csv")
	writeFile(t, path, "Name,Date,Time\n")

	header, rows, err := NewCSVFile(path, 0).Load()
	require.NoError(t, err)
	assert.Equal(t, model.AttendanceColumns, header)
	assert.Empty(t, rows)
}

func TestCSVFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.csv")
	writeFile(t, path, "")

	_, _, err := NewCSVFile(path, 0).Load()
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrMalformedTable))
}

func TestCSVFileBadQuoting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.csv")
	writeFile(t, path, "Name,Date,Time\n\"Sam,2025-09-12,18:30:05\n")

	_, _, err := NewCSVFile(path, 0).Load()
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrMalformedTable))
}

func TestCSVFileWithLedger(t *testing.T) {
	dir := t.TempDir()
	ledger := NewAttendanceLedger(NewCSVFile(filepath.Join(dir, "attendance.csv"), 0), fixedClock)

	_, err := ledger.Append("Sam")
	require.NoError(t, err)
	_, err = ledger.Append("Afaf")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "attendance.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Name,Date,Time\nSam,2025-09-12,18:30:05\nAfaf,2025-09-12,18:30:05\n", string(data))
}

func TestCSVFileWithTracker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.csv")
	tracker := NewProjectTracker(NewCSVFile(path, 0), fixedClock)

	_, err := tracker.Load()
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Project,Owner,Status,Start Date,Due Date\n")
	assert.Contains(t, string(data), "Hack Night,Events,Completed,2025-07-10,2025-07-25\n")
}

func TestCSVFileTimestampDates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.csv")
	writeFile(t, path, "Project,Owner,Status,Start Date,Due Date\n"+
		"Old,Events,Completed,2025-07-10 00:00:00,2025-07-25 00:00:00\n")

	projects, err := NewProjectTracker(NewCSVFile(path, 0), fixedClock).Load()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "2025-07-25", model.FormatDate(projects[0].DueDate))
}

// =============================================================================
// Safety Tests
// =============================================================================

func TestDiskSpaceInfo(t *testing.T) {
	t.Run("free_percent_zero_total", func(t *testing.T) {
		info := &DiskSpaceInfo{TotalBytes: 0, FreeBytes: 100}
		assert.Equal(t, 0.0, info.FreePercent())
	})

	t.Run("free_percent_calculation", func(t *testing.T) {
		info := &DiskSpaceInfo{TotalBytes: 1000, FreeBytes: 250}
		assert.Equal(t, 25.0, info.FreePercent())
	})
}

func TestGetDiskSpace(t *testing.T) {
	t.Run("current_directory", func(t *testing.T) {
		info, err := GetDiskSpace(".")
		require.NoError(t, err)
		assert.Greater(t, info.TotalBytes, uint64(0))
	})

	t.Run("nonexistent_uses_parent", func(t *testing.T) {
		info, err := GetDiskSpace(filepath.Join(t.TempDir(), "missing", "dir"))
		require.NoError(t, err)
		assert.NotNil(t, info)
	})
}

func TestCheckDiskSpace(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		assert.NoError(t, CheckDiskSpace(".", 0))
	})

	t.Run("impossible_requirement", func(t *testing.T) {
		err := CheckDiskSpace(t.TempDir(), ^uint64(0))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrDiskFull))
	})
}

func TestCSVFileSaveRefusedWhenFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.csv")
	f := NewCSVFile(path, ^uint64(0))

	err := f.Save(model.AttendanceColumns, nil)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrDiskFull))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestIsDiskFullError(t *testing.T) {
	assert.False(t, isDiskFullError(nil))
	assert.False(t, isDiskFullError(fmt.Errorf("some error")))
}
