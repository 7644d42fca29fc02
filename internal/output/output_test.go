package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/manav03panchal/clubportal/internal/board"
	"github.com/manav03panchal/clubportal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCLI() (*CLIFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf, Format: FormatCLI, ColorMode: ColorNever}
	return NewCLIFormatter(f), &buf
}

func newJSON() (*JSONFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf, Format: FormatJSON, ColorMode: ColorNever}
	return NewJSONFormatter(f), &buf
}

var checkInAt = time.Date(2025, 9, 12, 18, 30, 5, 0, time.Local)

// =============================================================================
// Formatter Tests
// =============================================================================

func TestNewFormatter(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatPlain, ParseFormat("plain"))
	assert.Equal(t, FormatCLI, ParseFormat("cli"))
	assert.Equal(t, FormatCLI, ParseFormat("yaml"))
}

func TestParseColorMode(t *testing.T) {
	assert.Equal(t, ColorAlways, ParseColorMode("always"))
	assert.Equal(t, ColorNever, ParseColorMode("never"))
	assert.Equal(t, ColorAuto, ParseColorMode(""))
}

func TestFormatterIsColorEnabled(t *testing.T) {
	t.Run("color_always", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways}
		assert.True(t, f.IsColorEnabled())
	})

	t.Run("color_never", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorNever}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("plain_overrides_always", func(t *testing.T) {
		f := &Formatter{Format: FormatPlain, ColorMode: ColorAlways}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("color_auto_non_terminal", func(t *testing.T) {
		var buf bytes.Buffer
		f := &Formatter{Writer: &buf, ColorMode: ColorAuto}
		assert.False(t, f.IsColorEnabled())
	})
}

func TestFormatterPrint(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	f.Print("hello")
	f.Println(" world")
	f.Printf("%d", 42)
	assert.Equal(t, "hello world\n42", buf.String())
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	require.NoError(t, f.JSON(map[string]string{"key": "value"}))
	assert.Contains(t, buf.String(), `"key": "value"`)
}

// =============================================================================
// CLI Formatter Tests
// =============================================================================

func TestCLIFormatterMessages(t *testing.T) {
	c, buf := newCLI()

	c.Title("Title")
	c.Success("done")
	c.Info("note")
	c.Warning("careful")
	c.Error("broken")
	c.Muted("quiet")

	out := buf.String()
	assert.Contains(t, out, "Title\n")
	assert.Contains(t, out, "✓ done")
	assert.Contains(t, out, "ℹ note")
	assert.Contains(t, out, "⚠ careful")
	assert.Contains(t, out, "✗ broken")
	assert.Contains(t, out, "quiet")
}

func TestCLIFormatterStatus(t *testing.T) {
	c, _ := newCLI()
	assert.Equal(t, "In Progress", c.Status(model.StatusInProgress))
	assert.Equal(t, "On Hold", c.Status(model.Status("On Hold")))
}

func TestCLIFormatterPrintCheckIn(t *testing.T) {
	c, buf := newCLI()
	c.PrintCheckIn(model.NewAttendanceRecord("Sam", checkInAt))
	assert.Equal(t, "✓ Sam marked present at 18:30:05\n", buf.String())
}

func TestCLIFormatterPrintProjectAdded(t *testing.T) {
	c, buf := newCLI()
	c.PrintProjectAdded(model.SeedProjects()[0])

	out := buf.String()
	assert.Contains(t, out, "Project 'Member Onboarding' added")
	assert.Contains(t, out, "Owner:  Afaf")
	assert.Contains(t, out, "Status: In Progress")
	assert.Contains(t, out, "Due:    2025-09-01")
}

func TestCLIFormatterPrintStats(t *testing.T) {
	c, buf := newCLI()
	c.PrintStats(board.Stats{Members: 3, AttendanceLogs: 7, ActiveProjects: 2, CompletedProjects: 1})

	out := buf.String()
	assert.Contains(t, out, "Quick Stats")
	assert.Contains(t, out, "Members:            3")
	assert.Contains(t, out, "Attendance logs:    7")
}

func TestCLIFormatterPrintAttendance(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		c, buf := newCLI()
		c.PrintAttendance(nil)
		assert.Contains(t, buf.String(), "No attendance recorded yet.")
	})

	t.Run("rows", func(t *testing.T) {
		c, buf := newCLI()
		c.PrintAttendance(model.AttendanceTable{model.NewAttendanceRecord("Sam", checkInAt)})
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Name  Date        Time", lines[1])
		assert.Equal(t, "Sam   2025-09-12  18:30:05", lines[3])
	})
}

func TestCLIFormatterPrintProjects(t *testing.T) {
	t.Run("no_ongoing", func(t *testing.T) {
		c, buf := newCLI()
		active, completed := board.Partition(model.SeedProjects()[2:])
		c.PrintProjects(active, completed)

		out := buf.String()
		assert.Contains(t, out, "ℹ No ongoing projects.")
		assert.Contains(t, out, "Hack Night")
	})

	t.Run("seed", func(t *testing.T) {
		c, buf := newCLI()
		active, completed := board.Partition(model.SeedProjects())
		c.PrintProjects(active, completed)

		out := buf.String()
		assert.Less(t, strings.Index(out, "Member Onboarding"), strings.Index(out, "Website Refresh"))
		assert.Less(t, strings.Index(out, "Website Refresh"), strings.Index(out, "Completed Projects"))
		assert.Contains(t, out, "Start Date")
	})
}

func TestCLIFormatterPrintSummary(t *testing.T) {
	c, buf := newCLI()
	c.PrintSummary(board.Summarize(model.SeedProjects()))

	out := buf.String()
	assert.Contains(t, out, "Project Status Summary")
	assert.Contains(t, out, "Planned")
	assert.NotContains(t, out, "Blocked")
}

func TestCLIFormatterPrintMemberCounts(t *testing.T) {
	c, buf := newCLI()
	c.PrintMemberCounts([]board.MemberCount{{Name: "Sam", Count: 2}, {Name: "Lee", Count: 1}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], strings.Repeat("█", 30))
	assert.Contains(t, lines[2], strings.Repeat("█", 15)+strings.Repeat("░", 15))
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		pct    float64
		filled int
	}{
		{0, 0},
		{50, 5},
		{100, 10},
		{150, 10},
		{-10, 0},
	}
	for _, tt := range tests {
		bar := ProgressBar(tt.pct, 10)
		assert.Equal(t, tt.filled, strings.Count(bar, "█"))
		assert.Equal(t, 10-tt.filled, strings.Count(bar, "░"))
	}
}

func TestCLIFormatterPrintTable(t *testing.T) {
	c, buf := newCLI()
	c.PrintTable([]string{"A", "Long Header"}, []TableRow{
		{Columns: []string{"wide value", "x"}},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "A           Long Header", lines[0])
	assert.Equal(t, "wide value  x", lines[2])
}

func TestCLIFormatterPrintTableEmpty(t *testing.T) {
	c, buf := newCLI()
	c.PrintTable([]string{"A"}, nil)
	assert.Empty(t, buf.String())
}

// =============================================================================
// JSON Formatter Tests
// =============================================================================

func TestJSONFormatterPrintCheckIn(t *testing.T) {
	j, buf := newJSON()
	require.NoError(t, j.PrintCheckIn(model.NewAttendanceRecord("Sam", checkInAt)))

	var resp CheckInResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, AttendanceOutput{Name: "Sam", Date: "2025-09-12", Time: "18:30:05"}, resp.Record)
}

func TestJSONFormatterPrintAttendance(t *testing.T) {
	t.Run("empty_is_array", func(t *testing.T) {
		j, buf := newJSON()
		require.NoError(t, j.PrintAttendance(nil, nil))
		assert.Contains(t, buf.String(), `"records": []`)
		assert.NotContains(t, buf.String(), "members")
	})

	t.Run("with_members", func(t *testing.T) {
		j, buf := newJSON()
		records := model.AttendanceTable{model.NewAttendanceRecord("Sam", checkInAt)}
		require.NoError(t, j.PrintAttendance(records, board.MemberCounts(records)))

		var resp AttendanceResponse
		require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
		assert.Equal(t, 1, resp.TotalCount)
		assert.Equal(t, []board.MemberCount{{Name: "Sam", Count: 1}}, resp.Members)
	})
}

func TestJSONFormatterPrintProjects(t *testing.T) {
	j, buf := newJSON()
	require.NoError(t, j.PrintProjects(model.SeedProjects()))

	var resp ProjectsResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Len(t, resp.Active, 2)
	require.Len(t, resp.Completed, 1)
	assert.Equal(t, ProjectOutput{
		Project:   "Member Onboarding",
		Owner:     "Afaf",
		Status:    "In Progress",
		StartDate: "2025-08-01",
		DueDate:   "2025-09-01",
	}, resp.Active[0])
}

func TestJSONFormatterPrintSummary(t *testing.T) {
	j, buf := newJSON()
	require.NoError(t, j.PrintSummary(nil))

	var resp SummaryResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Statuses)
}

func TestJSONFormatterPrintProjectAdded(t *testing.T) {
	j, buf := newJSON()
	require.NoError(t, j.PrintProjectAdded(model.SeedProjects()[1]))
	assert.Contains(t, buf.String(), `"status": "added"`)
	assert.Contains(t, buf.String(), `"owner": "Team Web"`)
}

func TestJSONFormatterPrintStats(t *testing.T) {
	j, buf := newJSON()
	require.NoError(t, j.PrintStats(board.Stats{Members: 2}))
	assert.Contains(t, buf.String(), `"members": 2`)
	assert.Contains(t, buf.String(), `"completed_projects": 0`)
}

func TestJSONFormatterPrintError(t *testing.T) {
	j, buf := newJSON()
	require.NoError(t, j.PrintError("error", "name is required", "Please enter your name."))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, ErrorResponse{Status: "error", Error: "name is required", Message: "Please enter your name."}, resp)
}
