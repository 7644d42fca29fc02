package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/clubportal/internal/board"
	"github.com/manav03panchal/clubportal/internal/model"
)

// Styles for CLI output.
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorSuccess = lipgloss.Color("#10B981")

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleInfo = lipgloss.NewStyle().
			Foreground(colorInfo)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleBar = lipgloss.NewStyle().
			Foreground(colorPrimary)

	// StatusColors colors each known status in tables and charts.
	StatusColors = map[model.Status]lipgloss.Color{
		model.StatusPlanned:    colorInfo,
		model.StatusInProgress: colorWarning,
		model.StatusBlocked:    colorError,
		model.StatusCompleted:  colorSuccess,
	}
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Info prints an informational message.
func (c *CLIFormatter) Info(text string) {
	c.Println(c.render(styleInfo, "ℹ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// Status formats a status label in its color.
func (c *CLIFormatter) Status(s model.Status) string {
	color, ok := StatusColors[s]
	if !ok {
		return s.String()
	}
	return c.render(lipgloss.NewStyle().Foreground(color), s.String())
}

// PrintCheckIn confirms an attendance submission.
func (c *CLIFormatter) PrintCheckIn(rec model.AttendanceRecord) {
	c.Success(fmt.Sprintf("%s marked present at %s", rec.Name, rec.Time))
}

// PrintProjectAdded confirms a project submission.
func (c *CLIFormatter) PrintProjectAdded(p model.ProjectRecord) {
	c.Success(fmt.Sprintf("Project '%s' added", p.Name))
	c.Printf("  Owner:  %s\n", p.Owner)
	c.Printf("  Status: %s\n", c.Status(p.Status))
	c.Printf("  Start:  %s\n", model.FormatDate(p.StartDate))
	c.Printf("  Due:    %s\n", model.FormatDate(p.DueDate))
}

// PrintImported confirms a spreadsheet import.
func (c *CLIFormatter) PrintImported(source string, n int) {
	if n == 0 {
		c.Warning(fmt.Sprintf("No check-ins found in %s", source))
		return
	}
	c.Success(fmt.Sprintf("Imported %d check-ins from %s", n, source))
}

// PrintExported confirms an export written to path.
func (c *CLIFormatter) PrintExported(table, format, path string, count int) {
	c.Success(fmt.Sprintf("Exported %d %s rows as %s to %s", count, table, format, path))
}

// PrintStats prints the sidebar quick stats.
func (c *CLIFormatter) PrintStats(s board.Stats) {
	c.Title("Quick Stats")
	c.Printf("  Members:            %d\n", s.Members)
	c.Printf("  Attendance logs:    %d\n", s.AttendanceLogs)
	c.Printf("  Active projects:    %d\n", s.ActiveProjects)
	c.Printf("  Completed projects: %d\n", s.CompletedProjects)
}

// PrintAttendance prints the attendance log.
func (c *CLIFormatter) PrintAttendance(records model.AttendanceTable) {
	c.Title("Attendance Log")
	if len(records) == 0 {
		c.Muted("No attendance recorded yet.")
		return
	}
	rows := make([]TableRow, len(records))
	for i, r := range records {
		rows[i] = TableRow{Columns: r.Row()}
	}
	c.PrintTable(model.AttendanceColumns, rows)
}

// PrintMemberCounts prints check-ins per member as a bar chart.
func (c *CLIFormatter) PrintMemberCounts(counts []board.MemberCount) {
	c.Title("Check-ins by Member")
	if len(counts) == 0 {
		c.Muted("No attendance recorded yet.")
		return
	}
	bars := make([]Bar, len(counts))
	for i, mc := range counts {
		bars[i] = Bar{Label: mc.Name, Value: mc.Count}
	}
	c.PrintBarChart(bars, 30)
}

// PrintProjects prints the ongoing and completed project tables.
func (c *CLIFormatter) PrintProjects(active, completed model.ProjectTable) {
	c.Title("Ongoing Projects")
	if len(active) == 0 {
		c.Info("No ongoing projects.")
	} else {
		c.PrintTable(model.ProjectColumns, c.projectRows(active))
	}

	c.Println()
	c.Title("Completed Projects")
	if len(completed) == 0 {
		c.Muted("None yet.")
		return
	}
	c.PrintTable(model.ProjectColumns, c.projectRows(completed))
}

func (c *CLIFormatter) projectRows(projects model.ProjectTable) []TableRow {
	rows := make([]TableRow, len(projects))
	for i, p := range projects {
		cols := p.Row()
		cols[2] = c.Status(p.Status)
		rows[i] = TableRow{Columns: cols}
	}
	return rows
}

// PrintSummary prints the per-status project chart.
func (c *CLIFormatter) PrintSummary(counts []board.StatusCount) {
	c.Title("Project Status Summary")
	if len(counts) == 0 {
		c.Muted("No projects to summarize.")
		return
	}
	bars := make([]Bar, len(counts))
	for i, sc := range counts {
		bars[i] = Bar{Label: sc.Status.String(), Value: sc.Count}
	}
	c.PrintBarChart(bars, 30)
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	return strings.Repeat("█", filled) + strings.Repeat("░", empty)
}

// Bar is one labelled value in a bar chart.
type Bar struct {
	Label string
	Value int
}

// PrintBarChart prints horizontal bars scaled so the largest fills width.
func (c *CLIFormatter) PrintBarChart(bars []Bar, width int) {
	maxValue, labelWidth := 0, 0
	for _, b := range bars {
		maxValue = max(maxValue, b.Value)
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
	}
	if maxValue == 0 {
		maxValue = 1
	}

	for _, b := range bars {
		pct := float64(b.Value) / float64(maxValue) * 100
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(b.Label))
		c.Printf("  %s%s  %s %d\n", b.Label, pad, c.render(styleBar, ProgressBar(pct, width)), b.Value)
	}
}

// TableRow is one row of a CLI table.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table. Column widths are measured with
// lipgloss so styled cells line up.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(col))
			}
		}
	}

	pad := func(s string, w int) string {
		return s + strings.Repeat(" ", w-lipgloss.Width(s)) + "  "
	}

	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(pad(h, widths[i]))
	}
	c.Println(c.render(styleBold, strings.TrimRight(headerLine.String(), " ")))

	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(pad(col, widths[i]))
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}
