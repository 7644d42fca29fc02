package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/clubportal/internal/board"
	"github.com/manav03panchal/clubportal/internal/model"
)

// SidebarComponent displays the quick stats shown on every page.
type SidebarComponent struct {
	Stats board.Stats
	Now   time.Time
	Width int
}

// NewSidebarComponent creates a new sidebar component.
func NewSidebarComponent(stats board.Stats, now time.Time, width int) *SidebarComponent {
	return &SidebarComponent{Stats: stats, Now: now, Width: width}
}

// View renders the sidebar.
func (sc *SidebarComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Quick Stats"))
	content.WriteString("\n")

	rows := []struct {
		label string
		value int
	}{
		{"Members", sc.Stats.Members},
		{"Attendance Logs", sc.Stats.AttendanceLogs},
		{"Active Projects", sc.Stats.ActiveProjects},
		{"Completed", sc.Stats.CompletedProjects},
	}
	for i, r := range rows {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(StyleSubtitle.Render(r.label))
		content.WriteString("\n")
		content.WriteString(StyleNumber.Render(fmt.Sprintf("%d", r.value)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(StyleMuted.Render(sc.Now.Format("Mon Jan 2, 15:04")))

	return StyleSidebarBox.Width(sc.Width - 4).Render(content.String())
}

// CheckInComponent is the name entry form.
type CheckInComponent struct {
	Value   string
	Focused bool
	Width   int
}

// View renders the form.
func (cc *CheckInComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Mark Attendance"))
	content.WriteString("\n")

	prompt := StyleSubtitle.Render("Name: ")
	value := cc.Value
	if cc.Focused {
		value += "█"
	}
	if cc.Value == "" && !cc.Focused {
		value = StyleMuted.Render("press i to type a name")
	}
	content.WriteString(prompt + StyleInput.Render(value))

	box := StyleSectionBox
	if cc.Focused {
		box = StyleFocusedBox
	}
	return box.Width(cc.Width - 4).Render(content.String())
}

// AttendanceComponent displays the newest check-ins.
type AttendanceComponent struct {
	Records model.AttendanceTable
	Total   int
	Width   int
}

// NewAttendanceComponent creates a log showing at most limit rows, newest first.
func NewAttendanceComponent(records model.AttendanceTable, width, limit int) *AttendanceComponent {
	return &AttendanceComponent{
		Records: board.Recent(records, limit),
		Total:   len(records),
		Width:   width,
	}
}

// View renders the attendance log.
func (ac *AttendanceComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render(fmt.Sprintf("Attendance Log (%d)", ac.Total)))
	content.WriteString("\n")

	if len(ac.Records) == 0 {
		content.WriteString(StyleMuted.Render("No attendance records yet."))
	} else {
		rows := make([][]string, 0, len(ac.Records))
		for _, r := range ac.Records {
			rows = append(rows, []string{StyleMember.Render(r.Name), r.DateString(), r.Time})
		}
		content.WriteString(renderTable([]string{"Name", "Date", "Time"}, rows))
	}

	return StyleSectionBox.Width(ac.Width - 4).Render(content.String())
}

// MembersComponent displays check-ins per member.
type MembersComponent struct {
	Counts []board.MemberCount
	Width  int
	Limit  int
}

// NewMembersComponent creates a new member counts component.
func NewMembersComponent(records model.AttendanceTable, width, limit int) *MembersComponent {
	counts := board.MemberCounts(records)
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return &MembersComponent{Counts: counts, Width: width, Limit: limit}
}

// View renders member counts as a bar chart.
func (mc *MembersComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Check-ins per Member"))
	content.WriteString("\n")

	if len(mc.Counts) == 0 {
		content.WriteString(StyleMuted.Render("No attendance records yet."))
		return StyleSectionBox.Width(mc.Width - 4).Render(content.String())
	}

	labelWidth := 0
	for _, c := range mc.Counts {
		labelWidth = max(labelWidth, lipgloss.Width(c.Name))
	}
	// Counts are sorted, the first is the largest.
	top := mc.Counts[0].Count
	barWidth := barWidthFor(mc.Width, labelWidth)

	for i, c := range mc.Counts {
		if i > 0 {
			content.WriteString("\n")
		}
		pct := float64(c.Count) / float64(top) * 100
		content.WriteString(fmt.Sprintf("%-*s  %s %d",
			labelWidth, c.Name, Bar(pct, barWidth, ColorSecondary), c.Count))
	}

	return StyleSectionBox.Width(mc.Width - 4).Render(content.String())
}

// ProjectsComponent displays one partition of the project tracker.
type ProjectsComponent struct {
	Title    string
	Projects model.ProjectTable
	Empty    string
	Width    int
}

// View renders the project table.
func (pc *ProjectsComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render(fmt.Sprintf("%s (%d)", pc.Title, len(pc.Projects))))
	content.WriteString("\n")

	if len(pc.Projects) == 0 {
		content.WriteString(StyleMuted.Render(pc.Empty))
	} else {
		rows := make([][]string, 0, len(pc.Projects))
		for _, p := range pc.Projects {
			rows = append(rows, []string{
				StyleProject.Render(p.Name),
				p.Owner,
				StatusStyle(p.Status).Render(string(p.Status)),
				model.FormatDate(p.StartDate),
				model.FormatDate(p.DueDate),
			})
		}
		content.WriteString(renderTable([]string{"Project", "Owner", "Status", "Start", "Due"}, rows))
	}

	return StyleSectionBox.Width(pc.Width - 4).Render(content.String())
}

// StatusChartComponent displays the per-status project counts.
type StatusChartComponent struct {
	Counts []board.StatusCount
	Width  int
}

// NewStatusChartComponent creates a chart over all projects.
func NewStatusChartComponent(projects model.ProjectTable, width int) *StatusChartComponent {
	return &StatusChartComponent{Counts: board.Summarize(projects), Width: width}
}

// View renders the chart.
func (sc *StatusChartComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Project Status"))
	content.WriteString("\n")

	total := 0
	labelWidth := 0
	for _, c := range sc.Counts {
		total += c.Count
		labelWidth = max(labelWidth, lipgloss.Width(string(c.Status)))
	}
	if total == 0 {
		content.WriteString(StyleMuted.Render("No projects yet."))
		return StyleSectionBox.Width(sc.Width - 4).Render(content.String())
	}

	barWidth := barWidthFor(sc.Width, labelWidth)
	for i, c := range sc.Counts {
		if i > 0 {
			content.WriteString("\n")
		}
		color, ok := StatusColors[c.Status]
		if !ok {
			color = ColorWarning
		}
		pct := float64(c.Count) / float64(total) * 100
		content.WriteString(fmt.Sprintf("%-*s  %s %d",
			labelWidth, string(c.Status), Bar(pct, barWidth, color), c.Count))
	}

	return StyleSectionBox.Width(sc.Width - 4).Render(content.String())
}

// barWidthFor leaves room for the box padding, the label and the count.
func barWidthFor(width, labelWidth int) int {
	w := width - labelWidth - 16
	if w < 10 {
		w = 10
	}
	if w > 40 {
		w = 40
	}
	return w
}

// renderTable lays out styled cells in left-aligned columns.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	line := func(cells []string, style *lipgloss.Style) string {
		var sb strings.Builder
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			if style != nil {
				cell = style.Render(cell)
			}
			sb.WriteString(cell)
			if i < len(cells)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
			}
		}
		return sb.String()
	}

	var out []string
	out = append(out, line(headers, &StyleSubtitle))
	for _, row := range rows {
		out = append(out, line(row, nil))
	}
	return strings.Join(out, "\n")
}

// HelpBar renders the help bar for a page.
func HelpBar(page Page, typing bool) string {
	type binding struct {
		key  string
		desc string
	}

	var keys []binding
	switch {
	case typing:
		keys = []binding{{"enter", "check in"}, {"esc", "cancel"}}
	case page == PageMembers:
		keys = []binding{{"i", "type name"}, {"tab", "projects"}, {"r", "refresh"}, {"q", "quit"}}
	default:
		keys = []binding{{"tab", "members"}, {"r", "refresh"}, {"q", "quit"}}
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, StyleHelpKey.Render(k.key)+" "+StyleHelpDesc.Render(k.desc))
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
