package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/clubportal/internal/board"
	"github.com/manav03panchal/clubportal/internal/errors"
	"github.com/manav03panchal/clubportal/internal/logging"
	"github.com/manav03panchal/clubportal/internal/model"
	"github.com/manav03panchal/clubportal/internal/storage"
)

// Page selects what the main pane shows.
type Page int

const (
	// PageMembers is the check-in form and attendance log.
	PageMembers Page = iota
	// PageProjects is the project overview.
	PageProjects
)

// String returns the tab label.
func (p Page) String() string {
	if p == PageProjects {
		return "Project Overview"
	}
	return "User Dashboard"
}

const sidebarWidth = 28

// tickMsg is sent when the refresh timer fires.
type tickMsg time.Time

// refreshMsg is sent when data needs to be reloaded.
type refreshMsg struct{}

// errMsg is sent when an error occurs.
type errMsg struct {
	err error
}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	attendance model.AttendanceTable
	projects   model.ProjectTable
	stats      board.Stats

	ledger  *storage.AttendanceLedger
	tracker *storage.ProjectTracker
	now     model.Clock

	// UI state
	page       Page
	typing     bool
	input      []rune
	width      int
	height     int
	err        error
	message    string
	messageErr bool
	messageExp time.Time

	refreshInterval time.Duration
	maxLogRows      int
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Ledger          *storage.AttendanceLedger
	Tracker         *storage.ProjectTracker
	Clock           model.Clock
	RefreshInterval time.Duration
	MaxLogRows      int
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = 5 * time.Second
	}
	if config.MaxLogRows == 0 {
		config.MaxLogRows = 8
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}

	return &DashboardModel{
		ledger:          config.Ledger,
		tracker:         config.Tracker,
		now:             config.Clock,
		refreshInterval: config.RefreshInterval,
		maxLogRows:      config.MaxLogRows,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.messageExp.IsZero() && m.now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		// Pick up rows written by the CLI or the HTTP server.
		m.loadData()
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.typing {
		return m.handleInput(msg)
	}

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "tab", "shift+tab":
		if m.page == PageMembers {
			m.page = PageProjects
		} else {
			m.page = PageMembers
		}
		return m, nil

	case "1":
		m.page = PageMembers
		return m, nil

	case "2":
		m.page = PageProjects
		return m, nil

	case "i", "enter":
		if m.page == PageMembers {
			m.typing = true
		}
		return m, nil

	case "r":
		m.loadData()
		m.setMessage("Refreshed", time.Second)
		return m, nil
	}

	return m, nil
}

// handleInput edits the name field while it has focus.
func (m *DashboardModel) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.checkIn()
	case tea.KeyEsc:
		m.typing = false
		m.input = nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	}
	return m, nil
}

// checkIn submits the typed name to the ledger. The field stays focused so
// several members can be entered in a row.
func (m *DashboardModel) checkIn() {
	rec, err := m.ledger.Append(string(m.input))
	if err != nil {
		logging.DebugLog("dashboard check-in rejected", logging.KeyError, err)
		m.setError(err, 3*time.Second)
		return
	}

	m.input = nil
	m.setMessage(fmt.Sprintf("%s marked present at %s", rec.Name, rec.Time), 3*time.Second)
	m.loadData()
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.message != "" {
		style := StyleSuccess
		if m.messageErr {
			style = StyleError
		}
		sections = append(sections, style.Render(m.message))
	}

	sidebar := NewSidebarComponent(m.stats, m.now(), sidebarWidth).View()

	var body string
	if m.width < sidebarWidth*3 {
		body = lipgloss.JoinVertical(lipgloss.Left, sidebar, m.renderPage(m.width))
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", m.renderPage(m.width-sidebarWidth-1))
	}
	sections = append(sections, body)

	sections = append(sections, HelpBar(m.page, m.typing))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title and page tabs.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Club Portal")

	tabs := make([]string, 0, 2)
	for i, p := range []Page{PageMembers, PageProjects} {
		label := fmt.Sprintf("%d %s", i+1, p)
		if p == m.page {
			tabs = append(tabs, StyleActiveTab.Render(label))
		} else {
			tabs = append(tabs, StyleTab.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", lipgloss.JoinHorizontal(lipgloss.Top, tabs...)) + "\n"
}

// renderPage renders the main pane at the given width.
func (m *DashboardModel) renderPage(width int) string {
	if m.page == PageProjects {
		active, completed := board.Partition(m.projects)
		return lipgloss.JoinVertical(lipgloss.Left,
			(&ProjectsComponent{Title: "Ongoing Projects", Projects: active, Empty: "No ongoing projects.", Width: width}).View(),
			(&ProjectsComponent{Title: "Completed Projects", Projects: completed, Empty: "No completed projects yet.", Width: width}).View(),
			NewStatusChartComponent(m.projects, width).View(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		(&CheckInComponent{Value: string(m.input), Focused: m.typing, Width: width}).View(),
		NewAttendanceComponent(m.attendance, width, m.maxLogRows).View(),
		NewMembersComponent(m.attendance, width, m.maxLogRows).View(),
	)
}

// loadData reloads both tables and recomputes the stats.
func (m *DashboardModel) loadData() {
	attendance, err := m.ledger.Load()
	if err != nil {
		m.err = err
		return
	}
	projects, err := m.tracker.Load()
	if err != nil {
		m.err = err
		return
	}

	m.attendance = attendance
	m.projects = projects
	m.stats = board.QuickStats(attendance, projects)
	m.err = nil
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageErr = false
	m.messageExp = m.now().Add(duration)
}

// setError shows err as a temporary message. User errors show their
// suggestion, which reads as a prompt ("Please enter your name.").
func (m *DashboardModel) setError(err error, duration time.Duration) {
	text := err.Error()
	if ue, ok := errors.AsUserError(err); ok && ue.Suggestion != "" {
		text = ue.Suggestion
	}
	m.message = text
	m.messageErr = true
	m.messageExp = m.now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd returns a command that sends a refresh message.
func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	p := tea.NewProgram(NewDashboardModel(config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
