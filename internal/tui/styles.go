// Package tui provides the terminal dashboard for the club portal.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/clubportal/internal/model"
)

// Color palette for the TUI dashboard.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorWarning   = lipgloss.Color("#F59E0B") // Yellow
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorActive    = lipgloss.Color("#3B82F6") // Blue
	ColorBorder    = lipgloss.Color("#4B5563") // Dark gray
)

// StatusColors maps each known status to its chart color.
var StatusColors = map[model.Status]lipgloss.Color{
	model.StatusPlanned:    ColorMuted,
	model.StatusInProgress: ColorActive,
	model.StatusBlocked:    ColorError,
	model.StatusCompleted:  ColorSuccess,
}

// Base styles for the TUI.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleSubtitle is used for secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleMember = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	StyleProject = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleNumber is used for counts in the sidebar.
	StyleNumber = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorActive)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleTab and StyleActiveTab render the page switcher.
	StyleTab = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StyleActiveTab = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Underline(true).
			Padding(0, 1)

	// StyleInput is the name entry prompt.
	StyleInput = lipgloss.NewStyle().
			Foreground(ColorActive)
)

// StyleMuted is used for muted text.
var StyleMuted = StyleSubtitle

// Box styles for the dashboard sections.
var (
	StyleSidebarBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	StyleSectionBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)

	// StyleFocusedBox marks the section that receives typed input.
	StyleFocusedBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSuccess).
			Padding(1, 2).
			MarginBottom(1)
)

// ProgressBar creates a progress bar string.
func ProgressBar(percentage float64, width int) string {
	return Bar(percentage, width, ColorSuccess)
}

// Bar renders a bar filled to percentage in the given color.
func Bar(percentage float64, width int, color lipgloss.Color) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}
	if width < 1 {
		width = 1
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	filledStyle := lipgloss.NewStyle().Foreground(color)
	emptyStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", empty))
}

// StatusStyle returns the style used for a status label.
func StatusStyle(s model.Status) lipgloss.Style {
	color, ok := StatusColors[s]
	if !ok {
		color = ColorWarning
	}
	return lipgloss.NewStyle().Foreground(color)
}
