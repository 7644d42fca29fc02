package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/clubportal/internal/errors"
	"github.com/manav03panchal/clubportal/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d", "tui"},
	Short:   "Open the interactive TUI dashboard",
	Long: `Open an interactive terminal dashboard.

The dashboard has two pages and a quick stats sidebar:
  1 User Dashboard    mark attendance, attendance log, check-ins per member
  2 Project Overview  ongoing and completed projects, status chart

Keyboard Controls:
  tab / 1 / 2 - Switch page
  i           - Type a name to check in (enter submits, esc cancels)
  r           - Refresh data
  q           - Quit dashboard

Examples:
  clubportal dashboard
  clubportal tui`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return errors.NewUserError("the dashboard needs an interactive terminal",
			"Run it from a terminal, or use 'clubportal attendance' and 'clubportal project' instead.")
	}

	config := tui.DashboardConfig{
		Ledger:          ctx.Ledger,
		Tracker:         ctx.Tracker,
		Clock:           ctx.Clock,
		RefreshInterval: ctx.Config.Dashboard.RefreshInterval,
		MaxLogRows:      ctx.Config.Dashboard.MaxLogRows,
	}

	return tui.Run(config)
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
