package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/clubportal/internal/board"
)

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"status", "chart"},
	Short:   "Show project counts per status",
	Long: `Show how many projects are in each status as a bar chart.

Examples:
  clubportal summary
  clubportal summary --format json`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	projects, err := ctx.Tracker.Load()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSummary(projects)
	}

	ctx.CLIFormatter().PrintSummary(board.Summarize(projects))
	return nil
}
