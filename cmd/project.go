package cmd

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/clubportal/internal/board"
	"github.com/manav03panchal/clubportal/internal/parser"
	"github.com/manav03panchal/clubportal/internal/storage"
)

// projectCmd represents the project command.
var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"projects", "proj", "pj"},
	Short:   "Show and add club projects",
	Long: `Show the project board, or add a project to the tracker.

The board splits projects into ongoing (anything not Completed, soonest due
first) and completed (most recently due first). On first use the tracker is
seeded with a few sample projects.

Examples:
  clubportal project
  clubportal project add "Website Refresh" --owner "Team Web" --status "in progress"
  clubportal project add "Hack Night" --start today --due +2w`,
	Args: cobra.NoArgs,
	RunE: runProjectList,
}

// Project subcommand flags.
var (
	projectAddFlagOwner  string
	projectAddFlagStatus string
	projectAddFlagStart  string
	projectAddFlagDue    string
)

// projectListCmd shows the project board.
var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show ongoing and completed projects",
	Args:    cobra.NoArgs,
	RunE:    runProjectList,
}

// projectAddCmd adds a project.
var projectAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a project",
	Long: `Add a project to the tracker.

A blank owner is stored as "Unassigned", a missing status as Planned, and
missing dates as today. Dates accept YYYY-MM-DD, today/tomorrow, offsets
like +3d or +2w, and phrases like "next friday".

Examples:
  clubportal project add "Website Refresh"
  clubportal project add "Demo Day" --owner Grace --status blocked --due 2025-10-05`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProjectAdd,
}

func init() {
	projectAddCmd.Flags().StringVarP(&projectAddFlagOwner, "owner", "o", "", "Project owner (default \"Unassigned\")")
	projectAddCmd.Flags().StringVarP(&projectAddFlagStatus, "status", "s", "", "Planned, In Progress, Blocked or Completed (default Planned)")
	projectAddCmd.Flags().StringVar(&projectAddFlagStart, "start", "", "Start date (default today)")
	projectAddCmd.Flags().StringVar(&projectAddFlagDue, "due", "", "Due date (default today)")

	projectAddCmd.RegisterFlagCompletionFunc("status", completeStatuses)

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectAddCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectList(cmd *cobra.Command, args []string) error {
	projects, err := ctx.Tracker.Load()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintProjects(projects)
	}

	active, completed := board.Partition(projects)
	ctx.CLIFormatter().PrintProjects(active, completed)
	return nil
}

func runProjectAdd(cmd *cobra.Command, args []string) error {
	in, err := projectInputFromFlags(joinArgs(args))
	if err != nil {
		return err
	}

	rec, err := ctx.Tracker.Append(in)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintProjectAdded(rec)
	}

	ctx.CLIFormatter().PrintProjectAdded(rec)
	return nil
}

// projectInputFromFlags parses the add flags. Date errors are reported as
// user errors so they print with examples.
func projectInputFromFlags(name string) (storage.ProjectInput, error) {
	status, err := parser.ParseStatus(projectAddFlagStatus)
	if err != nil {
		return storage.ProjectInput{}, err
	}

	now := ctx.Now()
	start, err := parser.ParseDate("start date", projectAddFlagStart, now)
	if err != nil {
		return storage.ProjectInput{}, asUserError(err)
	}
	due, err := parser.ParseDate("due date", projectAddFlagDue, now)
	if err != nil {
		return storage.ProjectInput{}, asUserError(err)
	}

	return storage.ProjectInput{
		Name:      name,
		Owner:     projectAddFlagOwner,
		Status:    status,
		StartDate: start,
		DueDate:   due,
	}, nil
}

func asUserError(err error) error {
	var tpe *parser.TimeParseError
	if stderrors.As(err, &tpe) {
		return tpe.ToUserError()
	}
	return err
}
