package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/clubportal/internal/board"
	"github.com/manav03panchal/clubportal/internal/model"
)

// Attendance command flags.
var (
	attendanceFlagMembers bool
	attendanceFlagLimit   int
)

// attendanceCmd represents the attendance command.
var attendanceCmd = &cobra.Command{
	Use:     "attendance",
	Aliases: []string{"log", "att"},
	Short:   "Show the attendance log",
	Long: `Show every recorded check-in in the order it was written.

With --limit only the newest N check-ins are shown, newest first.
With --members the number of check-ins per member is shown as well.

Examples:
  clubportal attendance
  clubportal attendance --limit 10
  clubportal log --members`,
	Args: cobra.NoArgs,
	RunE: runAttendance,
}

func init() {
	attendanceCmd.Flags().BoolVarP(&attendanceFlagMembers, "members", "m", false, "Show check-ins per member")
	attendanceCmd.Flags().IntVarP(&attendanceFlagLimit, "limit", "n", 0, "Show only the newest N check-ins")

	rootCmd.AddCommand(attendanceCmd)
}

func runAttendance(cmd *cobra.Command, args []string) error {
	records, err := ctx.Ledger.Load()
	if err != nil {
		return err
	}

	shown := records
	if attendanceFlagLimit > 0 {
		shown = board.Recent(records, attendanceFlagLimit)
	}

	var members []board.MemberCount
	if attendanceFlagMembers {
		members = board.MemberCounts(records)
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintAttendance(shown, members)
	}

	printAttendance(shown, members)
	return nil
}

func printAttendance(records model.AttendanceTable, members []board.MemberCount) {
	cli := ctx.CLIFormatter()
	cli.PrintAttendance(records)
	if attendanceFlagMembers {
		cli.Println()
		cli.PrintMemberCounts(members)
	}
}
