package cmd

import (
	"github.com/spf13/cobra"
)

// attendCmd represents the attend command.
var attendCmd = &cobra.Command{
	Use:     "attend NAME",
	Aliases: []string{"checkin", "present", "a"},
	Short:   "Mark a member present",
	Long: `Record a check-in for NAME at the current date and time.

Surrounding whitespace is trimmed. A blank name is rejected and nothing is
written.

Examples:
  clubportal attend "Ada Lovelace"
  clubportal attend Grace Hopper`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAttend,
}

func init() {
	rootCmd.AddCommand(attendCmd)
}

func runAttend(cmd *cobra.Command, args []string) error {
	rec, err := ctx.Ledger.Append(joinArgs(args))
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintCheckIn(rec)
	}

	ctx.CLIFormatter().PrintCheckIn(rec)
	return nil
}
