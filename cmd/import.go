package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/clubportal/internal/errors"
	"github.com/manav03panchal/clubportal/internal/export"
	"github.com/manav03panchal/clubportal/internal/logging"
)

// Import command flags.
var (
	importFlagDryRun bool
)

// importCmd groups the import subcommands.
var importCmd = &cobra.Command{
	Use:     "import",
	Aliases: []string{"imp"},
	Short:   "Import data from a spreadsheet",
}

// importAttendanceCmd imports check-ins from an Excel workbook.
var importAttendanceCmd = &cobra.Command{
	Use:   "attendance FILE.xlsx",
	Short: "Append check-ins from an Excel workbook",
	Long: `Append check-ins read from the first sheet of an Excel workbook.

The sheet is expected to have a header row followed by Name, Date and Time
columns. Rows with a blank name are skipped. A missing date or time is
filled in with the current date or time.

Examples:
  clubportal import attendance signin-sheet.xlsx
  clubportal import attendance signin-sheet.xlsx --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runImportAttendance,
}

func init() {
	importAttendanceCmd.Flags().BoolVar(&importFlagDryRun, "dry-run", false, "Preview import without writing")

	importCmd.AddCommand(importAttendanceCmd)
	rootCmd.AddCommand(importCmd)
}

func runImportAttendance(cmd *cobra.Command, args []string) error {
	filename := args[0]

	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "open %s", filename)
	}
	defer f.Close()

	records, err := export.ReadAttendanceXLSX(f, ctx.Now())
	if err != nil {
		return errors.NewUserErrorWithField("file", filename, err.Error(),
			"Check that the file is an .xlsx workbook with Name, Date and Time columns.")
	}

	n := len(records)
	if !importFlagDryRun {
		n, err = ctx.Ledger.AppendMany(records)
		if err != nil {
			return err
		}
		logging.InfoContext(ctx.Request, "attendance imported",
			logging.KeyPath, filename,
			logging.KeyCount, n)
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintImported(filename, n)
	}

	cli := ctx.CLIFormatter()
	if importFlagDryRun {
		cli.Info("Dry run, nothing was written.")
		if len(records) > 0 {
			cli.PrintAttendance(records)
		}
	}
	cli.PrintImported(filename, n)
	return nil
}
