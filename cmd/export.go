package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/clubportal/internal/errors"
	"github.com/manav03panchal/clubportal/internal/export"
	"github.com/manav03panchal/clubportal/internal/logging"
)

// Export tables.
const (
	tableAttendance = "attendance"
	tableProjects   = "projects"
)

// Export command flags.
var (
	exportFlagTable  string
	exportFlagFormat string
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"ex", "dump"},
	Short:   "Export the attendance ledger or project tracker",
	Long: `Export a table as CSV, JSON or an Excel workbook.

Without --output the export is written to stdout. When --output ends in
.csv, .json or .xlsx and --format is not given, the format follows the
file extension. Spreadsheets are never written to a terminal.

Examples:
  clubportal export
  clubportal export --table projects --format json
  clubportal export -t attendance -o attendance.xlsx`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagTable, "table", "t", tableAttendance, "Table to export: attendance, projects")
	exportCmd.Flags().StringVarP(&exportFlagFormat, "format", "F", string(export.FormatCSV), "Export format: csv, json, xlsx")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (stdout if omitted)")

	exportCmd.RegisterFlagCompletionFunc("format", completeExportFormats)
	exportCmd.RegisterFlagCompletionFunc("table", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{tableAttendance, tableProjects}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := exportFormat(cmd)
	if err != nil {
		return err
	}

	sheet, err := loadSheet(exportFlagTable)
	if err != nil {
		return err
	}

	if exportFlagOutput == "" {
		out := cmd.OutOrStdout()
		if format == export.FormatXLSX && writesToTerminal(out) {
			return errors.NewUserError("refusing to write a spreadsheet to the terminal",
				"Pass --output FILE.xlsx or redirect stdout.")
		}
		return export.Write(out, format, sheet, ctx.Now())
	}

	f, err := os.Create(exportFlagOutput)
	if err != nil {
		return errors.Wrapf(err, "create %s", exportFlagOutput)
	}
	defer f.Close()

	if err := export.Write(f, format, sheet, ctx.Now()); err != nil {
		return errors.Wrapf(err, "write %s", exportFlagOutput)
	}

	logging.InfoContext(ctx.Request, "table exported",
		logging.KeyTable, exportFlagTable,
		logging.KeyPath, exportFlagOutput,
		logging.KeyCount, len(sheet.Rows))

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintExported(exportFlagTable, string(format), exportFlagOutput, len(sheet.Rows))
	}
	ctx.CLIFormatter().PrintExported(exportFlagTable, string(format), exportFlagOutput, len(sheet.Rows))
	return nil
}

// exportFormat resolves --format, falling back to the output file extension.
func exportFormat(cmd *cobra.Command) (export.Format, error) {
	value := exportFlagFormat
	if !cmd.Flags().Changed("format") && exportFlagOutput != "" {
		if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(exportFlagOutput)), "."); ext != "" {
			value = ext
		}
	}

	return export.ParseFormat(value)
}

// loadSheet loads the named table ready for export.
func loadSheet(table string) (export.Sheet, error) {
	switch strings.ToLower(table) {
	case tableAttendance:
		records, err := ctx.Ledger.Load()
		if err != nil {
			return export.Sheet{}, err
		}
		return export.AttendanceSheet(records), nil
	case tableProjects:
		projects, err := ctx.Tracker.Load()
		if err != nil {
			return export.Sheet{}, err
		}
		return export.ProjectSheet(projects), nil
	}
	return export.Sheet{}, errors.NewUserErrorWithField("table", table,
		"unknown table",
		"Use --table attendance or --table projects")
}

// writesToTerminal reports whether w is an interactive terminal.
func writesToTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
