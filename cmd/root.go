// Package cmd provides the CLI commands for the club portal.
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/clubportal/internal/output"
	"github.com/manav03panchal/clubportal/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat  string
	flagColor   string
	flagDebug   bool
	flagDataDir string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "clubportal",
	Short: "Attendance and project tracking for a student club",
	Long: `Club Portal records member check-ins and tracks club projects in two
CSV files, with a terminal dashboard and a small HTTP API on top.

Examples:
  clubportal attend "Ada Lovelace"
  clubportal attendance --members
  clubportal project add "Website Refresh" --owner "Team Web" --due "next friday"
  clubportal project list
  clubportal dashboard
  clubportal serve --addr :8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		opts := runtime.DefaultOptions()
		opts.Format = output.ParseFormat(flagFormat)
		opts.ColorMode = output.ParseColorMode(flagColor)
		opts.Debug = flagDebug
		opts.DataDir = flagDataDir

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}
		ctx.Formatter.Writer = cmd.OutOrStdout()
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show quick stats
		return runStats(cmd, args)
	},
}

// runStats prints the sidebar numbers.
func runStats(cmd *cobra.Command, args []string) error {
	stats, err := ctx.Stats()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStats(stats)
	}

	ctx.CLIFormatter().PrintStats(stats)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "",
		"Directory holding attendance.csv and projects.csv (\":memory:\" for a throwaway session)")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("clubportal %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// joinArgs lets multi-word names be typed without quotes.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError("error", err.Error(), runtime.GetSuggestion(err))
	} else {
		os.Stderr.WriteString("Error: " + runtime.FormatError(err, flagDebug) + "\n")
	}
	os.Exit(1)
}
