package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/clubportal/internal/runtime"
	"github.com/manav03panchal/clubportal/internal/server"
)

// Serve command flags.
var (
	serveFlagAddr string
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server", "api"},
	Short:   "Serve the portal over HTTP",
	Long: `Serve the attendance ledger and project tracker as a JSON API.

Routes:
  GET  /api/ping
  GET  /api/health                503 when a table cannot be read
  GET  /api/metrics
  GET  /api/stats
  GET  /api/attendance            POST /api/attendance {"name": "..."}
  GET  /api/attendance/members
  GET  /api/projects              POST /api/projects {"project": "...", ...}
  GET  /api/projects/summary
  POST /api/import/attendance     multipart form, field "file" (.xlsx)
  GET  /api/export/:table?format=csv|json|xlsx

Requests are handled one at a time so concurrent submissions cannot lose
each other's rows. Stop the server with Ctrl+C.

Examples:
  clubportal serve
  clubportal serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlagAddr, "addr", "", "Listen address (default from CLUBPORTAL_ADDR or :8080)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := ctx.Config.Server
	if serveFlagAddr != "" {
		cfg.Addr = serveFlagAddr
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := server.NewAPIHandler(ctx.Ledger, ctx.Tracker, ctx.Clock)
	h.Health.SetVersion(Version)
	srv := server.New(cfg, h)

	if !ctx.IsJSON() {
		cli := ctx.CLIFormatter()
		cli.Info("Serving on " + srv.Addr())
		if ctx.Config.Storage.DataDir == runtime.InMemoryDataDir {
			cli.Warning("In-memory data dir: nothing will be saved to disk.")
		}
	}

	return srv.Run(sigCtx)
}
