// Package runtime provides application runtime context for the club portal.
package runtime

import (
	"context"
	"time"

	"github.com/manav03panchal/clubportal/internal/board"
	"github.com/manav03panchal/clubportal/internal/config"
	"github.com/manav03panchal/clubportal/internal/logging"
	"github.com/manav03panchal/clubportal/internal/model"
	"github.com/manav03panchal/clubportal/internal/output"
	"github.com/manav03panchal/clubportal/internal/storage"
)

// InMemoryDataDir as the data directory keeps both tables in process memory.
const InMemoryDataDir = ":memory:"

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	Formatter *output.Formatter

	Ledger  *storage.AttendanceLedger
	Tracker *storage.ProjectTracker

	// Clock is the source of "now" for submissions and date parsing.
	Clock model.Clock

	// Request carries the request ID for this invocation.
	Request context.Context

	Debug   bool
	started time.Time
}

// Options configures the runtime context.
type Options struct {
	// DataDir overrides the configured data directory when set.
	DataDir   string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
	Clock     model.Clock
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	if opts.Debug {
		logging.Init(logging.DebugConfig())
	} else {
		logging.Init(logging.DefaultConfig())
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.DataDir != "" {
		cfg.Storage.DataDir = opts.DataDir
	}
	if cfg.Storage.DataDir == InMemoryDataDir {
		opts.InMemory = true
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	var attendance, projects storage.Table
	if opts.InMemory {
		attendance = storage.NewMemoryTable(cfg.Storage.AttendanceFile)
		projects = storage.NewMemoryTable(cfg.Storage.ProjectsFile)
	} else {
		attendance = storage.NewCSVFile(cfg.AttendancePath(), cfg.Storage.MinFreeSpace)
		projects = storage.NewCSVFile(cfg.ProjectsPath(), cfg.Storage.MinFreeSpace)
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	c := &Context{
		Config:    cfg,
		Formatter: formatter,
		Ledger:    storage.NewAttendanceLedger(attendance, clock),
		Tracker:   storage.NewProjectTracker(projects, clock),
		Clock:     clock,
		Request:   logging.NewRequestContext(context.Background()),
		Debug:     opts.Debug,
		started:   time.Now(),
	}

	logging.DebugContext(c.Request, "runtime ready",
		logging.KeyPath, cfg.Storage.DataDir,
		"in_memory", opts.InMemory)
	return c, nil
}

// Close logs how long the invocation took. The tables hold no open handles.
func (c *Context) Close() error {
	logging.DebugContext(c.Request, "runtime closed",
		logging.KeyDuration, time.Since(c.started).Milliseconds())
	return nil
}

// Now returns the current instant from the context clock.
func (c *Context) Now() time.Time {
	return c.Clock()
}

// Snapshot loads both tables. The project tracker is seeded on first use.
func (c *Context) Snapshot() (model.AttendanceTable, model.ProjectTable, error) {
	attendance, err := c.Ledger.Load()
	if err != nil {
		return nil, nil, err
	}
	projects, err := c.Tracker.Load()
	if err != nil {
		return nil, nil, err
	}
	return attendance, projects, nil
}

// Stats loads both tables and computes quick stats.
func (c *Context) Stats() (board.Stats, error) {
	attendance, projects, err := c.Snapshot()
	if err != nil {
		return board.Stats{}, err
	}
	return board.QuickStats(attendance, projects), nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}
