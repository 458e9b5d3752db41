// Package commands implements the campus CLI subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/danishazizi96/campus/internal/cli/config"
	"github.com/danishazizi96/campus/internal/cli/output"
	"github.com/danishazizi96/campus/internal/roster"
	"github.com/danishazizi96/campus/internal/store"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Store    *store.Store
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext wired to the command's streams
// and the configured data directory.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Store:    store.New(cfg.DataDir, logger),
		Renderer: r,
	}
}

// Mutate loads the roster, applies fn, and saves the result. The save is
// skipped when fn fails, so a rejected operation never touches disk.
func (c *CommandContext) Mutate(fn func(r *roster.Roster) error) error {
	ros, err := c.Store.Load()
	if err != nil {
		return err
	}
	if err := fn(ros); err != nil {
		return err
	}
	return c.Store.Save(ros)
}

// getConfig returns the current configuration. It uses
// config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	return &config.Config{
		DataDir:      getEnvOrDefault("CAMPUS_DATA_DIR", config.DefaultDataDir),
		ReportsDir:   getEnvOrDefault("CAMPUS_REPORTS_DIR", config.DefaultReportsDir),
		OutputFormat: os.Getenv("CAMPUS_OUTPUT"),
		Verbose:      os.Getenv("CAMPUS_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
