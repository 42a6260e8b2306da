// Package commands implements the dicta subcommands.
package commands

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dicta-lang/dicta/internal/cli/config"
	"github.com/dicta-lang/dicta/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext gathers the config, logger, and renderer a command
// needs. The config comes from the root command's PersistentPreRunE;
// the renderer is bound to the command's own writers so tests can
// capture output.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.Format)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back
// to environment variables. The fallback keeps commands usable when
// they are constructed outside the root command, as in tests.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	format := getEnvOrDefault("DICTA_FORMAT", config.DefaultFormat)
	indent := config.DefaultIndent
	if v := os.Getenv("DICTA_INDENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			indent = n
		}
	}
	verbose := os.Getenv("DICTA_VERBOSE") == "true"
	historyFile := getEnvOrDefault("DICTA_HISTORY_FILE", config.DefaultHistoryFile)

	return &config.Config{
		Format:        format,
		Indent:        indent,
		Verbose:       verbose,
		WatchDebounce: config.DefaultWatchDebounce,
		HistoryFile:   config.ExpandPath(historyFile),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
