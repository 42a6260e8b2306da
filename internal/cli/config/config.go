// Package config provides configuration management for the dicta CLI.
//
// Settings are layered from four sources, lowest to highest precedence:
// built-in defaults, a dicta.yaml config file, DICTA_* environment
// variables, and command-line flags.
package config

import (
	"fmt"
	"time"
)

// Config holds all CLI configuration options.
type Config struct {
	Format        string        `koanf:"format"`
	Indent        int           `koanf:"indent"`
	Verbose       bool          `koanf:"verbose"`
	WatchDebounce time.Duration `koanf:"watch_debounce"`
	HistoryFile   string        `koanf:"history_file"`
}

// Default configuration values.
const (
	DefaultFormat        = "auto" // Auto-detect: TTY=text, non-TTY=json
	DefaultIndent        = 4
	DefaultHistoryFile   = "~/.dicta_history"
	DefaultWatchDebounce = 100 * time.Millisecond
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Format {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("invalid output format %q (valid: auto, text, json)", c.Format)
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("watch_debounce must be positive, got %s", c.WatchDebounce)
	}
	return nil
}
