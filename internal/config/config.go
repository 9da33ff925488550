// Package config defines all configuration structures for the periodic
// combinator.  No I/O or parsing logic lives here, only plain data types and
// validation.
package config

import (
	"fmt"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// DisplayConfig holds window size, table geometry and font sizes.
type DisplayConfig struct {
	Width          int    `mapstructure:"width"`
	Height         int    `mapstructure:"height"`
	Title          string `mapstructure:"title"`
	CellSize       int    `mapstructure:"cell_size"`
	Padding        int    `mapstructure:"padding"`
	OriginX        int    `mapstructure:"origin_x"`
	OriginY        int    `mapstructure:"origin_y"`
	FPS            int    `mapstructure:"fps"`
	SymbolFontSize int    `mapstructure:"symbol_font_size"`
	TextFontSize   int    `mapstructure:"text_font_size"`
	PopupFontSize  int    `mapstructure:"popup_font_size"`
}

// SessionConfig holds interaction parameters.
type SessionConfig struct {
	PopupDuration time.Duration `mapstructure:"popup_duration"`
	MaxMerge      int           `mapstructure:"max_merge"`
}

// CatalogConfig selects the catalog source.  An empty Path means the embedded
// default catalog.
type CatalogConfig struct {
	Path            string `mapstructure:"path"`
	Watch           bool   `mapstructure:"watch"`
	DuplicatePolicy string `mapstructure:"duplicate_policy"` // "reject" | "last_write_wins"
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level       string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format      string   `mapstructure:"format"` // "json" | "console"
	OutputPaths []string `mapstructure:"output_paths"`
}

// MetricsConfig holds in-process metrics parameters.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	DumpPath  string `mapstructure:"dump_path"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure.
type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Session SessionConfig `mapstructure:"session"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered.
func (c *Config) Validate() error {
	// Display
	if c.Display.Width < 1 || c.Display.Height < 1 {
		return fmt.Errorf("config: display size %dx%d must be positive", c.Display.Width, c.Display.Height)
	}
	if c.Display.CellSize < 1 {
		return fmt.Errorf("config: display.cell_size must be ≥ 1, got %d", c.Display.CellSize)
	}
	if c.Display.Padding < 0 {
		return fmt.Errorf("config: display.padding must be ≥ 0, got %d", c.Display.Padding)
	}
	if c.Display.FPS < 1 {
		return fmt.Errorf("config: display.fps must be ≥ 1, got %d", c.Display.FPS)
	}
	if c.Display.SymbolFontSize < 1 || c.Display.TextFontSize < 1 || c.Display.PopupFontSize < 1 {
		return fmt.Errorf("config: display font sizes must be ≥ 1")
	}

	// Session
	if c.Session.PopupDuration <= 0 {
		return fmt.Errorf("config: session.popup_duration must be positive, got %s", c.Session.PopupDuration)
	}
	if c.Session.MaxMerge < 1 {
		return fmt.Errorf("config: session.max_merge must be ≥ 1, got %d", c.Session.MaxMerge)
	}

	// Catalog
	switch c.Catalog.DuplicatePolicy {
	case DuplicatePolicyReject, DuplicatePolicyLastWriteWins:
	default:
		return fmt.Errorf("config: catalog.duplicate_policy %q is invalid; expected reject|last_write_wins", c.Catalog.DuplicatePolicy)
	}
	if c.Catalog.Watch && c.Catalog.Path == "" {
		return fmt.Errorf("config: catalog.watch requires catalog.path")
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	// Metrics
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("config: metrics.namespace is required when metrics are enabled")
	}

	return nil
}
