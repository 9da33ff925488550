package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultWidth          = 1280
	DefaultHeight         = 720
	DefaultTitle          = "Periodic Combinator - Periodic Table"
	DefaultCellSize       = 53
	DefaultPadding        = 4
	DefaultOriginX        = 80
	DefaultFPS            = 60
	DefaultSymbolFontSize = 20
	DefaultTextFontSize   = 20
	DefaultPopupFontSize  = 32

	DefaultPopupDuration = 1500 * time.Millisecond
	DefaultMaxMerge      = 48

	DuplicatePolicyReject        = "reject"
	DuplicatePolicyLastWriteWins = "last_write_wins"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	DefaultMetricsNamespace = "periodic"
)

// ApplyDefaults fills every zero-value field in cfg with its default.
// Fields that have already been set (non-zero values) are left unchanged so
// that explicit configuration always wins.  OriginY and Padding are left
// alone because zero is a meaningful value for both.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Display ───────────────────────────────────────────────────────────────
	if cfg.Display.Width == 0 {
		cfg.Display.Width = DefaultWidth
	}
	if cfg.Display.Height == 0 {
		cfg.Display.Height = DefaultHeight
	}
	if cfg.Display.Title == "" {
		cfg.Display.Title = DefaultTitle
	}
	if cfg.Display.CellSize == 0 {
		cfg.Display.CellSize = DefaultCellSize
	}
	if cfg.Display.OriginX == 0 {
		cfg.Display.OriginX = DefaultOriginX
	}
	if cfg.Display.FPS == 0 {
		cfg.Display.FPS = DefaultFPS
	}
	if cfg.Display.SymbolFontSize == 0 {
		cfg.Display.SymbolFontSize = DefaultSymbolFontSize
	}
	if cfg.Display.TextFontSize == 0 {
		cfg.Display.TextFontSize = DefaultTextFontSize
	}
	if cfg.Display.PopupFontSize == 0 {
		cfg.Display.PopupFontSize = DefaultPopupFontSize
	}

	// ── Session ───────────────────────────────────────────────────────────────
	if cfg.Session.PopupDuration == 0 {
		cfg.Session.PopupDuration = DefaultPopupDuration
	}
	if cfg.Session.MaxMerge == 0 {
		cfg.Session.MaxMerge = DefaultMaxMerge
	}

	// ── Catalog ───────────────────────────────────────────────────────────────
	if cfg.Catalog.DuplicatePolicy == "" {
		cfg.Catalog.DuplicatePolicy = DuplicatePolicyReject
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stderr"}
	}

	// ── Metrics ───────────────────────────────────────────────────────────────
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// Default returns a Config populated entirely with defaults.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	cfg.Display.Padding = DefaultPadding
	return cfg
}
