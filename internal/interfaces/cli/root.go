package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/turtacn/periodic-combinator/internal/application/explorer"
	"github.com/turtacn/periodic-combinator/internal/config"
	"github.com/turtacn/periodic-combinator/internal/domain/compound"
	"github.com/turtacn/periodic-combinator/internal/domain/layout"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/catalog"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/periodic-combinator/pkg/errors"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string
	CatalogPath  string
	Verbose      bool
	NoColor      bool
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config       *config.Config
	Logger       logging.Logger
	Collector    prometheus.MetricsCollector
	Metrics      *prometheus.CombinatorMetrics
	OutputFormat string
	Verbose      bool

	once     sync.Once
	explorer explorer.Service
	loadErr  error
}

// Geometry returns the table geometry from the display configuration.
func (c *CLIContext) Geometry() layout.Geometry {
	d := c.Config.Display
	return layout.Geometry{CellSize: d.CellSize, Padding: d.Padding, OriginX: d.OriginX, OriginY: d.OriginY}
}

// CatalogOptions returns the load options implied by the configuration.
func (c *CLIContext) CatalogOptions() ([]catalog.Option, error) {
	policy, err := compound.ParseDuplicatePolicy(c.Config.Catalog.DuplicatePolicy)
	if err != nil {
		return nil, err
	}
	return []catalog.Option{catalog.WithDuplicatePolicy(policy)}, nil
}

// Explorer loads the configured catalog on first use and returns the
// explorer service over it.
func (c *CLIContext) Explorer() (explorer.Service, error) {
	c.once.Do(func() {
		opts, err := c.CatalogOptions()
		if err != nil {
			c.loadErr = err
			return
		}
		src := catalog.SourceFor(c.Config.Catalog.Path)
		cat, err := catalog.Load(src, opts...)
		elements, compounds, warnings := catalogCounts(cat)
		prometheus.RecordCatalogLoad(c.Metrics, sourceKind(c.Config.Catalog.Path), err, elements, compounds, warnings)
		if err != nil {
			c.loadErr = err
			return
		}
		for _, w := range cat.Warnings() {
			c.Logger.Warn("catalog warning", logging.String("kind", string(w.Kind)), logging.String("subject", w.Subject),
				logging.String("message", w.Message))
		}
		c.Logger.Debug("catalog loaded",
			logging.String("source", cat.Source),
			logging.Int("elements", cat.Elements.Len()),
			logging.Int("compounds", cat.Compounds.Len()))
		c.explorer = explorer.NewService(cat, c.Geometry(), c.Metrics, c.Logger)
	})
	return c.explorer, c.loadErr
}

func sourceKind(path string) string {
	if path == "" {
		return "embedded"
	}
	return "file"
}

func catalogCounts(cat *catalog.Catalog) (elements, compounds, warnings int) {
	if cat == nil {
		return 0, 0, 0
	}
	return cat.Elements.Len(), cat.Compounds.Len(), len(cat.Warnings())
}

// NewRootCommand creates the root cobra command with all global flags and subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "periodic",
		Short:   "Periodic Combinator: explore the periodic table and combine elements into compounds",
		Long:    "Periodic Combinator shows an interactive periodic table.  Drag elements into the\nmerge area and press Merge to discover which known compound they form.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPostRun(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: environment and built-in defaults)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config file")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "text", "output format (text, json, table)")
	pf.StringVar(&opts.CatalogPath, "catalog", "", "catalog YAML file (default: embedded catalog)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		NewRunCmd(),
		NewElementCmd(),
		NewCompoundCmd(),
		NewLocateCmd(),
		NewRenderCmd(),
		NewCatalogCmd(),
		NewVersionCmd(),
	)
	return cmd
}

// persistentPreRun initializes config, logger and metrics, then stores CLIContext.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	switch strings.ToLower(opts.OutputFormat) {
	case "text", "json", "table":
	default:
		return errors.NewValidationError("output", fmt.Sprintf("unsupported output format %q", opts.OutputFormat))
	}
	if opts.NoColor {
		color.NoColor = true
	}

	cfg, err := initConfig(opts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger, err := initLogger(cfg, opts)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	logging.SetDefault(logger)

	cliCtx := &CLIContext{
		Config:       cfg,
		Logger:       logger,
		OutputFormat: strings.ToLower(opts.OutputFormat),
		Verbose:      opts.Verbose,
	}
	if cfg.Metrics.Enabled {
		collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{Namespace: cfg.Metrics.Namespace}, logger)
		if err != nil {
			return fmt.Errorf("metrics initialization failed: %w", err)
		}
		cliCtx.Collector = collector
		cliCtx.Metrics = prometheus.NewCombinatorMetrics(collector)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cliCtx))
	return nil
}

// persistentPostRun writes the metrics dump, if configured, and flushes the logger.
func persistentPostRun(cmd *cobra.Command) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return nil
	}
	defer func() { _ = cliCtx.Logger.Sync() }()
	if cliCtx.Collector == nil || cliCtx.Config.Metrics.DumpPath == "" {
		return nil
	}
	if err := prometheus.DumpToFile(cliCtx.Collector, cliCtx.Config.Metrics.DumpPath); err != nil {
		cliCtx.Logger.Warn("metrics dump failed", logging.Err(err))
		return nil
	}
	cliCtx.Logger.Debug("metrics written", logging.String("path", cliCtx.Config.Metrics.DumpPath))
	return nil
}

// initConfig loads configuration with priority: flags > env > file > defaults.
func initConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.CatalogPath != "" {
		cfg.Catalog.Path = opts.CatalogPath
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(opts.LogLevel)
	}
	if opts.Verbose {
		cfg.Log.Level = logging.LevelDebug
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// initLogger creates a logger configured for CLI usage (output to stderr by default).
func initLogger(cfg *config.Config, _ *RootOptions) (logging.Logger, error) {
	return logging.NewLogger(logging.LogConfig{
		Level:            cfg.Log.Level,
		Format:           cfg.Log.Format,
		OutputPaths:      cfg.Log.OutputPaths,
		ErrorOutputPaths: []string{"stderr"},
	})
}

// GetCLIContext extracts CLIContext from a cobra command's context.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.NewValidationError("context", "command context is nil")
	}

	cliCtx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, errors.NewValidationError("context", "CLIContext not found in command context")
	}

	return cliCtx, nil
}

// Execute is the main entry point for the CLI application.
func Execute() error {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		PrintError(rootCmd, err)
		return err
	}

	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Output helpers
// ─────────────────────────────────────────────────────────────────────────────

// tableProvider is implemented by results that have a tabular rendering.
type tableProvider interface {
	TableHeaders() []string
	TableRows() [][]string
}

// PrintResult outputs data in the format specified by CLIContext.
func PrintResult(cmd *cobra.Command, data interface{}) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		// Fallback to JSON if context unavailable.
		return printJSON(cmd, data)
	}

	switch cliCtx.OutputFormat {
	case "json":
		return printJSON(cmd, data)
	case "table":
		return printTable(cmd, data)
	default:
		return printText(cmd, data)
	}
}

// printJSON outputs data as indented JSON to stdout.
func printJSON(cmd *cobra.Command, data interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// printText outputs data as a simple string representation to stdout.
func printText(cmd *cobra.Command, data interface{}) error {
	switch v := data.(type) {
	case string:
		fmt.Fprintln(cmd.OutOrStdout(), v)
	case fmt.Stringer:
		fmt.Fprintln(cmd.OutOrStdout(), v.String())
	case tableProvider:
		return printTable(cmd, v)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", v)
	}
	return nil
}

// printTable outputs data as a table if it implements tableProvider,
// otherwise falls back to text.
func printTable(cmd *cobra.Command, data interface{}) error {
	tp, ok := data.(tableProvider)
	if !ok {
		return printText(cmd, data)
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header(cells(tp.TableHeaders())...)
	for _, row := range tp.TableRows() {
		if err := table.Append(cells(row)...); err != nil {
			return err
		}
	}
	return table.Render()
}

func cells(row []string) []any {
	out := make([]any, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}

// PrintError writes a formatted error message to stderr.
func PrintError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", color.RedString("Error:"), err.Error())
}

// PrintSuccess writes a formatted success message to stdout.
func PrintSuccess(cmd *cobra.Command, msg string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("OK:"), msg)
}
