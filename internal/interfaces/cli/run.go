package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/turtacn/periodic-combinator/internal/application/session"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/catalog"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/periodic-combinator/internal/interfaces/display"
)

// NewRunCmd creates the run command, which opens the interactive window.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive periodic table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			svc, err := cliCtx.Explorer()
			if err != nil {
				return err
			}
			cfg := cliCtx.Config

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			regions := session.DefaultRegions(cfg.Display.Width, cfg.Display.Height)
			ctrl := session.NewController(svc, session.Options{
				Regions:       regions,
				MaxMerge:      cfg.Session.MaxMerge,
				PopupDuration: cfg.Session.PopupDuration,
			}, cliCtx.Metrics, cliCtx.Logger)
			renderer, err := display.NewRenderer(svc, regions, displayOptions(cliCtx), cliCtx.Metrics, cliCtx.Logger)
			if err != nil {
				return err
			}

			if cfg.Catalog.Watch {
				stopWatch, err := startWatcher(ctx, cliCtx, svc.Swap)
				if err != nil {
					return err
				}
				defer stopWatch()
			}

			cliCtx.Logger.Info("starting session", logging.String("session_id", ctrl.ID()))
			return display.NewWindow(ctrl, renderer, display.WindowOptions{
				Title:  cfg.Display.Title,
				Width:  cfg.Display.Width,
				Height: cfg.Display.Height,
				FPS:    cfg.Display.FPS,
			}, cliCtx.Logger).Run(ctx)
		},
	}
}

// startWatcher reloads the configured catalog file on change and passes
// every valid snapshot to publish.
func startWatcher(ctx context.Context, cliCtx *CLIContext, publish func(*catalog.Catalog)) (func(), error) {
	opts, err := cliCtx.CatalogOptions()
	if err != nil {
		return nil, err
	}
	w, err := catalog.NewWatcher(cliCtx.Config.Catalog.Path, reloadHandler(cliCtx.Metrics, publish), cliCtx.Logger, opts...)
	if err != nil {
		return nil, err
	}
	go func() {
		if err := w.Run(ctx); err != nil && err != context.Canceled {
			cliCtx.Logger.Warn("catalog watcher stopped", logging.Err(err))
		}
	}()
	return func() { _ = w.Close() }, nil
}

// reloadHandler counts every reload outcome and publishes accepted snapshots.
func reloadHandler(metrics *prometheus.CombinatorMetrics, publish func(*catalog.Catalog)) catalog.ReloadFunc {
	return func(cat *catalog.Catalog, err error) {
		elements, compounds, warnings := catalogCounts(cat)
		prometheus.RecordCatalogLoad(metrics, "file", err, elements, compounds, warnings)
		if err == nil {
			publish(cat)
		}
	}
}
