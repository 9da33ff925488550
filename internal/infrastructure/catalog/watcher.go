package catalog

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/periodic-combinator/pkg/errors"
)

// ReloadFunc receives the outcome of one reload: a valid snapshot with a nil
// error, or a nil snapshot with the reason the reload was rejected.
type ReloadFunc func(cat *Catalog, err error)

// Watcher reloads a catalog file whenever it changes on disk and reports each
// outcome to a callback.  A reload that fails to parse or validate is logged
// and reported with its error, so the previously delivered snapshot stays in
// use.
type Watcher struct {
	path     string
	opts     []Option
	onReload ReloadFunc
	logger   logging.Logger

	fs        *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once
}

// NewWatcher watches path.  The parent directory is watched rather than the
// file itself because editors commonly replace files by rename, which drops
// a watch placed on the old inode.
func NewWatcher(path string, onReload ReloadFunc, logger logging.Logger, opts ...Option) (*Watcher, error) {
	if path == "" {
		return nil, errors.New(errors.CodeInvalidParam, "catalog watcher requires a file path")
	}
	if onReload == nil {
		return nil, errors.New(errors.CodeInvalidParam, "catalog watcher requires a callback")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeCatalogSource, "failed to resolve catalog path")
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to create file watcher")
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		_ = fs.Close()
		return nil, errors.Wrap(err, errors.CodeCatalogSource, "failed to watch catalog directory").
			WithDetail(filepath.Dir(abs))
	}

	return &Watcher{
		path:     abs,
		opts:     opts,
		onReload: onReload,
		logger:   logger.Named("catalog-watcher"),
		fs:       fs,
		done:     make(chan struct{}),
	}, nil
}

// Run processes file events until ctx is cancelled or Close is called.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("watching catalog", logging.String("path", w.path))
	for {
		select {
		case <-ctx.Done():
			w.Close()
			return ctx.Err()
		case <-w.done:
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.reload()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("catalog watcher error", logging.Err(err))
		}
	}
}

// Close stops the watcher.  It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

func (w *Watcher) reload() {
	cat, err := Load(File(w.path), w.opts...)
	if err != nil {
		w.logger.Warn("catalog reload rejected, keeping previous snapshot",
			logging.String("path", w.path),
			logging.String("code", errors.GetCode(err).String()),
			logging.Err(err))
		w.onReload(nil, err)
		return
	}
	w.logger.Info("catalog reloaded",
		logging.String("path", w.path),
		logging.Int("elements", cat.Elements.Len()),
		logging.Int("compounds", cat.Compounds.Len()),
		logging.Int("warnings", len(cat.warnings)))
	w.onReload(cat, nil)
}
