// Package watch reruns a task when watched files change.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/manualgen/internal/foundation/errors"
	"git.home.luguber.info/inful/manualgen/internal/logfields"
)

// DefaultDebounce collapses bursts of editor writes into one run.
const DefaultDebounce = 500 * time.Millisecond

// RunFunc is invoked after a debounced change. Runs never overlap.
type RunFunc func(ctx context.Context) error

// Watcher monitors a set of files and calls a RunFunc when any of them changes.
type Watcher struct {
	files    map[string]struct{} // absolute paths
	watcher  *fsnotify.Watcher
	run      RunFunc
	debounce time.Duration
	logger   *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a Watcher for paths. The parent directories are watched rather
// than the files, so atomic replace-writes and recreated files are seen.
func New(paths []string, run RunFunc, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to create file watcher").Fatal().Build()
	}

	w := &Watcher{
		files:    make(map[string]struct{}, len(paths)),
		watcher:  fw,
		run:      run,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve watch path").
				Fatal().
				WithContext(errors.ContextPath, p).
				Build()
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to watch directory").
				Fatal().
				WithContext(errors.ContextPath, dir).
				Build()
		}
	}
	return w, nil
}

// Run blocks until ctx is cancelled, calling the RunFunc once per debounced
// burst of changes. Errors from the RunFunc are logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			w.logger.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("Change detected", slog.String("file", event.Name), slog.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("File watcher error", logfields.Error(err))

		case <-timer.C:
			if err := w.run(ctx); err != nil {
				w.logger.Error("Run after change failed", logfields.Error(err))
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}
