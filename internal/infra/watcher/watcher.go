// Package watcher re-runs a callback when watched files change on disk.
package watcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
)

const DefaultDebounce = 300 * time.Millisecond

type Watcher struct {
	files    map[string]bool
	debounce time.Duration
	logger   *slog.Logger
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

func New(files []string, opts ...Option) *Watcher {
	w := &Watcher{
		files:    make(map[string]bool, len(files)),
		debounce: DefaultDebounce,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, f := range files {
		if abs, err := filepath.Abs(f); err == nil {
			w.files[abs] = true
		}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run blocks until ctx is done, calling onChange with the changed files
// after each burst of writes. Parent directories are watched rather than
// the files themselves so that editors which save by rename are noticed.
// onChange calls never overlap.
func (w *Watcher) Run(ctx context.Context, onChange func(changed []string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return &domain.OpError{Op: "watcher.start", Kind: domain.KindExecution, Err: err}
	}
	defer fsw.Close()

	dirs := map[string]bool{}
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for d := range dirs {
		if err := fsw.Add(d); err != nil {
			return &domain.OpError{
				Op:   "watcher.start",
				Kind: domain.KindNotFound,
				Path: d,
				Err:  fmt.Errorf("cannot watch directory: %w", err),
			}
		}
		w.logger.Debug("watcher.dir", "path", d)
	}

	batches := make(chan []string, 1)
	deb := NewDebouncer(w.debounce, func(paths []string) {
		sort.Strings(paths)
		select {
		case batches <- paths:
		case <-ctx.Done():
		}
	})
	defer deb.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("watcher.event", "path", ev.Name, "op", ev.Op.String())
			deb.Add(filepath.Clean(ev.Name))

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher.error", "error", err)

		case paths := <-batches:
			onChange(paths)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}
