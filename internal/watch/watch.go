// Package watch re-analyzes a script every time it is saved.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cyberempirex/installguard/internal/cache"
	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/logging"
	"github.com/cyberempirex/installguard/internal/rules"
	"github.com/cyberempirex/installguard/internal/source"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 300 * time.Millisecond

// Config holds configuration for a Watcher.
type Config struct {
	// Path is the script to watch. Its directory is watched so that editors
	// replacing the file by rename are still observed.
	Path     string
	Rules    *rules.RuleSet
	Debounce time.Duration

	// OnResult receives every fresh analysis, including the initial one.
	OnResult func(doc *source.Document, res *engine.Result)
	// OnError receives read and watcher failures; watching continues.
	OnError func(err error)
}

// Watcher runs analyses for one script until its context ends.
type Watcher struct {
	cfg     Config
	digests *cache.DB
}

func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, errors.New("watch: empty path")
	}
	if cfg.Rules == nil {
		cfg.Rules = rules.Default()
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.OnError == nil {
		cfg.OnError = func(err error) { logging.L().Warnw("watch error", "err", err) }
	}
	return &Watcher{cfg: cfg, digests: cache.New()}, nil
}

// Run analyzes the script once, then again after each change, and returns
// when ctx is cancelled. A script that cannot be stat'ed as a regular file
// fails before anything is watched.
func (w *Watcher) Run(ctx context.Context) error {
	st, err := os.Stat(w.cfg.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &source.AccessError{Path: w.cfg.Path, Err: source.ErrNotFound}
		}
		return &source.AccessError{Path: w.cfg.Path, Err: err}
	}
	if !st.Mode().IsRegular() {
		return &source.AccessError{Path: w.cfg.Path, Err: source.ErrNotRegular}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.cfg.Path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logging.L().Debugw("watching", "path", w.cfg.Path, "debounce", w.cfg.Debounce)

	w.analyze()

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time
	target := filepath.Clean(w.cfg.Path)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(w.cfg.Debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			debounceCh = nil
			w.analyze()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.cfg.OnError(err)
		}
	}
}

// analyze reads the script and reports a fresh result when its content
// digest changed since the last analysis.
func (w *Watcher) analyze() {
	b, err := os.ReadFile(w.cfg.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// mid-save rename; the following create event triggers another pass
			w.digests.Forget(w.cfg.Path)
			logging.L().Debugw("script missing", "path", w.cfg.Path)
			return
		}
		w.cfg.OnError(&source.AccessError{Path: w.cfg.Path, Err: err})
		return
	}
	if !w.digests.Changed(w.cfg.Path, b) {
		logging.L().Debugw("content unchanged, skipping", "path", w.cfg.Path)
		return
	}
	doc, err := source.FromBytes(source.KindFile, w.cfg.Path, b)
	if err != nil {
		w.cfg.OnError(err)
		return
	}
	res := engine.Scan(w.cfg.Rules, doc.Lines)
	if w.cfg.OnResult != nil {
		w.cfg.OnResult(doc, res)
	}
}
