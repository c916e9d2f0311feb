// Package watch reloads a site definition whenever its file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/sitecfg/internal/descriptor"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
)

// DefaultDebounce is the quiet period after the last file event before a reload.
const DefaultDebounce = 500 * time.Millisecond

// LoadFunc loads the definition at path.
type LoadFunc func(path string) (*descriptor.Descriptor, error)

// ReloadFunc receives the result of every reload. Exactly one of desc and
// err is non-nil.
type ReloadFunc func(desc *descriptor.Descriptor, err error)

// Watcher monitors a definition file and reloads it on change.
type Watcher struct {
	path     string
	load     LoadFunc
	onReload ReloadFunc
	debounce time.Duration
	logger   *slog.Logger

	watcher    *fsnotify.Watcher
	mu         sync.Mutex
	stopOnce   sync.Once
	stopChan   chan struct{}
	reloadChan chan struct{}
	wg         sync.WaitGroup
}

// Option customizes a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a watcher for path. Nothing is watched until Start.
func New(path string, load LoadFunc, onReload ReloadFunc, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve definition path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		path:       absPath,
		load:       load,
		onReload:   onReload,
		debounce:   DefaultDebounce,
		logger:     slog.Default(),
		watcher:    fw,
		stopChan:   make(chan struct{}),
		reloadChan: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins monitoring. The directory is watched rather than the file so
// editors that replace the file on save keep triggering reloads.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.logger.Info("Watching site definition", logfields.Path(w.path))

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutines to exit.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				w.logger.Debug("Site definition changed", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				w.triggerReload()
			case event.Has(fsnotify.Remove):
				w.logger.Warn("Site definition removed", logfields.Path(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	defer w.wg.Done()
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-w.reloadChan:
			timer.Reset(w.debounce)
		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) triggerReload() {
	select {
	case w.reloadChan <- struct{}{}:
	default:
	}
}

func (w *Watcher) reload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	desc, err := w.load(w.path)
	if err != nil {
		w.logger.Error("Failed to reload site definition", logfields.Path(w.path), logfields.Error(err))
		w.onReload(nil, err)
		return
	}
	w.logger.Info("Reloaded site definition", logfields.Path(w.path), logfields.Count(len(desc.PluginNames())))
	w.onReload(desc, nil)
}
