// Package watcher provides a recursive directory watcher built on fsnotify.
// It filters events by extension, debounces bursts per path and hands
// surviving change events to a callback.
package watcher

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"system_ai_service/internal/pkg/config"
	"system_ai_service/internal/pkg/logger"

	"github.com/fsnotify/fsnotify"
)

// Callback receives the path of a created or modified file.
type Callback func(path string)

// Watcher watches a directory tree and dispatches debounced change events.
type Watcher struct {
	cooldown   time.Duration
	extensions map[string]struct{}
	callback   Callback
	logger     logger.Logger

	mu        sync.Mutex
	fsw       *fsnotify.Watcher
	recent    map[string]time.Time
	done      chan struct{}
	running   bool
	directory string
	startedAt time.Time

	eventsHandled atomic.Int64
}

// New creates a watcher from settings. An empty extension list watches
// every file.
func New(settings *config.WatcherSettings, callback Callback, logger logger.Logger) (*Watcher, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid watcher settings: %w", err)
	}
	if callback == nil {
		return nil, fmt.Errorf("callback is required")
	}

	extensions := make(map[string]struct{}, len(settings.Extensions))
	for _, ext := range settings.Extensions {
		extensions[strings.ToLower(ext)] = struct{}{}
	}

	return &Watcher{
		cooldown:   time.Duration(settings.CooldownSeconds) * time.Second,
		extensions: extensions,
		callback:   callback,
		logger:     logger,
		recent:     make(map[string]time.Time),
	}, nil
}

// Start begins watching dir and all of its subdirectories. Starting an
// already running watcher stops the previous watch first.
func (w *Watcher) Start(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot watch %s: not a directory", dir)
	}

	if w.IsRunning() {
		if err := w.Stop(); err != nil {
			return fmt.Errorf("failed to stop previous watch: %w", err)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := addRecursive(fsw, dir); err != nil {
		_ = fsw.Close()
		return err
	}

	w.mu.Lock()
	w.fsw = fsw
	w.done = make(chan struct{})
	w.running = true
	w.directory = dir
	w.startedAt = time.Now()
	w.recent = make(map[string]time.Time)
	w.eventsHandled.Store(0)
	done := w.done
	w.mu.Unlock()

	go w.loop(fsw, done)

	w.logger.Info("started watching directory ", dir)
	return nil
}

// Stop terminates the active watch. Stopping an idle watcher is a no-op.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	fsw := w.fsw
	done := w.done
	w.running = false
	w.fsw = nil
	w.mu.Unlock()

	if err := fsw.Close(); err != nil {
		return fmt.Errorf("failed to close fsnotify watcher: %w", err)
	}
	<-done

	w.logger.Info("stopped watching directory")
	return nil
}

// IsRunning reports whether a watch is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Stats returns the watched directory, start time and number of events
// dispatched so far.
func (w *Watcher) Stats() (string, time.Time, int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.directory, w.startedAt, w.eventsHandled.Load()
}

func (w *Watcher) loop(fsw *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(fsw, event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error: ", err)
		}
	}
}

func (w *Watcher) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	// New subdirectories must be watched as well.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := addRecursive(fsw, event.Name); err != nil {
				w.logger.Error("failed to watch new directory ", event.Name, ": ", err)
			}
			return
		}
	}

	if !w.matches(event.Name) {
		return
	}
	if !w.passCooldown(event.Name) {
		return
	}

	w.logger.Info("file changed: ", event.Name)
	w.eventsHandled.Add(1)
	go w.callback(event.Name)
}

func (w *Watcher) matches(path string) bool {
	if len(w.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := w.extensions[ext]
	return ok
}

// passCooldown reports whether the path is outside its debounce window and
// records the dispatch time when it is.
func (w *Watcher) passCooldown(path string) bool {
	now := time.Now()

	w.mu.Lock()
	defer w.mu.Unlock()

	if last, ok := w.recent[path]; ok && now.Sub(last) < w.cooldown {
		return false
	}
	w.recent[path] = now

	// Drop stale entries so the map does not grow without bound.
	if len(w.recent) > 4096 {
		for p, ts := range w.recent {
			if now.Sub(ts) >= w.cooldown {
				delete(w.recent, p)
			}
		}
	}

	return true
}

func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}
