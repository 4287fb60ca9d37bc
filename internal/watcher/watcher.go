// Package watcher implements the debounced file-watch loop behind watch
// mode. It tracks an explicit set of files (the config file plus every
// style source a unit's import graph reaches), watches their parent
// directories so editor rename-replace saves are still observed, and
// delivers deduplicated change batches after a quiet period.
package watcher

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/styletree/styletree/internal/logging"
)

// Op is the kind of change observed on a tracked file.
type Op int

const (
	OpCreated Op = iota
	OpModified
	OpDeleted
	OpRenamed
)

// String returns the string representation of the Op.
func (o Op) String() string {
	switch o {
	case OpCreated:
		return "created"
	case OpModified:
		return "modified"
	case OpDeleted:
		return "deleted"
	case OpRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// Event is one debounced change to a tracked file.
type Event struct {
	Path string
	Op   Op
}

// Handler receives one debounced batch of events, deduplicated by path and
// sorted for stable ordering.
type Handler func(events []Event) error

// FileWatcher watches a tracked file set and delivers debounced change
// batches to registered handlers.
type FileWatcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	logger   logging.Logger

	mu       sync.Mutex
	tracked  map[string]bool
	dirs     map[string]bool
	handlers []Handler
	pending  map[string]Event
	timer    *time.Timer
}

// New creates a file watcher with the given debounce interval.
func New(debounce time.Duration, logger logging.Logger) (*FileWatcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FileWatcher{
		fs:       fs,
		debounce: debounce,
		logger:   logger.WithComponent("watcher"),
		tracked:  make(map[string]bool),
		dirs:     make(map[string]bool),
		pending:  make(map[string]Event),
	}, nil
}

// Track replaces the tracked file set. Parent directories of new paths are
// added to the underlying watch; directories no longer referenced stay
// watched but their events are filtered out, which keeps Track cheap when
// the import graph shifts between rebuilds.
func (w *FileWatcher) Track(paths []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.tracked = make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		w.tracked[abs] = true

		dir := filepath.Dir(abs)
		if w.dirs[dir] {
			continue
		}
		if err := w.fs.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	return nil
}

// AddHandler registers a handler for debounced change batches.
func (w *FileWatcher) AddHandler(h Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, h)
}

// Start runs the watch loop until the context is cancelled.
func (w *FileWatcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

// Stop stops the watcher and releases its resources.
func (w *FileWatcher) Stop() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fs.Close()
}

func (w *FileWatcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn(ctx, err, "watch error")
		}
	}
}

func (w *FileWatcher) handle(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.tracked[abs] {
		return
	}

	var op Op
	switch {
	case event.Op.Has(fsnotify.Create):
		op = OpCreated
	case event.Op.Has(fsnotify.Write):
		op = OpModified
	case event.Op.Has(fsnotify.Remove):
		op = OpDeleted
	case event.Op.Has(fsnotify.Rename):
		op = OpRenamed
	default:
		op = OpModified
	}
	w.pending[abs] = Event{Path: abs, Op: op}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *FileWatcher) flush() {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	events := make([]Event, 0, len(w.pending))
	for _, e := range w.pending {
		events = append(events, e)
	}
	w.pending = make(map[string]Event)
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	sort.Slice(events, func(i, j int) bool { return events[i].Path < events[j].Path })

	for _, h := range handlers {
		if err := h(events); err != nil {
			w.logger.Warn(context.Background(), err, "change handler failed")
		}
	}
}
