package translator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	sserrors "github.com/c360studio/semstreams/pkg/errs"

	"github.com/hamhec/FLOCI/source/weburl"
)

// WatcherConfig configures the input watcher
type WatcherConfig struct {
	// Input is the ontology document to watch
	Input string

	// Output is where translations are written
	Output string

	// DebounceDelay is how long to wait for more changes before translating
	DebounceDelay time.Duration

	// Logger for logging events
	Logger *slog.Logger
}

// WatchEvent reports one re-translation of the watched input
type WatchEvent struct {
	// Input is the watched document
	Input string

	// Report is the run report (nil if the document could not be loaded)
	Report *Report

	// Error if the translation failed
	Error error
}

// Watcher re-translates an ontology document whenever it changes. The
// directory holding the input is watched so that editors replacing the file
// on save are noticed. Translations run one at a time on the watcher's
// goroutine.
type Watcher struct {
	config     WatcherConfig
	translator *Translator
	watcher    *fsnotify.Watcher
	logger     *slog.Logger

	// Debouncing: changes are collected and flushed on each tick
	pendingMu sync.Mutex
	pending   bool

	// Output channel, closed when the watcher stops
	events  chan WatchEvent
	done    chan struct{}
	started bool
}

// NewWatcher creates a new input watcher
func NewWatcher(t *Translator, config WatcherConfig) (*Watcher, error) {
	if weburl.IsRemote(config.Input) {
		return nil, sserrors.WrapInvalid(fmt.Errorf("cannot watch remote input %s", config.Input),
			"Watcher", "NewWatcher", "resolve input")
	}

	input, err := filepath.Abs(config.Input)
	if err != nil {
		return nil, sserrors.WrapInvalid(err, "Watcher", "NewWatcher", "resolve input")
	}
	config.Input = input

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, sserrors.WrapFatal(err, "Watcher", "NewWatcher", "create fsnotify watcher")
	}

	logger := config.Logger
	if logger == nil {
		logger = t.logger
	}

	if config.DebounceDelay == 0 {
		config.DebounceDelay = t.cfg.Watch.Debounce
	}
	if config.DebounceDelay <= 0 {
		config.DebounceDelay = 200 * time.Millisecond
	}

	return &Watcher{
		config:     config,
		translator: t,
		watcher:    fsw,
		logger:     logger,
		events:     make(chan WatchEvent, 16),
		done:       make(chan struct{}),
	}, nil
}

// Events returns the channel of watch events
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Start translates the input once and then watches it for changes until ctx
// is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.config.Input)
	if err := w.watcher.Add(dir); err != nil {
		return sserrors.WrapFatal(err, "Watcher", "Start", "watch input directory")
	}

	w.started = true
	go w.processEvents(ctx)

	w.logger.Info("File watcher started",
		"input", w.config.Input,
		"output", w.config.Output,
		"debounce", w.config.DebounceDelay)

	return nil
}

// Stop stops the watcher and waits for an in-flight translation to finish
func (w *Watcher) Stop() error {
	err := w.watcher.Close()
	if w.started {
		<-w.done
	}
	return err
}

// processEvents handles fsnotify events with debouncing
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.done)
	defer close(w.events)

	w.translate(ctx)

	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// handleFSEvent marks the input as changed when the event concerns it
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.config.Input {
		return
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		w.logger.Debug("Input moved away, waiting for it to return", "op", event.Op.String())
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.pendingMu.Lock()
	w.pending = true
	w.pendingMu.Unlock()

	w.logger.Debug("Input change detected", "op", event.Op.String())
}

// flushPending re-translates the input if it changed since the last tick
func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	pending := w.pending
	w.pending = false
	w.pendingMu.Unlock()

	if pending {
		w.translate(ctx)
	}
}

func (w *Watcher) translate(ctx context.Context) {
	report, err := w.translator.TranslateFile(ctx, w.config.Input, w.config.Output)
	if err != nil {
		w.logger.Warn("Re-translation failed", "input", w.config.Input, "error", err)
	}
	w.sendEvent(WatchEvent{Input: w.config.Input, Report: report, Error: err})
}

// sendEvent sends an event to the output channel
func (w *Watcher) sendEvent(event WatchEvent) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent watch event", "input", event.Input)
	default:
		w.logger.Warn("Event channel full, dropping event", "input", event.Input)
	}
}
