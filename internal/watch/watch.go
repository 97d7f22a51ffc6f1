// ============================================================================
// adoc - AsciiDoc-like markup toolkit
// ============================================================================
//
// Package:     watch
// Description: Re-parses a document whenever its file changes
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

// Package watch observes a single document file and hands every fresh
// parse result to a callback. Bursts of file events are debounced.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	adoclog "github.com/msto63/adoc/foundation/core/log"
	adocast "github.com/msto63/adoc/foundation/markup/ast"
)

// DefaultDebounce is used when Options.Debounce is zero
const DefaultDebounce = 200 * time.Millisecond

// FileParser parses a document from disk. *markup.Engine implements it.
type FileParser interface {
	ParseFile(path string) (*adocast.Document, error)
}

// Handler receives every parse result. Exactly one of doc and err is nil.
type Handler func(doc *adocast.Document, err error)

// Options configures a Watcher
type Options struct {
	Debounce time.Duration
	Logger   *adoclog.Logger
}

// Watcher re-parses one file on change
type Watcher struct {
	path     string
	parser   FileParser
	handler  Handler
	debounce time.Duration
	logger   *adoclog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates a watcher for path. Nothing is observed until Run is called.
func New(path string, parser FileParser, handler Handler, opts Options) (*Watcher, error) {
	if parser == nil || handler == nil {
		return nil, fmt.Errorf("watch: parser and handler are required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = adoclog.GetDefault()
	}

	return &Watcher{
		path:     abs,
		parser:   parser,
		handler:  handler,
		debounce: opts.Debounce,
		logger:   opts.Logger.WithField("component", "watch").WithField("file", abs),
		stopCh:   make(chan struct{}),
	}, nil
}

// Path returns the absolute path of the watched file
func (w *Watcher) Path() string {
	return w.path
}

// Run parses the file once and then again after every change until ctx is
// cancelled or Stop is called. The parent directory is watched so that
// editors replacing the file by rename are followed.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	w.logger.Info("Started watching for document changes")
	w.reparse()

	// fire is nil while no change is pending
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping document watcher (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("Stopping document watcher (stop signal)")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("File event", adoclog.Field("op", event.Op.String()))
			// restart the quiet period on every event of a burst
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			w.reparse()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.ErrorWithErr("Watcher error", err)
		}
	}
}

// Stop ends a running Run call
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	// a removed file is picked up again by its Create event
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write)
}

func (w *Watcher) reparse() {
	doc, err := w.parser.ParseFile(w.path)
	if err != nil {
		w.logger.WarnWithErr("Document parse failed", err)
		w.handler(nil, err)
		return
	}
	w.logger.Debug("Document parsed", adoclog.Field("blocks", len(doc.Blocks)))
	w.handler(doc, nil)
}
