// ============================================================================
// adoc - AsciiDoc-like markup toolkit
// ============================================================================
//
// Package:     viewer
// Description: Program runner connecting the viewer to a file watcher
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package viewer

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	adocast "github.com/msto63/adoc/foundation/markup/ast"
	"github.com/msto63/adoc/internal/watch"
)

// Run starts the viewer and blocks until the user quits. With a path and a
// parser the document is parsed again whenever the file changes.
func Run(ctx context.Context, cfg Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.Path != "" && cfg.Parser != nil {
		w, err := watch.New(cfg.Path, cfg.Parser, func(doc *adocast.Document, err error) {
			p.Send(DocumentMsg(doc, err))
		}, watch.Options{Debounce: cfg.Debounce, Logger: cfg.Logger})
		if err != nil {
			return err
		}
		go func() {
			if err := w.Run(ctx); err != nil {
				p.Send(DocumentMsg(nil, err))
			}
		}()
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
