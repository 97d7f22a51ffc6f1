// ============================================================================
// adoc - AsciiDoc-like markup toolkit
// ============================================================================
//
// Package:     viewer
// Description: Message types for async operations in the viewer
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package viewer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	adocast "github.com/msto63/adoc/foundation/markup/ast"
)

// documentMsg carries a fresh parse result
type documentMsg struct {
	doc      *adocast.Document
	err      error
	size     int64
	parsedAt time.Time
}

// DocumentMsg wraps a parse result for delivery with tea.Program.Send,
// typically from a file watcher
func DocumentMsg(doc *adocast.Document, err error) tea.Msg {
	return documentMsg{doc: doc, err: err, parsedAt: time.Now()}
}
