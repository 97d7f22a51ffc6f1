// ============================================================================
// adoc - AsciiDoc-like markup toolkit
// ============================================================================
//
// Package:     dump
// Description: Go value dump of documents via k0kubun/pp
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package dump

import (
	"io"
	"sync"

	"github.com/k0kubun/pp"

	adocast "github.com/msto63/adoc/foundation/markup/ast"
)

// pp keeps its coloring switch in a package variable
var ppMu sync.Mutex

// PP pretty-prints the Go structure of doc
func PP(w io.Writer, doc *adocast.Document, color bool) error {
	ppMu.Lock()
	defer ppMu.Unlock()

	previous := pp.ColoringEnabled
	pp.ColoringEnabled = color
	defer func() { pp.ColoringEnabled = previous }()

	_, err := pp.Fprintln(w, documentNode(doc))
	return err
}
