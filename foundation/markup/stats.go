// File: stats.go
// Title: Document Statistics
// Description: Counts blocks, inlines and list items of a document and
//              measures the depth of its tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial statistics

package markup

import (
	adocast "github.com/msto63/adoc/foundation/markup/ast"
)

// Stats summarizes the shape of a parsed document
type Stats struct {
	Blocks     int            `json:"blocks" yaml:"blocks"`
	Inlines    int            `json:"inlines" yaml:"inlines"`
	Headings   int            `json:"headings" yaml:"headings"`
	Lists      int            `json:"lists" yaml:"lists"`
	ListItems  int            `json:"list_items" yaml:"list_items"`
	Paragraphs int            `json:"paragraphs" yaml:"paragraphs"`
	MaxDepth   int            `json:"max_depth" yaml:"max_depth"`
	ByKind     map[string]int `json:"by_kind" yaml:"by_kind"`
}

// Stats computes statistics for doc
func (e *Engine) Stats(doc *adocast.Document) Stats {
	return CollectStats(doc)
}

// CollectStats computes statistics for doc. The document node itself is
// not counted; its blocks are at depth 1.
func CollectStats(doc *adocast.Document) Stats {
	stats := Stats{ByKind: make(map[string]int)}
	if doc == nil {
		return stats
	}
	stats.Blocks = len(doc.Blocks)
	for _, b := range doc.Blocks {
		collect(&stats, b, 1)
	}
	return stats
}

func collect(stats *Stats, node adocast.Node, depth int) {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	stats.ByKind[adocast.KindOf(node)]++

	switch node.(type) {
	case adocast.Heading:
		stats.Headings++
	case adocast.Paragraph:
		stats.Paragraphs++
	case adocast.UnorderedList, adocast.OrderedList:
		stats.Lists++
	case adocast.ListItem:
		stats.ListItems++
	}
	if _, ok := node.(adocast.Inline); ok {
		stats.Inlines++
	}

	for _, child := range adocast.Children(node) {
		collect(stats, child, depth+1)
	}
}
