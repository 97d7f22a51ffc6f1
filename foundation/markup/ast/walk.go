// File: walk.go
// Title: Markup AST Traversal Helpers
// Description: Depth-first traversal, stable variant names and plain text
//              extraction for document trees.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial traversal helpers

package ast

import (
	"strings"
)

// Inspect traverses the tree rooted at node in depth-first order. It calls
// fn for every node; if fn returns false the children of that node are
// skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, fn)
	}
}

// Children returns the direct children of node in source order
func Children(node Node) []Node {
	switch n := node.(type) {
	case Document:
		return blocksToNodes(n.Blocks)
	case *Document:
		if n == nil {
			return nil
		}
		return blocksToNodes(n.Blocks)
	case Paragraph:
		return inlinesToNodes(n.Children)
	case Heading:
		return inlinesToNodes(n.Children)
	case UnorderedList:
		return itemsToNodes(n.Items)
	case OrderedList:
		return itemsToNodes(n.Items)
	case Label:
		return append(inlinesToNodes(n.Key), inlinesToNodes(n.Children)...)
	case QandA:
		return append(inlinesToNodes(n.Question), inlinesToNodes(n.Answer)...)
	case CodeBlock:
		return inlinesToNodes(n.Children)
	case GenericBlock:
		return append(inlinesToNodes(n.Title), inlinesToNodes(n.Children)...)
	case Table:
		nodes := make([]Node, 0, len(n.Rows))
		for _, row := range n.Rows {
			nodes = append(nodes, row)
		}
		return nodes
	case TableRow:
		return inlinesToNodes(n.Children)
	case NormalItem:
		return inlinesToNodes(n.Children)
	case CheckItem:
		return inlinesToNodes(n.Children)
	case Literal:
		return single(n.Child)
	case Footnote:
		return single(n.Child)
	case Lead:
		return single(n.Child)
	case Bold:
		return single(n.Child)
	case Italic:
		return single(n.Child)
	case Monospace:
		return single(n.Child)
	case Marker:
		return single(n.Child)
	case Underline:
		return single(n.Child)
	case Strikethrough:
		return single(n.Child)
	case Big:
		return single(n.Child)
	case Link:
		return single(n.Child)
	case Mail:
		return single(n.Child)
	case InlineCode:
		return single(n.Child)
	}
	// leaves: Text, breaks, rules, separators, images, videos, macros
	return nil
}

// KindOf returns the stable, lower-case name of the node's variant
func KindOf(node Node) string {
	switch node.(type) {
	case Document, *Document:
		return "document"
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case HorizontalRule:
		return "horizontal_rule"
	case PageBreak:
		return "page_break"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	case Label:
		return "label"
	case QandA:
		return "qanda"
	case CodeBlock:
		return "code_block"
	case GenericBlock:
		return "generic_block"
	case Table:
		return "table"
	case TableRow:
		return "table_row"
	case BlankSeparator:
		return "blank_separator"
	case Text:
		return "text"
	case SoftBreak:
		return "soft_break"
	case HardBreak:
		return "hard_break"
	case Literal:
		return "literal"
	case Footnote:
		return "footnote"
	case Lead:
		return "lead"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Monospace:
		return "monospace"
	case Marker:
		return "marker"
	case Underline:
		return "underline"
	case Strikethrough:
		return "strikethrough"
	case Big:
		return "big"
	case Link:
		return "link"
	case Mail:
		return "mail"
	case Image:
		return "image"
	case InlineImage:
		return "inline_image"
	case Video:
		return "video"
	case InlineCode:
		return "inline_code"
	case Macro:
		return "macro"
	case NormalItem:
		return "normal_item"
	case CheckItem:
		return "check_item"
	default:
		return "unknown"
	}
}

// PlainText concatenates the text content of inlines. Soft breaks become a
// space and hard breaks a newline; images, videos and macros contribute
// nothing.
func PlainText(inlines []Inline) string {
	var sb strings.Builder
	for _, in := range inlines {
		writePlain(&sb, in)
	}
	return sb.String()
}

func writePlain(sb *strings.Builder, node Node) {
	switch n := node.(type) {
	case Text:
		sb.WriteString(string(n))
	case SoftBreak:
		sb.WriteByte(' ')
	case HardBreak:
		sb.WriteByte('\n')
	default:
		for _, child := range Children(node) {
			writePlain(sb, child)
		}
	}
}

func blocksToNodes(blocks []Block) []Node {
	nodes := make([]Node, len(blocks))
	for i, b := range blocks {
		nodes[i] = b
	}
	return nodes
}

func inlinesToNodes(inlines []Inline) []Node {
	nodes := make([]Node, len(inlines))
	for i, in := range inlines {
		nodes[i] = in
	}
	return nodes
}

func itemsToNodes(items []ListItem) []Node {
	nodes := make([]Node, len(items))
	for i, it := range items {
		nodes[i] = it
	}
	return nodes
}

func single(child Inline) []Node {
	if child == nil {
		return nil
	}
	return []Node{child}
}
