// ============================================================================
// adoc - AsciiDoc-like markup toolkit
// ============================================================================
//
// Package:     dump
// Description: Indented tree rendering of document nodes
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package dump

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	adocast "github.com/msto63/adoc/foundation/markup/ast"
)

// Tree writes doc as an indented tree, one node per line
func Tree(w io.Writer, doc *adocast.Document, color bool) error {
	_, err := fmt.Fprintln(w, RenderTree(documentNode(doc), color))
	return err
}

// RenderTree renders the tree rooted at node
func RenderTree(node adocast.Node, color bool) string {
	styles := newTreeStyles(color)
	t := buildTree(node, styles).
		Enumerator(tree.DefaultEnumerator).
		EnumeratorStyle(styles.Enumerator)
	return t.String()
}

func buildTree(node adocast.Node, styles treeStyles) *tree.Tree {
	t := tree.Root(label(node, styles))
	for _, child := range adocast.Children(node) {
		if len(adocast.Children(child)) == 0 {
			t.Child(label(child, styles))
			continue
		}
		t.Child(buildTree(child, styles))
	}
	return t
}

// label returns the one-line description of node: its kind followed by its
// scalar fields
func label(node adocast.Node, styles treeStyles) string {
	kind := adocast.KindOf(node)
	if text, ok := node.(adocast.Text); ok {
		return styles.Inline.Render(kind) + " " + styles.Text.Render(strconv.Quote(string(text)))
	}

	var sb strings.Builder
	if _, ok := node.(adocast.Inline); ok {
		sb.WriteString(styles.Inline.Render(kind))
	} else {
		sb.WriteString(styles.Block.Render(kind))
	}
	for _, f := range fields(node) {
		sb.WriteByte(' ')
		sb.WriteString(styles.Field.Render(fmt.Sprintf("%s=%s", f.key, formatField(f.value))))
	}
	return sb.String()
}

func formatField(v interface{}) string {
	switch val := v.(type) {
	case string:
		return quoteIfNeeded(val)
	case []string:
		quoted := make([]string, len(val))
		for i, s := range val {
			quoted[i] = quoteIfNeeded(s)
		}
		return "[" + strings.Join(quoted, " ") + "]"
	default:
		return fmt.Sprint(val)
	}
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"[]=") {
		return strconv.Quote(s)
	}
	return s
}
