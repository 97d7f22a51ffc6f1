// ============================================================================
// adoc - AsciiDoc-like markup toolkit
// ============================================================================
//
// Package:     dump
// Description: Tagged map encoding of document nodes
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package dump

import (
	adocast "github.com/msto63/adoc/foundation/markup/ast"
)

// field is a scalar property of a node shown next to its kind
type field struct {
	key   string
	value interface{}
}

// Value converts node into a tree of maps and slices suitable for JSON and
// YAML encoders. Every map carries a "type" key with the node kind.
func Value(node adocast.Node) map[string]interface{} {
	m := map[string]interface{}{"type": adocast.KindOf(node)}
	for _, f := range fields(node) {
		m[f.key] = f.value
	}

	switch n := node.(type) {
	case adocast.Document:
		m["blocks"] = values(adocast.Children(n))
	case adocast.UnorderedList, adocast.OrderedList:
		m["items"] = values(adocast.Children(n))
	case adocast.Table:
		m["rows"] = values(adocast.Children(n))
	case adocast.Label:
		m["key"] = inlineValues(n.Key)
		m["children"] = inlineValues(n.Children)
	case adocast.QandA:
		m["question"] = inlineValues(n.Question)
		m["answer"] = inlineValues(n.Answer)
	case adocast.GenericBlock:
		if n.Title != nil {
			m["title"] = inlineValues(n.Title)
		}
		m["children"] = inlineValues(n.Children)
	case adocast.Paragraph, adocast.Heading, adocast.CodeBlock, adocast.TableRow,
		adocast.NormalItem, adocast.CheckItem:
		m["children"] = values(adocast.Children(n))
	default:
		if children := adocast.Children(n); len(children) == 1 {
			m["child"] = Value(children[0])
		}
	}
	return m
}

func values(nodes []adocast.Node) []interface{} {
	out := make([]interface{}, len(nodes))
	for i, n := range nodes {
		out[i] = Value(n)
	}
	return out
}

func inlineValues(inlines []adocast.Inline) []interface{} {
	out := make([]interface{}, len(inlines))
	for i, in := range inlines {
		out[i] = Value(in)
	}
	return out
}

// fields returns the scalar properties of node in display order
func fields(node adocast.Node) []field {
	switch n := node.(type) {
	case adocast.Text:
		return []field{{"text", string(n)}}
	case adocast.Heading:
		fs := []field{{"level", n.Level.String()}}
		if n.ID != nil {
			fs = append(fs, field{"id", *n.ID})
		}
		return fs
	case adocast.NormalItem:
		return []field{{"level", n.Level}}
	case adocast.CheckItem:
		return []field{{"level", n.Level}, {"checked", n.Checked}}
	case adocast.CodeBlock:
		var fs []field
		if n.Title != nil {
			fs = append(fs, field{"title", *n.Title})
		}
		if n.FileType != nil {
			fs = append(fs, field{"file_type", *n.FileType})
		}
		return fs
	case adocast.Table:
		cols := make([]string, len(n.Columns))
		for i, c := range n.Columns {
			cols[i] = c.Name
		}
		fs := []field{{"columns", cols}}
		if n.Title != nil {
			fs = append(fs, field{"title", *n.Title})
		}
		return fs
	case adocast.Footnote:
		return []field{{"kind", n.Kind.String()}}
	case adocast.Link:
		return []field{{"href", n.Href}}
	case adocast.Mail:
		return []field{{"to", n.To}}
	case adocast.Image:
		return imageFields(n.Src, n.Caption)
	case adocast.InlineImage:
		return imageFields(n.Src, n.Caption)
	case adocast.Video:
		return []field{{"id", n.ID}, {"provider", n.Provider.String()}}
	case adocast.Macro:
		fs := []field{{"kind", n.Kind}, {"id", n.ID}}
		if attrs := attributesValue(n.Attributes); attrs != nil {
			fs = append(fs, field{"attributes", attrs})
		}
		return fs
	}
	return nil
}

func imageFields(src string, caption *string) []field {
	fs := []field{{"src", src}}
	if caption != nil {
		fs = append(fs, field{"caption", *caption})
	}
	return fs
}

func attributesValue(attrs adocast.Attributes) interface{} {
	switch a := attrs.(type) {
	case adocast.Positional:
		return []string(a)
	case adocast.Named:
		return map[string]string(a)
	}
	return nil
}
