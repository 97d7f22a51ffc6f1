// ============================================================================
// adoc - AsciiDoc-like markup toolkit
// ============================================================================
//
// Package:     dump
// Description: Debug output of parsed documents as tree, JSON, YAML or pp
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

// Package dump writes document trees in human and machine readable debug
// formats. It is not a markup renderer.
package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	adocast "github.com/msto63/adoc/foundation/markup/ast"
)

// Format selects the dump representation
type Format string

const (
	FormatTree Format = "tree"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatPP   Format = "pp"
)

// Formats lists all supported formats
var Formats = []Format{FormatTree, FormatJSON, FormatYAML, FormatPP}

// ParseFormat converts a format name to a Format
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatTree:
		return FormatTree, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatPP:
		return FormatPP, nil
	default:
		return "", fmt.Errorf("unknown dump format %q (use tree, json, yaml or pp)", name)
	}
}

// Write dumps doc to w. color only affects the tree and pp formats.
func Write(w io.Writer, doc *adocast.Document, format Format, color bool) error {
	switch format {
	case FormatTree:
		return Tree(w, doc, color)
	case FormatJSON:
		return JSON(w, doc)
	case FormatYAML:
		return YAML(w, doc)
	case FormatPP:
		return PP(w, doc, color)
	default:
		return fmt.Errorf("unknown dump format %q", format)
	}
}

// JSON writes the tagged tree of doc as indented JSON
func JSON(w io.Writer, doc *adocast.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(Value(documentNode(doc)))
}

// YAML writes the tagged tree of doc as YAML
func YAML(w io.Writer, doc *adocast.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Value(documentNode(doc))); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func documentNode(doc *adocast.Document) adocast.Document {
	if doc == nil {
		return adocast.Document{}
	}
	return *doc
}
