// File: walk_test.go
// Title: Markup AST Traversal Tests
// Description: Tests for Inspect, Children, KindOf, PlainText and the
//              heading level helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test suite

package ast

import (
	"reflect"
	"testing"
)

func sampleDocument() Document {
	return Document{Blocks: []Block{
		Heading{Level: Title, Children: []Inline{Text("Guide")}},
		Paragraph{Children: []Inline{
			Text("a"), SoftBreak{}, Bold{Child: Italic{Child: Text("b")}}, HardBreak{}, Text("c"),
		}},
		BlankSeparator{},
		UnorderedList{Items: []ListItem{
			NormalItem{Level: 1, Children: []Inline{Text("one")}},
			CheckItem{Level: 2, Checked: true, Children: []Inline{Monospace{Child: Text("two")}}},
		}},
	}}
}

func TestInspect_Order(t *testing.T) {
	var kinds []string
	Inspect(sampleDocument(), func(n Node) bool {
		kinds = append(kinds, KindOf(n))
		return true
	})

	want := []string{
		"document",
		"heading", "text",
		"paragraph", "text", "soft_break", "bold", "italic", "text", "hard_break", "text",
		"blank_separator",
		"unordered_list", "normal_item", "text", "check_item", "monospace", "text",
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("Inspect order\n got: %v\nwant: %v", kinds, want)
	}
}

func TestInspect_SkipChildren(t *testing.T) {
	count := 0
	Inspect(sampleDocument(), func(n Node) bool {
		count++
		_, isPara := n.(Paragraph)
		return !isPara
	})
	// document, heading, text, paragraph, blank, list, 2 items, 2 texts, monospace
	if count != 11 {
		t.Errorf("expected 11 visited nodes, got %d", count)
	}
}

func TestInspect_NilSafe(t *testing.T) {
	Inspect(nil, func(Node) bool {
		t.Error("fn called for nil node")
		return true
	})

	var doc *Document
	if got := Children(doc); got != nil {
		t.Errorf("Children(nil *Document) = %v", got)
	}
	if got := Children(Bold{}); got != nil {
		t.Errorf("Children(Bold{}) = %v", got)
	}
}

func TestChildren_CompositeBlocks(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want []Node
	}{
		{
			name: "label key first",
			node: Label{Key: []Inline{Text("k")}, Children: []Inline{Text("v")}},
			want: []Node{Text("k"), Text("v")},
		},
		{
			name: "question before answer",
			node: QandA{Question: []Inline{Text("q")}, Answer: []Inline{Text("a")}},
			want: []Node{Text("q"), Text("a")},
		},
		{
			name: "table rows",
			node: Table{Rows: []TableRow{{Children: []Inline{Text("r1")}}}},
			want: []Node{TableRow{Children: []Inline{Text("r1")}}},
		},
		{
			name: "leaf",
			node: Video{ID: "x", Provider: Youtube},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Children(tt.node); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Children() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	inlines := []Inline{
		Text("Hello"), SoftBreak{}, Bold{Child: Text("big")}, HardBreak{},
		Link{Href: "https://example.org", Child: Text("world")},
		Image{Src: "x.png"},
	}
	if got := PlainText(inlines); got != "Hello big\nworld" {
		t.Errorf("PlainText() = %q", got)
	}
	if got := PlainText(nil); got != "" {
		t.Errorf("PlainText(nil) = %q", got)
	}
}

func TestHeadingLevelFromMarker(t *testing.T) {
	tests := []struct {
		n      int
		want   HeadingLevel
		wantOK bool
		name   string
	}{
		{1, Title, true, "title"},
		{2, Level1, true, "level1"},
		{3, Level2, true, "level2"},
		{4, Level3, true, "level3"},
		{5, Level4, true, "level4"},
		{0, 0, false, ""},
		{6, 0, false, ""},
	}

	for _, tt := range tests {
		got, ok := HeadingLevelFromMarker(tt.n)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("HeadingLevelFromMarker(%d) = %v, %v; want %v, %v", tt.n, got, ok, tt.want, tt.wantOK)
			continue
		}
		if ok {
			if got.Depth() != tt.n {
				t.Errorf("Depth() = %d, want %d", got.Depth(), tt.n)
			}
			if got.String() != tt.name {
				t.Errorf("String() = %q, want %q", got.String(), tt.name)
			}
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if Warning.String() != "warning" || FootnoteType(42).String() != "unknown" {
		t.Error("unexpected FootnoteType strings")
	}
	if Youtube.String() != "youtube" {
		t.Error("unexpected VideoProvider string")
	}
	if Positional([]string{"a", "b"}).Len() != 2 || Named(map[string]string{"a": "b"}).Len() != 1 {
		t.Error("unexpected attribute lengths")
	}
}
