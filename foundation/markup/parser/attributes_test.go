// File: attributes_test.go
// Title: Attribute List Tests
// Description: Tests for named and positional attribute lists and their
//              failure modes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial attribute test suite

package parser

import (
	"reflect"
	"testing"

	adocast "github.com/msto63/adoc/foundation/markup/ast"
)

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  adocast.Attributes
	}{
		{
			name:  "named",
			input: "[foo=bar,poe=fuga]",
			want:  adocast.Named{"foo": "bar", "poe": "fuga"},
		},
		{
			name:  "positional",
			input: "[foo,bar]",
			want:  adocast.Positional{"foo", "bar"},
		},
		{
			name:  "space after comma is discarded",
			input: "[foo=bar,  poe=fuga]",
			want:  adocast.Named{"foo": "bar", "poe": "fuga"},
		},
		{
			name:  "last duplicate key wins",
			input: "[a=1,a=2]",
			want:  adocast.Named{"a": "2"},
		},
		{
			name:  "positional keeps inner spaces and order",
			input: "[second one, first]",
			want:  adocast.Positional{"second one", "first"},
		},
		{
			name:  "single positional",
			input: "[youtube]",
			want:  adocast.Positional{"youtube"},
		},
		{
			name:  "multi-byte values",
			input: "[título=Übersicht]",
			want:  adocast.Named{"título": "Übersicht"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAttributes(tt.input)
			if err != nil {
				t.Fatalf("ParseAttributes(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseAttributes(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAttributes_Errors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantKind   ErrorKind
		wantColumn int
	}{
		{"unterminated named", "[foo=bar", UnexpectedEndOfInput, 9},
		{"unterminated positional", "[foo,", UnexpectedEndOfInput, 6},
		{"trailing content", "[foo,bar]x", StructuralMismatch, 10},
		{"empty list", "[]", StructuralMismatch, 2},
		{"empty value", "[foo=]", StructuralMismatch, 6},
		{"mixed forms", "[a=b,c]", StructuralMismatch, 7},
		{"no bracket", "foo", StructuralMismatch, 1},
		{"trailing comma", "[a,]", StructuralMismatch, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := ParseAttributes(tt.input)
			if err == nil {
				t.Fatalf("expected error, got %#v", attrs)
			}
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if pe.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", pe.Kind, tt.wantKind)
			}
			if pe.Line != 1 || pe.Column != tt.wantColumn {
				t.Errorf("position = %d:%d, want 1:%d", pe.Line, pe.Column, tt.wantColumn)
			}
		})
	}
}

func TestParser_ParseAttributesLimit(t *testing.T) {
	p := newTestParser(t, Options{MaxInputLength: 8})
	if _, err := p.ParseAttributes("[a=b]"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := p.ParseAttributes("[aaaa=bbbb]"); !IsKind(err, InputTooLarge) {
		t.Errorf("expected InputTooLarge, got %v", err)
	}
}
