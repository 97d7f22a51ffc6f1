// File: markup_test.go
// Title: Markup Engine Tests
// Description: Tests for engine construction, file input, error conversion,
//              request IDs and document statistics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial engine test suite

package markup

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	adocerror "github.com/msto63/adoc/foundation/core/error"
	adoclog "github.com/msto63/adoc/foundation/core/log"
	adocast "github.com/msto63/adoc/foundation/markup/ast"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = adoclog.Discard()
	}
	engine, err := NewEngine(opts)
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return engine
}

func TestNewEngine_Defaults(t *testing.T) {
	engine := newTestEngine(t, Options{})
	opts := engine.Options()
	if opts.MaxInputLength != 1<<20 {
		t.Errorf("MaxInputLength = %d", opts.MaxInputLength)
	}
	if opts.MaxNestingDepth != 64 {
		t.Errorf("MaxNestingDepth = %d", opts.MaxNestingDepth)
	}
}

func TestEngine_ParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		input    string
		wantCode adocerror.Code
	}{
		{
			name:     "too large",
			opts:     Options{MaxInputLength: 3},
			input:    "four",
			wantCode: adocerror.CodeMarkupInputTooLarge,
		},
		{
			name:     "too deep",
			opts:     Options{MaxNestingDepth: 4},
			input:    strings.Repeat("_", 10),
			wantCode: adocerror.CodeMarkupResourceExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t, tt.opts)
			_, err := engine.Parse(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !adocerror.HasCode(err, tt.wantCode) {
				t.Errorf("code = %v, want %v", adocerror.GetCode(err), tt.wantCode)
			}

			adocErr, ok := err.(*adocerror.Error)
			if !ok {
				t.Fatalf("expected *adocerror.Error, got %T", err)
			}
			if _, err := uuid.Parse(adocErr.RequestID()); err != nil {
				t.Errorf("request ID %q is not a UUID", adocErr.RequestID())
			}
			if line, ok := adocErr.Detail("line"); !ok || line != 1 {
				t.Errorf("line detail = %v", line)
			}
			if l, c, ok := Position(err); !ok || l != 1 || c < 1 {
				t.Errorf("Position() = %d, %d, %v", l, c, ok)
			}
		})
	}
}

func TestEngine_ParseAttributes(t *testing.T) {
	engine := newTestEngine(t, Options{})

	attrs, err := engine.ParseAttributes("[width=100,height=50]")
	if err != nil {
		t.Fatalf("ParseAttributes() error: %v", err)
	}
	if named, ok := attrs.(adocast.Named); !ok || named["height"] != "50" {
		t.Errorf("unexpected attributes %#v", attrs)
	}

	_, err = engine.ParseAttributes("[width=100")
	if !adocerror.HasCode(err, adocerror.CodeMarkupUnexpectedEOF) {
		t.Errorf("expected unexpected EOF code, got %v", adocerror.GetCode(err))
	}
}

func TestEngine_ParseFile(t *testing.T) {
	engine := newTestEngine(t, Options{})
	dir := t.TempDir()

	path := filepath.Join(dir, "doc.adoc")
	if err := os.WriteFile(path, []byte("= Title\n\nHello *world*\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc, err := engine.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(doc.Blocks) != 3 {
		t.Errorf("expected 3 blocks, got %d: %#v", len(doc.Blocks), doc.Blocks)
	}

	_, err = engine.ParseFile(filepath.Join(dir, "missing.adoc"))
	if !adocerror.HasCode(err, adocerror.CodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", adocerror.GetCode(err))
	}
}

func TestEngine_ParseReader(t *testing.T) {
	engine := newTestEngine(t, Options{MaxInputLength: 8})

	doc, err := engine.ParseReader(strings.NewReader("* a\n* b"))
	if err != nil {
		t.Fatalf("ParseReader() error: %v", err)
	}
	if _, ok := doc.Blocks[0].(adocast.UnorderedList); !ok {
		t.Errorf("expected list, got %#v", doc.Blocks[0])
	}

	_, err = engine.ParseReader(strings.NewReader(strings.Repeat("x", 100)))
	if !adocerror.HasCode(err, adocerror.CodeMarkupInputTooLarge) {
		t.Errorf("expected input too large, got %v", err)
	}
}

func TestEngine_LogsRequestID(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := adoclog.NewWithConfig(adoclog.Config{
		Level:  adoclog.LevelDebug,
		Format: adoclog.FormatJSON,
		Output: buf,
	})
	engine := newTestEngine(t, Options{Logger: logger})

	if _, err := engine.Parse("text"); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"request_id"`) || !strings.Contains(out, "markup_parse completed") {
		t.Errorf("expected timed parse entry with request id:\n%s", out)
	}
}

func TestCollectStats(t *testing.T) {
	engine := newTestEngine(t, Options{})
	doc, err := engine.Parse("= Title\n\n*_a_* and b\n\n* one\n* [x] two\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	stats := engine.Stats(doc)
	checks := map[string][2]int{
		"blocks":     {stats.Blocks, 5},
		"headings":   {stats.Headings, 1},
		"paragraphs": {stats.Paragraphs, 1},
		"lists":      {stats.Lists, 1},
		"list items": {stats.ListItems, 2},
		"max depth":  {stats.MaxDepth, 4},
		// heading text, bold, italic, a, " and b", two item texts
		"inlines": {stats.Inlines, 7},
	}
	for name, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s = %d, want %d", name, c[0], c[1])
		}
	}
	if stats.ByKind["blank_separator"] != 2 || stats.ByKind["check_item"] != 1 {
		t.Errorf("unexpected ByKind: %v", stats.ByKind)
	}

	empty := CollectStats(nil)
	if empty.Blocks != 0 || empty.ByKind == nil {
		t.Errorf("unexpected stats for nil document: %+v", empty)
	}
}

func TestParse_DefaultEngine(t *testing.T) {
	doc, err := Parse("== Hello")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := adocast.Heading{Level: adocast.Level1, Children: []adocast.Inline{adocast.Text("Hello")}}
	if len(doc.Blocks) != 1 || !reflect.DeepEqual(doc.Blocks[0], adocast.Block(want)) {
		t.Errorf("Parse() = %#v", doc.Blocks)
	}
}
