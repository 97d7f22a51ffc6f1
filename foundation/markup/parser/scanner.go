// File: scanner.go
// Title: Markup Parser Cursor
// Description: Byte cursor over the input with mark/reset backtracking,
//              nesting depth accounting and failure constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial cursor implementation

package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// scanner holds the state of a single parse. All delimiters of the grammar
// are ASCII, so the cursor moves over bytes; multi-byte runes only ever
// appear inside text runs or the single-character fallback, which both keep
// whole runes.
type scanner struct {
	src      string
	pos      int
	depth    int
	maxDepth int
}

func newScanner(src string, maxDepth int) *scanner {
	return &scanner{src: src, maxDepth: maxDepth}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// peek returns the current byte, or 0 at end of input
func (s *scanner) peek() byte {
	return s.peekAt(0)
}

func (s *scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.src) {
		return 0
	}
	return s.src[s.pos+n]
}

func (s *scanner) hasPrefix(prefix string) bool {
	return strings.HasPrefix(s.src[s.pos:], prefix)
}

// consume advances past prefix if the input continues with it
func (s *scanner) consume(prefix string) bool {
	if !s.hasPrefix(prefix) {
		return false
	}
	s.pos += len(prefix)
	return true
}

// run consumes a maximal run of c and returns its length
func (s *scanner) run(c byte) int {
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] == c {
		s.pos++
	}
	return s.pos - start
}

// nextRune consumes one rune and returns its source text
func (s *scanner) nextRune() string {
	_, size := utf8.DecodeRuneInString(s.src[s.pos:])
	start := s.pos
	s.pos += size
	return s.src[start:s.pos]
}

func (s *scanner) mark() int {
	return s.pos
}

func (s *scanner) reset(mark int) {
	s.pos = mark
}

// enter increases the span nesting depth
func (s *scanner) enter() error {
	if s.depth >= s.maxDepth {
		return &ParseError{
			Kind:    ResourceExhausted,
			Offset:  s.pos,
			Message: fmt.Sprintf("formatting nested deeper than %d levels", s.maxDepth),
		}
	}
	s.depth++
	return nil
}

func (s *scanner) leave() {
	s.depth--
}

func (s *scanner) mismatch(format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: StructuralMismatch, Offset: s.pos, Message: fmt.Sprintf(format, args...)}
}

// expected reports a missing token: at end of input the construct is
// unterminated, otherwise something else stands in its place
func (s *scanner) expected(what string) *ParseError {
	if s.eof() {
		return &ParseError{
			Kind:    UnexpectedEndOfInput,
			Offset:  s.pos,
			Message: "unexpected end of input, expected " + what,
		}
	}
	_, size := utf8.DecodeRuneInString(s.src[s.pos:])
	return s.mismatch("expected %s, found %q", what, s.src[s.pos:s.pos+size])
}

// attempt runs rule from the current position. A recoverable failure
// rewinds the cursor; fatal failures leave it where they happened.
func attempt[T any](s *scanner, rule func() (T, error)) (T, error) {
	mark := s.mark()
	v, err := rule()
	if err != nil && !isFatal(err) {
		s.reset(mark)
	}
	return v, err
}

// farther picks the failure that got furthest into the input
func farther(a, b error) error {
	pa, okA := a.(*ParseError)
	pb, okB := b.(*ParseError)
	if okA && okB && pa.Offset > pb.Offset {
		return a
	}
	return b
}
