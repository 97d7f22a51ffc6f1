// File: inline.go
// Title: Inline Grammar
// Description: Text runs, formatted spans, inline code and line breaks,
//              plus the restricted inline variant used inside list items.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial inline grammar

package parser

import (
	adocast "github.com/msto63/adoc/foundation/markup/ast"
)

type inlineRule func(*scanner) (adocast.Inline, error)

// isSpecial reports whether c ends a text run
func isSpecial(c byte) bool {
	switch c {
	case '\n', '*', '_', '`', '#':
		return true
	}
	return false
}

// inline parses exactly one inline element
func (s *scanner) inline() (adocast.Inline, error) {
	return s.choose(
		(*scanner).text,
		(*scanner).bold,
		(*scanner).italic,
		(*scanner).marker,
		(*scanner).inlineCode,
		(*scanner).monospace,
		(*scanner).hardBreak,
		(*scanner).softBreak,
	)
}

// itemInline is the inline grammar of list items: no line breaks, no inline
// code and no marked text. A newline ends the item instead.
func (s *scanner) itemInline() (adocast.Inline, error) {
	return s.choose(
		(*scanner).itemText,
		(*scanner).itemBold,
		(*scanner).itemItalic,
		(*scanner).itemMonospace,
	)
}

// choose tries rules in order and falls back to a single character
func (s *scanner) choose(rules ...inlineRule) (adocast.Inline, error) {
	for _, rule := range rules {
		node, err := attempt(s, func() (adocast.Inline, error) { return rule(s) })
		if err == nil {
			return node, nil
		}
		if isFatal(err) {
			return nil, err
		}
	}
	return s.fallback()
}

// fallback turns any single character except a newline into text
func (s *scanner) fallback() (adocast.Inline, error) {
	if s.eof() {
		return nil, s.expected("inline content")
	}
	if s.peek() == '\n' {
		return nil, s.mismatch("line break cannot start inline content here")
	}
	return adocast.Text(s.nextRune()), nil
}

func (s *scanner) text() (adocast.Inline, error) {
	return s.textRun(true)
}

func (s *scanner) itemText() (adocast.Inline, error) {
	return s.textRun(false)
}

// textRun consumes a maximal run of ordinary characters. With stopAtBreak
// the run also ends before a " +\n" hard break.
func (s *scanner) textRun(stopAtBreak bool) (adocast.Inline, error) {
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isSpecial(c) || (stopAtBreak && c == ' ' && s.atHardBreak()) {
			break
		}
		s.pos++
	}
	if s.pos == start {
		return nil, s.mismatch("expected text")
	}
	return adocast.Text(s.src[start:s.pos]), nil
}

func (s *scanner) bold() (adocast.Inline, error) {
	child, err := s.emphasis("*", (*scanner).inline)
	if err != nil {
		return nil, err
	}
	return adocast.Bold{Child: child}, nil
}

func (s *scanner) italic() (adocast.Inline, error) {
	child, err := s.emphasis("_", (*scanner).inline)
	if err != nil {
		return nil, err
	}
	return adocast.Italic{Child: child}, nil
}

func (s *scanner) marker() (adocast.Inline, error) {
	child, err := s.emphasis("#", (*scanner).inline)
	if err != nil {
		return nil, err
	}
	return adocast.Marker{Child: child}, nil
}

func (s *scanner) itemBold() (adocast.Inline, error) {
	child, err := s.emphasis("*", (*scanner).itemInline)
	if err != nil {
		return nil, err
	}
	return adocast.Bold{Child: child}, nil
}

func (s *scanner) itemItalic() (adocast.Inline, error) {
	child, err := s.emphasis("_", (*scanner).itemInline)
	if err != nil {
		return nil, err
	}
	return adocast.Italic{Child: child}, nil
}

// emphasis skips leading spaces, then parses delim, one inner inline and
// the closing delim
func (s *scanner) emphasis(delim string, inner inlineRule) (adocast.Inline, error) {
	s.run(' ')
	return s.span(delim, inner)
}

func (s *scanner) inlineCode() (adocast.Inline, error) {
	child, err := s.span("```", (*scanner).inline)
	if err != nil {
		return nil, err
	}
	return adocast.InlineCode{Child: child}, nil
}

func (s *scanner) monospace() (adocast.Inline, error) {
	child, err := s.span("`", (*scanner).inline)
	if err != nil {
		return nil, err
	}
	return adocast.Monospace{Child: child}, nil
}

func (s *scanner) itemMonospace() (adocast.Inline, error) {
	child, err := s.span("`", (*scanner).itemInline)
	if err != nil {
		return nil, err
	}
	return adocast.Monospace{Child: child}, nil
}

// span parses delim, exactly one inner inline and delim again
func (s *scanner) span(delim string, inner inlineRule) (adocast.Inline, error) {
	if !s.consume(delim) {
		return nil, s.expected("'" + delim + "'")
	}
	if err := s.enter(); err != nil {
		return nil, err
	}
	child, err := inner(s)
	s.leave()
	if err != nil {
		return nil, err
	}
	if !s.consume(delim) {
		return nil, s.expected("closing '" + delim + "'")
	}
	return child, nil
}

// atHardBreak reports whether the input continues with " +\n" that is not
// the start of a blank separator
func (s *scanner) atHardBreak() bool {
	return s.hasPrefix(" +\n") && s.peekAt(3) != '\n'
}

func (s *scanner) hardBreak() (adocast.Inline, error) {
	if !s.atHardBreak() {
		return nil, s.mismatch("expected hard line break")
	}
	s.pos += len(" +\n")
	return adocast.HardBreak{}, nil
}

// softBreak matches a single newline; "\n\n" is left to the block level
func (s *scanner) softBreak() (adocast.Inline, error) {
	if s.peek() != '\n' || s.peekAt(1) == '\n' {
		return nil, s.mismatch("expected line break")
	}
	s.pos++
	return adocast.SoftBreak{}, nil
}
