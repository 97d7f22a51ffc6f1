// File: attributes.go
// Title: Attribute List Grammar
// Description: Parses bracketed attribute lists into Named or Positional
//              attribute sets.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial attribute grammar

package parser

import (
	"strings"

	adocast "github.com/msto63/adoc/foundation/markup/ast"
)

const (
	namedStop      = "=],\n"
	positionalStop = "],\n="
)

// ParseAttributes parses a complete attribute list such as "[foo=bar]" or
// "[foo,bar]". The closing bracket must end the input.
func ParseAttributes(input string) (adocast.Attributes, error) {
	s := newScanner(input, DefaultMaxNestingDepth)
	attrs, err := s.attributes()
	if err == nil && !s.eof() {
		err = s.mismatch("unexpected content after attribute list")
	}
	if err != nil {
		return nil, err.(*ParseError).locate(input)
	}
	return attrs, nil
}

// attributes tries the named form first and falls back to the positional
// form. When both fail the failure that got further is reported.
func (s *scanner) attributes() (adocast.Attributes, error) {
	named, namedErr := attempt(s, s.namedAttributes)
	if namedErr == nil {
		return named, nil
	}
	positional, err := attempt(s, s.positionalAttributes)
	if err == nil {
		return positional, nil
	}
	return nil, farther(namedErr, err)
}

// namedAttributes parses "[k=v,k=v]". A repeated key keeps the last value.
func (s *scanner) namedAttributes() (adocast.Attributes, error) {
	if !s.consume("[") {
		return nil, s.expected("'['")
	}
	named := adocast.Named{}
	for {
		key := s.attributeToken(namedStop)
		if key == "" {
			return nil, s.expected("attribute name")
		}
		if !s.consume("=") {
			return nil, s.expected("'='")
		}
		value := s.attributeToken(namedStop)
		if value == "" {
			return nil, s.expected("attribute value")
		}
		named[key] = value

		if s.consume("]") {
			return named, nil
		}
		if !s.consume(",") {
			return nil, s.expected("',' or ']'")
		}
		s.skipBlank()
	}
}

// positionalAttributes parses "[a,b,c]"; tokens keep their inner spaces
func (s *scanner) positionalAttributes() (adocast.Attributes, error) {
	if !s.consume("[") {
		return nil, s.expected("'['")
	}
	var positional adocast.Positional
	for {
		token := s.attributeToken(positionalStop)
		if token == "" {
			return nil, s.expected("attribute")
		}
		positional = append(positional, token)

		if s.consume("]") {
			return positional, nil
		}
		if !s.consume(",") {
			return nil, s.expected("',' or ']'")
		}
		s.skipBlank()
	}
}

// attributeToken consumes a maximal run of bytes not in stop
func (s *scanner) attributeToken(stop string) string {
	start := s.pos
	for s.pos < len(s.src) && strings.IndexByte(stop, s.src[s.pos]) < 0 {
		s.pos++
	}
	return s.src[start:s.pos]
}

func (s *scanner) skipBlank() {
	for s.pos < len(s.src) && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t') {
		s.pos++
	}
}
