// File: errors.go
// Title: Markup Parse Errors
// Description: ParseError and its kinds, with byte offset and line/column
//              position of the failure.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial error types

package parser

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrorKind classifies a parse failure
type ErrorKind int

const (
	// StructuralMismatch means no alternative matches at the position
	StructuralMismatch ErrorKind = iota
	// UnexpectedEndOfInput means an opened construct ran out of input
	UnexpectedEndOfInput
	// ResourceExhausted means formatted spans nest deeper than allowed
	ResourceExhausted
	// InputTooLarge means the input exceeds Options.MaxInputLength
	InputTooLarge
)

func (k ErrorKind) String() string {
	switch k {
	case StructuralMismatch:
		return "structural_mismatch"
	case UnexpectedEndOfInput:
		return "unexpected_end_of_input"
	case ResourceExhausted:
		return "resource_exhausted"
	case InputTooLarge:
		return "input_too_large"
	default:
		return "unknown"
	}
}

// ParseError represents a parsing error with position information.
// Line and Column are 1-based; Column counts runes, not bytes.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Offset  int
	Line    int
	Column  int
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", pe.Line, pe.Column, pe.Message)
}

// IsKind reports whether err is a ParseError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == kind
}

// fatal errors abort the whole parse; backtracking never recovers them
func isFatal(err error) bool {
	pe, ok := err.(*ParseError)
	return ok && (pe.Kind == ResourceExhausted || pe.Kind == InputTooLarge)
}

// locate fills Line and Column from Offset
func (pe *ParseError) locate(src string) *ParseError {
	offset := pe.Offset
	if offset > len(src) {
		offset = len(src)
	}
	line, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	pe.Line = line
	pe.Column = utf8.RuneCountInString(src[lineStart:offset]) + 1
	return pe
}
