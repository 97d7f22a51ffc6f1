// File: parser.go
// Title: Markup Document Parser
// Description: Document driver: validates the input, strips leading blank
//              space and applies the block grammar until the input is
//              exhausted.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strings"

	adoclog "github.com/msto63/adoc/foundation/core/log"
	adocast "github.com/msto63/adoc/foundation/markup/ast"
)

const (
	// DefaultMaxInputLength is used when Options.MaxInputLength is zero
	DefaultMaxInputLength = 1 << 20
	// DefaultMaxNestingDepth is used when Options.MaxNestingDepth is zero
	DefaultMaxNestingDepth = 64
)

// Parser parses adoc markup. It is immutable after New.
type Parser struct {
	logger  *adoclog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger          *adoclog.Logger
	MaxInputLength  int
	MaxNestingDepth int
}

// New creates a new markup parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.MaxInputLength < 0 {
		return nil, fmt.Errorf("invalid max input length: %d", opts.MaxInputLength)
	}
	if opts.MaxNestingDepth < 0 {
		return nil, fmt.Errorf("invalid max nesting depth: %d", opts.MaxNestingDepth)
	}

	if opts.Logger == nil {
		opts.Logger = adoclog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxNestingDepth == 0 {
		opts.MaxNestingDepth = DefaultMaxNestingDepth
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "markup-parser"),
		options: opts,
	}, nil
}

// Options returns the effective options, defaults applied
func (p *Parser) Options() Options {
	return p.options
}

// Parse parses a complete document. On failure it returns a *ParseError
// and no partial document.
func (p *Parser) Parse(input string) (*adocast.Document, error) {
	if len(input) > p.options.MaxInputLength {
		err := &ParseError{
			Kind:   InputTooLarge,
			Offset: p.options.MaxInputLength,
			Message: fmt.Sprintf("input exceeds maximum length: %d > %d",
				len(input), p.options.MaxInputLength),
		}
		return nil, err.locate(input)
	}

	p.logger.Debug("Starting markup parsing", adoclog.Fields{
		"length": len(input),
	})

	doc, err := parseDocument(input, p.options.MaxNestingDepth)
	if err != nil {
		p.logger.Warn("Markup parsing failed", adoclog.Fields{
			"error": err.Error(),
			"kind":  err.Kind.String(),
		})
		return nil, err
	}

	p.logger.Debug("Markup parsing completed successfully", adoclog.Fields{
		"length": len(input),
		"blocks": len(doc.Blocks),
	})
	return doc, nil
}

// ParseAttributes parses an attribute list with the parser's limits
func (p *Parser) ParseAttributes(input string) (adocast.Attributes, error) {
	if len(input) > p.options.MaxInputLength {
		err := &ParseError{
			Kind:    InputTooLarge,
			Offset:  p.options.MaxInputLength,
			Message: "attribute list exceeds maximum length",
		}
		return nil, err.locate(input)
	}
	return ParseAttributes(input)
}

func parseDocument(input string, maxDepth int) (*adocast.Document, *ParseError) {
	s := newScanner(input, maxDepth)
	s.pos = len(input) - len(strings.TrimLeft(input, " \n"))

	doc := &adocast.Document{}
	if s.eof() {
		// nothing but blank space: keep a blank line if there was one
		if strings.Contains(input, "\n\n") {
			doc.Blocks = []adocast.Block{adocast.BlankSeparator{}}
		}
		return doc, nil
	}

	for !s.eof() {
		b, err := s.block()
		if err != nil {
			return nil, err.(*ParseError).locate(input)
		}
		doc.Blocks = append(doc.Blocks, b)
	}
	return doc, nil
}
