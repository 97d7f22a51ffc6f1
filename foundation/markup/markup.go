// File: markup.go
// Title: Markup Engine
// Description: High-level API over the markup parser. Adds request IDs,
//              timing, file input and conversion of parse failures into
//              structured adoc errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial engine implementation

package markup

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/google/uuid"

	adocerror "github.com/msto63/adoc/foundation/core/error"
	adoclog "github.com/msto63/adoc/foundation/core/log"
	adocast "github.com/msto63/adoc/foundation/markup/ast"
	adocparser "github.com/msto63/adoc/foundation/markup/parser"
)

// Engine coordinates parsing of adoc documents
type Engine struct {
	parser  *adocparser.Parser
	logger  *adoclog.Logger
	options Options
}

// Options configures the markup engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *adoclog.Logger

	// MaxInputLength limits the document size in bytes (default: 1 MiB)
	MaxInputLength int

	// MaxNestingDepth limits nested formatting spans (default: 64)
	MaxNestingDepth int
}

// NewEngine creates a new markup engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger:          adoclog.GetDefault(),
		MaxInputLength:  adocparser.DefaultMaxInputLength,
		MaxNestingDepth: adocparser.DefaultMaxNestingDepth,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxInputLength > 0 {
			options.MaxInputLength = provided.MaxInputLength
		}
		if provided.MaxNestingDepth > 0 {
			options.MaxNestingDepth = provided.MaxNestingDepth
		}
	}

	logger := options.Logger.WithField("component", "markup-engine")

	p, err := adocparser.New(adocparser.Options{
		Logger:          options.Logger,
		MaxInputLength:  options.MaxInputLength,
		MaxNestingDepth: options.MaxNestingDepth,
	})
	if err != nil {
		return nil, adocerror.Wrap(err, "failed to initialize markup parser").
			WithCode(adocerror.CodeInvalidConfig)
	}

	logger.Debug("Markup engine initialized", adoclog.Fields{
		"maxInputLength":  options.MaxInputLength,
		"maxNestingDepth": options.MaxNestingDepth,
	})

	return &Engine{parser: p, logger: logger, options: options}, nil
}

// Options returns the effective engine options
func (e *Engine) Options() Options {
	return e.options
}

// Parse parses a document. Failures are *adocerror.Error values carrying
// the parse position in their details.
func (e *Engine) Parse(input string) (*adocast.Document, error) {
	return e.parse(input, "")
}

// ParseFile reads and parses the document at path
func (e *Engine) ParseFile(path string) (*adocast.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := adocerror.CodeIOError
		if errors.Is(err, fs.ErrNotExist) {
			code = adocerror.CodeNotFound
		}
		return nil, adocerror.Wrap(err, "failed to read document").
			WithCode(code).
			WithOperation("markup.ParseFile").
			WithDetail("file", path)
	}
	return e.parse(string(data), path)
}

// ParseReader reads r to the end and parses the content
func (e *Engine) ParseReader(r io.Reader) (*adocast.Document, error) {
	// read one byte past the limit so oversized input is still reported
	// by the parser with its usual error
	data, err := io.ReadAll(io.LimitReader(r, int64(e.options.MaxInputLength)+1))
	if err != nil {
		return nil, adocerror.Wrap(err, "failed to read document").
			WithCode(adocerror.CodeIOError).
			WithOperation("markup.ParseReader")
	}
	return e.parse(string(data), "")
}

// ParseAttributes parses a bracketed attribute list
func (e *Engine) ParseAttributes(input string) (adocast.Attributes, error) {
	attrs, err := e.parser.ParseAttributes(input)
	if err != nil {
		return nil, convertError(err, "markup.ParseAttributes")
	}
	return attrs, nil
}

func (e *Engine) parse(input, file string) (*adocast.Document, error) {
	requestID := uuid.New().String()
	logger := e.logger.WithRequestID(requestID)
	if file != "" {
		logger = logger.WithField("file", file)
	}

	timer := logger.StartTimer("markup_parse").WithField("bytes", len(input))
	doc, err := e.parser.Parse(input)
	if err != nil {
		adocErr := convertError(err, "markup.Parse").WithRequestID(requestID)
		if file != "" {
			adocErr = adocErr.WithDetail("file", file)
		}
		timer.StopWithError(adocErr)
		return nil, adocErr
	}

	timer.WithField("blocks", len(doc.Blocks)).Stop()
	return doc, nil
}

// convertError maps parser failures onto adoc error codes
func convertError(err error, operation string) *adocerror.Error {
	var pe *adocparser.ParseError
	if !errors.As(err, &pe) {
		return adocerror.Wrap(err, "markup processing failed").
			WithCode(adocerror.CodeInternal).
			WithOperation(operation)
	}

	return adocerror.Wrap(err, "markup parse failed").
		WithCode(codeForKind(pe.Kind)).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"kind":   pe.Kind.String(),
			"offset": pe.Offset,
			"line":   pe.Line,
			"column": pe.Column,
		})
}

func codeForKind(kind adocparser.ErrorKind) adocerror.Code {
	switch kind {
	case adocparser.UnexpectedEndOfInput:
		return adocerror.CodeMarkupUnexpectedEOF
	case adocparser.ResourceExhausted:
		return adocerror.CodeMarkupResourceExhausted
	case adocparser.InputTooLarge:
		return adocerror.CodeMarkupInputTooLarge
	default:
		return adocerror.CodeMarkupSyntax
	}
}

// Position extracts line and column from an error returned by the engine
func Position(err error) (line, column int, ok bool) {
	var pe *adocparser.ParseError
	if errors.As(err, &pe) {
		return pe.Line, pe.Column, true
	}
	return 0, 0, false
}

var (
	defaultEngine     *Engine
	defaultEngineErr  error
	defaultEngineOnce sync.Once
)

// Parse parses input with a shared engine built from default options
func Parse(input string) (*adocast.Document, error) {
	defaultEngineOnce.Do(func() {
		defaultEngine, defaultEngineErr = NewEngine()
	})
	if defaultEngineErr != nil {
		return nil, fmt.Errorf("default markup engine: %w", defaultEngineErr)
	}
	return defaultEngine.Parse(input)
}
