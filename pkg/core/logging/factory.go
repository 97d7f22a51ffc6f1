// ============================================================================
// adoc - AsciiDoc-like markup toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	adoclog "github.com/msto63/adoc/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json", "text" or "console" (default: console)
	Format string

	// Output defaults to stderr so that stdout stays free for documents
	Output io.Writer

	// Additional outputs (besides Output)
	AdditionalOutputs []io.Writer

	// DisableColors turns off ANSI colors of the console format
	DisableColors bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "console",
	}
}

// NewLogger creates a new foundation logger
func NewLogger(cfg LoggerConfig) *adoclog.Logger {
	// Determine log level
	level := parseLevel(cfg.Level)

	// Build output writer
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	// Add additional outputs if specified
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	// Determine format
	format, err := adoclog.ParseFormat(cfg.Format)
	if err != nil {
		format = adoclog.FormatConsole
	}

	logger := adoclog.NewWithConfig(adoclog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})
	if format == adoclog.FormatConsole && cfg.DisableColors {
		logger = logger.WithFormat(adoclog.FormatText)
	}
	return logger
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *adoclog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// parseLevel converts a string level to adoclog.Level, falling back to
// info for unknown names
func parseLevel(level string) adoclog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return adoclog.LevelTrace
	case "debug":
		return adoclog.LevelDebug
	case "info":
		return adoclog.LevelInfo
	case "warn", "warning":
		return adoclog.LevelWarn
	case "error":
		return adoclog.LevelError
	case "fatal":
		return adoclog.LevelFatal
	default:
		return adoclog.LevelInfo
	}
}
