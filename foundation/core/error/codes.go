// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the adoc toolchain for
//              structured error handling and CLI exit reporting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-15 v0.2.0: Markup parser codes, removed service and database codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeIOError      Code = "IO_ERROR"

	// Markup parsing
	CodeMarkupSyntax            Code = "MARKUP_SYNTAX"
	CodeMarkupUnexpectedEOF     Code = "MARKUP_UNEXPECTED_EOF"
	CodeMarkupResourceExhausted Code = "MARKUP_RESOURCE_EXHAUSTED"
	CodeMarkupInputTooLarge     Code = "MARKUP_INPUT_TOO_LARGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeIOError,
		CodeMarkupSyntax, CodeMarkupUnexpectedEOF, CodeMarkupResourceExhausted, CodeMarkupInputTooLarge,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeMarkupSyntax, CodeMarkupUnexpectedEOF, CodeMarkupResourceExhausted, CodeMarkupInputTooLarge:
		return "markup"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeIOError, CodeNotFound:
		return "io"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "markup":
		return 2
	case "configuration":
		return 3
	case "io":
		return 4
	default:
		return 1
	}
}
