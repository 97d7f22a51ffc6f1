// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so the logger can pick an
//              appropriate log level for each failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-15 v0.2.0: Severity mapping for markup codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad user input, e.g. malformed markup
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with an obvious workaround
	SeverityMedium

	// SeverityHigh indicates the requested operation could not run at all
	SeverityHigh

	// SeverityCritical indicates a broken installation or internal bug
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeIOError, CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeMarkupResourceExhausted:
		return SeverityHigh

	case CodeMarkupSyntax, CodeMarkupUnexpectedEOF, CodeMarkupInputTooLarge,
		CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
