// Package log provides structured logging for the adoc toolchain.
//
// Package: log
// Title: adoc Structured Logging Framework
// Description: Implements a small structured logger with levels, contextual
//              fields, request IDs, JSON/text/console output and a timer for
//              measuring operations. Integrates with the error package so that
//              structured errors are logged with their code and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-15 v0.2.0: Synchronous writer only, dropped audit level and logfmt
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatText).
//		WithField("component", "markup-parser")
//
//	logger.Debug("block parsed", log.Fields{"kind": "heading", "offset": 42})
//
//	timer := logger.StartTimer("parse")
//	// ... parse the document
//	timer.Stop()
package log
