// Package error provides structured error handling for the adoc toolchain.
//
// Package: error
// Title: adoc Error Handling Framework
// Description: Implements a structured error type carrying a code, a severity,
//              the failing operation and free-form details. Parser failures,
//              configuration problems and I/O errors are all reported through
//              this type so that the CLI and the logger can classify them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-15 v0.2.0: Markup error codes, dropped i18n and stack trace pooling
//
// Usage:
//
//	err := error.New("unterminated attribute list").
//		WithCode(error.CodeMarkupUnexpectedEOF).
//		WithDetail("line", 3).
//		WithOperation("parser.ParseAttributes")
//
//	if error.HasCode(err, error.CodeMarkupUnexpectedEOF) {
//		// ask the user to close the bracket
//	}
package error
