// File: doc.go
// Title: Markup Parser Package Documentation
// Description: Recursive descent parser that turns adoc markup into the
//              document tree of package ast.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial parser implementation

/*
Package parser converts adoc markup text into an ast.Document.

The grammar is an ordered choice at every level. Each alternative runs from a
saved cursor position; when it fails the cursor is restored and the next
alternative is tried. The block level tries, in order:

  • heading          "=" .. "=====" followed by spaces and one inline
  • horizontal rule  "<<<"
  • ordered list     items introduced by "."
  • unordered list   items introduced by "*"
  • paragraph        one or more inlines
  • blank separator  exactly "\n\n"

The inline level tries a maximal text run, the formatted spans *bold*,
_italic_ and #marked#, ```inline code``` before `monospace`, then hard and
soft line breaks, and finally accepts any single character other than a
newline as text. Because of that last rule every non-blank line reduces to
some paragraph, so hard failures are rare. The nesting depth of formatted
spans is bounded by Options.MaxNestingDepth; exceeding it aborts the parse
with a ResourceExhausted error that no alternative can recover from.

A Parser is immutable after New. Every call to Parse works on its own cursor
state, so one Parser may be shared between goroutines.
*/
package parser
