// File: enums.go
// Title: Markup AST Enumerations
// Description: Heading levels, footnote kinds and video providers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial enumerations

package ast

// MaxHeadingMarker is the longest run of '=' that still forms a heading
const MaxHeadingMarker = 5

// HeadingLevel is the level of a section heading
type HeadingLevel int

const (
	Title HeadingLevel = iota // =
	Level1                    // ==
	Level2                    // ===
	Level3                    // ====
	Level4                    // =====
)

// HeadingLevelFromMarker maps the length of a '=' run to a heading level.
// ok is false for runs outside 1..MaxHeadingMarker.
func HeadingLevelFromMarker(n int) (level HeadingLevel, ok bool) {
	if n < 1 || n > MaxHeadingMarker {
		return 0, false
	}
	return HeadingLevel(n - 1), true
}

// Depth returns the number of '=' characters that introduce the level
func (l HeadingLevel) Depth() int {
	return int(l) + 1
}

func (l HeadingLevel) String() string {
	switch l {
	case Title:
		return "title"
	case Level1:
		return "level1"
	case Level2:
		return "level2"
	case Level3:
		return "level3"
	case Level4:
		return "level4"
	default:
		return "unknown"
	}
}

// FootnoteType classifies admonition footnotes
type FootnoteType int

const (
	Note FootnoteType = iota
	Tip
	Important
	Warning
	Caution
)

func (f FootnoteType) String() string {
	switch f {
	case Note:
		return "note"
	case Tip:
		return "tip"
	case Important:
		return "important"
	case Warning:
		return "warning"
	case Caution:
		return "caution"
	default:
		return "unknown"
	}
}

// VideoProvider is the hosting service of an embedded video
type VideoProvider int

const (
	Youtube VideoProvider = iota
)

func (v VideoProvider) String() string {
	switch v {
	case Youtube:
		return "youtube"
	default:
		return "unknown"
	}
}
