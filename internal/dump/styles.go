// ============================================================================
// adoc - AsciiDoc-like markup toolkit
// ============================================================================
//
// Package:     dump
// Description: Styles for the colored tree dump
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package dump

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette - shared with the viewer TUI
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// treeStyles groups the styles used by the tree dump
type treeStyles struct {
	Block      lipgloss.Style
	Inline     lipgloss.Style
	Field      lipgloss.Style
	Text       lipgloss.Style
	Enumerator lipgloss.Style
}

func newTreeStyles(color bool) treeStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return treeStyles{
			Block:      plain,
			Inline:     plain,
			Field:      plain,
			Text:       plain,
			Enumerator: plain.PaddingRight(1),
		}
	}
	return treeStyles{
		Block:      lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		Inline:     lipgloss.NewStyle().Foreground(ColorSecondary),
		Field:      lipgloss.NewStyle().Foreground(ColorMuted),
		Text:       lipgloss.NewStyle().Foreground(ColorSuccess),
		Enumerator: lipgloss.NewStyle().Foreground(ColorTextDim).PaddingRight(1),
	}
}
