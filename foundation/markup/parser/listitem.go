// File: listitem.go
// Title: List Item Grammar
// Description: Marker runs, checkboxes and single-line item content for
//              ordered and unordered lists.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial list item grammar

package parser

import (
	adocast "github.com/msto63/adoc/foundation/markup/ast"
)

const (
	unorderedMarker = '*'
	orderedMarker   = '.'
)

// listItems parses one or more items sharing marker. Each item may be
// followed by one newline, so tight lists continue on the next line.
func (s *scanner) listItems(marker byte) ([]adocast.ListItem, error) {
	var items []adocast.ListItem
	for {
		item, err := attempt(s, func() (adocast.ListItem, error) { return s.listItem(marker) })
		if err != nil {
			if isFatal(err) || len(items) == 0 {
				return nil, err
			}
			return items, nil
		}
		items = append(items, item)
		s.lineEnd()
	}
}

// listItem tries a checklist item before a normal item
func (s *scanner) listItem(marker byte) (adocast.ListItem, error) {
	item, err := attempt(s, func() (adocast.ListItem, error) { return s.checkItem(marker) })
	if err == nil || isFatal(err) {
		return item, err
	}
	return s.normalItem(marker)
}

func (s *scanner) normalItem(marker byte) (adocast.ListItem, error) {
	level, err := s.itemMarker(marker)
	if err != nil {
		return nil, err
	}
	children, err := s.itemContent()
	if err != nil {
		return nil, err
	}
	return adocast.NormalItem{Children: children, Level: level}, nil
}

// checkItem parses "[ ]", "[x]" or "[*]" after the marker
func (s *scanner) checkItem(marker byte) (adocast.ListItem, error) {
	level, err := s.itemMarker(marker)
	if err != nil {
		return nil, err
	}
	if !s.consume("[") {
		return nil, s.expected("'['")
	}
	state := s.peek()
	if state != ' ' && state != 'x' && state != '*' {
		return nil, s.expected("checkbox state")
	}
	s.pos++
	if !s.consume("]") {
		return nil, s.expected("']'")
	}
	s.run(' ')

	children, err := s.itemContent()
	if err != nil {
		return nil, err
	}
	return adocast.CheckItem{Children: children, Level: level, Checked: state != ' '}, nil
}

// itemMarker consumes the marker run and at least one space. The run
// length is the item level.
func (s *scanner) itemMarker(marker byte) (int, error) {
	level := s.run(marker)
	if level == 0 {
		return 0, s.expected("list marker '" + string(marker) + "'")
	}
	if s.run(' ') == 0 {
		return 0, s.expected("space after list marker")
	}
	return level, nil
}

// itemContent parses restricted inlines up to the end of the line
func (s *scanner) itemContent() ([]adocast.Inline, error) {
	var children []adocast.Inline
	for !s.eof() && s.peek() != '\n' {
		node, err := s.itemInline()
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	if len(children) == 0 {
		return nil, s.expected("list item content")
	}
	return children, nil
}

// lineEnd consumes a single newline unless it starts a blank separator
func (s *scanner) lineEnd() {
	if s.peek() == '\n' && s.peekAt(1) != '\n' {
		s.pos++
	}
}
