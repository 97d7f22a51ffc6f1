// File: block.go
// Title: Block Grammar
// Description: Ordered choice over headings, horizontal rules, lists,
//              paragraphs and blank separators.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial block grammar

package parser

import (
	adocast "github.com/msto63/adoc/foundation/markup/ast"
)

type blockRule func(*scanner) (adocast.Block, error)

// block parses the next block. The order matters: structural blocks come
// before the paragraph, which accepts nearly anything.
func (s *scanner) block() (adocast.Block, error) {
	rules := [...]blockRule{
		(*scanner).heading,
		(*scanner).horizontalRule,
		(*scanner).orderedList,
		(*scanner).unorderedList,
		(*scanner).paragraph,
		(*scanner).blankSeparator,
	}

	var failure error
	for _, rule := range rules {
		b, err := attempt(s, func() (adocast.Block, error) { return rule(s) })
		if err == nil {
			return b, nil
		}
		if isFatal(err) {
			return nil, err
		}
		if failure == nil {
			failure = err
		} else {
			failure = farther(failure, err)
		}
	}
	return nil, failure
}

// heading parses a '=' run, spaces and one inline. Runs longer than
// MaxHeadingMarker are literal text and yield a paragraph instead.
func (s *scanner) heading() (adocast.Block, error) {
	start := s.pos
	depth := s.run('=')
	if depth == 0 {
		return nil, s.expected("'='")
	}
	if s.run(' ') == 0 {
		return nil, s.expected("space after heading marker")
	}
	marker := s.src[start:s.pos]

	content, err := s.inline()
	if err != nil {
		return nil, err
	}
	s.lineEnd()

	level, ok := adocast.HeadingLevelFromMarker(depth)
	if !ok {
		return adocast.Paragraph{Children: []adocast.Inline{adocast.Text(marker), content}}, nil
	}
	return adocast.Heading{Level: level, Children: []adocast.Inline{content}}, nil
}

func (s *scanner) horizontalRule() (adocast.Block, error) {
	if !s.consume("<<<") {
		return nil, s.expected("'<<<'")
	}
	s.lineEnd()
	return adocast.HorizontalRule{}, nil
}

func (s *scanner) orderedList() (adocast.Block, error) {
	items, err := s.listItems(orderedMarker)
	if err != nil {
		return nil, err
	}
	return adocast.OrderedList{Items: items}, nil
}

func (s *scanner) unorderedList() (adocast.Block, error) {
	items, err := s.listItems(unorderedMarker)
	if err != nil {
		return nil, err
	}
	return adocast.UnorderedList{Items: items}, nil
}

// paragraph collects inlines until none matches, which happens at a blank
// separator or at the end of input
func (s *scanner) paragraph() (adocast.Block, error) {
	var children []adocast.Inline
	for !s.eof() {
		node, err := s.inline()
		if err != nil {
			if isFatal(err) || len(children) == 0 {
				return nil, err
			}
			break
		}
		children = append(children, node)
	}
	if len(children) == 0 {
		return nil, s.expected("paragraph content")
	}
	return adocast.Paragraph{Children: children}, nil
}

func (s *scanner) blankSeparator() (adocast.Block, error) {
	if !s.consume("\n\n") {
		return nil, s.expected("blank line")
	}
	return adocast.BlankSeparator{}, nil
}
