// File: nodes.go
// Title: Markup AST Node Definitions
// Description: Defines the block, inline, list item and attribute node types
//              of the document tree as sealed interfaces over value types.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial AST node definitions

package ast

// Node is implemented by every element of the document tree
type Node interface {
	node()
}

// Block is a structural unit of a document
type Block interface {
	Node
	blockNode()
}

// Inline is a run-level unit inside a block
type Inline interface {
	Node
	inlineNode()
}

// ListItem is an entry of an ordered or unordered list
type ListItem interface {
	Node
	listItemNode()

	// ItemLevel is the nesting level, the length of the marker run (>= 1)
	ItemLevel() int

	// Content returns the inline children of the item
	Content() []Inline
}

// Attributes is a bracketed attribute set, either Positional or Named
type Attributes interface {
	attributesNode()
	Len() int
}

// Document is the result of parsing: an ordered sequence of blocks
type Document struct {
	Blocks []Block
}

// Blocks

type (
	// Paragraph is a run of inline content up to a blank separator
	Paragraph struct {
		Children []Inline
	}

	// Heading is a section title. ID is nil unless set by an extension.
	Heading struct {
		Level    HeadingLevel
		Children []Inline
		ID       *string
	}

	// HorizontalRule is a thematic break
	HorizontalRule struct{}

	// PageBreak forces a new page in paged output
	PageBreak struct{}

	// UnorderedList holds items introduced by '*'
	UnorderedList struct {
		Items []ListItem
	}

	// OrderedList holds items introduced by '.'
	OrderedList struct {
		Items []ListItem
	}

	// Label is a labelled (description list) entry
	Label struct {
		Children []Inline
		Key      []Inline
	}

	// QandA is a question and answer pair
	QandA struct {
		Question []Inline
		Answer   []Inline
	}

	// CodeBlock is a listing with optional title and file type
	CodeBlock struct {
		Children []Inline
		Title    *string
		FileType *string
	}

	// GenericBlock is a delimited block with an optional inline title.
	// A nil Title means the block has no title.
	GenericBlock struct {
		Children []Inline
		Title    []Inline
	}

	// Table is a titled grid of rows under named columns
	Table struct {
		Columns []TableColumn
		Rows    []TableRow
		Title   *string
	}

	// BlankSeparator is an empty line between blocks. It is kept in the
	// tree so that renderers decide how to collapse vertical space.
	BlankSeparator struct{}
)

// TableColumn names one column of a Table
type TableColumn struct {
	Name string
}

// TableRow is one row of a Table
type TableRow struct {
	Children []Inline
}

func (Document) node()       {}
func (Paragraph) node()      {}
func (Heading) node()        {}
func (HorizontalRule) node() {}
func (PageBreak) node()      {}
func (UnorderedList) node()  {}
func (OrderedList) node()    {}
func (Label) node()          {}
func (QandA) node()          {}
func (CodeBlock) node()      {}
func (GenericBlock) node()   {}
func (Table) node()          {}
func (BlankSeparator) node() {}
func (TableRow) node()       {}

func (Paragraph) blockNode()      {}
func (Heading) blockNode()        {}
func (HorizontalRule) blockNode() {}
func (PageBreak) blockNode()      {}
func (UnorderedList) blockNode()  {}
func (OrderedList) blockNode()    {}
func (Label) blockNode()          {}
func (QandA) blockNode()          {}
func (CodeBlock) blockNode()      {}
func (GenericBlock) blockNode()   {}
func (Table) blockNode()          {}
func (BlankSeparator) blockNode() {}

// Inlines

type (
	// Text is a run of literal characters
	Text string

	// SoftBreak is a line wrap inside a paragraph
	SoftBreak struct{}

	// HardBreak is an explicit line break (" +" at the end of a line)
	HardBreak struct{}

	Literal struct {
		Child Inline
	}

	Footnote struct {
		Kind  FootnoteType
		Child Inline
	}

	Lead struct {
		Child Inline
	}

	// Bold is *strong* text
	Bold struct {
		Child Inline
	}

	// Italic is _emphasized_ text
	Italic struct {
		Child Inline
	}

	// Monospace is `monospaced` text
	Monospace struct {
		Child Inline
	}

	// Marker is #highlighted# text
	Marker struct {
		Child Inline
	}

	Underline struct {
		Child Inline
	}

	Strikethrough struct {
		Child Inline
	}

	Big struct {
		Child Inline
	}

	Link struct {
		Href  string
		Child Inline
	}

	Mail struct {
		To    string
		Child Inline
	}

	Image struct {
		Src     string
		Caption *string
	}

	InlineImage struct {
		Src     string
		Caption *string
	}

	Video struct {
		ID       string
		Provider VideoProvider
	}

	// InlineCode is ```code``` delimited by three backticks
	InlineCode struct {
		Child Inline
	}

	// Macro is a kind:id[attributes] reference. No grammar rule emits it
	// yet.
	Macro struct {
		Attributes Attributes
		Kind       string
		ID         string
	}
)

func (Text) node()          {}
func (SoftBreak) node()     {}
func (HardBreak) node()     {}
func (Literal) node()       {}
func (Footnote) node()      {}
func (Lead) node()          {}
func (Bold) node()          {}
func (Italic) node()        {}
func (Monospace) node()     {}
func (Marker) node()        {}
func (Underline) node()     {}
func (Strikethrough) node() {}
func (Big) node()           {}
func (Link) node()          {}
func (Mail) node()          {}
func (Image) node()         {}
func (InlineImage) node()   {}
func (Video) node()         {}
func (InlineCode) node()    {}
func (Macro) node()         {}

func (Text) inlineNode()          {}
func (SoftBreak) inlineNode()     {}
func (HardBreak) inlineNode()     {}
func (Literal) inlineNode()       {}
func (Footnote) inlineNode()      {}
func (Lead) inlineNode()          {}
func (Bold) inlineNode()          {}
func (Italic) inlineNode()        {}
func (Monospace) inlineNode()     {}
func (Marker) inlineNode()        {}
func (Underline) inlineNode()     {}
func (Strikethrough) inlineNode() {}
func (Big) inlineNode()           {}
func (Link) inlineNode()          {}
func (Mail) inlineNode()          {}
func (Image) inlineNode()         {}
func (InlineImage) inlineNode()   {}
func (Video) inlineNode()         {}
func (InlineCode) inlineNode()    {}
func (Macro) inlineNode()         {}

// List items

type (
	// NormalItem is a plain list entry
	NormalItem struct {
		Children []Inline
		Level    int
	}

	// CheckItem is a checklist entry, "[x]", "[*]" or "[ ]"
	CheckItem struct {
		Children []Inline
		Level    int
		Checked  bool
	}
)

func (NormalItem) node()         {}
func (CheckItem) node()          {}
func (NormalItem) listItemNode() {}
func (CheckItem) listItemNode()  {}

func (i NormalItem) ItemLevel() int    { return i.Level }
func (i CheckItem) ItemLevel() int     { return i.Level }
func (i NormalItem) Content() []Inline { return i.Children }
func (i CheckItem) Content() []Inline  { return i.Children }

// Attribute sets

type (
	// Positional is an ordered list of bare attribute tokens
	Positional []string

	// Named maps attribute keys to values; keys are unique
	Named map[string]string
)

func (Positional) attributesNode() {}
func (Named) attributesNode()      {}

func (p Positional) Len() int { return len(p) }
func (n Named) Len() int      { return len(n) }
