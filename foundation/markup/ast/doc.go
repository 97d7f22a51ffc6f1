// File: doc.go
// Title: Markup Abstract Syntax Tree Package Documentation
// Description: Defines the document tree produced by the markup parser:
//              blocks, inlines, list items and attribute sets, plus
//              traversal helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial AST implementation

/*
Package ast defines the document tree for the adoc markup language.

Every sum type of the tree (Block, Inline, ListItem, Attributes) is a sealed
interface: only the types of this package implement it, and consumers switch
over the concrete types. Nodes are plain values. A parent owns its children
exclusively, there is no sharing and there are no cycles. Nodes carry no
source positions, so parsing the same text twice yields trees that compare
equal with reflect.DeepEqual.

Several variants (Table, Footnote, Link, Macro, ...) have no parsing rule yet.
They exist so that grammar extensions and renderers can target a stable tree.
*/
package ast
