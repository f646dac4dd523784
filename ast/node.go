// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import (
	"fmt"

	"github.com/brink-lang/brinkc/source"
)

// Node is any node in the syntax tree.
type Node interface {
	source.Spanner

	// ID returns this node's unique ID.
	ID() NodeID
}

// node is the bookkeeping common to every node type.
type node struct {
	id   NodeID
	span source.Span
}

func newNode(ids *IDs, span source.Span) node {
	return node{id: ids.Next(), span: span}
}

// ID implements [Node].
func (n *node) ID() NodeID { return n.id }

// Span implements [source.Spanner].
func (n *node) Span() source.Span { return n.span }

// Program is the root of a file's syntax tree.
type Program struct {
	node
	Items []*Item
}

// NewProgram constructs a new program. Its span should cover the whole file.
func NewProgram(ids *IDs, span source.Span, items []*Item) *Program {
	return &Program{Items: items, node: newNode(ids, span)}
}

// Block is an indented sequence of items.
type Block struct {
	node
	Items []*Item
}

// NewBlock constructs a new block. Its span should start at the block's
// opening indentation.
func NewBlock(ids *IDs, span source.Span, items []*Item) *Block {
	return &Block{Items: items, node: newNode(ids, span)}
}

// Item is a single entry of a [Program] or [Block].
//
// An item has the same span as its Kind.
type Item struct {
	node
	Kind ItemKind
}

// ItemKind is the contents of an [Item].
//
// Implemented by [*LetBinding] and [*Expr].
type ItemKind interface {
	Node
	itemKind()
}

// NewItem constructs a new item wrapping kind.
func NewItem(ids *IDs, kind ItemKind) *Item {
	return &Item{Kind: kind, node: newNode(ids, kind.Span())}
}

// LetBinding is a binding of the form
//
//	let name = body
type LetBinding struct {
	node
	Name *Literal
	Body LetBody
}

// LetBody is the right-hand side of a [LetBinding].
//
// Implemented by [*Block] and [*Expr].
type LetBody interface {
	Node
	letBody()
}

// NewLetBinding constructs a new let binding. Its span should start at the
// let keyword.
func NewLetBinding(ids *IDs, span source.Span, name *Literal, body LetBody) *LetBinding {
	return &LetBinding{Name: name, Body: body, node: newNode(ids, span)}
}

// Expr is an expression.
//
// An expression has the same span as its Kind.
type Expr struct {
	node
	Kind ExprKind
}

// ExprKind is the contents of an [Expr].
//
// Implemented by [*Literal].
type ExprKind interface {
	Node
	exprKind()
}

// NewExpr constructs a new expression wrapping kind.
func NewExpr(ids *IDs, kind ExprKind) *Expr {
	return &Expr{Kind: kind, node: newNode(ids, kind.Span())}
}

// Literal is a single lexeme in the tree: a name or a number.
type Literal struct {
	node
	Kind LiteralKind
}

// NewLiteral constructs a new literal.
func NewLiteral(ids *IDs, kind LiteralKind, span source.Span) *Literal {
	return &Literal{Kind: kind, node: newNode(ids, span)}
}

// Text returns the text of this literal within file.
func (l *Literal) Text(file *source.File) string {
	return file.Slice(l.span)
}

// LiteralKind is the kind of a [Literal].
type LiteralKind int8

const (
	Identifier LiteralKind = iota + 1
	Integer
)

// String implements [fmt.Stringer].
func (k LiteralKind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case Integer:
		return "Integer"
	default:
		return fmt.Sprintf("ast.LiteralKind(%d)", int(k))
	}
}

func (*LetBinding) itemKind() {}
func (*Expr) itemKind()       {}

func (*Block) letBody() {}
func (*Expr) letBody()  {}

func (*Literal) exprKind() {}
