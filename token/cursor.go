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

package token

import (
	"fmt"
	"iter"
	"slices"
)

// Cursor is a position-tracking reader over a lexed token sequence, with the
// peek/consume/expect operations a recursive-descent parser needs.
//
// The cursor never moves past the final [EOF] token, and its position never
// decreases except through [Cursor.Rewind].
type Cursor struct {
	tokens []Token
	idx    int
}

// CursorMark is the return value of [Cursor.Mark], which marks a position on
// a Cursor for rewinding to.
type CursorMark struct {
	owner *Cursor
	idx   int
}

// NewCursor returns a new cursor over the given tokens, positioned at the
// first one.
//
// Panics unless tokens ends in exactly one [EOF] token.
func NewCursor(tokens []Token) *Cursor {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		panic("brinkc/token: token sequence passed to NewCursor does not end in EOF")
	}
	if slices.IndexFunc(tokens, func(t Token) bool { return t.Kind == EOF }) != len(tokens)-1 {
		panic("brinkc/token: token sequence passed to NewCursor contains more than one EOF")
	}
	return &Cursor{tokens: tokens}
}

// Tokens returns the whole sequence this cursor reads from.
func (c *Cursor) Tokens() []Token {
	return c.tokens
}

// Position returns the index of the token under the cursor.
func (c *Cursor) Position() int {
	return c.idx
}

// AtEnd returns whether the token under the cursor is [EOF].
func (c *Cursor) AtEnd() bool {
	return c.Peek().Kind == EOF
}

// Peek returns the token under the cursor without advancing.
func (c *Cursor) Peek() Token {
	return c.tokens[c.idx]
}

// Previous returns the token most recently advanced past.
//
// Panics if the cursor has not advanced yet.
func (c *Cursor) Previous() Token {
	if c.idx == 0 {
		panic("brinkc/token: called Cursor.Previous before advancing")
	}
	return c.tokens[c.idx-1]
}

// Check returns whether the token under the cursor is of the given kind.
func (c *Cursor) Check(kind Kind) bool {
	return c.Peek().Kind == kind
}

// Consume advances past the token under the cursor if it is of the given
// kind, and returns it.
//
// Returns false, without moving, if the kind does not match.
func (c *Cursor) Consume(kind Kind) (Token, bool) {
	if !c.Check(kind) {
		return Token{}, false
	}
	return c.Advance(), true
}

// Advance returns the token under the cursor and moves past it.
//
// At the end of the stream, this returns the [EOF] token without moving, so
// it may be called any number of times.
func (c *Cursor) Advance() Token {
	tok := c.Peek()
	if tok.Kind != EOF {
		c.idx++
	}
	return tok
}

// SkipUntil advances until the token under the cursor is one of kinds, or
// the end of the stream. Returns the number of tokens skipped.
func (c *Cursor) SkipUntil(kinds ...Kind) int {
	start := c.idx
	for !c.AtEnd() && !slices.Contains(kinds, c.Peek().Kind) {
		c.Advance()
	}
	return c.idx - start
}

// Mark makes a mark on this cursor to indicate a place that can be rewound
// to.
func (c *Cursor) Mark() CursorMark {
	return CursorMark{owner: c, idx: c.idx}
}

// Rewind moves this cursor back to the position described by mark.
//
// Panics if mark was not created using this cursor's Mark method.
func (c *Cursor) Rewind(mark CursorMark) {
	if c != mark.owner {
		panic("brinkc/token: rewound cursor using the wrong cursor's mark")
	}
	c.idx = mark.idx
}

// Rest returns an iterator over the remaining tokens, excluding [EOF]. Each
// yielded token is advanced past.
func (c *Cursor) Rest() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for !c.AtEnd() {
			if !yield(c.Advance()) {
				return
			}
		}
	}
}

// String implements [fmt.Stringer].
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor{%d/%d, %v}", c.idx, len(c.tokens), c.Peek())
}
