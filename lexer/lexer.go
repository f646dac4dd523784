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

// Package lexer turns Brink source text into a sequence of [token.Token]s.
//
// Brink uses the off-side rule, so besides ordinary lexemes the lexer emits
// [token.Indent], [token.Dedent] and [token.NewLine] pseudo-tokens that encode
// block structure. Only a single indentation level is tracked between lines,
// not a stack of widths: a line indented by k units after a line indented by
// j units yields |k-j| Indent or Dedent tokens.
//
// Lexing never fails. Malformed input produces diagnostic pseudo-tokens, which
// [Check] turns into diagnostics.
package lexer

import (
	"unicode/utf8"

	"github.com/brink-lang/brinkc/source"
	"github.com/brink-lang/brinkc/token"
)

// Lex runs lexical analysis on file, using the file's indentation style.
func Lex(file *source.File) []token.Token {
	return Tokenize(file.Text(), file.Indent())
}

// Tokenize runs lexical analysis on text, using the given indentation style.
//
// The result always ends in exactly one [token.EOF] token, which is the empty
// span at len(text).
func Tokenize(text string, indent source.IndentKind) []token.Token {
	l := &lexer{text: text, indent: indent}
	loop(l)
	return l.tokens
}

// lexer is the actual lexer book-keeping used in this package.
type lexer struct {
	text   string
	indent source.IndentKind

	cursor int
	// The indentation level of the most recent line whose indentation was
	// well-formed.
	level  int
	tokens []token.Token
}

// push pushes a new token onto the sequence the lexer is building.
func (l *lexer) push(kind token.Kind, start, length int) {
	l.tokens = append(l.tokens, token.New(kind, start, length))
}

// rest returns the remaining unlexed text.
func (l *lexer) rest() string {
	return l.text[l.cursor:]
}

// done returns whether or not we're done lexing runes.
func (l *lexer) done() bool {
	return l.cursor >= len(l.text)
}

// peek peeks the next character.
//
// Returns -1 if l.done().
func (l *lexer) peek() rune {
	if l.done() {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.rest())
	return r
}

// pop consumes the next character.
//
// Returns -1 if l.done().
func (l *lexer) pop() rune {
	if l.done() {
		return -1
	}
	r, n := utf8.DecodeRuneInString(l.rest())
	l.cursor += n
	return r
}

// takeWhile consumes the characters while they match the given function.
// Returns consumed characters.
func (l *lexer) takeWhile(f func(rune) bool) string {
	start := l.cursor
	for !l.done() && f(l.peek()) {
		_ = l.pop()
	}
	return l.text[start:l.cursor]
}

// mustProgress returns a progress checker for this lexer.
func (l *lexer) mustProgress() mustProgress {
	return mustProgress{l, -1}
}

// mustProgress is a helper for ensuring that the lexer makes progress
// in each loop iteration. This is intended for turning infinite loops into
// panics.
type mustProgress struct {
	l    *lexer
	prev int
}

// check panics if the lexer has not advanced since the last call.
func (mp *mustProgress) check() {
	if mp.prev == mp.l.cursor {
		panic("brinkc/lexer: lexer failed to make progress; this is a bug in brinkc")
	}
	mp.prev = mp.l.cursor
}
