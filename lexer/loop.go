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

package lexer

import (
	"unicode"

	"github.com/brink-lang/brinkc/token"
)

// loop is the main loop of the lexer.
func loop(l *lexer) {
	// Each iteration examines the next rune in the source text to determine
	// what action to take.
	mp := l.mustProgress()
	for !l.done() {
		mp.check()
		start := l.cursor

		switch r := l.pop(); {
		case r == ' ' || r == '\t' || r == '\r':
			// Whitespace between tokens carries no meaning.

		case r == '\n':
			if l.indent.IsTab() {
				lexTabLine(l, start)
			} else {
				lexSpaceLine(l, start)
			}

		case isDigit(r):
			l.takeWhile(isDigit)
			l.push(token.Integer, start, l.cursor-start)

		case isAlphabetic(r):
			l.takeWhile(isAlphanumeric)
			kind, _ := token.Keyword(l.text[start:l.cursor])
			l.push(kind, start, l.cursor-start)

		case r == '=':
			l.push(token.Equal, start, 1)

		default:
			l.push(token.Invalid, start, l.cursor-start)
		}
	}

	l.push(token.EOF, len(l.text), 0)
}

// lexSpaceLine lexes the leading whitespace of the line after the newline at
// offset newline, for a file indented with spaces.
func lexSpaceLine(l *lexer, newline int) {
	width := l.indent.Width()
	lineStart := newline + 1
	spaces := len(l.takeWhile(func(r rune) bool { return r == ' ' }))

	if l.peek() == '\t' {
		// A tab where only spaces were expected. The indentation level is
		// left alone, since this line's level cannot be known.
		tab := l.cursor
		l.pop()
		l.push(token.NewLine, newline, 1)
		l.push(token.MixedIndentation, tab, 1)
		return
	}

	level := spaces / width
	pushLevel(l, newline, lineStart, level, width)
	if rem := spaces % width; rem != 0 {
		l.push(token.InvalidIndentation, lineStart+level*width, rem)
	}
	l.level = level
}

// lexTabLine is like lexSpaceLine, but for files indented with tabs.
func lexTabLine(l *lexer, newline int) {
	lineStart := newline + 1
	tabs := len(l.takeWhile(func(r rune) bool { return r == '\t' }))
	spaces := len(l.takeWhile(func(r rune) bool { return r == ' ' }))

	if spaces > 0 {
		l.push(token.NewLine, newline, 1)
		l.push(token.MixedIndentation, lineStart+tabs, spaces)
		return
	}

	pushLevel(l, newline, lineStart, tabs, 1)
	l.level = tabs
}

// pushLevel emits the structural tokens for moving from the current
// indentation level to level: one Indent per unit of indentation gained, one
// Dedent per unit lost, or a NewLine if the level is unchanged.
//
// unit is the width in bytes of a single level of indentation. Dedents sit
// at the end of the line's whole units of indentation, so that they never
// follow an InvalidIndentation for the leftover spaces.
func pushLevel(l *lexer, newline, lineStart, level, unit int) {
	switch {
	case level > l.level:
		for i := l.level; i < level; i++ {
			l.push(token.Indent, lineStart+i*unit, unit)
		}
	case level < l.level:
		for range l.level - level {
			l.push(token.Dedent, lineStart+level*unit, 0)
		}
	default:
		l.push(token.NewLine, newline, 1)
	}
}

// isAlphabetic reports whether r has the Unicode Alphabetic property, which
// starts an identifier.
func isAlphabetic(r rune) bool {
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}

// isAlphanumeric reports whether r may continue an identifier: an Alphabetic
// character, or any numeric one.
func isAlphanumeric(r rune) bool {
	return unicode.In(r, unicode.L, unicode.N, unicode.Other_Alphabetic)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
