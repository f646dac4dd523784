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
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/brink-lang/brinkc/report"
	"github.com/brink-lang/brinkc/source"
	"github.com/brink-lang/brinkc/token"
)

// ErrMixedIndentation diagnoses a line indented with the wrong whitespace
// character.
type ErrMixedIndentation struct {
	Span   source.Span
	Indent source.IndentKind // The file's indentation style.
}

// Error implements [error].
func (e *ErrMixedIndentation) Error() string {
	if e.Indent.IsTab() {
		return "mixed indentation: expected tab, but found ' '"
	}
	return fmt.Sprintf("mixed indentation: expected %d spaces, but found '\\t'", e.Indent.Width())
}

// Diagnose implements [report.Diagnose].
func (e *ErrMixedIndentation) Diagnose(d *report.Diagnostic) {
	if e.Indent.IsTab() {
		d.With(report.Snippetf(e.Span, "spaces used for indentation"))
	} else {
		d.With(report.Snippetf(e.Span, "tab used for indentation"))
	}
	d.With(report.Note("this file is indented with %v", e.Indent))
}

// ErrInvalidIndentation diagnoses a line indented by a number of spaces that
// is not a multiple of the indentation width.
type ErrInvalidIndentation struct {
	Span   source.Span // The spaces left over after the last full level.
	Width  int         // Spaces per indentation level.
	Spaces int         // The total number of leading spaces on the line.
}

// Error implements [error].
func (e *ErrInvalidIndentation) Error() string {
	return fmt.Sprintf("invalid number of spaces in indentation: expected a multiple of %d, but found %d", e.Width, e.Spaces)
}

// Diagnose implements [report.Diagnose].
func (e *ErrInvalidIndentation) Diagnose(d *report.Diagnostic) {
	d.With(
		report.Snippetf(e.Span, "%d extra %s", e.Span.Len(), plural(e.Span.Len(), "space")),
		report.Help("indent with either %d or %d spaces",
			e.Spaces-e.Span.Len(), e.Spaces-e.Span.Len()+e.Width),
	)
}

// ErrUnrecognized diagnoses a character that does not start any token.
type ErrUnrecognized struct {
	Span source.Span
	Char rune
}

// Error implements [error].
func (e *ErrUnrecognized) Error() string {
	return fmt.Sprintf("unrecognized character %q", e.Char)
}

// Diagnose implements [report.Diagnose].
func (e *ErrUnrecognized) Diagnose(d *report.Diagnostic) {
	d.With(report.Snippet(e.Span))
}

// Check reports an error for every diagnostic pseudo-token in tokens, which
// must have been lexed from file. Returns the number of errors reported.
func Check(file *source.File, tokens []token.Token, r *report.Report) int {
	var n int
	for _, tok := range tokens {
		var err report.Diagnose
		switch tok.Kind {
		case token.MixedIndentation:
			err = &ErrMixedIndentation{Span: tok.Span, Indent: file.Indent()}

		case token.InvalidIndentation:
			lineStart := strings.LastIndexByte(file.Text()[:tok.Start], '\n') + 1
			err = &ErrInvalidIndentation{
				Span:   tok.Span,
				Width:  file.Indent().Width(),
				Spaces: tok.End - lineStart,
			}

		case token.Invalid:
			char, _ := utf8.DecodeRuneInString(tok.Text(file))
			err = &ErrUnrecognized{Span: tok.Span, Char: char}

		default:
			continue
		}

		r.Error(err)
		n++
	}
	return n
}

func plural(n int, what string) string {
	if n == 1 {
		return what
	}
	return what + "s"
}
