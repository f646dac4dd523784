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

package parser

import (
	"fmt"

	"github.com/brink-lang/brinkc/report"
	"github.com/brink-lang/brinkc/source"
	"github.com/brink-lang/brinkc/token"
)

// Error is a structural parse error: the parser wanted one thing, but the
// token under the cursor was something else.
type Error struct {
	// The span of the unexpected token.
	Span source.Span

	// The token kind that was expected. Meaningless if ExpectedExpr is set.
	Expected token.Kind
	// Set if an expression was expected, rather than a single token.
	ExpectedExpr bool
	// The kind of the unexpected token.
	Found token.Kind

	Message string

	want string // What was expected, for the diagnostic's snippet.
}

var _ report.Diagnose = (*Error)(nil)

// errExpected constructs an error for a missing token of the given kind.
func errExpected(want token.Kind, found token.Token) *Error {
	return &Error{
		Span:     found.Span,
		Expected: want,
		Found:    found.Kind,
		Message:  fmt.Sprintf(`expected "%v", but found "%v"`, want, found.Kind),
		want:     fmt.Sprintf(`expected "%v"`, want),
	}
}

// errExpectedIdentifier constructs an error for a missing identifier.
func errExpectedIdentifier(found token.Token) *Error {
	return &Error{
		Span:     found.Span,
		Expected: token.Identifier,
		Found:    found.Kind,
		Message:  fmt.Sprintf(`expected {identifier}, but found "%v"`, found.Kind),
		want:     "expected an identifier",
	}
}

// errExpectedExpr constructs an error for a missing expression.
func errExpectedExpr(found token.Token) *Error {
	return &Error{
		Span:         found.Span,
		ExpectedExpr: true,
		Found:        found.Kind,
		Message:      fmt.Sprintf(`expected an expression, but found "%v"`, found.Kind),
		want:         "expected an expression",
	}
}

// Error implements [error].
func (e *Error) Error() string {
	return e.Message
}

// Diagnose implements [report.Diagnose].
func (e *Error) Diagnose(d *report.Diagnostic) {
	d.With(report.SnippetAt(e.Span, "%s", e.want))

	switch e.Found {
	case token.EOF:
		d.With(report.Note("the file ended early"))
	case token.Indent:
		if e.ExpectedExpr {
			d.With(report.Help("only the body of a let binding may be indented"))
		}
	case token.Let:
		if e.ExpectedExpr {
			d.With(report.Help("a let binding is not an expression; move it to its own line"))
		}
	}
}
