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

	"github.com/brink-lang/brinkc/source"
)

// Token is a single lexeme: a [Kind] and the span of source text it covers.
//
// Tokens are plain values and are never mutated after the lexer produces
// them.
type Token struct {
	Kind Kind
	source.Span
}

// New constructs a token of the given kind covering length bytes from start.
func New(kind Kind, start, length int) Token {
	return Token{Kind: kind, Span: source.SpanOfLength(start, length)}
}

// Text returns the source text this token covers within file.
func (t Token) Text(file *source.File) string {
	return file.Slice(t.Span)
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("%v@%v", t.Kind, t.Span)
}

// IsStructural returns whether this is one of the pseudo-tokens that encode
// block structure: [NewLine], [Indent] or [Dedent].
func (k Kind) IsStructural() bool {
	return k == NewLine || k == Indent || k == Dedent
}

// IsDiagnostic returns whether this token kind records malformed input.
func (k Kind) IsDiagnostic() bool {
	return k == Invalid || k == MixedIndentation || k == InvalidIndentation
}

// IsKeyword returns whether this token kind is a reserved word.
func (k Kind) IsKeyword() bool {
	return k == Let
}

// Keyword looks up the keyword kind for word.
//
// Returns false if word is an ordinary identifier.
func Keyword(word string) (Kind, bool) {
	switch word {
	case "let":
		return Let, true
	default:
		return Identifier, false
	}
}
