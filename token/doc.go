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

// Package token provides the lexical alphabet of Brink and a cursor for
// reading a lexed token sequence.
//
// # Structural Tokens
//
// Brink is an off-side rule language: blocks are delimited by indentation
// rather than by brackets. The lexer reconstructs block structure from
// leading whitespace and encodes it as the [Indent], [Dedent] and [NewLine]
// pseudo-tokens, so the parser never looks at whitespace itself.
//
// # Diagnostic Tokens
//
// Lexing never fails. Malformed input is recorded in the token sequence as
// [Invalid], [MixedIndentation] and [InvalidIndentation] tokens, which are
// reported after the fact. Every lexed sequence ends in exactly one [EOF].
//
// Tokens carry no text: identifiers and integers are recovered by slicing the
// source file with the token's span.
package token

//go:generate go run github.com/brink-lang/brinkc/internal/enum kind.yaml
