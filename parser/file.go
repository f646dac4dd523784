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
	"errors"

	"github.com/brink-lang/brinkc/ast"
	"github.com/brink-lang/brinkc/lexer"
	"github.com/brink-lang/brinkc/report"
	"github.com/brink-lang/brinkc/source"
	"github.com/brink-lang/brinkc/token"
)

// ParseFile lexes and parses file, reporting any problems to r.
//
// Lexical diagnostics are reported first. If there are any, the file is not
// parsed, and the returned program is nil. Otherwise the file is parsed with
// the given options, and any structural errors are reported.
//
// The tokens are always returned.
func ParseFile(file *source.File, r *report.Report, opts Options) (*ast.Program, []token.Token) {
	tokens := lexer.Lex(file)
	if lexer.Check(file, tokens, r) > 0 {
		return nil, tokens
	}

	prog, err := opts.Parse(token.NewCursor(tokens))
	reportErrors(r, err)
	return prog, tokens
}

// reportErrors reports err, which may be several errors joined together, as
// diagnostics.
func reportErrors(r *report.Report, err error) {
	if err == nil {
		return
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, err := range joined.Unwrap() {
			reportErrors(r, err)
		}
		return
	}

	var perr *Error
	if errors.As(err, &perr) {
		r.Error(perr)
		return
	}
	r.Errorf("%v", err)
}
