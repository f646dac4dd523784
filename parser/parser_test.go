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

package parser_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brink-lang/brinkc/ast"
	"github.com/brink-lang/brinkc/lexer"
	"github.com/brink-lang/brinkc/parser"
	"github.com/brink-lang/brinkc/report"
	"github.com/brink-lang/brinkc/source"
	"github.com/brink-lang/brinkc/token"
)

// exportAll lets cmp look inside of the unexported bookkeeping of AST nodes.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func parse(t *testing.T, text string, opts parser.Options) (*ast.Program, error) {
	t.Helper()
	tokens := lexer.Tokenize(text, source.Spaces(2))
	return opts.Parse(token.NewCursor(tokens))
}

func TestParseLet(t *testing.T) {
	t.Parallel()

	got, err := parse(t, "let x = 5\n", parser.Options{})
	require.NoError(t, err)

	ids := new(ast.IDs)
	name := ast.NewLiteral(ids, ast.Identifier, source.NewSpan(4, 5))
	value := ast.NewExpr(ids, ast.NewLiteral(ids, ast.Integer, source.NewSpan(8, 9)))
	let := ast.NewLetBinding(ids, source.NewSpan(0, 10), name, value)
	want := ast.NewProgram(ids, source.NewSpan(0, 10), []*ast.Item{ast.NewItem(ids, let)})

	assert.Empty(t, cmp.Diff(want, got, exportAll))
}

func TestParseBlock(t *testing.T) {
	t.Parallel()

	got, err := parse(t, "let x =\n  5\n", parser.Options{})
	require.NoError(t, err)

	ids := new(ast.IDs)
	name := ast.NewLiteral(ids, ast.Identifier, source.NewSpan(4, 5))
	value := ast.NewExpr(ids, ast.NewLiteral(ids, ast.Integer, source.NewSpan(10, 11)))
	block := ast.NewBlock(ids, source.NewSpan(8, 12), []*ast.Item{ast.NewItem(ids, value)})
	let := ast.NewLetBinding(ids, source.NewSpan(0, 12), name, block)
	want := ast.NewProgram(ids, source.NewSpan(0, 12), []*ast.Item{ast.NewItem(ids, let)})

	assert.Empty(t, cmp.Diff(want, got, exportAll))

	body, ok := got.Items[0].Kind.(*ast.LetBinding).Body.(*ast.Block)
	require.True(t, ok)
	assert.Equal(t, 8, body.Span().Start)
}

func TestParseBlankLines(t *testing.T) {
	t.Parallel()

	got, err := parse(t, "\n1\n\n2\n", parser.Options{AllowBlankLines: true})
	require.NoError(t, err)

	ids := new(ast.IDs)
	one := ast.NewItem(ids, ast.NewExpr(ids, ast.NewLiteral(ids, ast.Integer, source.NewSpan(1, 2))))
	two := ast.NewItem(ids, ast.NewExpr(ids, ast.NewLiteral(ids, ast.Integer, source.NewSpan(4, 5))))
	want := ast.NewProgram(ids, source.NewSpan(0, 6), []*ast.Item{one, two})

	assert.Empty(t, cmp.Diff(want, got, exportAll))
}

func TestParseNewLineBetweenItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		span source.Span
	}{
		{name: "bare-expr", text: "5\n", span: source.NewSpan(1, 2)},
		{name: "blank-line", text: "let x = 5\n\nlet y = 6\n", span: source.NewSpan(10, 11)},
		{name: "leading-blank-line", text: "\nlet x = 5\n", span: source.NewSpan(0, 1)},
		{name: "in-block", text: "let x =\n  1\n  2\n", span: source.NewSpan(11, 12)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			prog, err := parse(t, test.text, parser.Options{})
			assert.Nil(t, prog)
			require.EqualError(t, err, `expected an expression, but found "NewLine"`)
			var perr *parser.Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, test.span, perr.Span)

			prog, err = parse(t, test.text, parser.Options{AllowBlankLines: true})
			require.NoError(t, err)
			assert.NotEmpty(t, prog.Items)
		})
	}

	// A bare expression at the end of the file needs no NewLine.
	prog, err := parse(t, "5", parser.Options{})
	require.NoError(t, err)
	assert.Len(t, prog.Items, 1)
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	got, err := parse(t, "", parser.Options{})
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	assert.Equal(t, source.NewSpan(0, 0), got.Span())
	assert.Equal(t, 0, got.ID().Int())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		message  string
		span     source.Span
		expected token.Kind
		found    token.Kind
	}{
		{
			name:    "let-is-not-an-expr",
			text:    "let x = let\n",
			message: `expected an expression, but found "Let"`,
			span:    source.NewSpan(8, 11),
			found:   token.Let,
		},
		{
			name:     "missing-identifier",
			text:     "let = 5\n",
			message:  `expected {identifier}, but found "Equal"`,
			span:     source.NewSpan(4, 5),
			expected: token.Identifier,
			found:    token.Equal,
		},
		{
			name:     "missing-equal",
			text:     "let x 5\n",
			message:  `expected "Equal", but found "Integer"`,
			span:     source.NewSpan(6, 7),
			expected: token.Equal,
			found:    token.Integer,
		},
		{
			name:     "missing-newline",
			text:     "let x = 5",
			message:  `expected "NewLine", but found "EndOfFile"`,
			span:     source.NewSpan(9, 9),
			expected: token.NewLine,
			found:    token.EOF,
		},
		{
			name:    "identifier-is-not-an-expr",
			text:    "x\n",
			message: `expected an expression, but found "Identifier"`,
			span:    source.NewSpan(0, 1),
			found:   token.Identifier,
		},
		{
			name:    "missing-body",
			text:    "let x =\n",
			message: `expected an expression, but found "NewLine"`,
			span:    source.NewSpan(7, 8),
			found:   token.NewLine,
		},
		{
			name:    "stray-indent",
			text:    "1\n  2\n",
			message: `expected an expression, but found "Indent"`,
			span:    source.NewSpan(2, 4),
			found:   token.Indent,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			prog, err := parse(t, test.text, parser.Options{})
			assert.Nil(t, prog)
			require.EqualError(t, err, test.message)

			var perr *parser.Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, test.span, perr.Span)
			assert.Equal(t, test.expected, perr.Expected)
			assert.Equal(t, strings.HasPrefix(test.message, "expected an expression"), perr.ExpectedExpr)
			assert.Equal(t, test.found, perr.Found)
		})
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()

	text := "let x = let\nlet y = 1\nlet = 2\n"

	prog, err := parse(t, text, parser.Options{})
	assert.Nil(t, prog)
	require.Error(t, err)

	prog, err = parse(t, text, parser.Options{Recover: true})
	require.NotNil(t, prog)
	require.Len(t, prog.Items, 1)
	assert.Equal(t, source.NewSpan(12, 22), prog.Items[0].Span())
	assert.Equal(t, source.NewSpan(0, 30), prog.Span())

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	errs := joined.Unwrap()
	require.Len(t, errs, 2)
	assert.EqualError(t, errs[0], `expected an expression, but found "Let"`)
	assert.EqualError(t, errs[1], `expected {identifier}, but found "Equal"`)

	// A clean parse with recovery enabled has no errors.
	prog, err = parse(t, "let y = 1\n", parser.Options{Recover: true})
	require.NoError(t, err)
	assert.Len(t, prog.Items, 1)

	// Recovery at the end of the file terminates.
	prog, err = parse(t, "let x =", parser.Options{Recover: true})
	require.Error(t, err)
	assert.Empty(t, prog.Items)
}

func TestRecoverInBlock(t *testing.T) {
	t.Parallel()

	// The error is inside the block; the rest of the block stays in it.
	prog, err := parse(t, "let x =\n  let\n  1\nlet y = 2\n", parser.Options{Recover: true})
	require.NotNil(t, prog)
	require.EqualError(t, err, `expected {identifier}, but found "NewLine"`)
	require.Len(t, prog.Items, 2)

	x := prog.Items[0].Kind.(*ast.LetBinding)
	block, ok := x.Body.(*ast.Block)
	require.True(t, ok)
	assert.Equal(t, source.NewSpan(8, 18), block.Span())
	require.Len(t, block.Items, 1)
	assert.Equal(t, source.NewSpan(16, 17), block.Items[0].Span())
	assert.Equal(t, source.NewSpan(18, 28), prog.Items[1].Span())

	// Errors two levels deep are recovered from in the innermost block.
	text := "let x =\n  let y =\n    let\n    1\n  2\nlet z = 3\n"
	prog, err = parse(t, text, parser.Options{Recover: true})
	require.NotNil(t, prog)
	require.EqualError(t, err, `expected {identifier}, but found "NewLine"`)
	require.Len(t, prog.Items, 2)
	outer := prog.Items[0].Kind.(*ast.LetBinding).Body.(*ast.Block)
	require.Len(t, outer.Items, 2)
	inner := outer.Items[0].Kind.(*ast.LetBinding).Body.(*ast.Block)
	assert.Len(t, inner.Items, 1)

	// A block under a line with an error is skipped along with it.
	prog, err = parse(t, "let x 5\n  3\nlet y = 1\n", parser.Options{Recover: true})
	require.NotNil(t, prog)
	require.EqualError(t, err, `expected "Equal", but found "Integer"`)
	require.Len(t, prog.Items, 1)
	assert.Equal(t, source.NewSpan(12, 22), prog.Items[0].Span())

	// An error on the last line of a block leaves its Dedent to close it.
	prog, err = parse(t, "let x =\n  let y\nlet z = 1\n", parser.Options{Recover: true})
	require.NotNil(t, prog)
	require.EqualError(t, err, `expected "Equal", but found "Dedent"`)
	require.Len(t, prog.Items, 2)
	assert.Empty(t, prog.Items[0].Kind.(*ast.LetBinding).Body.(*ast.Block).Items)
}

func TestNodeIDs(t *testing.T) {
	t.Parallel()

	text := "let a =\n  let b =\n    1\n  2\nlet c = 3\n4"
	var counts []int
	for range 2 {
		prog, err := parse(t, text, parser.Options{})
		require.NoError(t, err)

		var next int
		for node := range ast.PostOrder(prog) {
			assert.Equal(t, next, node.ID().Int(), "%s", ast.Describe(node))
			next++
		}
		counts = append(counts, next)
	}
	assert.Equal(t, counts[0], counts[1])
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		file := source.NewFile("test.brk", "let x = 5\n")
		r := report.New(file)
		prog, tokens := parser.ParseFile(file, r, parser.Options{})
		require.NotNil(t, prog)
		assert.Len(t, tokens, 6)
		assert.Empty(t, r.Diagnostics)
	})

	t.Run("parse-error", func(t *testing.T) {
		t.Parallel()

		file := source.NewFile("test.brk", "let x = let\n")
		r := report.New(file)
		prog, _ := parser.ParseFile(file, r, parser.Options{})
		assert.Nil(t, prog)
		assert.Equal(t,
			"error: test.brk:8-11: expected an expression, but found \"Let\"\n",
			r.Render(report.Simple))
		assert.Equal(t, []string{"a let binding is not an expression; move it to its own line"},
			r.Diagnostics[0].Help())
	})

	t.Run("expected-token-help", func(t *testing.T) {
		t.Parallel()

		// NewLine is the zero Kind; the help for a misplaced let only
		// applies where an expression was expected.
		file := source.NewFile("test.brk", "let x = 5 let\n")
		r := report.New(file)
		prog, _ := parser.ParseFile(file, r, parser.Options{})
		assert.Nil(t, prog)
		require.Len(t, r.Diagnostics, 1)
		assert.Equal(t, `expected "NewLine", but found "Let"`, r.Diagnostics[0].Message())
		assert.Empty(t, r.Diagnostics[0].Help())
	})

	t.Run("lex-error", func(t *testing.T) {
		t.Parallel()

		// The parser would choke on the @, but never gets to see it.
		file := source.NewFile("test.brk", "let x = @\n")
		r := report.New(file)
		prog, _ := parser.ParseFile(file, r, parser.Options{})
		assert.Nil(t, prog)
		require.Len(t, r.Diagnostics, 1)
		assert.Equal(t, "unrecognized character '@'", r.Diagnostics[0].Message())
	})

	t.Run("recover", func(t *testing.T) {
		t.Parallel()

		file := source.NewFile("test.brk", "let x = let\nlet y = 1\nlet = 2\n")
		r := report.New(file)
		prog, _ := parser.ParseFile(file, r, parser.Options{Recover: true})
		require.NotNil(t, prog)
		assert.Equal(t, 2, r.Errors())
	})
}
