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
	"github.com/brink-lang/brinkc/source"
	"github.com/brink-lang/brinkc/token"
)

// Options configures a parse.
type Options struct {
	// If set, a structural error does not end the parse. Instead, the
	// parser records it, skips to the end of the offending line, and carries
	// on parsing items in the same program or block. Any block nested inside
	// the skipped line is skipped with it. The result is a partial tree,
	// plus every error that was encountered.
	//
	// Node IDs allocated for partially parsed items are discarded along with
	// them, so the IDs of a recovered tree may have gaps.
	Recover bool

	// If set, NewLines where an item could start are skipped. This permits
	// blank lines between items, and several bare expressions in a row, one
	// per line. Otherwise, such a NewLine is an error, as only a let binding
	// with an expression body consumes the NewLine that ends it.
	AllowBlankLines bool
}

// Parse parses a program from c, stopping at the first error.
//
// On failure the returned error is an [*Error] and the program is nil.
func Parse(c *token.Cursor) (*ast.Program, error) {
	return Options{}.Parse(c)
}

// Parse parses a program from c with these options.
//
// If o.Recover is set, the program is returned even if errors occurred, and
// the returned error joins together every [*Error] encountered.
func (o Options) Parse(c *token.Cursor) (*ast.Program, error) {
	p := &parser{c: c, ids: new(ast.IDs), recover: o.Recover, blankLines: o.AllowBlankLines}
	return parseProgram(p)
}

// parser is the state of a single parse.
type parser struct {
	c   *token.Cursor
	ids *ast.IDs

	recover    bool
	blankLines bool
	errs       []error
}

// skipNewLines skips over any NewLines under the cursor, if blank lines are
// allowed.
func (p *parser) skipNewLines() {
	for p.blankLines {
		if _, ok := p.c.Consume(token.NewLine); !ok {
			return
		}
	}
}

// resync skips to the start of the next item at the current indentation
// level: just past the next NewLine, or past the Dedent that closes a block
// opened along the way. A Dedent that closes the current block is left for
// the block to consume.
func (p *parser) resync() {
	var depth int
	for {
		p.c.SkipUntil(token.NewLine, token.Indent, token.Dedent)
		switch p.c.Peek().Kind {
		case token.EOF:
			return
		case token.Indent:
			depth++
		case token.Dedent:
			if depth == 0 {
				return
			}
			depth--
			if depth == 0 {
				p.c.Advance()
				return
			}
		case token.NewLine:
			if depth == 0 {
				p.c.Advance()
				return
			}
		}
		p.c.Advance()
	}
}

// recoverFrom records err and resyncs, if the parser is recovering from
// errors. Returns false if the parse should stop with err instead.
func (p *parser) recoverFrom(err error) bool {
	if !p.recover {
		return false
	}
	p.errs = append(p.errs, err)

	pos := p.c.Position()
	p.resync()
	if p.c.Position() == pos && !p.c.Check(token.Dedent) {
		p.c.Advance()
	}
	return true
}

// expect consumes a token of the given kind.
func (p *parser) expect(kind token.Kind) (token.Token, error) {
	if tok, ok := p.c.Consume(kind); ok {
		return tok, nil
	}
	return token.Token{}, errExpected(kind, p.c.Peek())
}

// expectIdentifier consumes an identifier and wraps it in a literal.
func (p *parser) expectIdentifier() (*ast.Literal, error) {
	if tok, ok := p.c.Consume(token.Identifier); ok {
		return ast.NewLiteral(p.ids, ast.Identifier, tok.Span), nil
	}
	return nil, errExpectedIdentifier(p.c.Peek())
}

func parseProgram(p *parser) (*ast.Program, error) {
	var items []*ast.Item
	for {
		p.skipNewLines()
		if p.c.AtEnd() {
			break
		}

		item, err := parseItem(p)
		if err != nil {
			if !p.recoverFrom(err) {
				return nil, err
			}
			if p.c.Check(token.Dedent) {
				// Unbalanced; only reachable on token sequences not produced
				// by the lexer.
				p.c.Advance()
			}
			continue
		}
		items = append(items, item)
	}

	span := source.NewSpan(0, p.c.Peek().End)
	return ast.NewProgram(p.ids, span, items), errors.Join(p.errs...)
}

func parseBlock(p *parser) (*ast.Block, error) {
	indent, err := p.expect(token.Indent)
	if err != nil {
		return nil, err
	}

	var items []*ast.Item
	for {
		p.skipNewLines()
		if p.c.AtEnd() || p.c.Check(token.Dedent) {
			break
		}

		item, err := parseItem(p)
		if err != nil {
			if !p.recoverFrom(err) {
				return nil, err
			}
			continue
		}
		items = append(items, item)
	}
	// A missing Dedent at the end of the file is fine.
	p.c.Consume(token.Dedent)

	span := source.NewSpan(indent.Start, p.c.Previous().End)
	return ast.NewBlock(p.ids, span, items), nil
}

func parseItem(p *parser) (*ast.Item, error) {
	var kind ast.ItemKind
	var err error
	if _, ok := p.c.Consume(token.Let); ok {
		kind, err = parseLetBinding(p)
	} else {
		kind, err = parseExpr(p)
	}
	if err != nil {
		return nil, err
	}
	return ast.NewItem(p.ids, kind), nil
}

// parseLetBinding parses a let binding. The let keyword must have just been
// consumed.
func parseLetBinding(p *parser) (*ast.LetBinding, error) {
	start := p.c.Previous().Start

	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equal); err != nil {
		return nil, err
	}
	body, err := parseLetBody(p)
	if err != nil {
		return nil, err
	}

	span := source.NewSpan(start, p.c.Previous().End)
	return ast.NewLetBinding(p.ids, span, name, body), nil
}

func parseLetBody(p *parser) (ast.LetBody, error) {
	if p.c.Check(token.Indent) {
		block, err := parseBlock(p)
		if err != nil {
			return nil, err
		}
		return block, nil
	}

	expr, err := parseExpr(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.NewLine); err != nil {
		return nil, err
	}
	return expr, nil
}

func parseExpr(p *parser) (*ast.Expr, error) {
	return parsePrimaryExpr(p)
}

func parsePrimaryExpr(p *parser) (*ast.Expr, error) {
	tok, ok := p.c.Consume(token.Integer)
	if !ok {
		return nil, errExpectedExpr(p.c.Peek())
	}
	lit := ast.NewLiteral(p.ids, ast.Integer, tok.Span)
	return ast.NewExpr(p.ids, lit), nil
}
