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

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/brink-lang/brinkc/ast"
	"github.com/brink-lang/brinkc/internal/config"
	"github.com/brink-lang/brinkc/lexer"
	"github.com/brink-lang/brinkc/parser"
	"github.com/brink-lang/brinkc/report"
	"github.com/brink-lang/brinkc/source"
	"github.com/brink-lang/brinkc/token"
)

func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a file",
		Long: `Print the tokens of a file, one per line: the token's kind, its byte
span, and its text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, cfg, err := opts.open(cmd, args[0])
			if err != nil {
				return err
			}
			tokens := lexer.Lex(file)
			if err := token.Dump(cmd.OutOrStdout(), file, tokens); err != nil {
				return err
			}

			r := report.New(file)
			lexer.Check(file, tokens, r)
			return finish(cmd, cfg, r)
		},
	}
}

func newASTCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the syntax tree of a file",
		Long: `Print the syntax tree of a file, one node per line: the node's type, its
NodeID, its byte span, and the text of literals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, cfg, err := opts.open(cmd, args[0])
			if err != nil {
				return err
			}

			r := report.New(file)
			program, _ := parser.ParseFile(file, r, parser.Options{
				Recover:         cfg.Recover,
				AllowBlankLines: cfg.BlankLines,
			})
			if program != nil {
				if err := ast.Dump(cmd.OutOrStdout(), file, program); err != nil {
					return err
				}
			}
			return finish(cmd, cfg, r)
		},
	}
	cmd.Flags().BoolVar(&opts.recover, "recover", false, "Keep parsing after a syntax error")
	return cmd
}

func newNodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "node <file> <offset>",
		Short: "Print the syntax tree nodes at a byte offset",
		Long: `Print every syntax tree node whose span contains the given byte offset,
outermost first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[1])
			if err != nil || offset < 0 {
				return fmt.Errorf("invalid offset %q: expected a non-negative integer", args[1])
			}
			file, cfg, err := opts.open(cmd, args[0])
			if err != nil {
				return err
			}

			r := report.New(file)
			program, _ := parser.ParseFile(file, r, parser.Options{AllowBlankLines: cfg.BlankLines})
			if program == nil {
				return finish(cmd, cfg, r)
			}

			path := ast.NewIndex(program).Enclosing(offset)
			if len(path) == 0 {
				return fmt.Errorf("%s: no node at offset %d", file.Path(), offset)
			}
			out := cmd.OutOrStdout()
			for depth, node := range path {
				span := node.Span()
				fmt.Fprintf(out, "%*s%s %v %v at %s:%v", depth*2, "", ast.Describe(node), node.ID(), span, file.Path(), file.Location(span.Start))
				if lit, ok := node.(*ast.Literal); ok {
					fmt.Fprintf(out, " %q", lit.Text(file))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

// open loads the file at path for one of the inspection commands.
func (o *options) open(cmd *cobra.Command, path string) (*source.File, config.Config, error) {
	cfg, err := o.settings(cmd)
	if err != nil {
		return nil, cfg, err
	}
	indent, err := cfg.Indentation()
	if err != nil {
		return nil, cfg, err
	}
	file, err := source.Load(path, indent)
	if err != nil {
		return nil, cfg, err
	}
	o.logger(cmd).Debug("loaded file", "path", path, "indent", file.Indent().String(), "bytes", file.Len())
	return file, cfg, nil
}

// finish writes the diagnostics in r to the command's stderr, and returns
// errFailed if any of them are errors.
func finish(cmd *cobra.Command, cfg config.Config, r *report.Report) error {
	w := cmd.ErrOrStderr()
	style := newStyles(colorEnabled(cfg.Color, w))
	writeDiagnostics(w, r, style)
	if !r.HasErrors() {
		return nil
	}
	style.summary(r.Errors(), r.Warnings()).Fprintln(w, report.Summary(r.Errors(), r.Warnings()))
	return errFailed
}
