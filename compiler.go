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

package brinkc

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/brink-lang/brinkc/ast"
	"github.com/brink-lang/brinkc/parser"
	"github.com/brink-lang/brinkc/report"
	"github.com/brink-lang/brinkc/source"
	"github.com/brink-lang/brinkc/token"
)

// Compiler compiles Brink source files into syntax trees.
type Compiler struct {
	// Opens the files to compile. If nil, paths are read from the local file
	// system.
	Opener source.Opener

	// If not nil, every file is lexed with this indentation style, regardless
	// of what the Opener decided.
	Indent *source.IndentKind

	// If true, the parser recovers from structural errors instead of stopping
	// at the first one. See [parser.Options].
	Recover bool

	// If true, blank lines between items are skipped rather than rejected.
	// See [parser.Options].
	AllowBlankLines bool

	// The maximum number of files to compile at once. If unspecified or set
	// to a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
}

// Result is the outcome of compiling a single file.
type Result struct {
	// The path the file was requested by.
	Path string

	// The file that was compiled. Nil if it could not be opened.
	File *source.File
	// The file's tokens. Nil if it could not be opened.
	Tokens []token.Token
	// The file's syntax tree. Nil if compilation failed before or during
	// parsing, unless the compiler was recovering from errors.
	Program *ast.Program

	// Diagnostics produced while compiling the file.
	Report *report.Report

	// How long it took to compile the file.
	Elapsed time.Duration
}

// Failed returns whether any errors occurred while compiling this file.
func (r *Result) Failed() bool {
	return r.Report.HasErrors()
}

// Compile compiles the files at the given paths.
//
// The results are in the same order as paths. The returned error is non-nil
// only if ctx expires before every file is compiled.
func (c *Compiler) Compile(ctx context.Context, paths ...string) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	par := c.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}
	sem := semaphore.NewWeighted(int64(par))

	results := make([]*Result, len(paths))
	group, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release(1)
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.compile(path)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// compile runs a single compilation session.
func (c *Compiler) compile(path string) (res *Result) {
	start := time.Now()
	res = &Result{Path: path, Report: report.New(nil)}
	defer func() { res.Elapsed = time.Since(start) }()

	file, err := c.open(path)
	if err != nil {
		res.Report.Error(&report.ErrInFile{Err: err, Path: path})
		return res
	}
	res.File = file
	res.Report.File = file

	defer res.Report.CatchICE(false, func(d *report.Diagnostic) {
		d.With(report.Note("while compiling %q", path))
	})
	res.Program, res.Tokens = parser.ParseFile(file, res.Report, parser.Options{
		Recover:         c.Recover,
		AllowBlankLines: c.AllowBlankLines,
	})
	return res
}

func (c *Compiler) open(path string) (*source.File, error) {
	opener := c.Opener
	if opener == nil {
		opener = source.OS{Indent: c.Indent}
	}

	file, err := opener.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file: %w", err)
	}
	if c.Indent != nil && file.Indent() != *c.Indent {
		file = source.NewFileWithIndent(file.Path(), file.Text(), *c.Indent)
	}
	return file, nil
}
