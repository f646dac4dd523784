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

package brinkc_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brink-lang/brinkc"
	"github.com/brink-lang/brinkc/ast"
	"github.com/brink-lang/brinkc/report"
	"github.com/brink-lang/brinkc/source"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	files := source.Map{}
	files.Add("good.brk", "let x =\n  5\n")
	files.Add("bad.brk", "let x = let\n")

	compiler := brinkc.Compiler{Opener: files}
	results, err := compiler.Compile(context.Background(), "good.brk", "bad.brk", "gone.brk")
	require.NoError(t, err)
	require.Len(t, results, 3)

	good := results[0]
	assert.Equal(t, "good.brk", good.Path)
	assert.False(t, good.Failed())
	require.NotNil(t, good.Program)
	require.Len(t, good.Program.Items, 1)
	assert.IsType(t, &ast.Block{}, good.Program.Items[0].Kind.(*ast.LetBinding).Body)
	assert.Len(t, good.Tokens, 7)

	bad := results[1]
	assert.True(t, bad.Failed())
	assert.Nil(t, bad.Program)
	assert.Equal(t,
		"error: bad.brk:8-11: expected an expression, but found \"Let\"\n",
		bad.Report.Render(report.Simple))

	gone := results[2]
	assert.True(t, gone.Failed())
	assert.Nil(t, gone.File)
	assert.Equal(t,
		"error: gone.brk: could not read file: open gone.brk: file does not exist\n",
		gone.Report.Render(report.Simple))
}

func TestCompileIndent(t *testing.T) {
	t.Parallel()

	files := source.Map{}
	files.Add("tabs.brk", "let x =\n\t5\n")

	// Detected, the file is fine.
	results, err := (&brinkc.Compiler{Opener: files}).Compile(context.Background(), "tabs.brk")
	require.NoError(t, err)
	assert.False(t, results[0].Failed())
	assert.True(t, results[0].File.Indent().IsTab())

	// Forced to spaces, it is not.
	spaces := source.Spaces(2)
	results, err = (&brinkc.Compiler{Opener: files, Indent: &spaces}).Compile(context.Background(), "tabs.brk")
	require.NoError(t, err)
	require.True(t, results[0].Failed())
	assert.Equal(t, spaces, results[0].File.Indent())
	assert.Equal(t,
		`mixed indentation: expected 2 spaces, but found '\t'`,
		results[0].Report.Diagnostics[0].Message())
}

func TestCompileRecover(t *testing.T) {
	t.Parallel()

	files := source.Map{}
	files.Add("a.brk", "let x = let\nlet y = 1\n")

	results, err := (&brinkc.Compiler{Opener: files, Recover: true}).Compile(context.Background(), "a.brk")
	require.NoError(t, err)
	assert.True(t, results[0].Failed())
	require.NotNil(t, results[0].Program)
	assert.Len(t, results[0].Program.Items, 1)
}

func TestCompileBlankLines(t *testing.T) {
	t.Parallel()

	files := source.Map{}
	files.Add("a.brk", "let x = 1\n\nlet y = 2\n")

	results, err := (&brinkc.Compiler{Opener: files}).Compile(context.Background(), "a.brk")
	require.NoError(t, err)
	assert.Equal(t,
		"error: a.brk:10-11: expected an expression, but found \"NewLine\"\n",
		results[0].Report.Render(report.Simple))

	results, err = (&brinkc.Compiler{Opener: files, AllowBlankLines: true}).Compile(context.Background(), "a.brk")
	require.NoError(t, err)
	assert.False(t, results[0].Failed())
	assert.Len(t, results[0].Program.Items, 2)
}

func TestCompileParallel(t *testing.T) {
	t.Parallel()

	files := source.Map{}
	var paths []string
	for i := range 32 {
		path := fmt.Sprintf("f%d.brk", i)
		files.Add(path, fmt.Sprintf("let x%d = %d\n", i, i))
		paths = append(paths, path)
	}

	for _, par := range []int{0, 1, 4} {
		results, err := (&brinkc.Compiler{Opener: files, MaxParallelism: par}).Compile(context.Background(), paths...)
		require.NoError(t, err)
		require.Len(t, results, len(paths))
		for i, res := range results {
			assert.Equal(t, paths[i], res.Path)
			assert.False(t, res.Failed(), "%s: %s", res.Path, res.Report.Render(report.Simple))
			// Each file is its own session, so IDs start over.
			assert.Equal(t, 5, res.Program.ID().Int())
		}
	}
}

func TestCompileCanceled(t *testing.T) {
	t.Parallel()

	files := source.Map{}
	files.Add("a.brk", "1\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := (&brinkc.Compiler{Opener: files}).Compile(ctx, "a.brk")
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestCompileFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "main.brk")
	require.NoError(t, os.WriteFile(path, []byte("let x = 5\n"), 0o600))

	var compiler brinkc.Compiler
	results, err := compiler.Compile(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, results[0].Failed())
	assert.Equal(t, path, results[0].File.Path())
	assert.Positive(t, results[0].Elapsed)
}
