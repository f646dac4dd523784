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

package report_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brink-lang/brinkc/report"
	"github.com/brink-lang/brinkc/source"
)

func TestSimple(t *testing.T) {
	t.Parallel()

	r := report.New(source.NewFile("a.brk", "let x = let\n"))
	r.Errorf(`expected an expression, but found "Let"`).With(report.SnippetAt(source.NewSpan(8, 11), ""))
	r.Warnf("unused binding").With(report.InFile("b.brk"))

	assert.Equal(t,
		"error: a.brk:8-11: expected an expression, but found \"Let\"\n"+
			"warning: b.brk: unused binding\n",
		r.Render(report.Simple),
	)
	assert.Equal(t, 1, r.Errors())
	assert.Equal(t, 1, r.Warnings())
	assert.True(t, r.HasErrors())
}

func TestMonochrome(t *testing.T) {
	t.Parallel()

	r := report.New(source.NewFile("a.brk", "let x = let\n"))
	r.Errorf(`expected an expression, but found "Let"`).With(
		report.SnippetAt(source.NewSpan(8, 11), "expected an expression"),
		report.Help("a binding's value goes after the `=`"),
	)

	assert.Equal(t, strings.Join([]string{
		`error: expected an expression, but found "Let"`,
		`  --> a.brk:1:9`,
		`   | `,
		` 1 | let x = let`,
		`   |         ^^^ expected an expression`,
		"   = help: a binding's value goes after the `=`",
		``,
		`encountered 1 error and 0 warnings`,
		``,
	}, "\n"), r.Render(report.Monochrome))
}

func TestMonochromeSecondary(t *testing.T) {
	t.Parallel()

	r := report.New(source.NewFile("a.brk", "let x = 1 2\n"))
	r.Errorf("oops").With(
		report.SnippetAt(source.NewSpan(8, 9), "first"),
		report.SnippetAt(source.NewSpan(10, 11), "second"),
		report.Note("extra"),
	)

	assert.Equal(t, strings.Join([]string{
		`error: oops`,
		`  --> a.brk:1:9`,
		`   | `,
		` 1 | let x = 1 2`,
		`   |         ^ - second`,
		`   |         |`,
		`   |         first`,
		`   = note: extra`,
		``,
	}, "\n"), r.Diagnostics[0].Render(report.Monochrome)+"\n")
}

func TestMonochromeTabs(t *testing.T) {
	t.Parallel()

	// The tab expands to the next tabstop, and the underline follows it.
	r := report.New(source.NewFile("a.brk", "let x =\n\t@\n"))
	r.Errorf("unrecognized character '@'").With(report.SnippetAt(source.NewSpan(9, 10), ""))

	out := r.Diagnostics[0].Render(report.Monochrome)
	assert.Contains(t, out, " 2 |     @\n")
	assert.Contains(t, out, "   |     ^")
	assert.Contains(t, out, "--> a.brk:2:2")
}

func TestColored(t *testing.T) {
	t.Parallel()

	r := report.New(source.NewFile("a.brk", "1\n"))
	r.Warnf("unused value").With(report.Snippet(source.NewSpan(0, 1)))

	out := r.Render(report.Colored)
	assert.Contains(t, out, "\033[1;33mwarning: unused value\033[0m")
	assert.Contains(t, out, "encountered 0 errors and 1 warning")
}

func TestSpanless(t *testing.T) {
	t.Parallel()

	r := report.New(nil)
	r.Error(&report.ErrInFile{Err: errors.New("file not found"), Path: "gone.brk"})

	assert.Equal(t, "error: gone.brk: file not found\n", r.Render(report.Simple))
	assert.Contains(t, r.Render(report.Monochrome), " --> gone.brk:?:?")
	_, ok := r.Diagnostics[0].Primary()
	assert.False(t, ok)

	err := &report.AsError{Report: r}
	assert.EqualError(t, err, "error: gone.brk: file not found")
}

func TestCatchICE(t *testing.T) {
	t.Parallel()

	r := report.New(source.NewFile("a.brk", ""))
	func() {
		defer r.CatchICE(false, func(d *report.Diagnostic) {
			d.With(report.Note("while testing"))
		})
		panic("boom")
	}()

	require.Len(t, r.Diagnostics, 1)
	d := r.Diagnostics[0]
	assert.Equal(t, report.ICE, d.Level)
	assert.Equal(t, "boom", d.Message())
	assert.Equal(t, "a.brk", d.Path())
	assert.Contains(t, d.Notes(), "while testing")
	assert.True(t, r.HasErrors())

	assert.Panics(t, func() {
		defer r.CatchICE(true, nil)
		panic("again")
	})
	assert.Len(t, r.Diagnostics, 2)
}

func TestAppend(t *testing.T) {
	t.Parallel()

	a := report.New(source.NewFile("a.brk", "1\n"))
	a.Errorf("first").With(report.SnippetAt(source.NewSpan(0, 1), ""))
	b := report.New(source.NewFile("b.brk", "2\n"))
	b.Errorf("second").With(report.SnippetAt(source.NewSpan(0, 1), ""))

	all := report.New(nil)
	all.Append(a)
	all.Append(b)
	assert.Equal(t,
		"error: a.brk:0-1: first\nerror: b.brk:0-1: second\n",
		all.Render(report.Simple),
	)
}

func TestToProto(t *testing.T) {
	t.Parallel()

	r := report.New(source.NewFile("a.brk", "let x = let\n"))
	r.Errorf("bad").With(report.SnippetAt(source.NewSpan(8, 11), "here"), report.Note("n"))

	msg, err := r.ToProto()
	require.NoError(t, err)
	assert.InDelta(t, 1, msg.GetFields()["errors"].GetNumberValue(), 0)

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded struct {
		Errors      int
		Diagnostics []struct {
			Level, Message, Path string
			Span                 struct{ Start, End, Line, Column int }
			Notes                []string
		}
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 1, decoded.Errors)
	require.Len(t, decoded.Diagnostics, 1)
	d := decoded.Diagnostics[0]
	assert.Equal(t, "error", d.Level)
	assert.Equal(t, "bad", d.Message)
	assert.Equal(t, "a.brk", d.Path)
	assert.Equal(t, 8, d.Span.Start)
	assert.Equal(t, 11, d.Span.End)
	assert.Equal(t, 9, d.Span.Column)
	assert.Equal(t, []string{"n"}, d.Notes)
}
