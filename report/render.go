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

package report

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Render renders this diagnostic report in a format suitable for showing to a
// user.
//
// For the Monochrome and Colored styles, the diagnostics are followed by a
// tally of errors and warnings, if there are any.
func (r *Report) Render(style Style) string {
	var out strings.Builder
	for i := range r.Diagnostics {
		out.WriteString(r.Diagnostics[i].Render(style))
		out.WriteString("\n")
		if style != Simple {
			out.WriteString("\n")
		}
	}
	if style == Simple {
		return out.String()
	}

	var color color
	if style == Colored {
		color = ansiColor()
	}

	errors, warnings := r.Errors(), r.Warnings()
	switch {
	case errors > 0:
		fmt.Fprintln(&out, color.bRed+Summary(errors, warnings)+color.reset)
	case warnings > 0:
		fmt.Fprintln(&out, color.bYellow+Summary(errors, warnings)+color.reset)
	}
	return out.String()
}

// Summary returns a sentence tallying the given numbers of errors and
// warnings.
func Summary(errors, warnings int) string {
	pluralize := func(count int, what string) string {
		if count == 1 {
			return "1 " + what
		}
		return fmt.Sprint(count, " ", what, "s")
	}

	return fmt.Sprintf("encountered %s and %s",
		pluralize(errors, "error"), pluralize(warnings, "warning"))
}

// Render renders this diagnostic in a format suitable for showing to a user.
func (d *Diagnostic) Render(style Style) string {
	// For the simple style, we print byte offsets, which tools can use to
	// slice the file directly.
	if style == Simple {
		path := d.Path()
		if path == "" {
			path = "<unknown>"
		}
		span, ok := d.Primary()
		if !ok {
			return fmt.Sprintf("%s: %s: %s", d.Level, path, d.Message())
		}
		return fmt.Sprintf("%s: %s:%v: %s", d.Level, path, span, d.Message())
	}

	// For the other styles, we imitate the Rust compiler. See
	// https://github.com/rust-lang/rustc-dev-guide/blob/master/src/diagnostics.md
	var color color
	if style == Colored {
		color = ansiColor()
	}

	var out strings.Builder
	fmt.Fprint(&out, color.BoldForLevel(d.Level), d.Level, ": ", d.Message(), color.reset)

	var lines []underline
	if d.file != nil {
		for _, snip := range d.snippets {
			lines = append(lines, newUnderline(d, snip))
		}
	}

	// Figure out how wide the line bar needs to be. This is given by the
	// width of the largest line number among the snippets.
	var greatestLine int
	for _, ul := range lines {
		greatestLine = max(greatestLine, ul.line)
	}
	lineBarWidth := max(2, len(fmt.Sprint(greatestLine)))
	pad := strings.Repeat(" ", lineBarWidth)

	if len(lines) > 0 {
		span, _ := d.Primary()
		loc := d.file.Location(span.Start)
		fmt.Fprintf(&out, "\n%s%s--> %s:%v", color.nBlue, pad, d.Path(), loc)
		fmt.Fprintf(&out, "\n%s%s | ", color.nBlue, pad)
		renderWindow(d, lines, lineBarWidth, &color, &out)
	} else {
		path := d.Path()
		if path == "" {
			path = "<unknown>"
		}
		fmt.Fprintf(&out, "\n%s%s--> %s:?:?", color.nBlue, pad[1:], path)
	}

	// Render the footers. For simplicity we collect them into an array first.
	var footers [][2]string
	for _, note := range d.notes {
		footers = append(footers, [2]string{"note", note})
	}
	for _, help := range d.help {
		footers = append(footers, [2]string{"help", help})
	}
	for i, frame := range d.trace {
		if debugMode < debugFull && i > 0 {
			break
		}
		footers = append(footers, [2]string{"debug", fmt.Sprintf("at %s", frame.Function)})
		footers = append(footers, [2]string{"debug", fmt.Sprintf("   %s:%d", frame.File, frame.Line)})
	}
	for _, footer := range footers {
		fmt.Fprintf(&out, "\n%s%s = %s%s: %s%s", color.nBlue, pad, color.bCyan, footer[0], color.reset, footer[1])
	}

	return out.String()
}

// underline is a snippet that has been resolved to a single line of its file.
//
// Columns are 1-indexed terminal columns, and end is exclusive.
type underline struct {
	line       int
	start, end int
	level      Level
	message    string
}

func newUnderline(d *Diagnostic, snip snippet) underline {
	file := d.file
	loc := file.Location(snip.span.Start)
	lineStart, lineEnd := file.LineOffsets(loc.Line)
	text := strings.TrimSuffix(file.Text()[lineStart:lineEnd], "\n")

	// Spans that run past the end of their first line are cut off there.
	end := min(snip.span.End, lineStart+len(text))
	start := stringWidth(0, text[:snip.span.Start-lineStart], nil)
	width := stringWidth(0, text[:max(end, snip.span.Start)-lineStart], nil)

	ul := underline{
		line:    loc.Line,
		start:   start + 1,
		end:     width + 1,
		level:   note,
		message: snip.message,
	}
	if snip.primary {
		ul.level = d.Level
	}
	// Make sure no empty underlines exist.
	if ul.end == ul.start {
		ul.end++
	}
	return ul
}

func (u underline) Len() int {
	return u.end - u.start
}

func cmpUnderlines(a, b underline) int {
	if diff := a.line - b.line; diff != 0 {
		return diff
	}
	if diff := a.start - b.start; diff != 0 {
		return diff
	}
	return a.Len() - b.Len()
}

// renderWindow renders the source lines that the given underlines point to,
// annotated with the underlines themselves.
func renderWindow(d *Diagnostic, underlines []underline, lineBarWidth int, color *color, out *strings.Builder) {
	underlines = slices.Clone(underlines)
	slices.SortFunc(underlines, cmpUnderlines)
	pad := strings.Repeat(" ", lineBarWidth)

	prevLine := -1
	for _, part := range partition(underlines, func(a, b *underline) bool { return a.line != b.line }) {
		lineno := part[0].line
		if prevLine != -1 && lineno > prevLine+1 {
			// Generate a visual break between non-adjacent lines.
			fmt.Fprintf(out, "\n%s%s ~ ", color.bBlue, pad)
		}
		prevLine = lineno

		var text strings.Builder
		stringWidth(0, d.file.Line(lineno), &text)
		fmt.Fprintf(out, "\n%s%*d | %s%s", color.nBlue, lineBarWidth, lineno, color.reset, text.String())

		for _, row := range underlineRows(part, color) {
			fmt.Fprintf(out, "\n%s%s | %s", color.bBlue, pad, row)
		}
	}
}

// underlineRows lays out the underline rows for a single line of source.
func underlineRows(part []underline, color *color) []string {
	// Lay out the physical underlines longest first, so that shorter ones
	// are drawn on top of them.
	byLen := slices.Clone(part)
	slices.SortStableFunc(byLen, func(a, b underline) int { return b.Len() - a.Len() })
	var buf []Level
	for _, ul := range byLen {
		for len(buf) < ul.end-1 {
			buf = append(buf, 0)
		}
		for j := ul.start - 1; j < ul.end-1; j++ {
			buf[j] = ul.level
		}
	}

	var row strings.Builder
	for _, run := range partition(buf, func(a, b *Level) bool { return *a != *b }) {
		level := run[0]
		if level == 0 {
			row.WriteString(color.reset)
		} else {
			row.WriteString(color.BoldForLevel(level))
		}
		for range run {
			switch level {
			case 0:
				row.WriteByte(' ')
			case note, Remark:
				row.WriteByte('-')
			default:
				row.WriteByte('^')
			}
		}
	}

	// The message of the rightmost underline goes inline with the underlines.
	rightmost := 0
	for i, ul := range part {
		if ul.end > part[rightmost].end {
			rightmost = i
		}
	}
	first := strings.TrimRight(row.String(), " ")
	if msg := part[rightmost].message; msg != "" {
		first += " " + color.BoldForLevel(part[rightmost].level) + msg
	}
	rows := []string{first + color.reset}

	// Every other message gets a row of its own, with a pipe above it that
	// connects it to its underline.
	var rest []underline
	for i, ul := range part {
		if i != rightmost && ul.message != "" {
			rest = append(rest, ul)
		}
	}
	pipes := func(uls []underline) *strings.Builder {
		var b strings.Builder
		var column int
		for _, ul := range uls {
			if ul.start-1 < column {
				continue
			}
			b.WriteString(strings.Repeat(" ", ul.start-1-column))
			b.WriteString(color.BoldForLevel(ul.level))
			b.WriteByte('|')
			b.WriteString(color.reset)
			column = ul.start
		}
		return &b
	}
	for len(rest) > 0 {
		rows = append(rows, pipes(rest).String())

		last := rest[len(rest)-1]
		rest = rest[:len(rest)-1]
		b := pipes(rest)
		column := 0
		if len(rest) > 0 {
			column = rest[len(rest)-1].start
		}
		b.WriteString(strings.Repeat(" ", max(0, last.start-1-column)))
		b.WriteString(color.BoldForLevel(last.level))
		b.WriteString(last.message)
		b.WriteString(color.reset)
		rows = append(rows, b.String())
	}
	return rows
}

// color is the colors used for pretty-rendering diagnostics.
type color struct {
	reset string
	// Normal colors.
	nRed, nYellow, nCyan, nBlue string
	// Bold colors.
	bRed, bYellow, bCyan, bBlue string
}

func ansiColor() color {
	return color{
		reset:   "\033[0m",
		nRed:    "\033[0;31m",
		nYellow: "\033[0;33m",
		nCyan:   "\033[0;36m",
		nBlue:   "\033[0;34m",
		bRed:    "\033[1;31m",
		bYellow: "\033[1;33m",
		bCyan:   "\033[1;36m",
		bBlue:   "\033[1;34m",
	}
}

func (c color) BoldForLevel(l Level) string {
	switch l {
	case ICE, Error:
		return c.bRed
	case Warning:
		return c.bYellow
	case Remark:
		return c.bCyan
	case note:
		return c.bBlue
	default:
		return ""
	}
}

// partition returns an iterator of subslices of s such that each yielded
// slice is delimited according to delimit. Also yields the starting index of
// the subslice.
//
// In other words, suppose delimit is !=. Then, the slice [a a a b c c] is
// yielded as the subslices [a a a], [b], and [c c].
//
// Will never yield an empty slice.
func partition[T any](s []T, delimit func(a, b *T) bool) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		var start int
		for i := 1; i < len(s); i++ {
			if delimit(&s[i-1], &s[i]) {
				if !yield(start, s[start:i]) {
					return
				}
				start = i
			}
		}
		if rest := s[start:]; len(rest) > 0 {
			yield(start, rest)
		}
	}
}
