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

package source

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"
)

// File is a Brink source file that has been loaded into memory.
//
// It contains the file's indentation style and additional book-keeping
// information for resolving span locations. Files are immutable once created.
//
// A nil *File behaves like an empty file with the path name "".
type File struct {
	path, text string
	indent     IndentKind

	once sync.Once
	// The byte offset of the start of each line. Given a byte offset, the
	// line containing it is found by binary search.
	lineIndex []int
}

// Location is a user-displayable location within a source code file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed. The column is
	// measured in runes.
	Line, Column int
}

// String implements [fmt.Stringer].
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// NewFile constructs a new source file, detecting its indentation style with
// [DetectIndent].
func NewFile(path, text string) *File {
	return NewFileWithIndent(path, text, DetectIndent(text))
}

// NewFileWithIndent constructs a new source file with an explicit indentation
// style.
func NewFileWithIndent(path, text string, indent IndentKind) *File {
	return &File{path: path, text: text, indent: indent}
}

// Path returns this file's path.
//
// It doesn't need to be a real filesystem path; it is only used for
// diagnostics.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Indent returns the indentation style this file is lexed with.
func (f *File) Indent() IndentKind {
	if f == nil {
		return Spaces(2)
	}
	return f.indent
}

// Len returns the length of this file's text, in bytes.
func (f *File) Len() int {
	return len(f.Text())
}

// Slice returns the text covered by span.
//
// Panics if span does not lie within this file.
func (f *File) Slice(span Span) string {
	if span.End > f.Len() {
		panic(fmt.Sprintf("brinkc/source: span %v out of bounds for %q (len %d)", span, f.Path(), f.Len()))
	}
	return f.Text()[span.Start:span.End]
}

// EOF returns the empty span at the very end of this file.
func (f *File) EOF() Span {
	return Span{Start: f.Len(), End: f.Len()}
}

// Location computes the line and column for the given byte offset.
//
// This operation is O(log n).
func (f *File) Location(offset int) Location {
	if f == nil || offset == 0 {
		return Location{Offset: 0, Line: 1, Column: 1}
	}

	line := f.LineByOffset(offset)
	start := f.lines()[line]
	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: utf8.RuneCountInString(f.text[start:offset]) + 1,
	}
}

// LineByOffset returns the 0-indexed line number containing offset.
func (f *File) LineByOffset(offset int) int {
	line, exact := slices.BinarySearch(f.lines(), offset)
	if !exact {
		line--
	}
	return line
}

// Line returns the given 1-indexed line, without its trailing newline.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return strings.TrimSuffix(f.text[start:end], "\n")
}

// LineOffsets returns the offsets for the given 1-indexed line, including its
// trailing newline.
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lines()
	if len(lines) == line {
		return lines[line-1], f.Len()
	}
	return lines[line-1], lines[line]
}

// Lines returns the number of lines in this file.
//
// A trailing newline begins a final, empty line.
func (f *File) Lines() int {
	return len(f.lines())
}

func (f *File) lines() []int {
	if f == nil {
		return []int{0}
	}

	f.once.Do(func() {
		f.lineIndex = append(f.lineIndex, 0)
		for i := range len(f.text) {
			if f.text[i] == '\n' {
				f.lineIndex = append(f.lineIndex, i+1)
			}
		}
	})
	return f.lineIndex
}
