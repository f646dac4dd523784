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
	"math"
)

// Spanner is any type with a [Span].
type Spanner interface {
	Span() Span
}

// Span is a half-open range of byte offsets, [Start, End), into the text of
// some [File].
//
// Spans do not remember which file they belong to; tokens and syntax tree
// nodes carry them by value, and the file is recovered from context. The zero
// Span is the empty span at offset zero.
type Span struct {
	Start, End int
}

// NewSpan constructs a new span.
//
// Panics if start > end or start < 0.
func NewSpan(start, end int) Span {
	if start < 0 || start > end {
		panic(fmt.Sprintf("brinkc/source: invalid span [%d, %d)", start, end))
	}
	return Span{Start: start, End: end}
}

// SpanOfLength constructs a span starting at start that is length bytes long.
func SpanOfLength(start, length int) Span {
	return NewSpan(start, start+length)
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns whether this span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns whether offset falls within this span.
//
// Empty spans contain nothing.
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset < s.End
}

// Span implements [Spanner].
func (s Span) Span() Span {
	return s
}

// String implements [fmt.Stringer].
//
// The format is the one used for diagnostics: start-end.
func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Join returns the smallest span that contains all of the given spans.
//
// If spans is empty, returns the zero span.
func Join(spans ...Spanner) Span {
	if len(spans) == 0 {
		return Span{}
	}

	joined := Span{Start: math.MaxInt}
	for _, spanner := range spans {
		span := spanner.Span()
		joined.Start = min(joined.Start, span.Start)
		joined.End = max(joined.End, span.End)
	}
	return joined
}
