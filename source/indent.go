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
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IndentKind is the character sequence a file uses to denote one level of
// block nesting: either a single tab, or a fixed number of spaces.
//
// The zero IndentKind is [Tab].
type IndentKind struct {
	spaces uint8
}

// Tab returns the IndentKind for files indented with one tab per level.
func Tab() IndentKind {
	return IndentKind{}
}

// Spaces returns the IndentKind for files indented with n spaces per level.
//
// Panics if n is not in the range [1, 255].
func Spaces(n int) IndentKind {
	if n < 1 || n > math.MaxUint8 {
		panic(fmt.Sprintf("brinkc/source: invalid indentation width %d", n))
	}
	return IndentKind{spaces: uint8(n)}
}

// IsTab returns whether this is [Tab].
func (k IndentKind) IsTab() bool {
	return k.spaces == 0
}

// Width returns the number of spaces per indentation level.
//
// Returns zero for [Tab].
func (k IndentKind) Width() int {
	return int(k.spaces)
}

// String implements [fmt.Stringer].
func (k IndentKind) String() string {
	if k.IsTab() {
		return "tab"
	}
	return fmt.Sprintf("spaces(%d)", k.spaces)
}

// MarshalText implements [encoding.TextMarshaler].
func (k IndentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *IndentKind) UnmarshalText(text []byte) error {
	kind, err := ParseIndentKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseIndentKind parses an IndentKind from its textual form.
//
// Accepted forms are "tab", "spaces" (meaning two spaces), "spaces:N" and
// "spaces(N)".
func ParseIndentKind(text string) (IndentKind, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	switch text {
	case "tab", "tabs":
		return Tab(), nil
	case "spaces":
		return Spaces(2), nil
	}

	var digits string
	if rest, ok := strings.CutPrefix(text, "spaces:"); ok {
		digits = rest
	} else if rest, ok := strings.CutPrefix(text, "spaces("); ok {
		digits, ok = strings.CutSuffix(rest, ")")
		if !ok {
			return IndentKind{}, fmt.Errorf("invalid indentation %q: missing `)`", text)
		}
	} else {
		return IndentKind{}, fmt.Errorf("invalid indentation %q: expected `tab` or `spaces:N`", text)
	}

	n, err := strconv.Atoi(strings.TrimSpace(digits))
	if err != nil || n < 1 || n > math.MaxUint8 {
		return IndentKind{}, fmt.Errorf("invalid indentation %q: width must be between 1 and %d", text, math.MaxUint8)
	}
	return Spaces(n), nil
}

// DetectIndent guesses the IndentKind that text is written with.
//
// It looks for the first line that contains something other than whitespace
// and starts with indentation that is not followed by further whitespace. If
// that indentation starts with a tab, the file uses [Tab]; if it is a run of n
// spaces, the file uses Spaces(n). Lines whose indentation is followed by
// another whitespace character (such as a tab after spaces) do not indent any
// code and are skipped, as are lines that start with some other whitespace
// character.
//
// If no line qualifies, returns Spaces(2).
func DetectIndent(text string) IndentKind {
	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimLeftFunc(line, unicode.IsSpace) == "" {
			continue
		}

		switch line[0] {
		case '\t':
			return Tab()
		case ' ':
			n := len(line) - len(strings.TrimLeft(line, " "))
			next, _ := utf8.DecodeRuneInString(line[n:])
			if unicode.IsSpace(next) || n > math.MaxUint8 {
				continue
			}
			return Spaces(n)
		}
	}

	return Spaces(2)
}
