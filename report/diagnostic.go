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
	"runtime"

	"github.com/brink-lang/brinkc/source"
)

// Level represents the severity of a diagnostic message.
type Level int8

const (
	// Internal compiler error. Indicates a panic within the compiler.
	ICE Level = 1 + iota
	// Red. Indicates malformed input that stops compilation.
	Error
	// Yellow. Indicates something that probably should not be ignored.
	Warning
	// Cyan. This is the diagnostics version of "info".
	Remark

	note // Used internally within the diagnostic renderer.
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case ICE:
		return "internal compiler error"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	case note:
		return "note"
	default:
		return fmt.Sprintf("report.Level(%d)", int(l))
	}
}

// Diagnose is an error that can be rendered as a diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set Level nor Err; those are set by the
	// diagnostics framework.
	Diagnose(*Diagnostic)
}

// Diagnostic is a type of error that can be rendered as a rich diagnostic.
//
// Not all Diagnostics are "errors", even though Diagnostic does embed error;
// some represent warnings, or perhaps debugging remarks.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() return is used
	// as the diagnostic message.
	Err error

	// The kind of diagnostic this is, which affects how and whether it is shown
	// to users.
	Level Level

	// The file this diagnostic's snippets point into.
	file *source.File
	// The file this diagnostic occurs in, if it has no snippets.
	inFile string

	snippets    []snippet
	notes, help []string

	// Stack trace information for the diagnostic, for use in debugging
	// the compiler. Only populated when the env var BRINKC_DEBUG is set.
	trace []runtime.Frame
}

type snippet struct {
	span    source.Span
	message string
	primary bool
}

// Message returns this diagnostic's message.
func (d *Diagnostic) Message() string {
	if d.Err == nil {
		return ""
	}
	return d.Err.Error()
}

// File returns the file this diagnostic refers to, if any.
func (d *Diagnostic) File() *source.File {
	return d.file
}

// Path returns the path of the file this diagnostic refers to, or the empty
// string if it does not refer to one.
func (d *Diagnostic) Path() string {
	if d.inFile != "" {
		return d.inFile
	}
	return d.file.Path()
}

// Primary returns this diagnostic's primary span.
//
// Returns false if the diagnostic has no snippets.
func (d *Diagnostic) Primary() (source.Span, bool) {
	for _, snip := range d.snippets {
		if snip.primary {
			return snip.span, true
		}
	}
	return source.Span{}, false
}

// Notes returns the notes attached to this diagnostic.
func (d *Diagnostic) Notes() []string {
	return d.notes
}

// Help returns the help messages attached to this diagnostic.
func (d *Diagnostic) Help() []string {
	return d.help
}

// With applies the given options to this diagnostic.
//
// Nil values are ignored.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option(d)
		}
	}
	return d
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// InFile returns a DiagnosticOption that causes a diagnostic without a
// primary span to mention the given file.
func InFile(path string) DiagnosticOption {
	return func(d *Diagnostic) { d.inFile = path }
}

// Snippet returns a DiagnosticOption that adds a new snippet to the
// diagnostic, with no message.
//
// The first snippet added is the "primary" snippet, and will be rendered
// differently from the others.
func Snippet(at source.Spanner) DiagnosticOption {
	return SnippetAt(at.Span(), "")
}

// Snippetf is like [Snippet], but attaches a message to the snippet.
func Snippetf(at source.Spanner, format string, args ...any) DiagnosticOption {
	return SnippetAt(at.Span(), format, args...)
}

// SnippetAt is like [Snippetf], but takes a span rather than something with
// a Span() method.
func SnippetAt(span source.Span, format string, args ...any) DiagnosticOption {
	snip := snippet{span: span, message: fmt.Sprintf(format, args...)}
	return func(d *Diagnostic) {
		snip.primary = len(d.snippets) == 0
		d.snippets = append(d.snippets, snip)
	}
}

// Note returns a DiagnosticOption that provides the user with context about
// the diagnostic, after the snippets.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.notes = append(d.notes, fmt.Sprintf(format, args...))
	}
}

// Help returns a DiagnosticOption that provides the user with a helpful prose
// suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.help = append(d.help, fmt.Sprintf(format, args...))
	}
}
