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
	"runtime/debug"

	"github.com/brink-lang/brinkc/source"
)

const (
	Simple Style = 1 + iota
	Monochrome
	Colored
)

// Style indicates how a diagnostic should be rendered to show a user.
type Style int

// Report is a collection of diagnostics for a single source file.
//
// A Report is not safe for concurrent use; each compilation session owns its
// own.
type Report struct {
	// The file that the spans of this report's diagnostics point into.
	File *source.File

	Diagnostics []Diagnostic
}

// New returns an empty report for the given file.
func New(file *source.File) *Report {
	return &Report{File: file}
}

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	d := r.push(1, err, Error)
	err.Diagnose(d)
	return d
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err Diagnose) *Diagnostic {
	d := r.push(1, err, Warning)
	err.Diagnose(d)
	return d
}

// Remark pushes a remark diagnostic onto this report.
func (r *Report) Remark(err Diagnose) *Diagnostic {
	d := r.push(1, err, Remark)
	err.Diagnose(d)
	return d
}

// Errorf creates a new error diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Error)
}

// Warnf creates a new warning diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Warning)
}

// Remarkf creates a new remark diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Remark)
}

// Errors returns the number of error-level diagnostics in this report,
// including internal compiler errors.
func (r *Report) Errors() int {
	return r.count(func(l Level) bool { return l == Error || l == ICE })
}

// Warnings returns the number of warning-level diagnostics in this report.
func (r *Report) Warnings() int {
	return r.count(func(l Level) bool { return l == Warning })
}

// HasErrors returns whether this report contains any errors.
func (r *Report) HasErrors() bool {
	return r.Errors() > 0
}

// Append copies the diagnostics of other onto the end of this report.
func (r *Report) Append(other *Report) {
	for _, d := range other.Diagnostics {
		if d.file == nil && d.inFile == "" {
			d.file = other.File
		}
		r.Diagnostics = append(r.Diagnostics, d)
	}
}

// CatchICE will recover a panic (an internal compiler error, or ICE) and log
// it as an ICE diagnostic. This has no effect if there is no panic in
// flight.
//
// If resume is true, resumes the recovered panic after logging the
// diagnostic. diagnose is called on the resulting diagnostic, if it is not
// nil.
//
// This should be deferred, so that it runs while the panic unwinds.
func (r *Report) CatchICE(resume bool, diagnose func(*Diagnostic)) {
	panicked := recover()
	if panicked == nil {
		return
	}

	d := r.push(1, fmt.Errorf("%v", panicked), ICE)
	d.With(
		InFile(r.File.Path()),
		Note("this is a bug in brinkc; please report it"),
	)
	if debugMode > debugOff {
		d.With(Note("panic stack:\n%s", debug.Stack()))
	}
	if diagnose != nil {
		diagnose(d)
	}

	if resume {
		panic(panicked)
	}
}

func (r *Report) count(match func(Level) bool) int {
	var n int
	for i := range r.Diagnostics {
		if match(r.Diagnostics[i].Level) {
			n++
		}
	}
	return n
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(skip int, err error, level Level) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Err: err, Level: level, file: r.File})
	d := &r.Diagnostics[len(r.Diagnostics)-1]

	// If debugging is on, capture a stack trace.
	if debugMode > debugOff {
		pc := make([]uintptr, 64)
		pc = pc[:runtime.Callers(skip+2, pc)]

		var zero runtime.Frame
		frames := runtime.CallersFrames(pc)
		for {
			next, more := frames.Next()
			if next != zero {
				d.trace = append(d.trace, next)
			}
			if !more {
				break
			}
		}
	}
	return d
}
