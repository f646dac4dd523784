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

/*
Package report collects and renders diagnostics produced while compiling Brink
source files.

Diagnostics are collected into a [Report], which is a builder over a slice of
[Diagnostic]s for a single [source.File]. Each [Diagnostic] consists of a Go
error plus metadata for rendering: source spans, notes and help text.

A report can be rendered in three styles. [Simple] prints one line per
diagnostic in the form

	error: path/to/file.brk:8-11: expected an expression, but found "Let"

which is convenient for tools that match on byte offsets. [Monochrome] and
[Colored] print a source window around each span, in the manner of the Rust
compiler.

A Report can also be converted into a [structpb.Struct] using
[Report.ToProto], which can be serialized to JSON as an alternative error
output.

# Defining Diagnostics

To define a diagnostic, define a new Go error type and make it implement
[Diagnose]. Callers that use the compiler as a library can then type assert
Diagnostic.Err to find out what went wrong, and every place that emits the
error renders it the same way. For one-off diagnostics, use [Report.Errorf]
and friends.

Diagnostic messages are lowercase and have no trailing period.
*/
package report
