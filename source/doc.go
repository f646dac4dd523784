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

// Package source provides the types for working with Brink source files and
// spans within them.
//
// [File] is a source file that has already been read into memory, which tracks
// its contents, its path, the [IndentKind] it is written with, and
// book-keeping information for looking up line and column information.
// [Span] is a half-open byte range within some file, which is attached to
// every token and every syntax tree node. [Opener] is a common interface for
// loading [File]s from somewhere.
package source
