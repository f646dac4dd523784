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

// Package brinkc provides the entry point for compiling Brink source files.
//
// Compilation of a single file is a short pipeline:
//
//  1. Load the file and decide its indentation style.
//     Also see: source.Opener, source.DetectIndent
//  2. Lex it into tokens, including the Indent and Dedent tokens that encode
//     block structure.
//     Also see: lexer.Tokenize
//  3. Report malformed indentation and unrecognized characters. If there are
//     any, compilation of the file stops here.
//     Also see: lexer.Check
//  4. Parse the tokens into a syntax tree.
//     Also see: parser.Parse
//
// A [Compiler] runs this pipeline over many files at once. Every file is an
// independent session, with its own diagnostics and its own node ID
// generator, so files are compiled in parallel.
//
// A minimal Compiler, which reads files from the local file system and
// detects each file's indentation, is just the zero value:
//
//	var compiler brinkc.Compiler
//	results, err := compiler.Compile(ctx, "main.brk")
//
// The returned error only reports problems with the compilation itself, such
// as cancellation. Problems with the files being compiled are found in each
// [Result]'s report.
package brinkc
