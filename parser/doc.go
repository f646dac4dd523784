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

// Package parser turns a token stream into an [ast.Program].
//
// The grammar is parsed by recursive descent:
//
//	Program     := Item* EndOfFile
//	Block       := Indent Item* Dedent?
//	Item        := LetBinding | Expr
//	LetBinding  := "let" Identifier "=" LetBody
//	LetBody     := Block | (Expr NewLine)
//	Expr        := Integer
//
// Only a let binding with an expression body consumes the NewLine that ends
// its line, so a blank line, or a bare expression followed by another line at
// the same level, is a structural error. [Options.AllowBlankLines] relaxes
// this by skipping NewLines wherever an item may start.
//
// By default the first structural error ends the parse and no tree is
// returned. [Options.Recover] enables a simple recovery strategy instead,
// which skips to the end of the offending line and keeps going in the
// enclosing program or block.
package parser
