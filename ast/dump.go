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

package ast

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/brink-lang/brinkc/source"
)

// Dump writes an indented, human-readable rendition of the tree rooted at
// node to w, one node per line:
//
//	Program NodeID(5) 0-10
//	  Item NodeID(4) 0-10
//	    LetBinding NodeID(3) 0-10
//	      Literal(Identifier) NodeID(0) 4-5 "x"
//	      ...
//
// file is used to print the text of literals, and may be nil.
func Dump(w io.Writer, file *source.File, node Node) error {
	buf := bufio.NewWriter(w)
	dump(buf, file, node, 0)
	return buf.Flush()
}

func dump(w *bufio.Writer, file *source.File, node Node, depth int) {
	w.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(w, "%s %v %v", Describe(node), node.ID(), node.Span())
	if lit, ok := node.(*Literal); ok && file != nil {
		fmt.Fprintf(w, " %q", lit.Text(file))
	}
	w.WriteByte('\n')

	for child := range Children(node) {
		dump(w, file, child, depth+1)
	}
}

// Describe returns a short name for the kind of node, such as "LetBinding"
// or "Literal(Integer)".
func Describe(node Node) string {
	switch node := node.(type) {
	case *Program:
		return "Program"
	case *Block:
		return "Block"
	case *Item:
		return "Item"
	case *LetBinding:
		return "LetBinding"
	case *Expr:
		return "Expr"
	case *Literal:
		return fmt.Sprintf("Literal(%v)", node.Kind)
	default:
		return fmt.Sprintf("%T", node)
	}
}
