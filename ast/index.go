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
	"github.com/tidwall/btree"
)

// Index answers "which node is at this offset?" queries over a syntax tree.
//
// Nodes at the same depth of a tree never overlap, so the index keeps one
// ordered map per depth, keyed by the end of each node's span. A lookup
// descends the layers until one of them has no node containing the offset.
type Index struct {
	layers []*btree.Map[int, Node]
}

// NewIndex builds an index over the tree rooted at root.
func NewIndex(root Node) *Index {
	x := new(Index)
	x.insert(root, 0)
	return x
}

func (x *Index) insert(node Node, depth int) {
	if depth == len(x.layers) {
		x.layers = append(x.layers, new(btree.Map[int, Node]))
	}
	x.layers[depth].Set(node.Span().End, node)
	for child := range Children(node) {
		x.insert(child, depth+1)
	}
}

// Len returns the number of nodes in the index.
func (x *Index) Len() int {
	var n int
	for _, layer := range x.layers {
		n += layer.Len()
	}
	return n
}

// NodeAt returns the innermost node whose span contains offset.
//
// Returns false if no node contains it.
func (x *Index) NodeAt(offset int) (Node, bool) {
	path := x.Enclosing(offset)
	if len(path) == 0 {
		return nil, false
	}
	return path[len(path)-1], true
}

// Enclosing returns every node whose span contains offset, outermost first.
func (x *Index) Enclosing(offset int) []Node {
	var path []Node
	for _, layer := range x.layers {
		// Spans are half-open, so the node we want is the one with the least
		// end strictly greater than offset.
		iter := layer.Iter()
		if !iter.Seek(offset+1) || !iter.Value().Span().Contains(offset) {
			break
		}
		path = append(path, iter.Value())
	}
	return path
}
