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
	"fmt"
	"iter"
)

// Children returns an iterator over the direct children of node, in source
// order.
func Children(node Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		switch node := node.(type) {
		case *Program:
			for _, item := range node.Items {
				if !yield(item) {
					return
				}
			}
		case *Block:
			for _, item := range node.Items {
				if !yield(item) {
					return
				}
			}
		case *Item:
			yield(node.Kind)
		case *LetBinding:
			if yield(node.Name) {
				yield(node.Body)
			}
		case *Expr:
			yield(node.Kind)
		case *Literal:
		default:
			panic(fmt.Sprintf("brinkc/ast: unexpected node type %T", node))
		}
	}
}

// Walk traverses the tree rooted at node in pre-order.
//
// visit is called on each node before its children; if it returns false,
// the children of that node are skipped.
func Walk(node Node, visit func(Node) bool) {
	if !visit(node) {
		return
	}
	for child := range Children(node) {
		Walk(child, visit)
	}
}

// PostOrder returns an iterator over the tree rooted at node in post-order:
// every node is yielded after all of its children.
//
// For a tree built by a single parse, this yields nodes in order of
// increasing [NodeID].
func PostOrder(node Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		postOrder(node, yield)
	}
}

func postOrder(node Node, yield func(Node) bool) bool {
	for child := range Children(node) {
		if !postOrder(child, yield) {
			return false
		}
	}
	return yield(node)
}
