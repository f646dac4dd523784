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

// Package ast defines the abstract syntax tree produced by the parser.
//
// Every node carries a [NodeID] and the [source.Span] of text it was parsed
// from. The tree is a tree and not a graph: each node is owned by exactly one
// parent, and there are no back-references.
//
// Nodes should be created with the New* constructors rather than struct
// literals, since the constructors are what assign node IDs. IDs are taken
// from an [IDs] generator in post-order: a node's children always have
// smaller IDs than the node itself, and a post-order walk of a freshly parsed
// tree visits IDs 0, 1, 2, ... with no gaps.
//
// The variant interfaces in this package ([ItemKind], [LetBody] and
// [ExprKind]) are closed. User code should not attempt to implement them.
package ast
