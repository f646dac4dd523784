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

import "fmt"

// NodeID is an opaque identifier for a node in a syntax tree.
//
// IDs are unique within a single parse session, and are ordered by the
// order in which their nodes were constructed.
type NodeID struct {
	n int
}

// Int returns the integer value of this ID.
func (id NodeID) Int() int {
	return id.n
}

// Less returns whether id was allocated before that.
func (id NodeID) Less(that NodeID) bool {
	return id.n < that.n
}

// String implements [fmt.Stringer].
func (id NodeID) String() string {
	return fmt.Sprintf("NodeID(%d)", id.n)
}

// IDs is a generator of [NodeID]s.
//
// Each parse session owns its own generator. The zero value is ready to use,
// and starts from zero. An IDs is not safe for concurrent use.
type IDs struct {
	next int
}

// Next allocates a fresh ID.
func (g *IDs) Next() NodeID {
	id := NodeID{g.next}
	g.next++
	return id
}

// Count returns the number of IDs allocated so far.
func (g *IDs) Count() int {
	return g.next
}
