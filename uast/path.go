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

package uast

// Path is a chain of nodes from a root down to some node, root first.
//
// Nodes have no parent pointers; code that needs to know what encloses a node
// walks the tree with [Node.Walk] and carries the path along.
type Path []*Node

// Node returns the last node of the path, or nil if the path is empty.
func (p Path) Node() *Node {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}

// Parent returns the node enclosing [Path.Node], or nil.
func (p Path) Parent() *Node {
	if len(p) < 2 {
		return nil
	}
	return p[len(p)-2]
}

// Enclosing returns the innermost strict ancestor of [Path.Node] that carries
// any of kinds.
func (p Path) Enclosing(kinds ...Kind) (*Node, bool) {
	want := NewKinds(kinds...)
	for i := len(p) - 2; i >= 0; i-- {
		if p[i].kinds.Intersects(want) {
			return p[i], true
		}
	}
	return nil, false
}

// Walk visits every node of this subtree in pre-order, passing the path from
// the receiver to the visited node. If visit returns false, the children of
// that node are skipped.
//
// The path is reused between calls; visit must [slices.Clone] it to retain
// it.
func (n *Node) Walk(visit func(Path) bool) {
	path := make(Path, 0, 16)
	n.walk(&path, visit)
}

func (n *Node) walk(path *Path, visit func(Path) bool) {
	*path = append(*path, n)
	if visit(*path) {
		for _, child := range n.children {
			child.walk(path, visit)
		}
	}
	*path = (*path)[:len(*path)-1]
}
