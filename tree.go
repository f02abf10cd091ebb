// seehuhn.de/go/implicit - contour lines of implicit equations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package implicit

import (
	"fmt"
	"iter"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Kind says which variant a [Node] is.
type Kind uint8

const (
	// KindRoot is an inner node with four children.
	KindRoot Kind = iota

	// KindLeaf is a node at plot depth where the curve may cross.
	KindLeaf

	// KindPositive, KindNegative and KindZero are pruned nodes: the
	// function is non-negative, negative or exactly zero at all four
	// corners. A NaN corner prevents pruning.
	KindPositive
	KindNegative
	KindZero
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindLeaf:
		return "leaf"
	case KindPositive:
		return "positive"
	case KindNegative:
		return "negative"
	case KindZero:
		return "zero"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is a node of the quadtree.
//
// Which fields are used depends on Kind. Children is set for root nodes
// only, Class, Segments and Vertex for leaves only. Trees are rebuilt from
// scratch whenever the input changes and are never modified afterwards.
type Node struct {
	Kind Kind
	Box  rect.Rect
	Path BoxPath

	Children [4]*Node

	// Class has one bit per negative corner, see [Classify].
	Class    uint8
	Segments []Segment

	// Vertex is the representative point of the curve inside the leaf, or
	// nil if the leaf has fewer than two boundary crossings.
	Vertex *vec.Vec2
}

// All returns all nodes of the tree rooted at n, parents before children,
// children in quadrant order.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(func(m *Node) bool { return yield(m) })
	}
}

// Leaves returns the leaf nodes of the tree rooted at n, in quadrant
// order.
func (n *Node) Leaves() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(func(m *Node) bool {
			if m.Kind != KindLeaf {
				return true
			}
			return yield(m)
		})
	}
}

func (n *Node) walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	if n.Kind != KindRoot {
		return true
	}
	for _, c := range n.Children {
		if !c.walk(visit) {
			return false
		}
	}
	return true
}
