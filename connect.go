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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Connection is an edge of the dual contour graph. Both nodes are leaves
// with a vertex, and their boxes share an edge which the curve crosses.
type Connection struct {
	A, B *Node
}

// LeafConnections finds all pairs of neighbouring leaves whose vertices
// should be joined.
//
// The tree is walked along every internal seam. Two leaves are connected
// if both have a vertex and the sign of f differs between the two ends of
// their common edge. NaN values never connect.
func LeafConnections(f Field, root *Node) []Connection {
	c := &connector{f: f}
	c.walk(root)
	return c.res
}

type connector struct {
	f   Field
	res []Connection
}

func (c *connector) walk(n *Node) {
	if n == nil || n.Kind != KindRoot {
		return
	}
	ch := &n.Children
	c.leftRight(ch[BottomLeft], ch[BottomRight])
	c.leftRight(ch[TopLeft], ch[TopRight])
	c.bottomTop(ch[BottomLeft], ch[TopLeft])
	c.bottomTop(ch[BottomRight], ch[TopRight])
	for _, child := range ch {
		c.walk(child)
	}
}

// leftRight handles the seam between a and b, where b is to the right of a.
func (c *connector) leftRight(a, b *Node) {
	switch {
	case a.Kind == KindRoot && b.Kind == KindRoot:
		c.leftRight(a.Children[BottomRight], b.Children[BottomLeft])
		c.leftRight(a.Children[TopRight], b.Children[TopLeft])
	case a.Kind == KindRoot:
		c.leftRight(a.Children[BottomRight], b)
		c.leftRight(a.Children[TopRight], b)
	case b.Kind == KindRoot:
		c.leftRight(a, b.Children[BottomLeft])
		c.leftRight(a, b.Children[TopLeft])
	default:
		x := a.Box.URx
		lo := max(a.Box.LLy, b.Box.LLy)
		hi := min(a.Box.URy, b.Box.URy)
		c.try(a, b, vec.Vec2{X: x, Y: lo}, vec.Vec2{X: x, Y: hi})
	}
}

// bottomTop handles the seam between a and b, where b is above a.
func (c *connector) bottomTop(a, b *Node) {
	switch {
	case a.Kind == KindRoot && b.Kind == KindRoot:
		c.bottomTop(a.Children[TopLeft], b.Children[BottomLeft])
		c.bottomTop(a.Children[TopRight], b.Children[BottomRight])
	case a.Kind == KindRoot:
		c.bottomTop(a.Children[TopLeft], b)
		c.bottomTop(a.Children[TopRight], b)
	case b.Kind == KindRoot:
		c.bottomTop(a, b.Children[BottomLeft])
		c.bottomTop(a, b.Children[BottomRight])
	default:
		y := a.Box.URy
		lo := max(a.Box.LLx, b.Box.LLx)
		hi := min(a.Box.URx, b.Box.URx)
		c.try(a, b, vec.Vec2{X: lo, Y: y}, vec.Vec2{X: hi, Y: y})
	}
}

// try connects the leaves a and b if the curve crosses the edge from p to
// q which they share.
func (c *connector) try(a, b *Node, p, q vec.Vec2) {
	if a.Kind != KindLeaf || b.Kind != KindLeaf || a.Vertex == nil || b.Vertex == nil {
		return
	}
	if p.X > q.X || p.Y > q.Y {
		return // no common edge
	}
	fp := c.f.Value(p)
	fq := c.f.Value(q)
	if math.IsNaN(fp) || math.IsNaN(fq) || sign(fp) == sign(fq) {
		return
	}
	c.res = append(c.res, Connection{A: a, B: b})
}

func sign(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
