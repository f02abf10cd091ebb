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
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Quadrant identifies one of the four children of a box.
type Quadrant uint8

// The quadrants of a box, in the order used for children and corners.
const (
	BottomLeft Quadrant = iota
	BottomRight
	TopLeft
	TopRight
)

// QuadrantBox returns quadrant q of the box b. The split is at the
// midpoint of b, so that neighbouring boxes share their edge coordinates
// exactly.
func QuadrantBox(b rect.Rect, q Quadrant) rect.Rect {
	midX := (b.LLx + b.URx) / 2
	midY := (b.LLy + b.URy) / 2
	switch q {
	case BottomLeft:
		return rect.Rect{LLx: b.LLx, LLy: b.LLy, URx: midX, URy: midY}
	case BottomRight:
		return rect.Rect{LLx: midX, LLy: b.LLy, URx: b.URx, URy: midY}
	case TopLeft:
		return rect.Rect{LLx: b.LLx, LLy: midY, URx: midX, URy: b.URy}
	default:
		return rect.Rect{LLx: midX, LLy: midY, URx: b.URx, URy: b.URy}
	}
}

// boxCorners returns the corners of b in quadrant order.
func boxCorners(b rect.Rect) [4]vec.Vec2 {
	return [4]vec.Vec2{
		{X: b.LLx, Y: b.LLy},
		{X: b.URx, Y: b.LLy},
		{X: b.LLx, Y: b.URy},
		{X: b.URx, Y: b.URy},
	}
}

// BoxPath locates a node relative to the root box, as the sequence of
// quadrants taken from the root. The empty path is the root.
type BoxPath []Quadrant

// Child returns the path of quadrant q of p.
// The result never shares memory with p.
func (p BoxPath) Child(q Quadrant) BoxPath {
	c := make(BoxPath, len(p)+1)
	copy(c, p)
	c[len(p)] = q
	return c
}

// Box returns the box p refers to, inside the given root box.
func (p BoxPath) Box(root rect.Rect) rect.Rect {
	b := root
	for _, q := range p {
		b = QuadrantBox(b, q)
	}
	return b
}

func (p BoxPath) String() string {
	var b strings.Builder
	for _, q := range p {
		b.WriteByte('0' + byte(q))
	}
	return b.String()
}
