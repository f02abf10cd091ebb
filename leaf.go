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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Corners holds the function values at the corners of a box, in quadrant
// order.
type Corners [4]float64

// Classify returns the 4-bit sign class of a box. Bits 8, 4, 2 and 1 are
// set if the value at the bottom-left, bottom-right, top-left and
// top-right corner, respectively, is negative. NaN counts as non-negative.
func Classify(v Corners) uint8 {
	var class uint8
	if v[BottomLeft] < 0 {
		class |= 8
	}
	if v[BottomRight] < 0 {
		class |= 4
	}
	if v[TopLeft] < 0 {
		class |= 2
	}
	if v[TopRight] < 0 {
		class |= 1
	}
	return class
}

// Edge identifies a side of a box.
type Edge uint8

// The sides of a box.
const (
	EdgeBottom Edge = iota
	EdgeTop
	EdgeLeft
	EdgeRight
)

// edgeEnds gives the corners of each edge, always ordered bottom to top
// or left to right.
var edgeEnds = [4][2]Quadrant{
	EdgeBottom: {BottomLeft, BottomRight},
	EdgeTop:    {TopLeft, TopRight},
	EdgeLeft:   {BottomLeft, TopLeft},
	EdgeRight:  {BottomRight, TopRight},
}

// segmentTable lists, for every sign class, the pairs of edges crossed by
// the curve. The saddle classes 6 and 9 always pair each negative corner
// with its own two edges, without sampling the centre.
var segmentTable = [16][][2]Edge{
	0:  nil,
	1:  {{EdgeTop, EdgeRight}},
	2:  {{EdgeLeft, EdgeTop}},
	3:  {{EdgeLeft, EdgeRight}},
	4:  {{EdgeBottom, EdgeRight}},
	5:  {{EdgeBottom, EdgeTop}},
	6:  {{EdgeLeft, EdgeTop}, {EdgeBottom, EdgeRight}},
	7:  {{EdgeBottom, EdgeLeft}},
	8:  {{EdgeBottom, EdgeLeft}},
	9:  {{EdgeBottom, EdgeLeft}, {EdgeTop, EdgeRight}},
	10: {{EdgeBottom, EdgeTop}},
	11: {{EdgeBottom, EdgeRight}},
	12: {{EdgeLeft, EdgeRight}},
	13: {{EdgeLeft, EdgeTop}},
	14: {{EdgeTop, EdgeRight}},
	15: nil,
}

// SegmentEdges returns the pairs of edges crossed by the curve in a box
// of the given class.
func SegmentEdges(class uint8) [][2]Edge {
	return segmentTable[class&15]
}

// Segment is a piece of the curve inside a leaf, connecting two points on
// the boundary of the leaf box.
type Segment struct {
	A, B vec.Vec2
}

// LeafSegments returns the marching squares segments of a box with corner
// values v and sign class class.
func LeafSegments(box rect.Rect, v Corners, class uint8) []Segment {
	pairs := SegmentEdges(class)
	if len(pairs) == 0 {
		return nil
	}
	corners := boxCorners(box)
	crossing := func(e Edge) vec.Vec2 {
		i, j := edgeEnds[e][0], edgeEnds[e][1]
		return EdgeCrossing(corners[i], corners[j], v[i], v[j])
	}
	segs := make([]Segment, len(pairs))
	for k, pair := range pairs {
		segs[k] = Segment{A: crossing(pair[0]), B: crossing(pair[1])}
	}
	return segs
}

// EdgeCrossing estimates where the line from a to b crosses zero, by
// linear interpolation of the values fa and fb. If the interpolation
// parameter is undefined the midpoint is used. The result always lies on
// the segment from a to b.
func EdgeCrossing(a, b vec.Vec2, fa, fb float64) vec.Vec2 {
	t := 0.5
	if fa != fb {
		t = -fa / (fb - fa)
		if math.IsNaN(t) || math.IsInf(t, 0) {
			t = 0.5
		}
	}
	t = min(max(t, 0), 1)
	return vec.Vec2{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
}

// LeafVertex chooses the representative point of a leaf.
//
// Every segment endpoint p, together with the gradient of f at p, defines
// a tangent line of the curve. The vertex is the point of an 11×11 grid
// over the box which minimises the sum of squared distances to these
// lines. Where the gradient vanishes, the plain distance to p is added
// instead. LeafVertex returns nil if there are fewer than two endpoints.
func LeafVertex(f Field, box rect.Rect, segs []Segment) *vec.Vec2 {
	if len(segs) == 0 {
		return nil
	}

	n := 2 * len(segs)
	pts := make([]vec.Vec2, 0, n)
	normals := make([]vec.Vec2, 0, n)
	for _, s := range segs {
		pts = append(pts, s.A, s.B)
	}
	for _, p := range pts {
		g := f.Gradient(p)
		l := g.Length()
		if l > 0 && !math.IsInf(l, 0) && !math.IsNaN(l) {
			normals = append(normals, g.Mul(1/l))
		} else {
			normals = append(normals, vec.Vec2{})
		}
	}

	best := math.Inf(1)
	var bestPt vec.Vec2
	for j := 0; j <= vertexGrid; j++ {
		y := lerp(box.LLy, box.URy, float64(j)/vertexGrid)
		for i := 0; i <= vertexGrid; i++ {
			c := vec.Vec2{X: lerp(box.LLx, box.URx, float64(i)/vertexGrid), Y: y}
			cost := 0.0
			for k, p := range pts {
				d := c.Sub(p)
				if normals[k] == (vec.Vec2{}) {
					cost += d.Length()
					continue
				}
				proj := d.Dot(normals[k])
				cost += proj * proj
			}
			if cost < best || i == 0 && j == 0 {
				best = cost
				bestPt = c
			}
		}
	}
	return &bestPt
}

// lerp interpolates between a and b, returning a and b exactly at the ends
// and never leaving [a, b].
func lerp(a, b, s float64) float64 {
	v := a*(1-s) + b*s
	return min(max(v, a), b)
}

// vertexGrid is the number of grid intervals per axis for the leaf vertex
// search.
const vertexGrid = 10
