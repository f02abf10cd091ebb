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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Contour is a polyline in the coordinates of the function domain.
// A contour is closed if its first and last points coincide.
type Contour []vec.Vec2

// Start returns the first point of a non-empty contour.
func (c Contour) Start() vec.Vec2 { return c[0] }

// End returns the last point of a non-empty contour.
func (c Contour) End() vec.Vec2 { return c[len(c)-1] }

// Closed reports whether c is a closed loop.
func (c Contour) Closed() bool {
	return len(c) > 2 && c[0] == c[len(c)-1]
}

// Path converts c into a path. Closed contours end with a ClosePath
// command instead of repeating the first point.
func (c Contour) Path() *path.Data {
	p := &path.Data{}
	if len(c) == 0 {
		return p
	}
	closed := c.Closed()
	pts := c
	if closed {
		pts = c[:len(c)-1]
	}
	p = p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	if closed {
		p = p.Close()
	}
	return p
}

// SimplifyContour returns c without repeated adjacent points.
func SimplifyContour(c Contour) Contour {
	res := make(Contour, 0, len(c))
	for i, p := range c {
		if i > 0 && p == c[i-1] {
			continue
		}
		res = append(res, p)
	}
	return res
}

// MergeContours joins contour fragments into maximal polylines.
//
// All contours are first simplified and exact duplicates are removed.
// Then, as long as two contours share an endpoint, they are concatenated
// (reversing one of them if needed) and the scan starts again. Empty
// contours are dropped. The input is not modified.
func MergeContours(cs []Contour) []Contour {
	res := make([]Contour, 0, len(cs))
	for _, c := range cs {
		c = SimplifyContour(c)
		if len(c) == 0 {
			continue
		}
		dup := slices.ContainsFunc(res, func(d Contour) bool {
			return slices.Equal(c, d)
		})
		if !dup {
			res = append(res, c)
		}
	}

	for {
		i, j, m, ok := findJoin(res)
		if !ok {
			break
		}
		res[i] = m
		res = slices.Delete(res, j, j+1)
	}
	return res
}

// findJoin returns the first pair (i, j) of contours which can be joined,
// together with the joined contour.
func findJoin(cs []Contour) (int, int, Contour, bool) {
	for i, a := range cs {
		for j, b := range cs {
			if i == j {
				continue
			}
			if m, ok := join(a, b); ok {
				return i, j, m, true
			}
		}
	}
	return 0, 0, nil, false
}

func join(a, b Contour) (Contour, bool) {
	var res Contour
	switch {
	case a.Start() == b.Start():
		res = make(Contour, 0, len(a)+len(b)-1)
		res = append(res, a...)
		slices.Reverse(res)
		res = append(res, b[1:]...)
	case a.End() == b.Start():
		res = make(Contour, 0, len(a)+len(b)-1)
		res = append(res, a...)
		res = append(res, b[1:]...)
	case a.End() == b.End():
		res = make(Contour, 0, len(a)+len(b)-1)
		res = append(res, a...)
		for k := len(b) - 2; k >= 0; k-- {
			res = append(res, b[k])
		}
	default:
		return nil, false
	}
	return res, true
}

// DualContours connects the vertices of neighbouring leaves and merges
// the resulting edges into polylines.
func DualContours(f Field, root *Node) []Contour {
	conns := LeafConnections(f, root)
	cs := make([]Contour, len(conns))
	for i, c := range conns {
		cs[i] = Contour{*c.A.Vertex, *c.B.Vertex}
	}
	return dropPoints(MergeContours(cs))
}

// MarchingSquaresContours chains the leaf segments of the tree, in tree
// order, and merges the resulting polylines.
func MarchingSquaresContours(root *Node) []Contour {
	var cs []Contour
	var cur Contour
	for leaf := range root.Leaves() {
		for _, s := range leaf.Segments {
			if n := len(cur); n > 0 {
				switch cur[n-1] {
				case s.A:
					cur = append(cur, s.B)
					continue
				case s.B:
					cur = append(cur, s.A)
					continue
				}
				cs = append(cs, cur)
			}
			cur = Contour{s.A, s.B}
		}
	}
	if len(cur) > 0 {
		cs = append(cs, cur)
	}
	return dropPoints(MergeContours(cs))
}

// dropPoints removes contours which have collapsed to a single point.
// Such points are where two leaves chose the same vertex, and they are
// part of a longer contour already.
func dropPoints(cs []Contour) []Contour {
	return slices.DeleteFunc(cs, func(c Contour) bool { return len(c) < 2 })
}
