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
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/implicit/expr"
)

func sameContours(a, b []Contour) bool {
	return slices.EqualFunc(a, b, func(c, d Contour) bool { return slices.Equal(c, d) })
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// leafDiag is the diagonal of a leaf at depth 7 in window10.
var leafDiag = math.Hypot(20, 20) / 128

func TestDiagonalLine(t *testing.T) {
	f := FuncField{
		F:    func(x, y float64) float64 { return y - x },
		Grad: func(x, y float64) vec.Vec2 { return pt(-1, 1) },
	}
	root := BuildTree(f, window10, 7, 4)
	cs := DualContours(f, root)
	if len(cs) != 1 {
		_ = writeContourImage("diagonal_line", window10, cs)
		t.Fatalf("expected 1 contour, got %d", len(cs))
	}
	c := cs[0]
	if c.Closed() {
		t.Error("line contour is closed")
	}

	// the dual vertices are interior to the leaves, so the ends of the
	// contour are within one leaf of the window boundary
	for _, p := range []vec.Vec2{c.Start(), c.End()} {
		d := min(p.X-window10.LLx, window10.URx-p.X, p.Y-window10.LLy, window10.URy-p.Y)
		if d > leafDiag {
			t.Errorf("end point %v is %g away from the boundary", p, d)
		}
	}
	if c.Start().Sub(c.End()).Length() < 20*math.Sqrt2-2*leafDiag {
		t.Errorf("contour from %v to %v does not span the window", c.Start(), c.End())
	}

	hasOrigin := false
	for i, p := range c {
		if math.Abs(p.Y-p.X) >= leafDiag {
			t.Errorf("point %d = %v is off the line", i, p)
		}
		if i > 0 && p == c[i-1] {
			t.Errorf("point %d = %v is repeated", i, p)
		}
		if p.Length() < leafDiag {
			hasOrigin = true
		}
	}
	if !hasOrigin {
		t.Error("contour does not pass through the origin")
	}
}

func TestCircle(t *testing.T) {
	f, err := expr.NewField(expr.MustParse(`["Subtract", ["Add", ["Square", "x"], ["Square", "y"]], 25]`))
	if err != nil {
		t.Fatal(err)
	}
	root := BuildTree(f, window10, 7, 4)

	for _, mode := range []Mode{ModeDual, ModeMarchingSquares} {
		t.Run(mode.String(), func(t *testing.T) {
			var cs []Contour
			if mode == ModeDual {
				cs = DualContours(f, root)
			} else {
				cs = MarchingSquaresContours(root)
			}
			if len(cs) != 1 {
				_ = writeContourImage("circle_"+strings.ReplaceAll(mode.String(), " ", "_"), window10, cs)
				t.Fatalf("expected 1 contour, got %d", len(cs))
			}
			c := cs[0]
			if !c.Closed() || c.Start() != c.End() {
				t.Error("circle contour is not closed")
			}
			if len(c) < 100 {
				t.Errorf("only %d points", len(c))
			}
			for i, p := range c {
				if i > 0 && p == c[i-1] {
					t.Errorf("point %d = %v is repeated", i, p)
				}
				if r := p.Length(); math.Abs(r-5) > leafDiag {
					t.Errorf("point %d = %v has radius %g", i, p, r)
				}
			}
		})
	}
}

func TestMergeCases(t *testing.T) {
	cases := []struct {
		a, b, want Contour
	}{
		{ // start-start
			Contour{pt(0, 0), pt(1, 0)},
			Contour{pt(0, 0), pt(0, 1)},
			Contour{pt(1, 0), pt(0, 0), pt(0, 1)},
		},
		{ // end-start
			Contour{pt(0, 0), pt(1, 0)},
			Contour{pt(1, 0), pt(2, 0)},
			Contour{pt(0, 0), pt(1, 0), pt(2, 0)},
		},
		{ // end-end
			Contour{pt(0, 0), pt(1, 0)},
			Contour{pt(2, 0), pt(1, 0)},
			Contour{pt(0, 0), pt(1, 0), pt(2, 0)},
		},
		{ // start-end is found with the roles swapped
			Contour{pt(1, 0), pt(2, 0)},
			Contour{pt(0, 0), pt(1, 0)},
			Contour{pt(0, 0), pt(1, 0), pt(2, 0)},
		},
	}
	for i, c := range cases {
		got := MergeContours([]Contour{c.a, c.b})
		if len(got) != 1 || !slices.Equal(got[0], c.want) {
			t.Errorf("%d: expected [%v], got %v", i, c.want, got)
		}
	}
}

func TestMergeClosesLoop(t *testing.T) {
	in := []Contour{
		{pt(0, 0), pt(1, 0)},
		{pt(1, 1), pt(0, 1)},
		{pt(1, 0), pt(1, 1)},
		{pt(0, 1), pt(0, 0)},
		{pt(1, 0), pt(1, 1)}, // duplicate
	}
	orig := make([]Contour, len(in))
	for i, c := range in {
		orig[i] = slices.Clone(c)
	}

	got := MergeContours(in)
	want := Contour{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1), pt(0, 0)}
	if len(got) != 1 || !slices.Equal(got[0], want) {
		t.Errorf("expected [%v], got %v", want, got)
	}
	if len(got) == 1 && !got[0].Closed() {
		t.Error("loop is not closed")
	}

	for i := range in {
		if !slices.Equal(in[i], orig[i]) {
			t.Errorf("input %d was modified", i)
		}
	}
}

func TestMergeKeepsFragments(t *testing.T) {
	in := []Contour{
		{pt(0, 0), pt(1, 0)},
		{pt(5, 5), pt(6, 6), pt(6, 6)},
		{pt(2, 0), pt(1, 0)},
		{pt(9, 9)},
		{},
		{pt(3, 3), pt(4, 4)},
	}
	got := MergeContours(in)
	if len(got) != 4 {
		t.Fatalf("expected 4 contours, got %d: %v", len(got), got)
	}
	var all []vec.Vec2
	for _, c := range got {
		all = append(all, c...)
	}
	for _, c := range in {
		for _, p := range c {
			if !slices.Contains(all, p) {
				t.Errorf("point %v was dropped", p)
			}
		}
	}
}

func TestMergeIdempotent(t *testing.T) {
	f := circleField(3)
	root := BuildTree(f, window10, 6, 3)
	for _, cs := range [][]Contour{
		DualContours(f, root),
		MarchingSquaresContours(root),
		MergeContours([]Contour{{pt(0, 0), pt(1, 0)}, {pt(1, 1), pt(1, 0)}, {pt(5, 5)}}),
	} {
		again := MergeContours(cs)
		if !sameContours(cs, again) {
			t.Errorf("second merge changed %v to %v", cs, again)
		}
	}
}

func TestSimplifyContour(t *testing.T) {
	in := Contour{pt(0, 0), pt(0, 0), pt(1, 1), pt(1, 1), pt(1, 1), pt(0, 0)}
	want := Contour{pt(0, 0), pt(1, 1), pt(0, 0)}
	if got := SimplifyContour(in); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := SimplifyContour(nil); len(got) != 0 {
		t.Errorf("expected empty contour, got %v", got)
	}
}

func TestContourPath(t *testing.T) {
	closed := Contour{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 0)}
	p := closed.Path()
	want := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if !slices.Equal(p.Cmds, want) {
		t.Errorf("closed: expected %v, got %v", want, p.Cmds)
	}

	open := Contour{pt(0, 0), pt(1, 0), pt(1, 1)}
	p = open.Path()
	want = []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo}
	if !slices.Equal(p.Cmds, want) {
		t.Errorf("open: expected %v, got %v", want, p.Cmds)
	}
}

func BenchmarkCircle(b *testing.B) {
	f := circleField(5)
	for b.Loop() {
		root := BuildTree(f, window10, 9, 5)
		DualContours(f, root)
	}
}
