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

package expr

import (
	"math"
	"testing"
)

func TestDerivativeNumeric(t *testing.T) {
	cases := []struct {
		src  string
		x, y float64
	}{
		{`["Add", ["Power", "x", 3], ["Multiply", "x", "y"]]`, 1.3, 0.7},
		{`["Subtract", ["Square", "x"], "y", 4]`, 0.3, 2},
		{`["Sin", ["Multiply", "x", "y"]]`, 0.4, 1.1},
		{`["Divide", ["Exp", "x"], "y"]`, 0.3, 1.7},
		{`["Ln", ["Add", ["Square", "x"], ["Square", "y"]]]`, 0.8, -0.6},
		{`["Power", "x", "y"]`, 1.5, 0.8},
		{`["Power", 2, "x"]`, 0.7, 0},
		{`["Sqrt", ["Add", "x", "y"]]`, 1.2, 0.9},
		{`["Arctan", ["Divide", "y", "x"]]`, 1.1, 0.4},
		{`["Tan", "x"]`, 0.3, 0},
		{`["Cot", "x"]`, 0.9, 0},
		{`["Sec", "x"]`, 0.4, 0},
		{`["Csc", "x"]`, 1.1, 0},
		{`["Cos", ["Negate", "y"]]`, 0, 0.6},
		{`["Arcsin", ["Divide", "x", 2]]`, 0.3, 0},
		{`["Arccos", "x"]`, 0.3, 0},
		{`["Arccot", "x"]`, 1.4, 0},
		{`["Arcsec", "x"]`, 2, 0},
		{`["Arccsc", "x"]`, -2, 0},
		{`["Sinh", "x"]`, 0.5, 0},
		{`["Cosh", "x"]`, 0.5, 0},
		{`["Tanh", "x"]`, 0.5, 0},
		{`["Coth", "x"]`, 0.5, 0},
		{`["Sech", "x"]`, 0.5, 0},
		{`["Csch", "x"]`, 0.5, 0},
		{`["Arsinh", "x"]`, 0.5, 0},
		{`["Arcosh", "x"]`, 2, 0},
		{`["Artanh", "x"]`, 0.3, 0},
		{`["Arcoth", "x"]`, 2, 0},
		{`["Arsech", "x"]`, 0.5, 0},
		{`["Arcsch", "x"]`, 1.5, 0},
		{`["Lb", ["Multiply", "x", "y"]]`, 1.5, 2.5},
		{`["Lg", "x"]`, 3, 0},
		{`["Log", "x"]`, 3, 0},
		{`["Log", "x", "y"]`, 3, 2},
		{`["Abs", ["Subtract", "x", "y"]]`, -0.7, 0.2},
		{`["Delimiter", ["Multiply", "Pi", "x", "y"]]`, 0.2, 0.3},
		{`["Exp", ["Negate", ["Square", "y"]]]`, 0, 0.4},
	}
	for _, c := range cases {
		e := MustParse(c.src)
		f, err := Compile(e)
		if err != nil {
			t.Errorf("%s: %v", c.src, err)
			continue
		}
		for _, v := range []string{"x", "y"} {
			d, err := Derivative(e, v)
			if err != nil {
				t.Errorf("%s: d/d%s: %v", c.src, v, err)
				continue
			}
			got, err := Evaluate(d, Env{X: c.x, Y: c.y})
			if err != nil {
				t.Errorf("%s: d/d%s = %s: %v", c.src, v, d, err)
				continue
			}

			const h = 1e-6
			var want float64
			if v == "x" {
				want = (f.At(c.x+h, c.y) - f.At(c.x-h, c.y)) / (2 * h)
			} else {
				want = (f.At(c.x, c.y+h) - f.At(c.x, c.y-h)) / (2 * h)
			}
			if math.Abs(got-want) > 1e-5*max(1, math.Abs(want)) {
				t.Errorf("%s: d/d%s at (%g, %g): expected %g, got %g",
					c.src, v, c.x, c.y, want, got)
			}
		}
	}
}

func TestDerivativeFolding(t *testing.T) {
	cases := []struct {
		src, v string
		want   string
	}{
		{`["Add", "x", "y"]`, "x", `1`},
		{`["Multiply", 3, "x"]`, "x", `3`},
		{`["Sin", "y"]`, "x", `0`},
		{`["Floor", "x"]`, "x", `0`},
		{`["Round", ["Multiply", 2, "x"]]`, "x", `0`},
		{`"Pi"`, "x", `0`},
	}
	for _, c := range cases {
		d, err := Derivative(MustParse(c.src), c.v)
		if err != nil {
			t.Errorf("%s: %v", c.src, err)
			continue
		}
		if d.String() != c.want {
			t.Errorf("d/d%s %s: expected %s, got %s", c.v, c.src, c.want, d)
		}
	}
}

func TestDerivativeMalformed(t *testing.T) {
	for _, src := range []string{
		`["Add", "x", ["Error", "'oops'"]]`,
		`["Gamma", "x"]`,
		`["Sin", "x", "y"]`,
	} {
		_, err := Derivative(MustParse(src), "x")
		if err == nil {
			t.Errorf("%s: expected error", src)
		}
	}
}
