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

package testcases

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/implicit/expr"
)

// TestCase defines a single contouring scenario.
type TestCase struct {
	Name        string    // lowercase a-z, 0-9 and _ only
	Equation    expr.Expr // the relation to draw
	Window      rect.Rect // the part of the plane to cover
	Depth       int       // plot depth of the quadtree
	SearchDepth int       // depth from which on boxes are pruned
}

// eq parses an equation in MathJSON form.
func eq(s string) expr.Expr {
	return expr.MustParse(s)
}

// square returns the window [-r, r]×[-r, r].
func square(r float64) rect.Rect {
	return rect.Rect{LLx: -r, LLy: -r, URx: r, URy: r}
}

// Default build parameters. They correspond to leaves of 4 pixels in a
// 512 pixel wide view.
const (
	defaultDepth       = 7
	defaultSearchDepth = 4
)
