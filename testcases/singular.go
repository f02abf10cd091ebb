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

import "seehuhn.de/go/geom/rect"

var singularCases = []TestCase{
	{
		Name:        "reciprocal",
		Equation:    eq(`["Equal", "y", ["Divide", 1, "x"]]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "tangent",
		Equation:    eq(`["Equal", "y", ["Tan", "x"]]`),
		Window:      square(5),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "log",
		Equation:    eq(`["Equal", "y", ["Ln", "x"]]`),
		Window:      square(5),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "half_circle",
		Equation:    eq(`["Equal", "y", ["Sqrt", ["Subtract", 16, ["Square", "x"]]]]`),
		Window:      square(5),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		// the curve starts at the origin, inside a box of the quadtree
		Name:        "sqrt",
		Equation:    eq(`["Equal", "y", ["Sqrt", "x"]]`),
		Window:      rect.Rect{LLx: -4.9, LLy: -4.9, URx: 5.1, URy: 5.1},
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name: "lemniscate",
		Equation: eq(`["Equal",
			["Square", ["Add", ["Square", "x"], ["Square", "y"]]],
			["Multiply", 2, ["Subtract", ["Square", "x"], ["Square", "y"]]]]`),
		Window:      square(2),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
}
