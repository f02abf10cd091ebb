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

var conicCases = []TestCase{
	{
		Name:        "circle",
		Equation:    eq(`["Equal", ["Add", ["Square", "x"], ["Square", "y"]], 25]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name: "ellipse",
		Equation: eq(`["Equal",
			["Add", ["Divide", ["Square", "x"], 36], ["Divide", ["Square", "y"], 9]],
			1]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "hyperbola",
		Equation:    eq(`["Equal", ["Subtract", ["Power", "x", 2], ["Power", "y", 2]], 4]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "parabola",
		Equation:    eq(`["Equal", "y", ["Subtract", ["Multiply", 0.25, ["Square", "x"]], 5]]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "small_circle",
		Equation:    eq(`["Equal", ["Add", ["Square", ["Subtract", "x", 1]], ["Square", "y"]], 0.01]`),
		Window:      rect.Rect{LLx: 0.5, LLy: -0.5, URx: 1.5, URy: 0.5},
		Depth:       8,
		SearchDepth: 3,
	},
	{
		Name:        "empty",
		Equation:    eq(`["Equal", ["Add", ["Square", "x"], ["Square", "y"], 1], 0]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
}
