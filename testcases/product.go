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

var productCases = []TestCase{
	{
		Name:        "axes",
		Equation:    eq(`["Equal", ["Multiply", "x", "y"], 0]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name: "crossing_lines",
		Equation: eq(`["Equal",
			["Multiply", ["Subtract", "y", "x"], ["Subtract", ["Add", "y", "x"], 2]],
			0]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name: "circle_and_line",
		Equation: eq(`["Multiply",
			["Subtract", ["Add", ["Square", "x"], ["Square", "y"]], 16],
			["Delimiter", ["Subtract", "y", 1.5]]]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "quotient",
		Equation:    eq(`["Equal", ["Divide", ["Subtract", "y", ["Square", "x"]], "x"], 0]`),
		Window:      square(5),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "hyperbolas",
		Equation:    eq(`["Equal", ["Multiply", "x", "y"], 4]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
}
