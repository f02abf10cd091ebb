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

var regionCases = []TestCase{
	{
		Name:        "disc",
		Equation:    eq(`["Less", ["Add", ["Square", "x"], ["Square", "y"]], 9]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "half_plane",
		Equation:    eq(`["GreaterEqual", ["Negate", "y"], ["Multiply", 0.5, "x"]]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "coarse",
		Equation:    eq(`["Less", ["Add", ["Square", "x"], ["Square", "y"]], 9]`),
		Window:      square(10),
		Depth:       3,
		SearchDepth: 1,
	},
}
