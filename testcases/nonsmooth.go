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

var nonsmoothCases = []TestCase{
	{
		Name:        "diamond",
		Equation:    eq(`["Equal", ["Add", ["Abs", "x"], ["Abs", "y"]], 5]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "vee",
		Equation:    eq(`["Equal", "y", ["Abs", ["Subtract", "x", 0.3]]]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "staircase",
		Equation:    eq(`["Equal", "y", ["Floor", "x"]]`),
		Window:      square(5),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
}
