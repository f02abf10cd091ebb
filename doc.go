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

// Package implicit draws the solution sets of implicit equations
// f(x, y) = 0, and of the corresponding inequalities, over a rectangular
// window of the plane.
//
// The window is covered by an adaptive quadtree: boxes are subdivided
// uniformly down to a search depth, and from there on only where the sign
// of f changes across the corners of a box.  The boxes at the plot depth
// which still contain a sign change become leaves.  Contours are then
// extracted either by dual contouring, which places one vertex inside
// every leaf and connects the vertices of adjacent leaves, or by
// marching squares on the leaf edges.
//
// [ComputeContours] runs the full pipeline for an equation given as a
// MathJSON expression.  A [Coordinator] serves the requests of an
// interactive viewer, where only the most recent request is of interest.
package implicit

//go:generate go run ./testcases/export
