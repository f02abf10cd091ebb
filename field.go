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

	"seehuhn.de/go/geom/vec"
)

// Field is a scalar function of two variables, together with an estimate
// of its gradient. The contour engine draws the set where Value is zero.
//
// Implementations must be safe for concurrent use if a [Builder] with more
// than one worker is used.
type Field interface {
	Value(p vec.Vec2) float64
	Gradient(p vec.Vec2) vec.Vec2
}

// FuncField adapts plain Go functions to the [Field] interface.
type FuncField struct {
	F func(x, y float64) float64

	// Grad is the gradient of F. If Grad is nil, central differences with
	// a relative step of [DefaultDifferenceStep] are used.
	Grad func(x, y float64) vec.Vec2
}

// Value implements the [Field] interface.
func (f FuncField) Value(p vec.Vec2) float64 {
	return f.F(p.X, p.Y)
}

// Gradient implements the [Field] interface.
func (f FuncField) Gradient(p vec.Vec2) vec.Vec2 {
	if f.Grad != nil {
		return f.Grad(p.X, p.Y)
	}
	hx := DefaultDifferenceStep * max(1, math.Abs(p.X))
	hy := DefaultDifferenceStep * max(1, math.Abs(p.Y))
	return vec.Vec2{
		X: (f.F(p.X+hx, p.Y) - f.F(p.X-hx, p.Y)) / (2 * hx),
		Y: (f.F(p.X, p.Y+hy) - f.F(p.X, p.Y-hy)) / (2 * hy),
	}
}

// DefaultDifferenceStep is the relative step used by [FuncField] when no
// gradient function is given.
const DefaultDifferenceStep = 1e-6
