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

	"seehuhn.de/go/geom/vec"
)

// Gradient estimates the partial derivatives of a scalar field in x and y.
//
// Where a partial derivative is not a finite real number, it is sampled
// again at the four points (x±ε, y±ε) and the mean of the finite samples
// is used instead; if no sample is finite, the component is 0. Symbolic
// derivatives of non-smooth functions (Abs, Floor, ...) are often
// undefined exactly on the curve, and this averaging gives a usable
// direction there. It is an approximation near true discontinuities.
type Gradient struct {
	// FallbackStep is the offset ε used for the diagonal re-sampling.
	FallbackStep float64

	// DifferenceStep is the step for central differences, relative to
	// max(1, |coordinate|). It is only used when no symbolic derivative
	// is available.
	DifferenceStep float64

	f      *Program
	dx, dy *Program // nil means central differences
}

// NewGradient compiles the symbolic partial derivatives of e.
func NewGradient(e Expr) (*Gradient, error) {
	f, err := Compile(e)
	if err != nil {
		return nil, err
	}
	g := &Gradient{
		FallbackStep:   DefaultFallbackStep,
		DifferenceStep: DefaultDifferenceStep,
		f:              f,
	}

	dxExpr, err := Derivative(e, "x")
	if err != nil {
		return nil, err
	}
	dyExpr, err := Derivative(e, "y")
	if err != nil {
		return nil, err
	}
	if g.dx, err = Compile(dxExpr); err != nil {
		return nil, err
	}
	if g.dy, err = Compile(dyExpr); err != nil {
		return nil, err
	}
	return g, nil
}

// NewDifferenceGradient estimates the gradient of p by central
// differences.
func NewDifferenceGradient(p *Program) *Gradient {
	return &Gradient{
		FallbackStep:   DefaultFallbackStep,
		DifferenceStep: DefaultDifferenceStep,
		f:              p,
	}
}

// At returns the estimated gradient at (x, y).
func (g *Gradient) At(x, y float64) vec.Vec2 {
	return vec.Vec2{
		X: g.component(0, x, y),
		Y: g.component(1, x, y),
	}
}

func (g *Gradient) component(axis int, x, y float64) float64 {
	v := g.partial(axis, x, y)
	if isFinite(v) {
		return v
	}

	eps := g.FallbackStep
	var sum float64
	n := 0
	for _, d := range diagonals {
		w := g.partial(axis, x+d.X*eps, y+d.Y*eps)
		if isFinite(w) {
			sum += w
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

var diagonals = [4]vec.Vec2{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}

func (g *Gradient) partial(axis int, x, y float64) float64 {
	if axis == 0 && g.dx != nil {
		return g.dx.At(x, y)
	}
	if axis == 1 && g.dy != nil {
		return g.dy.At(x, y)
	}

	if axis == 0 {
		h := g.DifferenceStep * max(1, math.Abs(x))
		return (g.f.At(x+h, y) - g.f.At(x-h, y)) / (2 * h)
	}
	h := g.DifferenceStep * max(1, math.Abs(y))
	return (g.f.At(x, y+h) - g.f.At(x, y-h)) / (2 * h)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Field is a scalar field given by an expression in x and y, together
// with its gradient.
type Field struct {
	prog *Program
	grad *Gradient
}

// NewField compiles e and its gradient.
func NewField(e Expr) (*Field, error) {
	grad, err := NewGradient(e)
	if err != nil {
		return nil, err
	}
	return &Field{prog: grad.f, grad: grad}, nil
}

// Value returns the field value at p.
func (f *Field) Value(p vec.Vec2) float64 {
	return f.prog.At(p.X, p.Y)
}

// Gradient returns the estimated gradient at p.
func (f *Field) Gradient(p vec.Vec2) vec.Vec2 {
	return f.grad.At(p.X, p.Y)
}

const (
	// DefaultFallbackStep is the diagonal offset used when a partial
	// derivative is not finite.
	DefaultFallbackStep = 1e-4

	// DefaultDifferenceStep is the relative step for central differences.
	DefaultDifferenceStep = 1e-6
)
