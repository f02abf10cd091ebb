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

// Package expr evaluates and differentiates mathematical expressions given
// in the MathJSON interchange form.
//
// An expression is a tree of [Number], [Symbol] and [*Call] values.
// Expressions are validated and turned into closures by [Compile]; the
// resulting [Program] is safe for concurrent use. Numeric problems such as
// division by zero never produce errors, they evaluate to NaN or an
// infinity. Only structural problems (an explicit Error node, an unknown
// function head, a misspelled constant) are reported, as [*MalformedError].
package expr

import (
	"math"
	"strconv"
	"strings"
)

// Expr is a node of an expression tree.
type Expr interface {
	String() string
	isExpr()
}

// Number is a numeric literal.
type Number float64

func (Number) isExpr() {}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Symbol is a reference to a named constant or a variable.
type Symbol string

func (Symbol) isExpr() {}

func (s Symbol) String() string { return string(s) }

// Call is a function application, for example ["Add", "x", 1].
type Call struct {
	Head string
	Args []Expr
}

func (*Call) isExpr() {}

// String returns the expression in MathJSON array notation.
func (c *Call) String() string {
	var b strings.Builder
	b.WriteString(`["`)
	b.WriteString(c.Head)
	b.WriteString(`"`)
	for _, a := range c.Args {
		b.WriteString(", ")
		switch a := a.(type) {
		case Symbol:
			b.WriteString(strconv.Quote(string(a)))
		case Number:
			b.WriteString(numberJSON(a))
		default:
			b.WriteString(a.String())
		}
	}
	b.WriteString("]")
	return b.String()
}

// numberJSON formats n for MathJSON, which has no literals for the
// non-finite values.
func numberJSON(n Number) string {
	x := float64(n)
	switch {
	case math.IsNaN(x):
		return `"NaN"`
	case math.IsInf(x, 1):
		return `"+Infinity"`
	case math.IsInf(x, -1):
		return `"-Infinity"`
	}
	return n.String()
}

// NewCall constructs a function application.
func NewCall(head string, args ...Expr) *Call {
	return &Call{Head: head, Args: args}
}

// Identical reports whether two expressions are structurally identical.
func Identical(a, b Expr) bool {
	switch a := a.(type) {
	case Number:
		b, ok := b.(Number)
		return ok && (a == b || a != a && b != b)
	case Symbol:
		b, ok := b.(Symbol)
		return ok && a == b
	case *Call:
		b, ok := b.(*Call)
		if !ok || a.Head != b.Head || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Identical(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}
