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

import "math"

// Derivative returns the partial derivative of e with respect to the
// variable v. Symbols other than v, including named constants, are treated
// as constants. The result is simplified only by folding numeric
// constants and the identities of 0 and 1.
//
// Floor, Ceil and Round differentiate to 0. The derivative of Abs is
// u·u'/|u|, which is undefined at the kink.
func Derivative(e Expr, v string) (Expr, error) {
	switch e := e.(type) {
	case Number:
		return Number(0), nil
	case Symbol:
		if string(e) == v {
			return Number(1), nil
		}
		return Number(0), nil
	case *Call:
		return derivCall(e, v)
	}
	return nil, &MalformedError{Reason: "unknown node type"}
}

func derivCall(c *Call, v string) (Expr, error) {
	if c.Head == "Error" {
		return nil, malformed("Error", "error node")
	}
	if !IsSupported(c.Head) {
		return nil, malformed(c.Head, "unsupported function")
	}

	ds := make([]Expr, len(c.Args))
	for i, a := range c.Args {
		d, err := Derivative(a, v)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}

	switch c.Head {
	case "Add":
		var sum Expr = Number(0)
		for _, d := range ds {
			sum = add(sum, d)
		}
		return sum, nil

	case "Subtract":
		if len(ds) == 0 {
			return nil, malformed(c.Head, "expected at least 1 argument")
		}
		if len(ds) == 1 {
			return neg(ds[0]), nil
		}
		res := ds[0]
		for _, d := range ds[1:] {
			res = sub(res, d)
		}
		return res, nil

	case "Multiply":
		var sum Expr = Number(0)
		for i, d := range ds {
			term := d
			for j, f := range c.Args {
				if j != i {
					term = mul(term, f)
				}
			}
			sum = add(sum, term)
		}
		return sum, nil

	case "Divide", "Rational":
		if len(ds) != 2 {
			return nil, malformed(c.Head, "expected 2 arguments, got %d", len(ds))
		}
		a, b := c.Args[0], c.Args[1]
		da, db := ds[0], ds[1]
		if isZero(db) {
			return div(da, b), nil
		}
		return div(sub(mul(da, b), mul(a, db)), pow(b, Number(2))), nil

	case "Power":
		if len(ds) != 2 {
			return nil, malformed(c.Head, "expected 2 arguments, got %d", len(ds))
		}
		a, b := c.Args[0], c.Args[1]
		da, db := ds[0], ds[1]
		switch {
		case isZero(db):
			return mul(mul(b, pow(a, sub(b, Number(1)))), da), nil
		case isZero(da):
			return mul(mul(c, call1("Ln", a)), db), nil
		}
		return mul(c, add(mul(db, call1("Ln", a)), div(mul(b, da), a))), nil

	case "Log":
		if len(ds) == 2 {
			return Derivative(NewCall("Divide", call1("Ln", c.Args[0]), call1("Ln", c.Args[1])), v)
		}
		if len(ds) != 1 {
			return nil, malformed(c.Head, "expected 1 or 2 arguments, got %d", len(ds))
		}
		return div(ds[0], mul(c.Args[0], Number(math.Ln10))), nil

	case "Delimiter":
		if len(ds) != 1 {
			return nil, malformed(c.Head, "expected 1 argument, got %d", len(ds))
		}
		return ds[0], nil
	}

	// everything else is unary
	if len(ds) != 1 {
		return nil, malformed(c.Head, "expected 1 argument, got %d", len(ds))
	}
	u, du := c.Args[0], ds[0]
	if isZero(du) {
		return Number(0), nil
	}
	outer := unaryDerivative(c.Head, u, c)
	return mul(outer, du), nil
}

// unaryDerivative returns f'(u) for the unary function f = head.
// self is the expression f(u).
func unaryDerivative(head string, u Expr, self *Call) Expr {
	one := Number(1)
	switch head {
	case "Negate":
		return Number(-1)
	case "Sqrt":
		return div(one, mul(Number(2), self))
	case "Square":
		return mul(Number(2), u)
	case "Exp":
		return self
	case "Ln":
		return div(one, u)
	case "Lb":
		return div(one, mul(u, Number(math.Ln2)))
	case "Lg":
		return div(one, mul(u, Number(math.Ln10)))
	case "Abs":
		return div(u, self)
	case "Floor", "Ceil", "Round":
		return Number(0)

	case "Sin":
		return call1("Cos", u)
	case "Cos":
		return neg(call1("Sin", u))
	case "Tan":
		return pow(call1("Sec", u), Number(2))
	case "Cot":
		return neg(pow(call1("Csc", u), Number(2)))
	case "Sec":
		return mul(self, call1("Tan", u))
	case "Csc":
		return neg(mul(self, call1("Cot", u)))

	case "Arcsin":
		return div(one, call1("Sqrt", sub(one, pow(u, Number(2)))))
	case "Arccos":
		return neg(div(one, call1("Sqrt", sub(one, pow(u, Number(2))))))
	case "Arctan":
		return div(one, add(one, pow(u, Number(2))))
	case "Arccot":
		return neg(div(one, add(one, pow(u, Number(2)))))
	case "Arcsec":
		return div(one, mul(call1("Abs", u), call1("Sqrt", sub(pow(u, Number(2)), one))))
	case "Arccsc":
		return neg(div(one, mul(call1("Abs", u), call1("Sqrt", sub(pow(u, Number(2)), one)))))

	case "Sinh":
		return call1("Cosh", u)
	case "Cosh":
		return call1("Sinh", u)
	case "Tanh":
		return pow(call1("Sech", u), Number(2))
	case "Coth":
		return neg(pow(call1("Csch", u), Number(2)))
	case "Sech":
		return neg(mul(self, call1("Tanh", u)))
	case "Csch":
		return neg(mul(self, call1("Coth", u)))

	case "Arsinh":
		return div(one, call1("Sqrt", add(pow(u, Number(2)), one)))
	case "Arcosh":
		return div(one, call1("Sqrt", sub(pow(u, Number(2)), one)))
	case "Artanh", "Arcoth":
		return div(one, sub(one, pow(u, Number(2))))
	case "Arsech":
		return neg(div(one, mul(u, call1("Sqrt", sub(one, pow(u, Number(2)))))))
	case "Arcsch":
		return neg(div(one, mul(call1("Abs", u), call1("Sqrt", add(one, pow(u, Number(2)))))))
	}
	panic("unreachable: no derivative for " + head)
}

func call1(head string, a Expr) Expr {
	if n, ok := a.(Number); ok {
		if f, ok := unary[head]; ok {
			return Number(f(float64(n)))
		}
	}
	return NewCall(head, a)
}

func isZero(e Expr) bool {
	n, ok := e.(Number)
	return ok && n == 0
}

func isOne(e Expr) bool {
	n, ok := e.(Number)
	return ok && n == 1
}

func add(a, b Expr) Expr {
	switch {
	case isZero(a):
		return b
	case isZero(b):
		return a
	}
	if x, ok := a.(Number); ok {
		if y, ok := b.(Number); ok {
			return x + y
		}
	}
	return NewCall("Add", a, b)
}

func sub(a, b Expr) Expr {
	switch {
	case isZero(b):
		return a
	case isZero(a):
		return neg(b)
	}
	if x, ok := a.(Number); ok {
		if y, ok := b.(Number); ok {
			return x - y
		}
	}
	return NewCall("Subtract", a, b)
}

func mul(a, b Expr) Expr {
	switch {
	case isZero(a) || isZero(b):
		return Number(0)
	case isOne(a):
		return b
	case isOne(b):
		return a
	}
	if x, ok := a.(Number); ok {
		if y, ok := b.(Number); ok {
			return x * y
		}
	}
	return NewCall("Multiply", a, b)
}

func div(a, b Expr) Expr {
	switch {
	case isZero(a):
		return Number(0)
	case isOne(b):
		return a
	}
	if x, ok := a.(Number); ok {
		if y, ok := b.(Number); ok {
			return x / y
		}
	}
	return NewCall("Divide", a, b)
}

func neg(a Expr) Expr {
	switch a := a.(type) {
	case Number:
		return -a
	case *Call:
		if a.Head == "Negate" && len(a.Args) == 1 {
			return a.Args[0]
		}
	}
	return NewCall("Negate", a)
}

func pow(a, b Expr) Expr {
	switch {
	case isZero(b):
		return Number(1)
	case isOne(b):
		return a
	}
	if x, ok := a.(Number); ok {
		if y, ok := b.(Number); ok {
			return Number(math.Pow(float64(x), float64(y)))
		}
	}
	return NewCall("Power", a, b)
}
