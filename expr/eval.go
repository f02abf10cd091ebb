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
	"unicode/utf8"
)

// Env holds the variable values for one evaluation.
type Env struct {
	X, Y, Z float64

	// Vars supplies values for single-letter symbols other than x, y and z.
	// Symbols which are not found evaluate to NaN.
	Vars map[string]float64
}

// Program is a compiled expression. It is safe for concurrent use.
type Program struct {
	expr Expr
	fn   evalFunc
}

type evalFunc func(env *Env) float64

// Compile validates an expression and prepares it for repeated evaluation.
// Any error is a [*MalformedError].
func Compile(e Expr) (*Program, error) {
	fn, err := compile(e)
	if err != nil {
		return nil, err
	}
	return &Program{expr: e, fn: fn}, nil
}

// Evaluate compiles and evaluates an expression once.
func Evaluate(e Expr, env Env) (float64, error) {
	p, err := Compile(e)
	if err != nil {
		return math.NaN(), err
	}
	return p.Eval(&env), nil
}

// Expr returns the expression the program was compiled from.
func (p *Program) Expr() Expr {
	return p.expr
}

// Eval evaluates the program in the given environment.
func (p *Program) Eval(env *Env) float64 {
	return p.fn(env)
}

// At evaluates the program at (x, y), with z = 0 and no other variables.
func (p *Program) At(x, y float64) float64 {
	env := Env{X: x, Y: y}
	return p.fn(&env)
}

// constants lists the named constants understood by the evaluator.
// ImaginaryUnit has no real value; it evaluates to NaN.
var constants = map[string]float64{
	"Pi":               math.Pi,
	"ExponentialE":     math.E,
	"ImaginaryUnit":    math.NaN(),
	"GoldenRatio":      math.Phi,
	"EulerGamma":       0.57721566490153286060651209008240243104215933593992,
	"CatalanConstant":  0.91596559417721901505460351493238411077414937428167,
	"MachineEpsilon":   0x1p-52,
	"Degrees":          math.Pi / 180,
	"Infinity":         math.Inf(1),
	"PositiveInfinity": math.Inf(1),
	"NegativeInfinity": math.Inf(-1),
	"NaN":              math.NaN(),
}

// unary lists the functions of one argument.
var unary = map[string]func(float64) float64{
	"Negate": func(x float64) float64 { return -x },
	"Sqrt":   math.Sqrt,
	"Square": func(x float64) float64 { return x * x },
	"Exp":    math.Exp,
	"Ln":     math.Log,
	"Lb":     math.Log2,
	"Lg":     math.Log10,
	"Abs":    math.Abs,
	"Floor":  math.Floor,
	"Ceil":   math.Ceil,
	"Round":  math.Round,

	"Sin": math.Sin,
	"Cos": math.Cos,
	"Tan": math.Tan,
	"Cot": func(x float64) float64 { return 1 / math.Tan(x) },
	"Sec": func(x float64) float64 { return 1 / math.Cos(x) },
	"Csc": func(x float64) float64 { return 1 / math.Sin(x) },

	"Arcsin": math.Asin,
	"Arccos": math.Acos,
	"Arctan": math.Atan,
	"Arccot": func(x float64) float64 { return math.Atan(1 / x) },
	"Arcsec": func(x float64) float64 { return math.Acos(1 / x) },
	"Arccsc": func(x float64) float64 { return math.Asin(1 / x) },

	"Sinh": math.Sinh,
	"Cosh": math.Cosh,
	"Tanh": math.Tanh,
	"Coth": func(x float64) float64 { return 1 / math.Tanh(x) },
	"Sech": func(x float64) float64 { return 1 / math.Cosh(x) },
	"Csch": func(x float64) float64 { return 1 / math.Sinh(x) },

	"Arsinh": math.Asinh,
	"Arcosh": math.Acosh,
	"Artanh": math.Atanh,
	"Arcoth": func(x float64) float64 { return math.Atanh(1 / x) },
	"Arsech": func(x float64) float64 { return math.Acosh(1 / x) },
	"Arcsch": func(x float64) float64 { return math.Asinh(1 / x) },
}

// IsSupported reports whether head is a function the evaluator knows.
func IsSupported(head string) bool {
	if _, ok := unary[head]; ok {
		return true
	}
	switch head {
	case "Add", "Subtract", "Multiply", "Divide", "Power", "Log", "Rational", "Delimiter":
		return true
	}
	return false
}

func compile(e Expr) (evalFunc, error) {
	switch e := e.(type) {
	case Number:
		v := float64(e)
		return func(*Env) float64 { return v }, nil
	case Symbol:
		return compileSymbol(string(e))
	case *Call:
		return compileCall(e)
	case nil:
		return nil, &MalformedError{Reason: "missing expression"}
	}
	return nil, &MalformedError{Reason: "unknown node type"}
}

func compileSymbol(name string) (evalFunc, error) {
	switch name {
	case "x":
		return func(env *Env) float64 { return env.X }, nil
	case "y":
		return func(env *Env) float64 { return env.Y }, nil
	case "z":
		return func(env *Env) float64 { return env.Z }, nil
	}
	if v, ok := constants[name]; ok {
		return func(*Env) float64 { return v }, nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return nil, malformed(name, "unsupported symbol")
	}
	return func(env *Env) float64 {
		v, ok := env.Vars[name]
		if !ok {
			return math.NaN()
		}
		return v
	}, nil
}

func compileCall(c *Call) (evalFunc, error) {
	if c.Head == "Error" {
		reason := "error node"
		if len(c.Args) > 0 {
			if s, ok := c.Args[0].(Symbol); ok {
				reason = string(s)
			}
		}
		return nil, malformed("Error", "%s", reason)
	}

	args := make([]evalFunc, len(c.Args))
	for i, a := range c.Args {
		fn, err := compile(a)
		if err != nil {
			return nil, err
		}
		args[i] = fn
	}

	if f, ok := unary[c.Head]; ok {
		if len(args) != 1 {
			return nil, malformed(c.Head, "expected 1 argument, got %d", len(args))
		}
		a := args[0]
		return func(env *Env) float64 { return f(a(env)) }, nil
	}

	switch c.Head {
	case "Add":
		return func(env *Env) float64 {
			var sum float64
			for _, a := range args {
				sum += a(env)
			}
			return sum
		}, nil

	case "Multiply":
		return func(env *Env) float64 {
			prod := 1.0
			for _, a := range args {
				prod *= a(env)
			}
			return prod
		}, nil

	case "Subtract":
		switch len(args) {
		case 0:
			return nil, malformed(c.Head, "expected at least 1 argument")
		case 1:
			a := args[0]
			return func(env *Env) float64 { return -a(env) }, nil
		}
		return func(env *Env) float64 {
			v := args[0](env)
			for _, a := range args[1:] {
				v -= a(env)
			}
			return v
		}, nil

	case "Divide", "Rational":
		if len(args) != 2 {
			return nil, malformed(c.Head, "expected 2 arguments, got %d", len(args))
		}
		a, b := args[0], args[1]
		return func(env *Env) float64 { return a(env) / b(env) }, nil

	case "Power":
		if len(args) != 2 {
			return nil, malformed(c.Head, "expected 2 arguments, got %d", len(args))
		}
		a, b := args[0], args[1]
		return func(env *Env) float64 { return math.Pow(a(env), b(env)) }, nil

	case "Log":
		switch len(args) {
		case 1:
			a := args[0]
			return func(env *Env) float64 { return math.Log10(a(env)) }, nil
		case 2:
			a, b := args[0], args[1]
			return func(env *Env) float64 { return math.Log(a(env)) / math.Log(b(env)) }, nil
		}
		return nil, malformed(c.Head, "expected 1 or 2 arguments, got %d", len(args))

	case "Delimiter":
		if len(args) != 1 {
			return nil, malformed(c.Head, "expected 1 argument, got %d", len(args))
		}
		return args[0], nil
	}

	return nil, malformed(c.Head, "unsupported function")
}
