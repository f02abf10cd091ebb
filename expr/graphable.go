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

import "fmt"

// Comparison is the relation between an expression and zero.
type Comparison int

const (
	Equal Comparison = iota
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
)

var comparisonHeads = map[string]Comparison{
	"Equal":        Equal,
	"NotEqual":     NotEqual,
	"Less":         Less,
	"LessEqual":    LessEqual,
	"Greater":      Greater,
	"GreaterEqual": GreaterEqual,
}

func (c Comparison) String() string {
	switch c {
	case Equal:
		return "="
	case NotEqual:
		return "≠"
	case Less:
		return "<"
	case LessEqual:
		return "≤"
	case Greater:
		return ">"
	case GreaterEqual:
		return "≥"
	}
	return fmt.Sprintf("Comparison(%d)", int(c))
}

// flip returns the comparison obtained by multiplying both sides by -1.
func (c Comparison) flip() Comparison {
	switch c {
	case Less:
		return Greater
	case LessEqual:
		return GreaterEqual
	case Greater:
		return Less
	case GreaterEqual:
		return LessEqual
	}
	return c
}

// Graphable is an expression compared with zero.
type Graphable struct {
	Expr Expr
	Cmp  Comparison
}

// GraphableSet describes the solution set of a relation as the union of
// the solution sets of Include, minus the zero sets of Exclude.
type GraphableSet struct {
	Include []Graphable
	Exclude []Graphable
}

// EquationToGraphableSet decomposes an equation or inequality into
// independently graphable parts.
//
// A relation R(l, r) is rewritten as l - r compared with zero; an
// expression which is not a relation means "= 0". For equations, products
// are split into their factors, the denominator of a quotient is moved to
// Exclude (also when the quotient is one side of an equation), and wrappers which do not change the zero set (Abs, Negate,
// Sqrt, Square, positive powers, Delimiter) are removed. For inequalities
// only sign preserving or sign flipping wrappers are removed. The
// decomposition is best effort: the result always describes a superset of
// the zero set that the contouring engine can draw piece by piece.
func EquationToGraphableSet(e Expr) (*GraphableSet, error) {
	if err := validate(e); err != nil {
		return nil, err
	}

	lhs, cmp := e, Equal
	if c, ok := e.(*Call); ok {
		if rel, ok := comparisonHeads[c.Head]; ok {
			if len(c.Args) != 2 {
				return nil, malformed(c.Head, "expected 2 arguments, got %d", len(c.Args))
			}
			cmp = rel
			lhs = c.Args[0]
			if !isZero(c.Args[1]) {
				lhs = NewCall("Subtract", c.Args[0], c.Args[1])
			}
		}
	}

	set := &GraphableSet{}
	if cmp == Equal || cmp == NotEqual {
		set.addZeroSet(lhs, cmp, false)
		if sub, ok := lhs.(*Call); ok && sub.Head == "Subtract" {
			set.excludePoles(sub.Args, cmp)
		}
	} else {
		set.addInequality(lhs, cmp)
	}
	return set, nil
}

// validate checks that e can be compiled, allowing relational heads at
// the top level only.
func validate(e Expr) error {
	if c, ok := e.(*Call); ok {
		if _, isRel := comparisonHeads[c.Head]; isRel {
			for _, a := range c.Args {
				if _, err := compile(a); err != nil {
					return err
				}
			}
			return nil
		}
	}
	_, err := compile(e)
	return err
}

// addZeroSet records the zero set of e, split into independent parts
// where possible.
func (s *GraphableSet) addZeroSet(e Expr, cmp Comparison, exclude bool) {
	if c, ok := e.(*Call); ok {
		switch c.Head {
		case "Multiply":
			for _, f := range c.Args {
				if n, ok := f.(Number); ok && n != 0 {
					continue
				}
				s.addZeroSet(f, cmp, exclude)
			}
			return

		case "Divide", "Rational":
			if len(c.Args) == 2 {
				s.addZeroSet(c.Args[0], cmp, exclude)
				s.addZeroSet(c.Args[1], cmp, !exclude)
				return
			}

		case "Power":
			if len(c.Args) == 2 {
				if n, ok := c.Args[1].(Number); ok {
					switch {
					case n > 0:
						s.addZeroSet(c.Args[0], cmp, exclude)
						return
					case n < 0:
						s.addZeroSet(c.Args[0], cmp, !exclude)
						return
					}
				}
			}

		case "Abs", "Negate", "Delimiter", "Sqrt", "Square":
			if len(c.Args) == 1 {
				s.addZeroSet(c.Args[0], cmp, exclude)
				return
			}
		}
	}
	s.add(Graphable{Expr: e, Cmp: cmp}, exclude)
}

// excludePoles moves the denominators of quotients on either side of an
// equation to Exclude. The difference of the two sides changes sign
// across such a pole without being zero there.
func (s *GraphableSet) excludePoles(sides []Expr, cmp Comparison) {
	for _, e := range sides {
		c, ok := e.(*Call)
		if !ok || (c.Head != "Divide" && c.Head != "Rational") || len(c.Args) != 2 {
			continue
		}
		if _, isConst := c.Args[1].(Number); isConst {
			continue
		}
		s.add(Graphable{Expr: c.Args[1], Cmp: cmp}, true)
	}
}

// addInequality records the boundary of {e cmp 0}.
func (s *GraphableSet) addInequality(e Expr, cmp Comparison) {
	for {
		c, ok := e.(*Call)
		if !ok {
			break
		}
		if (c.Head == "Delimiter" || c.Head == "Negate") && len(c.Args) == 1 {
			if c.Head == "Negate" {
				cmp = cmp.flip()
			}
			e = c.Args[0]
			continue
		}
		if c.Head == "Multiply" && len(c.Args) == 2 {
			if n, ok := c.Args[0].(Number); ok && n != 0 {
				if n < 0 {
					cmp = cmp.flip()
				}
				e = c.Args[1]
				continue
			}
			if n, ok := c.Args[1].(Number); ok && n != 0 {
				if n < 0 {
					cmp = cmp.flip()
				}
				e = c.Args[0]
				continue
			}
		}
		break
	}
	s.add(Graphable{Expr: e, Cmp: cmp}, false)
}

func (s *GraphableSet) add(g Graphable, exclude bool) {
	list := &s.Include
	if exclude {
		list = &s.Exclude
	}
	for _, h := range *list {
		if h.Cmp == g.Cmp && Identical(h.Expr, g.Expr) {
			return
		}
	}
	*list = append(*list, g)
}
