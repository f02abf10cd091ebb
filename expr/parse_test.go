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
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		src  string
		want Expr
	}{
		{`3`, Number(3)},
		{`-0.5e1`, Number(-5)},
		{`"2.25"`, Number(2.25)},
		{`"+Infinity"`, Number(math.Inf(1))},
		{`"NaN"`, Number(math.NaN())},
		{`"x"`, Symbol("x")},
		{`"0.(3)"`, Symbol("0.(3)")},
		{`{"num": "-1"}`, Number(-1)},
		{`{"sym": "Pi"}`, Symbol("Pi")},
		{`["Add", "x", 1]`, NewCall("Add", Symbol("x"), Number(1))},
		{`{"fn": ["Sin", {"sym": "y"}]}`, NewCall("Sin", Symbol("y"))},
		{`["Equal", ["Multiply", "x", "y"], 0]`,
			NewCall("Equal", NewCall("Multiply", Symbol("x"), Symbol("y")), Number(0))},
		{` ["Pi"] `, NewCall("Pi")},
	}
	for _, c := range cases {
		got, err := Parse([]byte(c.src))
		if err != nil {
			t.Errorf("%s: %v", c.src, err)
			continue
		}
		if !Identical(got, c.want) {
			t.Errorf("%s: expected %s, got %s", c.src, c.want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		``,
		`[`,
		`[]`,
		`[1, 2]`,
		`["Add", "x"] 1`,
		`""`,
		`{"num": 1}`,
		`{"num": "one"}`,
		`{"sym": ""}`,
		`{"foo": "bar"}`,
		`true`,
		`null`,
	} {
		_, err := Parse([]byte(src))
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%q: expected malformed error, got %v", src, err)
		}
	}
}

func TestCallString(t *testing.T) {
	e := MustParse(`["Add", "x", ["Multiply", 2, "y"]]`)
	want := `["Add", "x", ["Multiply", 2, "y"]]`
	if s := e.String(); s != want {
		t.Errorf("expected %s, got %s", want, s)
	}

	// String output parses back to the same tree
	back, err := Parse([]byte(e.String()))
	if err != nil {
		t.Fatal(err)
	}
	if !Identical(e, back) {
		t.Errorf("expected %s, got %s", e, back)
	}
}
