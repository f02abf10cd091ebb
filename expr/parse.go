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
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Parse decodes an expression in MathJSON form.
//
// Numbers may be given as JSON numbers, as numeric strings, or as
// {"num": "..."} objects. Strings and {"sym": "..."} objects are symbols.
// Arrays and {"fn": [...]} objects are function applications whose first
// element is the head. The returned tree is not validated; use [Compile]
// for that.
func Parse(data []byte) (Expr, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &MalformedError{Reason: "invalid JSON: " + err.Error()}
	}
	if dec.More() {
		return nil, &MalformedError{Reason: "trailing data after expression"}
	}
	return fromJSON(v)
}

// MustParse is like Parse but panics on error. It is intended for
// expressions written into the source code.
func MustParse(s string) Expr {
	e, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return e
}

func fromJSON(v any) (Expr, error) {
	switch v := v.(type) {
	case json.Number:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return nil, malformed(string(v), "invalid number")
		}
		return Number(f), nil

	case string:
		if f, ok := parseNumberString(v); ok {
			return Number(f), nil
		}
		if v == "" {
			return nil, &MalformedError{Reason: "empty symbol"}
		}
		return Symbol(v), nil

	case []any:
		if len(v) == 0 {
			return nil, &MalformedError{Reason: "empty function application"}
		}
		head, ok := v[0].(string)
		if !ok || head == "" {
			return nil, &MalformedError{Reason: "function head must be a name"}
		}
		args := make([]Expr, 0, len(v)-1)
		for _, a := range v[1:] {
			arg, err := fromJSON(a)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return &Call{Head: head, Args: args}, nil

	case map[string]any:
		if num, ok := v["num"]; ok {
			s, ok := num.(string)
			if !ok {
				return nil, &MalformedError{Reason: `"num" must be a string`}
			}
			f, ok := parseNumberString(s)
			if !ok {
				return nil, malformed(s, "invalid number")
			}
			return Number(f), nil
		}
		if sym, ok := v["sym"]; ok {
			s, ok := sym.(string)
			if !ok || s == "" {
				return nil, &MalformedError{Reason: `"sym" must be a non-empty string`}
			}
			return Symbol(s), nil
		}
		if fn, ok := v["fn"]; ok {
			return fromJSON(fn)
		}
		return nil, &MalformedError{Reason: "unknown object form"}
	}
	return nil, &MalformedError{Reason: "unsupported JSON value"}
}

// parseNumberString recognises the numeric string forms of MathJSON.
func parseNumberString(s string) (float64, bool) {
	switch s {
	case "NaN":
		return math.NaN(), true
	case "+Infinity", "Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if s == "" {
		return 0, false
	}
	c := s[0]
	if !(c >= '0' && c <= '9' || c == '-' || c == '+' || c == '.') {
		return 0, false
	}
	// MathJSON allows repeating decimals such as "0.(3)"; only the plain
	// forms are accepted here.
	if strings.ContainsAny(s, "()") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
