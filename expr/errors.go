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
	"fmt"
)

// ErrMalformed is matched by every [*MalformedError] via [errors.Is].
var ErrMalformed = errors.New("malformed expression")

// MalformedError reports a structural problem with an expression: an
// explicit Error node, an unsupported function head or symbol, or a wrong
// number of arguments. Evaluation problems at individual points are never
// reported this way.
type MalformedError struct {
	Head   string // function head or symbol that caused the problem
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Head == "" {
		return "malformed expression: " + e.Reason
	}
	return fmt.Sprintf("malformed expression: %s: %s", e.Head, e.Reason)
}

// Is makes errors.Is(err, ErrMalformed) succeed.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

func malformed(head, format string, args ...any) error {
	return &MalformedError{Head: head, Reason: fmt.Sprintf(format, args...)}
}
