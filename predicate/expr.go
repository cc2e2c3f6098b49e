// arlington-pdf-model - validate PDF files against the Arlington PDF model
// Copyright (C) 2026  The arlington-pdf-model contributors
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

package predicate

import (
	"errors"
	"strings"
)

// An Expr is a node of a parsed predicate expression: either a [*Call]
// or a [Literal].
type Expr interface {
	// Text returns the grammar file representation of the expression.
	Text() string
}

// A Call is an "fn:Name(arg, ...)" predicate application.
type Call struct {
	Name string
	Args []Expr
}

// Text implements the [Expr] interface.
func (c *Call) Text() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.Text()
	}
	return Marker + c.Name + "(" + strings.Join(args, ",") + ")"
}

// A Literal is a bare argument or field value.
type Literal string

// Text implements the [Expr] interface.
func (l Literal) Text() string {
	return string(l)
}

var errMalformed = errors.New("malformed predicate expression")

// Parse parses one field segment.  Segments which are not predicate
// expressions parse to a [Literal].
func Parse(s string) (Expr, error) {
	expr, rest, err := parseExpr(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, errMalformed
	}
	return expr, nil
}

// parseExpr consumes one expression from the front of s and returns the
// unconsumed remainder.
func parseExpr(s string) (Expr, string, error) {
	if !Is(s) {
		// a literal extends to the next top-level ',' or ')'
		depth := 0
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '(', '[':
				depth++
			case ']':
				if depth > 0 {
					depth--
				}
			case ')':
				if depth == 0 {
					return Literal(strings.TrimSpace(s[:i])), s[i:], nil
				}
				depth--
			case ',':
				if depth == 0 {
					return Literal(strings.TrimSpace(s[:i])), s[i:], nil
				}
			}
		}
		return Literal(strings.TrimSpace(s)), "", nil
	}

	rest := s[len(Marker):]
	open := strings.IndexByte(rest, '(')
	if open <= 0 {
		return nil, "", errMalformed
	}
	call := &Call{Name: rest[:open]}
	rest = rest[open+1:]

	for {
		if rest == "" {
			return nil, "", ErrUnbalanced
		}
		if rest[0] == ')' {
			return call, rest[1:], nil
		}

		arg, remainder, err := parseExpr(rest)
		if err != nil {
			return nil, "", err
		}
		call.Args = append(call.Args, arg)
		rest = remainder

		switch {
		case rest == "":
			return nil, "", ErrUnbalanced
		case rest[0] == ',':
			rest = rest[1:]
		case rest[0] == ')':
			// closed on next loop iteration
		default:
			return nil, "", errMalformed
		}
	}
}
