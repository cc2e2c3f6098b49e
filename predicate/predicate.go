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

// Package predicate implements the "fn:" constraint mini-language embedded
// in Arlington grammar fields.
//
// Grammar fields are lists separated by ';' (one segment per type variant)
// or ',' (one segment per permitted value).  Since predicate argument
// lists use ',' as well, [Split] only honours a separator outside any
// parenthesized predicate expression.
package predicate

import (
	"errors"
	"strings"
)

// Marker prefixes every predicate expression.
const Marker = "fn:"

// ErrUnbalanced indicates a predicate whose opening parenthesis has no
// matching close before the end of the field.  Split still returns the
// segments it found, with the defective segment extending to the end of
// the string.
var ErrUnbalanced = errors.New("unbalanced predicate expression")

// Is reports whether s is a predicate expression.
func Is(s string) bool {
	return strings.HasPrefix(s, Marker)
}

// Split splits a grammar field into its top-level segments.  Separator
// bytes inside balanced '('…')' or '['…']' pairs are not split points.
// Degenerate input (the empty string) yields no segments.
func Split(s string, sep byte) ([]string, error) {
	if s == "" {
		return nil, nil
	}

	var segments []string
	var err error
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				segments = append(segments, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		err = ErrUnbalanced
	}
	segments = append(segments, s[start:])
	return segments, err
}

// TrimList removes one enclosing '['…']' pair from a whole field.
// A bare "[]" trims to the empty string, so that a subsequent Split
// yields zero segments.
func TrimList(s string) string {
	if len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']' {
		return s[1 : len(s)-1]
	}
	return s
}
