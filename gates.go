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

package arlington

import (
	"github.com/prashantbarca/arlington-pdf-model/predicate"
)

// Version-gate predicates.  A gate wraps a single value (a type tag, a
// permitted value, or a link target) and restricts it to a range of PDF
// versions:
//
//	fn:SinceVersion(1.5,value)   valid from 1.5 on
//	fn:BeforeVersion(1.5,value)  valid before 1.5
//	fn:Deprecated(1.5,value)     deprecated from 1.5 on
//	fn:IsPDFVersion(1.5,value)   valid in 1.5 only
const (
	fnSinceVersion  = "SinceVersion"
	fnBeforeVersion = "BeforeVersion"
	fnDeprecated    = "Deprecated"
	fnIsPDFVersion  = "IsPDFVersion"
	fnIsRequired    = "IsRequired"
)

// unwrapGate returns the value carried by a possibly version-gated
// segment, ignoring the version constraint.  ok is false if the segment
// is a predicate which is not a recognized gate.
func unwrapGate(seg string) (value string, ok bool) {
	if !predicate.Is(seg) {
		return seg, true
	}
	expr, err := predicate.Parse(seg)
	if err != nil {
		return "", false
	}
	call, isCall := expr.(*predicate.Call)
	if !isCall {
		return seg, true
	}
	switch call.Name {
	case fnSinceVersion, fnBeforeVersion, fnDeprecated, fnIsPDFVersion:
		if len(call.Args) != 2 {
			return "", false
		}
		return unwrapGate(call.Args[1].Text())
	}
	return "", false
}

// evalGate resolves a possibly version-gated segment against a fixed
// target version.  keep is false if the gate excludes the value at the
// target version.  ok is false if the segment is an unrecognized
// predicate; such segments are kept verbatim by the caller.
func evalGate(seg string, target Version) (value string, keep, ok bool) {
	if !predicate.Is(seg) {
		return seg, true, true
	}
	expr, err := predicate.Parse(seg)
	if err != nil {
		return "", false, false
	}
	call, isCall := expr.(*predicate.Call)
	if !isCall {
		return seg, true, true
	}
	if len(call.Args) != 2 {
		return "", false, false
	}
	ver, err := ParseVersion(call.Args[0].Text())
	if err != nil {
		return "", false, false
	}

	var pass bool
	switch call.Name {
	case fnSinceVersion:
		pass = target >= ver
	case fnBeforeVersion:
		pass = target < ver
	case fnDeprecated:
		// deprecated values stay valid at every version, the same way
		// rows keep their DeprecatedIn marker after reduction
		pass = true
	case fnIsPDFVersion:
		pass = target == ver
	default:
		return "", false, false
	}
	if !pass {
		return "", false, true
	}
	return evalGate(call.Args[1].Text(), target)
}

// evalRequired resolves a version-conditioned Required field against a
// fixed target version.  Only the single-argument gates wrapped in
// fn:IsRequired resolve fully; any other predicate is left intact for
// evaluation during validation.
func evalRequired(field string, target Version) string {
	if !predicate.Is(field) {
		return field
	}
	expr, err := predicate.Parse(field)
	if err != nil {
		return field
	}
	call, isCall := expr.(*predicate.Call)
	if !isCall || call.Name != fnIsRequired || len(call.Args) != 1 {
		return field
	}
	gate, isCall := call.Args[0].(*predicate.Call)
	if !isCall || len(gate.Args) != 1 {
		return field
	}
	ver, err := ParseVersion(gate.Args[0].Text())
	if err != nil {
		return field
	}

	switch gate.Name {
	case fnSinceVersion:
		return boolField(target >= ver)
	case fnBeforeVersion:
		return boolField(target < ver)
	case fnIsPDFVersion:
		return boolField(target == ver)
	}
	return field
}

func boolField(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
