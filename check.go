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
	"strings"

	"github.com/prashantbarca/arlington-pdf-model/predicate"
)

// Check validates the internal consistency of the grammar: duplicate
// keys, unknown type tags, positional arity of the per-variant fields,
// link resolution, value domains.
//
// Check never stops at the first defect; every finding is accumulated
// into the returned report so that grammar authors see all of them in one
// pass.
func (g *Grammar) Check() *Report {
	report := &Report{}
	for _, name := range g.Names() {
		g.checkObject(g.Objects[name], report)
	}
	return report
}

func (g *Grammar) checkObject(obj *Object, report *Report) {
	seen := make(map[string]bool)
	for _, row := range obj.Rows {
		where := obj.Name + "::" + row.Key

		if seen[row.Key] {
			report.Add(DuplicateKey, where, "key %q declared more than once", row.Key)
		}
		seen[row.Key] = true

		g.checkRow(obj, row, where, report)
	}
}

func (g *Grammar) checkRow(obj *Object, row *Row, where string, report *Report) {
	checkBalance(row, where, report)

	// type vocabulary
	for _, seg := range row.Types {
		tp, ok := unwrapGate(seg)
		if !ok {
			report.Add(UnknownType, where, "cannot resolve type variant %q", seg)
			continue
		}
		if !IsKnownType(tp) {
			report.Add(UnknownType, where, "unknown type %q", tp)
		}
	}

	// positional alignment of the per-variant fields
	n := len(row.Types)
	for _, list := range []struct {
		name     string
		segments []string
	}{
		{colDefaultValue, row.DefaultValues},
		{colPossibleValues, row.PossibleValues},
		{colSpecialCase, row.SpecialCases},
		{colLink, row.Links},
	} {
		if list.segments != nil && len(list.segments) != n {
			report.Add(ArityMismatch, where, "%d types but %d %s entries",
				n, len(list.segments), list.name)
		}
	}
	if strings.HasPrefix(row.IndirectReference, "[") {
		segments, _ := predicate.Split(row.IndirectReference, ';')
		if len(segments) != n {
			report.Add(ArityMismatch, where, "%d types but %d %s entries",
				n, len(segments), colIndirectRef)
		}
	}

	g.checkLinks(row, where, report)

	for i, seg := range row.Types {
		tp, ok := unwrapGate(seg)
		if !ok || !IsComplexType(tp) {
			continue
		}
		if i < len(row.PossibleValues) && strip(row.PossibleValues[i]) != "" {
			report.Add(IllegalPossibleValue, where,
				"complex type %s declares possible values %q", tp, row.PossibleValues[i])
		}
	}

	if _, ok := row.InheritableFlag(); !ok {
		report.Add(InvalidInheritable, where,
			"%s must be true or false, got %q", colInheritable, row.Inheritable)
	}
}

func (g *Grammar) checkLinks(row *Row, where string, report *Report) {
	if row.Links == nil {
		return
	}
	for i, seg := range row.Links {
		if !strings.HasPrefix(seg, "[") || !strings.HasSuffix(seg, "]") {
			report.Add(DanglingLink, where, "link segment %q is not bracketed", seg)
			continue
		}

		targets, _ := predicate.Split(predicate.TrimList(seg), ',')
		for _, target := range targets {
			name, ok := unwrapGate(target)
			if !ok {
				report.Add(DanglingLink, where, "cannot resolve link %q", target)
				continue
			}
			if name != "" && g.Get(name) == nil {
				report.Add(DanglingLink, where, "link to unknown grammar object %q", name)
			}
		}

		if i >= len(row.Types) {
			continue // arity defect already reported
		}
		tp, ok := unwrapGate(row.Types[i])
		if ok && IsComplexType(tp) && len(targets) == 0 && !exempted(row, i) {
			report.Add(UnlinkedComplexType, where, "type %s has no link", tp)
		}
	}
}

// exempted reports whether the special-case annotation for a type variant
// documents a deliberately unlinked complex type.
func exempted(row *Row, i int) bool {
	return i < len(row.SpecialCases) && strip(row.SpecialCases[i]) != ""
}

// checkBalance reports predicates whose parentheses do not balance within
// their field.
func checkBalance(row *Row, where string, report *Report) {
	fields := []string{row.Required, row.IndirectReference}
	fields = append(fields, row.Types...)
	fields = append(fields, row.DefaultValues...)
	fields = append(fields, row.PossibleValues...)
	fields = append(fields, row.SpecialCases...)
	fields = append(fields, row.Links...)
	for _, f := range fields {
		if !strings.Contains(f, predicate.Marker) {
			continue
		}
		if _, err := predicate.Split(predicate.TrimList(f), ','); err != nil {
			report.Add(UnbalancedPredicate, where, "%v in %q", err, f)
		}
	}
}

// strip removes the list brackets of a per-variant entry, turning the
// degenerate "[]" into the empty string.
func strip(s string) string {
	return predicate.TrimList(s)
}
