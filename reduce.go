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
	"errors"
	"fmt"
	"strings"

	"github.com/prashantbarca/arlington-pdf-model/predicate"
)

// Reduce derives the view of the grammar that applies to the given PDF
// version.  The receiver is not modified.
//
// Grammar objects whose rows all disappear at the target version are
// dropped.  An object whose master rows violate the positional-alignment
// invariant fails to reduce; the remaining objects still reduce, and the
// returned error joins one [*ReductionError] per failed object.
func (g *Grammar) Reduce(target Version) (*Grammar, error) {
	res := &Grammar{Objects: make(map[string]*Object)}
	var reduceErrs []error
	for _, name := range g.Names() {
		obj, err := g.Objects[name].Reduce(target)
		if err != nil {
			reduceErrs = append(reduceErrs, err)
			continue
		}
		if len(obj.Rows) > 0 {
			res.Objects[name] = obj
		}
	}
	return res, errors.Join(reduceErrs...)
}

// Reduce derives the version-specific view of a single grammar object.
func (o *Object) Reduce(target Version) (*Object, error) {
	res := &Object{Name: o.Name}
	for _, row := range o.Rows {
		if row.SinceVersion > target {
			continue
		}
		reduced, err := o.reduceRow(row, target)
		if err != nil {
			return nil, err
		}
		if reduced != nil {
			res.Rows = append(res.Rows, reduced)
		}
	}
	return res, nil
}

func (o *Object) reduceRow(row *Row, target Version) (*Row, error) {
	n := len(row.Types)
	for _, list := range [][]string{
		row.DefaultValues, row.PossibleValues, row.SpecialCases, row.Links,
	} {
		if list != nil && len(list) != n {
			err := fmt.Errorf("%d types but %d aligned entries", n, len(list))
			return nil, &ReductionError{Object: o.Name, Key: row.Key, Err: err}
		}
	}
	indirect := row.IndirectReference
	var indirectSegments []string
	if strings.HasPrefix(indirect, "[") {
		indirectSegments, _ = predicate.Split(indirect, ';')
		if len(indirectSegments) != n {
			err := fmt.Errorf("%d types but %d %s entries",
				n, len(indirectSegments), colIndirectRef)
			return nil, &ReductionError{Object: o.Name, Key: row.Key, Err: err}
		}
	}

	// resolve the version gate of every type variant
	var keep []int
	var types []string
	for i, seg := range row.Types {
		value, kept, ok := evalGate(seg, target)
		if !ok {
			// unrecognized predicate, keep the variant verbatim
			keep = append(keep, i)
			types = append(types, seg)
			continue
		}
		if kept {
			keep = append(keep, i)
			types = append(types, value)
		}
	}
	if len(types) == 0 {
		return nil, nil
	}

	reduced := row.Clone()
	reduced.Types = types
	reduced.Required = evalRequired(row.Required, target)
	reduced.DefaultValues = selectAligned(row.DefaultValues, keep)
	reduced.SpecialCases = selectAligned(row.SpecialCases, keep)
	reduced.PossibleValues = selectAligned(row.PossibleValues, keep)
	reduced.Links = selectAligned(row.Links, keep)
	for i, cell := range reduced.DefaultValues {
		reduced.DefaultValues[i] = reduceListCell(cell, target)
	}
	for i, cell := range reduced.PossibleValues {
		reduced.PossibleValues[i] = reduceListCell(cell, target)
	}
	for i, cell := range reduced.Links {
		reduced.Links[i] = reduceListCell(cell, target)
	}
	if indirectSegments != nil {
		segments := selectAligned(indirectSegments, keep)
		reduced.IndirectReference = strings.Join(segments, ";")
	}

	if len(types) == 1 {
		reduced.scalarize()
	}
	return reduced, nil
}

// selectAligned keeps the positions of list named by keep, preserving
// their relative order.
func selectAligned(list []string, keep []int) []string {
	if list == nil {
		return nil
	}
	res := make([]string, 0, len(keep))
	for _, i := range keep {
		res = append(res, list[i])
	}
	return res
}

// reduceListCell resolves the version gates inside one bracketed value or
// link list.  Unrecognized predicates stay verbatim for run-time
// evaluation during validation.
func reduceListCell(cell string, target Version) string {
	inner := predicate.TrimList(cell)
	bracketed := inner != cell

	parts, splitErr := predicate.Split(inner, ',')
	if splitErr != nil {
		return cell
	}
	var res []string
	for _, part := range parts {
		value, kept, ok := evalGate(part, target)
		if !ok {
			res = append(res, part)
			continue
		}
		if kept {
			res = append(res, value)
		}
	}
	joined := strings.Join(res, ",")
	if bracketed {
		return "[" + joined + "]"
	}
	return joined
}

// scalarize rewrites the per-variant lists of a single-variant row so
// that one-element value lists become keyless scalars.
func (r *Row) scalarize() {
	r.DefaultValues = scalarizeList(r.DefaultValues)
	r.PossibleValues = scalarizeList(r.PossibleValues)
	if inner := predicate.TrimList(r.IndirectReference); inner != r.IndirectReference {
		if !strings.Contains(inner, ";") && !strings.Contains(inner, ",") {
			r.IndirectReference = inner
		}
	}
}

func scalarizeList(list []string) []string {
	if len(list) != 1 {
		return list
	}
	inner := predicate.TrimList(list[0])
	if inner == list[0] {
		return list
	}
	parts, err := predicate.Split(inner, ',')
	if err == nil && len(parts) == 1 {
		return []string{parts[0]}
	}
	return list
}
