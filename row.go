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
	"slices"

	"github.com/prashantbarca/arlington-pdf-model/predicate"
)

// WildcardKey matches any key (or any array index) not covered by another
// row of the same grammar object.
const WildcardKey = "*"

// A Row is the constraint set for a single key or array-index slot within
// one grammar object.
//
// The Types list holds the permitted type variants for the key, in grammar
// file order.  DefaultValues, PossibleValues, SpecialCases and Links are
// positionally aligned to Types: when non-nil, each has exactly one entry
// per type variant.  Empty per-variant entries are stored as "" (basic
// fields) or "[]" (list fields).
type Row struct {
	// Key is the key name, the WildcardKey, or a decimal array index.
	Key string

	// Types holds the permitted type variants.  A variant is either a
	// bare type tag or a version-gated predicate wrapping a type tag.
	Types []string

	// SinceVersion is the PDF version which introduced the key.
	SinceVersion Version

	// DeprecatedIn is the PDF version which deprecated the key, or zero
	// if the key has never been deprecated.
	DeprecatedIn Version

	// Required is "true", "false", or a predicate expression.
	Required string

	// IndirectReference is "true", "false", a per-variant list of
	// bracketed booleans, or a predicate expression.
	IndirectReference string

	// Inheritable is "true" or "false".  Any other text is preserved so
	// that Grammar.Check can report it.
	Inheritable string

	// DefaultValues holds the per-variant default values.
	DefaultValues []string

	// PossibleValues holds the per-variant permitted value lists.
	PossibleValues []string

	// SpecialCases holds per-variant free-form constraint annotations.
	SpecialCases []string

	// Links holds the per-variant bracketed lists of grammar object
	// names describing nested structures.
	Links []string

	// Note is free text, ignored by the engine.
	Note string
}

// IsRequired reports whether the key is unconditionally required.
// Predicates count as not required here; they are evaluated against a
// concrete document during validation.
func (r *Row) IsRequired() bool {
	return r.Required == "true"
}

// InheritableFlag returns the inheritable flag.  ok is false if the field
// does not hold one of the two boolean literals.
func (r *Row) InheritableFlag() (value, ok bool) {
	switch r.Inheritable {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// RequiredIsPredicate reports whether the Required field is a predicate
// expression rather than a boolean literal.
func (r *Row) RequiredIsPredicate() bool {
	return predicate.Is(r.Required)
}

// Clone returns a deep copy of the row.
func (r *Row) Clone() *Row {
	c := *r
	c.Types = slices.Clone(r.Types)
	c.DefaultValues = slices.Clone(r.DefaultValues)
	c.PossibleValues = slices.Clone(r.PossibleValues)
	c.SpecialCases = slices.Clone(r.SpecialCases)
	c.Links = slices.Clone(r.Links)
	return &c
}
