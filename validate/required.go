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

package validate

import (
	arlington "github.com/prashantbarca/arlington-pdf-model"
	"github.com/prashantbarca/arlington-pdf-model/document"
	"github.com/prashantbarca/arlington-pdf-model/predicate"
)

// isRequired decides whether a row's key must be present on the current
// object.  Version-conditioned predicates were already resolved during
// reduction; what remains is either a boolean literal or a predicate over
// the object's sibling keys.  Predicates the engine cannot decide count
// as not required, so that an incomplete predicate vocabulary never
// produces a false MissingRequiredKey.
func (r *run) isRequired(row *arlington.Row, siblings document.Dict) bool {
	if !row.RequiredIsPredicate() {
		return row.IsRequired()
	}

	expr, err := predicate.Parse(row.Required)
	if err != nil {
		return false
	}
	call, ok := expr.(*predicate.Call)
	if !ok || call.Name != "IsRequired" || len(call.Args) != 1 {
		return false
	}
	return evalCondition(call.Args[0], siblings)
}

func evalCondition(e predicate.Expr, siblings document.Dict) bool {
	call, ok := e.(*predicate.Call)
	if !ok {
		return e.Text() == "true"
	}
	if len(call.Args) != 1 {
		return false
	}
	switch call.Name {
	case "IsPresent":
		_, present := siblings[document.Name(call.Args[0].Text())]
		return present
	case "NotPresent":
		_, present := siblings[document.Name(call.Args[0].Text())]
		return !present
	}
	return false
}

// inherited resolves an absent inheritable key by walking the document's
// containment chain upward.
func (r *run) inherited(row *arlington.Row, dict document.Dict) (document.Object, bool) {
	if inheritable, ok := row.InheritableFlag(); !ok || !inheritable {
		return nil, false
	}

	node := dict
	for i := 0; i < maxInheritDepth; i++ {
		parent, ok := r.doc.Parent(node)
		if !ok {
			return nil, false
		}
		if value, present := parent[document.Name(row.Key)]; present {
			return value, true
		}
		node = parent
	}
	return nil, false
}
