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

	"golang.org/x/exp/maps"
)

// An Object is the named set of rows describing one PDF object type.
// The name is the link target used by other grammar objects.
type Object struct {
	Name string
	Rows []*Row
}

// Row returns the row for the given key, or nil if the object does not
// declare the key.
func (o *Object) Row(key string) *Row {
	for _, r := range o.Rows {
		if r.Key == key {
			return r
		}
	}
	return nil
}

// Wildcard returns the object's wildcard row, or nil.
func (o *Object) Wildcard() *Row {
	return o.Row(WildcardKey)
}

// Keys returns the key names of all rows, in grammar file order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.Rows))
	for i, r := range o.Rows {
		keys[i] = r.Key
	}
	return keys
}

// A Grammar is the full named collection of grammar objects for one PDF
// format family.  A Grammar is created once by [LoadDir] and must not be
// modified afterwards; [Grammar.Reduce] derives new Grammars instead of
// changing an existing one.
type Grammar struct {
	Objects map[string]*Object
}

// Get returns the grammar object with the given name, or nil.
func (g *Grammar) Get(name string) *Object {
	return g.Objects[name]
}

// Names returns the names of all grammar objects in sorted order.
func (g *Grammar) Names() []string {
	names := maps.Keys(g.Objects)
	slices.Sort(names)
	return names
}
