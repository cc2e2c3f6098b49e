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

package document

import "fmt"

// Memory is an in-memory document, the reference implementation of the
// [Provider] interface.
type Memory struct {
	trailer Dict
	objects map[Reference]Object
}

// NewMemory creates an empty in-memory document.
func NewMemory() *Memory {
	return &Memory{
		trailer: Dict{},
		objects: map[Reference]Object{},
	}
}

// SetTrailer installs the document's trailer dictionary.
func (m *Memory) SetTrailer(d Dict) {
	m.trailer = d
}

// Put stores an indirect object.
func (m *Memory) Put(ref Reference, obj Object) {
	m.objects[ref] = obj
}

// Trailer implements the [Provider] interface.
func (m *Memory) Trailer() Dict {
	return m.trailer
}

// Get implements the [Provider] interface.
func (m *Memory) Get(ref Reference) (Object, error) {
	obj, ok := m.objects[ref]
	if !ok {
		return nil, fmt.Errorf("%s: no such object", ref)
	}
	return obj, nil
}

// Parent implements the [Provider] interface.  Containers take part in
// the inheritable hierarchy through their "Parent" key, the way page
// tree nodes do.
func (m *Memory) Parent(d Dict) (Dict, bool) {
	obj, ok := d["Parent"]
	if !ok {
		return nil, false
	}
	parent, err := GetDict(m, obj)
	if err != nil || parent == nil {
		return nil, false
	}
	return parent, true
}
