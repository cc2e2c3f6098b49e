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

// Type tags used in the "Type" column of a grammar file.  Complex types
// describe nested structures and carry a link to the grammar object for
// that structure; basic types describe scalar values.
const (
	TypeBoolean    = "boolean"
	TypeNumber     = "number"
	TypeString     = "string"
	TypeName       = "name"
	TypeNull       = "null"
	TypeReference  = "reference"
	TypeArray      = "array"
	TypeDictionary = "dictionary"
	TypeStream     = "stream"
	TypeNameTree   = "name-tree"
	TypeNumberTree = "number-tree"
)

var knownTypes = map[string]bool{
	TypeBoolean:    true,
	TypeNumber:     true,
	TypeString:     true,
	TypeName:       true,
	TypeNull:       true,
	TypeReference:  true,
	TypeArray:      true,
	TypeDictionary: true,
	TypeStream:     true,
	TypeNameTree:   true,
	TypeNumberTree: true,
}

var complexTypes = map[string]bool{
	TypeArray:      true,
	TypeDictionary: true,
	TypeStream:     true,
	TypeNameTree:   true,
	TypeNumberTree: true,
}

// IsKnownType reports whether t is part of the recognized type vocabulary.
func IsKnownType(t string) bool {
	return knownTypes[t]
}

// IsComplexType reports whether t describes a nested structure which
// requires a link to another grammar object.
func IsComplexType(t string) bool {
	return complexTypes[t]
}
