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

// Package document gives the grammar engine an abstract view of a PDF
// document's object graph.
//
// The engine never decodes PDF files itself; it sees documents through
// the [Provider] interface.  [Memory] is an in-memory implementation used
// by tests and by the JSON object-graph shim; a shim around a real PDF
// SDK satisfies the same interface.
package document

import (
	"fmt"
	"strconv"
)

// Kind identifies the native type of a PDF object.  The set is closed:
// every [Object] reports one of these values.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindName
	KindArray
	KindDictionary
	KindStream
	KindReference
)

var kindNames = []string{
	"null", "boolean", "number", "string", "name",
	"array", "dictionary", "stream", "reference",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("document.Kind(%d)", int(k))
}

// Object represents an object in a PDF document.  The native types
// [Boolean], [Integer], [Real], [String], [Name], [Array], [Dict],
// [*Stream], [Null] and [Reference] implement this interface.
type Object interface {
	// Kind returns the native type of the object.
	Kind() Kind
}

// KindOf returns the kind of obj, treating nil as null.
func KindOf(obj Object) Kind {
	if obj == nil {
		return KindNull
	}
	return obj.Kind()
}

// Boolean represents a boolean value in a PDF document.
type Boolean bool

// Kind implements the [Object] interface.
func (x Boolean) Kind() Kind { return KindBoolean }

// Integer represents an integer constant in a PDF document.
type Integer int64

// Kind implements the [Object] interface.
func (x Integer) Kind() Kind { return KindNumber }

// Real represents a real number in a PDF document.
type Real float64

// Kind implements the [Object] interface.
func (x Real) Kind() Kind { return KindNumber }

// String represents a raw string in a PDF document.  The character set
// encoding, if any, is determined by the context.
type String []byte

// Kind implements the [Object] interface.
func (x String) Kind() Kind { return KindString }

// Name represents a name object in a PDF document.
type Name string

// Kind implements the [Object] interface.
func (x Name) Kind() Kind { return KindName }

// Array represents an array object in a PDF document.
type Array []Object

// Kind implements the [Object] interface.
func (x Array) Kind() Kind { return KindArray }

// Dict represents a dictionary object in a PDF document.
type Dict map[Name]Object

// Kind implements the [Object] interface.
func (x Dict) Kind() Kind { return KindDictionary }

// Keys returns the dictionary's key names in unspecified order.
func (x Dict) Keys() []Name {
	keys := make([]Name, 0, len(x))
	for k := range x {
		keys = append(keys, k)
	}
	return keys
}

// Stream represents a stream object in a PDF document.  The engine only
// inspects the stream dictionary; stream data is never read.
type Stream struct {
	Dict Dict
}

// Kind implements the [Object] interface.
func (x *Stream) Kind() Kind { return KindStream }

// Null represents an explicit null object.
type Null struct{}

// Kind implements the [Object] interface.
func (x Null) Kind() Kind { return KindNull }

// Reference represents a reference to an indirect object.  References
// give objects the stable identity the validator needs for cycle
// detection.
type Reference struct {
	Number     int
	Generation uint16
}

// Kind implements the [Object] interface.
func (x Reference) Kind() Kind { return KindReference }

func (x Reference) String() string {
	return strconv.Itoa(x.Number) + " " + strconv.FormatUint(uint64(x.Generation), 10) + " R"
}
