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

import (
	"errors"
	"fmt"
)

// ErrWrongKind is returned by the typed Get functions when an object has
// a different kind than requested.
var ErrWrongKind = errors.New("wrong object kind")

// Provider is the engine's read-only handle on an opened document.
//
// Provider calls are expected to be in-memory lookups: the traversal of a
// validation run is synchronous and performs no other I/O.
type Provider interface {
	// Trailer returns the document's logical entry object.
	Trailer() Dict

	// Get returns the object a reference points to.  The result may
	// itself be a reference.
	Get(ref Reference) (Object, error)

	// Parent returns the logical container of a dictionary for
	// inheritance resolution, or false if the dictionary does not
	// participate in an inheritable hierarchy.
	Parent(d Dict) (Dict, bool)
}

// Resolve resolves references to indirect objects.
//
// If obj is a [Reference], the function looks up the referenced object
// through the provider and returns the result.  If obj is not a
// Reference, it is returned unchanged.  The function follows chains of
// references until it reaches a non-reference object.
//
// If a reference loop is encountered, an error is returned.
func Resolve(p Provider, obj Object) (Object, error) {
	count := 0
	for {
		ref, isReference := obj.(Reference)
		if !isReference {
			return obj, nil
		}
		count++
		if count > 16 {
			return nil, fmt.Errorf("%s: too many levels of indirection", ref)
		}

		var err error
		obj, err = p.Get(ref)
		if err != nil {
			return nil, err
		}
	}
}

func resolveAndCast[T Object](p Provider, obj Object) (x T, err error) {
	obj, err = Resolve(p, obj)
	if err != nil {
		return x, err
	}

	if obj == nil {
		return x, nil
	}

	var isCorrectType bool
	x, isCorrectType = obj.(T)
	if isCorrectType {
		return x, nil
	}

	return x, fmt.Errorf("%w: expected %T but got %T", ErrWrongKind, x, obj)
}

// Typed accessors for objects of a specific kind.  Each of these
// functions calls Resolve on the object before attempting to convert it
// to the desired type.  If the object is null, a zero object is returned
// without error.  If the object is of the wrong kind, an error wrapping
// [ErrWrongKind] is returned.
//
// The signature of these functions is
//
//	func GetT(p Provider, obj Object) (x T, err error)
//
// where T is the type of the object to be returned.
var (
	GetArray   = resolveAndCast[Array]
	GetBoolean = resolveAndCast[Boolean]
	GetDict    = resolveAndCast[Dict]
	GetInteger = resolveAndCast[Integer]
	GetName    = resolveAndCast[Name]
	GetReal    = resolveAndCast[Real]
	GetStream  = resolveAndCast[*Stream]
	GetString  = resolveAndCast[String]
)
