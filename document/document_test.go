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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		obj  Object
		want Kind
	}{
		{nil, KindNull},
		{Null{}, KindNull},
		{Boolean(true), KindBoolean},
		{Integer(7), KindNumber},
		{Real(0.5), KindNumber},
		{String("x"), KindString},
		{Name("X"), KindName},
		{Array{}, KindArray},
		{Dict{}, KindDictionary},
		{&Stream{}, KindStream},
		{Reference{Number: 1}, KindReference},
	}
	for _, test := range cases {
		if got := KindOf(test.obj); got != test.want {
			t.Errorf("KindOf(%#v) = %v, want %v", test.obj, got, test.want)
		}
	}
}

func TestReferenceString(t *testing.T) {
	ref := Reference{Number: 3, Generation: 1}
	if got := ref.String(); got != "3 1 R" {
		t.Errorf("String() = %q, want %q", got, "3 1 R")
	}
}

func TestResolve(t *testing.T) {
	m := NewMemory()
	m.Put(Reference{Number: 1}, Reference{Number: 2})
	m.Put(Reference{Number: 2}, Integer(42))

	obj, err := Resolve(m, Reference{Number: 1})
	if err != nil {
		t.Fatal(err)
	}
	if obj != Integer(42) {
		t.Errorf("resolved to %v", obj)
	}

	// non-references pass through unchanged
	obj, err = Resolve(m, Name("X"))
	if err != nil || obj != Name("X") {
		t.Errorf("Resolve(Name) = %v, %v", obj, err)
	}
}

func TestResolveLoop(t *testing.T) {
	m := NewMemory()
	m.Put(Reference{Number: 1}, Reference{Number: 2})
	m.Put(Reference{Number: 2}, Reference{Number: 1})

	if _, err := Resolve(m, Reference{Number: 1}); err == nil {
		t.Error("reference loop not detected")
	}
}

func TestResolveMissing(t *testing.T) {
	m := NewMemory()
	if _, err := Resolve(m, Reference{Number: 9}); err == nil {
		t.Error("missing object not reported")
	}
}

func TestTypedGetters(t *testing.T) {
	m := NewMemory()
	m.Put(Reference{Number: 1}, Dict{"A": Integer(1)})

	d, err := GetDict(m, Reference{Number: 1})
	if err != nil {
		t.Fatal(err)
	}
	if d["A"] != Integer(1) {
		t.Errorf("GetDict = %v", d)
	}

	if _, err := GetInteger(m, Reference{Number: 1}); !errors.Is(err, ErrWrongKind) {
		t.Errorf("got %v, want ErrWrongKind", err)
	}

	// nil resolves to the zero value without error
	d, err = GetDict(m, nil)
	if err != nil || d != nil {
		t.Errorf("GetDict(nil) = %v, %v", d, err)
	}
}

func TestMemoryParent(t *testing.T) {
	m := NewMemory()
	parent := Dict{"Count": Integer(1)}
	m.Put(Reference{Number: 2}, parent)
	child := Dict{"Parent": Reference{Number: 2}}

	got, ok := m.Parent(child)
	if !ok {
		t.Fatal("parent not found")
	}
	if d := cmp.Diff(parent, got); d != "" {
		t.Error(d)
	}

	if _, ok := m.Parent(parent); ok {
		t.Error("root must have no parent")
	}
}

const sampleJSON = `{
  "trailer": {"Size": 4, "Root": {"$ref": "1 0"}},
  "objects": {
    "1 0": {
      "Type": {"$name": "Catalog"},
      "Version": 1.5,
      "Open": true,
      "Title": "hello",
      "IDs": [1, {"$ref": "2 0"}],
      "Nothing": null
    },
    "2 0": {"$stream": {"Length": 10}}
  }
}`

func TestReadJSON(t *testing.T) {
	m, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}

	wantTrailer := Dict{
		"Size": Integer(4),
		"Root": Reference{Number: 1},
	}
	if d := cmp.Diff(wantTrailer, m.Trailer()); d != "" {
		t.Error(d)
	}

	obj, err := m.Get(Reference{Number: 1})
	if err != nil {
		t.Fatal(err)
	}
	want := Dict{
		"Type":    Name("Catalog"),
		"Version": Real(1.5),
		"Open":    Boolean(true),
		"Title":   String("hello"),
		"IDs":     Array{Integer(1), Reference{Number: 2}},
		"Nothing": Null{},
	}
	if d := cmp.Diff(want, obj); d != "" {
		t.Error(d)
	}

	stream, err := GetStream(m, Reference{Number: 2})
	if err != nil {
		t.Fatal(err)
	}
	if stream.Dict["Length"] != Integer(10) {
		t.Errorf("stream dict = %v", stream.Dict)
	}
}

func TestReadJSONErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"noTrailer", `{"objects": {}}`},
		{"badRef", `{"trailer": {"Root": {"$ref": "one zero"}}}`},
		{"badObjectKey", `{"trailer": {}, "objects": {"x": {}}}`},
		{"notJSON", `trailer`},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(test.src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
