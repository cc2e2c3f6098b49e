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
	"slices"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/prashantbarca/arlington-pdf-model/internal/testgrammar"
)

var allVersions = []Version{V1_0, V1_1, V1_2, V1_3, V1_4, V1_5, V1_6, V1_7, V2_0}

func masterGrammar(t *testing.T) *Grammar {
	t.Helper()
	g, err := LoadDir(testgrammar.FS(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestReduceDropsObjects(t *testing.T) {
	g := masterGrammar(t)
	reduced, err := g.Reduce(V1_0)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"Metadata", "ActionDict", "XRefStream"} {
		if reduced.Get(name) != nil {
			t.Errorf("object %s must not exist at 1.0", name)
		}
	}
	for _, name := range []string{"FileTrailer", "Catalog", "Page"} {
		if reduced.Get(name) == nil {
			t.Errorf("object %s missing at 1.0", name)
		}
	}
}

func TestReduceRowFiltering(t *testing.T) {
	g := masterGrammar(t)

	reduced, err := g.Reduce(V1_0)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Size", "Root"}
	if d := cmp.Diff(want, reduced.Get("FileTrailer").Keys()); d != "" {
		t.Error(d)
	}

	reduced, err = g.Reduce(V1_1)
	if err != nil {
		t.Fatal(err)
	}
	want = []string{"Size", "Root", "Prev", "ID", "Encrypt"}
	if d := cmp.Diff(want, reduced.Get("FileTrailer").Keys()); d != "" {
		t.Error(d)
	}
}

func TestReduceVersionGate(t *testing.T) {
	g := masterGrammar(t)

	// at 1.0 the dictionary variant of OpenAction does not exist yet,
	// and its link disappears with it
	reduced, err := g.Reduce(V1_0)
	if err != nil {
		t.Fatal(err)
	}
	row := reduced.Get("Catalog").Row("OpenAction")
	if d := cmp.Diff([]string{"array"}, row.Types); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]string{"[DestArray]"}, row.Links); d != "" {
		t.Error(d)
	}

	// from 1.1 on both variants exist, with the gate resolved away
	reduced, err = g.Reduce(V1_1)
	if err != nil {
		t.Fatal(err)
	}
	row = reduced.Get("Catalog").Row("OpenAction")
	if d := cmp.Diff([]string{"array", "dictionary"}, row.Types); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]string{"[DestArray]", "[ActionDict]"}, row.Links); d != "" {
		t.Error(d)
	}
}

func TestReduceKeepsDeprecated(t *testing.T) {
	g := masterGrammar(t)
	reduced, err := g.Reduce(V2_0)
	if err != nil {
		t.Fatal(err)
	}
	row := reduced.Get("Resource").Row("ProcSet")
	if row == nil {
		t.Fatal("deprecated rows must survive reduction")
	}
	if row.DeprecatedIn != V1_4 {
		t.Errorf("DeprecatedIn = %v, want 1.4", row.DeprecatedIn)
	}
}

func TestReduceMonotonic(t *testing.T) {
	g := masterGrammar(t)

	reductions := make(map[Version]*Grammar)
	for _, ver := range allVersions {
		reduced, err := g.Reduce(ver)
		if err != nil {
			t.Fatal(err)
		}
		reductions[ver] = reduced
	}

	for i, lo := range allVersions {
		for _, hi := range allVersions[i+1:] {
			for name, obj := range reductions[lo].Objects {
				later := reductions[hi].Get(name)
				if later == nil {
					t.Errorf("object %s exists at %v but not at %v", name, lo, hi)
					continue
				}
				for _, key := range obj.Keys() {
					if !slices.Contains(later.Keys(), key) {
						t.Errorf("%s::%s exists at %v but not at %v", name, key, lo, hi)
					}
				}
			}
		}
	}
}

func TestReduceIdempotent(t *testing.T) {
	g := masterGrammar(t)
	for _, ver := range allVersions {
		once, err := g.Reduce(ver)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := once.Reduce(ver)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(once, twice); d != "" {
			t.Errorf("reduction at %v is not idempotent: %s", ver, d)
		}
	}
}

func TestReduceRoundTrip(t *testing.T) {
	g := masterGrammar(t)
	reduced, err := g.Reduce(LatestVersion)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range g.Names() {
		if name == "Catalog" {
			continue // carries a version gate, checked below
		}
		if d := cmp.Diff(g.Objects[name], reduced.Get(name)); d != "" {
			t.Errorf("%s: %s", name, d)
		}
	}

	// the gated row resolves, everything else in Catalog is unchanged
	master := g.Get("Catalog")
	catalog := reduced.Get("Catalog")
	for _, row := range master.Rows {
		got := catalog.Row(row.Key)
		if row.Key == "OpenAction" {
			if d := cmp.Diff([]string{"array", "dictionary"}, got.Types); d != "" {
				t.Error(d)
			}
			continue
		}
		if d := cmp.Diff(row, got); d != "" {
			t.Errorf("Catalog::%s: %s", row.Key, d)
		}
	}
}

func TestReduceCheckClean(t *testing.T) {
	// every version-specific view must pass the self-check; in
	// particular no reduction may leave a dangling link behind
	g := masterGrammar(t)
	for _, ver := range allVersions {
		reduced, err := g.Reduce(ver)
		if err != nil {
			t.Fatal(err)
		}
		if report := reduced.Check(); report.Len() != 0 {
			for _, e := range report.Entries() {
				t.Errorf("at %v: %v", ver, e)
			}
		}
	}
}

func TestReduceArityError(t *testing.T) {
	fsys := fstest.MapFS{
		"Bad.tsv": &fstest.MapFile{
			Data: []byte(testgrammar.Header + "\nX\tname;string\t1.0\t\tFALSE\tFALSE\tFALSE\t\t\t\t[A]\n"),
		},
		"A.tsv": &fstest.MapFile{
			Data: []byte(testgrammar.Header + "\nK\tname\t1.0\t\tFALSE\tFALSE\tFALSE\t\t\t\t\n"),
		},
	}
	g, err := LoadDir(fsys, nil)
	if err != nil {
		t.Fatal(err)
	}

	reduced, err := g.Reduce(V2_0)
	var reduction *ReductionError
	if !errors.As(err, &reduction) {
		t.Fatalf("got %v, want ReductionError", err)
	}
	if reduction.Object != "Bad" || reduction.Key != "X" {
		t.Errorf("error points at %s/%s", reduction.Object, reduction.Key)
	}
	// the defect aborts only the defective object
	if reduced.Get("A") == nil {
		t.Error("clean objects must still reduce")
	}
	if reduced.Get("Bad") != nil {
		t.Error("defective object must not appear in the result")
	}
}

func TestReduceRequiredField(t *testing.T) {
	fsys := fstest.MapFS{
		"Obj.tsv": &fstest.MapFile{
			Data: []byte(testgrammar.Header +
				"\nK\tname\t1.0\t\tfn:IsRequired(fn:SinceVersion(1.3))\tFALSE\tFALSE\t\t\t\t\n"),
		},
	}
	g, err := LoadDir(fsys, nil)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		target Version
		want   string
	}{
		{V1_2, "false"},
		{V1_3, "true"},
		{V2_0, "true"},
	}
	for _, test := range cases {
		reduced, err := g.Reduce(test.target)
		if err != nil {
			t.Fatal(err)
		}
		if got := reduced.Get("Obj").Row("K").Required; got != test.want {
			t.Errorf("Required at %v = %q, want %q", test.target, got, test.want)
		}
	}
}

func TestReduceGatedValueList(t *testing.T) {
	fsys := fstest.MapFS{
		"Obj.tsv": &fstest.MapFile{
			Data: []byte(testgrammar.Header +
				"\nK\tname\t1.0\t\tFALSE\tFALSE\tFALSE\t\t[A,fn:SinceVersion(1.5,B)]\t\t\n"),
		},
	}
	g, err := LoadDir(fsys, nil)
	if err != nil {
		t.Fatal(err)
	}

	// below 1.5 only A remains; the singleton list collapses to a scalar
	reduced, err := g.Reduce(V1_4)
	if err != nil {
		t.Fatal(err)
	}
	got := reduced.Get("Obj").Row("K").PossibleValues
	if d := cmp.Diff([]string{"A"}, got); d != "" {
		t.Error(d)
	}

	reduced, err = g.Reduce(V1_5)
	if err != nil {
		t.Fatal(err)
	}
	got = reduced.Get("Obj").Row("K").PossibleValues
	if d := cmp.Diff([]string{"[A,B]"}, got); d != "" {
		t.Error(d)
	}
}

func TestReduceGatedDefault(t *testing.T) {
	fsys := fstest.MapFS{
		"Obj.tsv": &fstest.MapFile{
			Data: []byte(testgrammar.Header +
				"\nK\tname\t1.0\t\tFALSE\tFALSE\tFALSE\tfn:SinceVersion(1.5,X)\t\t\t\n"),
		},
	}
	g, err := LoadDir(fsys, nil)
	if err != nil {
		t.Fatal(err)
	}

	// the gate resolves in DefaultValue cells just like in value lists:
	// below 1.5 there is no default, from 1.5 on the bare value remains
	reduced, err := g.Reduce(V1_4)
	if err != nil {
		t.Fatal(err)
	}
	got := reduced.Get("Obj").Row("K").DefaultValues
	if d := cmp.Diff([]string{""}, got); d != "" {
		t.Error(d)
	}

	reduced, err = g.Reduce(V1_5)
	if err != nil {
		t.Fatal(err)
	}
	got = reduced.Get("Obj").Row("K").DefaultValues
	if d := cmp.Diff([]string{"X"}, got); d != "" {
		t.Error(d)
	}
}

func TestReduceDeprecatedVariant(t *testing.T) {
	// a variant gated fn:Deprecated stays valid past its deprecation
	// point, so a row with no other variant never disappears and the
	// key sets of successive reductions stay monotonic
	fsys := fstest.MapFS{
		"Obj.tsv": &fstest.MapFile{
			Data: []byte(testgrammar.Header +
				"\nK\tfn:Deprecated(1.5,string)\t1.0\t\tFALSE\tFALSE\tFALSE\t\t\t\t\n"),
		},
	}
	g, err := LoadDir(fsys, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, ver := range []Version{V1_4, V1_5, V2_0} {
		reduced, err := g.Reduce(ver)
		if err != nil {
			t.Fatal(err)
		}
		obj := reduced.Get("Obj")
		if obj == nil {
			t.Fatalf("object vanished at %v", ver)
		}
		row := obj.Row("K")
		if row == nil {
			t.Fatalf("row K vanished at %v", ver)
		}
		if d := cmp.Diff([]string{"string"}, row.Types); d != "" {
			t.Errorf("at %v: %s", ver, d)
		}
	}
}
