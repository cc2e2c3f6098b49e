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

package predicate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		in   string
		sep  byte
		want []string
	}{
		{"name;array", ';', []string{"name", "array"}},
		{"fn:SinceVersion(1.5,name);array", ';', []string{"fn:SinceVersion(1.5,name)", "array"}},
		{"[a,b];[c]", ';', []string{"[a,b]", "[c]"}},
		{"fn:Eval(a,b),c", ',', []string{"fn:Eval(a,b)", "c"}},
		{"a,,b", ',', []string{"a", "", "b"}},
		{"[]", ',', []string{"[]"}},
		{"", ',', nil},
		{"single", ';', []string{"single"}},
	}
	for _, test := range cases {
		got, err := Split(test.in, test.sep)
		if err != nil {
			t.Errorf("Split(%q, %q): unexpected error %v", test.in, test.sep, err)
			continue
		}
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("Split(%q, %q): %s", test.in, test.sep, d)
		}
	}
}

func TestSplitUnbalanced(t *testing.T) {
	got, err := Split("fn:Eval(a,b", ',')
	if !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("expected ErrUnbalanced, got %v", err)
	}
	// the defective segment extends to the end of the field
	want := []string{"fn:Eval(a,b"}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestTrimList(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"[a,b]", "a,b"},
		{"[]", ""},
		{"a", "a"},
		{"[a", "[a"},
		{"", ""},
	}
	for _, test := range cases {
		if got := TrimList(test.in); got != test.want {
			t.Errorf("TrimList(%q) = %q, want %q", test.in, got, test.want)
		}
	}

	// an empty list yields no segments after trimming
	segments, err := Split(TrimList("[]"), ',')
	if err != nil || segments != nil {
		t.Errorf("Split(TrimList(%q)) = %v, %v", "[]", segments, err)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Expr
	}{
		{"Catalog", Literal("Catalog")},
		{
			"fn:SinceVersion(1.5,name)",
			&Call{Name: "SinceVersion", Args: []Expr{Literal("1.5"), Literal("name")}},
		},
		{
			"fn:IsRequired(fn:IsPresent(ID))",
			&Call{Name: "IsRequired", Args: []Expr{
				&Call{Name: "IsPresent", Args: []Expr{Literal("ID")}},
			}},
		},
		{
			"fn:Deprecated(2.0,fn:SinceVersion(1.3,name))",
			&Call{Name: "Deprecated", Args: []Expr{
				Literal("2.0"),
				&Call{Name: "SinceVersion", Args: []Expr{Literal("1.3"), Literal("name")}},
			}},
		},
	}
	for _, test := range cases {
		got, err := Parse(test.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", test.in, err)
			continue
		}
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("Parse(%q): %s", test.in, d)
			continue
		}
		if got.Text() != test.in {
			t.Errorf("Parse(%q).Text() = %q", test.in, got.Text())
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"fn:(x)",
		"fn:Eval(a",
		"fn:Eval(a)b",
		"fn:Eval",
	}
	for _, in := range cases {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}

	if _, err := Parse("fn:Eval(a"); !errors.Is(err, ErrUnbalanced) {
		t.Errorf("expected ErrUnbalanced, got %v", err)
	}
}

func TestIs(t *testing.T) {
	if !Is("fn:IsPresent(ID)") {
		t.Error("predicate not recognized")
	}
	if Is("name") || Is("") {
		t.Error("non-predicate recognized as predicate")
	}
}
