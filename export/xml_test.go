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

package export

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	arlington "github.com/prashantbarca/arlington-pdf-model"
	"github.com/prashantbarca/arlington-pdf-model/internal/testgrammar"
)

func reducedGrammar(t *testing.T, target arlington.Version) *arlington.Grammar {
	t.Helper()
	g, err := arlington.LoadDir(testgrammar.FS(), nil)
	if err != nil {
		t.Fatal(err)
	}
	reduced, err := g.Reduce(target)
	if err != nil {
		t.Fatal(err)
	}
	return reduced
}

func TestXML(t *testing.T) {
	g := reducedGrammar(t, arlington.V1_7)

	var buf bytes.Buffer
	if err := XML(&buf, g, arlington.V1_7); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, xml.Header) {
		t.Error("missing XML declaration")
	}
	for _, want := range []string{
		`<PDF pdf_version="1.7" iso_ref="ISO 32000-2:2020">`,
		`<OBJECT id="Catalog" object_number="001">`,
		`<VALUE type="dictionary">PageTreeNode</VALUE>`,
		`<INTRODUCED>1.0</INTRODUCED>`,
		`<DEPRECATED>1.4</DEPRECATED>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %s", want)
		}
	}
}

func TestXMLRoundTrip(t *testing.T) {
	g := reducedGrammar(t, arlington.V1_4)

	var buf bytes.Buffer
	if err := XML(&buf, g, arlington.V1_4); err != nil {
		t.Fatal(err)
	}

	var doc xmlGrammar
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.PDFVersion != "1.4" {
		t.Errorf("pdf_version = %q", doc.PDFVersion)
	}
	if len(doc.Objects) != len(g.Objects) {
		t.Errorf("exported %d objects, grammar has %d", len(doc.Objects), len(g.Objects))
	}
	for _, obj := range doc.Objects {
		gobj := g.Get(obj.ID)
		if gobj == nil {
			t.Errorf("exported object %q not in grammar", obj.ID)
			continue
		}
		if len(obj.Entries) != len(gobj.Rows) {
			t.Errorf("%s: %d entries, grammar has %d rows",
				obj.ID, len(obj.Entries), len(gobj.Rows))
		}
	}
}

func TestXMLBadVersion(t *testing.T) {
	g := reducedGrammar(t, arlington.V1_7)
	var buf bytes.Buffer
	if err := XML(&buf, g, arlington.Version(0)); err == nil {
		t.Error("expected error for an unsupported version")
	}
}
