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

// Package export serializes version-reduced grammars into external
// representations.  Exporters consume the reduction engine's output and
// never re-implement reduction logic.
package export

import (
	"encoding/xml"
	"fmt"
	"io"

	arlington "github.com/prashantbarca/arlington-pdf-model"
	"github.com/prashantbarca/arlington-pdf-model/predicate"
)

type xmlGrammar struct {
	XMLName    xml.Name    `xml:"PDF"`
	PDFVersion string      `xml:"pdf_version,attr"`
	ISORef     string      `xml:"iso_ref,attr"`
	Objects    []xmlObject `xml:"OBJECT"`
}

type xmlObject struct {
	ID      string     `xml:"id,attr"`
	Number  string     `xml:"object_number,attr"`
	Entries []xmlEntry `xml:"ENTRY"`
}

type xmlEntry struct {
	Name        string     `xml:"NAME"`
	Values      []xmlValue `xml:"VALUES>VALUE"`
	Required    string     `xml:"REQUIRED"`
	IndirectRef string     `xml:"INDIRECT_REFERENCE"`
	Inheritable string     `xml:"INHERITABLE"`
	Introduced  string     `xml:"INTRODUCED"`
	Deprecated  string     `xml:"DEPRECATED,omitempty"`
	SpecialCase string     `xml:"SPECIAL_CASE,omitempty"`
}

type xmlValue struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

// XML writes the monolithic XML representation of a version-reduced
// grammar.  The grammar passed in must already be the output of
// [arlington.Grammar.Reduce] for the same version.
func XML(w io.Writer, g *arlington.Grammar, version arlington.Version) error {
	verString, err := version.ToString()
	if err != nil {
		return err
	}
	doc := xmlGrammar{
		PDFVersion: verString,
		ISORef:     "ISO 32000-2:2020",
	}

	for i, name := range g.Names() {
		obj := g.Objects[name]
		xobj := xmlObject{
			ID:     name,
			Number: fmt.Sprintf("%03d", i),
		}
		for _, row := range obj.Rows {
			xobj.Entries = append(xobj.Entries, entry(row))
		}
		doc.Objects = append(doc.Objects, xobj)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "   ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func entry(row *arlington.Row) xmlEntry {
	e := xmlEntry{
		Name:        row.Key,
		Values:      values(row),
		Required:    row.Required,
		IndirectRef: row.IndirectReference,
		Inheritable: row.Inheritable,
		Introduced:  row.SinceVersion.String(),
	}
	if row.DeprecatedIn != 0 {
		e.Deprecated = row.DeprecatedIn.String()
	}
	for _, sc := range row.SpecialCases {
		if s := predicate.TrimList(sc); s != "" {
			if e.SpecialCase != "" {
				e.SpecialCase += ";"
			}
			e.SpecialCase += sc
		}
	}
	return e
}

// values flattens a row's type variants into VALUE elements: link
// targets for complex variants, permitted values for basic ones.
func values(row *arlington.Row) []xmlValue {
	var res []xmlValue
	for i, seg := range row.Types {
		tp, ok := arlington.UnwrapVariant(seg)
		if !ok {
			tp = seg
		}

		if arlington.IsComplexType(tp) && i < len(row.Links) {
			targets, _ := predicate.Split(predicate.TrimList(row.Links[i]), ',')
			for _, target := range targets {
				res = append(res, xmlValue{Type: tp, Value: target})
			}
			continue
		}

		if i < len(row.PossibleValues) && predicate.TrimList(row.PossibleValues[i]) != "" {
			parts, _ := predicate.Split(predicate.TrimList(row.PossibleValues[i]), ',')
			for _, part := range parts {
				res = append(res, xmlValue{Type: tp, Value: part})
			}
		} else {
			res = append(res, xmlValue{Type: tp})
		}

		if i < len(row.DefaultValues) {
			if dv := predicate.TrimList(row.DefaultValues[i]); dv != "" {
				res = append(res, xmlValue{Type: tp, Value: dv})
			}
		}
	}
	return res
}
