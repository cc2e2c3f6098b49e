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

// Package testgrammar provides a miniature Arlington grammar file set
// for use in tests.  The set is a heavily trimmed but structurally
// faithful slice of the real model: a file trailer, a catalog, a page
// tree, and the objects they link to.
package testgrammar

import (
	"strings"
	"testing/fstest"
)

// Header is the recognized grammar file header row.
const Header = "Key\tType\tSinceVersion\tDeprecatedIn\tRequired\tIndirectReference\tInheritable\tDefaultValue\tPossibleValues\tSpecialCase\tLink"

func row(cols ...string) string {
	return strings.Join(cols, "\t")
}

func tsv(rows ...string) *fstest.MapFile {
	lines := append([]string{Header}, rows...)
	return &fstest.MapFile{Data: []byte(strings.Join(lines, "\n") + "\n")}
}

// FS returns a fresh copy of the grammar file set.
func FS() fstest.MapFS {
	return fstest.MapFS{
		"FileTrailer.tsv": tsv(
			row("Size", "number", "1.0", "", "TRUE", "FALSE", "FALSE", "", "", "", ""),
			row("Root", "dictionary", "1.0", "", "TRUE", "TRUE", "FALSE", "", "", "", "[Catalog]"),
			row("Prev", "number", "1.1", "", "FALSE", "FALSE", "FALSE", "", "", "", ""),
			row("ID", "array", "1.1", "", "FALSE", "FALSE", "FALSE", "", "", "", ""),
			row("Encrypt", "dictionary", "1.1", "", "FALSE", "TRUE", "FALSE", "", "", "", ""),
		),
		"XRefStream.tsv": tsv(
			row("Type", "name", "1.5", "", "TRUE", "FALSE", "FALSE", "", "XRef", "", ""),
			row("Size", "number", "1.5", "", "TRUE", "FALSE", "FALSE", "", "", "", ""),
			row("W", "array", "1.5", "", "TRUE", "FALSE", "FALSE", "", "", "", ""),
			row("Root", "dictionary", "1.5", "", "TRUE", "TRUE", "FALSE", "", "", "", "[Catalog]"),
		),
		"Catalog.tsv": tsv(
			row("Type", "name", "1.0", "", "TRUE", "FALSE", "FALSE", "", "Catalog", "", ""),
			row("Pages", "dictionary", "1.0", "", "TRUE", "TRUE", "FALSE", "", "", "", "[PageTreeNode]"),
			row("OpenAction", "array;fn:SinceVersion(1.1,dictionary)", "1.0", "", "FALSE", "FALSE", "FALSE", "", "[];[]", "", "[DestArray];[ActionDict]"),
			row("Metadata", "stream", "1.4", "", "FALSE", "TRUE", "FALSE", "", "", "", "[Metadata]"),
			row("Version", "name", "1.4", "", "FALSE", "FALSE", "FALSE", "", "", "", ""),
		),
		"PageTreeNode.tsv": tsv(
			row("Type", "name", "1.0", "", "TRUE", "FALSE", "FALSE", "", "Pages", "", ""),
			row("Parent", "dictionary", "1.0", "", "FALSE", "TRUE", "FALSE", "", "", "", "[PageTreeNode]"),
			row("Kids", "array", "1.0", "", "TRUE", "FALSE", "FALSE", "", "", "", "[PageTreeNodeKids]"),
			row("Count", "number", "1.0", "", "TRUE", "FALSE", "FALSE", "", "", "", ""),
			row("Resources", "dictionary", "1.0", "", "FALSE", "FALSE", "TRUE", "", "", "", "[Resource]"),
		),
		"PageTreeNodeKids.tsv": tsv(
			row("*", "dictionary", "1.0", "", "FALSE", "TRUE", "FALSE", "", "", "", "[PageTreeNode,Page]"),
		),
		"Page.tsv": tsv(
			row("Type", "name", "1.0", "", "TRUE", "FALSE", "FALSE", "", "Page", "", ""),
			row("Parent", "dictionary", "1.0", "", "TRUE", "TRUE", "FALSE", "", "", "", "[PageTreeNode]"),
			row("Resources", "dictionary", "1.0", "", "FALSE", "FALSE", "TRUE", "", "", "", "[Resource]"),
			row("MediaBox", "array", "1.0", "", "FALSE", "FALSE", "TRUE", "", "", "", "[Rectangle]"),
			row("Contents", "array;stream", "1.0", "", "FALSE", "TRUE", "FALSE", "", "[];[]", "", "[ContentsArray];[ContentStream]"),
			row("Rotate", "number", "1.0", "", "FALSE", "FALSE", "TRUE", "0", "[0,90,180,270]", "", ""),
			row("Annots", "array", "1.3", "", "FALSE", "FALSE", "FALSE", "", "", "", ""),
			row("Tabs", "name", "1.5", "", "FALSE", "FALSE", "FALSE", "", "[R,C,S]", "", ""),
		),
		"Rectangle.tsv": tsv(
			row("0", "number", "1.0", "", "TRUE", "FALSE", "FALSE", "", "", "", ""),
			row("1", "number", "1.0", "", "TRUE", "FALSE", "FALSE", "", "", "", ""),
			row("2", "number", "1.0", "", "TRUE", "FALSE", "FALSE", "", "", "", ""),
			row("3", "number", "1.0", "", "TRUE", "FALSE", "FALSE", "", "", "", ""),
		),
		"Resource.tsv": tsv(
			row("Font", "dictionary", "1.0", "", "FALSE", "FALSE", "FALSE", "", "", "", ""),
			row("ProcSet", "array", "1.0", "1.4", "FALSE", "FALSE", "FALSE", "", "", "", ""),
		),
		"ContentsArray.tsv": tsv(
			row("*", "stream", "1.0", "", "FALSE", "TRUE", "FALSE", "", "", "", "[ContentStream]"),
		),
		"ContentStream.tsv": tsv(
			row("Length", "number", "1.0", "", "TRUE", "FALSE", "FALSE", "", "", "", ""),
			row("Filter", "name;array", "1.0", "", "FALSE", "FALSE", "FALSE", "", "[];[]", "", ""),
		),
		"Metadata.tsv": tsv(
			row("Type", "name", "1.4", "", "TRUE", "FALSE", "FALSE", "", "Metadata", "", ""),
			row("Subtype", "name", "1.4", "", "TRUE", "FALSE", "FALSE", "", "XML", "", ""),
			row("Length", "number", "1.4", "", "TRUE", "FALSE", "FALSE", "", "", "", ""),
		),
		"DestArray.tsv": tsv(
			row("*", "number;name", "1.0", "", "FALSE", "FALSE", "FALSE", "", "[];[]", "", ""),
		),
		"ActionDict.tsv": tsv(
			row("S", "name", "1.1", "", "TRUE", "FALSE", "FALSE", "", "[GoTo,URI]", "", ""),
		),
	}
}
