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

// Package arlington implements the Arlington PDF model, a declarative,
// version-aware grammar for the PDF file format.
//
// The grammar is authored as one tabular schema file per PDF object type.
// [LoadDir] reads such a file set into a [Grammar], [Grammar.Check] verifies
// the grammar's internal consistency, and [Grammar.Reduce] derives the view
// of the grammar that applies to a single PDF version.  The
// [github.com/prashantbarca/arlington-pdf-model/validate] package walks a
// document's object graph against a reduced grammar.
package arlington
