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
	"fmt"
	"io"
)

// Kind identifies one class of diagnostic.
type Kind int

const (
	// grammar self-check findings
	DuplicateKey Kind = iota + 1
	UnknownType
	ArityMismatch
	DanglingLink
	UnlinkedComplexType
	IllegalPossibleValue
	InvalidInheritable
	UnbalancedPredicate

	// document validation diagnostics
	MissingRequiredKey
	UnexpectedKey
	TypeMismatch
	AmbiguousType
	IndirectReferenceViolation
	ProviderError
	UnknownGrammarType
)

var kindNames = map[Kind]string{
	DuplicateKey:               "DuplicateKey",
	UnknownType:                "UnknownType",
	ArityMismatch:              "ArityMismatch",
	DanglingLink:               "DanglingLink",
	UnlinkedComplexType:        "UnlinkedComplexType",
	IllegalPossibleValue:       "IllegalPossibleValue",
	InvalidInheritable:         "InvalidInheritable",
	UnbalancedPredicate:        "UnbalancedPredicate",
	MissingRequiredKey:         "MissingRequiredKey",
	UnexpectedKey:              "UnexpectedKey",
	TypeMismatch:               "TypeMismatch",
	AmbiguousType:              "AmbiguousType",
	IndirectReferenceViolation: "IndirectReferenceViolation",
	ProviderError:              "ProviderError",
	UnknownGrammarType:         "UnknownGrammarType",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("arlington.Kind(%d)", int(k))
}

// Severity returns the default severity of diagnostics of this kind.
// Self-check findings never fail a run; of the validation diagnostics only
// UnexpectedKey and AmbiguousType are advisory.
func (k Kind) Severity() Severity {
	switch k {
	case MissingRequiredKey, TypeMismatch, IndirectReferenceViolation,
		ProviderError, UnknownGrammarType:
		return SeverityFatal
	}
	return SeverityWarning
}

// Severity distinguishes findings which fail a validation run from
// advisory ones.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityFatal:
		return "fatal"
	}
	return fmt.Sprintf("arlington.Severity(%d)", int(s))
}

// An Entry is a single diagnostic.
type Entry struct {
	Kind     Kind
	Severity Severity
	Path     string
	Message  string
}

func (e Entry) String() string {
	path := e.Path
	if path == "" {
		path = "/"
	}
	return e.Severity.String() + ": " + e.Kind.String() + " at " + path + ": " + e.Message
}

// A Report is an ordered sequence of diagnostics.  Entries are appended
// while a check or validation run is in progress; afterwards the report is
// read-only.
type Report struct {
	entries []Entry
}

// Add appends a diagnostic with the kind's default severity.
func (r *Report) Add(kind Kind, path, format string, args ...interface{}) {
	r.entries = append(r.entries, Entry{
		Kind:     kind,
		Severity: kind.Severity(),
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Entries returns all diagnostics in the order they were recorded.
func (r *Report) Entries() []Entry {
	return r.entries
}

// Len returns the number of diagnostics.
func (r *Report) Len() int {
	return len(r.entries)
}

// HasFatal reports whether any diagnostic is fatal.  A validation run
// passes iff HasFatal is false after the run completes.
func (r *Report) HasFatal() bool {
	for _, e := range r.entries {
		if e.Severity == SeverityFatal {
			return true
		}
	}
	return false
}

// CountByKind returns the number of diagnostics per kind.
func (r *Report) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, e := range r.entries {
		counts[e.Kind]++
	}
	return counts
}

// WriteTo writes the report in its textual form, one diagnostic per line.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range r.entries {
		n, err := fmt.Fprintln(w, e.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
