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
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/prashantbarca/arlington-pdf-model/predicate"
)

// Grammar file column names.  The Note column is optional free text and
// is ignored by the engine.
const (
	colKey            = "Key"
	colType           = "Type"
	colSinceVersion   = "SinceVersion"
	colDeprecatedIn   = "DeprecatedIn"
	colRequired       = "Required"
	colIndirectRef    = "IndirectReference"
	colInheritable    = "Inheritable"
	colDefaultValue   = "DefaultValue"
	colPossibleValues = "PossibleValues"
	colSpecialCase    = "SpecialCase"
	colLink           = "Link"
	colNote           = "Note"
)

var requiredColumns = []string{
	colKey, colType, colSinceVersion, colDeprecatedIn, colRequired,
	colIndirectRef, colInheritable, colDefaultValue, colPossibleValues,
	colSpecialCase, colLink,
}

// LoadOptions control how grammar sources are parsed.
type LoadOptions struct {
	// Delimiter is the column separator.  A zero value selects tab.
	Delimiter byte
}

func (opt *LoadOptions) delimiter() string {
	if opt == nil || opt.Delimiter == 0 {
		return "\t"
	}
	return string([]byte{opt.Delimiter})
}

// Load parses one tabular grammar source into an [Object] named name.
//
// The first record must hold the recognized column names, in any order.
// Fewer columns than the recognized minimum set, a misnamed column, or a
// data record with the wrong number of fields yield a
// [*MalformedGrammarError].
func Load(r io.Reader, name string, opt *LoadOptions) (*Object, error) {
	sep := opt.delimiter()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, &MalformedGrammarError{Name: name, Err: err}
		}
		return nil, &MalformedGrammarError{Name: name, Err: errors.New("empty grammar source")}
	}
	cols, err := headerIndex(splitRecord(scanner.Text(), sep))
	if err != nil {
		return nil, &MalformedGrammarError{Name: name, Err: err}
	}

	obj := &Object{Name: name}
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := splitRecord(line, sep)
		if len(fields) < len(requiredColumns) {
			err := fmt.Errorf("wrong number of columns in record %d", lineNo)
			return nil, &MalformedGrammarError{Name: name, Err: err}
		}

		row, err := parseRow(fields, cols)
		if err != nil {
			err = fmt.Errorf("record %d: %w", lineNo, err)
			return nil, &MalformedGrammarError{Name: name, Err: err}
		}
		obj.Rows = append(obj.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, &MalformedGrammarError{Name: name, Err: err}
	}
	return obj, nil
}

// LoadDir loads every ".tsv" file of fsys into a [Grammar].  The grammar
// object names are the file names without the extension.
//
// A malformed file does not abort loading of the remaining files: the
// returned Grammar holds every object which loaded cleanly, and the
// returned error joins one [*MalformedGrammarError] per defective file.
func LoadDir(fsys fs.FS, opt *LoadOptions) (*Grammar, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	g := &Grammar{Objects: make(map[string]*Object)}
	var loadErrs []error
	for _, entry := range entries {
		fileName := entry.Name()
		if entry.IsDir() || path.Ext(fileName) != ".tsv" {
			continue
		}
		name := strings.TrimSuffix(fileName, ".tsv")

		f, err := fsys.Open(fileName)
		if err != nil {
			loadErrs = append(loadErrs, &MalformedGrammarError{Name: name, Err: err})
			continue
		}
		obj, err := Load(f, name, opt)
		f.Close()
		if err != nil {
			loadErrs = append(loadErrs, err)
			continue
		}
		g.Objects[name] = obj
	}
	return g, errors.Join(loadErrs...)
}

func splitRecord(line, sep string) []string {
	line = strings.TrimSuffix(line, "\r")
	return strings.Split(line, sep)
}

func headerIndex(fields []string) (map[string]int, error) {
	if len(fields) < len(requiredColumns) {
		return nil, fmt.Errorf("wrong number of columns: got %d, need at least %d",
			len(fields), len(requiredColumns))
	}

	cols := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, ok := cols[f]; ok {
			return nil, fmt.Errorf("duplicate column %q", f)
		}
		cols[f] = i
	}
	for _, want := range requiredColumns {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("missing column %q", want)
		}
	}
	for name := range cols {
		known := name == colNote
		for _, want := range requiredColumns {
			if name == want {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unrecognized column %q", name)
		}
	}
	return cols, nil
}

func parseRow(fields []string, cols map[string]int) (*Row, error) {
	get := func(col string) string {
		idx, ok := cols[col]
		if !ok || idx >= len(fields) {
			return ""
		}
		return fields[idx]
	}

	since, err := ParseVersion(get(colSinceVersion))
	if err != nil {
		return nil, fmt.Errorf("%s: %w %q", colSinceVersion, err, get(colSinceVersion))
	}
	var deprecated Version
	if s := get(colDeprecatedIn); s != "" {
		deprecated, err = ParseVersion(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w %q", colDeprecatedIn, err, s)
		}
	}

	row := &Row{
		Key:               get(colKey),
		Types:             splitVariants(foldSegments(get(colType))),
		SinceVersion:      since,
		DeprecatedIn:      deprecated,
		Required:          fold(get(colRequired)),
		IndirectReference: foldSegments(get(colIndirectRef)),
		Inheritable:       fold(get(colInheritable)),
		DefaultValues:     splitVariants(get(colDefaultValue)),
		PossibleValues:    splitVariants(get(colPossibleValues)),
		SpecialCases:      splitVariants(get(colSpecialCase)),
		Links:             splitVariants(get(colLink)),
		Note:              get(colNote),
	}
	return row, nil
}

// fold case-folds a single field value to its canonical lower case.
// Predicate expressions are preserved verbatim.
func fold(s string) string {
	if predicate.Is(s) {
		return s
	}
	return strings.ToLower(s)
}

// foldSegments case-folds each non-predicate top-level segment of a
// semicolon-separated field.
func foldSegments(s string) string {
	if !strings.Contains(s, predicate.Marker) {
		return strings.ToLower(s)
	}
	segments, _ := predicate.Split(s, ';')
	for i, seg := range segments {
		segments[i] = fold(seg)
	}
	return strings.Join(segments, ";")
}

// splitVariants splits a per-variant field into its segments.  An empty
// field stays nil so that the positional-alignment checks can distinguish
// "absent" from "wrong arity".
func splitVariants(s string) []string {
	if s == "" {
		return nil
	}
	segments, _ := predicate.Split(s, ';')
	return segments
}
