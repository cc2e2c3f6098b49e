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

// Package validate walks a document's object graph against a
// version-reduced Arlington grammar and produces a diagnostic report.
package validate

import (
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	arlington "github.com/prashantbarca/arlington-pdf-model"
	"github.com/prashantbarca/arlington-pdf-model/document"
	"github.com/prashantbarca/arlington-pdf-model/predicate"
)

// Grammar object names for the two flavours of file trailer.
const (
	trailerType    = "FileTrailer"
	xrefStreamType = "XRefStream"
)

// how far up the containment chain an inheritable key is sought
const maxInheritDepth = 32

// Options configure a [Validator].
type Options struct {
	// MaxDepth caps the length of any path walked from the start
	// object.  The zero value selects a generous default.
	MaxDepth int

	// Logger receives a debug trace of the walk.  If nil, no trace is
	// produced.
	Logger *zap.Logger
}

// A Validator matches document object graphs against one version-reduced
// grammar.  A Validator holds no per-run state: independent runs may use
// the same Validator from parallel goroutines.
type Validator struct {
	grammar  *arlington.Grammar
	doc      document.Provider
	maxDepth int
	log      *zap.Logger
}

// New creates a Validator for the given reduced grammar and document.
func New(grammar *arlington.Grammar, doc document.Provider, opt *Options) *Validator {
	v := &Validator{
		grammar:  grammar,
		doc:      doc,
		maxDepth: 500,
		log:      zap.NewNop(),
	}
	if opt != nil {
		if opt.MaxDepth > 0 {
			v.maxDepth = opt.MaxDepth
		}
		if opt.Logger != nil {
			v.log = opt.Logger
		}
	}
	return v
}

// RunTrailer validates the document starting at its trailer dictionary.
// A trailer carrying a Type key belongs to a file using a cross-reference
// stream and is matched against the XRefStream grammar object instead of
// FileTrailer.
func (v *Validator) RunTrailer() *arlington.Report {
	trailer := v.doc.Trailer()
	typeName := trailerType
	if _, hasType := trailer["Type"]; hasType {
		typeName = xrefStreamType
	}
	return v.Run(trailer, typeName)
}

// Run validates the object graph reachable from start, which is expected
// to conform to the named grammar object.
func (v *Validator) Run(start document.Object, typeName string) *arlington.Report {
	r := &run{
		Validator: v,
		report:    &arlington.Report{},
		visited:   make(map[visitKey]struct{}),
	}
	r.push(start, typeName, "", 0)
	for len(r.queue) > 0 {
		item := r.queue[0]
		r.queue = r.queue[1:]
		r.visit(item)
	}
	return r.report
}

// A pending check: an object (possibly still an unresolved reference)
// which is expected to conform to a named grammar object.
type pending struct {
	obj      document.Object
	typeName string
	path     string
	depth    int
}

// visitKey identifies one (object identity, expected type) pair.  Only
// objects reached through references can occur on more than one path.
type visitKey struct {
	ref      document.Reference
	typeName string
}

type run struct {
	*Validator
	queue   []pending
	visited map[visitKey]struct{}
	report  *arlington.Report
}

func (r *run) push(obj document.Object, typeName, path string, depth int) {
	if depth > r.maxDepth {
		r.log.Debug("maximum depth reached", zap.String("path", path))
		return
	}
	r.queue = append(r.queue, pending{obj: obj, typeName: typeName, path: path, depth: depth})
}

func (r *run) visit(item pending) {
	obj := item.obj
	if ref, isRef := obj.(document.Reference); isRef {
		key := visitKey{ref: ref, typeName: item.typeName}
		if _, done := r.visited[key]; done {
			return
		}
		r.visited[key] = struct{}{}

		resolved, err := document.Resolve(r.doc, obj)
		if err != nil {
			r.report.Add(arlington.ProviderError, item.path, "%v", err)
			return
		}
		obj = resolved
	}
	r.log.Debug("visiting",
		zap.String("path", item.path),
		zap.String("type", item.typeName))

	gobj := r.grammar.Get(item.typeName)
	if gobj == nil {
		r.report.Add(arlington.UnknownGrammarType, item.path,
			"grammar has no object named %q", item.typeName)
		return
	}

	switch val := obj.(type) {
	case document.Dict:
		r.checkDict(gobj, val, item.path, item.depth)
	case *document.Stream:
		r.checkDict(gobj, val.Dict, item.path, item.depth)
	case document.Array:
		r.checkArray(gobj, val, item.path, item.depth)
	default:
		r.report.Add(arlington.TypeMismatch, item.path,
			"expected a %s structure, got %s", item.typeName, document.KindOf(obj))
	}
}

func (r *run) checkDict(gobj *arlington.Object, dict document.Dict, path string, depth int) {
	for _, row := range gobj.Rows {
		if row.Key == arlington.WildcardKey {
			continue
		}
		keyPath := path + "." + row.Key

		value, present := dict[document.Name(row.Key)]
		if !present {
			if !r.isRequired(row, dict) {
				continue
			}
			inherited, ok := r.inherited(row, dict)
			if !ok {
				r.report.Add(arlington.MissingRequiredKey, keyPath,
					"required key %s is missing", row.Key)
				continue
			}
			value = inherited
		}
		r.checkValue(row, value, keyPath, depth+1)
	}

	wildcard := gobj.Wildcard()
	keys := dict.Keys()
	slices.Sort(keys)
	for _, key := range keys {
		if gobj.Row(string(key)) != nil {
			continue
		}
		keyPath := path + "." + string(key)
		if wildcard != nil {
			r.checkValue(wildcard, dict[key], keyPath, depth+1)
			continue
		}
		r.report.Add(arlington.UnexpectedKey, keyPath,
			"key %s is not described by %s", key, gobj.Name)
	}
}

func (r *run) checkArray(gobj *arlington.Object, arr document.Array, path string, depth int) {
	wildcard := gobj.Wildcard()
	for i, elem := range arr {
		row := gobj.Row(strconv.Itoa(i))
		if row == nil {
			row = wildcard
		}
		elemPath := path + "[" + strconv.Itoa(i) + "]"
		if row == nil {
			r.report.Add(arlington.UnexpectedKey, elemPath,
				"array element %d is not described by %s", i, gobj.Name)
			continue
		}
		r.checkValue(row, elem, elemPath, depth+1)
	}

	for _, row := range gobj.Rows {
		idx, err := strconv.Atoi(row.Key)
		if err != nil {
			continue
		}
		if idx >= len(arr) && r.isRequired(row, nil) {
			r.report.Add(arlington.MissingRequiredKey, path+"["+row.Key+"]",
				"required element %s is missing", row.Key)
		}
	}
}

// checkValue matches one value against the type variants of its row and,
// for complex values, queues the nested structure for checking.
func (r *run) checkValue(row *arlington.Row, raw document.Object, path string, depth int) {
	_, isRef := raw.(document.Reference)
	resolved, err := document.Resolve(r.doc, raw)
	if err != nil {
		// a value which cannot be dereferenced can match no type
		r.report.Add(arlington.ProviderError, path, "%v", err)
		return
	}
	kind := document.KindOf(resolved)

	candidates := matchingVariants(row, kind)
	if len(candidates) == 0 {
		r.report.Add(arlington.TypeMismatch, path,
			"value of kind %s does not match %s", kind, strings.Join(row.Types, ";"))
		return
	}
	choice := candidates[0]
	if len(candidates) > 1 {
		if picked, ok := disambiguate(row, candidates, resolved); ok {
			choice = picked
		} else {
			r.report.Add(arlington.AmbiguousType, path,
				"value of kind %s matches more than one of %s; assuming %s",
				kind, strings.Join(row.Types, ";"), row.Types[choice])
		}
	}

	r.checkIndirect(row, choice, isRef, path)

	if choice >= len(row.Links) {
		return
	}
	target := r.pickLink(row.Links[choice], resolved)
	if target == "" {
		return
	}
	variant, _ := arlington.UnwrapVariant(row.Types[choice])
	switch variant {
	case arlington.TypeNameTree:
		r.walkTree(resolved, "Names", target, path, depth)
	case arlington.TypeNumberTree:
		r.walkTree(resolved, "Nums", target, path, depth)
	default:
		r.push(raw, target, path, depth)
	}
}

// kindTypes maps each document object kind to the compatible grammar
// type tags.  Name trees and number trees are dictionaries on the wire.
var kindTypes = map[document.Kind][]string{
	document.KindBoolean:    {arlington.TypeBoolean},
	document.KindNumber:     {arlington.TypeNumber},
	document.KindString:     {arlington.TypeString},
	document.KindName:       {arlington.TypeName},
	document.KindNull:       {arlington.TypeNull},
	document.KindArray:      {arlington.TypeArray},
	document.KindDictionary: {arlington.TypeDictionary, arlington.TypeNameTree, arlington.TypeNumberTree},
	document.KindStream:     {arlington.TypeStream},
	document.KindReference:  {arlington.TypeReference},
}

func matchingVariants(row *arlington.Row, kind document.Kind) []int {
	compatible := kindTypes[kind]
	var candidates []int
	for i, seg := range row.Types {
		tp, ok := arlington.UnwrapVariant(seg)
		if !ok {
			continue
		}
		if slices.Contains(compatible, tp) {
			candidates = append(candidates, i)
		}
	}
	return candidates
}

// disambiguate picks the candidate variant whose possible-value list
// contains the actual value.
func disambiguate(row *arlington.Row, candidates []int, resolved document.Object) (int, bool) {
	text, ok := scalarText(resolved)
	if !ok {
		return 0, false
	}
	var matches []int
	for _, i := range candidates {
		if i >= len(row.PossibleValues) {
			continue
		}
		if containsValue(row.PossibleValues[i], text) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 1 {
		return matches[0], true
	}
	return 0, false
}

func scalarText(obj document.Object) (string, bool) {
	switch v := obj.(type) {
	case document.Name:
		return string(v), true
	case document.String:
		return string(v), true
	case document.Integer:
		return strconv.FormatInt(int64(v), 10), true
	case document.Real:
		return strconv.FormatFloat(float64(v), 'f', -1, 64), true
	case document.Boolean:
		if v {
			return "true", true
		}
		return "false", true
	}
	return "", false
}

func containsValue(cell, text string) bool {
	parts, _ := predicate.Split(predicate.TrimList(cell), ',')
	for _, part := range parts {
		value, ok := arlington.UnwrapVariant(part)
		if ok && value == text {
			return true
		}
	}
	return false
}

// checkIndirect compares the indirect-reference policy of the matched
// variant against the actual form of the value.  "true" requires an
// indirect reference; fn:MustBeDirect requires a direct object; "false"
// places no constraint.
func (r *run) checkIndirect(row *arlington.Row, choice int, isRef bool, path string) {
	policy := row.IndirectReference
	if strings.HasPrefix(policy, "[") {
		segments, _ := predicate.Split(policy, ';')
		if choice >= len(segments) {
			return // arity defect, reported by Grammar.Check
		}
		policy = predicate.TrimList(segments[choice])
	}

	switch {
	case policy == "true" && !isRef:
		r.report.Add(arlington.IndirectReferenceViolation, path,
			"value must be an indirect reference")
	case strings.HasPrefix(policy, predicate.Marker+"MustBeDirect") && isRef:
		r.report.Add(arlington.IndirectReferenceViolation, path,
			"value must be a direct object")
	}
}

// pickLink resolves a bracketed link list to a single grammar object
// name.  When the grammar offers alternatives, the value's Type entry
// decides; otherwise the first alternative is used.
func (r *run) pickLink(cell string, resolved document.Object) string {
	parts, _ := predicate.Split(predicate.TrimList(cell), ',')
	var targets []string
	for _, part := range parts {
		name, ok := arlington.UnwrapVariant(part)
		if ok && name != "" {
			targets = append(targets, name)
		}
	}
	if len(targets) == 0 {
		return ""
	}
	if len(targets) == 1 {
		return targets[0]
	}

	var typeName document.Name
	switch val := resolved.(type) {
	case document.Dict:
		typeName, _ = val["Type"].(document.Name)
	case *document.Stream:
		typeName, _ = val.Dict["Type"].(document.Name)
	}
	if typeName != "" {
		for _, target := range targets {
			gobj := r.grammar.Get(target)
			if gobj == nil {
				continue
			}
			typeRow := gobj.Row("Type")
			if typeRow == nil {
				continue
			}
			for _, cell := range typeRow.PossibleValues {
				if containsValue(cell, string(typeName)) {
					return target
				}
			}
		}
	}
	return targets[0]
}

// walkTree descends a name or number tree, queueing every leaf value for
// a check against the linked grammar object.  leafKey is "Names" or
// "Nums"; the leaf arrays hold key/value pairs.
func (r *run) walkTree(obj document.Object, leafKey, target, path string, depth int) {
	if depth > r.maxDepth {
		r.log.Debug("maximum depth reached", zap.String("path", path))
		return
	}
	node, err := document.GetDict(r.doc, obj)
	if err != nil {
		r.report.Add(arlington.ProviderError, path, "%v", err)
		return
	}
	if node == nil {
		return
	}

	if kids, err := document.GetArray(r.doc, node["Kids"]); err == nil {
		for i, kid := range kids {
			kidPath := path + ".Kids[" + strconv.Itoa(i) + "]"
			r.walkTree(kid, leafKey, target, kidPath, depth+1)
		}
	}
	if pairs, err := document.GetArray(r.doc, node[document.Name(leafKey)]); err == nil {
		for i := 1; i < len(pairs); i += 2 {
			leafPath := path + "." + leafKey + "[" + strconv.Itoa(i) + "]"
			r.push(pairs[i], target, leafPath, depth+1)
		}
	}
}
