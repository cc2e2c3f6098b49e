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
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ReadJSON reads a document object graph in its JSON shim form:
//
//	{
//	  "trailer": {"Size": 4, "Root": {"$ref": "1 0"}},
//	  "objects": {
//	    "1 0": {"Type": {"$name": "Catalog"}, ...}
//	  }
//	}
//
// JSON natives map to their PDF counterparts.  The wrapper objects
// {"$ref": "n g"}, {"$name": "..."} and {"$stream": {...}} encode
// references, names and streams, which JSON cannot express directly.
func ReadJSON(r io.Reader) (*Memory, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var file struct {
		Trailer map[string]interface{}            `json:"trailer"`
		Objects map[string]map[string]interface{} `json:"objects"`
	}
	if err := dec.Decode(&file); err != nil {
		return nil, err
	}
	if file.Trailer == nil {
		return nil, fmt.Errorf("document has no trailer")
	}

	m := NewMemory()
	trailer, err := convertDict(file.Trailer)
	if err != nil {
		return nil, err
	}
	m.SetTrailer(trailer)

	for key, fields := range file.Objects {
		ref, err := parseRef(key)
		if err != nil {
			return nil, err
		}
		// top-level objects go through convert so that a bare
		// {"$stream": {...}} decodes to a stream, not a dictionary
		obj, err := convert(map[string]interface{}(fields))
		if err != nil {
			return nil, err
		}
		m.Put(ref, obj)
	}
	return m, nil
}

func parseRef(s string) (Reference, error) {
	var number int
	var generation uint16
	if _, err := fmt.Sscanf(s, "%d %d", &number, &generation); err != nil {
		return Reference{}, fmt.Errorf("invalid object reference %q", s)
	}
	return Reference{Number: number, Generation: generation}, nil
}

func convertDict(fields map[string]interface{}) (Dict, error) {
	d := make(Dict, len(fields))
	for key, value := range fields {
		obj, err := convert(value)
		if err != nil {
			return nil, err
		}
		d[Name(key)] = obj
	}
	return d, nil
}

func convert(value interface{}) (Object, error) {
	switch v := value.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Boolean(v), nil
	case string:
		return String(v), nil
	case json.Number:
		if !strings.ContainsAny(v.String(), ".eE") {
			n, err := v.Int64()
			if err != nil {
				return nil, err
			}
			return Integer(n), nil
		}
		x, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return Real(x), nil
	case []interface{}:
		arr := make(Array, len(v))
		for i, elem := range v {
			obj, err := convert(elem)
			if err != nil {
				return nil, err
			}
			arr[i] = obj
		}
		return arr, nil
	case map[string]interface{}:
		if ref, ok := v["$ref"]; ok && len(v) == 1 {
			s, ok := ref.(string)
			if !ok {
				return nil, fmt.Errorf("invalid $ref value %v", ref)
			}
			return parseRef(s)
		}
		if name, ok := v["$name"]; ok && len(v) == 1 {
			s, ok := name.(string)
			if !ok {
				return nil, fmt.Errorf("invalid $name value %v", name)
			}
			return Name(s), nil
		}
		if stream, ok := v["$stream"]; ok && len(v) == 1 {
			fields, ok := stream.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("invalid $stream value %v", stream)
			}
			dict, err := convertDict(fields)
			if err != nil {
				return nil, err
			}
			return &Stream{Dict: dict}, nil
		}
		return convertDict(v)
	}
	return nil, fmt.Errorf("cannot convert %T to a PDF object", value)
}
