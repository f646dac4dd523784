// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToProto converts this report into a Protobuf value, which can be serialized
// as machine-readable diagnostic output.
//
// The result has the shape
//
//	{
//	  "errors": 1, "warnings": 0,
//	  "diagnostics": [{
//	    "level": "error", "message": "...", "path": "a.brk",
//	    "span": {"start": 8, "end": 11, "line": 1, "column": 9},
//	    "snippets": [{"start": 8, "end": 11, "message": "..."}],
//	    "notes": [...], "help": [...]
//	  }]
//	}
func (r *Report) ToProto() (*structpb.Struct, error) {
	diagnostics := make([]any, 0, len(r.Diagnostics))
	for i := range r.Diagnostics {
		diagnostics = append(diagnostics, r.Diagnostics[i].toMap())
	}

	return structpb.NewStruct(map[string]any{
		"errors":      r.Errors(),
		"warnings":    r.Warnings(),
		"diagnostics": diagnostics,
	})
}

// MarshalJSON serializes this report's [Report.ToProto] form as JSON.
func (r *Report) MarshalJSON() ([]byte, error) {
	msg, err := r.ToProto()
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(msg)
}

func (d *Diagnostic) toMap() map[string]any {
	m := map[string]any{
		"level":   d.Level.String(),
		"message": d.Message(),
		"path":    d.Path(),
	}

	if span, ok := d.Primary(); ok && d.file != nil {
		loc := d.file.Location(span.Start)
		m["span"] = map[string]any{
			"start":  span.Start,
			"end":    span.End,
			"line":   loc.Line,
			"column": loc.Column,
		}
	}

	if len(d.snippets) > 0 {
		snippets := make([]any, 0, len(d.snippets))
		for _, snip := range d.snippets {
			snippets = append(snippets, map[string]any{
				"start":   snip.span.Start,
				"end":     snip.span.End,
				"message": snip.message,
			})
		}
		m["snippets"] = snippets
	}

	strs := func(s []string) []any {
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out
	}
	if len(d.notes) > 0 {
		m["notes"] = strs(d.notes)
	}
	if len(d.help) > 0 {
		m["help"] = strs(d.help)
	}
	return m
}
