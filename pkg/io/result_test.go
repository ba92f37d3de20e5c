package io

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
	"github.com/sbcohen2000/raggedblocks/pkg/layout"
	"github.com/sbcohen2000/raggedblocks/pkg/polygon"
)

func TestWriteResultJSONIncludesFragmentsAndWraps(t *testing.T) {
	res := layout.Result{
		Fragments: []layout.Fragment{
			{Column: 0, Text: "hi", Rect: geom.Rect{Left: 0, Top: 0, Right: 10, Bottom: 5}, LineNo: 0},
			{Column: 1, IsSpacer: true, Rect: geom.Rect{Left: 10, Top: 0, Right: 12, Bottom: 5}, LineNo: 0},
		},
		Wraps: []layout.WrapBox{
			{ID: 0, Rect: geom.Rect{Left: 0, Top: 0, Right: 12, Bottom: 5}, Padding: 1},
			{ID: 1, Rect: geom.Rect{Left: 0, Top: 0, Right: 12, Bottom: 5},
				Outline: []polygon.Path{{{X: 0, Y: 0}, {X: 12, Y: 0}, {X: 12, Y: 5}, {X: 0, Y: 5}}}},
		},
		Bounds: geom.Rect{Left: 0, Top: 0, Right: 12, Bottom: 5},
	}

	var buf bytes.Buffer
	if err := WriteResultJSON(res, &buf); err != nil {
		t.Fatalf("WriteResultJSON: %v", err)
	}

	var doc resultDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(doc.Fragments) != 2 {
		t.Fatalf("fragments = %d, want 2", len(doc.Fragments))
	}
	if !doc.Fragments[1].IsSpacer {
		t.Error("expected fragment 1 to carry is_spacer")
	}
	if len(doc.Wraps) != 2 || len(doc.Wraps[1].Outline) != 1 {
		t.Fatalf("wraps = %+v", doc.Wraps)
	}
	if len(doc.Wraps[1].Outline[0]) != 4 {
		t.Errorf("outline points = %d, want 4", len(doc.Wraps[1].Outline[0]))
	}
}
