package io

import (
	"encoding/json"
	"fmt"
	stdio "io"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
	"github.com/sbcohen2000/raggedblocks/pkg/layout"
	"github.com/sbcohen2000/raggedblocks/pkg/polygon"
)

type resultDoc struct {
	Fragments []fragmentDoc `json:"fragments"`
	Wraps     []wrapDoc     `json:"wraps"`
	Bounds    rectDoc       `json:"bounds"`
}

type fragmentDoc struct {
	Column   int     `json:"column"`
	Text     string  `json:"text"`
	Rect     rectDoc `json:"rect"`
	IsSpacer bool    `json:"is_spacer,omitempty"`
	LineNo   int     `json:"line_no"`
}

type wrapDoc struct {
	ID      int         `json:"id"`
	Rect    rectDoc     `json:"rect"`
	Padding float64     `json:"padding,omitempty"`
	Outline [][]pointDoc `json:"outline,omitempty"`
}

type rectDoc struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

type pointDoc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WriteResultJSON encodes a computed layout.Result as JSON and writes it
// to w, for external tools that need positioned fragments and wraps
// without re-running a layout algorithm.
func WriteResultJSON(r layout.Result, w stdio.Writer) error {
	doc := resultDoc{
		Fragments: make([]fragmentDoc, len(r.Fragments)),
		Wraps:     make([]wrapDoc, len(r.Wraps)),
		Bounds:    encodeRect(r.Bounds),
	}
	for i, f := range r.Fragments {
		doc.Fragments[i] = fragmentDoc{
			Column:   f.Column,
			Text:     f.Text,
			Rect:     encodeRect(f.Rect),
			IsSpacer: f.IsSpacer,
			LineNo:   f.LineNo,
		}
	}
	for i, wr := range r.Wraps {
		outline := make([][]pointDoc, len(wr.Outline))
		for j, p := range wr.Outline {
			outline[j] = encodePath(p)
		}
		doc.Wraps[i] = wrapDoc{ID: wr.ID, Rect: encodeRect(wr.Rect), Padding: wr.Padding, Outline: outline}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func encodeRect(r geom.Rect) rectDoc {
	return rectDoc{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

func encodePath(p polygon.Path) []pointDoc {
	out := make([]pointDoc, len(p))
	for i, pt := range p {
		out[i] = pointDoc{X: pt.X, Y: pt.Y}
	}
	return out
}
