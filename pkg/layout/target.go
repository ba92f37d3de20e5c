package layout

import (
	"fmt"
	"strings"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
	"github.com/sbcohen2000/raggedblocks/pkg/polygon"
	"github.com/sbcohen2000/raggedblocks/pkg/reassoc"
)

// Target is the render surface the core can draw itself onto (spec
// §6.2): an SVG-like fluent builder. pkg/render's concrete sinks
// implement this; the core never imports pkg/render, so this interface
// is declared on the consuming side.
type Target interface {
	Rect(w, h float64) RectCall
	Line(x1, y1, x2, y2 float64) LineCall
	Path(d string) PathCall
	Text(s string) TextCall
}

// RectCall is the fluent chain returned by Target.Rect.
type RectCall interface {
	Move(x, y float64) RectCall
	Fill(color string) RectCall
	Stroke(color string) RectCall
	StrokeWidth(n float64) RectCall
}

// LineCall is the fluent chain returned by Target.Line.
type LineCall interface {
	Stroke(color string) LineCall
}

// PathCall is the fluent chain returned by Target.Path.
type PathCall interface {
	Fill(color string) PathCall
	Stroke(color string) PathCall
	StrokeWidth(n float64) PathCall
}

// TextCall is the fluent chain returned by Target.Text.
type TextCall interface {
	Font(name string, pxSize float64) TextCall
	Move(x, y float64) TextCall
}

// FragmentInfo is the document-order view of one fragment (spec §6.4).
type FragmentInfo struct {
	Text   string
	Rect   geom.Rect
	LineNo int
}

// FragmentsInfo implements the `fragmentsInfo()` surface of spec §6.4.
func (r Result) FragmentsInfo() []FragmentInfo {
	out := make([]FragmentInfo, len(r.Fragments))
	for i, f := range r.Fragments {
		out[i] = FragmentInfo{Text: f.Text, Rect: f.Rect, LineNo: f.LineNo}
	}
	return out
}

// BoundingBox implements the `boundingBox()` surface of spec §6.4. The
// second return value is false only for a Result with no fragments and
// no wraps (the empty-input edge case).
func (r Result) BoundingBox() (geom.Rect, bool) {
	if len(r.Fragments) == 0 && len(r.Wraps) == 0 {
		return geom.Rect{}, false
	}
	return r.Bounds, true
}

// Render implements the `render(target)` surface of spec §6.4: every
// Wrap is drawn as a rectangle or, where an Outline was computed, as an
// SVG path tracing that outline; every non-spacer fragment is drawn as
// text positioned at its rect's bottom-left corner.
func (r Result) Render(t Target) {
	for _, w := range r.Wraps {
		if len(w.Outline) > 0 {
			for _, p := range w.Outline {
				t.Path(pathToSVG(p)).Stroke("black").StrokeWidth(1)
			}
			continue
		}
		t.Rect(w.Rect.Width(), w.Rect.Height()).Move(w.Rect.Left, w.Rect.Top).Stroke("black").StrokeWidth(1)
	}
	for _, f := range r.Fragments {
		if f.IsSpacer {
			continue
		}
		t.Text(f.Text).Move(f.Rect.Left, f.Rect.Bottom)
	}
}

// assignLineNumbers fills in each fragment's LineNo by walking the
// reassociated tree alongside it: every JoinV crossed on the path from
// the root to a fragment increments its line, matching the document's
// original Newline positions (spec §6.4 "lineNo").
func assignLineNumbers(n *reassoc.Node, fragments []Fragment) {
	lines := make(map[int]int, len(fragments))
	line := 0
	var walk func(n *reassoc.Node)
	walk = func(n *reassoc.Node) {
		if n == nil {
			return
		}
		switch n.Kind {
		case reassoc.KindAtom, reassoc.KindSpacer:
			lines[n.Column] = line
		case reassoc.KindJoinH:
			walk(n.Lhs)
			walk(n.Rhs)
		case reassoc.KindJoinV:
			walk(n.Lhs)
			line++
			walk(n.Rhs)
		case reassoc.KindWrap:
			walk(n.Child)
		}
	}
	walk(n)
	for i := range fragments {
		fragments[i].LineNo = lines[fragments[i].Column]
	}
}

// pathToSVG renders a closed polygon path as an SVG path data string
// using the M/L/Z commands (spec §6.2).
func pathToSVG(p polygon.Path) string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M%g,%g", p[0].X, p[0].Y)
	for _, pt := range p[1:] {
		fmt.Fprintf(&b, " L%g,%g", pt.X, pt.Y)
	}
	b.WriteString(" Z")
	return b.String()
}
