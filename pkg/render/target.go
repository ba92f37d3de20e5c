package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/sbcohen2000/raggedblocks/pkg/layout"
)

// SVGTarget implements layout.Target by accumulating drawn elements and
// serializing them to an SVG document on Bytes. Each fluent builder
// (rectCall, lineCall, pathCall, textCall) mutates its own element in
// place, so attribute calls are free to arrive in any order; the element
// is only rendered to text once, at Bytes.
type SVGTarget struct {
	width, height float64
	elements      []svgElement
}

// NewSVGTarget creates a target that will emit an SVG document of the
// given frame size once Bytes is called.
func NewSVGTarget(width, height float64) *SVGTarget {
	return &SVGTarget{width: width, height: height}
}

type svgElement interface {
	writeTo(buf *bytes.Buffer)
}

// Rect implements layout.Target.
func (t *SVGTarget) Rect(w, h float64) layout.RectCall {
	e := &rectElem{w: w, h: h, stroke: "none", fill: "none"}
	t.elements = append(t.elements, e)
	return e
}

// Line implements layout.Target.
func (t *SVGTarget) Line(x1, y1, x2, y2 float64) layout.LineCall {
	e := &lineElem{x1: x1, y1: y1, x2: x2, y2: y2, stroke: "black"}
	t.elements = append(t.elements, e)
	return e
}

// Path implements layout.Target.
func (t *SVGTarget) Path(d string) layout.PathCall {
	e := &pathElem{d: d, stroke: "none", fill: "none"}
	t.elements = append(t.elements, e)
	return e
}

// Text implements layout.Target.
func (t *SVGTarget) Text(s string) layout.TextCall {
	e := &textElem{text: s, px: 12, font: "monospace"}
	t.elements = append(t.elements, e)
	return e
}

// Bytes renders the accumulated elements into a complete SVG document.
func (t *SVGTarget) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g" width="%g" height="%g">`+"\n",
		t.width, t.height, t.width, t.height)
	for _, e := range t.elements {
		e.writeTo(&buf)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

type rectElem struct {
	w, h, x, y, strokeWidth    float64
	fill, stroke               string
}

func (e *rectElem) Move(x, y float64) layout.RectCall        { e.x, e.y = x, y; return e }
func (e *rectElem) Fill(c string) layout.RectCall            { e.fill = c; return e }
func (e *rectElem) Stroke(c string) layout.RectCall          { e.stroke = c; return e }
func (e *rectElem) StrokeWidth(n float64) layout.RectCall    { e.strokeWidth = n; return e }

func (e *rectElem) writeTo(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <rect x="%g" y="%g" width="%g" height="%g" fill="%s" stroke="%s" stroke-width="%g"/>`+"\n",
		e.x, e.y, e.w, e.h, attr(e.fill), attr(e.stroke), e.strokeWidth)
}

type lineElem struct {
	x1, y1, x2, y2 float64
	stroke         string
}

func (e *lineElem) Stroke(c string) layout.LineCall { e.stroke = c; return e }

func (e *lineElem) writeTo(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s"/>`+"\n",
		e.x1, e.y1, e.x2, e.y2, attr(e.stroke))
}

type pathElem struct {
	d, fill, stroke string
	strokeWidth     float64
}

func (e *pathElem) Fill(c string) layout.PathCall         { e.fill = c; return e }
func (e *pathElem) Stroke(c string) layout.PathCall       { e.stroke = c; return e }
func (e *pathElem) StrokeWidth(n float64) layout.PathCall { e.strokeWidth = n; return e }

func (e *pathElem) writeTo(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <path d="%s" fill="%s" stroke="%s" stroke-width="%g"/>`+"\n",
		html.EscapeString(e.d), attr(e.fill), attr(e.stroke), e.strokeWidth)
}

type textElem struct {
	text       string
	x, y, px   float64
	font       string
}

func (e *textElem) Font(name string, pxSize float64) layout.TextCall { e.font, e.px = name, pxSize; return e }
func (e *textElem) Move(x, y float64) layout.TextCall                { e.x, e.y = x, y; return e }

func (e *textElem) writeTo(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <text x="%g" y="%g" font-family="%s" font-size="%g">%s</text>`+"\n",
		e.x, e.y, attr(e.font), e.px, html.EscapeString(e.text))
}

func attr(s string) string {
	if s == "" {
		return "none"
	}
	return html.EscapeString(s)
}

var (
	_ layout.Target   = (*SVGTarget)(nil)
	_ layout.RectCall = (*rectElem)(nil)
	_ layout.LineCall = (*lineElem)(nil)
	_ layout.PathCall = (*pathElem)(nil)
	_ layout.TextCall = (*textElem)(nil)
)
