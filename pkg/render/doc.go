// Package render implements the SVG-like render target consumed by
// layout.Result.Render (spec §6.2), plus PDF/PNG export built on top of
// it via the external rsvg-convert tool.
//
// # SVG target
//
// SVGTarget implements layout.Target: every Rect/Line/Path/Text call
// returns a fluent builder that accumulates attributes and is flushed to
// the target's internal buffer only when Bytes is called, so attribute
// calls can arrive in any order.
//
//	t := render.NewSVGTarget(frameWidth, frameHeight)
//	result.Render(t)
//	svg := t.Bytes()
//
// # PDF/PNG export
//
//	svg := render.SVG(result, frameWidth, frameHeight)
//	pdf, err := render.PDF(result, frameWidth, frameHeight)
//	png, err := render.PNG(result, frameWidth, frameHeight, 2.0)
package render
