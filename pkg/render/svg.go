package render

import (
	"github.com/sbcohen2000/raggedblocks/pkg/layout"
)

// SVG renders a layout Result to an SVG document of the given frame
// size, mirroring the teacher's sink.RenderSVG(l layout.Layout, opts...)
// free-function entry point.
func SVG(res layout.Result, width, height float64) []byte {
	t := NewSVGTarget(width, height)
	res.Render(t)
	return t.Bytes()
}
