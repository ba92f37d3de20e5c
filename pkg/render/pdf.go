package render

import "github.com/sbcohen2000/raggedblocks/pkg/layout"

// PDF renders res to PDF bytes by rendering SVG and shelling out to
// rsvg-convert.
func PDF(res layout.Result, width, height float64) ([]byte, error) {
	return rsvgConvert(SVG(res, width, height), "pdf")
}
