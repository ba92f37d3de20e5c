package pipeline

import (
	"bytes"

	"github.com/sbcohen2000/raggedblocks/pkg/errors"
	stdio "github.com/sbcohen2000/raggedblocks/pkg/io"
	"github.com/sbcohen2000/raggedblocks/pkg/layout"
	"github.com/sbcohen2000/raggedblocks/pkg/render"
)

// RenderFormat renders res in a single requested format.
func RenderFormat(res layout.Result, format string, width, height float64) ([]byte, error) {
	switch format {
	case FormatSVG:
		return render.SVG(res, width, height), nil
	case FormatPDF:
		return render.PDF(res, width, height)
	case FormatPNG:
		return render.PNG(res, width, height, 1)
	case FormatJSON:
		var buf bytes.Buffer
		if err := stdio.WriteResultJSON(res, &buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout result")
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidSettings, "unsupported format %q", format)
	}
}

// RenderFormats renders res in every requested format, returning the
// first error encountered.
func RenderFormats(res layout.Result, formats []string, width, height float64) (map[string][]byte, error) {
	out := make(map[string][]byte, len(formats))
	for _, f := range formats {
		data, err := RenderFormat(res, f, width, height)
		if err != nil {
			return nil, err
		}
		out[f] = data
	}
	return out, nil
}
