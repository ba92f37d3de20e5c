package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/sbcohen2000/raggedblocks/pkg/errors"
	"github.com/sbcohen2000/raggedblocks/pkg/layout"
)

// PNG renders res to PNG bytes at the given scale by rendering SVG and
// shelling out to rsvg-convert.
func PNG(res layout.Result, width, height, scale float64) ([]byte, error) {
	return rsvgConvert(SVG(res, width, height), "png", "-z", fmt.Sprintf("%.2f", scale))
}

// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux)
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeRenderUnavailable,
			"%s export requires librsvg; install with 'brew install librsvg' (macOS) or 'apt install librsvg2-bin' (Linux)", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderUnavailable, err, "rsvg-convert: %s", errBuf.String())
	}
	return out.Bytes(), nil
}
