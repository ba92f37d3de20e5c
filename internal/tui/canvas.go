package tui

import (
	"strings"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
	"github.com/sbcohen2000/raggedblocks/pkg/layout"
)

// Canvas is a fixed-size character grid used to render a layout.Result
// as terminal text: each cell corresponds to one monospace character
// cell, matching the CellWidth/CellHeight the layout was measured with.
type Canvas struct {
	width, height int
	cells         [][]rune
}

// NewCanvas creates a blank width x height canvas, filled with spaces.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &Canvas{width: width, height: height, cells: cells}
}

func (c *Canvas) set(x, y int, r rune) {
	if x < 0 || y < 0 || y >= c.height || x >= c.width {
		return
	}
	c.cells[y][x] = r
}

// PutText writes s starting at (x, y), clipped to the canvas bounds.
func (c *Canvas) PutText(x, y int, s string) {
	for i, r := range s {
		c.set(x+i, y, r)
	}
}

// DrawBox draws a rectangular border using box-drawing characters,
// overwriting whatever was already in the border cells. It approximates
// a WrapBox's true (possibly L-shaped) outline with its bounding
// rectangle, which is the best a character grid can represent anyway.
func (c *Canvas) DrawBox(x0, y0, x1, y1 int) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	c.set(x0, y0, '┌')
	c.set(x1, y0, '┐')
	c.set(x0, y1, '└')
	c.set(x1, y1, '┘')
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─')
		c.set(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│')
		c.set(x1, y, '│')
	}
}

// String renders the canvas as newline-joined rows.
func (c *Canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// cellCoords converts a geom point in layout units to integer canvas
// cell coordinates.
func cellCoords(p geom.Point, cellWidth, cellHeight float64) (int, int) {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if cellHeight <= 0 {
		cellHeight = 1
	}
	return int(p.X / cellWidth), int(p.Y / cellHeight)
}

// Render draws res onto a fresh canvas sized to fit res.Bounds, using
// cellWidth/cellHeight to convert layout units to character cells:
// wrap bounding boxes first (so fragment text drawn afterward is never
// hidden by a border), then every non-spacer fragment's text.
func Render(res layout.Result, cellWidth, cellHeight float64) *Canvas {
	maxX, maxY := cellCoords(geom.Point{X: res.Bounds.Right, Y: res.Bounds.Bottom}, cellWidth, cellHeight)
	c := NewCanvas(maxX+1, maxY+1)

	for _, wb := range res.Wraps {
		x0, y0 := cellCoords(geom.Point{X: wb.Rect.Left, Y: wb.Rect.Top}, cellWidth, cellHeight)
		x1, y1 := cellCoords(geom.Point{X: wb.Rect.Right, Y: wb.Rect.Bottom}, cellWidth, cellHeight)
		c.DrawBox(x0, y0, x1, y1)
	}

	for _, f := range res.Fragments {
		if f.IsSpacer {
			continue
		}
		x, y := cellCoords(geom.Point{X: f.Rect.Left, Y: f.Rect.Top}, cellWidth, cellHeight)
		c.PutText(x, y, f.Text)
	}

	return c
}
