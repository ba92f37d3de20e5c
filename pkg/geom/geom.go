// Package geom provides the axis-aligned geometric primitives the layout
// algorithms and polygon kernel build on: points, vectors, and rectangles.
//
// All coordinates use the convention that y grows downward, matching SVG
// and the render target in [github.com/sbcohen2000/raggedblocks/pkg/render].
package geom

import "math"

// Point is a location in the 2-D plane.
type Point struct {
	X, Y float64
}

// Vector is a displacement in the 2-D plane.
type Vector struct {
	X, Y float64
}

// Add returns a new point translated by v. It never mutates p, resolving
// the ambiguity the original implementation left between a point-returning
// and an argument-mutating addVector (see design notes: addVector is pure).
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// AddVector is an alias for Add kept for call sites that read more
// naturally as a free function than a method.
func AddVector(p Point, v Vector) Point {
	return p.Add(v)
}

// Sub returns the vector from q to p (p - q).
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Plus returns the sum of two vectors.
func (v Vector) Plus(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Rect is an axis-aligned rectangle. Left <= Right and Top <= Bottom must
// hold for a well-formed rect; degenerate (zero-area) rects are valid
// inputs per spec §7 and are preserved rather than rejected.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect builds a rect from an origin point and a width/height vector.
func NewRect(origin Point, size Vector) Rect {
	return Rect{
		Left:   origin.X,
		Top:    origin.Y,
		Right:  origin.X + size.X,
		Bottom: origin.Y + size.Y,
	}
}

// Width returns the horizontal span of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Translate returns r shifted by v.
func (r Rect) Translate(v Vector) Rect {
	return Rect{
		Left:   r.Left + v.X,
		Top:    r.Top + v.Y,
		Right:  r.Right + v.X,
		Bottom: r.Bottom + v.Y,
	}
}

// Inflate grows r by p units on every side. A negative p shrinks it.
// Padding of 0 returns r unchanged, including for degenerate rects.
func (r Rect) Inflate(p float64) Rect {
	return Rect{
		Left:   r.Left - p,
		Top:    r.Top - p,
		Right:  r.Right + p,
		Bottom: r.Bottom + p,
	}
}

// Origin returns the top-left corner of r.
func (r Rect) Origin() Point { return Point{X: r.Left, Y: r.Top} }

// Size returns the (width, height) vector of r.
func (r Rect) Size() Vector { return Vector{X: r.Width(), Y: r.Height()} }

// OverlapsHorizontally reports whether r and o project onto overlapping
// ranges on the x-axis. Touching edges (shared boundary, zero overlap)
// do not count as overlapping.
func (r Rect) OverlapsHorizontally(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right
}

// OverlapsVertically reports whether r and o project onto overlapping
// ranges on the y-axis.
func (r Rect) OverlapsVertically(o Rect) bool {
	return r.Top < o.Bottom && o.Top < r.Bottom
}

// Overlaps reports whether r and o share any interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.OverlapsHorizontally(o) && r.OverlapsVertically(o)
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, o.Left),
		Top:    math.Min(r.Top, o.Top),
		Right:  math.Max(r.Right, o.Right),
		Bottom: math.Max(r.Bottom, o.Bottom),
	}
}

// Area returns the (non-negative) area of r. Degenerate rects have area 0.
func (r Rect) Area() float64 {
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Empty reports whether r has zero or negative width or height.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}
