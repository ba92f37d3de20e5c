package polygon

import (
	"context"
	"math"
	"testing"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
)

func rectAt(x, y, w, h float64) geom.Rect {
	return geom.NewRect(geom.Point{X: x, Y: y}, geom.Vector{X: w, Y: h})
}

func TestUnionRectsSingleRect(t *testing.T) {
	paths := UnionRects([]geom.Rect{rectAt(0, 0, 10, 10)})
	if len(paths) != 1 {
		t.Fatalf("paths = %d, want 1", len(paths))
	}
	if math.Abs(math.Abs(signedArea(paths[0]))/2-100) > 1e-9 {
		t.Fatalf("area = %v, want 100", math.Abs(signedArea(paths[0]))/2)
	}
}

func TestUnionRectsDisjoint(t *testing.T) {
	paths := UnionRects([]geom.Rect{rectAt(0, 0, 5, 5), rectAt(100, 100, 5, 5)})
	if len(paths) != 2 {
		t.Fatalf("paths = %d, want 2", len(paths))
	}
}

func TestUnionRectsOverlapping(t *testing.T) {
	paths := UnionRects([]geom.Rect{rectAt(0, 0, 10, 10), rectAt(5, 5, 10, 10)})
	if len(paths) != 1 {
		t.Fatalf("paths = %d, want 1 (merged L-shape)", len(paths))
	}
	area := math.Abs(signedArea(paths[0])) / 2
	if math.Abs(area-175) > 1e-9 {
		t.Fatalf("area = %v, want 175", area)
	}
}

func TestPointInPathBasicRect(t *testing.T) {
	paths := UnionRects([]geom.Rect{rectAt(0, 0, 10, 10)})
	p := paths[0]
	if !PointInPath(geom.Point{X: 5, Y: 5}, p) {
		t.Fatal("center should be inside")
	}
	if PointInPath(geom.Point{X: 50, Y: 50}, p) {
		t.Fatal("far point should be outside")
	}
}

func TestIntersectionAreaFullyContained(t *testing.T) {
	paths := UnionRects([]geom.Rect{rectAt(0, 0, 10, 10)})
	area := IntersectionArea(rectAt(2, 2, 4, 4), paths[0])
	if math.Abs(area-16) > 1e-9 {
		t.Fatalf("area = %v, want 16", area)
	}
}

func TestIntersectionAreaPartial(t *testing.T) {
	paths := UnionRects([]geom.Rect{rectAt(0, 0, 10, 10)})
	area := IntersectionArea(rectAt(5, 5, 10, 10), paths[0])
	if math.Abs(area-25) > 1e-9 {
		t.Fatalf("area = %v, want 25", area)
	}
}

func TestOffsetPathShrinksRectangle(t *testing.T) {
	paths := UnionRects([]geom.Rect{rectAt(0, 0, 10, 10)})
	offset := OffsetPath(paths[0], 1)
	area := math.Abs(signedArea(offset)) / 2
	if math.Abs(area-64) > 1e-6 {
		t.Fatalf("area after inset 1 = %v, want 64 (8x8)", area)
	}
}

func TestSimplifyRemovesCollinearPoint(t *testing.T) {
	path := Path{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0},
		{X: 10, Y: 10}, {X: 0, Y: 10},
	}
	out := Simplify(path, nil, nil)
	for _, p := range out {
		if p == (geom.Point{X: 5, Y: 0}) {
			t.Fatal("collinear midpoint should have been removed")
		}
	}
}

func TestSimplifyContextAbortsImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	_, outcome := SimplifyContext(ctx, path, nil, nil)
	if outcome != OutcomeAborted {
		t.Fatalf("outcome = %v, want Aborted", outcome)
	}
}

func TestOrientIsIdempotent(t *testing.T) {
	path := Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	once := Orient(path, true)
	twice := Orient(once, true)
	if !pathsEqual(Path(once), Path(twice)) {
		t.Fatal("Orient should be idempotent once already in the requested orientation")
	}
}
