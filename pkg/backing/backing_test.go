package backing

import (
	"testing"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
)

func rectAt(x, y, w, h float64) geom.Rect {
	return geom.NewRect(geom.Point{X: x, Y: y}, geom.Vector{X: w, Y: h})
}

func TestAppendAndLookup(t *testing.T) {
	b := New()
	i0 := b.AppendRect(rectAt(0, 0, 10, 5))
	i1 := b.AppendRect(rectAt(10, 0, 10, 5))
	if got := b.Lookup(i0); got != rectAt(0, 0, 10, 5) {
		t.Fatalf("Lookup(i0) = %v", got)
	}
	if got := b.Lookup(i1); got != rectAt(10, 0, 10, 5) {
		t.Fatalf("Lookup(i1) = %v", got)
	}
}

func TestTranslateRangeIsContiguousAndExclusive(t *testing.T) {
	b := New()
	for i := 0; i < 5; i++ {
		b.AppendRect(rectAt(float64(i)*10, 0, 10, 5))
	}
	b.TranslateRange(1, 3, geom.Vector{X: 0, Y: 100})

	want := []geom.Rect{
		rectAt(0, 0, 10, 5),
		rectAt(10, 100, 10, 5),
		rectAt(20, 100, 10, 5),
		rectAt(30, 0, 10, 5),
		rectAt(40, 0, 10, 5),
	}
	for i, w := range want {
		if got := b.Lookup(i); got != w {
			t.Fatalf("Lookup(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestTranslateRangeAccumulates(t *testing.T) {
	b := New()
	b.AppendRect(rectAt(0, 0, 1, 1))
	b.AppendRect(rectAt(1, 0, 1, 1))

	b.TranslateRange(0, 2, geom.Vector{X: 5, Y: 0})
	b.TranslateRange(0, 1, geom.Vector{X: 2, Y: 0})

	if got := b.Lookup(0); got != rectAt(7, 0, 1, 1) {
		t.Fatalf("Lookup(0) = %v, want translated by (5+2,0)", got)
	}
	if got := b.Lookup(1); got != rectAt(6, 0, 1, 1) {
		t.Fatalf("Lookup(1) = %v, want translated by (5,0)", got)
	}
}

func TestTranslateEmptyRangeIsNoop(t *testing.T) {
	b := New()
	b.AppendRect(rectAt(0, 0, 1, 1))
	b.TranslateRange(0, 0, geom.Vector{X: 99, Y: 99})
	if got := b.Lookup(0); got != rectAt(0, 0, 1, 1) {
		t.Fatalf("Lookup(0) = %v, want unchanged", got)
	}
}

func TestRegionJoin(t *testing.T) {
	a := Region{Begin: 0, End: 3, Depth: 2}
	b := Region{Begin: 3, End: 5, Depth: 1}
	joined, err := Join(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if joined.Begin != 0 || joined.End != 5 || joined.Depth != 1 {
		t.Fatalf("joined = %+v, want {0 5 1}", joined)
	}
}

func TestRegionJoinNonAdjacentFails(t *testing.T) {
	a := Region{Begin: 0, End: 3}
	b := Region{Begin: 4, End: 5}
	if _, err := Join(a, b); err == nil {
		t.Fatal("want error for non-adjacent regions")
	}
}
