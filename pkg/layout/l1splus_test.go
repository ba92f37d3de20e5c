package layout

import (
	"testing"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
	"github.com/sbcohen2000/raggedblocks/pkg/polygon"
	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

func TestL1SPlusProducesOneOutlinePerWrap(t *testing.T) {
	root := build(t, tree.Node(2, tree.Style{}, tree.Atom("a"), tree.Atom("b")))
	res, err := L1SPlus{}.Layout(root, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Wraps) != 1 {
		t.Fatalf("len(Wraps) = %d, want 1", len(res.Wraps))
	}
	w := res.Wraps[0]
	if len(w.Outline) == 0 {
		t.Fatal("Outline is empty, want at least one path")
	}
	a, _ := fragmentByText(res.Fragments, "a")
	center := geom.Point{X: (a.Rect.Left + a.Rect.Right) / 2, Y: (a.Rect.Top + a.Rect.Bottom) / 2}
	if !polygon.PointInPath(center, w.Outline[0]) {
		t.Fatal("fragment center falls outside its own wrap's outline")
	}
}

func TestL1SPlusOutlineRespectsSiblingRegion(t *testing.T) {
	// Two disjoint wraps side by side: neither wrap's outline should claim
	// area belonging to the other once constrained via keepOutside.
	root := build(t, tree.Node(0, tree.Style{},
		tree.Node(1, tree.Style{}, tree.Atom("a")),
		tree.Node(1, tree.Style{}, tree.Atom("b")),
	))
	res, err := L1SPlus{}.Layout(root, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	// Root wrap plus the two inner wraps.
	if len(res.Wraps) != 3 {
		t.Fatalf("len(Wraps) = %d, want 3", len(res.Wraps))
	}
	a, _ := fragmentByText(res.Fragments, "a")
	b, _ := fragmentByText(res.Fragments, "b")
	ca := geom.Point{X: (a.Rect.Left + a.Rect.Right) / 2, Y: (a.Rect.Top + a.Rect.Bottom) / 2}
	cb := geom.Point{X: (b.Rect.Left + b.Rect.Right) / 2, Y: (b.Rect.Top + b.Rect.Bottom) / 2}
	// The two inner wraps come first; each outline must hold exactly one
	// of the two fragments.
	for _, w := range res.Wraps[:2] {
		if len(w.Outline) != 1 || polygon.PointInPath(ca, w.Outline[0]) == polygon.PointInPath(cb, w.Outline[0]) {
			t.Fatalf("wrap %d outline does not separate a from b: %v", w.ID, w.Outline)
		}
	}
}
