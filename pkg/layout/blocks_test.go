package layout

import (
	"testing"

	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

func TestBlocksJoinHPlacesFragmentsEdgeToEdge(t *testing.T) {
	root := build(t, tree.Node(0, tree.Style{}, tree.Atom("a"), tree.Atom("b")))
	res, err := Blocks{}.Layout(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := fragmentByText(res.Fragments, "a")
	b, _ := fragmentByText(res.Fragments, "b")
	if a.Rect.Right != b.Rect.Left {
		t.Fatalf("a.Right = %v, b.Left = %v, want equal", a.Rect.Right, b.Rect.Left)
	}
}

func TestBlocksJoinVStacksWithNoLeading(t *testing.T) {
	root := build(t, tree.Node(0, tree.Style{}, tree.Atom("a"), tree.Newline(), tree.Atom("b")))
	res, err := Blocks{}.Layout(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := fragmentByText(res.Fragments, "a")
	b, _ := fragmentByText(res.Fragments, "b")
	if a.Rect.Bottom != b.Rect.Top {
		t.Fatalf("a.Bottom = %v, b.Top = %v, want equal (no leading)", a.Rect.Bottom, b.Rect.Top)
	}
}

func TestBlocksWrapInflatesByOwnPaddingOnly(t *testing.T) {
	// Node(padding=2, [Node(padding=3, [a]), b]): Blocks never deduplicates
	// shared padding, so the outer wrap is inflated by its own padding
	// regardless of the inner wrap's extent.
	root := build(t, tree.Node(2, tree.Style{},
		tree.Node(3, tree.Style{}, tree.Atom("a")),
		tree.Atom("b"),
	))
	res, err := Blocks{}.Layout(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Wraps) != 2 {
		t.Fatalf("len(Wraps) = %d, want 2", len(res.Wraps))
	}
	inner, outer := res.Wraps[0], res.Wraps[1]
	if outer.Rect.Top != inner.Rect.Top-2 || outer.Rect.Bottom != inner.Rect.Bottom+2 {
		t.Fatalf("outer wrap = %v, want inner wrap %v grown by 2 vertically", outer.Rect, inner.Rect)
	}
}
