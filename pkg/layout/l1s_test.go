package layout

import (
	"testing"

	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

func TestL1SMatchesL1PLeading(t *testing.T) {
	root := build(t, tree.Node(4, tree.Style{},
		tree.Node(2, tree.Style{}, tree.Atom("x")),
		tree.Newline(),
		tree.Node(2, tree.Style{}, tree.Atom("y")),
	))
	res, err := L1S{}.Layout(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	x, _ := fragmentByText(res.Fragments, "x")
	y, _ := fragmentByText(res.Fragments, "y")
	if gap := y.Rect.Top - x.Rect.Bottom; gap != 4 {
		t.Fatalf("gap between x and y = %v, want 4", gap)
	}
}

func TestL1SFragmentsCoverEveryColumnInOrder(t *testing.T) {
	root := build(t, tree.Node(0, tree.Style{}, tree.Atom("a"), tree.Atom("b"), tree.Atom("c")))
	res, err := L1S{}.Layout(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Fragments) != 3 {
		t.Fatalf("len(Fragments) = %d, want 3", len(res.Fragments))
	}
	for i, want := range []string{"a", "b", "c"} {
		if res.Fragments[i].Text != want {
			t.Fatalf("Fragments[%d].Text = %q, want %q", i, res.Fragments[i].Text, want)
		}
		if res.Fragments[i].Column != i {
			t.Fatalf("Fragments[%d].Column = %d, want %d", i, res.Fragments[i].Column, i)
		}
	}
}
