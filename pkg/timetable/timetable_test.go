package timetable

import (
	"testing"

	"github.com/sbcohen2000/raggedblocks/pkg/reassoc"
	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

var emptyAtom = tree.Atom("")

func reassociate(t *testing.T, tr tree.Tree) *reassoc.Node {
	t.Helper()
	n, err := reassoc.Reassociate(tr, emptyAtom)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

// findColumn returns the Column of the first fragment with the given text.
func findColumn(n *reassoc.Node, text string) (int, bool) {
	if n == nil {
		return 0, false
	}
	if n.IsFragment() && n.Text == text {
		return n.Column, true
	}
	if c, ok := findColumn(n.Lhs, text); ok {
		return c, true
	}
	if c, ok := findColumn(n.Rhs, text); ok {
		return c, true
	}
	return findColumn(n.Child, text)
}

func TestSpaceBetweenSharedWrapYieldsZero(t *testing.T) {
	// Node(padding=2, [a, b]): a and b sit in the same single Wrap, fully
	// shared, so nothing separates them.
	root := reassociate(t, tree.Node(2, tree.Style{}, tree.Atom("a"), tree.Atom("b")))
	tt, err := Build(root)
	if err != nil {
		t.Fatal(err)
	}
	ca, _ := findColumn(root, "a")
	cb, _ := findColumn(root, "b")
	pa, pb := tt.SpaceBetween(ca, cb)
	if pa != 0 || pb != 0 {
		t.Fatalf("SpaceBetween = (%v, %v), want (0, 0)", pa, pb)
	}
}

func TestSpaceBetweenDisjointWraps(t *testing.T) {
	// Node(padding=4, [Node(padding=2, [x]), Newline(), Node(padding=2, [y])]):
	// x and y each sit under their own disjoint padding=2 wrap, both
	// enclosed by a shared padding=4 wrap. spaceBetween(x, y) = (2, 2);
	// the shared outer wrap contributes nothing extra since it's peeled
	// away as a common ancestor.
	root := reassociate(t, tree.Node(4, tree.Style{},
		tree.Node(2, tree.Style{}, tree.Atom("x")),
		tree.Newline(),
		tree.Node(2, tree.Style{}, tree.Atom("y")),
	))
	tt, err := Build(root)
	if err != nil {
		t.Fatal(err)
	}
	cx, _ := findColumn(root, "x")
	cy, _ := findColumn(root, "y")
	px, py := tt.SpaceBetween(cx, cy)
	if px != 2 || py != 2 {
		t.Fatalf("SpaceBetween(x, y) = (%v, %v), want (2, 2)", px, py)
	}
}

func TestSpaceBetweenSpacerIsZero(t *testing.T) {
	root := reassociate(t, tree.Node(5, tree.Style{}, tree.Atom("a"), tree.SpacerWidth(1), tree.Atom("b")))
	tt, err := Build(root)
	if err != nil {
		t.Fatal(err)
	}
	spacerCol := 1
	pa, pb := tt.SpaceBetween(0, spacerCol)
	if pa != 0 || pb != 0 {
		t.Fatalf("SpaceBetween with a spacer = (%v, %v), want (0, 0)", pa, pb)
	}
}

func TestSpaceBetweenAsymmetricNesting(t *testing.T) {
	// Node(padding=1, [Node(padding=3, [a]), b]): a is nested one wrap
	// deeper than b. The outer padding=1 wrap is a shared ancestor and
	// peels away first; peeling then stops at a's own padding=3 wrap
	// versus b's implicit (uid 0, padding 0) row.
	root := reassociate(t, tree.Node(1, tree.Style{},
		tree.Node(3, tree.Style{}, tree.Atom("a")),
		tree.Atom("b"),
	))
	tt, err := Build(root)
	if err != nil {
		t.Fatal(err)
	}
	ca, _ := findColumn(root, "a")
	cb, _ := findColumn(root, "b")
	pa, pb := tt.SpaceBetween(ca, cb)
	if pa != 3 || pb != 0 {
		t.Fatalf("SpaceBetween(a, b) = (%v, %v), want (3, 0)", pa, pb)
	}
}

func TestTimetableMaxDepth(t *testing.T) {
	root := reassociate(t, tree.Node(1, tree.Style{},
		tree.Node(2, tree.Style{}, tree.Atom("a")),
	))
	tt, err := Build(root)
	if err != nil {
		t.Fatal(err)
	}
	if tt.MaxDepth() != 2 {
		t.Fatalf("MaxDepth = %d, want 2", tt.MaxDepth())
	}
}
