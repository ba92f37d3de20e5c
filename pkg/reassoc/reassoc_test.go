package reassoc

import (
	"testing"

	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

var empty = tree.Atom("")

// countKind walks n and counts nodes of kind k.
func countKind(n *Node, k Kind) int {
	if n == nil {
		return 0
	}
	count := 0
	if n.Kind == k {
		count++
	}
	count += countKind(n.Lhs, k)
	count += countKind(n.Rhs, k)
	count += countKind(n.Child, k)
	return count
}

func fragmentTexts(n *Node, out *[]string) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindAtom, KindSpacer:
		*out = append(*out, n.Text)
	default:
		fragmentTexts(n.Lhs, out)
		fragmentTexts(n.Rhs, out)
		fragmentTexts(n.Child, out)
	}
}

func TestReassociateSingleAtom(t *testing.T) {
	n, err := Reassociate(tree.Node(0, tree.Style{}, tree.Atom("ab")), empty)
	if err != nil {
		t.Fatal(err)
	}
	if countKind(n, KindWrap) != 1 {
		t.Fatalf("want exactly one Wrap for the root Node")
	}
	var texts []string
	fragmentTexts(n, &texts)
	if len(texts) != 1 || texts[0] != "ab" {
		t.Fatalf("fragments = %v, want [ab]", texts)
	}
}

func TestReassociateHorizontalPair(t *testing.T) {
	n, err := Reassociate(tree.Node(2, tree.Style{}, tree.Atom("a"), tree.Atom("b")), empty)
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != KindWrap {
		t.Fatalf("root kind = %v, want Wrap", n.Kind)
	}
	if n.Child.Kind != KindJoinH {
		t.Fatalf("child kind = %v, want JoinH", n.Child.Kind)
	}
}

func TestReassociateTwoLines(t *testing.T) {
	n, err := Reassociate(tree.Node(4, tree.Style{},
		tree.Node(2, tree.Style{}, tree.Atom("x"), tree.Newline(), tree.Atom("y")),
	), empty)
	if err != nil {
		t.Fatal(err)
	}
	inner := n.Child
	if inner.Kind != KindWrap {
		t.Fatalf("inner kind = %v, want Wrap", inner.Kind)
	}
	if inner.Child.Kind != KindJoinV {
		t.Fatalf("inner.Child kind = %v, want JoinV (newline should bind looser than join)", inner.Child.Kind)
	}
}

func TestReassociateEachNodeBecomesOneWrap(t *testing.T) {
	n, err := Reassociate(tree.Node(1, tree.Style{},
		tree.Node(2, tree.Style{}, tree.Atom("a")),
		tree.Node(3, tree.Style{}, tree.Atom("b")),
	), empty)
	if err != nil {
		t.Fatal(err)
	}
	if got := countKind(n, KindWrap); got != 3 {
		t.Fatalf("Wrap count = %d, want 3", got)
	}
}

func TestReassociateEmptyChildren(t *testing.T) {
	n, err := Reassociate(tree.Node(0, tree.Style{}), empty)
	if err != nil {
		t.Fatal(err)
	}
	var texts []string
	fragmentTexts(n, &texts)
	if len(texts) != 1 || texts[0] != "" {
		t.Fatalf("fragments = %v, want one empty atom", texts)
	}
}

func TestReassociateTrailingNewline(t *testing.T) {
	n, err := Reassociate(tree.Node(0, tree.Style{}, tree.Atom("a"), tree.Newline()), empty)
	if err != nil {
		t.Fatal(err)
	}
	var texts []string
	fragmentTexts(n, &texts)
	if len(texts) != 2 {
		t.Fatalf("fragments = %v, want 2 (a, then empty sentinel)", texts)
	}
}

func TestReassociateConsecutiveNewlines(t *testing.T) {
	n, err := Reassociate(tree.Node(0, tree.Style{},
		tree.Atom("a"), tree.Newline(), tree.Newline(), tree.Atom("b"),
	), empty)
	if err != nil {
		t.Fatal(err)
	}
	var texts []string
	fragmentTexts(n, &texts)
	if len(texts) != 3 {
		t.Fatalf("fragments = %v, want 3 (a, blank, b)", texts)
	}
	if texts[1] != "" {
		t.Fatalf("middle fragment = %q, want blank row sentinel", texts[1])
	}
}

func TestReassociateColumnsAreDenseDocumentOrder(t *testing.T) {
	n, err := Reassociate(tree.Node(0, tree.Style{},
		tree.Atom("a"), tree.SpacerWidth(1), tree.Atom("b"),
	), empty)
	if err != nil {
		t.Fatal(err)
	}
	var cols []int
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.IsFragment() {
			cols = append(cols, n.Column)
		}
		walk(n.Lhs)
		walk(n.Rhs)
		walk(n.Child)
	}
	walk(n)
	if len(cols) != 3 {
		t.Fatalf("columns = %v, want 3 entries", cols)
	}
}

func TestReassociateWrapIDsStartAtOne(t *testing.T) {
	n, err := Reassociate(tree.Node(1, tree.Style{}, tree.Atom("a")), empty)
	if err != nil {
		t.Fatal(err)
	}
	if n.ID != 1 {
		t.Fatalf("root wrap ID = %d, want 1", n.ID)
	}
}
