package layout

import (
	"testing"

	"github.com/sbcohen2000/raggedblocks/pkg/reassoc"
	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

var cellMeasurer = tree.NewMonospaceMeasurer(1, 1)

// build measures and reassociates tr, fatal-ing the test on error.
func build(t *testing.T, tr tree.Tree) *reassoc.Node {
	t.Helper()
	measured := tree.MeasureTree(tr, cellMeasurer)
	n, err := reassoc.Reassociate(measured, tree.Atom(""))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

// fragmentByText returns the first fragment with the given text, for assertions that don't want to hardcode result ordering.
func fragmentByText(fragments []Fragment, text string) (Fragment, bool) {
	for _, f := range fragments {
		if f.Text == text {
			return f, true
		}
	}
	return Fragment{}, false
}
