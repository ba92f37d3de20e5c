// Package timetable builds the per-fragment, per-depth padding table
// described in spec §3.5 and §4.2: a dense table of cumulative padding and
// wrap identity, keyed by fragment column, that lets the Rocks layouts
// (L1S, L1S+) answer "how much padding separates these two fragments"
// in O(D) time by peeling shared ancestor wraps from the outside in.
package timetable

import (
	"fmt"

	"github.com/sbcohen2000/raggedblocks/pkg/reassoc"
)

// Cell is one entry in a fragment's padding stack: the uid of the wrap
// that produced it, and the cumulative padding from the fragment out
// through every enclosing wrap up to and including that one.
type Cell struct {
	UID     int
	Padding float64
}

// baseCell is the implicit row-0 cell: no wrap, no padding.
var baseCell = Cell{UID: 0, Padding: 0}

// Timetable holds one cell stack per fragment column. Columns are dense
// 0..N-1, matching the Column values assigned by package reassoc.
type Timetable struct {
	columns  [][]Cell
	isSpacer []bool
	maxDepth int
}

// NumColumns returns the number of fragment columns in the table.
func (tt *Timetable) NumColumns() int { return len(tt.columns) }

// MaxDepth returns the deepest wrap-nesting count in the whole tree.
func (tt *Timetable) MaxDepth() int { return tt.maxDepth }

// IsSpacer reports whether column is marked as a Spacer (no padding).
func (tt *Timetable) IsSpacer(column int) bool { return tt.isSpacer[column] }

// Cells returns the (already depth-padded) cell stack for column, ordered
// from innermost wrap (index 0) to outermost/root (last index). Spacer
// columns always return nil.
func (tt *Timetable) Cells(column int) []Cell { return tt.columns[column] }

// Build walks root in pre-order-with-post-order-fill and constructs its
// Timetable, per spec §4.2.
func Build(root *reassoc.Node) (*Timetable, error) {
	tt := &Timetable{}
	if _, _, _, err := tt.walk(root); err != nil {
		return nil, err
	}
	tt.padAllToMaxDepth()
	return tt, nil
}

// ensureColumn grows the columns/isSpacer slices to include idx.
func (tt *Timetable) ensureColumn(idx int) {
	for len(tt.columns) <= idx {
		tt.columns = append(tt.columns, nil)
		tt.isSpacer = append(tt.isSpacer, false)
	}
}

// walk returns [begin, end) of the column range spanned by n, and the
// max stack depth currently recorded across any non-Spacer column in
// that range (0 for fresh fragments; spec's informal "d").
func (tt *Timetable) walk(n *reassoc.Node) (begin, end, depth int, err error) {
	switch n.Kind {
	case reassoc.KindAtom:
		tt.ensureColumn(n.Column)
		return n.Column, n.Column + 1, len(tt.columns[n.Column]), nil

	case reassoc.KindSpacer:
		tt.ensureColumn(n.Column)
		tt.isSpacer[n.Column] = true
		return n.Column, n.Column + 1, 0, nil

	case reassoc.KindJoinH, reassoc.KindJoinV:
		bl, el, dl, err := tt.walk(n.Lhs)
		if err != nil {
			return 0, 0, 0, err
		}
		br, er, dr, err := tt.walk(n.Rhs)
		if err != nil {
			return 0, 0, 0, err
		}
		if el != br {
			return 0, 0, 0, fmt.Errorf("timetable: region join across non-adjacent ranges [%d,%d) and [%d,%d)", bl, el, br, er)
		}
		d := dl
		if dr > d {
			d = dr
		}
		return bl, er, d, nil

	case reassoc.KindWrap:
		b, e, d, err := tt.walk(n.Child)
		if err != nil {
			return 0, 0, 0, err
		}
		touched := false
		for col := b; col < e; col++ {
			if tt.isSpacer[col] {
				continue
			}
			touched = true
			tt.padColumnTo(col, d)
			top := tt.topCell(col)
			tt.columns[col] = append(tt.columns[col], Cell{UID: n.ID, Padding: top.Padding + n.Padding})
		}
		if !touched {
			// Wrap containing no non-spacer fragments: yields no outline
			// and contributes no cell (spec §7).
			return b, e, d, nil
		}
		return b, e, d + 1, nil

	default:
		return 0, 0, 0, fmt.Errorf("timetable: unknown reassoc kind %v", n.Kind)
	}
}

// topCell returns the current topmost (most recently appended) cell of
// column, or the implicit row-0 cell if it has none yet.
func (tt *Timetable) topCell(column int) Cell {
	cells := tt.columns[column]
	if len(cells) == 0 {
		return baseCell
	}
	return cells[len(cells)-1]
}

// padColumnTo extends column up to length d by repeating its topmost
// cell (or the implicit base cell if it has none), per spec §4.2 step 2.
func (tt *Timetable) padColumnTo(column, d int) {
	for len(tt.columns[column]) < d {
		tt.columns[column] = append(tt.columns[column], tt.topCell(column))
	}
}

// padAllToMaxDepth pads every non-Spacer column up to the global max
// depth, per spec §4.2's final pass.
func (tt *Timetable) padAllToMaxDepth() {
	max := 0
	for i, spacer := range tt.isSpacer {
		if spacer {
			continue
		}
		if n := len(tt.columns[i]); n > max {
			max = n
		}
	}
	tt.maxDepth = max
	for i, spacer := range tt.isSpacer {
		if spacer {
			continue
		}
		tt.padColumnTo(i, max)
	}
}

// SpaceBetween returns the padding pair (pa, pb) required around
// fragments a and b, per spec §4.2: starting from the outermost (root)
// cell of each column, peel cells with matching uid (shared ancestor
// wraps) until the uids diverge or one side is exhausted. Spacer columns
// never separate anything: (0, 0).
func (tt *Timetable) SpaceBetween(a, b int) (float64, float64) {
	if tt.isSpacer[a] || tt.isSpacer[b] {
		return 0, 0
	}
	ca, cb := tt.columns[a], tt.columns[b]
	i, j := len(ca)-1, len(cb)-1
	for i >= 0 && j >= 0 && ca[i].UID == cb[j].UID {
		i--
		j--
	}
	if i < 0 || j < 0 {
		return 0, 0
	}
	return ca[i].Padding, cb[j].Padding
}
