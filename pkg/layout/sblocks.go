package layout

import (
	"math"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
	"github.com/sbcohen2000/raggedblocks/pkg/reassoc"
	"github.com/sbcohen2000/raggedblocks/pkg/timetable"
)

// SBlocks is the sweep algorithm: where L1P and L1S only compare the
// single fragment at each end of a line break, SBlocks compares the
// whole horizontal profile of the two lines being joined, so a line
// with one unusually tall fragment doesn't force unrelated columns
// below it to drop further than they need to. It sweeps the fragments
// of the upper line left to right, tracking the lower line's required
// clearance over each overlapping horizontal extent — a direct stand-in
// for the spec's interval-tree-backed leading structure, using a linear
// scan since the fragment counts this engine targets don't warrant the
// extra structure.
type SBlocks struct{}

// Name implements Algorithm.
func (SBlocks) Name() string { return "sblocks" }

// Layout implements Algorithm.
func (SBlocks) Layout(n *reassoc.Node, s Settings) (Result, error) {
	tt, err := timetable.Build(n)
	if err != nil {
		return Result{}, err
	}
	bs := settingsOrDefault(s)
	b, err := layoutSBlocks(n, tt, bs.IdealLeading, bs.TranslateWraps)
	if err != nil {
		return Result{}, err
	}
	res := toResult(b)
	assignLineNumbers(n, res.Fragments)
	return res, nil
}

func layoutSBlocks(n *reassoc.Node, tt *timetable.Timetable, ideal float64, translateWraps bool) (box, error) {
	switch n.Kind {
	case reassoc.KindAtom, reassoc.KindSpacer:
		f := Fragment{Column: n.Column, Text: n.Text, Rect: n.Rect, IsSpacer: n.Kind == reassoc.KindSpacer}
		return box{rect: n.Rect, firstCol: n.Column, lastCol: n.Column, fragments: []Fragment{f}}, nil

	case reassoc.KindJoinH:
		lhs, err := layoutSBlocks(n.Lhs, tt, ideal, translateWraps)
		if err != nil {
			return box{}, err
		}
		rhs, err := layoutSBlocks(n.Rhs, tt, ideal, translateWraps)
		if err != nil {
			return box{}, err
		}
		rhs.translate(geom.Vector{X: lhs.rect.Right - rhs.rect.Left, Y: 0})
		return joinBoxes(lhs, rhs), nil

	case reassoc.KindJoinV:
		lhs, err := layoutSBlocks(n.Lhs, tt, ideal, translateWraps)
		if err != nil {
			return box{}, err
		}
		rhs, err := layoutSBlocks(n.Rhs, tt, ideal, translateWraps)
		if err != nil {
			return box{}, err
		}
		pa, pb := tt.SpaceBetween(lhs.lastCol, rhs.firstCol)
		shift := sweepShift(lhs.fragments, rhs.fragments) + leadingGap(pa, pb, ideal)
		rhs.translate(geom.Vector{X: 0, Y: shift})
		return joinBoxes(lhs, rhs), nil

	case reassoc.KindWrap:
		child, err := layoutSBlocks(n.Child, tt, ideal, translateWraps)
		if err != nil {
			return box{}, err
		}
		if translateWraps {
			child.translate(geom.Vector{X: n.Padding, Y: 0})
		}
		child.rect = child.rect.Inflate(n.Padding)
		child.wraps = append(child.wraps, WrapBox{ID: n.ID, Rect: child.rect, Style: n.Style, Padding: n.Padding})
		return child, nil

	default:
		return box{}, errUnknownKind(n.Kind)
	}
}

// sweepShift returns the minimum downward shift that clears every
// fragment of below from every horizontally-overlapping fragment of
// above, by sweeping below's fragments and querying above's profile
// over each one's horizontal extent.
func sweepShift(above, below []Fragment) float64 {
	shift := 0.0
	for _, b := range below {
		if b.IsSpacer {
			continue
		}
		clearance := math.Inf(-1)
		for _, a := range above {
			if a.IsSpacer {
				continue
			}
			if a.Rect.Right <= b.Rect.Left || b.Rect.Right <= a.Rect.Left {
				continue // no horizontal overlap
			}
			if a.Rect.Bottom > clearance {
				clearance = a.Rect.Bottom
			}
		}
		if math.IsInf(clearance, -1) {
			continue
		}
		if need := clearance - b.Rect.Top; need > shift {
			shift = need
		}
	}
	return shift
}
