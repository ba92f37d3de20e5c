package layout

import (
	"github.com/sbcohen2000/raggedblocks/pkg/geom"
	"github.com/sbcohen2000/raggedblocks/pkg/reassoc"
	"github.com/sbcohen2000/raggedblocks/pkg/timetable"
)

// L1P ("Pebble") improves on Blocks by consulting a Timetable before
// stacking two lines: the padding contributed by wraps the two lines
// already share is never charged twice, so adjacent lines under a
// common ancestor sit closer together than Blocks would place them.
type L1P struct{}

// Name implements Algorithm.
func (L1P) Name() string { return "l1p" }

// Layout implements Algorithm.
func (L1P) Layout(n *reassoc.Node, s Settings) (Result, error) {
	tt, err := timetable.Build(n)
	if err != nil {
		return Result{}, err
	}
	bs := settingsOrDefault(s)
	b, err := layoutL1P(n, tt, bs.IdealLeading, bs.TranslateWraps)
	if err != nil {
		return Result{}, err
	}
	res := toResult(b)
	assignLineNumbers(n, res.Fragments)
	return res, nil
}

func layoutL1P(n *reassoc.Node, tt *timetable.Timetable, ideal float64, translateWraps bool) (box, error) {
	switch n.Kind {
	case reassoc.KindAtom, reassoc.KindSpacer:
		f := Fragment{Column: n.Column, Text: n.Text, Rect: n.Rect, IsSpacer: n.Kind == reassoc.KindSpacer}
		return box{rect: n.Rect, firstCol: n.Column, lastCol: n.Column, fragments: []Fragment{f}}, nil

	case reassoc.KindJoinH:
		lhs, err := layoutL1P(n.Lhs, tt, ideal, translateWraps)
		if err != nil {
			return box{}, err
		}
		rhs, err := layoutL1P(n.Rhs, tt, ideal, translateWraps)
		if err != nil {
			return box{}, err
		}
		rhs.translate(geom.Vector{X: lhs.rect.Right - rhs.rect.Left, Y: 0})
		return joinBoxes(lhs, rhs), nil

	case reassoc.KindJoinV:
		lhs, err := layoutL1P(n.Lhs, tt, ideal, translateWraps)
		if err != nil {
			return box{}, err
		}
		rhs, err := layoutL1P(n.Rhs, tt, ideal, translateWraps)
		if err != nil {
			return box{}, err
		}
		pa, pb := tt.SpaceBetween(lhs.lastCol, rhs.firstCol)
		last, first := lhs.fragments[len(lhs.fragments)-1].Rect, rhs.fragments[0].Rect
		shift := (last.Bottom + leadingGap(pa, pb, ideal)) - first.Top
		rhs.translate(geom.Vector{X: 0, Y: shift})
		return joinBoxes(lhs, rhs), nil

	case reassoc.KindWrap:
		child, err := layoutL1P(n.Child, tt, ideal, translateWraps)
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
