package layout

import (
	"github.com/sbcohen2000/raggedblocks/pkg/geom"
	"github.com/sbcohen2000/raggedblocks/pkg/reassoc"
)

// Blocks is the naive rectangular baseline: it stacks lines and joins
// columns edge-to-edge, inflating each Wrap's own box by its own
// padding, with no attempt to deduplicate padding shared between
// siblings under a common ancestor. It is the simplest algorithm to
// read and the one the others are measured against.
type Blocks struct{}

// Name implements Algorithm.
func (Blocks) Name() string { return "blocks" }

// Layout implements Algorithm.
func (Blocks) Layout(n *reassoc.Node, s Settings) (Result, error) {
	b, err := layoutBlocks(n, settingsOrDefault(s).TranslateWraps)
	if err != nil {
		return Result{}, err
	}
	res := toResult(b)
	assignLineNumbers(n, res.Fragments)
	return res, nil
}

func layoutBlocks(n *reassoc.Node, translateWraps bool) (box, error) {
	switch n.Kind {
	case reassoc.KindAtom, reassoc.KindSpacer:
		f := Fragment{Column: n.Column, Text: n.Text, Rect: n.Rect, IsSpacer: n.Kind == reassoc.KindSpacer}
		return box{rect: n.Rect, firstCol: n.Column, lastCol: n.Column, fragments: []Fragment{f}}, nil

	case reassoc.KindJoinH:
		lhs, err := layoutBlocks(n.Lhs, translateWraps)
		if err != nil {
			return box{}, err
		}
		rhs, err := layoutBlocks(n.Rhs, translateWraps)
		if err != nil {
			return box{}, err
		}
		rhs.translate(geom.Vector{X: lhs.rect.Right - rhs.rect.Left, Y: 0})
		return joinBoxes(lhs, rhs), nil

	case reassoc.KindJoinV:
		lhs, err := layoutBlocks(n.Lhs, translateWraps)
		if err != nil {
			return box{}, err
		}
		rhs, err := layoutBlocks(n.Rhs, translateWraps)
		if err != nil {
			return box{}, err
		}
		rhs.translate(geom.Vector{X: 0, Y: lhs.rect.Bottom - rhs.rect.Top})
		return joinBoxes(lhs, rhs), nil

	case reassoc.KindWrap:
		child, err := layoutBlocks(n.Child, translateWraps)
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

// joinBoxes merges two already-positioned sibling boxes into one,
// preserving document order in both Fragments and Wraps and the
// leftmost/rightmost fragment columns.
func joinBoxes(lhs, rhs box) box {
	return box{
		rect:      lhs.rect.Union(rhs.rect),
		firstCol:  lhs.firstCol,
		lastCol:   rhs.lastCol,
		fragments: append(append([]Fragment{}, lhs.fragments...), rhs.fragments...),
		wraps:     append(append([]WrapBox{}, lhs.wraps...), rhs.wraps...),
	}
}

func errUnknownKind(k reassoc.Kind) error {
	return &unknownKindError{k: k}
}

type unknownKindError struct{ k reassoc.Kind }

func (e *unknownKindError) Error() string { return "layout: unknown reassoc kind " + e.k.String() }
