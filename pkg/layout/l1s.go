package layout

import (
	"github.com/sbcohen2000/raggedblocks/pkg/backing"
	"github.com/sbcohen2000/raggedblocks/pkg/geom"
	"github.com/sbcohen2000/raggedblocks/pkg/reassoc"
	"github.com/sbcohen2000/raggedblocks/pkg/timetable"
)

// L1S ("Rocks") is L1P's leading rule driven by a Backing store instead
// of direct subtree mutation: every fragment is appended to the Backing
// once, in document order, and every later reposition of an already-
// placed line is a single ranged translate rather than a walk over that
// line's fragments. The Timetable's column indices and the Backing's
// append order coincide exactly (both proceed left-to-right over the
// same fragment sequence), so a Region's [Begin, End) is simultaneously
// a Backing index range and a Timetable column range.
type L1S struct{}

// Name implements Algorithm.
func (L1S) Name() string { return "l1s" }

// Layout implements Algorithm.
func (L1S) Layout(n *reassoc.Node, s Settings) (Result, error) {
	tt, err := timetable.Build(n)
	if err != nil {
		return Result{}, err
	}
	bk := backing.New()
	var meta []fragMeta
	bs := settingsOrDefault(s)
	root, err := layoutL1S(n, tt, bk, &meta, bs.IdealLeading, bs.TranslateWraps)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Fragments: collectFragments(bk, meta),
		Wraps:     root.wraps,
		Bounds:    root.rect,
	}
	assignLineNumbers(n, res.Fragments)
	return res, nil
}

// fragMeta is the per-column data the Backing itself doesn't carry.
type fragMeta struct {
	text     string
	isSpacer bool
}

func collectFragments(bk *backing.Backing, meta []fragMeta) []Fragment {
	out := make([]Fragment, bk.Len())
	for i := range out {
		out[i] = Fragment{Column: i, Text: meta[i].text, Rect: bk.Lookup(i), IsSpacer: meta[i].isSpacer}
	}
	return out
}

// rocksBox is the per-subtree accounting L1S/L1S+ carry during
// recursion: a Backing region plus a cached bounding rect, kept in sync
// so that repositioning never requires re-deriving the bound from the
// fragments it covers.
type rocksBox struct {
	region backing.Region
	rect   geom.Rect
	wraps  []WrapBox
}

func layoutL1S(n *reassoc.Node, tt *timetable.Timetable, bk *backing.Backing, meta *[]fragMeta, ideal float64, translateWraps bool) (rocksBox, error) {
	switch n.Kind {
	case reassoc.KindAtom, reassoc.KindSpacer:
		var idx int
		if n.Kind == reassoc.KindSpacer {
			idx = bk.AppendSpacer(n.Rect)
		} else {
			idx = bk.AppendRect(n.Rect)
		}
		*meta = append(*meta, fragMeta{text: n.Text, isSpacer: n.Kind == reassoc.KindSpacer})
		return rocksBox{region: backing.Region{Begin: idx, End: idx + 1, Depth: 0}, rect: n.Rect}, nil

	case reassoc.KindJoinH:
		lhs, err := layoutL1S(n.Lhs, tt, bk, meta, ideal, translateWraps)
		if err != nil {
			return rocksBox{}, err
		}
		rhs, err := layoutL1S(n.Rhs, tt, bk, meta, ideal, translateWraps)
		if err != nil {
			return rocksBox{}, err
		}
		v := geom.Vector{X: lhs.rect.Right - rhs.rect.Left, Y: 0}
		bk.TranslateRange(rhs.region.Begin, rhs.region.End, v)
		rhs.rect = rhs.rect.Translate(v)
		translateWrapBoxes(rhs.wraps, v)
		region, err := backing.Join(lhs.region, rhs.region)
		if err != nil {
			return rocksBox{}, err
		}
		return rocksBox{region: region, rect: lhs.rect.Union(rhs.rect), wraps: append(lhs.wraps, rhs.wraps...)}, nil

	case reassoc.KindJoinV:
		lhs, err := layoutL1S(n.Lhs, tt, bk, meta, ideal, translateWraps)
		if err != nil {
			return rocksBox{}, err
		}
		rhs, err := layoutL1S(n.Rhs, tt, bk, meta, ideal, translateWraps)
		if err != nil {
			return rocksBox{}, err
		}
		pa, pb := tt.SpaceBetween(lhs.region.End-1, rhs.region.Begin)
		last, first := bk.Lookup(lhs.region.End-1), bk.Lookup(rhs.region.Begin)
		v := geom.Vector{X: 0, Y: (last.Bottom + leadingGap(pa, pb, ideal)) - first.Top}
		bk.TranslateRange(rhs.region.Begin, rhs.region.End, v)
		rhs.rect = rhs.rect.Translate(v)
		translateWrapBoxes(rhs.wraps, v)
		region, err := backing.Join(lhs.region, rhs.region)
		if err != nil {
			return rocksBox{}, err
		}
		return rocksBox{region: region, rect: lhs.rect.Union(rhs.rect), wraps: append(lhs.wraps, rhs.wraps...)}, nil

	case reassoc.KindWrap:
		child, err := layoutL1S(n.Child, tt, bk, meta, ideal, translateWraps)
		if err != nil {
			return rocksBox{}, err
		}
		if translateWraps {
			v := geom.Vector{X: n.Padding, Y: 0}
			bk.TranslateRange(child.region.Begin, child.region.End, v)
			child.rect = child.rect.Translate(v)
			translateWrapBoxes(child.wraps, v)
		}
		child.rect = child.rect.Inflate(n.Padding)
		child.region.Depth++
		child.wraps = append(child.wraps, WrapBox{ID: n.ID, Rect: child.rect, Style: n.Style, Padding: n.Padding})
		return child, nil

	default:
		return rocksBox{}, errUnknownKind(n.Kind)
	}
}

// translateWrapBoxes shifts the reported Rect of every already-
// finalized WrapBox in place, keeping a Wrap's box consistent with
// later translations of the range it covers.
func translateWrapBoxes(wraps []WrapBox, v geom.Vector) {
	for i := range wraps {
		wraps[i].Rect = wraps[i].Rect.Translate(v)
	}
}
