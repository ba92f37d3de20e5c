package layout

import (
	"github.com/sbcohen2000/raggedblocks/pkg/backing"
	"github.com/sbcohen2000/raggedblocks/pkg/geom"
	"github.com/sbcohen2000/raggedblocks/pkg/polygon"
	"github.com/sbcohen2000/raggedblocks/pkg/reassoc"
	"github.com/sbcohen2000/raggedblocks/pkg/timetable"
	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

// L1SPlus extends L1S with a rectilinear outline per Wrap (spec §4.6):
// once every fragment is finally positioned, each Wrap's region of the
// Backing is unioned into a polygon and, unless disabled, simplified —
// constrained so the simplification never lets one Wrap's outline
// intrude on a non-overlapping sibling's territory.
type L1SPlus struct{}

// Name implements Algorithm.
func (L1SPlus) Name() string { return "l1s+" }

// wrapRecord is the internal, not-yet-outlined bookkeeping for one Wrap
// during L1S+'s layout pass; it is finalized into a WrapBox only after
// every fragment's position has stabilized.
type wrapRecord struct {
	id      int
	region  backing.Region
	rect    geom.Rect
	style   tree.Style
	padding float64
}

// Layout implements Algorithm.
func (L1SPlus) Layout(n *reassoc.Node, s Settings) (Result, error) {
	bs := settingsOrDefault(s)

	tt, err := timetable.Build(n)
	if err != nil {
		return Result{}, err
	}
	bk := backing.New()
	var meta []fragMeta
	var records []wrapRecord
	root, err := layoutL1SPlus(n, tt, bk, &meta, &records, bs.IdealLeading, bs.TranslateWraps)
	if err != nil {
		return Result{}, err
	}

	wraps := make([]WrapBox, len(records))
	for i, rec := range records {
		outline := wrapOutline(bk, meta, tt, rec.id, rec.region)
		if bs.SimplifyOutlines {
			keepOutside := siblingOutlines(bk, meta, tt, records, i)
			for j, p := range outline {
				outline[j] = polygon.Simplify(p, nil, keepOutside)
			}
		}
		wraps[i] = WrapBox{ID: rec.id, Rect: rec.rect, Style: rec.style, Padding: rec.padding, Outline: outline}
	}

	res := Result{Fragments: collectFragments(bk, meta), Wraps: wraps, Bounds: root.rect}
	assignLineNumbers(n, res.Fragments)
	return res, nil
}

// wrapOutline unions the final, padding-inflated rects of every
// non-Spacer fragment under a Wrap (spec §4.4): each fragment rect is
// inflated by the cumulative padding the Timetable recorded for wrapID
// at that fragment's column, so the outline hugs the wrap's padded
// boundary rather than the bare text.
func wrapOutline(bk *backing.Backing, meta []fragMeta, tt *timetable.Timetable, wrapID int, region backing.Region) []polygon.Path {
	var rects []geom.Rect
	for i := region.Begin; i < region.End; i++ {
		if meta[i].isSpacer {
			continue
		}
		rects = append(rects, bk.Lookup(i).Inflate(cumulativePadding(tt, i, wrapID)))
	}
	return polygon.UnionRects(rects)
}

// cumulativePadding returns the padding accumulated from column's
// innermost wrap out through wrapID, or 0 if wrapID never encloses
// column (e.g. a Wrap with no non-Spacer descendants).
func cumulativePadding(tt *timetable.Timetable, column, wrapID int) float64 {
	for _, cell := range tt.Cells(column) {
		if cell.UID == wrapID {
			return cell.Padding
		}
	}
	return 0
}

func siblingOutlines(bk *backing.Backing, meta []fragMeta, tt *timetable.Timetable, records []wrapRecord, self int) []polygon.Path {
	var out []polygon.Path
	for i, rec := range records {
		if i == self || regionsOverlap(records[self].region, rec.region) {
			continue
		}
		out = append(out, wrapOutline(bk, meta, tt, rec.id, rec.region)...)
	}
	return out
}

func regionsOverlap(a, b backing.Region) bool {
	return !(a.End <= b.Begin || b.End <= a.Begin)
}

type rocksPlusBox struct {
	region backing.Region
	rect   geom.Rect
}

func layoutL1SPlus(n *reassoc.Node, tt *timetable.Timetable, bk *backing.Backing, meta *[]fragMeta, records *[]wrapRecord, ideal float64, translateWraps bool) (rocksPlusBox, error) {
	switch n.Kind {
	case reassoc.KindAtom, reassoc.KindSpacer:
		var idx int
		if n.Kind == reassoc.KindSpacer {
			idx = bk.AppendSpacer(n.Rect)
		} else {
			idx = bk.AppendRect(n.Rect)
		}
		*meta = append(*meta, fragMeta{text: n.Text, isSpacer: n.Kind == reassoc.KindSpacer})
		return rocksPlusBox{region: backing.Region{Begin: idx, End: idx + 1}, rect: n.Rect}, nil

	case reassoc.KindJoinH:
		lhs, err := layoutL1SPlus(n.Lhs, tt, bk, meta, records, ideal, translateWraps)
		if err != nil {
			return rocksPlusBox{}, err
		}
		rhs, err := layoutL1SPlus(n.Rhs, tt, bk, meta, records, ideal, translateWraps)
		if err != nil {
			return rocksPlusBox{}, err
		}
		v := geom.Vector{X: lhs.rect.Right - rhs.rect.Left, Y: 0}
		bk.TranslateRange(rhs.region.Begin, rhs.region.End, v)
		rhs.rect = rhs.rect.Translate(v)
		translateRecordsInRange(*records, rhs.region.Begin, rhs.region.End, v)
		region, err := backing.Join(lhs.region, rhs.region)
		if err != nil {
			return rocksPlusBox{}, err
		}
		return rocksPlusBox{region: region, rect: lhs.rect.Union(rhs.rect)}, nil

	case reassoc.KindJoinV:
		lhs, err := layoutL1SPlus(n.Lhs, tt, bk, meta, records, ideal, translateWraps)
		if err != nil {
			return rocksPlusBox{}, err
		}
		rhs, err := layoutL1SPlus(n.Rhs, tt, bk, meta, records, ideal, translateWraps)
		if err != nil {
			return rocksPlusBox{}, err
		}
		pa, pb := tt.SpaceBetween(lhs.region.End-1, rhs.region.Begin)
		last, first := bk.Lookup(lhs.region.End-1), bk.Lookup(rhs.region.Begin)
		v := geom.Vector{X: 0, Y: (last.Bottom + leadingGap(pa, pb, ideal)) - first.Top}
		bk.TranslateRange(rhs.region.Begin, rhs.region.End, v)
		rhs.rect = rhs.rect.Translate(v)
		translateRecordsInRange(*records, rhs.region.Begin, rhs.region.End, v)
		region, err := backing.Join(lhs.region, rhs.region)
		if err != nil {
			return rocksPlusBox{}, err
		}
		return rocksPlusBox{region: region, rect: lhs.rect.Union(rhs.rect)}, nil

	case reassoc.KindWrap:
		child, err := layoutL1SPlus(n.Child, tt, bk, meta, records, ideal, translateWraps)
		if err != nil {
			return rocksPlusBox{}, err
		}
		if translateWraps {
			v := geom.Vector{X: n.Padding, Y: 0}
			bk.TranslateRange(child.region.Begin, child.region.End, v)
			child.rect = child.rect.Translate(v)
			translateRecordsInRange(*records, child.region.Begin, child.region.End, v)
		}
		child.rect = child.rect.Inflate(n.Padding)
		*records = append(*records, wrapRecord{id: n.ID, region: child.region, rect: child.rect, style: n.Style, padding: n.Padding})
		return child, nil

	default:
		return rocksPlusBox{}, errUnknownKind(n.Kind)
	}
}

// translateRecordsInRange shifts the cached rect of every already-
// recorded wrap whose region lies within [lo, hi) by v, keeping
// finalized Wrap rects consistent with later translations of their
// contents (a Wrap closes over its child before the recursion returns,
// so its own rect must move whenever an ancestor join shifts that
// range again).
func translateRecordsInRange(records []wrapRecord, lo, hi int, v geom.Vector) {
	for i := range records {
		if records[i].region.Begin >= lo && records[i].region.End <= hi {
			records[i].rect = records[i].rect.Translate(v)
		}
	}
}
