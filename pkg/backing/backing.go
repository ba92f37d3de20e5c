// Package backing implements the positional companion to a Timetable
// (spec §3.3): an append-only store of positioned rectangles, indexed by
// the same dense fragment Column used throughout the reassociated tree,
// supporting O(log n) translation of any contiguous index range.
//
// Rocks-family layouts (L1S, L1S+) append one entry per fragment in
// document order as they stack lines, then retroactively translate a
// whole finished line (a contiguous run of columns) when a later sibling
// forces it to shift — the operation this package is built around.
package backing

import (
	"fmt"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
)

// entry is one appended rectangle, stored net of the translation already
// accumulated at its index when it was appended.
type entry struct {
	rect   geom.Rect
	spacer bool
}

// Backing is a chunked store of positioned rectangles. Internally,
// pending translations are kept in a Fenwick (binary indexed) tree of
// vectors supporting O(log n) range-add and point-query; this is the
// concrete data structure realizing the "chunked" efficient contiguous-
// range translation the store needs, since real translate calls are
// overwhelmingly range-aligned to whole finished lines rather than
// single entries.
type Backing struct {
	entries []entry
	fenwick []geom.Vector // 1-indexed Fenwick tree over len(entries)
}

// New returns an empty Backing.
func New() *Backing {
	return &Backing{fenwick: []geom.Vector{{}}}
}

// Len returns the number of entries appended so far.
func (b *Backing) Len() int { return len(b.entries) }

// AppendRect appends a positioned rectangle and returns its index.
func (b *Backing) AppendRect(r geom.Rect) int {
	return b.append(entry{rect: r})
}

// AppendSpacer appends a spacer placeholder and returns its index. Spacer
// entries carry a rect (for width bookkeeping) but are never outlined by
// the polygon kernel.
func (b *Backing) AppendSpacer(r geom.Rect) int {
	return b.append(entry{rect: r, spacer: true})
}

func (b *Backing) append(e entry) int {
	idx := len(b.entries)
	// Fenwick node i covers positions (i - i&-i, i]; seed the new node with
	// the range-adds already recorded at the earlier positions it covers.
	i := idx + 1
	node := b.fenwickSum(idx - 1).Plus(b.fenwickSum(i - (i & -i) - 1).Scale(-1))
	b.fenwick = append(b.fenwick, node)
	// Store the rect net of the translation already accumulated at idx, so
	// only TranslateRange calls made after this append move the entry.
	e.rect = e.rect.Translate(b.fenwickSum(idx).Scale(-1))
	b.entries = append(b.entries, e)
	return idx
}

// IsSpacer reports whether the entry at idx is a spacer placeholder.
func (b *Backing) IsSpacer(idx int) bool { return b.entries[idx].spacer }

// fenwickAdd adds v at position i (0-indexed) in the Fenwick tree.
func (b *Backing) fenwickAdd(i int, v geom.Vector) {
	for i++; i < len(b.fenwick); i += i & (-i) {
		b.fenwick[i] = b.fenwick[i].Plus(v)
	}
}

// fenwickSum returns the prefix sum of translations for indices [0, i] (0-indexed, inclusive).
func (b *Backing) fenwickSum(i int) geom.Vector {
	var sum geom.Vector
	for i++; i > 0; i -= i & (-i) {
		sum = sum.Plus(b.fenwick[i])
	}
	return sum
}

// TranslateRange translates every entry in the contiguous index range
// [lo, hi) by v. Panics if the range is out of bounds, matching the
// teacher's convention of panicking on invariant violations that
// indicate a caller bug rather than bad input data.
func (b *Backing) TranslateRange(lo, hi int, v geom.Vector) {
	if lo < 0 || hi > len(b.entries) || lo > hi {
		panic(fmt.Sprintf("backing: translate range [%d,%d) out of bounds (len %d)", lo, hi, len(b.entries)))
	}
	if lo == hi {
		return
	}
	b.fenwickAdd(lo, v)
	if hi < len(b.entries) {
		b.fenwickAdd(hi, v.Scale(-1))
	}
}

// Lookup returns the current (translated) rect at idx.
func (b *Backing) Lookup(idx int) geom.Rect {
	return b.entries[idx].rect.Translate(b.fenwickSum(idx))
}

// Region is a contiguous run of Backing indices together with the wrap
// nesting depth shared by every fragment in that run (spec §3.4).
// Regions compose by Join when they are adjacent, which is how a Wrap's
// full outline range is assembled from its children's regions.
type Region struct {
	Begin, End int
	Depth      int
}

// Len returns the number of Backing indices spanned by r.
func (r Region) Len() int { return r.End - r.Begin }

// Join composes two adjacent regions (a.End == b.Begin) into the region
// spanning both. The joined depth is the shallower (minimum) of the two,
// since a composite region is only as deeply nested as its least-nested
// member — a Wrap enclosing the pair sees through to whichever side has
// fewer wraps already applied.
func Join(a, b Region) (Region, error) {
	if a.End != b.Begin {
		return Region{}, fmt.Errorf("backing: cannot join non-adjacent regions [%d,%d) and [%d,%d)", a.Begin, a.End, b.Begin, b.End)
	}
	depth := a.Depth
	if b.Depth < depth {
		depth = b.Depth
	}
	return Region{Begin: a.Begin, End: b.End, Depth: depth}, nil
}
