// Package polygon implements the rectilinear polygon kernel used to
// outline a Wrap's enclosed region (spec §4.6): rectangle union into
// closed boundary paths, point containment, rectangle/path intersection
// area, inward offsetting, and iterative simplification.
//
// Every Path is a closed rectilinear polygon: an ordered vertex list
// with an implicit edge from the last vertex back to the first, and
// every edge either horizontal or vertical. Orientation is internally
// consistent (see Orient) rather than tied to screen handedness; callers
// never need to reason about it directly.
package polygon

import (
	"context"
	"math"
	"sort"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
)

// Path is a closed rectilinear polygon boundary.
type Path []geom.Point

// Outcome reports whether a context-aware operation ran to completion.
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeAborted
)

// UnionRects merges a set of axis-aligned rectangles into the closed
// boundary paths of their union, via a coordinate-compressed sweep: the
// distinct x/y coordinates of the input rects partition the plane into a
// grid, each cell is marked covered or not, and the boundary between
// covered and uncovered cells is traced into cycles and oriented CCW.
func UnionRects(rects []geom.Rect) []Path {
	if len(rects) == 0 {
		return nil
	}
	xs := sortedAxis(rects, func(r geom.Rect) (float64, float64) { return r.Left, r.Right })
	ys := sortedAxis(rects, func(r geom.Rect) (float64, float64) { return r.Top, r.Bottom })
	nx, ny := len(xs)-1, len(ys)-1
	if nx <= 0 || ny <= 0 {
		return nil
	}
	xi, yi := indexOf(xs), indexOf(ys)

	covered := make([][]bool, nx)
	for i := range covered {
		covered[i] = make([]bool, ny)
	}
	for _, r := range rects {
		if r.Empty() {
			continue
		}
		i0, i1 := xi[r.Left], xi[r.Right]
		j0, j1 := yi[r.Top], yi[r.Bottom]
		for i := i0; i < i1; i++ {
			for j := j0; j < j1; j++ {
				covered[i][j] = true
			}
		}
	}
	return traceBoundaries(covered, xs, ys)
}

func sortedAxis(rects []geom.Rect, pick func(geom.Rect) (float64, float64)) []float64 {
	seen := map[float64]struct{}{}
	for _, r := range rects {
		a, b := pick(r)
		seen[a] = struct{}{}
		seen[b] = struct{}{}
	}
	out := make([]float64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

func indexOf(vals []float64) map[float64]int {
	m := make(map[float64]int, len(vals))
	for i, v := range vals {
		m[v] = i
	}
	return m
}

// traceBoundaries collects the unit edges bordering the covered/
// uncovered boundary of the grid, links them into cycles, and orients
// each cycle consistently.
func traceBoundaries(covered [][]bool, xs, ys []float64) []Path {
	nx, ny := len(covered), len(covered[0])
	adj := map[geom.Point][]geom.Point{}
	addEdge := func(a, b geom.Point) {
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	isCovered := func(i, j int) bool {
		if i < 0 || i >= nx || j < 0 || j >= ny {
			return false
		}
		return covered[i][j]
	}

	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if !covered[i][j] {
				continue
			}
			// left edge
			if !isCovered(i-1, j) {
				addEdge(geom.Point{X: xs[i], Y: ys[j]}, geom.Point{X: xs[i], Y: ys[j+1]})
			}
			// right edge
			if !isCovered(i+1, j) {
				addEdge(geom.Point{X: xs[i+1], Y: ys[j]}, geom.Point{X: xs[i+1], Y: ys[j+1]})
			}
			// top edge
			if !isCovered(i, j-1) {
				addEdge(geom.Point{X: xs[i], Y: ys[j]}, geom.Point{X: xs[i+1], Y: ys[j]})
			}
			// bottom edge
			if !isCovered(i, j+1) {
				addEdge(geom.Point{X: xs[i], Y: ys[j+1]}, geom.Point{X: xs[i+1], Y: ys[j+1]})
			}
		}
	}

	visited := map[[2]geom.Point]bool{}
	var paths []Path
	for start, neighbors := range adj {
		for _, n := range neighbors {
			key := edgeKey(start, n)
			if visited[key] {
				continue
			}
			path := tracePath(adj, visited, start, n)
			if len(path) >= 3 {
				paths = append(paths, Orient(path, true))
			}
		}
	}
	return paths
}

func edgeKey(a, b geom.Point) [2]geom.Point {
	if a.X < b.X || (a.X == b.X && a.Y < b.Y) {
		return [2]geom.Point{a, b}
	}
	return [2]geom.Point{b, a}
}

func tracePath(adj map[geom.Point][]geom.Point, visited map[[2]geom.Point]bool, start, second geom.Point) Path {
	path := Path{start}
	prev, cur := start, second
	for {
		visited[edgeKey(prev, cur)] = true
		path = append(path, cur)
		if cur == start {
			path = path[:len(path)-1]
			return path
		}
		next, ok := pickNext(adj[cur], prev, visited, cur)
		if !ok {
			return path
		}
		prev, cur = cur, next
	}
}

// pickNext chooses the unvisited neighbor of cur to continue a trace
// toward, preferring one other than an immediate backtrack to prev.
func pickNext(neighbors []geom.Point, prev geom.Point, visited map[[2]geom.Point]bool, cur geom.Point) (geom.Point, bool) {
	for _, n := range neighbors {
		if n == prev {
			continue
		}
		if !visited[edgeKey(cur, n)] {
			return n, true
		}
	}
	for _, n := range neighbors {
		if !visited[edgeKey(cur, n)] {
			return n, true
		}
	}
	return geom.Point{}, false
}

// signedArea returns twice the shoelace signed area of path in the
// y-down coordinate convention used throughout this module.
func signedArea(path Path) float64 {
	var sum float64
	n := len(path)
	for i := 0; i < n; i++ {
		a, b := path[i], path[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// Orient returns path re-ordered (reversed if necessary) so that its
// signed area has the sign conventionally treated as CCW by this
// package: negative, under the y-down coordinate convention (spec's
// "CCW" as seen on screen, where y grows downward, is the mirror image
// of mathematical CCW). If ccw is false, the opposite orientation is
// returned instead.
func Orient(path Path, ccw bool) Path {
	area := signedArea(path)
	wantNegative := ccw
	isNegative := area < 0
	if isNegative == wantNegative {
		return path
	}
	rev := make(Path, len(path))
	for i, p := range path {
		rev[len(path)-1-i] = p
	}
	return rev
}

// PointInPath reports whether pt lies inside path, using the classic
// even-odd ray-casting rule (PNPOLY): a half-open test on each edge's y
// extent avoids double-counting rays that pass exactly through a shared
// vertex (a "cusp").
func PointInPath(pt geom.Point, path Path) bool {
	inside := false
	n := len(path)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := path[i], path[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			xCross := (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// IntersectionArea returns the area of r intersected with the region
// enclosed by path, via Sutherland-Hodgman clipping against r's four
// half-planes followed by the shoelace formula.
func IntersectionArea(r geom.Rect, path Path) float64 {
	clipped := Path(path)
	clipped = clipHalfPlane(clipped, func(p geom.Point) bool { return p.X >= r.Left }, func(a, b geom.Point) geom.Point {
		return lerpX(a, b, r.Left)
	})
	clipped = clipHalfPlane(clipped, func(p geom.Point) bool { return p.X <= r.Right }, func(a, b geom.Point) geom.Point {
		return lerpX(a, b, r.Right)
	})
	clipped = clipHalfPlane(clipped, func(p geom.Point) bool { return p.Y >= r.Top }, func(a, b geom.Point) geom.Point {
		return lerpY(a, b, r.Top)
	})
	clipped = clipHalfPlane(clipped, func(p geom.Point) bool { return p.Y <= r.Bottom }, func(a, b geom.Point) geom.Point {
		return lerpY(a, b, r.Bottom)
	})
	if len(clipped) < 3 {
		return 0
	}
	return math.Abs(signedArea(clipped)) / 2
}

func lerpX(a, b geom.Point, x float64) geom.Point {
	if a.X == b.X {
		return geom.Point{X: x, Y: a.Y}
	}
	t := (x - a.X) / (b.X - a.X)
	return geom.Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func lerpY(a, b geom.Point, y float64) geom.Point {
	if a.Y == b.Y {
		return geom.Point{X: a.X, Y: y}
	}
	t := (y - a.Y) / (b.Y - a.Y)
	return geom.Point{X: a.X + t*(b.X-a.X), Y: y}
}

func clipHalfPlane(poly Path, inside func(geom.Point) bool, intersect func(a, b geom.Point) geom.Point) Path {
	if len(poly) == 0 {
		return poly
	}
	var out Path
	n := len(poly)
	for i := 0; i < n; i++ {
		cur, prev := poly[i], poly[(i-1+n)%n]
		curIn, prevIn := inside(cur), inside(prev)
		if curIn {
			if !prevIn {
				out = append(out, intersect(prev, cur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersect(prev, cur))
		}
	}
	return out
}

// removeCollinear drops any vertex lying exactly between its two
// neighbors on the same line, which both UnionRects' grid trace and the
// simplification passes can otherwise leave behind.
func removeCollinear(path Path) Path {
	n := len(path)
	if n < 3 {
		return path
	}
	out := make(Path, 0, n)
	for i := 0; i < n; i++ {
		prev := path[(i-1+n)%n]
		cur := path[i]
		next := path[(i+1)%n]
		if (prev.X == cur.X && cur.X == next.X) || (prev.Y == cur.Y && cur.Y == next.Y) {
			continue
		}
		out = append(out, cur)
	}
	return out
}

// OffsetPath returns path moved inward by d along every edge (d may be
// negative to offset outward). Each corner's new position is found by
// shifting its horizontal edge vertically and its vertical edge
// horizontally toward the polygon's interior, then combining the two
// shifted coordinates — exact for a rectilinear corner, since the two
// incident edges are already perpendicular.
func OffsetPath(path Path, d float64) Path {
	path = removeCollinear(path)
	n := len(path)
	if n < 4 {
		return path
	}
	out := make(Path, n)
	for i := 0; i < n; i++ {
		prev := path[(i-1+n)%n]
		cur := path[i]
		next := path[(i+1)%n]

		var horizY, vertX float64
		if prev.Y == cur.Y {
			horizY = shiftHoriz(path, prev, cur, d)
			vertX = shiftVert(path, cur, next, d)
		} else {
			vertX = shiftVert(path, prev, cur, d)
			horizY = shiftHoriz(path, cur, next, d)
		}
		out[i] = geom.Point{X: vertX, Y: horizY}
	}
	return out
}

const offsetTestEps = 1e-6

func shiftHoriz(path Path, a, b geom.Point, d float64) float64 {
	mid := geom.Point{X: (a.X + b.X) / 2, Y: a.Y}
	below := geom.Point{X: mid.X, Y: mid.Y + offsetTestEps}
	if PointInPath(below, path) {
		return a.Y + d
	}
	return a.Y - d
}

func shiftVert(path Path, a, b geom.Point, d float64) float64 {
	mid := geom.Point{X: a.X, Y: (a.Y + b.Y) / 2}
	right := geom.Point{X: mid.X + offsetTestEps, Y: mid.Y}
	if PointInPath(right, path) {
		return a.X + d
	}
	return a.X - d
}

// Simplify runs SimplifyContext with a background context, always
// running to completion.
func Simplify(path Path, keepInside, keepOutside []Path) Path {
	out, _ := SimplifyContext(context.Background(), path, keepInside, keepOutside)
	return out
}

// SimplifyContext iteratively straightens path's boundary — collapsing
// collinear runs, dropping zero-width spikes, and rounding off single-
// cell notches ("antiknobs") — stopping at a fixed point or when ctx is
// canceled. A candidate simplification is only applied if it does not
// move any point of keepInside outside the path, nor any point of
// keepOutside inside it: these constraints come from the parent and
// sibling Wraps whose own outlines this one must stay consistent with
// (spec §4.6).
func SimplifyContext(ctx context.Context, path Path, keepInside, keepOutside []Path) (Path, Outcome) {
	cur := removeCollinear(path)
	for {
		select {
		case <-ctx.Done():
			return cur, OutcomeAborted
		default:
		}
		next := removeCollinear(removeSpikes(cur))
		next = removeKnob(next, keepInside, keepOutside)
		next = removeCollinear(next)
		if pathsEqual(next, cur) {
			return cur, OutcomeCompleted
		}
		cur = next
	}
}

func pathsEqual(a, b Path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// removeSpikes drops a zero-width "spike": a vertex whose incident edges
// retrace the same segment (the vertex two steps away coincides with
// it), which UnionRects' trace can produce where two covered cells meet
// only at a corner.
func removeSpikes(path Path) Path {
	n := len(path)
	if n < 6 {
		return path
	}
	for i := 0; i < n; i++ {
		cur := path[i]
		next2 := path[(i+2)%n]
		if next2 == cur {
			out := make(Path, 0, n-2)
			for j := 0; j < n; j++ {
				if j == (i+1)%n || j == i {
					continue
				}
				out = append(out, path[j])
			}
			return out
		}
	}
	return path
}

// removeKnob looks for a single-notch pattern — four consecutive
// vertices p0,p1,p2,p3 where p0-p3 would lie on one line and p1,p2 are a
// perpendicular detour between them — and removes the detour (replacing
// it with the straight line) when that does not violate a keepInside or
// keepOutside constraint.
func removeKnob(path Path, keepInside, keepOutside []Path) Path {
	n := len(path)
	// A rectangle's four vertices also match the pattern; removing two of
	// them would leave a degenerate segment, so a knob needs n >= 6.
	if n < 6 {
		return path
	}
	for i := 0; i < n; i++ {
		p0 := path[i]
		p1 := path[(i+1)%n]
		p2 := path[(i+2)%n]
		p3 := path[(i+3)%n]

		var candidate Path
		switch {
		case p0.Y == p3.Y && p0.X == p1.X && p1.Y == p2.Y && p2.X == p3.X:
			candidate = spliceOut(path, i+1, i+2, n)
		case p0.X == p3.X && p0.Y == p1.Y && p1.X == p2.X && p2.Y == p3.Y:
			candidate = spliceOut(path, i+1, i+2, n)
		default:
			continue
		}
		if respectsConstraints(candidate, keepInside, keepOutside) {
			return candidate
		}
	}
	return path
}

// spliceOut returns path with the two vertices at indices a and b
// (mod n, both within one step of each other) removed.
func spliceOut(path Path, a, b, n int) Path {
	out := make(Path, 0, n-2)
	for i := 0; i < n; i++ {
		if i == a%n || i == b%n {
			continue
		}
		out = append(out, path[i])
	}
	return out
}

func respectsConstraints(path Path, keepInside, keepOutside []Path) bool {
	for _, must := range keepInside {
		for _, p := range must {
			if !PointInPath(p, path) {
				return false
			}
		}
	}
	for _, must := range keepOutside {
		for _, p := range must {
			if PointInPath(p, path) {
				return false
			}
		}
	}
	return true
}
