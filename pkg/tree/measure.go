package tree

import (
	"sync"
	"unicode/utf8"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
)

// Measurer is the external text-measurement oracle (spec §6.1). It must be
// deterministic: measure(text) always returns the same rect for the same
// text. The contract requires Left == 0, Right >= 0, Top <= 0 <= Bottom.
//
// The core invokes Measure exactly once per Atom/Spacer during a single
// Measure pass; callers are expected to supply a [CachingMeasurer] if the
// underlying oracle is expensive.
type Measurer interface {
	Measure(text string) geom.Rect
}

// MeasureFunc adapts a plain function to a Measurer.
type MeasureFunc func(text string) geom.Rect

// Measure implements Measurer.
func (f MeasureFunc) Measure(text string) geom.Rect { return f(text) }

// MonospaceMeasurer is a deterministic Measurer suitable for terminal
// preview and tests: every rune occupies a fixed cell width/height, with no
// ascent/descent (Top == 0).
type MonospaceMeasurer struct {
	CellWidth  float64
	CellHeight float64
}

// NewMonospaceMeasurer returns a MonospaceMeasurer with the given cell
// dimensions. Dimensions <= 0 fall back to a 1x1 cell.
func NewMonospaceMeasurer(cellWidth, cellHeight float64) MonospaceMeasurer {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if cellHeight <= 0 {
		cellHeight = 1
	}
	return MonospaceMeasurer{CellWidth: cellWidth, CellHeight: cellHeight}
}

// Measure implements Measurer.
func (m MonospaceMeasurer) Measure(text string) geom.Rect {
	n := utf8.RuneCountInString(text)
	return geom.Rect{
		Left:   0,
		Top:    0,
		Right:  float64(n) * m.CellWidth,
		Bottom: m.CellHeight,
	}
}

// CachingMeasurer decorates a Measurer with an in-memory cache keyed by
// text value, per spec §3.1 ("measurements are cached by value"). It is
// safe for concurrent use.
type CachingMeasurer struct {
	inner Measurer
	mu    sync.Mutex
	cache map[string]geom.Rect
}

// NewCachingMeasurer wraps inner with a by-value cache.
func NewCachingMeasurer(inner Measurer) *CachingMeasurer {
	return &CachingMeasurer{inner: inner, cache: make(map[string]geom.Rect)}
}

// Measure implements Measurer, consulting the cache before calling inner.
func (c *CachingMeasurer) Measure(text string) geom.Rect {
	c.mu.Lock()
	if r, ok := c.cache[text]; ok {
		c.mu.Unlock()
		return r
	}
	c.mu.Unlock()

	r := c.inner.Measure(text)

	c.mu.Lock()
	c.cache[text] = r
	c.mu.Unlock()
	return r
}

// Len returns the number of distinct texts currently cached.
func (c *CachingMeasurer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

// MeasureTree measures every Atom and Spacer (with implicit, text-derived
// width) in t in document order, returning a new tree with Rect populated.
// Spacers created via SpacerWidth keep their explicit width untouched.
// Newlines and Nodes are recursed into but carry no rect of their own.
func MeasureTree(t Tree, m Measurer) Tree {
	switch t.Kind {
	case KindAtom:
		t.Rect = m.Measure(t.Text)
		return t
	case KindSpacer:
		if t.Text != "" {
			t.Rect = m.Measure(t.Text)
		} else {
			t.Rect = geom.Rect{Left: 0, Top: 0, Right: t.Width, Bottom: 0}
		}
		return t
	case KindNewline:
		return t
	case KindNode:
		children := make([]Tree, len(t.Children))
		for i, c := range t.Children {
			children[i] = MeasureTree(c, m)
		}
		t.Children = children
		return t
	default:
		return t
	}
}
