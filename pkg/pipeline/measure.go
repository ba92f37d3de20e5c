package pipeline

import (
	"context"
	"encoding/binary"
	"math"
	"sync"

	"github.com/sbcohen2000/raggedblocks/pkg/cache"
	"github.com/sbcohen2000/raggedblocks/pkg/geom"
	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

// persistentMeasurer decorates a tree.Measurer with a Cache-backed,
// by-value lookup (spec §3.1, "measurements are cached by value"),
// tracking whether every lookup during one MeasureTree pass was a hit.
type persistentMeasurer struct {
	ctx    context.Context
	inner  tree.Measurer
	c      cache.Cache
	keyer  cache.Keyer
	mu     sync.Mutex
	hits   int
	misses int
}

func newPersistentMeasurer(ctx context.Context, inner tree.Measurer, c cache.Cache, keyer cache.Keyer) *persistentMeasurer {
	return &persistentMeasurer{ctx: ctx, inner: inner, c: c, keyer: keyer}
}

// Measure implements tree.Measurer.
func (m *persistentMeasurer) Measure(text string) geom.Rect {
	key := m.keyer.MeasureKey(text)

	if data, hit, err := m.c.Get(m.ctx, key); err == nil && hit {
		if r, ok := decodeRect(data); ok {
			m.mu.Lock()
			m.hits++
			m.mu.Unlock()
			return r
		}
	}

	r := m.inner.Measure(text)

	m.mu.Lock()
	m.misses++
	m.mu.Unlock()

	_ = m.c.Set(m.ctx, key, encodeRect(r), cache.TTLMeasure)
	return r
}

// allHit reports whether every Measure call so far was a cache hit. A
// pass with zero calls counts as a hit (nothing needed recomputing).
func (m *persistentMeasurer) allHit() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.misses == 0
}

// encodeRect/decodeRect serialize a geom.Rect as a tiny fixed binary
// record, avoiding JSON overhead for the hottest path in the pipeline.
func encodeRect(r geom.Rect) []byte {
	buf := make([]byte, 32)
	putFloat64(buf[0:8], r.Left)
	putFloat64(buf[8:16], r.Top)
	putFloat64(buf[16:24], r.Right)
	putFloat64(buf[24:32], r.Bottom)
	return buf
}

func decodeRect(data []byte) (geom.Rect, bool) {
	if len(data) != 32 {
		return geom.Rect{}, false
	}
	return geom.Rect{
		Left:   getFloat64(data[0:8]),
		Top:    getFloat64(data[8:16]),
		Right:  getFloat64(data[16:24]),
		Bottom: getFloat64(data[24:32]),
	}, true
}

func putFloat64(buf []byte, f float64) {
	binary.BigEndian.PutUint64(buf, math.Float64bits(f))
}

func getFloat64(buf []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(buf))
}
