// Package cache provides the backing stores used to memoize expensive
// work: measured Atom rectangles (spec §3.1, "measurements are cached by
// value"), computed layouts, and rendered artifacts. The same Cache
// interface is implemented by an in-memory map, a file-based store, and
// a Redis-backed store, so pkg/pipeline's Runner can be pointed at
// whichever backend fits the deployment.
package cache

import (
	"context"
	"time"
)

// TTLs applied by pkg/pipeline's Runner when writing each kind of entry.
const (
	TTLMeasure  = 24 * time.Hour
	TTLLayout   = time.Hour
	TTLArtifact = time.Hour
)

// Cache is a key/value store with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return value is false on a miss;
	// a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}

// Keyer derives cache keys for each memoized stage so pkg/pipeline never
// builds key strings by hand.
type Keyer interface {
	// MeasureKey derives the key under which an Atom's measured Rect is
	// cached, keyed by text value per spec §3.1.
	MeasureKey(text string) string
	// LayoutKey derives the key for a computed layout.Result, keyed by
	// the input tree's content hash and the algorithm/settings used.
	LayoutKey(inputHash string, opts LayoutKeyOpts) string
	// ArtifactKey derives the key for a rendered artifact, keyed by the
	// layout's content hash and the requested output format.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts is the part of layout.Settings relevant to cache-key
// derivation.
type LayoutKeyOpts struct {
	Algorithm        string
	TranslateWraps   bool
	SimplifyOutlines bool
	IdealLeading     float64
}

// ArtifactKeyOpts is the part of an export request relevant to
// cache-key derivation.
type ArtifactKeyOpts struct {
	Format string
	Width  float64
	Height float64
}

// DefaultKeyer is the Keyer pkg/pipeline uses unless the caller supplies
// its own.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// MeasureKey implements Keyer.
func (DefaultKeyer) MeasureKey(text string) string {
	return hashKey("measure", text)
}

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(inputHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", inputHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
