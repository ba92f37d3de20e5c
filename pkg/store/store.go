// Package store persists a durable history of rendered layouts,
// distinct from pkg/cache's ephemeral memoization: one record per
// render request, kept for audit and for the CLI/API history surface
// (spec §6.7), not to avoid recomputing anything.
package store

import (
	"context"
	"time"
)

// Record is one entry in the render history: enough to identify what
// was rendered and to re-display its SVG without recomputing the
// layout.
type Record struct {
	ID        string
	InputHash string
	Algorithm string
	Settings  RecordSettings
	Timestamp time.Time
	SVG       []byte
}

// RecordSettings is the subset of layout.BasicSettings worth recording
// alongside a history entry.
type RecordSettings struct {
	TranslateWraps   bool
	SimplifyOutlines bool
	IdealLeading     float64
}

// Store persists and retrieves render history records.
type Store interface {
	// Save appends a record to the history.
	Save(ctx context.Context, rec Record) error
	// List returns the most recent records, newest first, up to limit.
	List(ctx context.Context, limit int) ([]Record, error)
	// Get retrieves a single record by id. The second return value is
	// false if no record with that id exists.
	Get(ctx context.Context, id string) (Record, bool, error)
	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}

// NullStore is a Store that discards every write and reports history
// as always empty. It is the default store (spec §6.7), matching
// pkg/cache's NullCache pattern of an always-available no-op backend
// so the CLI and HTTP API work with no MongoDB deployment present.
type NullStore struct{}

// NewNullStore creates a no-op store.
func NewNullStore() Store { return NullStore{} }

// Save implements Store.
func (NullStore) Save(ctx context.Context, rec Record) error { return nil }

// List implements Store.
func (NullStore) List(ctx context.Context, limit int) ([]Record, error) { return nil, nil }

// Get implements Store.
func (NullStore) Get(ctx context.Context, id string) (Record, bool, error) {
	return Record{}, false, nil
}

// Close implements Store.
func (NullStore) Close(ctx context.Context) error { return nil }

var _ Store = NullStore{}
