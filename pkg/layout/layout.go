// Package layout implements the family of layout algorithms (spec §4.3-
// §4.5): Blocks (naive baseline), L1P ("Pebble"), L1S ("Rocks"), L1S+
// (Rocks with polygon outlining), and S-Blocks (sweep with gadgets).
// Every algorithm consumes a reassociated tree (package reassoc) and
// produces a Result: one absolute rect per fragment and per Wrap, in
// document order.
package layout

import (
	"context"

	"github.com/sbcohen2000/raggedblocks/pkg/geom"
	"github.com/sbcohen2000/raggedblocks/pkg/polygon"
	"github.com/sbcohen2000/raggedblocks/pkg/reassoc"
	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

// Fragment is one positioned Atom or Spacer, in document order.
type Fragment struct {
	Column   int
	Text     string
	Rect     geom.Rect
	IsSpacer bool
	// LineNo counts the Newlines (JoinV crossings) preceding this
	// fragment in document order; see Result.FragmentsInfo.
	LineNo int
}

// WrapBox is one positioned Wrap (the box for an original input Node).
type WrapBox struct {
	ID      int
	Rect    geom.Rect
	Style   tree.Style
	Padding float64
	// Outline holds the Wrap's rectilinear boundary path(s), set only by
	// algorithms that compute one (L1S+); nil otherwise, in which case
	// Rect alone (a plain rectangle) is the Wrap's shape.
	Outline []polygon.Path
}

// Result is the output of a layout algorithm: every fragment and every
// Wrap, positioned in one shared coordinate space, plus the overall
// bounding box.
type Result struct {
	Fragments []Fragment
	Wraps     []WrapBox
	Bounds    geom.Rect
}

// Outcome reports whether a context-aware layout call ran to completion.
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeAborted
)

// SettingField describes one adjustable field of a Settings value, for
// generic display/editing by a CLI or debug UI.
type SettingField struct {
	Name        string
	Description string
	Kind        string // "bool", "float", "int"
	Get         func() any
	Set         func(any) error
}

// Settings is implemented by every algorithm's options type.
type Settings interface {
	ViewSettings() []SettingField
}

// Algorithm lays out a reassociated tree under a given Settings.
type Algorithm interface {
	Name() string
	Layout(t *reassoc.Node, s Settings) (Result, error)
}

// ContextAlgorithm additionally supports cooperative cancellation,
// checked at the outer line-stacking loop (spec §5).
type ContextAlgorithm interface {
	Algorithm
	LayoutContext(ctx context.Context, t *reassoc.Node, s Settings) (Result, Outcome, error)
}

// BasicSettings is the common settings type shared by every algorithm in
// this package.
type BasicSettings struct {
	// TranslateWraps controls whether each Wrap moves its contents right
	// by its own padding before inflating its box by that padding (true,
	// as in DefaultSettings — spec §9 Open Question, resolved G2), so the
	// padded box starts where the unpadded contents did; when false the
	// contents keep their position and the box extends past their left
	// edge.
	TranslateWraps bool
	// SimplifyOutlines enables L1S+'s polygon simplification pass.
	// Ignored by algorithms that don't compute outlines.
	SimplifyOutlines bool
	// IdealLeading is the minimum gap a JoinV must leave between two
	// lines, even where the Timetable-derived (or, for S-Blocks, profile-
	// derived) padding alone would leave less. It never shrinks a gap
	// padding already widens past it. Blocks ignores it; it has no notion
	// of leading at all.
	IdealLeading float64
}

// DefaultSettings returns the spec-recommended defaults.
func DefaultSettings() *BasicSettings {
	return &BasicSettings{TranslateWraps: true, SimplifyOutlines: true}
}

// leadingGap folds a Timetable-derived padding pair and the configured
// IdealLeading floor into the single gap a JoinV should leave between
// two lines.
func leadingGap(pa, pb, ideal float64) float64 {
	gap := pa + pb
	if ideal > gap {
		return ideal
	}
	return gap
}

// settingsOrDefault extracts a *BasicSettings from s, falling back to
// DefaultSettings when s is nil or of a foreign type — every algorithm in
// this package is driven by BasicSettings, but Layout still accepts the
// Settings interface so callers can swap in their own in principle.
func settingsOrDefault(s Settings) *BasicSettings {
	if bs, ok := s.(*BasicSettings); ok && bs != nil {
		return bs
	}
	return DefaultSettings()
}

// ViewSettings implements Settings.
func (s *BasicSettings) ViewSettings() []SettingField {
	return []SettingField{
		{
			Name:        "translate-wraps",
			Description: "shift each Wrap's contents right by its padding before inflating its box",
			Kind:        "bool",
			Get:         func() any { return s.TranslateWraps },
			Set: func(v any) error {
				b, ok := v.(bool)
				if !ok {
					return errKindMismatch("translate-wraps", "bool", v)
				}
				s.TranslateWraps = b
				return nil
			},
		},
		{
			Name:        "simplify-outlines",
			Description: "simplify L1S+ polygon outlines before returning them",
			Kind:        "bool",
			Get:         func() any { return s.SimplifyOutlines },
			Set: func(v any) error {
				b, ok := v.(bool)
				if !ok {
					return errKindMismatch("simplify-outlines", "bool", v)
				}
				s.SimplifyOutlines = b
				return nil
			},
		},
		{
			Name:        "ideal-leading",
			Description: "minimum gap left between two joined lines",
			Kind:        "float",
			Get:         func() any { return s.IdealLeading },
			Set: func(v any) error {
				f, ok := v.(float64)
				if !ok {
					return errKindMismatch("ideal-leading", "float", v)
				}
				s.IdealLeading = f
				return nil
			},
		},
	}
}

func errKindMismatch(name, kind string, v any) error {
	return &settingError{name: name, kind: kind, got: v}
}

type settingError struct {
	name, kind string
	got        any
}

func (e *settingError) Error() string {
	return "layout: setting " + e.name + " expects a " + e.kind + " value"
}

// box is the internal per-node accounting carried up during recursive
// layout: its absolute rect plus the document-order column of its
// first and last fragment, used to query a Timetable for the padding
// that should separate it from an adjacent sibling.
type box struct {
	rect      geom.Rect
	firstCol  int
	lastCol   int
	fragments []Fragment
	wraps     []WrapBox
}

// translate shifts every rect this box owns by v, in place.
func (b *box) translate(v geom.Vector) {
	b.rect = b.rect.Translate(v)
	for i := range b.fragments {
		b.fragments[i].Rect = b.fragments[i].Rect.Translate(v)
	}
	for i := range b.wraps {
		b.wraps[i].Rect = b.wraps[i].Rect.Translate(v)
		for j, p := range b.wraps[i].Outline {
			b.wraps[i].Outline[j] = translatePath(p, v)
		}
	}
}

func translatePath(p polygon.Path, v geom.Vector) polygon.Path {
	out := make(polygon.Path, len(p))
	for i, pt := range p {
		out[i] = pt.Add(v)
	}
	return out
}

func toResult(b box) Result {
	r := Result{Fragments: b.fragments, Wraps: b.wraps, Bounds: b.rect}
	return r
}
