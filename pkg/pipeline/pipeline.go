// Package pipeline provides the core measure → reassoc → layout → render
// pipeline used by the CLI, HTTP API, and terminal preview. Centralizing
// this logic keeps caching and logging behavior consistent across every
// entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Measure: resolve Atom/Spacer rectangles from text, memoized by value
//  2. Layout: reassociate the tree and run the selected algorithm
//  3. Render: produce output in one or more formats (svg, png, pdf, json)
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, measurer, logger)
//	opts := pipeline.Options{
//	    Tree:      in,
//	    Algorithm: "l1p",
//	    Width:     800,
//	    Height:    600,
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sbcohen2000/raggedblocks/pkg/cache"
	"github.com/sbcohen2000/raggedblocks/pkg/errors"
	"github.com/sbcohen2000/raggedblocks/pkg/layout"
	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// DefaultAlgorithm is used when Options.Algorithm is unset. L1P ("Pebble")
// is a reasonable general-purpose default: richer than the Blocks
// baseline, without S-Blocks/L1S+'s extra settings surface.
const DefaultAlgorithm = "l1p"

// DefaultWidth and DefaultHeight size the render frame when the caller
// doesn't specify one.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Options contains all configuration for one pipeline run. It supports
// JSON serialization for the parts relevant to an HTTP API request; the
// input tree itself travels separately (see pkg/io), since a bare
// tree.Tree carries no JSON tags of its own.
type Options struct {
	// Tree is the input layout tree to measure and lay out.
	Tree tree.Tree `json:"-"`

	// Layout options.
	Algorithm        string  `json:"algorithm,omitempty"`
	TranslateWraps   bool    `json:"translate_wraps,omitempty"`
	SimplifyOutlines bool    `json:"simplify_outlines,omitempty"`
	IdealLeading     float64 `json:"ideal_leading,omitempty"`

	// Render options.
	Width   float64  `json:"width,omitempty"`
	Height  float64  `json:"height,omitempty"`
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the cache for this run: nothing is read from it
	// and nothing is written to it.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options, not serialized.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has run.
	validated bool `json:"-"`
}

// Result contains the outputs of one pipeline run.
type Result struct {
	// Tree is the measured input tree.
	Tree tree.Tree

	// TreeHash is the content hash of the measured tree, used as the
	// layout cache key's input and exposed for API responses.
	TreeHash string

	// Layout is the computed layout.
	Layout layout.Result

	// LayoutHash is the content hash of the layout, used as the
	// artifact cache key's input.
	LayoutHash string

	// Artifacts holds rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats holds timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FragmentCount int
	WrapCount     int
	MeasureTime   time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage. MeasureHit is true
// only when every Atom/Spacer text in the run was already cached.
type CacheInfo struct {
	MeasureHit bool
	LayoutHit  bool
	RenderHit  bool
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidSettings, "invalid format %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. Idempotent: calling it again has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := errors.ValidateAlgorithmName(o.Algorithm); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Settings builds the layout.BasicSettings this Options describes.
func (o *Options) Settings() *layout.BasicSettings {
	return &layout.BasicSettings{
		TranslateWraps:   o.TranslateWraps,
		SimplifyOutlines: o.SimplifyOutlines,
		IdealLeading:     o.IdealLeading,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Algorithm:        o.Algorithm,
		TranslateWraps:   o.TranslateWraps,
		SimplifyOutlines: o.SimplifyOutlines,
		IdealLeading:     o.IdealLeading,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format, Width: o.Width, Height: o.Height}
}
