package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sbcohen2000/raggedblocks/pkg/cache"
	"github.com/sbcohen2000/raggedblocks/pkg/layout"
	"github.com/sbcohen2000/raggedblocks/pkg/observability"
	"github.com/sbcohen2000/raggedblocks/pkg/reassoc"
	"github.com/sbcohen2000/raggedblocks/pkg/tree"
)

// Runner encapsulates pipeline execution with caching. It is stateless
// except for its cache, keyer, measurer, and logger — multiple
// goroutines can safely share one Runner across different Options.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Measurer tree.Measurer
	Logger   *log.Logger
}

// NewRunner creates a runner. A nil keyer defaults to DefaultKeyer; a nil
// cache defaults to NullCache (caching disabled); a nil measurer
// defaults to a 6x12 MonospaceMeasurer, suitable for terminal preview.
func NewRunner(c cache.Cache, keyer cache.Keyer, measurer tree.Measurer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if measurer == nil {
		measurer = tree.NewMonospaceMeasurer(6, 12)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Measurer: measurer, Logger: logger}
}

// Execute runs the complete measure → layout → render pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{Artifacts: make(map[string][]byte)}

	observability.Pipeline().OnMeasureStart(ctx)
	measureStart := time.Now()
	measured, measureHit := r.Measure(ctx, opts.Tree)
	result.Tree = measured
	result.Stats.MeasureTime = time.Since(measureStart)
	result.CacheInfo.MeasureHit = measureHit
	result.TreeHash = cache.Hash(treeFingerprint(measured))
	fragments := 0
	var count func(tree.Tree)
	count = func(t tree.Tree) {
		if t.Kind == tree.KindAtom || t.Kind == tree.KindSpacer {
			fragments++
		}
		for _, c := range t.Children {
			count(c)
		}
	}
	count(measured)
	observability.Pipeline().OnMeasureComplete(ctx, fragments, result.Stats.MeasureTime, nil)

	r.Logger.Info("measured tree", "cached", measureHit, "duration", result.Stats.MeasureTime)

	observability.Pipeline().OnLayoutStart(ctx, opts.Algorithm)
	layoutStart := time.Now()
	res, layoutHit, err := r.GenerateLayoutWithCacheInfo(ctx, measured, result.TreeHash, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Algorithm, len(res.Wraps), result.Stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = res
	result.Stats.FragmentCount = len(res.Fragments)
	result.Stats.WrapCount = len(res.Wraps)
	result.CacheInfo.LayoutHit = layoutHit
	result.LayoutHash = cache.Hash(layoutFingerprint(res))

	r.Logger.Info("computed layout",
		"algorithm", opts.Algorithm,
		"fragments", result.Stats.FragmentCount,
		"wraps", result.Stats.WrapCount,
		"duration", result.Stats.LayoutTime)

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, res, result.LayoutHash, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs", "formats", opts.Formats, "duration", result.Stats.RenderTime)

	return result, nil
}

// Measure measures every Atom/Spacer in t, consulting (and populating)
// the Runner's cache by text value. It reports whether every lookup
// during the pass was a cache hit.
func (r *Runner) Measure(ctx context.Context, t tree.Tree) (tree.Tree, bool) {
	pm := newPersistentMeasurer(ctx, r.Measurer, r.Cache, r.Keyer)
	measured := tree.MeasureTree(t, pm)
	return measured, pm.allHit()
}

// GenerateLayoutWithCacheInfo reassociates the measured tree and runs
// the configured algorithm, consulting the Runner's cache first.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, measured tree.Tree, treeHash string, opts Options) (layout.Result, bool, error) {
	cacheKey := r.Keyer.LayoutKey(treeHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, ok := decodeLayoutResult(data); ok {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	n, err := reassoc.Reassociate(measured, tree.Atom(""))
	if err != nil {
		return layout.Result{}, false, err
	}
	res, err := GenerateLayout(n, opts)
	if err != nil {
		return layout.Result{}, false, err
	}

	if !opts.Refresh {
		data := encodeLayoutResult(res)
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return res, false, nil
}

// RenderWithCacheInfo renders every requested format, consulting the
// Runner's cache for each format independently.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res layout.Result, layoutHash string, opts Options) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
				observability.Cache().OnCacheHit(ctx, "artifact")
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		allCached = false

		data, err := RenderFormat(res, format, opts.Width, opts.Height)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data
		if !opts.Refresh {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return artifacts, allCached, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
