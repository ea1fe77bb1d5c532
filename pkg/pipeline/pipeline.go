// Package pipeline runs the complete word-cloud layout pass used by the CLI
// and the HTTP API.
//
// A pass is sizing → strategy selection → placement → validation, wrapped
// with caching, timing, and analytics. Centralizing it here keeps every entry
// point's behavior identical.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, sink, logger)
//	layout, err := runner.Compute(ctx, items, container, pipeline.Options{
//	    Strategy: place.StrategyAuto,
//	})
//	if err != nil {
//	    return err
//	}
//	if layout.Diagnostics.Degraded() {
//	    // fewer words placed than requested
//	}
package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kulturkompass/wortwolke/pkg/analytics"
	"github.com/kulturkompass/wortwolke/pkg/cache"
	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/cloud/place"
	"github.com/kulturkompass/wortwolke/pkg/cloud/sizing"
	"github.com/kulturkompass/wortwolke/pkg/cloud/validate"
	"github.com/kulturkompass/wortwolke/pkg/errors"
	"github.com/kulturkompass/wortwolke/pkg/observability"
)

// Options configures one layout pass.
type Options struct {
	// Strategy picks the placement algorithm. StrategyAuto (or empty)
	// defers to the density policy.
	Strategy place.Strategy

	// Config carries layout tunables. Zero fields are filled with defaults.
	Config cloud.Config

	// CacheTTL overrides the cached layout lifetime. Zero means
	// cache.DefaultTTL.
	CacheTTL time.Duration

	// NoCache skips both cache lookup and store for this pass.
	NoCache bool
}

// Runner executes layout passes with shared cache, analytics, and logging.
type Runner struct {
	cache  cache.Cache
	keyer  cache.Keyer
	sink   analytics.Sink
	logger *log.Logger
}

// NewRunner creates a Runner. Nil arguments select no-op implementations, so
// a bare NewRunner(nil, nil, nil) works for in-process library use.
func NewRunner(c cache.Cache, sink analytics.Sink, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if sink == nil {
		sink = analytics.NewNullSink()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		cache:  c,
		keyer:  cache.NewDefaultKeyer(),
		sink:   sink,
		logger: logger,
	}
}

// Compute runs one full layout pass.
//
// Layout-domain outcomes (dropped items, residual overlaps, an exceeded
// performance budget) are reported in the returned diagnostics, never as
// errors. Errors mean the caller broke the contract (invalid items or
// container) or a cache backend failed hard.
func (r *Runner) Compute(ctx context.Context, items []cloud.Item, container cloud.Container, opts Options) (cloud.Layout, error) {
	if err := cloud.ValidateItems(items); err != nil {
		return cloud.Layout{}, err
	}
	if err := cloud.ValidateContainer(container); err != nil {
		return cloud.Layout{}, err
	}

	cfg := opts.Config.Normalize()
	strategy := opts.Strategy
	if strategy == "" {
		strategy = place.StrategyAuto
	}
	if !place.ValidStrategies[strategy] {
		return cloud.Layout{}, errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy %q", strategy)
	}

	if !opts.NoCache {
		if l, ok := r.lookup(ctx, items, container, cfg, strategy); ok {
			return l, nil
		}
	}

	observability.Layout().OnLayoutStart(ctx, string(strategy), len(items))

	sized := sizing.ComputeSizes(items, cfg.FontSize, cfg.MinTapTarget)

	var used place.Strategy
	placed, elapsed := validate.Measure(func() []cloud.PlacedItem {
		var p []cloud.PlacedItem
		p, used = place.Run(strategy, sized, container, cfg)
		return p
	})

	report := validate.NoOverlaps(placed, cfg.MinSpacing)

	l := cloud.Layout{
		Container: container,
		Placed:    placed,
		Diagnostics: cloud.Diagnostics{
			Algorithm:        string(used),
			DurationMs:       float64(elapsed.Microseconds()) / 1000,
			PlacedCount:      len(placed),
			TotalCount:       len(items),
			HasOverlaps:      report.HasOverlaps,
			OverlappingPairs: report.OverlappingPairs,
			Seed:             cfg.Seed,
		},
	}

	r.report(ctx, l, elapsed)

	if !opts.NoCache {
		r.store(ctx, items, container, cfg, strategy, l, opts.CacheTTL)
	}

	r.sink.Publish(ctx, analytics.LayoutComputed(l.Diagnostics))
	return l, nil
}

// report logs the pass outcome and fires observability hooks.
func (r *Runner) report(ctx context.Context, l cloud.Layout, elapsed time.Duration) {
	d := l.Diagnostics
	observability.Layout().OnLayoutComplete(ctx, d.Algorithm, d.PlacedCount, elapsed, d.HasOverlaps)

	r.logger.Debug("layout computed",
		"algorithm", d.Algorithm,
		"placed", d.PlacedCount,
		"total", d.TotalCount,
		"overlaps", d.HasOverlaps,
		"duration", elapsed.Round(time.Microsecond))

	if d.Degraded() {
		r.logger.Warn("layout degraded: dropped items",
			"placed", d.PlacedCount, "total", d.TotalCount)
	}
	if d.HasOverlaps {
		r.logger.Warn("layout has residual overlaps",
			"pairs", len(d.OverlappingPairs))
	}
	if validate.OverBudget(elapsed) {
		observability.Layout().OnBudgetExceeded(ctx, d.Algorithm, elapsed)
		r.logger.Warn("layout exceeded soft performance budget",
			"duration", elapsed.Round(time.Millisecond), "budget", validate.SoftBudget)
	}
}

// lookup returns a cached layout for identical inputs, if present.
func (r *Runner) lookup(ctx context.Context, items []cloud.Item, container cloud.Container, cfg cloud.Config, strategy place.Strategy) (cloud.Layout, bool) {
	key := r.keyer.LayoutKey(items, container, cfg, string(strategy))
	data, hit, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("cache get failed", "err", err)
		return cloud.Layout{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "layout")
		return cloud.Layout{}, false
	}

	l, err := cloud.UnmarshalLayout(data)
	if err != nil {
		// Stale or corrupt entry: drop and recompute.
		_ = r.cache.Delete(ctx, key)
		return cloud.Layout{}, false
	}

	observability.Cache().OnCacheHit(ctx, "layout")
	l.Diagnostics.Cached = true
	return l, true
}

// store writes the computed layout back to the cache.
func (r *Runner) store(ctx context.Context, items []cloud.Item, container cloud.Container, cfg cloud.Config, strategy place.Strategy, l cloud.Layout, ttl time.Duration) {
	data, err := cloud.MarshalLayout(l)
	if err != nil {
		return
	}
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}

	key := r.keyer.LayoutKey(items, container, cfg, string(strategy))
	if err := r.cache.Set(ctx, key, data, ttl); err != nil {
		r.logger.Warn("cache set failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "layout", len(data))
}
