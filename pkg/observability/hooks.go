// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about layout passes, cache operations, and
// analytics publishing.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnLayoutStart(ctx, strategy, itemCount)
//	// ... compute ...
//	observability.Layout().OnLayoutComplete(ctx, strategy, placedCount, duration, hasOverlaps)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the layout pipeline.
type LayoutHooks interface {
	// OnLayoutStart records the beginning of a layout pass.
	OnLayoutStart(ctx context.Context, strategy string, itemCount int)

	// OnLayoutComplete records a finished pass. placedCount < itemCount
	// indicates dropped items; hasOverlaps indicates residual clearance
	// violations.
	OnLayoutComplete(ctx context.Context, strategy string, placedCount int, duration time.Duration, hasOverlaps bool)

	// OnBudgetExceeded records a pass that blew the soft performance budget.
	OnBudgetExceeded(ctx context.Context, strategy string, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Analytics Hooks
// =============================================================================

// AnalyticsHooks receives events from the analytics sink.
type AnalyticsHooks interface {
	// OnPublish records an accepted event.
	OnPublish(ctx context.Context, event string)

	// OnPublishError records a failed publish. Publishing is fire-and-forget,
	// so this is the only place such failures surface.
	OnPublishError(ctx context.Context, event string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(context.Context, string, int)                         {}
func (NoopLayoutHooks) OnLayoutComplete(context.Context, string, int, time.Duration, bool) {}
func (NoopLayoutHooks) OnBudgetExceeded(context.Context, string, time.Duration)            {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopAnalyticsHooks is a no-op implementation of AnalyticsHooks.
type NoopAnalyticsHooks struct{}

func (NoopAnalyticsHooks) OnPublish(context.Context, string)             {}
func (NoopAnalyticsHooks) OnPublishError(context.Context, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks    LayoutHooks    = NoopLayoutHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	analyticsHooks AnalyticsHooks = NoopAnalyticsHooks{}
	hooksMu        sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout passes.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetAnalyticsHooks registers custom analytics hooks.
// This should be called once at application startup before any publishing.
func SetAnalyticsHooks(h AnalyticsHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		analyticsHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Analytics returns the registered analytics hooks.
func Analytics() AnalyticsHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return analyticsHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	cacheHooks = NoopCacheHooks{}
	analyticsHooks = NoopAnalyticsHooks{}
}
