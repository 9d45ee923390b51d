// Package observability provides hooks for metrics, tracing, and logging.
//
// Growth and rendering code emit events through the registered hooks without
// knowing who listens. The CLI registers a logger-backed implementation at
// startup; libraries and tests see no-op hooks unless they install their own.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGrowthHooks(&myGrowthHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Growth().OnGrowStart(ctx, steps)
//	// ... grow ...
//	observability.Growth().OnGrowComplete(ctx, cells, duration, err)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/sprawl/pkg/grid"
)

// =============================================================================
// Growth Hooks
// =============================================================================

// GrowthHooks receives events from the growth engine.
type GrowthHooks interface {
	// OnGrowStart is called once before the first step.
	OnGrowStart(ctx context.Context, steps int)

	// OnStep is called after each step with the 1-based step number, the
	// annexed cell, and the size of the frontier it was chosen from.
	OnStep(ctx context.Context, step int, cell grid.Coord, frontier int)

	// OnGrowComplete is called once when the engine stops.
	OnGrowComplete(ctx context.Context, cells int, duration time.Duration, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the text renderer.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, rows, cols int)
	OnRenderComplete(ctx context.Context, lines int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGrowthHooks is a no-op implementation of GrowthHooks.
type NoopGrowthHooks struct{}

func (NoopGrowthHooks) OnGrowStart(context.Context, int)                         {}
func (NoopGrowthHooks) OnStep(context.Context, int, grid.Coord, int)             {}
func (NoopGrowthHooks) OnGrowComplete(context.Context, int, time.Duration, error) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, int, int)                     {}
func (NoopRenderHooks) OnRenderComplete(context.Context, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	growthHooks GrowthHooks = NoopGrowthHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetGrowthHooks registers custom growth hooks.
// This should be called once at application startup before any growth runs.
func SetGrowthHooks(h GrowthHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		growthHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Growth returns the registered growth hooks.
func Growth() GrowthHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return growthHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	growthHooks = NoopGrowthHooks{}
	renderHooks = NoopRenderHooks{}
}
