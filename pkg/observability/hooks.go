// Package observability provides hooks for logging and metrics around
// explode and recombine runs.
//
// The transform packages never log directly. They emit events through the
// registered [TransformHooks], and the CLI installs an implementation backed
// by its logger at startup. Libraries and tests that register nothing get
// the no-op default.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTransformHooks(&myHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Transform().OnExplodeStart(ctx, dir, len(nb.Cells))
//	// ... write the tree ...
//	observability.Transform().OnExplodeComplete(ctx, dir, n, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Transform Hooks
// =============================================================================

// TransformHooks receives events from explode and recombine runs.
type TransformHooks interface {
	// Explode events
	OnExplodeStart(ctx context.Context, dir string, cells int)
	OnCellExploded(ctx context.Context, id string, outputs int)
	OnExplodeComplete(ctx context.Context, dir string, cells int, duration time.Duration, err error)

	// Recombine events
	OnRecombineStart(ctx context.Context, dir string)
	OnCellRecombined(ctx context.Context, id string, outputs int)
	OnRecombineComplete(ctx context.Context, dir string, cells int, duration time.Duration, err error)

	// OnFileWritten records a file written into an exploded tree.
	OnFileWritten(ctx context.Context, path string, size int)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopTransformHooks is a no-op implementation of TransformHooks.
type NoopTransformHooks struct{}

func (NoopTransformHooks) OnExplodeStart(context.Context, string, int)                            {}
func (NoopTransformHooks) OnCellExploded(context.Context, string, int)                            {}
func (NoopTransformHooks) OnExplodeComplete(context.Context, string, int, time.Duration, error)   {}
func (NoopTransformHooks) OnRecombineStart(context.Context, string)                               {}
func (NoopTransformHooks) OnCellRecombined(context.Context, string, int)                          {}
func (NoopTransformHooks) OnRecombineComplete(context.Context, string, int, time.Duration, error) {}
func (NoopTransformHooks) OnFileWritten(context.Context, string, int)                             {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	transformHooks TransformHooks = NoopTransformHooks{}
	hooksMu        sync.RWMutex
)

// SetTransformHooks registers custom transform hooks.
// This should be called once at application startup before any transform runs.
func SetTransformHooks(h TransformHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		transformHooks = h
	}
}

// Transform returns the registered transform hooks.
func Transform() TransformHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return transformHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	transformHooks = NoopTransformHooks{}
}
