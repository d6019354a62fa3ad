// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about pipeline stages and served requests.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLoadStart(ctx, path)
//	// ... load dataset ...
//	observability.Pipeline().OnLoadComplete(ctx, path, jobs, duration, err)
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the timeline pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, jobs int, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, jobs int)
	OnLayoutComplete(ctx context.Context, workers, partitions int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response written for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                                {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, int, time.Duration, error)  {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                           {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)  {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

// registry is replaced as a whole so readers never see a half-updated pair.
type registry struct {
	pipeline PipelineHooks
	http     HTTPHooks
}

var current atomic.Pointer[registry]

func init() { Reset() }

// update swaps in a copy of the registry with fn applied.
func update(fn func(*registry)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h == nil {
		return
	}
	update(func(r *registry) { r.pipeline = h })
}

// SetHTTPHooks registers custom HTTP hooks. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h == nil {
		return
	}
	update(func(r *registry) { r.http = h })
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return current.Load().pipeline }

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks { return current.Load().http }

// Reset restores all hooks to their no-op defaults. Tests call it in cleanup.
func Reset() {
	current.Store(&registry{pipeline: NoopPipelineHooks{}, http: NoopHTTPHooks{}})
}
