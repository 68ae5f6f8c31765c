package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-agent/internal/domain/trace"
)

// SpanSink receives span lifecycle events from the trace emitter.
// Implemented by outbound trace adapters (otlp, stdout, file, memory,
// sqlite); called by the emitter only.
//
// The emitter delivers events for a given sink in logical order and hands
// each sink its own copy of the span, so implementations may retain or
// mutate what they receive. A sink error never affects delivery to the
// other sinks.
type SpanSink interface {
	// Name identifies the sink in logs and metrics (e.g. "file", "otlp").
	Name() string

	// OnOpen is called once when a span opens. The span carries its
	// identifiers, kind, start time, and any attributes set at open.
	OnOpen(ctx context.Context, span *trace.Span) error

	// OnSetAttribute is called when an attribute is set on an open span.
	// The span snapshot already includes the new attribute.
	OnSetAttribute(ctx context.Context, span *trace.Span, key string, value any) error

	// OnClose is called once when a span closes. The span carries its
	// final status, status message, and end time.
	OnClose(ctx context.Context, span *trace.Span) error

	// Flush is called after the root span of a turn closes. Sinks that
	// buffer should write out; sinks that don't may return nil.
	Flush(ctx context.Context) error
}

// TraceReader is the query surface over recently recorded traces.
// Implemented by the memory sink; called by the traces API handlers.
type TraceReader interface {
	// ListTraces returns retained traces, most recently started first.
	ListTraces(ctx context.Context) ([]*trace.Trace, error)

	// GetTrace returns a single trace by ID.
	// Returns domain.ErrNotFound if the trace is unknown or was evicted.
	GetTrace(ctx context.Context, traceID string) (*trace.Trace, error)
}

// SpanStream broadcasts closed spans to live subscribers.
// Implemented by the memory sink; consumed by the SSE stream handler.
type SpanStream interface {
	// Subscribe registers a subscriber and returns its channel plus a
	// cancel function that must be called to release it. Events are
	// dropped for subscribers whose channel buffer is full; a slow
	// consumer never blocks span delivery.
	Subscribe() (<-chan *trace.Span, func())
}
