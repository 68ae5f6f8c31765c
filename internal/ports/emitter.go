package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-agent/internal/domain/trace"
)

// SpanRef identifies one open span held by the emitter. Callers treat it as
// an opaque handle: open, annotate, close.
type SpanRef struct {
	TraceID string
	SpanID  string
}

// TraceEmitter brackets agent work with spans and fans each lifecycle event
// out to every configured sink. Implemented by the emitter in the
// application layer; called by the agent orchestrator.
//
// Misuse of the span lifecycle (closing a span twice, closing a parent with
// open children, annotating or parenting onto a closed or unknown span)
// returns domain.ErrSpanState. Sink failures never surface here; they are
// logged and counted, and delivery continues to the remaining sinks.
type TraceEmitter interface {
	// StartTurn opens the root span of a new trace and returns its handle.
	StartTurn(ctx context.Context, name string, attrs map[string]any) (SpanRef, error)

	// StartChild opens a child span under parent.
	// Returns domain.ErrSpanState if the parent is closed or unknown.
	StartChild(ctx context.Context, parent SpanRef, kind trace.Kind, name string, attrs map[string]any) (SpanRef, error)

	// SetAttribute sets one attribute on an open span.
	// Returns domain.ErrSpanState if the span is closed or unknown.
	SetAttribute(ctx context.Context, ref SpanRef, key string, value any) error

	// End closes a span with the given status. The message is recorded
	// only for trace.StatusError.
	// Returns domain.ErrSpanState if the span is already closed, unknown,
	// or still has open children.
	End(ctx context.Context, ref SpanRef, status trace.Status, message string) error

	// EndTurn closes the root span like End, then flushes every sink.
	// Returns domain.ErrSpanState under the same conditions as End.
	EndTurn(ctx context.Context, ref SpanRef, status trace.Status, message string) error
}
