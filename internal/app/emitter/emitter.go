// Package emitter implements the trace fan-out: it owns span identity and
// lifecycle for every turn and broadcasts each lifecycle event to a fixed
// set of sinks. Sinks fail independently; the emitter absorbs their errors
// so instrumentation can never take down a turn.
package emitter

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/todo-agent/internal/app/fanout"
	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/domain/trace"
	"github.com/jsamuelsen11/todo-agent/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// ID widths in bytes, matching W3C Trace Context.
const (
	traceIDBytes = 16
	spanIDBytes  = 8
)

// Sink event names used in logs and metric labels.
const (
	eventOpen         = "open"
	eventSetAttribute = "set_attribute"
	eventClose        = "close"
	eventFlush        = "flush"
)

// Compile-time interface check.
var _ ports.TraceEmitter = (*Emitter)(nil)

// Emitter implements [ports.TraceEmitter]. Span state lives behind a mutex;
// the authoritative span copy never leaves the emitter, sinks receive
// clones. The first configured sink is the primary: it is called
// synchronously on the caller's goroutine and sees every event before the
// others. The remaining sinks are fanned out concurrently per event and
// joined before the emitter returns, so each sink still observes events in
// lifecycle order.
type Emitter struct {
	sinks      []ports.SpanSink
	maxWorkers int
	logger     *slog.Logger
	metrics    *telemetry.Metrics

	mu     sync.Mutex
	traces map[string]*traceState

	now func() time.Time
}

type traceState struct {
	rootID string
	spans  map[string]*spanState
}

type spanState struct {
	span     *trace.Span
	openKids int
	closed   bool
}

// New creates an Emitter delivering to the given sinks in registration
// order. maxWorkers bounds concurrent secondary-sink deliveries per event;
// values below 1 are raised to 1. metrics may be nil (no counters recorded).
func New(sinks []ports.SpanSink, maxWorkers int, metrics *telemetry.Metrics, logger *slog.Logger) *Emitter {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Emitter{
		sinks:      sinks,
		maxWorkers: maxWorkers,
		logger:     logger,
		metrics:    metrics,
		traces:     make(map[string]*traceState),
		now:        time.Now,
	}
}

// StartTurn opens the root span of a new trace.
func (e *Emitter) StartTurn(ctx context.Context, name string, attrs map[string]any) (ports.SpanRef, error) {
	span := &trace.Span{
		TraceID:    newHexID(traceIDBytes),
		SpanID:     newHexID(spanIDBytes),
		Name:       name,
		Kind:       trace.KindTurn,
		Attributes: copyAttrs(attrs),
		StartTime:  e.now().UTC(),
		Status:     trace.StatusUnset,
	}

	e.mu.Lock()
	e.traces[span.TraceID] = &traceState{
		rootID: span.SpanID,
		spans:  map[string]*spanState{span.SpanID: {span: span}},
	}
	snapshot := span.Clone()
	e.mu.Unlock()

	e.broadcast(ctx, sinkEvent{kind: eventOpen, span: snapshot})
	return ports.SpanRef{TraceID: span.TraceID, SpanID: span.SpanID}, nil
}

// StartChild opens a child span under parent.
func (e *Emitter) StartChild(ctx context.Context, parent ports.SpanRef, kind trace.Kind, name string, attrs map[string]any) (ports.SpanRef, error) {
	e.mu.Lock()
	ts, ps, err := e.lookup(parent)
	if err != nil {
		e.mu.Unlock()
		return ports.SpanRef{}, err
	}
	if ps.closed {
		e.mu.Unlock()
		return ports.SpanRef{}, spanStateErr("start child of closed span", parent)
	}

	span := &trace.Span{
		TraceID:    parent.TraceID,
		SpanID:     newHexID(spanIDBytes),
		ParentID:   parent.SpanID,
		Name:       name,
		Kind:       kind,
		Attributes: copyAttrs(attrs),
		StartTime:  e.now().UTC(),
		Status:     trace.StatusUnset,
	}
	ts.spans[span.SpanID] = &spanState{span: span}
	ps.openKids++
	snapshot := span.Clone()
	e.mu.Unlock()

	e.broadcast(ctx, sinkEvent{kind: eventOpen, span: snapshot})
	return ports.SpanRef{TraceID: span.TraceID, SpanID: span.SpanID}, nil
}

// SetAttribute sets one attribute on an open span.
func (e *Emitter) SetAttribute(ctx context.Context, ref ports.SpanRef, key string, value any) error {
	e.mu.Lock()
	_, ss, err := e.lookup(ref)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	if ss.closed {
		e.mu.Unlock()
		return spanStateErr("set attribute on closed span", ref)
	}

	if ss.span.Attributes == nil {
		ss.span.Attributes = make(map[string]any)
	}
	ss.span.Attributes[key] = value
	snapshot := ss.span.Clone()
	e.mu.Unlock()

	e.broadcast(ctx, sinkEvent{kind: eventSetAttribute, span: snapshot, key: key, value: value})
	return nil
}

// End closes a span with the given status. The message is recorded only for
// trace.StatusError.
func (e *Emitter) End(ctx context.Context, ref ports.SpanRef, status trace.Status, message string) error {
	snapshot, err := e.close(ref, status, message, false)
	if err != nil {
		return err
	}

	e.broadcast(ctx, sinkEvent{kind: eventClose, span: snapshot})
	return nil
}

// EndTurn closes the root span, then flushes every sink. The trace's state
// is released; its identifiers are never reused.
func (e *Emitter) EndTurn(ctx context.Context, ref ports.SpanRef, status trace.Status, message string) error {
	snapshot, err := e.close(ref, status, message, true)
	if err != nil {
		return err
	}

	e.broadcast(ctx, sinkEvent{kind: eventClose, span: snapshot})
	e.broadcast(ctx, sinkEvent{kind: eventFlush})
	return nil
}

// close applies the close transition under the lock and returns the final
// snapshot for delivery. Closing the root releases the whole trace: a root
// may only close once all descendants have, so nothing is left behind.
func (e *Emitter) close(ref ports.SpanRef, status trace.Status, message string, requireRoot bool) (*trace.Span, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ts, ss, err := e.lookup(ref)
	if err != nil {
		return nil, err
	}
	if requireRoot && ts.rootID != ref.SpanID {
		return nil, spanStateErr("end turn on non-root span", ref)
	}
	if ss.closed {
		return nil, spanStateErr("span already closed", ref)
	}
	if ss.openKids > 0 {
		return nil, fmt.Errorf("close span %s/%s with %d open children: %w",
			ref.TraceID, ref.SpanID, ss.openKids, domain.ErrSpanState)
	}

	end := e.now().UTC()
	ss.span.EndTime = &end
	ss.span.Status = status
	if status == trace.StatusError {
		ss.span.StatusMessage = message
	}
	ss.closed = true

	if ss.span.ParentID != "" {
		if parent, ok := ts.spans[ss.span.ParentID]; ok {
			parent.openKids--
		}
	}

	snapshot := ss.span.Clone()
	if ts.rootID == ref.SpanID {
		delete(e.traces, ref.TraceID)
	}
	return snapshot, nil
}

// lookup resolves a ref to its trace and span state. Callers hold e.mu.
func (e *Emitter) lookup(ref ports.SpanRef) (*traceState, *spanState, error) {
	ts, ok := e.traces[ref.TraceID]
	if !ok {
		return nil, nil, spanStateErr("unknown trace", ref)
	}
	ss, ok := ts.spans[ref.SpanID]
	if !ok {
		return nil, nil, spanStateErr("unknown span", ref)
	}
	return ts, ss, nil
}

// sinkEvent is one lifecycle event queued for delivery. span is a snapshot
// owned by the broadcast; each sink gets its own clone of it.
type sinkEvent struct {
	kind  string
	span  *trace.Span
	key   string
	value any
}

// broadcast delivers one event to every sink: primary first, synchronously,
// then the rest concurrently, joined before returning. Delivery uses a
// context detached from cancellation; a caller timeout must not tear half a
// trace out of the sinks.
func (e *Emitter) broadcast(ctx context.Context, ev sinkEvent) {
	if len(e.sinks) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)

	e.send(ctx, e.sinks[0], ev)

	rest := e.sinks[1:]
	if len(rest) == 0 {
		return
	}
	fanout.Run(ctx, e.maxWorkers, rest, func(ctx context.Context, sink ports.SpanSink) (struct{}, error) {
		e.send(ctx, sink, ev)
		return struct{}{}, nil
	})
}

// send delivers one event to one sink, absorbing errors and panics.
func (e *Emitter) send(ctx context.Context, sink ports.SpanSink, ev sinkEvent) {
	defer func() {
		if r := recover(); r != nil {
			e.recordFailure(ctx, sink, ev.kind, fmt.Errorf("panic: %v", r))
		}
	}()

	var err error
	switch ev.kind {
	case eventOpen:
		err = sink.OnOpen(ctx, ev.span.Clone())
	case eventSetAttribute:
		err = sink.OnSetAttribute(ctx, ev.span.Clone(), ev.key, ev.value)
	case eventClose:
		err = sink.OnClose(ctx, ev.span.Clone())
	case eventFlush:
		err = sink.Flush(ctx)
	}
	if err != nil {
		e.recordFailure(ctx, sink, ev.kind, err)
	}
}

func (e *Emitter) recordFailure(ctx context.Context, sink ports.SpanSink, event string, err error) {
	e.logger.WarnContext(ctx, "trace sink delivery failed",
		slog.String("sink", sink.Name()),
		slog.String("event", event),
		slog.Any("error", err),
	)
	if e.metrics != nil {
		e.metrics.SinkFailureTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrSink.String(sink.Name()),
			telemetry.AttrSinkEvent.String(event),
		))
	}
}

func spanStateErr(msg string, ref ports.SpanRef) error {
	return fmt.Errorf("%s (%s/%s): %w", msg, ref.TraceID, ref.SpanID, domain.ErrSpanState)
}

// newHexID returns n random bytes as lowercase hex. crypto/rand does not
// fail on supported platforms.
func newHexID(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func copyAttrs(attrs map[string]any) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	return maps.Clone(attrs)
}
