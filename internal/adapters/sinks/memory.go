// Package sinks contains the span sink adapters behind the trace emitter:
// an OTel exporter bridge (otlp or stdout), a JSON file log, a bounded
// in-memory store serving the traces API, and a SQLite archive. Every sink
// receives its own copy of each span and fails independently of the others.
package sinks

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/domain/trace"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// subscriberBuffer is the per-subscriber channel capacity. A subscriber
// that falls further behind than this loses events rather than blocking
// span delivery.
const subscriberBuffer = 16

// Compile-time interface checks.
var (
	_ ports.SpanSink    = (*Memory)(nil)
	_ ports.TraceReader = (*Memory)(nil)
	_ ports.SpanStream  = (*Memory)(nil)
)

// Memory retains recent traces in memory with FIFO eviction and doubles as
// the query surface for the traces API and the feed for the live span
// stream. Spans handed out by ListTraces/GetTrace are copies; callers may
// hold them as long as they like.
type Memory struct {
	mu     sync.RWMutex
	max    int
	traces map[string]*memTrace
	order  []string

	subMu sync.Mutex
	subs  map[chan *trace.Span]struct{}
}

// memTrace is one retained trace: spans in arrival order plus an index for
// in-place replacement as lifecycle events land.
type memTrace struct {
	trace *trace.Trace
	spans map[string]*trace.Span
}

// NewMemory creates a memory sink that retains up to capacity traces.
// Values below 1 are raised to 1.
func NewMemory(capacity int) *Memory {
	if capacity < 1 {
		capacity = 1
	}
	return &Memory{
		max:    capacity,
		traces: make(map[string]*memTrace),
		order:  make([]string, 0, capacity),
		subs:   make(map[chan *trace.Span]struct{}),
	}
}

// Name identifies the sink in logs and metrics.
func (m *Memory) Name() string {
	return "memory"
}

// OnOpen records the opened span, creating the trace entry and evicting the
// oldest retained trace if at capacity.
func (m *Memory) OnOpen(_ context.Context, span *trace.Span) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	mt, ok := m.traces[span.TraceID]
	if !ok {
		if len(m.order) >= m.max {
			oldest := m.order[0]
			delete(m.traces, oldest)
			m.order = m.order[1:]
		}
		mt = &memTrace{
			trace: &trace.Trace{TraceID: span.TraceID, StartTime: span.StartTime},
			spans: make(map[string]*trace.Span),
		}
		m.traces[span.TraceID] = mt
		m.order = append(m.order, span.TraceID)
	}

	mt.trace.Spans = append(mt.trace.Spans, span)
	mt.spans[span.SpanID] = span
	return nil
}

// OnSetAttribute replaces the stored span with the annotated snapshot.
func (m *Memory) OnSetAttribute(_ context.Context, span *trace.Span, _ string, _ any) error {
	return m.replace(span)
}

// OnClose replaces the stored span with its final snapshot and broadcasts
// it to live subscribers.
func (m *Memory) OnClose(_ context.Context, span *trace.Span) error {
	if err := m.replace(span); err != nil {
		return err
	}
	m.broadcast(span)
	return nil
}

// Flush is a no-op; nothing is buffered.
func (m *Memory) Flush(context.Context) error {
	return nil
}

// ListTraces returns retained traces, most recently started first.
func (m *Memory) ListTraces(context.Context) ([]*trace.Trace, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*trace.Trace, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, m.traces[m.order[i]].snapshot())
	}
	return out, nil
}

// GetTrace returns a single trace by ID.
func (m *Memory) GetTrace(_ context.Context, traceID string) (*trace.Trace, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mt, ok := m.traces[traceID]
	if !ok {
		return nil, fmt.Errorf("trace %s: %w", traceID, domain.ErrNotFound)
	}
	return mt.snapshot(), nil
}

// Subscribe registers a live span subscriber. The returned cancel function
// releases the subscription and closes the channel.
func (m *Memory) Subscribe() (<-chan *trace.Span, func()) {
	ch := make(chan *trace.Span, subscriberBuffer)

	m.subMu.Lock()
	m.subs[ch] = struct{}{}
	m.subMu.Unlock()

	cancel := func() {
		m.subMu.Lock()
		if _, ok := m.subs[ch]; ok {
			delete(m.subs, ch)
			close(ch)
		}
		m.subMu.Unlock()
	}
	return ch, cancel
}

func (m *Memory) replace(span *trace.Span) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	mt, ok := m.traces[span.TraceID]
	if !ok {
		// Trace already evicted; nothing to update.
		return nil
	}
	old, ok := mt.spans[span.SpanID]
	if !ok {
		return nil
	}

	for i, s := range mt.trace.Spans {
		if s == old {
			mt.trace.Spans[i] = span
			break
		}
	}
	mt.spans[span.SpanID] = span
	return nil
}

// broadcast sends the closed span to every subscriber, dropping the event
// for any subscriber whose buffer is full.
func (m *Memory) broadcast(span *trace.Span) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	for ch := range m.subs {
		select {
		case ch <- span.Clone():
		default:
		}
	}
}

func (mt *memTrace) snapshot() *trace.Trace {
	out := &trace.Trace{TraceID: mt.trace.TraceID, StartTime: mt.trace.StartTime}
	out.Spans = make([]*trace.Span, len(mt.trace.Spans))
	for i, s := range mt.trace.Spans {
		out.Spans[i] = s.Clone()
	}
	return out
}
