package sinks

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	otrace "go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-agent/internal/domain/trace"
	"github.com/jsamuelsen11/todo-agent/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// Compile-time interface check.
var _ ports.SpanSink = (*OTel)(nil)

// OTel bridges emitter spans into an OpenTelemetry tracer provider, backed
// by either an OTLP/HTTP or a stdout exporter. The sink owns a dedicated
// provider with an ID generator that records each span under the exact
// identifiers the emitter assigned, so traces in the backend line up with
// the other sinks span for span.
type OTel struct {
	name   string
	tp     *sdktrace.TracerProvider
	tracer otrace.Tracer

	mu   sync.Mutex
	open map[spanKey]otrace.Span
}

type spanKey struct {
	traceID string
	spanID  string
}

// NewOTLP creates an OTel sink exporting over OTLP/HTTP to the given
// endpoint.
func NewOTLP(ctx context.Context, serviceName, endpoint string) (*OTel, error) {
	exp, err := telemetry.NewSpanExporter(ctx, "otlp", endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating otlp exporter: %w", err)
	}
	return newOTel("otlp", serviceName, exp)
}

// NewStdout creates an OTel sink pretty-printing spans to stdout for
// development.
func NewStdout(serviceName string) (*OTel, error) {
	exp, err := telemetry.NewSpanExporter(context.Background(), "stdout", "")
	if err != nil {
		return nil, fmt.Errorf("creating stdout exporter: %w", err)
	}
	return newOTel("stdout", serviceName, exp)
}

func newOTel(name, serviceName string, exporter sdktrace.SpanExporter) (*OTel, error) {
	res, err := telemetry.NewResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithIDGenerator(verbatimIDGenerator{}),
	)
	return &OTel{
		name:   name,
		tp:     tp,
		tracer: tp.Tracer("github.com/jsamuelsen11/todo-agent/internal/adapters/sinks"),
		open:   make(map[spanKey]otrace.Span),
	}, nil
}

// Name identifies the sink in logs and metrics.
func (s *OTel) Name() string {
	return s.name
}

// OnOpen starts an SDK span under the emitter's identifiers, linked to its
// parent when one is open.
func (s *OTel) OnOpen(ctx context.Context, span *trace.Span) error {
	tid, err := otrace.TraceIDFromHex(span.TraceID)
	if err != nil {
		return fmt.Errorf("trace ID %q: %w", span.TraceID, err)
	}
	sid, err := otrace.SpanIDFromHex(span.SpanID)
	if err != nil {
		return fmt.Errorf("span ID %q: %w", span.SpanID, err)
	}
	ctx = withDesiredIDs(ctx, tid, sid)

	if span.ParentID != "" {
		s.mu.Lock()
		parent, ok := s.open[spanKey{span.TraceID, span.ParentID}]
		s.mu.Unlock()
		if !ok {
			return fmt.Errorf("parent span %s/%s not open in %s sink", span.TraceID, span.ParentID, s.name)
		}
		ctx = otrace.ContextWithSpanContext(ctx, parent.SpanContext())
	}

	_, sdkSpan := s.tracer.Start(ctx, span.Name,
		otrace.WithTimestamp(span.StartTime),
		otrace.WithSpanKind(toOTelKind(span.Kind)),
		otrace.WithAttributes(toOTelAttrs(span.Attributes)...),
	)

	s.mu.Lock()
	s.open[spanKey{span.TraceID, span.SpanID}] = sdkSpan
	s.mu.Unlock()
	return nil
}

// OnSetAttribute forwards the attribute to the open SDK span.
func (s *OTel) OnSetAttribute(_ context.Context, span *trace.Span, key string, value any) error {
	s.mu.Lock()
	sdkSpan, ok := s.open[spanKey{span.TraceID, span.SpanID}]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("span %s/%s not open in %s sink", span.TraceID, span.SpanID, s.name)
	}
	sdkSpan.SetAttributes(toOTelAttr(key, value))
	return nil
}

// OnClose sets the final status and ends the SDK span.
func (s *OTel) OnClose(_ context.Context, span *trace.Span) error {
	key := spanKey{span.TraceID, span.SpanID}

	s.mu.Lock()
	sdkSpan, ok := s.open[key]
	delete(s.open, key)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("span %s/%s not open in %s sink", span.TraceID, span.SpanID, s.name)
	}

	switch span.Status {
	case trace.StatusOK:
		sdkSpan.SetStatus(codes.Ok, "")
	case trace.StatusError:
		sdkSpan.SetStatus(codes.Error, span.StatusMessage)
	}

	opts := []otrace.SpanEndOption{}
	if span.EndTime != nil {
		opts = append(opts, otrace.WithTimestamp(*span.EndTime))
	}
	sdkSpan.End(opts...)
	return nil
}

// Flush forces the batcher to export everything ended so far.
func (s *OTel) Flush(ctx context.Context) error {
	if err := s.tp.ForceFlush(ctx); err != nil {
		return fmt.Errorf("flushing %s exporter: %w", s.name, err)
	}
	return nil
}

// Close shuts the provider down, flushing a final time.
func (s *OTel) Close(ctx context.Context) error {
	return s.tp.Shutdown(ctx)
}

// desiredIDsKey carries the identifiers the next started span must use.
type desiredIDsKey struct{}

type desiredIDs struct {
	traceID otrace.TraceID
	spanID  otrace.SpanID
}

func withDesiredIDs(ctx context.Context, tid otrace.TraceID, sid otrace.SpanID) context.Context {
	return context.WithValue(ctx, desiredIDsKey{}, desiredIDs{traceID: tid, spanID: sid})
}

// verbatimIDGenerator makes the SDK record spans under the emitter's
// identifiers instead of minting its own.
type verbatimIDGenerator struct{}

var _ sdktrace.IDGenerator = verbatimIDGenerator{}

func (verbatimIDGenerator) NewIDs(ctx context.Context) (otrace.TraceID, otrace.SpanID) {
	ids, _ := ctx.Value(desiredIDsKey{}).(desiredIDs)
	return ids.traceID, ids.spanID
}

func (verbatimIDGenerator) NewSpanID(ctx context.Context, _ otrace.TraceID) otrace.SpanID {
	ids, _ := ctx.Value(desiredIDsKey{}).(desiredIDs)
	return ids.spanID
}

func toOTelKind(kind trace.Kind) otrace.SpanKind {
	switch kind {
	case trace.KindTurn:
		return otrace.SpanKindServer
	case trace.KindModelCall, trace.KindToolCall:
		return otrace.SpanKindClient
	default:
		return otrace.SpanKindInternal
	}
}

func toOTelAttrs(attrs map[string]any) []attribute.KeyValue {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		out = append(out, toOTelAttr(k, v))
	}
	return out
}

func toOTelAttr(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case bool:
		return attribute.Bool(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}
