package trace_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-agent/internal/domain/trace"
)

func TestKind_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind trace.Kind
		want bool
	}{
		{name: "turn", kind: trace.KindTurn, want: true},
		{name: "model call", kind: trace.KindModelCall, want: true},
		{name: "tool call", kind: trace.KindToolCall, want: true},
		{name: "empty", kind: trace.Kind(""), want: false},
		{name: "unknown", kind: trace.Kind("request"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status trace.Status
		want   bool
	}{
		{name: "unset", status: trace.StatusUnset, want: true},
		{name: "ok", status: trace.StatusOK, want: true},
		{name: "error", status: trace.StatusError, want: true},
		{name: "unknown", status: trace.Status("failed"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestSpan_Lifecycle(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	span := &trace.Span{
		TraceID:   "4bf92f3577b34da6a3ce929d0e0e4736",
		SpanID:    "00f067aa0ba902b7",
		Name:      "turn",
		Kind:      trace.KindTurn,
		StartTime: start,
		Status:    trace.StatusUnset,
	}

	assert.True(t, span.IsRoot())
	assert.True(t, span.IsOpen())
	assert.Zero(t, span.Duration())

	end := start.Add(250 * time.Millisecond)
	span.EndTime = &end
	span.Status = trace.StatusOK

	assert.False(t, span.IsOpen())
	assert.Equal(t, 250*time.Millisecond, span.Duration())
}

func TestSpan_Clone(t *testing.T) {
	t.Parallel()

	end := time.Date(2025, 6, 1, 12, 0, 1, 0, time.UTC)
	span := &trace.Span{
		TraceID:    "4bf92f3577b34da6a3ce929d0e0e4736",
		SpanID:     "00f067aa0ba902b7",
		ParentID:   "53995c3f42cd8ad8",
		Name:       "tool.create_item",
		Kind:       trace.KindToolCall,
		Attributes: map[string]any{"tool.name": "create_item"},
		StartTime:  end.Add(-time.Second),
		EndTime:    &end,
		Status:     trace.StatusOK,
	}

	clone := span.Clone()
	require.Equal(t, span, clone)

	clone.Attributes["tool.name"] = "mutated"
	*clone.EndTime = clone.EndTime.Add(time.Hour)

	assert.Equal(t, "create_item", span.Attributes["tool.name"])
	assert.Equal(t, end, *span.EndTime)
}

func TestTrace_RootAndSorted(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	root := &trace.Span{SpanID: "a1", Name: "turn", Kind: trace.KindTurn, StartTime: base}
	child := &trace.Span{SpanID: "b2", ParentID: "a1", Name: "model", Kind: trace.KindModelCall, StartTime: base.Add(time.Millisecond)}

	tr := &trace.Trace{
		TraceID:   "4bf92f3577b34da6a3ce929d0e0e4736",
		Spans:     []*trace.Span{child, root},
		StartTime: base,
	}

	require.NotNil(t, tr.Root())
	assert.Equal(t, "a1", tr.Root().SpanID)
	assert.Equal(t, "turn", tr.Name())

	sorted := tr.Sorted()
	require.Len(t, sorted, 2)
	assert.Equal(t, "a1", sorted[0].SpanID)
	assert.Equal(t, "b2", sorted[1].SpanID)
}

func TestTrace_NoRoot(t *testing.T) {
	t.Parallel()

	tr := &trace.Trace{TraceID: "deadbeef", Spans: []*trace.Span{
		{SpanID: "b2", ParentID: "a1"},
	}}

	assert.Nil(t, tr.Root())
	assert.Empty(t, tr.Name())
}
