// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-agent/internal/domain/todo"
	"github.com/jsamuelsen11/todo-agent/internal/domain/trace"
)

// ChatResponse represents the agent's reply to one conversational turn.
// SessionKey echoes the session the turn was recorded under so clients
// that omitted it learn which session to continue.
type ChatResponse struct {
	Reply      string `json:"reply"`
	SessionKey string `json:"session_key"`
}

// TodoResponse represents a single todo item in HTTP responses.
type TodoResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Project     string `json:"project,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Project:     t.Project,
		Status:      t.Status.String(),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

// TodoListResponse represents a list of todo items in HTTP responses.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count int            `json:"count"`
}

// ToTodoListResponse converts a slice of domain Todo entities to an HTTP
// list response DTO.
func ToTodoListResponse(todos []todo.Todo) TodoListResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return TodoListResponse{
		Todos: items,
		Count: len(items),
	}
}

// SpanResponse represents a single span in HTTP responses. EndTime is
// omitted while the span is open.
type SpanResponse struct {
	TraceID       string         `json:"trace_id"`
	SpanID        string         `json:"span_id"`
	ParentID      string         `json:"parent_id,omitempty"`
	Name          string         `json:"name"`
	Kind          string         `json:"kind"`
	Status        string         `json:"status"`
	StatusMessage string         `json:"status_message,omitempty"`
	StartTime     string         `json:"start_time"`
	EndTime       string         `json:"end_time,omitempty"`
	DurationMs    float64        `json:"duration_ms"`
	Attributes    map[string]any `json:"attributes,omitempty"`
}

// ToSpanResponse converts a domain Span to an HTTP response DTO.
func ToSpanResponse(s *trace.Span) SpanResponse {
	resp := SpanResponse{
		TraceID:       s.TraceID,
		SpanID:        s.SpanID,
		ParentID:      s.ParentID,
		Name:          s.Name,
		Kind:          s.Kind.String(),
		Status:        s.Status.String(),
		StatusMessage: s.StatusMessage,
		StartTime:     s.StartTime.Format(time.RFC3339Nano),
		Attributes:    s.Attributes,
	}
	if s.EndTime != nil {
		resp.EndTime = s.EndTime.Format(time.RFC3339Nano)
		resp.DurationMs = float64(s.Duration().Microseconds()) / 1000
	}
	return resp
}

// TraceResponse represents a full span tree in HTTP responses. Spans are
// ordered by start time.
type TraceResponse struct {
	TraceID   string         `json:"trace_id"`
	Name      string         `json:"name"`
	StartTime string         `json:"start_time"`
	Spans     []SpanResponse `json:"spans"`
}

// ToTraceResponse converts a domain Trace to an HTTP response DTO.
func ToTraceResponse(t *trace.Trace) TraceResponse {
	sorted := t.Sorted()
	spans := make([]SpanResponse, len(sorted))
	for i, s := range sorted {
		spans[i] = ToSpanResponse(s)
	}
	return TraceResponse{
		TraceID:   t.TraceID,
		Name:      t.Name(),
		StartTime: t.StartTime.Format(time.RFC3339Nano),
		Spans:     spans,
	}
}

// TraceSummaryResponse represents one trace in list responses: the root
// span's identity and outcome without the full span tree.
type TraceSummaryResponse struct {
	TraceID   string `json:"trace_id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	StartTime string `json:"start_time"`
	SpanCount int    `json:"span_count"`
}

// ToTraceSummaryResponse converts a domain Trace to a list-entry DTO. The
// status is the root span's status, or unset if the root has not closed.
func ToTraceSummaryResponse(t *trace.Trace) TraceSummaryResponse {
	status := trace.StatusUnset
	if root := t.Root(); root != nil {
		status = root.Status
	}
	return TraceSummaryResponse{
		TraceID:   t.TraceID,
		Name:      t.Name(),
		Status:    status.String(),
		StartTime: t.StartTime.Format(time.RFC3339Nano),
		SpanCount: len(t.Spans),
	}
}

// TraceListResponse represents a list of trace summaries in HTTP responses.
type TraceListResponse struct {
	Traces []TraceSummaryResponse `json:"traces"`
	Count  int                    `json:"count"`
}

// ToTraceListResponse converts domain Traces to an HTTP list response DTO.
func ToTraceListResponse(traces []*trace.Trace) TraceListResponse {
	items := make([]TraceSummaryResponse, len(traces))
	for i, t := range traces {
		items[i] = ToTraceSummaryResponse(t)
	}
	return TraceListResponse{
		Traces: items,
		Count:  len(items),
	}
}
