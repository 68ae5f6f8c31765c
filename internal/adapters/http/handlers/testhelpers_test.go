package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-agent/internal/domain/todo"
	"github.com/jsamuelsen11/todo-agent/internal/domain/trace"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          1,
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		Project:     "errands",
		Status:      todo.StatusOpen,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func validTrace() *trace.Trace {
	end := testTime.Add(2 * time.Second)
	return &trace.Trace{
		TraceID:   "0af7651916cd43dd8448eb211c80319c",
		StartTime: testTime,
		Spans: []*trace.Span{
			{
				TraceID:   "0af7651916cd43dd8448eb211c80319c",
				SpanID:    "00f067aa0ba902b7",
				Name:      "turn",
				Kind:      trace.KindTurn,
				Status:    trace.StatusOK,
				StartTime: testTime,
				EndTime:   &end,
			},
			{
				TraceID:   "0af7651916cd43dd8448eb211c80319c",
				SpanID:    "b7ad6b7169203331",
				ParentID:  "00f067aa0ba902b7",
				Name:      "model-call",
				Kind:      trace.KindModelCall,
				Status:    trace.StatusOK,
				StartTime: testTime.Add(100 * time.Millisecond),
				EndTime:   &end,
			},
		},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
