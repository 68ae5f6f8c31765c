package sse_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-agent/internal/adapters/http/sse"
)

func TestNewWriter_SetsStreamingHeaders(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()

	w := sse.NewWriter(rec)
	if w == nil {
		t.Fatal("NewWriter() = nil for a flushable writer")
	}

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q, want %q", ct, "text/event-stream")
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-cache" {
		t.Errorf("Cache-Control = %q, want %q", cc, "no-cache")
	}
}

func TestWriter_SendEvent(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := sse.NewWriter(rec)

	if err := w.SendEvent("span", map[string]string{"name": "turn"}); err != nil {
		t.Fatalf("SendEvent() error = %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "event: span\n") {
		t.Errorf("body missing event line: %q", body)
	}
	if !strings.Contains(body, `data: {"name":"turn"}`) {
		t.Errorf("body missing data line: %q", body)
	}
	if !strings.HasSuffix(body, "\n\n") {
		t.Errorf("event not terminated by blank line: %q", body)
	}
}

func TestWriter_SendEvent_UnmarshalableData(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := sse.NewWriter(rec)

	if err := w.SendEvent("span", func() {}); err == nil {
		t.Error("SendEvent() = nil, want error for unmarshalable data")
	}
}

func TestWriter_SendComment(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := sse.NewWriter(rec)

	w.SendComment("keepalive")

	if got := rec.Body.String(); got != ": keepalive\n\n" {
		t.Errorf("body = %q, want %q", got, ": keepalive\n\n")
	}
}

// wrappedWriter hides the underlying writer's Flush behind an Unwrap chain,
// the shape middleware wrappers have.
type wrappedWriter struct {
	inner http.ResponseWriter
}

func (w *wrappedWriter) Header() http.Header         { return w.inner.Header() }
func (w *wrappedWriter) Write(b []byte) (int, error) { return w.inner.Write(b) }
func (w *wrappedWriter) WriteHeader(code int)        { w.inner.WriteHeader(code) }
func (w *wrappedWriter) Unwrap() http.ResponseWriter { return w.inner }

func TestNewWriter_FlushesThroughUnwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := sse.NewWriter(&wrappedWriter{inner: rec})
	if w == nil {
		t.Fatal("NewWriter() = nil for a wrapper with Unwrap")
	}
	if !rec.Flushed {
		t.Error("initial flush did not reach the underlying writer")
	}
}

// plainWriter implements http.ResponseWriter without http.Flusher.
type plainWriter struct {
	header http.Header
}

func (w *plainWriter) Header() http.Header {
	if w.header == nil {
		w.header = http.Header{}
	}
	return w.header
}

func (w *plainWriter) Write(b []byte) (int, error) { return len(b), nil }

func (w *plainWriter) WriteHeader(int) {}

func TestNewWriter_RequiresFlusher(t *testing.T) {
	t.Parallel()

	var w plainWriter
	if got := sse.NewWriter(&w); got != nil {
		t.Error("NewWriter() != nil for a non-flushable writer")
	}
	if ct := w.Header().Get("Content-Type"); ct != "" {
		t.Errorf("streaming headers left behind on failure: Content-Type = %q", ct)
	}
}
