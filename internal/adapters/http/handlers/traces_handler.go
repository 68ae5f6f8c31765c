package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-agent/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-agent/internal/adapters/http/sse"
	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// keepaliveInterval is how often an idle span stream sends an SSE comment
// so proxies do not drop the connection.
const keepaliveInterval = 15 * time.Second

// TracesHandler serves the trace inspection API backed by the in-memory
// sink: recent traces, a single span tree, and a live stream of closed
// spans over SSE.
type TracesHandler struct {
	reader ports.TraceReader
	stream ports.SpanStream
}

// NewTracesHandler creates a new TracesHandler with the given query and
// stream ports.
func NewTracesHandler(reader ports.TraceReader, stream ports.SpanStream) *TracesHandler {
	return &TracesHandler{reader: reader, stream: stream}
}

// ListTraces handles GET /api/v1/traces.
func (h *TracesHandler) ListTraces(w http.ResponseWriter, r *http.Request) {
	traces, err := h.reader.ListTraces(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTraceListResponse(traces))
}

// GetTrace handles GET /api/v1/traces/{trace_id}.
func (h *TracesHandler) GetTrace(w http.ResponseWriter, r *http.Request) {
	traceID := chi.URLParam(r, "trace_id")
	if traceID == "" {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"trace_id": "is required"},
		})
		return
	}

	tr, err := h.reader.GetTrace(r.Context(), traceID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTraceResponse(tr))
}

// StreamSpans handles GET /api/v1/traces/stream. It subscribes to the span
// stream and forwards every closed span as an SSE "span" event until the
// client disconnects. The route must bypass the timeout middleware.
func (h *TracesHandler) StreamSpans(w http.ResponseWriter, r *http.Request) {
	writer := sse.NewWriter(w)
	if writer == nil {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	spans, cancel := h.stream.Subscribe()
	defer cancel()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case span, ok := <-spans:
			if !ok {
				return
			}
			if err := writer.SendEvent("span", dto.ToSpanResponse(span)); err != nil {
				return
			}
		case <-keepalive.C:
			writer.SendComment("keepalive")
		}
	}
}
