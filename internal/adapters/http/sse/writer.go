// Package sse implements Server-Sent Events framing for the live span
// stream endpoint.
package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// streamingHeaders are set before the stream is committed. X-Accel-Buffering
// stops nginx from buffering the response.
var streamingHeaders = map[string]string{
	"Content-Type":      "text/event-stream",
	"Cache-Control":     "no-cache",
	"Connection":        "keep-alive",
	"X-Accel-Buffering": "no",
}

// Writer frames events onto an http.ResponseWriter and flushes after every
// write so events reach the client immediately. Flushing goes through
// http.ResponseController, which reaches the real connection through any
// middleware wrappers that implement Unwrap.
type Writer struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

// NewWriter prepares the response for event streaming and commits the
// header. Returns nil if the underlying connection cannot flush; callers
// must treat that as an unusable stream.
func NewWriter(w http.ResponseWriter) *Writer {
	for k, v := range streamingHeaders {
		w.Header().Set(k, v)
	}

	rc := http.NewResponseController(w)
	if err := rc.Flush(); err != nil {
		for k := range streamingHeaders {
			w.Header().Del(k)
		}
		return nil
	}

	return &Writer{w: w, rc: rc}
}

// SendEvent writes a named SSE event with a JSON payload. A write or flush
// error means the client is gone and the stream should be abandoned.
func (s *Writer) SendEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal SSE data: %w", err)
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, jsonData); err != nil {
		return fmt.Errorf("write SSE event: %w", err)
	}
	return s.rc.Flush()
}

// SendComment writes an SSE comment. Comments carry no data; clients ignore
// them, which makes them the keep-alive mechanism for idle streams.
func (s *Writer) SendComment(text string) {
	fmt.Fprintf(s.w, ": %s\n\n", text)
	_ = s.rc.Flush()
}
