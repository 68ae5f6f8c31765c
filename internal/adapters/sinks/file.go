package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-agent/internal/domain/trace"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// Compile-time interface check.
var _ ports.SpanSink = (*File)(nil)

// File appends completed spans to a local JSON-lines log, one object per
// line. Spans are written when they close; open and annotate events carry
// no information the close snapshot doesn't already include.
type File struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// NewFile opens (creating if needed) the span log at path in append mode.
func NewFile(path string) (*File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating span log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening span log: %w", err)
	}
	return &File{f: f, path: path}, nil
}

// Name identifies the sink in logs and metrics.
func (s *File) Name() string {
	return "file"
}

// OnOpen is a no-op; the close snapshot carries the full span.
func (s *File) OnOpen(context.Context, *trace.Span) error {
	return nil
}

// OnSetAttribute is a no-op; the close snapshot carries final attributes.
func (s *File) OnSetAttribute(context.Context, *trace.Span, string, any) error {
	return nil
}

// OnClose appends the span as one JSON line.
func (s *File) OnClose(_ context.Context, span *trace.Span) error {
	line, err := json.Marshal(toFileRecord(span))
	if err != nil {
		return fmt.Errorf("encoding span %s: %w", span.SpanID, err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.f.Write(line); err != nil {
		return fmt.Errorf("writing span log %s: %w", s.path, err)
	}
	return nil
}

// Flush forces the log to disk.
func (s *File) Flush(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("syncing span log %s: %w", s.path, err)
	}
	return nil
}

// Close closes the underlying file. The sink must not be used afterwards.
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}

// fileRecord is the on-disk span layout: identifiers nested under context,
// status under status_code, RFC3339 times, null parent_id for the root.
type fileRecord struct {
	Name       string         `json:"name"`
	Context    fileContext    `json:"context"`
	Kind       string         `json:"kind"`
	ParentID   *string        `json:"parent_id"`
	StartTime  string         `json:"start_time"`
	EndTime    *string        `json:"end_time"`
	Status     fileStatus     `json:"status"`
	Attributes map[string]any `json:"attributes"`
}

type fileContext struct {
	TraceID string `json:"trace_id"`
	SpanID  string `json:"span_id"`
}

type fileStatus struct {
	StatusCode  string `json:"status_code"`
	Description string `json:"description,omitempty"`
}

func toFileRecord(span *trace.Span) fileRecord {
	rec := fileRecord{
		Name:      span.Name,
		Context:   fileContext{TraceID: span.TraceID, SpanID: span.SpanID},
		Kind:      span.Kind.String(),
		StartTime: span.StartTime.UTC().Format(time.RFC3339Nano),
		Status: fileStatus{
			StatusCode:  span.Status.String(),
			Description: span.StatusMessage,
		},
		Attributes: span.Attributes,
	}
	if span.ParentID != "" {
		rec.ParentID = &span.ParentID
	}
	if span.EndTime != nil {
		end := span.EndTime.UTC().Format(time.RFC3339Nano)
		rec.EndTime = &end
	}
	return rec
}
