package sinks

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/todo-agent/internal/domain/trace"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// Compile-time interface checks. The sink also reports health so readiness
// notices a broken archive.
var (
	_ ports.SpanSink      = (*SQLite)(nil)
	_ ports.HealthChecker = (*SQLite)(nil)
)

// SQLite archives completed spans in a local spans table. Unlike the memory
// sink it survives restarts; unlike the file sink it is queryable with
// plain SQL.
type SQLite struct {
	db   *sql.DB
	path string
}

// NewSQLite opens (creating if needed) the span archive at path.
func NewSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	s := &SQLite{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *SQLite) ensureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS spans (
		trace_id       TEXT NOT NULL,
		span_id        TEXT NOT NULL,
		parent_id      TEXT NOT NULL DEFAULT '',
		name           TEXT NOT NULL,
		kind           TEXT NOT NULL,
		status         TEXT NOT NULL,
		status_message TEXT NOT NULL DEFAULT '',
		attributes     TEXT NOT NULL DEFAULT '{}',
		start_time     TEXT NOT NULL,
		end_time       TEXT NOT NULL,
		PRIMARY KEY (trace_id, span_id)
	);

	CREATE INDEX IF NOT EXISTS idx_spans_start ON spans(start_time);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Name identifies the sink in logs, metrics, and the health registry.
func (s *SQLite) Name() string {
	return "sqlite"
}

// OnOpen is a no-op; the archive records completed spans.
func (s *SQLite) OnOpen(context.Context, *trace.Span) error {
	return nil
}

// OnSetAttribute is a no-op; the close snapshot carries final attributes.
func (s *SQLite) OnSetAttribute(context.Context, *trace.Span, string, any) error {
	return nil
}

// OnClose inserts the completed span.
func (s *SQLite) OnClose(ctx context.Context, span *trace.Span) error {
	attrs := "{}"
	if len(span.Attributes) > 0 {
		data, err := json.Marshal(span.Attributes)
		if err != nil {
			return fmt.Errorf("encode attributes for span %s: %w", span.SpanID, err)
		}
		attrs = string(data)
	}

	endTime := ""
	if span.EndTime != nil {
		endTime = span.EndTime.UTC().Format(time.RFC3339Nano)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO spans (trace_id, span_id, parent_id, name, kind, status, status_message, attributes, start_time, end_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		span.TraceID, span.SpanID, span.ParentID, span.Name, span.Kind.String(),
		span.Status.String(), span.StatusMessage, attrs,
		span.StartTime.UTC().Format(time.RFC3339Nano), endTime,
	)
	if err != nil {
		return fmt.Errorf("insert span %s/%s: %w", span.TraceID, span.SpanID, err)
	}
	return nil
}

// Flush is a no-op; inserts are synchronous.
func (s *SQLite) Flush(context.Context) error {
	return nil
}

// HealthCheck pings the database.
func (s *SQLite) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	return nil
}

// Close closes the database. The sink must not be used afterwards.
func (s *SQLite) Close() error {
	return s.db.Close()
}
