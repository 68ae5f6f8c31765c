package trace

import (
	"slices"
	"time"
)

// Trace is a completed or in-flight span tree grouped by trace ID, as served
// by the in-memory sink's query surface.
type Trace struct {
	TraceID   string
	Spans     []*Span
	StartTime time.Time
}

// Root returns the root span, or nil if it has not been recorded yet.
func (t *Trace) Root() *Span {
	for _, s := range t.Spans {
		if s.IsRoot() {
			return s
		}
	}
	return nil
}

// Name returns the root span's name, or empty if the root is unknown.
func (t *Trace) Name() string {
	if root := t.Root(); root != nil {
		return root.Name
	}
	return ""
}

// Sorted returns the spans ordered by start time, earliest first. Spans that
// started in the same instant keep their recorded order.
func (t *Trace) Sorted() []*Span {
	out := slices.Clone(t.Spans)
	slices.SortStableFunc(out, func(a, b *Span) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return out
}
