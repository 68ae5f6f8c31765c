// Package trace holds the span model emitted by the agent: one root span per
// turn with child spans for each model call and tool call. Identifiers are
// assigned once when a span opens and reused verbatim by every sink, so the
// same hierarchy is reconstructible in every backend.
package trace

import (
	"maps"
	"time"
)

// Kind classifies what a span brackets.
type Kind string

const (
	KindTurn      Kind = "turn"
	KindModelCall Kind = "model-call"
	KindToolCall  Kind = "tool-call"
)

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindTurn, KindModelCall, KindToolCall:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Status is the outcome recorded when a span closes. Open spans are Unset.
type Status string

const (
	StatusUnset Status = "unset"
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusUnset, StatusOK, StatusError:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Span is one node in a turn's trace tree. TraceID is 32 lowercase hex
// characters and SpanID 16, matching W3C Trace Context widths. ParentID is
// empty only for the root. EndTime is nil while the span is open.
//
// Attribute values are strings or numbers. Each sink receives its own copy
// of the span; the emitter does not retain spans after the root closes.
type Span struct {
	TraceID       string
	SpanID        string
	ParentID      string
	Name          string
	Kind          Kind
	Attributes    map[string]any
	StartTime     time.Time
	EndTime       *time.Time
	Status        Status
	StatusMessage string
}

// IsRoot reports whether the span is the root of its trace.
func (s *Span) IsRoot() bool {
	return s.ParentID == ""
}

// IsOpen reports whether the span has not yet closed.
func (s *Span) IsOpen() bool {
	return s.EndTime == nil
}

// Duration returns the span's wall-clock duration, or zero while it is open.
func (s *Span) Duration() time.Duration {
	if s.EndTime == nil {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// Clone returns a deep copy of the span. Sinks receive clones so that one
// backend mutating its copy can never leak into another.
func (s *Span) Clone() *Span {
	c := *s
	if s.Attributes != nil {
		c.Attributes = maps.Clone(s.Attributes)
	}
	if s.EndTime != nil {
		end := *s.EndTime
		c.EndTime = &end
	}
	return &c
}
