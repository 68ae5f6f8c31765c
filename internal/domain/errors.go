package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
//
// ErrNotFound and ErrExternalService are tool-level: the orchestrator records
// them on the tool-call span and feeds them back to the model as an ordinary
// tool result. ErrStorage, ErrTurnBudget, and model-call ErrExternalService
// are fatal to the turn. ErrSpanState signals a span-lifecycle bug in the
// caller and is never recovered.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrExternalService = errors.New("external service error")
	ErrStorage         = errors.New("storage error")
	ErrSpanState       = errors.New("span state violation")
	ErrTurnBudget      = errors.New("turn budget exceeded")
	ErrUnknownTool     = errors.New("unknown tool")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Kind classifies an error into the short name used on span attributes and
// in tool results fed back to the model. Unknown errors report "internal".
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrExternalService):
		return "external_service"
	case errors.Is(err, ErrStorage):
		return "storage"
	case errors.Is(err, ErrSpanState):
		return "span_state"
	case errors.Is(err, ErrTurnBudget):
		return "turn_budget_exceeded"
	case errors.Is(err, ErrUnknownTool):
		return "unknown_tool"
	default:
		return "internal"
	}
}
