// Package tools implements the capabilities the model may invoke during a
// turn: the four todo operations, web search, and the registry that
// dispatches invocations by wire name.
//
// Tools return their results as JSON strings for the model to read. They
// hold no state of their own; every todo tool call goes through the
// TodoService, which re-reads the stored collection, so consecutive calls
// in one turn observe each other's writes.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// Compile-time check that Registry implements ports.ToolRegistry.
var _ ports.ToolRegistry = (*Registry)(nil)

// Registry resolves tools by wire name. Registration order is preserved in
// Definitions so the model sees a stable tool list across calls.
type Registry struct {
	tools  []ports.Tool
	byName map[string]ports.Tool
	logger *slog.Logger
}

// NewRegistry creates a Registry over the given tools. A later registration
// with a duplicate name replaces the earlier one in dispatch but not in
// definition order.
func NewRegistry(logger *slog.Logger, tools ...ports.Tool) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	byName := make(map[string]ports.Tool, len(tools))
	for _, tool := range tools {
		byName[tool.Name()] = tool
	}
	return &Registry{
		tools:  tools,
		byName: byName,
		logger: logger,
	}
}

// Definitions returns every registered tool's schema in registration order.
func (r *Registry) Definitions() []conversation.ToolDef {
	defs := make([]conversation.ToolDef, 0, len(r.tools))
	for _, tool := range r.tools {
		defs = append(defs, tool.Definition())
	}
	return defs
}

// Execute dispatches the invocation to the named tool.
// Returns domain.ErrUnknownTool if no tool has that name.
func (r *Registry) Execute(ctx context.Context, name string, args string) (string, error) {
	tool, ok := r.byName[name]
	if !ok {
		r.logger.WarnContext(ctx, "model requested unregistered tool",
			slog.String("tool", name),
		)
		return "", fmt.Errorf("tool %q: %w", name, domain.ErrUnknownTool)
	}

	r.logger.DebugContext(ctx, "executing tool", slog.String("tool", name))
	return tool.Execute(ctx, args)
}

// decodeArgs parses the model's raw argument JSON into T. Models
// occasionally emit slightly broken JSON (single quotes, trailing commas);
// a failed parse is retried once through jsonrepair before giving up.
// Empty input decodes to the zero value.
func decodeArgs[T any](raw string) (T, error) {
	var out T
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return out, nil
	}

	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(trimmed)
		if repairErr != nil {
			return out, &domain.ValidationError{
				Fields: map[string]string{"arguments": fmt.Sprintf("malformed JSON: %v", err)},
			}
		}
		if err := json.Unmarshal([]byte(repaired), &out); err != nil {
			return out, &domain.ValidationError{
				Fields: map[string]string{"arguments": fmt.Sprintf("malformed JSON: %v", err)},
			}
		}
	}
	return out, nil
}

// encode renders a tool result payload as compact JSON.
func encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding tool result: %w", err)
	}
	return string(data), nil
}
