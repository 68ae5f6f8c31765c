package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
)

// Tool is one capability the model may invoke during a turn. Implemented in
// the application layer's tools package; called through the ToolRegistry.
type Tool interface {
	// Name returns the tool's wire name (e.g. "create_item").
	Name() string

	// Definition returns the schema advertised to the model.
	Definition() conversation.ToolDef

	// Execute runs the tool against the given raw JSON arguments and
	// returns a JSON-encoded result for the model to read.
	// Tool-level failures (domain.ErrNotFound, domain.ErrValidation,
	// domain.ErrExternalService) are returned as errors; the orchestrator
	// renders them into the tool result turn.
	Execute(ctx context.Context, args string) (string, error)
}

// ToolRegistry resolves and executes tools by name on behalf of the
// orchestrator. Implemented by the tools package; called by the agent
// service.
type ToolRegistry interface {
	// Definitions returns the schemas of every registered tool, in
	// registration order, for inclusion in model requests.
	Definitions() []conversation.ToolDef

	// Execute dispatches to the named tool.
	// Returns domain.ErrUnknownTool if no tool has that name.
	Execute(ctx context.Context, name string, args string) (string, error)
}
