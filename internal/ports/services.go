package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-agent/internal/domain/todo"
)

// AgentService defines the service port for conversational turns.
// Implemented by the application layer; called by inbound adapters (the
// REPL and the chat handler). Turns for the same session key are
// serialized; concurrent calls for one key queue behind each other.
type AgentService interface {
	// HandleUtterance runs one full turn: it appends the user utterance
	// to the session, loops model decisions and tool executions until the
	// model produces final text or the tool-round budget is exhausted,
	// persists the updated session, and returns the agent's reply.
	// Returns domain.ErrTurnBudget if the model never produced
	// final text within the budget, domain.ErrExternalService if the
	// model call failed, and domain.ErrStorage if the session could not
	// be loaded or saved.
	HandleUtterance(ctx context.Context, sessionKey, utterance string) (string, error)

	// ResetSession deletes the stored conversation history for the key.
	ResetSession(ctx context.Context, sessionKey string) error
}

// TodoService defines the service port for direct todo operations, shared
// by the agent's tools, the HTTP handlers, and the CLI subcommands. Every
// call reads the current stored collection, applies the change, and writes
// the collection back; nothing is cached between calls.
type TodoService interface {
	// ListTodos returns stored todos matching the given filter criteria.
	// Pass a zero-value Filter to list all todos.
	ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int) (*todo.Todo, error)

	// CreateTodo creates a new todo from the draft's title, description,
	// and project, assigning the ID and timestamps.
	// Returns domain.ErrValidation if the draft fails validation.
	CreateTodo(ctx context.Context, draft *todo.Todo) (*todo.Todo, error)

	// UpdateTodo applies the patch to an existing todo and returns the
	// updated entity.
	// Returns domain.ErrNotFound if the todo does not exist and
	// domain.ErrValidation if the patch fails validation.
	UpdateTodo(ctx context.Context, id int, patch todo.Patch) (*todo.Todo, error)

	// DeleteTodo deletes a todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int) error

	// Seed replaces the stored collection with the given todos, assigning
	// IDs and timestamps where missing.
	// Returns domain.ErrValidation if any seeded todo fails validation.
	Seed(ctx context.Context, todos []todo.Todo) error

	// ResetAll deletes the stored collection.
	ResetAll(ctx context.Context) error
}
