package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
	"github.com/jsamuelsen11/todo-agent/internal/domain/todo"
)

// TodoStore persists the todo collection as a single JSON document.
// Implemented by the jsonfile adapter; called by the application layer.
// Writes replace the whole document atomically (write temp file, rename),
// so readers never observe a partially written collection.
type TodoStore interface {
	// Load returns every stored todo. A missing document is not an error;
	// it loads as an empty collection.
	// Returns domain.ErrStorage if the document cannot be read or decoded.
	Load(ctx context.Context) ([]todo.Todo, error)

	// Save replaces the stored collection with the given todos.
	// Returns domain.ErrStorage if the document cannot be written.
	Save(ctx context.Context, todos []todo.Todo) error

	// Reset deletes the stored document. The next Load returns an empty
	// collection. Resetting an absent document is not an error.
	Reset(ctx context.Context) error
}

// SessionStore persists conversation histories, one JSON document per
// session key. Implemented by the jsonfile adapter; called by the
// application layer. Shares the atomic-overwrite discipline of TodoStore.
type SessionStore interface {
	// Load returns the session for the given key. A missing document is
	// not an error; it loads as an empty session.
	// Returns domain.ErrStorage if the document cannot be read or decoded.
	Load(ctx context.Context, key string) (*conversation.Session, error)

	// Save replaces the stored session for the given key.
	// Returns domain.ErrStorage if the document cannot be written.
	Save(ctx context.Context, key string, session *conversation.Session) error

	// Reset deletes the stored session for the given key. Resetting an
	// absent session is not an error.
	Reset(ctx context.Context, key string) error
}
