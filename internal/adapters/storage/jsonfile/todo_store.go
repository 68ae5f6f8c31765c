package jsonfile

import (
	"context"
	"path/filepath"
	"time"

	"github.com/jsamuelsen11/todo-agent/internal/domain/todo"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// todosFile is the collection document name under the data directory.
const todosFile = "todos.json"

// Compile-time interface check.
var _ ports.TodoStore = (*TodoStore)(nil)

// TodoStore implements [ports.TodoStore] over a single todos.json document:
// a JSON array of todo records, replaced wholesale on every save.
type TodoStore struct {
	doc document
}

// NewTodoStore creates a TodoStore rooted at the given data directory.
func NewTodoStore(dir string) *TodoStore {
	return &TodoStore{doc: document{path: filepath.Join(dir, todosFile)}}
}

// Load returns every stored todo. A missing document loads as an empty
// collection.
func (s *TodoStore) Load(ctx context.Context) ([]todo.Todo, error) {
	var records []todoRecord
	found, err := s.doc.load(ctx, &records)
	if err != nil {
		return nil, err
	}
	if !found {
		return []todo.Todo{}, nil
	}

	todos := make([]todo.Todo, len(records))
	for i := range records {
		todos[i] = records[i].toDomain()
	}
	return todos, nil
}

// Save replaces the stored collection.
func (s *TodoStore) Save(ctx context.Context, todos []todo.Todo) error {
	records := make([]todoRecord, len(todos))
	for i := range todos {
		records[i] = toTodoRecord(&todos[i])
	}
	return s.doc.save(ctx, records)
}

// Reset deletes the stored collection.
func (s *TodoStore) Reset(ctx context.Context) error {
	return s.doc.reset(ctx)
}

// todoRecord is the on-disk shape of one todo. Timestamps are RFC3339
// strings so the document stays readable and editable by hand.
type todoRecord struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Project     string `json:"project,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toTodoRecord(t *todo.Todo) todoRecord {
	return todoRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Project:     t.Project,
		Status:      t.Status.String(),
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (r *todoRecord) toDomain() todo.Todo {
	createdAt, _ := time.Parse(time.RFC3339, r.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, r.UpdatedAt)

	return todo.Todo{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Project:     r.Project,
		Status:      todo.Status(r.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
