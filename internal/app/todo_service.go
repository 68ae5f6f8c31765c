package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/domain/todo"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of the document store.
// Every operation reads the stored collection fresh, applies its change,
// and writes the whole collection back; no state is cached between calls,
// so consecutive tool calls within one turn observe each other's writes.
type TodoService struct {
	store  ports.TodoStore
	logger *slog.Logger

	// mu serializes read-modify-write cycles so concurrent mutations
	// from the agent and the HTTP API don't drop each other's writes.
	mu sync.Mutex
}

// NewTodoService creates a TodoService over the given store.
func NewTodoService(store ports.TodoStore, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		store:  store,
		logger: logger,
	}
}

// ListTodos returns stored todos matching the filter.
func (s *TodoService) ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "listing todos",
		slog.String("status", filter.Status.String()),
		slog.String("project", filter.Project),
	)

	items, err := s.store.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load todos",
			slog.String("operation", "ListTodos"),
			slog.Any("error", err),
		)
		return nil, err
	}

	matched := make([]todo.Todo, 0, len(items))
	for i := range items {
		if filter.Matches(&items[i]) {
			matched = append(matched, items[i])
		}
	}
	return matched, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id int) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "fetching todo", slog.Int("id", id))

	items, err := s.store.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load todos",
			slog.String("operation", "GetTodo"),
			slog.Int("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
}

// CreateTodo creates a new todo from the draft's title, description, and
// project, assigning the next free ID and both timestamps.
func (s *TodoService) CreateTodo(ctx context.Context, draft *todo.Todo) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "creating todo", slog.String("title", draft.Title))

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load todos",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}

	item := todo.New(todo.NextID(items), draft.Title, time.Now().UTC())
	item.Description = draft.Description
	item.Project = draft.Project
	if err := item.Validate(); err != nil {
		return nil, err
	}

	items = append(items, item)
	if err := s.store.Save(ctx, items); err != nil {
		s.logger.ErrorContext(ctx, "failed to save todos",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &item, nil
}

// UpdateTodo applies the patch to an existing todo and returns the updated
// entity. An empty patch returns the item unchanged without rewriting the
// document.
func (s *TodoService) UpdateTodo(ctx context.Context, id int, patch todo.Patch) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "updating todo", slog.Int("id", id))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load todos",
			slog.String("operation", "UpdateTodo"),
			slog.Int("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	idx := slices.IndexFunc(items, func(t todo.Todo) bool { return t.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}

	if patch.IsZero() {
		item := items[idx]
		return &item, nil
	}

	patch.Apply(&items[idx], time.Now().UTC())
	if err := s.store.Save(ctx, items); err != nil {
		s.logger.ErrorContext(ctx, "failed to save todos",
			slog.String("operation", "UpdateTodo"),
			slog.Int("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	item := items[idx]
	return &item, nil
}

// DeleteTodo deletes a todo by ID.
func (s *TodoService) DeleteTodo(ctx context.Context, id int) error {
	s.logger.InfoContext(ctx, "deleting todo", slog.Int("id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load todos",
			slog.String("operation", "DeleteTodo"),
			slog.Int("id", id),
			slog.Any("error", err),
		)
		return err
	}

	idx := slices.IndexFunc(items, func(t todo.Todo) bool { return t.ID == id })
	if idx < 0 {
		return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}

	items = slices.Delete(items, idx, idx+1)
	if err := s.store.Save(ctx, items); err != nil {
		s.logger.ErrorContext(ctx, "failed to save todos",
			slog.String("operation", "DeleteTodo"),
			slog.Int("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// Seed replaces the stored collection with the given todos. Missing IDs are
// assigned past the highest explicit one; missing timestamps are set to now.
func (s *TodoService) Seed(ctx context.Context, todos []todo.Todo) error {
	s.logger.InfoContext(ctx, "seeding todos", slog.Int("count", len(todos)))

	now := time.Now().UTC()
	seen := make(map[int]struct{}, len(todos))
	items := slices.Clone(todos)

	for i := range items {
		if items[i].ID == 0 {
			items[i].ID = todo.NextID(items)
		}
		if _, dup := seen[items[i].ID]; dup {
			return &domain.ValidationError{
				Fields: map[string]string{"id": fmt.Sprintf("duplicate: %d", items[i].ID)},
			}
		}
		seen[items[i].ID] = struct{}{}

		if items[i].Status == "" {
			items[i].Status = todo.StatusOpen
		}
		if items[i].CreatedAt.IsZero() {
			items[i].CreatedAt = now
		}
		if items[i].UpdatedAt.IsZero() {
			items[i].UpdatedAt = items[i].CreatedAt
		}
		if err := items[i].Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, items); err != nil {
		s.logger.ErrorContext(ctx, "failed to save seeded todos",
			slog.String("operation", "Seed"),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// ResetAll deletes the stored collection.
func (s *TodoService) ResetAll(ctx context.Context) error {
	s.logger.InfoContext(ctx, "resetting todo collection")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Reset(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to reset todos",
			slog.String("operation", "ResetAll"),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
