package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/domain/todo"
	"github.com/jsamuelsen11/todo-agent/mocks"
)

func strPtr(v string) *string              { return &v }
func statusPtr(v todo.Status) *todo.Status { return &v }

func storedTodos() []todo.Todo {
	created := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	return []todo.Todo{
		{ID: 1, Title: "Buy milk", Project: "errands", Status: todo.StatusOpen, CreatedAt: created, UpdatedAt: created},
		{ID: 4, Title: "File taxes", Project: "finance", Status: todo.StatusDone, CreatedAt: created, UpdatedAt: created},
		{ID: 7, Title: "Call plumber", Project: "errands", Status: todo.StatusOpen, CreatedAt: created, UpdatedAt: created},
	}
}

// --- ListTodos ---

func TestTodoService_ListTodos(t *testing.T) {
	t.Parallel()

	t.Run("returns todos matching the filter", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(storedTodos(), nil)

		got, err := svc.ListTodos(context.Background(), todo.Filter{Status: todo.StatusOpen})
		if err != nil {
			t.Fatalf("ListTodos() error = %v, want nil", err)
		}
		if len(got) != 2 {
			t.Fatalf("ListTodos() len = %d, want 2", len(got))
		}
		if got[0].ID != 1 || got[1].ID != 7 {
			t.Errorf("ListTodos() IDs = %d, %d, want 1, 7", got[0].ID, got[1].ID)
		}
	})

	t.Run("combines status and project filters", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(storedTodos(), nil)

		got, err := svc.ListTodos(context.Background(), todo.Filter{Status: todo.StatusOpen, Project: "errands"})
		if err != nil {
			t.Fatalf("ListTodos() error = %v, want nil", err)
		}
		if len(got) != 2 {
			t.Errorf("ListTodos() len = %d, want 2", len(got))
		}
	})

	t.Run("returns empty result for an empty store", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(nil, nil)

		got, err := svc.ListTodos(context.Background(), todo.Filter{})
		if err != nil {
			t.Fatalf("ListTodos() error = %v, want nil", err)
		}
		if len(got) != 0 {
			t.Errorf("ListTodos() len = %d, want 0", len(got))
		}
	})

	t.Run("returns error when the store fails", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Load(mock.Anything).
			Return(nil, fmt.Errorf("read todos.json: %w", domain.ErrStorage))

		_, err := svc.ListTodos(context.Background(), todo.Filter{})
		if !errors.Is(err, domain.ErrStorage) {
			t.Errorf("ListTodos() error = %v, want ErrStorage", err)
		}
	})
}

// --- GetTodo ---

func TestTodoService_GetTodo(t *testing.T) {
	t.Parallel()

	t.Run("returns the todo by id", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(storedTodos(), nil)

		got, err := svc.GetTodo(context.Background(), 4)
		if err != nil {
			t.Fatalf("GetTodo() error = %v, want nil", err)
		}
		if got.Title != "File taxes" {
			t.Errorf("GetTodo().Title = %q, want %q", got.Title, "File taxes")
		}
	})

	t.Run("returns ErrNotFound for an unknown id", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(storedTodos(), nil)

		_, err := svc.GetTodo(context.Background(), 99)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetTodo() error = %v, want ErrNotFound", err)
		}
	})
}

// --- CreateTodo ---

func TestTodoService_CreateTodo(t *testing.T) {
	t.Parallel()

	t.Run("assigns the next id and timestamps", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(storedTodos(), nil)
		store.EXPECT().Save(mock.Anything, mock.MatchedBy(func(items []todo.Todo) bool {
			last := items[len(items)-1]
			return len(items) == 4 && last.ID == 8 && last.Status == todo.StatusOpen && !last.CreatedAt.IsZero()
		})).Return(nil)

		got, err := svc.CreateTodo(context.Background(), &todo.Todo{Title: "Water plants", Project: "home"})
		if err != nil {
			t.Fatalf("CreateTodo() error = %v, want nil", err)
		}
		if got.ID != 8 {
			t.Errorf("CreateTodo().ID = %d, want 8", got.ID)
		}
		if got.Project != "home" {
			t.Errorf("CreateTodo().Project = %q, want %q", got.Project, "home")
		}
		if !got.UpdatedAt.Equal(got.CreatedAt) {
			t.Errorf("CreateTodo() UpdatedAt = %v, want CreatedAt %v", got.UpdatedAt, got.CreatedAt)
		}
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(nil, nil)

		_, err := svc.CreateTodo(context.Background(), &todo.Todo{Title: "   "})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreateTodo() error = %v, want ErrValidation", err)
		}
	})

	t.Run("returns error when saving fails", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(nil, nil)
		store.EXPECT().Save(mock.Anything, mock.Anything).
			Return(fmt.Errorf("write todos.json: %w", domain.ErrStorage))

		_, err := svc.CreateTodo(context.Background(), &todo.Todo{Title: "Water plants"})
		if !errors.Is(err, domain.ErrStorage) {
			t.Errorf("CreateTodo() error = %v, want ErrStorage", err)
		}
	})
}

// --- UpdateTodo ---

func TestTodoService_UpdateTodo(t *testing.T) {
	t.Parallel()

	t.Run("applies the patch and bumps UpdatedAt", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		stored := storedTodos()
		store.EXPECT().Load(mock.Anything).Return(stored, nil)
		store.EXPECT().Save(mock.Anything, mock.MatchedBy(func(items []todo.Todo) bool {
			return items[0].Status == todo.StatusDone && items[0].Title == "Buy milk"
		})).Return(nil)

		got, err := svc.UpdateTodo(context.Background(), 1, todo.Patch{Status: statusPtr(todo.StatusDone)})
		if err != nil {
			t.Fatalf("UpdateTodo() error = %v, want nil", err)
		}
		if got.Status != todo.StatusDone {
			t.Errorf("UpdateTodo().Status = %q, want done", got.Status)
		}
		if !got.UpdatedAt.After(stored[0].CreatedAt) {
			t.Errorf("UpdateTodo().UpdatedAt = %v, want after %v", got.UpdatedAt, stored[0].CreatedAt)
		}
	})

	t.Run("returns the item unchanged for an empty patch", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(storedTodos(), nil)

		got, err := svc.UpdateTodo(context.Background(), 7, todo.Patch{})
		if err != nil {
			t.Fatalf("UpdateTodo() error = %v, want nil", err)
		}
		if got.Title != "Call plumber" {
			t.Errorf("UpdateTodo().Title = %q, want %q", got.Title, "Call plumber")
		}
	})

	t.Run("returns ErrNotFound for an unknown id", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(storedTodos(), nil)

		_, err := svc.UpdateTodo(context.Background(), 99, todo.Patch{Title: strPtr("New title")})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("UpdateTodo() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("rejects an invalid patch before touching the store", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		_, err := svc.UpdateTodo(context.Background(), 1, todo.Patch{Status: statusPtr("archived")})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("UpdateTodo() error = %v, want ErrValidation", err)
		}
	})
}

// --- DeleteTodo ---

func TestTodoService_DeleteTodo(t *testing.T) {
	t.Parallel()

	t.Run("removes the todo", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(storedTodos(), nil)
		store.EXPECT().Save(mock.Anything, mock.MatchedBy(func(items []todo.Todo) bool {
			return len(items) == 2 && items[0].ID == 1 && items[1].ID == 7
		})).Return(nil)

		if err := svc.DeleteTodo(context.Background(), 4); err != nil {
			t.Fatalf("DeleteTodo() error = %v, want nil", err)
		}
	})

	t.Run("returns ErrNotFound for an unknown id", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(storedTodos(), nil)

		err := svc.DeleteTodo(context.Background(), 99)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("DeleteTodo() error = %v, want ErrNotFound", err)
		}
	})
}

// --- Seed ---

func TestTodoService_Seed(t *testing.T) {
	t.Parallel()

	t.Run("fills in ids, status, and timestamps", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Save(mock.Anything, mock.MatchedBy(func(items []todo.Todo) bool {
			if len(items) != 2 {
				return false
			}
			// The auto-assigned ID lands past the highest explicit one.
			return items[0].ID == 6 && items[0].Status == todo.StatusOpen && !items[0].CreatedAt.IsZero() &&
				items[1].ID == 5 && items[1].Status == todo.StatusDone
		})).Return(nil)

		seed := []todo.Todo{
			{Title: "Water plants"},
			{ID: 5, Title: "File taxes", Status: todo.StatusDone},
		}
		if err := svc.Seed(context.Background(), seed); err != nil {
			t.Fatalf("Seed() error = %v, want nil", err)
		}
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		seed := []todo.Todo{
			{ID: 3, Title: "First"},
			{ID: 3, Title: "Second"},
		}
		err := svc.Seed(context.Background(), seed)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Seed() error = %v, want ErrValidation", err)
		}
	})

	t.Run("rejects an invalid todo", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		err := svc.Seed(context.Background(), []todo.Todo{{Title: "   "}})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Seed() error = %v, want ErrValidation", err)
		}
	})

	t.Run("does not mutate the caller's slice", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

		seed := []todo.Todo{{Title: "Water plants"}}
		if err := svc.Seed(context.Background(), seed); err != nil {
			t.Fatalf("Seed() error = %v, want nil", err)
		}
		if seed[0].ID != 0 {
			t.Errorf("Seed() mutated caller slice: ID = %d, want 0", seed[0].ID)
		}
	})
}

// --- ResetAll ---

func TestTodoService_ResetAll(t *testing.T) {
	t.Parallel()

	t.Run("delegates to the store", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Reset(mock.Anything).Return(nil)

		if err := svc.ResetAll(context.Background()); err != nil {
			t.Errorf("ResetAll() error = %v, want nil", err)
		}
	})

	t.Run("propagates store failures", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockTodoStore(t)
		svc := NewTodoService(store, discardLogger())

		store.EXPECT().Reset(mock.Anything).
			Return(fmt.Errorf("remove todos.json: %w", domain.ErrStorage))

		err := svc.ResetAll(context.Background())
		if !errors.Is(err, domain.ErrStorage) {
			t.Errorf("ResetAll() error = %v, want ErrStorage", err)
		}
	})
}
