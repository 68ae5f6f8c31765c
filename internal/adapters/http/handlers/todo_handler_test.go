package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-agent/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-agent/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/domain/todo"
	"github.com/jsamuelsen11/todo-agent/mocks"
)

func newTodoHandler(t *testing.T) (*handlers.TodoHandler, *mocks.MockTodoService) {
	t.Helper()
	service := mocks.NewMockTodoService(t)
	return handlers.NewTodoHandler(service), service
}

// --- ListTodos ---

func TestListTodos_Success(t *testing.T) {
	t.Parallel()
	h, service := newTodoHandler(t)

	todos := []todo.Todo{validTodo()}
	service.EXPECT().ListTodos(mock.Anything, todo.Filter{}).Return(todos, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
	if resp.Todos[0].Title != "Buy groceries" {
		t.Errorf("Title = %q, want %q", resp.Todos[0].Title, "Buy groceries")
	}
}

func TestListTodos_WithFilters(t *testing.T) {
	t.Parallel()
	h, service := newTodoHandler(t)

	todos := []todo.Todo{validTodo()}
	service.EXPECT().ListTodos(mock.Anything, todo.Filter{
		Status:  todo.StatusOpen,
		Project: "errands",
	}).Return(todos, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos?status=open&project=errands", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestListTodos_InvalidStatusFilter(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos?status=bad", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestListTodos_ServiceError(t *testing.T) {
	t.Parallel()
	h, service := newTodoHandler(t)

	service.EXPECT().ListTodos(mock.Anything, todo.Filter{}).Return(nil, domain.ErrStorage)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}

// --- CreateTodo ---

func TestCreateTodo_Success(t *testing.T) {
	t.Parallel()
	h, service := newTodoHandler(t)

	created := validTodo()
	service.EXPECT().
		CreateTodo(mock.Anything, &todo.Todo{
			Title:       "Buy groceries",
			Description: "Milk, eggs, bread",
			Project:     "errands",
		}).
		Return(&created, nil)

	body := jsonBody(t, dto.CreateTodoRequest{
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		Project:     "errands",
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", body)
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp.ID != 1 {
		t.Errorf("ID = %d, want 1", resp.ID)
	}
	if resp.Status != "open" {
		t.Errorf("Status = %q, want %q", resp.Status, "open")
	}
}

func TestCreateTodo_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", bytes.NewBufferString("{not json"))
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateTodo_MissingTitle(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	body := jsonBody(t, dto.CreateTodoRequest{Description: "no title"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", body)
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateTodo_ServiceError(t *testing.T) {
	t.Parallel()
	h, service := newTodoHandler(t)

	service.EXPECT().
		CreateTodo(mock.Anything, mock.Anything).
		Return(nil, domain.ErrStorage)

	body := jsonBody(t, dto.CreateTodoRequest{Title: "Buy groceries"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", body)
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}

// --- GetTodo ---

func TestGetTodo_Success(t *testing.T) {
	t.Parallel()
	h, service := newTodoHandler(t)

	item := validTodo()
	service.EXPECT().GetTodo(mock.Anything, 1).Return(&item, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos/1", nil)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.GetTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp.ID != 1 {
		t.Errorf("ID = %d, want 1", resp.ID)
	}
}

func TestGetTodo_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos/abc", nil)
	req = withChiParams(req, map[string]string{"id": "abc"})
	h.GetTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGetTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, service := newTodoHandler(t)

	service.EXPECT().GetTodo(mock.Anything, 42).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos/42", nil)
	req = withChiParams(req, map[string]string{"id": "42"})
	h.GetTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- UpdateTodo ---

func TestUpdateTodo_Success(t *testing.T) {
	t.Parallel()
	h, service := newTodoHandler(t)

	status := todo.StatusDone
	updated := validTodo()
	updated.Status = todo.StatusDone
	service.EXPECT().
		UpdateTodo(mock.Anything, 1, todo.Patch{Status: &status}).
		Return(&updated, nil)

	body := bytes.NewBufferString(`{"status": "done"}`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/todos/1", body)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp.Status != "done" {
		t.Errorf("Status = %q, want %q", resp.Status, "done")
	}
}

func TestUpdateTodo_InvalidStatus(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	body := bytes.NewBufferString(`{"status": "archived"}`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/todos/1", body)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, service := newTodoHandler(t)

	service.EXPECT().
		UpdateTodo(mock.Anything, 42, mock.Anything).
		Return(nil, domain.ErrNotFound)

	body := bytes.NewBufferString(`{"title": "New title"}`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/todos/42", body)
	req = withChiParams(req, map[string]string{"id": "42"})
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- DeleteTodo ---

func TestDeleteTodo_Success(t *testing.T) {
	t.Parallel()
	h, service := newTodoHandler(t)

	service.EXPECT().DeleteTodo(mock.Anything, 1).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/todos/1", nil)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestDeleteTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, service := newTodoHandler(t)

	service.EXPECT().DeleteTodo(mock.Anything, 42).Return(domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/todos/42", nil)
	req = withChiParams(req, map[string]string{"id": "42"})
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
