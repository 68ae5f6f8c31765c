package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/domain/todo"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
)

// ChatRequest represents the JSON body for one conversational turn.
// SessionKey is optional; handlers fall back to the default session.
type ChatRequest struct {
	SessionKey string `json:"session_key,omitempty"`
	Message    string `json:"message"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *ChatRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Message) == "" {
		fields["message"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateTodoRequest represents the JSON body for creating a new todo item.
// Items are always created open; status is not accepted here.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Project     string `json:"project,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDraft converts the request to a domain draft for TodoService.CreateTodo.
func (r *CreateTodoRequest) ToDraft() *todo.Todo {
	return &todo.Todo{
		Title:       r.Title,
		Description: r.Description,
		Project:     r.Project,
	}
}

// UpdateTodoRequest represents the JSON body for updating an existing todo
// item. All fields are optional; nil means "do not change this field".
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Project     *string `json:"project,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}
	if r.Status != nil && !todo.Status(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request to a domain patch. The request must be
// validated first.
func (r *UpdateTodoRequest) ToPatch() todo.Patch {
	patch := todo.Patch{
		Title:       r.Title,
		Description: r.Description,
		Project:     r.Project,
	}
	if r.Status != nil {
		status := todo.Status(*r.Status)
		patch.Status = &status
	}
	return patch
}
