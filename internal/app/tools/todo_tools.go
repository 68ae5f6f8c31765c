package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
	"github.com/jsamuelsen11/todo-agent/internal/domain/todo"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// Compile-time checks that every todo tool implements ports.Tool.
var (
	_ ports.Tool = (*CreateItem)(nil)
	_ ports.Tool = (*ListItems)(nil)
	_ ports.Tool = (*UpdateItem)(nil)
	_ ports.Tool = (*DeleteItem)(nil)
)

// itemPayload is an item as rendered into tool results for the model.
type itemPayload struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Project     string `json:"project,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toItemPayload(t *todo.Todo) itemPayload {
	return itemPayload{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Project:     t.Project,
		Status:      t.Status.String(),
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func statusProperty() map[string]any {
	return map[string]any{
		"type":        "string",
		"enum":        []string{"open", "done"},
		"description": "Completion state of the item.",
	}
}

// --- create_item ---

// CreateItem creates a new todo item from the model's arguments.
type CreateItem struct {
	todos ports.TodoService
}

// NewCreateItem creates the create_item tool.
func NewCreateItem(todos ports.TodoService) *CreateItem {
	return &CreateItem{todos: todos}
}

// Name returns the tool's wire name.
func (t *CreateItem) Name() string { return "create_item" }

// Definition returns the schema advertised to the model.
func (t *CreateItem) Definition() conversation.ToolDef {
	return conversation.ToolDef{
		Name:        t.Name(),
		Description: "Create a new to-do item. Returns the created item including its assigned id.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "Short summary of the task.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Optional longer detail about the task.",
				},
				"project": map[string]any{
					"type":        "string",
					"description": "Optional project label used to group related items.",
				},
			},
			"required": []string{"title"},
		},
	}
}

type createItemArgs struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Project     string `json:"project"`
}

// Execute creates the item and returns it as JSON.
func (t *CreateItem) Execute(ctx context.Context, args string) (string, error) {
	in, err := decodeArgs[createItemArgs](args)
	if err != nil {
		return "", err
	}

	draft := &todo.Todo{
		Title:       in.Title,
		Description: in.Description,
		Project:     in.Project,
	}
	created, err := t.todos.CreateTodo(ctx, draft)
	if err != nil {
		return "", err
	}
	return encode(toItemPayload(created))
}

// --- list_items ---

// ListItems lists stored items, optionally filtered by status or project.
type ListItems struct {
	todos ports.TodoService
}

// NewListItems creates the list_items tool.
func NewListItems(todos ports.TodoService) *ListItems {
	return &ListItems{todos: todos}
}

// Name returns the tool's wire name.
func (t *ListItems) Name() string { return "list_items" }

// Definition returns the schema advertised to the model.
func (t *ListItems) Definition() conversation.ToolDef {
	return conversation.ToolDef{
		Name:        t.Name(),
		Description: "List to-do items. Omit filters to list everything; results reflect the stored state at call time.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"status": statusProperty(),
				"project": map[string]any{
					"type":        "string",
					"description": "Only return items with this project label.",
				},
			},
		},
	}
}

type listItemsArgs struct {
	Status  string `json:"status"`
	Project string `json:"project"`
}

type listItemsResult struct {
	Items []itemPayload `json:"items"`
	Count int           `json:"count"`
}

// Execute lists matching items and returns them as JSON.
func (t *ListItems) Execute(ctx context.Context, args string) (string, error) {
	in, err := decodeArgs[listItemsArgs](args)
	if err != nil {
		return "", err
	}

	filter := todo.Filter{Project: in.Project}
	if in.Status != "" {
		status := todo.Status(in.Status)
		if !status.IsValid() {
			return "", &domain.ValidationError{
				Fields: map[string]string{"status": fmt.Sprintf("invalid: %q", in.Status)},
			}
		}
		filter.Status = status
	}

	items, err := t.todos.ListTodos(ctx, filter)
	if err != nil {
		return "", err
	}

	result := listItemsResult{Items: make([]itemPayload, 0, len(items)), Count: len(items)}
	for i := range items {
		result.Items = append(result.Items, toItemPayload(&items[i]))
	}
	return encode(result)
}

// --- update_item ---

// UpdateItem applies a partial update to one item.
type UpdateItem struct {
	todos ports.TodoService
}

// NewUpdateItem creates the update_item tool.
func NewUpdateItem(todos ports.TodoService) *UpdateItem {
	return &UpdateItem{todos: todos}
}

// Name returns the tool's wire name.
func (t *UpdateItem) Name() string { return "update_item" }

// Definition returns the schema advertised to the model.
func (t *UpdateItem) Definition() conversation.ToolDef {
	return conversation.ToolDef{
		Name:        t.Name(),
		Description: "Update fields on an existing to-do item. Only the provided fields change. Returns the updated item.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "integer",
					"description": "Identifier of the item to update.",
				},
				"title": map[string]any{
					"type":        "string",
					"description": "New title.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "New description.",
				},
				"project": map[string]any{
					"type":        "string",
					"description": "New project label. Pass an empty string to remove the label.",
				},
				"status": statusProperty(),
			},
			"required": []string{"id"},
		},
	}
}

type updateItemArgs struct {
	ID          int     `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Project     *string `json:"project"`
	Status      *string `json:"status"`
}

// Execute patches the item and returns the updated entity as JSON.
func (t *UpdateItem) Execute(ctx context.Context, args string) (string, error) {
	in, err := decodeArgs[updateItemArgs](args)
	if err != nil {
		return "", err
	}
	if in.ID <= 0 {
		return "", &domain.ValidationError{
			Fields: map[string]string{"id": "must be a positive integer"},
		}
	}

	patch := todo.Patch{
		Title:       in.Title,
		Description: in.Description,
		Project:     in.Project,
	}
	if in.Status != nil {
		status := todo.Status(*in.Status)
		patch.Status = &status
	}

	updated, err := t.todos.UpdateTodo(ctx, in.ID, patch)
	if err != nil {
		return "", err
	}
	return encode(toItemPayload(updated))
}

// --- delete_item ---

// DeleteItem removes one item permanently.
type DeleteItem struct {
	todos ports.TodoService
}

// NewDeleteItem creates the delete_item tool.
func NewDeleteItem(todos ports.TodoService) *DeleteItem {
	return &DeleteItem{todos: todos}
}

// Name returns the tool's wire name.
func (t *DeleteItem) Name() string { return "delete_item" }

// Definition returns the schema advertised to the model.
func (t *DeleteItem) Definition() conversation.ToolDef {
	return conversation.ToolDef{
		Name:        t.Name(),
		Description: "Delete a to-do item permanently. Confirm with the user before calling this.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "integer",
					"description": "Identifier of the item to delete.",
				},
			},
			"required": []string{"id"},
		},
	}
}

type deleteItemArgs struct {
	ID int `json:"id"`
}

type deleteItemResult struct {
	Deleted bool `json:"deleted"`
	ID      int  `json:"id"`
}

// Execute deletes the item and returns a confirmation as JSON.
func (t *DeleteItem) Execute(ctx context.Context, args string) (string, error) {
	in, err := decodeArgs[deleteItemArgs](args)
	if err != nil {
		return "", err
	}
	if in.ID <= 0 {
		return "", &domain.ValidationError{
			Fields: map[string]string{"id": "must be a positive integer"},
		}
	}

	if err := t.todos.DeleteTodo(ctx, in.ID); err != nil {
		return "", err
	}
	return encode(deleteItemResult{Deleted: true, ID: in.ID})
}
