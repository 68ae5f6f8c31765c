package todo

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// Todo represents a single to-do item. The ID is assigned on creation and
// never changes. Project is an optional free-form label used to group related
// items; the empty string means unlabeled.
type Todo struct {
	ID          int
	Title       string
	Description string
	Project     string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = msgRequired
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if t.ID < 0 {
		fields["id"] = fmt.Sprintf("must not be negative, got %d", t.ID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// New creates a Todo with the given identifier and title, status open, and
// both timestamps set to now. Description and project start empty.
func New(id int, title string, now time.Time) Todo {
	return Todo{
		ID:        id,
		Title:     title,
		Status:    StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NextID returns the identifier for the next item to be created:
// one greater than the highest existing ID, or 1 for an empty collection.
func NextID(items []Todo) int {
	maxID := 0
	for i := range items {
		if items[i].ID > maxID {
			maxID = items[i].ID
		}
	}
	return maxID + 1
}
