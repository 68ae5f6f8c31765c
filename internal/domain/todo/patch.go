package todo

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
)

// Patch holds a partial update for a Todo. Nil fields mean
// "do not change this field".
type Patch struct {
	Title       *string
	Description *string
	Project     *string
	Status      *Status
}

// IsZero reports whether the patch changes nothing.
func (p *Patch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Project == nil && p.Status == nil
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		fields["title"] = "must not be empty"
	}
	if p.Status != nil && !p.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *p.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply copies the patch's non-nil fields onto t and bumps UpdatedAt to now.
// The patch must be validated first; Apply performs no checks.
func (p *Patch) Apply(t *Todo, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Project != nil {
		t.Project = *p.Project
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	t.UpdatedAt = now
}
