// Package conversation holds the session history exchanged between the user,
// the agent, and its tools. A Session is persisted wholesale between turns;
// within a turn it is append-only.
package conversation

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
)

// Role identifies who produced a Turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
	RoleTool  Role = "tool"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAgent, RoleTool:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// ToolCall is a single tool invocation requested by the model. Arguments is
// the JSON text exactly as the model produced it; it is repaired and decoded
// by the tool registry, never here.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Turn is one entry in a session: a user utterance, an agent reply (possibly
// requesting tools), or a tool result. Tool turns carry the ID and name of
// the call they answer so the model can correlate results with requests.
type Turn struct {
	Role       Role
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	ToolName   string
}

// Validate checks structural rules for a Turn.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *Turn) Validate() error {
	fields := make(map[string]string)

	if !t.Role.IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", t.Role)
	}

	switch t.Role {
	case RoleUser:
		if strings.TrimSpace(t.Content) == "" {
			fields["content"] = "is required"
		}
	case RoleAgent:
		if strings.TrimSpace(t.Content) == "" && len(t.ToolCalls) == 0 {
			fields["content"] = "agent turn needs text or tool calls"
		}
	case RoleTool:
		if t.ToolCallID == "" {
			fields["tool_call_id"] = "is required"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UserTurn builds a user Turn with the given content.
func UserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: content}
}

// AgentTurn builds an agent Turn carrying final text.
func AgentTurn(content string) Turn {
	return Turn{Role: RoleAgent, Content: content}
}

// AgentToolCallTurn builds an agent Turn that requests tool invocations.
func AgentToolCallTurn(calls []ToolCall) Turn {
	return Turn{Role: RoleAgent, ToolCalls: calls}
}

// ToolResultTurn builds a tool Turn answering the given call with result.
func ToolResultTurn(call ToolCall, result string) Turn {
	return Turn{Role: RoleTool, Content: result, ToolCallID: call.ID, ToolName: call.Name}
}
