package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
	"github.com/jsamuelsen11/todo-agent/internal/domain/trace"
	"github.com/jsamuelsen11/todo-agent/internal/platform/tokencount"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
	"github.com/jsamuelsen11/todo-agent/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type agentDeps struct {
	sessions *mocks.MockSessionStore
	model    *mocks.MockModelClient
	registry *mocks.MockToolRegistry
	emitter  *mocks.MockTraceEmitter
}

func newTestAgent(t *testing.T, cfg AgentConfig) (*AgentService, *agentDeps) {
	t.Helper()
	d := &agentDeps{
		sessions: mocks.NewMockSessionStore(t),
		model:    mocks.NewMockModelClient(t),
		registry: mocks.NewMockToolRegistry(t),
		emitter:  mocks.NewMockTraceEmitter(t),
	}
	svc := NewAgentService(cfg, d.sessions, d.model, d.registry, d.emitter, nil, nil, discardLogger())
	return svc, d
}

// stubTracing satisfies the emitter for tests that don't assert on spans.
func stubTracing(e *mocks.MockTraceEmitter) {
	root := ports.SpanRef{TraceID: "t1", SpanID: "s1"}
	child := ports.SpanRef{TraceID: "t1", SpanID: "s2"}
	e.EXPECT().StartTurn(mock.Anything, mock.Anything, mock.Anything).Return(root, nil).Maybe()
	e.EXPECT().StartChild(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(child, nil).Maybe()
	e.EXPECT().SetAttribute(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	e.EXPECT().End(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	e.EXPECT().EndTurn(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func finalDecision(text string) *conversation.Decision {
	return &conversation.Decision{FinalText: text}
}

func toolDecision(calls ...conversation.ToolCall) *conversation.Decision {
	return &conversation.Decision{ToolRequests: calls}
}

// --- NewAgentService ---

func TestNewAgentService(t *testing.T) {
	t.Parallel()

	t.Run("applies config defaults", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestAgent(t, AgentConfig{})

		if svc.cfg.MaxToolRounds != defaultMaxToolRounds {
			t.Errorf("MaxToolRounds = %d, want %d", svc.cfg.MaxToolRounds, defaultMaxToolRounds)
		}
		if svc.cfg.MaxUserTurns != defaultMaxUserTurns {
			t.Errorf("MaxUserTurns = %d, want %d", svc.cfg.MaxUserTurns, defaultMaxUserTurns)
		}
	})

	t.Run("does not panic with nil logger", func(t *testing.T) {
		t.Parallel()
		sessions := mocks.NewMockSessionStore(t)
		svc := NewAgentService(AgentConfig{}, sessions, nil, nil, nil, nil, nil, nil)

		sessions.EXPECT().Reset(mock.Anything, "default").Return(nil)

		if err := svc.ResetSession(context.Background(), "default"); err != nil {
			t.Errorf("ResetSession() error = %v, want nil", err)
		}
	})
}

// --- HandleUtterance ---

func TestAgentService_HandleUtterance(t *testing.T) {
	t.Parallel()

	t.Run("returns final text when the model answers directly", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{})
		stubTracing(d.emitter)

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(&conversation.Session{}, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.MatchedBy(func(req ports.ModelRequest) bool {
			return req.System != "" && len(req.History) == 1 && req.History[0].Content == "hello"
		})).Return(finalDecision("Hi! How can I help?"), nil)
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.MatchedBy(func(s *conversation.Session) bool {
			return len(s.Turns) == 2 &&
				s.Turns[0].Role == conversation.RoleUser &&
				s.Turns[1].Role == conversation.RoleAgent &&
				s.Turns[1].Content == "Hi! How can I help?"
		})).Return(nil)

		got, err := svc.HandleUtterance(context.Background(), "default", "hello")
		if err != nil {
			t.Fatalf("HandleUtterance() error = %v, want nil", err)
		}
		if got != "Hi! How can I help?" {
			t.Errorf("HandleUtterance() = %q, want %q", got, "Hi! How can I help?")
		}
	})

	t.Run("runs requested tools before the final answer", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{})
		stubTracing(d.emitter)

		call := conversation.ToolCall{ID: "call_1", Name: "create_item", Arguments: `{"title":"Buy milk"}`}

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(&conversation.Session{}, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.Anything).Return(toolDecision(call), nil).Once()
		d.registry.EXPECT().Execute(mock.Anything, "create_item", `{"title":"Buy milk"}`).
			Return(`{"id":7}`, nil)
		d.model.EXPECT().Decide(mock.Anything, mock.MatchedBy(func(req ports.ModelRequest) bool {
			last := req.History[len(req.History)-1]
			return last.Role == conversation.RoleTool &&
				last.ToolCallID == "call_1" &&
				last.Content == `{"id":7}`
		})).Return(finalDecision("Added Buy milk to your list."), nil).Once()
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.MatchedBy(func(s *conversation.Session) bool {
			return len(s.Turns) == 4 &&
				s.Turns[1].Role == conversation.RoleAgent && len(s.Turns[1].ToolCalls) == 1 &&
				s.Turns[2].Role == conversation.RoleTool &&
				s.Turns[3].Content == "Added Buy milk to your list."
		})).Return(nil)

		got, err := svc.HandleUtterance(context.Background(), "default", "add buy milk")
		if err != nil {
			t.Fatalf("HandleUtterance() error = %v, want nil", err)
		}
		if got != "Added Buy milk to your list." {
			t.Errorf("HandleUtterance() = %q, want final text", got)
		}
	})

	t.Run("feeds tool failures back to the model", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{})
		stubTracing(d.emitter)

		call := conversation.ToolCall{ID: "call_1", Name: "delete_item", Arguments: `{"id":42}`}

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(&conversation.Session{}, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.Anything).Return(toolDecision(call), nil).Once()
		d.registry.EXPECT().Execute(mock.Anything, "delete_item", `{"id":42}`).
			Return("", fmt.Errorf("todo 42: %w", domain.ErrNotFound))
		d.model.EXPECT().Decide(mock.Anything, mock.MatchedBy(func(req ports.ModelRequest) bool {
			last := req.History[len(req.History)-1]
			return last.Role == conversation.RoleTool &&
				strings.Contains(last.Content, `"error":"not_found"`) &&
				strings.Contains(last.Content, "todo 42")
		})).Return(finalDecision("I couldn't find item 42."), nil).Once()
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.Anything).Return(nil)

		got, err := svc.HandleUtterance(context.Background(), "default", "delete item 42")
		if err != nil {
			t.Fatalf("HandleUtterance() error = %v, want nil (tool failures are recovered)", err)
		}
		if got != "I couldn't find item 42." {
			t.Errorf("HandleUtterance() = %q, want recovery text", got)
		}
	})

	t.Run("recovers an unknown tool the same way", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{})
		stubTracing(d.emitter)

		call := conversation.ToolCall{ID: "call_1", Name: "send_email", Arguments: `{}`}

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(&conversation.Session{}, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.Anything).Return(toolDecision(call), nil).Once()
		d.registry.EXPECT().Execute(mock.Anything, "send_email", `{}`).
			Return("", fmt.Errorf("tool %q: %w", "send_email", domain.ErrUnknownTool))
		d.model.EXPECT().Decide(mock.Anything, mock.MatchedBy(func(req ports.ModelRequest) bool {
			last := req.History[len(req.History)-1]
			return last.Role == conversation.RoleTool &&
				strings.Contains(last.Content, `"error":"unknown_tool"`)
		})).Return(finalDecision("I can't send email."), nil).Once()
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.Anything).Return(nil)

		_, err := svc.HandleUtterance(context.Background(), "default", "email my list to bob")
		if err != nil {
			t.Fatalf("HandleUtterance() error = %v, want nil", err)
		}
	})

	t.Run("rejects a blank utterance", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestAgent(t, AgentConfig{})

		_, err := svc.HandleUtterance(context.Background(), "default", "   ")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("HandleUtterance() error = %v, want ErrValidation", err)
		}
	})

	t.Run("fails when the session cannot be loaded", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{})

		d.sessions.EXPECT().Load(mock.Anything, "default").
			Return(nil, fmt.Errorf("read sessions/default.json: %w", domain.ErrStorage))

		_, err := svc.HandleUtterance(context.Background(), "default", "hello")
		if !errors.Is(err, domain.ErrStorage) {
			t.Errorf("HandleUtterance() error = %v, want ErrStorage", err)
		}
	})

	t.Run("fails the turn when the model fails", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{})
		stubTracing(d.emitter)

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(&conversation.Session{}, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("openai: status 503: %w", domain.ErrExternalService))
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.MatchedBy(func(s *conversation.Session) bool {
			return len(s.Turns) == 1 && s.Turns[0].Role == conversation.RoleUser
		})).Return(nil)

		_, err := svc.HandleUtterance(context.Background(), "default", "hello")
		if !errors.Is(err, domain.ErrExternalService) {
			t.Errorf("HandleUtterance() error = %v, want ErrExternalService", err)
		}
	})

	t.Run("returns ErrTurnBudget when tool rounds are exhausted", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{MaxToolRounds: 2})
		stubTracing(d.emitter)

		call := conversation.ToolCall{ID: "call_1", Name: "list_items", Arguments: `{}`}

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(&conversation.Session{}, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.Anything).Return(toolDecision(call), nil).Times(2)
		d.registry.EXPECT().Execute(mock.Anything, "list_items", `{}`).Return(`{"items":[],"count":0}`, nil).Times(2)
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.Anything).Return(nil)

		_, err := svc.HandleUtterance(context.Background(), "default", "keep listing")
		if !errors.Is(err, domain.ErrTurnBudget) {
			t.Errorf("HandleUtterance() error = %v, want ErrTurnBudget", err)
		}
	})

	t.Run("propagates a save failure after a successful turn", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{})
		stubTracing(d.emitter)

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(&conversation.Session{}, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.Anything).Return(finalDecision("Done."), nil)
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.Anything).
			Return(fmt.Errorf("write sessions/default.json: %w", domain.ErrStorage))

		_, err := svc.HandleUtterance(context.Background(), "default", "hello")
		if !errors.Is(err, domain.ErrStorage) {
			t.Errorf("HandleUtterance() error = %v, want ErrStorage", err)
		}
	})
}

// --- HandleUtterance tracing ---

func TestAgentService_HandleUtterance_Tracing(t *testing.T) {
	t.Parallel()

	rootRef := ports.SpanRef{TraceID: "trace-1", SpanID: "span-root"}
	modelRef := ports.SpanRef{TraceID: "trace-1", SpanID: "span-model"}
	toolRef := ports.SpanRef{TraceID: "trace-1", SpanID: "span-tool"}

	t.Run("brackets the turn and its calls with spans", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{})

		call := conversation.ToolCall{ID: "call_1", Name: "create_item", Arguments: `{"title":"Buy milk"}`}

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(&conversation.Session{}, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.Anything).Return(toolDecision(call), nil).Once()
		d.registry.EXPECT().Execute(mock.Anything, "create_item", `{"title":"Buy milk"}`).Return(`{"id":7}`, nil)
		d.model.EXPECT().Decide(mock.Anything, mock.Anything).Return(finalDecision("Done."), nil).Once()
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.Anything).Return(nil)

		d.emitter.EXPECT().StartTurn(mock.Anything, "turn", mock.MatchedBy(func(attrs map[string]any) bool {
			return attrs["session.key"] == "default"
		})).Return(rootRef, nil).Once()
		d.emitter.EXPECT().StartChild(mock.Anything, rootRef, trace.KindModelCall, "model-call", mock.Anything).
			Return(modelRef, nil).Times(2)
		d.emitter.EXPECT().SetAttribute(mock.Anything, modelRef, "tool.requests", 1).Return(nil).Once()
		d.emitter.EXPECT().End(mock.Anything, modelRef, trace.StatusOK, "").Return(nil).Times(2)
		d.emitter.EXPECT().StartChild(mock.Anything, rootRef, trace.KindToolCall, "create_item", mock.MatchedBy(func(attrs map[string]any) bool {
			return attrs["tool.name"] == "create_item" && attrs["tool.input"] == `{"title":"Buy milk"}`
		})).Return(toolRef, nil).Once()
		d.emitter.EXPECT().SetAttribute(mock.Anything, toolRef, "tool.output", `{"id":7}`).Return(nil).Once()
		d.emitter.EXPECT().End(mock.Anything, toolRef, trace.StatusOK, "").Return(nil).Once()
		d.emitter.EXPECT().EndTurn(mock.Anything, rootRef, trace.StatusOK, "").Return(nil).Once()

		if _, err := svc.HandleUtterance(context.Background(), "default", "add buy milk"); err != nil {
			t.Fatalf("HandleUtterance() error = %v, want nil", err)
		}
	})

	t.Run("keeps the root span ok when a tool fails", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{})

		call := conversation.ToolCall{ID: "call_1", Name: "delete_item", Arguments: `{"id":99}`}

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(&conversation.Session{}, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.Anything).Return(toolDecision(call), nil).Once()
		d.registry.EXPECT().Execute(mock.Anything, "delete_item", `{"id":99}`).
			Return("", fmt.Errorf("todo 99: %w", domain.ErrNotFound))
		d.model.EXPECT().Decide(mock.Anything, mock.Anything).
			Return(finalDecision("That item does not exist."), nil).Once()
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.Anything).Return(nil)

		d.emitter.EXPECT().StartTurn(mock.Anything, "turn", mock.Anything).Return(rootRef, nil).Once()
		d.emitter.EXPECT().StartChild(mock.Anything, rootRef, trace.KindModelCall, "model-call", mock.Anything).
			Return(modelRef, nil).Times(2)
		d.emitter.EXPECT().SetAttribute(mock.Anything, modelRef, "tool.requests", 1).Return(nil).Once()
		d.emitter.EXPECT().End(mock.Anything, modelRef, trace.StatusOK, "").Return(nil).Times(2)
		d.emitter.EXPECT().StartChild(mock.Anything, rootRef, trace.KindToolCall, "delete_item", mock.Anything).
			Return(toolRef, nil).Once()
		d.emitter.EXPECT().SetAttribute(mock.Anything, toolRef, "tool.error", "not_found").Return(nil).Once()
		d.emitter.EXPECT().End(mock.Anything, toolRef, trace.StatusError, mock.MatchedBy(func(msg string) bool {
			return strings.Contains(msg, "todo 99")
		})).Return(nil).Once()
		d.emitter.EXPECT().EndTurn(mock.Anything, rootRef, trace.StatusOK, "").Return(nil).Once()

		got, err := svc.HandleUtterance(context.Background(), "default", "delete item 99")
		if err != nil {
			t.Fatalf("HandleUtterance() error = %v, want nil", err)
		}
		if got != "That item does not exist." {
			t.Errorf("HandleUtterance() = %q, want the recovered answer", got)
		}
	})

	t.Run("records token usage on the model span", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{})

		decision := finalDecision("Hi!")
		decision.Usage = conversation.Usage{PromptTokens: 42, CompletionTokens: 7}

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(&conversation.Session{}, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.Anything).Return(decision, nil)
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.Anything).Return(nil)

		d.emitter.EXPECT().StartTurn(mock.Anything, "turn", mock.Anything).Return(rootRef, nil)
		d.emitter.EXPECT().StartChild(mock.Anything, rootRef, trace.KindModelCall, "model-call", mock.Anything).
			Return(modelRef, nil)
		d.emitter.EXPECT().SetAttribute(mock.Anything, modelRef, "tokens.prompt", 42).Return(nil).Once()
		d.emitter.EXPECT().SetAttribute(mock.Anything, modelRef, "tokens.completion", 7).Return(nil).Once()
		d.emitter.EXPECT().End(mock.Anything, modelRef, trace.StatusOK, "").Return(nil)
		d.emitter.EXPECT().EndTurn(mock.Anything, rootRef, trace.StatusOK, "").Return(nil)

		if _, err := svc.HandleUtterance(context.Background(), "default", "hello"); err != nil {
			t.Fatalf("HandleUtterance() error = %v, want nil", err)
		}
	})

	t.Run("marks the turn span failed when the model fails", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{})

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(&conversation.Session{}, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("openai: %w", domain.ErrExternalService))
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.Anything).Return(nil)

		d.emitter.EXPECT().StartTurn(mock.Anything, "turn", mock.Anything).Return(rootRef, nil)
		d.emitter.EXPECT().StartChild(mock.Anything, rootRef, trace.KindModelCall, "model-call", mock.Anything).
			Return(modelRef, nil)
		d.emitter.EXPECT().End(mock.Anything, modelRef, trace.StatusError, mock.MatchedBy(func(msg string) bool {
			return strings.Contains(msg, "openai")
		})).Return(nil)
		d.emitter.EXPECT().EndTurn(mock.Anything, rootRef, trace.StatusError, mock.MatchedBy(func(msg string) bool {
			return msg != ""
		})).Return(nil)

		if _, err := svc.HandleUtterance(context.Background(), "default", "hello"); err == nil {
			t.Fatal("HandleUtterance() error = nil, want model failure")
		}
	})

	t.Run("panics on span misuse in strict mode", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{StrictSpans: true})

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(&conversation.Session{}, nil)
		d.emitter.EXPECT().StartTurn(mock.Anything, "turn", mock.Anything).
			Return(ports.SpanRef{}, domain.ErrSpanState)

		defer func() {
			if recover() == nil {
				t.Error("HandleUtterance() did not panic on span misuse")
			}
		}()
		_, _ = svc.HandleUtterance(context.Background(), "default", "hello")
	})

	t.Run("logs and continues on span misuse otherwise", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{})

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(&conversation.Session{}, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.Anything).Return(finalDecision("Hi!"), nil)
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.Anything).Return(nil)

		d.emitter.EXPECT().StartTurn(mock.Anything, "turn", mock.Anything).
			Return(ports.SpanRef{}, domain.ErrSpanState)
		d.emitter.EXPECT().StartChild(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(ports.SpanRef{}, domain.ErrSpanState).Maybe()
		d.emitter.EXPECT().End(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(domain.ErrSpanState).Maybe()
		d.emitter.EXPECT().EndTurn(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(domain.ErrSpanState).Maybe()

		got, err := svc.HandleUtterance(context.Background(), "default", "hello")
		if err != nil {
			t.Fatalf("HandleUtterance() error = %v, want nil with degraded tracing", err)
		}
		if got != "Hi!" {
			t.Errorf("HandleUtterance() = %q, want %q", got, "Hi!")
		}
	})
}

// --- HandleUtterance trimming ---

func TestAgentService_HandleUtterance_Trimming(t *testing.T) {
	t.Parallel()

	t.Run("drops oldest turns past the user-turn window", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{MaxUserTurns: 2})
		stubTracing(d.emitter)

		history := &conversation.Session{Turns: []conversation.Turn{
			conversation.UserTurn("u1"),
			conversation.AgentTurn("a1"),
			conversation.UserTurn("u2"),
			conversation.AgentTurn("a2"),
		}}

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(history, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.MatchedBy(func(req ports.ModelRequest) bool {
			return len(req.History) == 3 && req.History[0].Content == "u2"
		})).Return(finalDecision("a3"), nil)
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.MatchedBy(func(s *conversation.Session) bool {
			return len(s.Turns) == 4 && s.Turns[0].Content == "u2" && s.Turns[3].Content == "a3"
		})).Return(nil)

		if _, err := svc.HandleUtterance(context.Background(), "default", "u3"); err != nil {
			t.Fatalf("HandleUtterance() error = %v, want nil", err)
		}
	})

	t.Run("drops oldest turns past the token budget", func(t *testing.T) {
		t.Parallel()
		d := &agentDeps{
			sessions: mocks.NewMockSessionStore(t),
			model:    mocks.NewMockModelClient(t),
			registry: mocks.NewMockToolRegistry(t),
			emitter:  mocks.NewMockTraceEmitter(t),
		}
		// Zero-value counter uses the deterministic length heuristic.
		svc := NewAgentService(
			AgentConfig{MaxHistoryTokens: 300},
			d.sessions, d.model, d.registry, d.emitter,
			&tokencount.Counter{}, nil, discardLogger(),
		)
		stubTracing(d.emitter)

		long := strings.Repeat("word ", 80) // ~100 tokens under the heuristic
		history := &conversation.Session{Turns: []conversation.Turn{
			conversation.UserTurn(long),
			conversation.AgentTurn(long),
			conversation.UserTurn(long),
			conversation.AgentTurn(long),
		}}

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(history, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.MatchedBy(func(req ports.ModelRequest) bool {
			// The first user-turn group must be gone: 2 user turns remain.
			users := 0
			for _, turn := range req.History {
				if turn.Role == conversation.RoleUser {
					users++
				}
			}
			return users == 2 && req.History[len(req.History)-1].Content == "hi"
		})).Return(finalDecision("a3"), nil)
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.Anything).Return(nil)

		if _, err := svc.HandleUtterance(context.Background(), "default", "hi"); err != nil {
			t.Fatalf("HandleUtterance() error = %v, want nil", err)
		}
	})

	t.Run("never trims away the current utterance", func(t *testing.T) {
		t.Parallel()
		d := &agentDeps{
			sessions: mocks.NewMockSessionStore(t),
			model:    mocks.NewMockModelClient(t),
			registry: mocks.NewMockToolRegistry(t),
			emitter:  mocks.NewMockTraceEmitter(t),
		}
		// Budget far below even one turn; the last user turn must survive.
		svc := NewAgentService(
			AgentConfig{MaxHistoryTokens: 1},
			d.sessions, d.model, d.registry, d.emitter,
			&tokencount.Counter{}, nil, discardLogger(),
		)
		stubTracing(d.emitter)

		d.sessions.EXPECT().Load(mock.Anything, "default").Return(&conversation.Session{Turns: []conversation.Turn{
			conversation.UserTurn("earlier"),
			conversation.AgentTurn("reply"),
		}}, nil)
		d.registry.EXPECT().Definitions().Return(nil)
		d.model.EXPECT().Decide(mock.Anything, mock.MatchedBy(func(req ports.ModelRequest) bool {
			return len(req.History) == 1 && req.History[0].Content == "hi"
		})).Return(finalDecision("ok"), nil)
		d.sessions.EXPECT().Save(mock.Anything, "default", mock.Anything).Return(nil)

		if _, err := svc.HandleUtterance(context.Background(), "default", "hi"); err != nil {
			t.Fatalf("HandleUtterance() error = %v, want nil", err)
		}
	})
}

// --- ResetSession ---

func TestAgentService_ResetSession(t *testing.T) {
	t.Parallel()

	t.Run("deletes the stored history", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{})

		d.sessions.EXPECT().Reset(mock.Anything, "default").Return(nil)

		if err := svc.ResetSession(context.Background(), "default"); err != nil {
			t.Errorf("ResetSession() error = %v, want nil", err)
		}
	})

	t.Run("propagates store failures", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAgent(t, AgentConfig{})

		d.sessions.EXPECT().Reset(mock.Anything, "default").
			Return(fmt.Errorf("remove sessions/default.json: %w", domain.ErrStorage))

		err := svc.ResetSession(context.Background(), "default")
		if !errors.Is(err, domain.ErrStorage) {
			t.Errorf("ResetSession() error = %v, want ErrStorage", err)
		}
	})
}
