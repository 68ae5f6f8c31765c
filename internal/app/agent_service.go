package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
	"github.com/jsamuelsen11/todo-agent/internal/domain/trace"
	"github.com/jsamuelsen11/todo-agent/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-agent/internal/platform/tokencount"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// Compile-time check that AgentService implements ports.AgentService.
var _ ports.AgentService = (*AgentService)(nil)

// Defaults for unset AgentConfig fields.
const (
	defaultMaxToolRounds = 8
	defaultMaxUserTurns  = 12
)

// Caps on span attribute payloads.
const (
	utterancePreviewChars = 80
	attrPayloadChars      = 512
)

// AgentConfig bounds a turn. MaxToolRounds caps how many model decisions a
// single utterance may consume before the turn fails with ErrTurnBudget.
// MaxUserTurns and MaxHistoryTokens bound the persisted history; trimming is
// permanent, not per-request.
type AgentConfig struct {
	MaxToolRounds    int
	MaxUserTurns     int
	MaxHistoryTokens int

	// ModelName annotates model-call spans; empty omits the attribute.
	ModelName string

	// StrictSpans makes span lifecycle violations panic instead of being
	// logged. Enabled in the dev profile so emitter misuse is caught
	// immediately; production keeps the turn alive and logs.
	StrictSpans bool
}

func (c AgentConfig) withDefaults() AgentConfig {
	if c.MaxToolRounds <= 0 {
		c.MaxToolRounds = defaultMaxToolRounds
	}
	if c.MaxUserTurns <= 0 {
		c.MaxUserTurns = defaultMaxUserTurns
	}
	return c
}

// AgentService implements ports.AgentService. It owns the conversational
// loop: append the utterance, ask the model to decide, execute requested
// tools in order, feed results back, and repeat until the model produces
// final text or the round budget runs out. The whole turn is bracketed by
// an emitter trace.
//
// Turns for the same session key are serialized; model-level failures are
// fatal to the turn, tool-level failures are rendered into tool results and
// recovered by the model.
type AgentService struct {
	sessions ports.SessionStore
	model    ports.ModelClient
	registry ports.ToolRegistry
	emitter  ports.TraceEmitter
	counter  *tokencount.Counter
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	cfg      AgentConfig

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAgentService creates an AgentService. The counter may be nil, which
// disables token-based trimming; metrics may be nil in tests.
func NewAgentService(
	cfg AgentConfig,
	sessions ports.SessionStore,
	model ports.ModelClient,
	registry ports.ToolRegistry,
	emitter ports.TraceEmitter,
	counter *tokencount.Counter,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *AgentService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AgentService{
		sessions: sessions,
		model:    model,
		registry: registry,
		emitter:  emitter,
		counter:  counter,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg.withDefaults(),
		locks:    make(map[string]*sync.Mutex),
	}
}

// HandleUtterance runs one full conversational turn and returns the agent's
// reply. The updated session is persisted even when the turn fails, so a
// later turn sees everything that actually happened.
func (s *AgentService) HandleUtterance(ctx context.Context, sessionKey, utterance string) (string, error) {
	if strings.TrimSpace(utterance) == "" {
		return "", &domain.ValidationError{Fields: map[string]string{"utterance": "is required"}}
	}

	lock := s.sessionLock(sessionKey)
	lock.Lock()
	defer lock.Unlock()

	start := time.Now()
	s.logger.InfoContext(ctx, "handling utterance", slog.String("session", sessionKey))

	session, err := s.sessions.Load(ctx, sessionKey)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load session",
			slog.String("operation", "HandleUtterance"),
			slog.String("session", sessionKey),
			slog.Any("error", err),
		)
		s.recordTurn(ctx, start, domain.Kind(err))
		return "", err
	}

	session.Append(conversation.UserTurn(utterance))
	s.trimHistory(ctx, session)

	turnRef, err := s.emitter.StartTurn(ctx, "turn", map[string]any{
		"session.key":       sessionKey,
		"utterance.preview": preview(utterance, utterancePreviewChars),
	})
	if err != nil {
		s.spanFault(ctx, err)
	}

	reply, turnErr := s.runTurn(ctx, turnRef, session)

	if err := s.sessions.Save(ctx, sessionKey, session); err != nil {
		s.logger.ErrorContext(ctx, "failed to save session",
			slog.String("operation", "HandleUtterance"),
			slog.String("session", sessionKey),
			slog.Any("error", err),
		)
		if turnErr == nil {
			turnErr = err
		}
	}

	status, message, outcome := trace.StatusOK, "", "ok"
	if turnErr != nil {
		status, message, outcome = trace.StatusError, turnErr.Error(), domain.Kind(turnErr)
	}
	if err := s.emitter.EndTurn(ctx, turnRef, status, message); err != nil {
		s.spanFault(ctx, err)
	}

	s.recordTurn(ctx, start, outcome)
	return reply, turnErr
}

// ResetSession deletes the stored history for the key.
func (s *AgentService) ResetSession(ctx context.Context, sessionKey string) error {
	lock := s.sessionLock(sessionKey)
	lock.Lock()
	defer lock.Unlock()

	s.logger.InfoContext(ctx, "resetting session", slog.String("session", sessionKey))

	if err := s.sessions.Reset(ctx, sessionKey); err != nil {
		s.logger.ErrorContext(ctx, "failed to reset session",
			slog.String("operation", "ResetSession"),
			slog.String("session", sessionKey),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// runTurn drives the decide/execute loop under the turn's root span.
func (s *AgentService) runTurn(ctx context.Context, turnRef ports.SpanRef, session *conversation.Session) (string, error) {
	tools := s.registry.Definitions()

	for round := 1; round <= s.cfg.MaxToolRounds; round++ {
		attrs := map[string]any{"round": round}
		if s.cfg.ModelName != "" {
			attrs["model.name"] = s.cfg.ModelName
		}
		modelRef, err := s.emitter.StartChild(ctx, turnRef, trace.KindModelCall, "model-call", attrs)
		if err != nil {
			s.spanFault(ctx, err)
		}

		decision, err := s.model.Decide(ctx, ports.ModelRequest{
			System:  systemPrompt,
			History: session.Turns,
			Tools:   tools,
		})
		if err != nil {
			s.endSpan(ctx, modelRef, trace.StatusError, err.Error())
			s.logger.ErrorContext(ctx, "model call failed",
				slog.String("operation", "HandleUtterance"),
				slog.Int("round", round),
				slog.Any("error", err),
			)
			return "", err
		}

		s.recordUsage(ctx, modelRef, decision.Usage)

		if decision.IsFinal() {
			s.endSpan(ctx, modelRef, trace.StatusOK, "")
			session.Append(conversation.AgentTurn(decision.FinalText))
			return decision.FinalText, nil
		}

		s.setAttr(ctx, modelRef, "tool.requests", len(decision.ToolRequests))
		s.endSpan(ctx, modelRef, trace.StatusOK, "")

		// Models may send interstitial text alongside tool requests; keep it.
		toolTurn := conversation.AgentToolCallTurn(decision.ToolRequests)
		toolTurn.Content = decision.FinalText
		session.Append(toolTurn)
		for _, call := range decision.ToolRequests {
			session.Append(s.executeTool(ctx, turnRef, call))
		}
	}

	return "", fmt.Errorf("no final response after %d tool rounds: %w", s.cfg.MaxToolRounds, domain.ErrTurnBudget)
}

// executeTool runs one requested tool under its own span and always returns
// a tool result turn; failures are rendered for the model instead of
// propagating.
func (s *AgentService) executeTool(ctx context.Context, turnRef ports.SpanRef, call conversation.ToolCall) conversation.Turn {
	ref, err := s.emitter.StartChild(ctx, turnRef, trace.KindToolCall, call.Name, map[string]any{
		"tool.name":  call.Name,
		"tool.input": preview(call.Arguments, attrPayloadChars),
	})
	if err != nil {
		s.spanFault(ctx, err)
	}

	result, execErr := s.registry.Execute(ctx, call.Name, call.Arguments)
	outcome := "ok"
	if execErr != nil {
		outcome = domain.Kind(execErr)
		s.logger.WarnContext(ctx, "tool execution failed",
			slog.String("tool", call.Name),
			slog.Any("error", execErr),
		)
		result = renderToolError(execErr)
		s.setAttr(ctx, ref, "tool.error", outcome)
		s.endSpan(ctx, ref, trace.StatusError, execErr.Error())
	} else {
		s.setAttr(ctx, ref, "tool.output", preview(result, attrPayloadChars))
		s.endSpan(ctx, ref, trace.StatusOK, "")
	}

	if s.metrics != nil {
		s.metrics.ToolCallTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrTool.String(call.Name),
			telemetry.AttrResult.String(outcome),
		))
	}

	return conversation.ToolResultTurn(call, result)
}

// trimHistory enforces the user-turn window and the token budget. Trimmed
// turns are gone for good; the next Save persists the shortened history.
func (s *AgentService) trimHistory(ctx context.Context, session *conversation.Session) {
	before := len(session.Turns)

	if n := s.cfg.MaxUserTurns; session.UserTurnCount() > n {
		session.Turns = session.Recent(n)
	}

	if budget := s.cfg.MaxHistoryTokens; budget > 0 && s.counter != nil {
		for session.UserTurnCount() > 1 && s.counter.CountTurns(session.Turns) > budget {
			session.Turns = session.Recent(session.UserTurnCount() - 1)
		}
	}

	if dropped := before - len(session.Turns); dropped > 0 {
		s.logger.InfoContext(ctx, "trimmed session history", slog.Int("dropped_turns", dropped))
	}
}

func (s *AgentService) sessionLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// setAttr annotates an open span, routing lifecycle misuse through spanFault.
func (s *AgentService) setAttr(ctx context.Context, ref ports.SpanRef, key string, value any) {
	if err := s.emitter.SetAttribute(ctx, ref, key, value); err != nil {
		s.spanFault(ctx, err)
	}
}

// endSpan closes an open span, routing lifecycle misuse through spanFault.
func (s *AgentService) endSpan(ctx context.Context, ref ports.SpanRef, status trace.Status, message string) {
	if err := s.emitter.End(ctx, ref, status, message); err != nil {
		s.spanFault(ctx, err)
	}
}

// spanFault handles a span lifecycle violation: panic under StrictSpans,
// otherwise log and keep the turn alive with degraded tracing.
func (s *AgentService) spanFault(ctx context.Context, err error) {
	if s.cfg.StrictSpans {
		panic(fmt.Sprintf("span lifecycle violation: %v", err))
	}
	s.logger.ErrorContext(ctx, "span lifecycle violation", slog.Any("error", err))
}

func (s *AgentService) recordUsage(ctx context.Context, ref ports.SpanRef, usage conversation.Usage) {
	if usage.PromptTokens > 0 {
		s.setAttr(ctx, ref, "tokens.prompt", usage.PromptTokens)
	}
	if usage.CompletionTokens > 0 {
		s.setAttr(ctx, ref, "tokens.completion", usage.CompletionTokens)
	}

	if s.metrics == nil {
		return
	}
	if usage.PromptTokens > 0 {
		s.metrics.ModelTokenTotal.Add(ctx, int64(usage.PromptTokens), metric.WithAttributes(
			telemetry.AttrTokenType.String("prompt"),
		))
	}
	if usage.CompletionTokens > 0 {
		s.metrics.ModelTokenTotal.Add(ctx, int64(usage.CompletionTokens), metric.WithAttributes(
			telemetry.AttrTokenType.String("completion"),
		))
	}
}

func (s *AgentService) recordTurn(ctx context.Context, start time.Time, outcome string) {
	if s.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(telemetry.AttrResult.String(outcome))
	s.metrics.TurnDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.TurnTotal.Add(ctx, 1, attrs)
}

// preview truncates s for span attributes without splitting a UTF-8 rune.
func preview(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// renderToolError turns a tool failure into the JSON the model reads back.
func renderToolError(err error) string {
	payload := map[string]string{
		"error":   domain.Kind(err),
		"message": err.Error(),
	}
	data, merr := json.Marshal(payload)
	if merr != nil {
		return fmt.Sprintf(`{"error":%q}`, domain.Kind(err))
	}
	return string(data)
}
