// Package openai adapts the OpenAI chat completions API to the
// ports.ModelClient port. Conversation turns and tool definitions are
// translated to the SDK's wire types on the way out; the model's reply is
// translated back into a domain decision on the way in.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	sdk "github.com/sashabaranov/go-openai"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
	"github.com/jsamuelsen11/todo-agent/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// Compile-time interface check.
var _ ports.ModelClient = (*Client)(nil)

// Config holds the settings for one chat model endpoint.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client calls the chat completions API. When constructed with an
// instrumented httpclient, every SDK request goes through the circuit
// breaker, rate limiter, and retry pipeline.
type Client struct {
	api    *sdk.Client
	model  string
	logger *slog.Logger
}

// New creates a Client. httpClient may be nil, in which case the SDK's
// default transport is used (tests mostly).
func New(cfg Config, httpClient *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sdkCfg := sdk.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		sdkCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if httpClient != nil {
		sdkCfg.HTTPClient = &http.Client{Transport: transport{client: httpClient}}
	}

	return &Client{
		api:    sdk.NewClientWithConfig(sdkCfg),
		model:  cfg.Model,
		logger: logger,
	}
}

// Decide asks the model for its next move given the conversation so far.
// Returns domain.ErrExternalService for any API failure; context
// cancellation passes through unwrapped.
func (c *Client) Decide(ctx context.Context, req ports.ModelRequest) (*conversation.Decision, error) {
	c.logger.DebugContext(ctx, "requesting model decision",
		slog.String("model", c.model),
		slog.Int("history_turns", len(req.History)),
	)

	chatReq := sdk.ChatCompletionRequest{
		Model:    c.model,
		Messages: toWireMessages(req.System, req.History),
	}
	if tools := toWireTools(req.Tools); len(tools) > 0 {
		chatReq.Tools = tools
		chatReq.ToolChoice = "auto"
	}

	resp, err := c.api.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		c.logger.ErrorContext(ctx, "chat completion failed",
			slog.String("operation", "Decide"),
			slog.String("model", c.model),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("openai: %v: %w", err, domain.ErrExternalService)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: response carried no choices: %w", domain.ErrExternalService)
	}

	return toDecision(&resp), nil
}

// transport adapts the instrumented httpclient to http.RoundTripper so SDK
// requests go through the breaker, rate limiter, and retry pipeline.
type transport struct {
	client *httpclient.Client
}

func (t transport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.client.Do(req.Context(), req)
	if resp != nil {
		// A retry-exhausted status comes back with both resp and err set;
		// hand the SDK the response so it can decode the API error body.
		return resp, nil
	}
	return nil, err
}
