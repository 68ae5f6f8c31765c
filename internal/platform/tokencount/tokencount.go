// Package tokencount estimates the token footprint of conversation history
// so the orchestrator can bound what each model call carries.
package tokencount

import (
	"strings"

	tiktoken "github.com/pkoukk/tiktoken-go"

	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
)

// Per-message and per-tool-call structural overhead in the chat wire format,
// on top of the encoded text itself.
const (
	turnOverhead     = 4
	toolCallOverhead = 8
)

// Counter counts tokens with the encoding for a given model, falling back
// to a character heuristic when the BPE data is unavailable (offline
// environments without the tiktoken cache).
type Counter struct {
	encoder *tiktoken.Tiktoken
}

// NewCounter creates a Counter for the given model name. It never fails;
// without an encoder it estimates.
func NewCounter(model string) *Counter {
	enc, err := tiktoken.GetEncoding(encodingForModel(model))
	if err != nil {
		return &Counter{}
	}
	return &Counter{encoder: enc}
}

// Precise reports whether counts come from the real encoding rather than
// the heuristic.
func (c *Counter) Precise() bool {
	return c.encoder != nil
}

// CountText returns the token count for a single string.
func (c *Counter) CountText(text string) int {
	if text == "" {
		return 0
	}
	if c.encoder == nil {
		return heuristicCount(text)
	}
	return len(c.encoder.Encode(text, nil, nil))
}

// CountTurns returns the total token footprint of the given history,
// including per-turn and per-tool-call structural overhead.
func (c *Counter) CountTurns(turns []conversation.Turn) int {
	total := 0
	for i := range turns {
		total += c.countTurn(&turns[i])
	}
	return total
}

func (c *Counter) countTurn(turn *conversation.Turn) int {
	tokens := turnOverhead
	tokens += c.CountText(turn.Role.String())
	tokens += c.CountText(turn.Content)
	tokens += c.CountText(turn.ToolName)
	for _, call := range turn.ToolCalls {
		tokens += c.CountText(call.Name)
		tokens += c.CountText(call.Arguments)
		tokens += toolCallOverhead
	}
	return tokens
}

// heuristicCount approximates the usual ~4 characters per token.
func heuristicCount(text string) int {
	n := len(text) / 4
	if n < 1 {
		n = 1
	}
	return n
}

// encodingForModel maps a model name to its tiktoken encoding. Unknown
// models get cl100k_base, which over-counts slightly for newer encodings
// and keeps trimming conservative.
func encodingForModel(model string) string {
	m := strings.ToLower(strings.TrimSpace(model))
	switch {
	case strings.HasPrefix(m, "gpt-4o"), strings.HasPrefix(m, "gpt-4.1"),
		strings.HasPrefix(m, "gpt-5"), strings.HasPrefix(m, "o1"),
		strings.HasPrefix(m, "o3"), strings.HasPrefix(m, "o4"):
		return "o200k_base"
	default:
		return "cl100k_base"
	}
}
