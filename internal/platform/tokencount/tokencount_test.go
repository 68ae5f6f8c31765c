package tokencount

import (
	"testing"

	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
)

func TestCounter_HeuristicFallback(t *testing.T) {
	c := &Counter{}

	if c.Precise() {
		t.Fatal("counter without an encoder should not report precise")
	}
	if got := c.CountText(""); got != 0 {
		t.Fatalf("CountText(empty) = %d, want 0", got)
	}
	if got := c.CountText("Buy milk on the way home"); got <= 0 {
		t.Fatalf("CountText() = %d, want > 0", got)
	}
	if got := c.CountText("x"); got != 1 {
		t.Fatalf("CountText(short) = %d, want the 1-token floor", got)
	}
}

func TestCounter_CountTurns(t *testing.T) {
	c := &Counter{}

	turns := []conversation.Turn{
		conversation.UserTurn("add buy milk to my list"),
		conversation.AgentToolCallTurn([]conversation.ToolCall{
			{ID: "call_1", Name: "create_item", Arguments: `{"title":"Buy milk"}`},
		}),
		conversation.ToolResultTurn(conversation.ToolCall{ID: "call_1", Name: "create_item"}, `{"id":1}`),
		conversation.AgentTurn("Added \"Buy milk\" to your list."),
	}

	total := c.CountTurns(turns)
	if total <= 0 {
		t.Fatalf("CountTurns() = %d, want > 0", total)
	}

	// The tool-call turn carries structural overhead beyond its text.
	withCall := c.countTurn(&turns[1])
	if withCall <= turnOverhead+toolCallOverhead {
		t.Fatalf("tool-call turn = %d tokens, want text plus overheads", withCall)
	}

	if c.CountTurns(nil) != 0 {
		t.Fatal("CountTurns(nil) should be 0")
	}
}

func TestEncodingForModel(t *testing.T) {
	tests := []struct {
		model string
		want  string
	}{
		{"gpt-4o-mini", "o200k_base"},
		{"gpt-4.1", "o200k_base"},
		{"o3-mini", "o200k_base"},
		{"gpt-4", "cl100k_base"},
		{"gpt-3.5-turbo", "cl100k_base"},
		{"", "cl100k_base"},
		{"unknown-model", "cl100k_base"},
	}
	for _, tt := range tests {
		if got := encodingForModel(tt.model); got != tt.want {
			t.Errorf("encodingForModel(%q) = %q, want %q", tt.model, got, tt.want)
		}
	}
}
