package openai

import (
	sdk "github.com/sashabaranov/go-openai"

	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
)

// toWireMessages renders the system prompt and conversation history as chat
// messages. The system prompt, when present, always leads.
func toWireMessages(system string, history []conversation.Turn) []sdk.ChatCompletionMessage {
	messages := make([]sdk.ChatCompletionMessage, 0, len(history)+1)
	if system != "" {
		messages = append(messages, sdk.ChatCompletionMessage{
			Role:    sdk.ChatMessageRoleSystem,
			Content: system,
		})
	}
	for i := range history {
		messages = append(messages, toWireMessage(&history[i]))
	}
	return messages
}

func toWireMessage(turn *conversation.Turn) sdk.ChatCompletionMessage {
	switch turn.Role {
	case conversation.RoleUser:
		return sdk.ChatCompletionMessage{
			Role:    sdk.ChatMessageRoleUser,
			Content: turn.Content,
		}

	case conversation.RoleTool:
		return sdk.ChatCompletionMessage{
			Role:       sdk.ChatMessageRoleTool,
			Content:    turn.Content,
			Name:       turn.ToolName,
			ToolCallID: turn.ToolCallID,
		}

	default: // conversation.RoleAgent
		msg := sdk.ChatCompletionMessage{
			Role:    sdk.ChatMessageRoleAssistant,
			Content: turn.Content,
		}
		if len(turn.ToolCalls) > 0 {
			msg.ToolCalls = make([]sdk.ToolCall, 0, len(turn.ToolCalls))
			for _, call := range turn.ToolCalls {
				msg.ToolCalls = append(msg.ToolCalls, sdk.ToolCall{
					ID:   call.ID,
					Type: sdk.ToolTypeFunction,
					Function: sdk.FunctionCall{
						Name:      call.Name,
						Arguments: call.Arguments,
					},
				})
			}
		}
		return msg
	}
}

// toWireTools renders tool definitions for the request. Returns nil when
// there are none so the field is omitted from the payload entirely.
func toWireTools(defs []conversation.ToolDef) []sdk.Tool {
	if len(defs) == 0 {
		return nil
	}
	tools := make([]sdk.Tool, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, sdk.Tool{
			Type: sdk.ToolTypeFunction,
			Function: &sdk.FunctionDefinition{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  def.Parameters,
			},
		})
	}
	return tools
}

// toDecision translates the first choice into a domain decision. Tool-call
// IDs are carried verbatim so results can be correlated on the next request.
func toDecision(resp *sdk.ChatCompletionResponse) *conversation.Decision {
	message := resp.Choices[0].Message

	decision := &conversation.Decision{
		FinalText: message.Content,
		Usage: conversation.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
		},
	}

	for _, call := range message.ToolCalls {
		decision.ToolRequests = append(decision.ToolRequests, conversation.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}
	return decision
}
