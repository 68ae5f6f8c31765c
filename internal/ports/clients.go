package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
)

// ModelRequest carries the inputs for one chat-completion call: the system
// prompt, the trimmed conversation history, and the tool definitions the
// model may choose from.
type ModelRequest struct {
	System  string
	History []conversation.Turn
	Tools   []conversation.ToolDef
}

// ModelClient defines the client port for the chat-completion provider.
// Implemented by the openai adapter; called by the application layer.
type ModelClient interface {
	// Decide submits the request and returns the model's decision: either
	// final text for the user or one or more tool requests.
	// Returns domain.ErrExternalService on transport failure, non-2xx
	// responses, or a response with neither text nor tool requests.
	Decide(ctx context.Context, req ModelRequest) (*conversation.Decision, error)
}

// SearchResult is one hit returned by the web search provider. Snippet is
// plain text with provider markup stripped.
type SearchResult struct {
	Title   string
	URL     string
	Snippet string
}

// SearchClient defines the client port for the external web search service.
// Implemented by the brave adapter; called by the web_search tool.
type SearchClient interface {
	// Search returns up to count results for the query. Implementations
	// cap count at a provider-specific maximum.
	// Returns domain.ErrValidation when the provider rejects the query
	// parameters and domain.ErrExternalService on timeouts and other
	// failures.
	Search(ctx context.Context, query string, count int) ([]SearchResult, error)
}
