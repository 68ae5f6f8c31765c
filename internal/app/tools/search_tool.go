package tools

import (
	"context"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// Compile-time check that WebSearch implements ports.Tool.
var _ ports.Tool = (*WebSearch)(nil)

// defaultResultCount is how many results a search returns when the model
// does not ask for a specific number.
const defaultResultCount = 5

// WebSearch runs a web query through the search provider so the agent can
// ground task-related suggestions in current information.
type WebSearch struct {
	search ports.SearchClient
}

// NewWebSearch creates the web_search tool.
func NewWebSearch(search ports.SearchClient) *WebSearch {
	return &WebSearch{search: search}
}

// Name returns the tool's wire name.
func (t *WebSearch) Name() string { return "web_search" }

// Definition returns the schema advertised to the model.
func (t *WebSearch) Definition() conversation.ToolDef {
	return conversation.ToolDef{
		Name:        t.Name(),
		Description: "Search the web. Returns result titles, URLs, and plain-text snippets.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Search query.",
				},
				"count": map[string]any{
					"type":        "integer",
					"description": "Maximum number of results to return.",
				},
			},
			"required": []string{"query"},
		},
	}
}

type webSearchArgs struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

type searchResultPayload struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

type webSearchResult struct {
	Results []searchResultPayload `json:"results"`
	Count   int                   `json:"count"`
}

// Execute runs the query and returns the results as JSON.
func (t *WebSearch) Execute(ctx context.Context, args string) (string, error) {
	in, err := decodeArgs[webSearchArgs](args)
	if err != nil {
		return "", err
	}
	if in.Query == "" {
		return "", &domain.ValidationError{
			Fields: map[string]string{"query": "is required"},
		}
	}

	count := in.Count
	if count <= 0 {
		count = defaultResultCount
	}

	hits, err := t.search.Search(ctx, in.Query, count)
	if err != nil {
		return "", err
	}

	result := webSearchResult{Results: make([]searchResultPayload, 0, len(hits)), Count: len(hits)}
	for _, hit := range hits {
		result.Results = append(result.Results, searchResultPayload{
			Title:   hit.Title,
			URL:     hit.URL,
			Snippet: hit.Snippet,
		})
	}
	return encode(result)
}
