package brave

import (
	"html"
	"strings"

	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// highlightTags are the markup tags Brave embeds in descriptions to mark
// query-term hits.
var highlightTags = []string{"<strong>", "</strong>", "<em>", "</em>", "<b>", "</b>"}

// toSearchResults projects the wire response onto the port type. Returns an
// empty slice when the response carries no web results.
func toSearchResults(resp searchResponse) []ports.SearchResult {
	if resp.Web == nil {
		return nil
	}

	results := make([]ports.SearchResult, 0, len(resp.Web.Results))
	for _, hit := range resp.Web.Results {
		results = append(results, ports.SearchResult{
			Title:   cleanSnippet(hit.Title),
			URL:     hit.URL,
			Snippet: cleanSnippet(hit.Description),
		})
	}
	return results
}

// cleanSnippet strips Brave's highlight markup and decodes HTML entities so
// snippets read as plain text.
func cleanSnippet(s string) string {
	for _, tag := range highlightTags {
		s = strings.ReplaceAll(s, tag, "")
	}
	return html.UnescapeString(s)
}
