package brave

// searchResponse is the subset of the Brave web search response envelope
// this client reads. The API returns many more result categories (news,
// videos, infoboxes, locations); only organic web results are consumed.
type searchResponse struct {
	Web *webResults `json:"web"`
}

// webResults holds the organic web results block.
type webResults struct {
	Results []webResult `json:"results"`
}

// webResult is a single organic hit. Description carries highlight markup
// (<strong> tags) and HTML entities which the translator strips.
type webResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// errorResponse is the envelope Brave returns on non-2xx statuses.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail carries the machine-readable code and human-readable detail
// of an API error.
type errorDetail struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}
