package conversation

// ToolDef describes a tool to the model: its name, what it does, and a JSON
// Schema for its arguments. Parameters follows the structure the chat API
// expects (type/properties/required).
type ToolDef struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Usage reports token consumption for a single model call, when the provider
// makes it available. Zero values mean "not reported".
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

// Decision is the model's answer to one decide call: either final text for
// the user or a batch of tool requests to execute in order. Exactly one of
// the two is meaningful.
type Decision struct {
	FinalText    string
	ToolRequests []ToolCall
	Usage        Usage
}

// IsFinal reports whether the decision carries final text rather than tool
// requests.
func (d *Decision) IsFinal() bool {
	return len(d.ToolRequests) == 0
}
