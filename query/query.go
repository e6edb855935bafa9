package query

import (
	"context"
	"encoding/json"
)

// Capability names an optional hosted tool the remote model may invoke while
// answering. Tags are vendor-defined; providers validate the tags they honor.
type Capability string

// CapabilityWebSearch lets the model search the web during generation.
const CapabilityWebSearch Capability = "web_search"

// Request is the input for a single model invocation.
type Request struct {
	Prompt       string       `json:"prompt"`                 // Non-empty question text
	Model        string       `json:"model,omitempty"`        // Provider model id; empty selects the provider default
	Capabilities []Capability `json:"capabilities,omitempty"` // Hosted tools to enable, possibly empty
}

// Item represents one entry of a model response's ordered output. Concrete
// item types implement the unexported isItem marker enabling a closed set.
type Item interface{ isItem() }

// Citation references a source the model consulted for a message.
type Citation struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// MessageItem is a generated assistant message.
type MessageItem struct {
	ID        string     `json:"id,omitempty"`
	Text      string     `json:"text"`
	Citations []Citation `json:"citations,omitempty"`
}

// isItem implements the Item interface for MessageItem.
func (MessageItem) isItem() {}

// MarshalJSON tags the item with its wire type for structured output.
func (m MessageItem) MarshalJSON() ([]byte, error) {
	type alias MessageItem
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "message", alias: alias(m)})
}

// SearchCallItem records a hosted web-search invocation the model performed.
type SearchCallItem struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"` // "completed", "failed", ...
	Query  string `json:"query,omitempty"`  // Search query, when the vendor reports it
}

// isItem implements the Item interface for SearchCallItem.
func (SearchCallItem) isItem() {}

// MarshalJSON tags the item with its wire type for structured output.
func (s SearchCallItem) MarshalJSON() ([]byte, error) {
	type alias SearchCallItem
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "web_search_call", alias: alias(s)})
}

// Usage captures token usage statistics for a response.
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// Response is the normalized payload of one model invocation. Output preserves
// the vendor's item order; nothing is filtered or interpreted.
type Response struct {
	ID     string `json:"id,omitempty"`
	Model  string `json:"model,omitempty"`
	Output []Item `json:"output"`
	Usage  *Usage `json:"usage,omitempty"`
}

// Text concatenates the text of all message items in output order.
func (r *Response) Text() string {
	var out string
	for _, item := range r.Output {
		if msg, ok := item.(MessageItem); ok {
			out += msg.Text
		}
	}
	return out
}

// Info contains metadata about a client implementation.
type Info struct {
	Model             string `json:"model"`
	Provider          string `json:"provider"` // "openai", "anthropic", "mock", etc.
	SupportsWebSearch bool   `json:"supports_web_search"`
}

// Client is the minimal interface the Invoker requires from a remote
// completion service. Implementations perform exactly one blocking request
// per Complete call and return the vendor's failure unwrapped beyond their
// own adapter boundary.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the client implementation.
	Info() Info
}
