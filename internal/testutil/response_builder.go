package testutil

import (
	"github.com/askweb/askweb/query"
)

// ResponseBuilder provides a fluent helper for constructing responses in tests.
// Example:
//
//	resp := NewResponseBuilder().ID("resp-1").SearchCall("call-1", "oil price").Message("answer").Build()
//
// Chain only the parts you need; sensible defaults are applied.
type ResponseBuilder struct {
	id    string
	model string
	items []query.Item
	usage *query.Usage
}

// NewResponseBuilder creates a builder with a default model name.
func NewResponseBuilder() *ResponseBuilder { return &ResponseBuilder{model: "test-model"} }

// ID overrides the response ID (chainable).
func (b *ResponseBuilder) ID(id string) *ResponseBuilder { b.id = id; return b }

// Model sets the model name reported by the response (chainable).
func (b *ResponseBuilder) Model(m string) *ResponseBuilder { b.model = m; return b }

// Message appends a plain message item (chainable).
func (b *ResponseBuilder) Message(text string) *ResponseBuilder {
	b.items = append(b.items, query.MessageItem{Text: text})
	return b
}

// CitedMessage appends a message item carrying citations (chainable).
func (b *ResponseBuilder) CitedMessage(text string, citations ...query.Citation) *ResponseBuilder {
	b.items = append(b.items, query.MessageItem{Text: text, Citations: citations})
	return b
}

// SearchCall appends a completed web-search invocation record (chainable).
func (b *ResponseBuilder) SearchCall(id, searched string) *ResponseBuilder {
	b.items = append(b.items, query.SearchCallItem{ID: id, Status: "completed", Query: searched})
	return b
}

// Usage sets token usage totals (chainable).
func (b *ResponseBuilder) Usage(in, out int64) *ResponseBuilder {
	b.usage = &query.Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
	return b
}

// Build assembles the response.
func (b *ResponseBuilder) Build() *query.Response {
	return &query.Response{
		ID:     b.id,
		Model:  b.model,
		Output: b.items,
		Usage:  b.usage,
	}
}
