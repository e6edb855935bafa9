package query

import (
	"context"
	"fmt"
)

// MockClient is a lightweight in-memory Client useful for tests & examples.
type MockClient struct {
	info      Info
	responses map[string]*Response
	err       error
}

// NewMockClient constructs a MockClient with web search support flagged.
func NewMockClient(model, provider string) *MockClient {
	return &MockClient{
		info: Info{
			Model:             model,
			Provider:          provider,
			SupportsWebSearch: true,
		},
		responses: make(map[string]*Response),
	}
}

// AddResponse registers a deterministic canned response for a prompt.
func (m *MockClient) AddResponse(prompt string, resp *Response) { m.responses[prompt] = resp }

// FailWith makes every subsequent Complete call return err.
func (m *MockClient) FailWith(err error) { m.err = err }

// Complete implements Client; returns the canned response for the prompt or a
// synthesized single-message response.
func (m *MockClient) Complete(ctx context.Context, req Request) (*Response, error) {
	if m.err != nil {
		return nil, m.err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if resp, ok := m.responses[req.Prompt]; ok {
		return resp, nil
	}

	return &Response{
		Model: m.info.Model,
		Output: []Item{
			MessageItem{Text: fmt.Sprintf("Mock response to: %s", req.Prompt)},
		},
	}, nil
}

// Info implements Client.
func (m *MockClient) Info() Info { return m.info }
