package anthropic

import (
	"encoding/json"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/askweb/askweb/query"
	"github.com/stretchr/testify/assert"
)

func newTestModel() *Model {
	client := anthropic.NewClient()
	return NewModelFromClient(&client)
}

func TestModel_BuildParams_NoCapabilities(t *testing.T) {
	m := newTestModel()

	params, err := m.buildParams(query.Request{Prompt: "hello"})
	assert.NoError(t, err)
	assert.Equal(t, m.opts.Model, params.Model)
	assert.Equal(t, int64(4096), params.MaxTokens)
	assert.Len(t, params.Messages, 1)
	// No capability requested: the request carries no tool entry.
	assert.Empty(t, params.Tools)
}

func TestModel_BuildParams_WebSearch(t *testing.T) {
	m := newTestModel()

	params, err := m.buildParams(query.Request{
		Prompt:       "news?",
		Model:        "claude-sonnet-4-20250514",
		Capabilities: []query.Capability{query.CapabilityWebSearch},
	})
	assert.NoError(t, err)
	assert.Equal(t, anthropic.Model("claude-sonnet-4-20250514"), params.Model)
	assert.Len(t, params.Tools, 1)
	assert.NotNil(t, params.Tools[0].OfWebSearchTool20250305)
}

func TestModel_BuildParams_UnknownCapability(t *testing.T) {
	m := newTestModel()

	_, err := m.buildParams(query.Request{
		Prompt:       "news?",
		Capabilities: []query.Capability{"computer_use"},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported capability")
}

func TestConvertMessage(t *testing.T) {
	resp := &anthropic.Message{
		ID:    "msg-1",
		Model: "claude-3-5-sonnet-20241022",
		Content: []anthropic.ContentBlockUnion{
			{
				Type:  "server_tool_use",
				ID:    "srvtoolu-1",
				Input: json.RawMessage(`{"query":"positive news today"}`),
			},
			{
				Type: "text",
				Text: "Good news everyone.",
			},
		},
		Usage: anthropic.Usage{InputTokens: 10, OutputTokens: 20},
	}

	got := convertMessage(resp)

	assert.Equal(t, "msg-1", got.ID)
	assert.Equal(t, "claude-3-5-sonnet-20241022", got.Model)
	assert.Len(t, got.Output, 2)

	call, ok := got.Output[0].(query.SearchCallItem)
	assert.True(t, ok)
	assert.Equal(t, "srvtoolu-1", call.ID)
	assert.Equal(t, "positive news today", call.Query)

	msg, ok := got.Output[1].(query.MessageItem)
	assert.True(t, ok)
	assert.Equal(t, "Good news everyone.", msg.Text)

	assert.Equal(t, &query.Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30}, got.Usage)
}

func TestSearchQuery_MalformedInput(t *testing.T) {
	assert.Empty(t, searchQuery(nil))
	assert.Empty(t, searchQuery(json.RawMessage(`not-json`)))
	assert.Equal(t, "x", searchQuery(map[string]any{"query": "x"}))
}
