package openai

import (
	"testing"

	"github.com/askweb/askweb/query"
	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
)

func newTestChatModel() *ChatModel {
	client := openai.NewClient()
	return NewChatModelFromClient(&client)
}

func TestChatModel_BuildParams_NoCapabilities(t *testing.T) {
	m := newTestChatModel()

	params, err := m.buildParams(query.Request{Prompt: "hello"})
	assert.NoError(t, err)
	assert.Equal(t, m.opts.Model, params.Model)
	assert.Len(t, params.Messages, 1)
	// No capability requested: the request carries no web search options.
	assert.Empty(t, params.WebSearchOptions.SearchContextSize)
}

func TestChatModel_BuildParams_WebSearch(t *testing.T) {
	m := newTestChatModel()

	params, err := m.buildParams(query.Request{
		Prompt:       "what is the oil price",
		Model:        "gpt-4.1",
		Capabilities: []query.Capability{query.CapabilityWebSearch},
	})
	assert.NoError(t, err)
	assert.Equal(t, "gpt-4.1", params.Model)
	assert.Equal(t, "medium", params.WebSearchOptions.SearchContextSize)
}

func TestChatModel_BuildParams_UnknownCapability(t *testing.T) {
	m := newTestChatModel()

	_, err := m.buildParams(query.Request{
		Prompt:       "hello",
		Capabilities: []query.Capability{"code_interpreter"},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported capability")
}

func TestConvertCompletion(t *testing.T) {
	resp := &openai.ChatCompletion{
		ID:    "chatcmpl-1",
		Model: "gpt-4.1",
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{
				Content: "Oil trades at $70.",
				Annotations: []openai.ChatCompletionMessageAnnotation{{
					Type: "url_citation",
					URLCitation: openai.ChatCompletionMessageAnnotationURLCitation{
						URL:   "https://example.com/oil",
						Title: "Oil prices",
					},
				}},
			},
			FinishReason: "stop",
		}},
		Usage: openai.CompletionUsage{
			PromptTokens:     12,
			CompletionTokens: 34,
			TotalTokens:      46,
		},
	}

	got := convertCompletion(resp)

	assert.Equal(t, "chatcmpl-1", got.ID)
	assert.Equal(t, "gpt-4.1", got.Model)
	assert.Len(t, got.Output, 1)

	msg, ok := got.Output[0].(query.MessageItem)
	assert.True(t, ok)
	assert.Equal(t, "Oil trades at $70.", msg.Text)
	assert.Equal(t, []query.Citation{{URL: "https://example.com/oil", Title: "Oil prices"}}, msg.Citations)

	assert.Equal(t, &query.Usage{InputTokens: 12, OutputTokens: 34, TotalTokens: 46}, got.Usage)
}

func TestChatModel_Info(t *testing.T) {
	m := newTestChatModel()

	info := m.Info()
	assert.Equal(t, "openai", info.Provider)
	assert.True(t, info.SupportsWebSearch)
}
