// Package openai provides query.Client implementations backed by the OpenAI
// API: ChatModel over Chat Completions (web search via request options) and
// ResponsesModel over the Responses API (web search as a hosted tool). Both
// adapt the SDK payloads into the normalized query structures.
package openai

import (
	"context"
	"fmt"

	"github.com/askweb/askweb/query"
	"github.com/openai/openai-go"
)

// ChatOptions configure the Chat Completions adapter.
type ChatOptions struct {
	Model             string
	SearchContextSize string // "low", "medium" or "high"
}

// ChatModel wraps the OpenAI Chat Completions API behind the query.Client interface.
type ChatModel struct {
	client *openai.Client
	opts   ChatOptions
}

// NewChatModel creates a new chat adapter using the official client. The
// client reads its credential from the process environment (OPENAI_API_KEY).
func NewChatModel(optFns ...func(o *ChatOptions)) *ChatModel {
	client := openai.NewClient()
	return NewChatModelFromClient(&client, optFns...)
}

// NewChatModelFromClient creates a new chat adapter from an existing client.
func NewChatModelFromClient(client *openai.Client, optFns ...func(o *ChatOptions)) *ChatModel {
	opts := ChatOptions{
		Model:             openai.ChatModelGPT4_1,
		SearchContextSize: "medium",
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ChatModel{client: client, opts: opts}
}

// Complete implements query.Client with a single blocking completion call.
func (m *ChatModel) Complete(ctx context.Context, req query.Request) (*query.Response, error) {
	params, err := m.buildParams(req)
	if err != nil {
		return nil, err
	}

	resp, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned")
	}

	return convertCompletion(resp), nil
}

// buildParams assembles the request parameters. Capabilities translate to the
// web_search_options request field; unknown tags fail before any network call.
func (m *ChatModel) buildParams(req query.Request) (openai.ChatCompletionNewParams, error) {
	model := req.Model
	if model == "" {
		model = m.opts.Model
	}

	params := openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
	}

	for _, c := range req.Capabilities {
		switch c {
		case query.CapabilityWebSearch:
			params.WebSearchOptions = openai.ChatCompletionNewParamsWebSearchOptions{
				SearchContextSize: m.opts.SearchContextSize,
			}
		default:
			return openai.ChatCompletionNewParams{}, fmt.Errorf("openai chat: unsupported capability %q", c)
		}
	}

	return params, nil
}

// convertCompletion maps the first choice into normalized query items.
func convertCompletion(resp *openai.ChatCompletion) *query.Response {
	msg := resp.Choices[0].Message

	item := query.MessageItem{Text: msg.Content}
	for _, a := range msg.Annotations {
		if a.Type != "url_citation" {
			continue
		}
		item.Citations = append(item.Citations, query.Citation{
			URL:   a.URLCitation.URL,
			Title: a.URLCitation.Title,
		})
	}

	out := &query.Response{
		ID:     resp.ID,
		Model:  resp.Model,
		Output: []query.Item{item},
	}
	if resp.Usage.TotalTokens != 0 {
		out.Usage = &query.Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out
}

// Info returns metadata describing this adapter.
func (m *ChatModel) Info() query.Info {
	return query.Info{
		Model:             m.opts.Model,
		Provider:          "openai",
		SupportsWebSearch: true,
	}
}
