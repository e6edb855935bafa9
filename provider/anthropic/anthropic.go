// Package anthropic provides a query.Client backed by the Anthropic Claude
// Messages API, with web search attached as a server tool.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/askweb/askweb/query"
)

// Options configure the Anthropic adapter (model id, max tokens, search
// budget, API key).
type Options struct {
	Model         anthropic.Model
	MaxTokens     int64
	MaxSearchUses int64
	APIKey        string
}

// Model wraps the Anthropic Messages API behind the query.Client interface.
type Model struct {
	client *anthropic.Client
	opts   Options
}

// NewModel creates a new Anthropic adapter using the official client. Without
// an explicit APIKey the client reads ANTHROPIC_API_KEY from the environment.
func NewModel(optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:         anthropic.ModelClaude3_5Sonnet20241022,
		MaxTokens:     4096,
		MaxSearchUses: 5,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Model{
		client: &client,
		opts:   opts,
	}
}

// NewModelFromClient creates a new Anthropic adapter from an existing client.
func NewModelFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:         anthropic.ModelClaude3_5Sonnet20241022,
		MaxTokens:     4096,
		MaxSearchUses: 5,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Model{
		client: client,
		opts:   opts,
	}
}

// Complete implements query.Client with a single blocking messages call.
func (m *Model) Complete(ctx context.Context, req query.Request) (*query.Response, error) {
	params, err := m.buildParams(req)
	if err != nil {
		return nil, err
	}

	resp, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	return convertMessage(resp), nil
}

// buildParams assembles the message request. Capabilities translate to server
// tool entries; unknown tags fail before any network call.
func (m *Model) buildParams(req query.Request) (anthropic.MessageNewParams, error) {
	model := m.opts.Model
	if req.Model != "" {
		model = anthropic.Model(req.Model)
	}

	params := anthropic.MessageNewParams{
		Model:     model,
		MaxTokens: m.opts.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}

	for _, c := range req.Capabilities {
		switch c {
		case query.CapabilityWebSearch:
			params.Tools = append(params.Tools, anthropic.ToolUnionParam{
				OfWebSearchTool20250305: &anthropic.WebSearchTool20250305Param{
					MaxUses: anthropic.Int(m.opts.MaxSearchUses),
				},
			})
		default:
			return anthropic.MessageNewParams{}, fmt.Errorf("anthropic: unsupported capability %q", c)
		}
	}

	return params, nil
}

// convertMessage maps response content blocks into normalized query items.
// Text and server tool use blocks are mapped; block types this library does
// not model are skipped.
func convertMessage(resp *anthropic.Message) *query.Response {
	out := &query.Response{
		ID:    resp.ID,
		Model: string(resp.Model),
	}

	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			if block.Text == "" {
				continue
			}
			item := query.MessageItem{Text: block.Text}
			for _, c := range block.Citations {
				if c.URL == "" {
					continue
				}
				item.Citations = append(item.Citations, query.Citation{
					URL:   c.URL,
					Title: c.Title,
				})
			}
			out.Output = append(out.Output, item)
		case "server_tool_use":
			out.Output = append(out.Output, query.SearchCallItem{
				ID:    block.ID,
				Query: searchQuery(block.Input),
			})
		}
	}

	if resp.Usage.InputTokens != 0 || resp.Usage.OutputTokens != 0 {
		out.Usage = &query.Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.InputTokens + resp.Usage.OutputTokens,
		}
	}
	return out
}

// searchQuery extracts the query argument from a server tool use input.
func searchQuery(input any) string {
	if input == nil {
		return ""
	}
	raw, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return ""
	}
	return args.Query
}

// Info returns metadata describing this adapter.
func (m *Model) Info() query.Info {
	return query.Info{
		Model:             string(m.opts.Model),
		Provider:          "anthropic",
		SupportsWebSearch: true,
	}
}
