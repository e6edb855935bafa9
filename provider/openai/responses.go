package openai

import (
	"context"
	"fmt"

	"github.com/askweb/askweb/query"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// ResponsesOptions configure the Responses API adapter.
type ResponsesOptions struct {
	Model string
}

// ResponsesModel wraps the OpenAI Responses API behind the query.Client
// interface. Unlike ChatModel, web search is attached as a hosted tool and the
// response surfaces the search calls as distinct output items.
type ResponsesModel struct {
	client *openai.Client
	opts   ResponsesOptions
}

// NewResponsesModel creates a new Responses API adapter using the official
// client. The client reads its credential from the process environment.
func NewResponsesModel(optFns ...func(o *ResponsesOptions)) *ResponsesModel {
	client := openai.NewClient()
	return NewResponsesModelFromClient(&client, optFns...)
}

// NewResponsesModelFromClient creates a new Responses API adapter from an existing client.
func NewResponsesModelFromClient(client *openai.Client, optFns ...func(o *ResponsesOptions)) *ResponsesModel {
	opts := ResponsesOptions{
		Model: openai.ChatModelGPT4_1Mini,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ResponsesModel{client: client, opts: opts}
}

// Complete implements query.Client with a single blocking responses call.
func (m *ResponsesModel) Complete(ctx context.Context, req query.Request) (*query.Response, error) {
	params, err := m.buildParams(req)
	if err != nil {
		return nil, err
	}

	resp, err := m.client.Responses.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}

	return convertResponse(resp), nil
}

// buildParams assembles the request parameters. Capabilities translate to
// hosted tool entries; unknown tags fail before any network call.
func (m *ResponsesModel) buildParams(req query.Request) (responses.ResponseNewParams, error) {
	model := req.Model
	if model == "" {
		model = m.opts.Model
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(model),
		Input: responses.ResponseNewParamsInputUnion{OfString: openai.String(req.Prompt)},
	}

	for _, c := range req.Capabilities {
		switch c {
		case query.CapabilityWebSearch:
			params.Tools = append(params.Tools, responses.ToolUnionParam{
				OfWebSearchPreview: &responses.WebSearchToolParam{
					Type: responses.WebSearchToolTypeWebSearchPreview,
				},
			})
		default:
			return responses.ResponseNewParams{}, fmt.Errorf("openai responses: unsupported capability %q", c)
		}
	}

	return params, nil
}

// convertResponse maps the ordered output items into normalized query items.
// Union items are read through their flattened fields; item types this
// library does not model are skipped.
func convertResponse(resp *responses.Response) *query.Response {
	out := &query.Response{
		ID:    resp.ID,
		Model: string(resp.Model),
	}

	for _, item := range resp.Output {
		switch item.Type {
		case "message":
			msg := query.MessageItem{ID: item.ID}
			for _, c := range item.Content {
				if c.Type != "output_text" {
					continue
				}
				msg.Text += c.Text
				for _, a := range c.Annotations {
					if a.Type != "url_citation" {
						continue
					}
					msg.Citations = append(msg.Citations, query.Citation{
						URL:   a.URL,
						Title: a.Title,
					})
				}
			}
			out.Output = append(out.Output, msg)
		case "web_search_call":
			out.Output = append(out.Output, query.SearchCallItem{
				ID:     item.ID,
				Status: string(item.Status),
				Query:  item.Action.Query,
			})
		}
	}

	if resp.Usage.TotalTokens != 0 {
		out.Usage = &query.Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out
}

// Info returns metadata describing this adapter.
func (m *ResponsesModel) Info() query.Info {
	return query.Info{
		Model:             m.opts.Model,
		Provider:          "openai",
		SupportsWebSearch: true,
	}
}
