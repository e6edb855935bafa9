// Package askweb provides a high-level façade over the query Invoker for the
// common case: ask a hosted model one question, optionally letting it search
// the web, and get the answer back. Most applications interact with this
// package by:
//  1. Creating an AskWeb via New() (optionally overriding the default client)
//  2. Calling Ask for the normalized response or AskText for display text
//
// The façade delegates the actual exchange to query.Invoker while keeping
// setup ergonomics concise. Defaults are safe for local use: the OpenAI chat
// adapter with its environment credential and a NoOp logger.
package askweb

import (
	"context"

	"github.com/askweb/askweb/logging"
	"github.com/askweb/askweb/provider/openai"
	"github.com/askweb/askweb/query"
	"github.com/askweb/askweb/render"
)

// Options configures the AskWeb instance.
type Options struct {
	// Client performs the remote call (defaults to the OpenAI chat adapter).
	Client query.Client

	// Capabilities are hosted tools enabled on every request. Defaults to
	// web search; set to an empty slice to disable.
	Capabilities []query.Capability

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// AskWeb is the high-level façade aggregating the invoker and its client.
type AskWeb struct {
	opts    Options
	invoker *query.Invoker
}

// New creates a new AskWeb instance with optional overrides.
func New(optFns ...func(o *Options)) *AskWeb {
	opts := Options{
		Capabilities: []query.Capability{query.CapabilityWebSearch},
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Client == nil {
		opts.Client = openai.NewChatModel()
	}

	invoker := query.NewInvoker(opts.Client, func(o *query.InvokerOptions) {
		o.Logger = opts.Logger
	})

	return &AskWeb{opts: opts, invoker: invoker}
}

// Ask issues one request for the prompt and returns the normalized response.
func (a *AskWeb) Ask(ctx context.Context, prompt string) (*query.Response, error) {
	return a.invoker.Invoke(ctx, query.Request{
		Prompt:       prompt,
		Capabilities: a.opts.Capabilities,
	})
}

// AskText is a convenience helper returning the rendered display text.
func (a *AskWeb) AskText(ctx context.Context, prompt string) (string, error) {
	resp, err := a.Ask(ctx, prompt)
	if err != nil {
		return "", err
	}
	return render.Text(resp)
}
