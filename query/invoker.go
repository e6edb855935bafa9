package query

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/askweb/askweb/logging"
	"github.com/google/uuid"
)

// ErrEmptyPrompt is returned when a request carries no prompt text.
var ErrEmptyPrompt = errors.New("query: prompt must not be empty")

// InvokerOptions configure an Invoker.
type InvokerOptions struct {
	// Logger receives per-invocation records (defaults to NoOp if nil).
	Logger logging.Logger
}

// Invoker issues single-shot requests against an injected Client. It holds no
// per-call state and is safe for concurrent use. Beyond the local prompt
// check it performs no validation, no retries and no error translation: the
// client's response and error are both handed back unmodified.
type Invoker struct {
	client Client
	logger logging.Logger
}

// NewInvoker creates an Invoker over the given client with optional overrides.
func NewInvoker(client Client, optFns ...func(o *InvokerOptions)) *Invoker {
	opts := InvokerOptions{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Invoker{client: client, logger: opts.Logger}
}

// Invoke sends one blocking request and returns the client's response as-is.
// The remote call's error, if any, propagates unchanged to the caller.
func (i *Invoker) Invoke(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	requestID := uuid.NewString()
	info := i.client.Info()

	model := req.Model
	if model == "" {
		model = info.Model
	}

	i.logger.Debug("model call started",
		"request_id", requestID,
		"provider", info.Provider,
		"model", model,
		"capabilities", len(req.Capabilities),
	)

	start := time.Now()
	resp, err := i.client.Complete(ctx, req)
	dur := time.Since(start)

	if err != nil {
		i.logger.Error("model call failed",
			"request_id", requestID,
			"provider", info.Provider,
			"model", model,
			"duration", dur,
			"error", err.Error(),
		)
		return resp, err
	}

	i.logger.Info("model call completed",
		"request_id", requestID,
		"provider", info.Provider,
		"model", model,
		"duration", dur,
		"items", len(resp.Output),
	)

	return resp, nil
}
