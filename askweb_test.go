package askweb

import (
	"context"
	"errors"
	"testing"

	"github.com/askweb/askweb/query"
	"github.com/stretchr/testify/assert"
)

func TestAskWeb_Ask(t *testing.T) {
	client := query.NewMockClient("test-model", "mock")
	canned := &query.Response{Output: []query.Item{
		query.SearchCallItem{ID: "ws-1", Status: "completed", Query: "news"},
		query.MessageItem{Text: "Good news everyone."},
	}}
	client.AddResponse("any news?", canned)

	ask := New(func(o *Options) { o.Client = client })

	resp, err := ask.Ask(context.Background(), "any news?")
	assert.NoError(t, err)
	assert.Same(t, canned, resp)
}

func TestAskWeb_AskText(t *testing.T) {
	client := query.NewMockClient("test-model", "mock")
	client.AddResponse("hello", &query.Response{
		Output: []query.Item{query.MessageItem{Text: "hi there"}},
	})

	ask := New(func(o *Options) { o.Client = client })

	text, err := ask.AskText(context.Background(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, "hi there", text)
}

func TestAskWeb_DefaultCapabilities(t *testing.T) {
	ask := New(func(o *Options) { o.Client = query.NewMockClient("test-model", "mock") })
	assert.Equal(t, []query.Capability{query.CapabilityWebSearch}, ask.opts.Capabilities)

	noTools := New(func(o *Options) {
		o.Client = query.NewMockClient("test-model", "mock")
		o.Capabilities = []query.Capability{}
	})
	assert.Empty(t, noTools.opts.Capabilities)
}

func TestAskWeb_ErrorPassthrough(t *testing.T) {
	client := query.NewMockClient("test-model", "mock")
	boom := errors.New("quota exceeded")
	client.FailWith(boom)

	ask := New(func(o *Options) { o.Client = client })

	_, err := ask.Ask(context.Background(), "anything")
	assert.Same(t, boom, err)
}
