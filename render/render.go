// Package render turns normalized query responses into display text: plain
// text when the output is a single message, indented structured output for
// anything richer. Rendering is lossless with respect to item order and fields.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/askweb/askweb/query"
)

// Text renders a response for display. A response whose output is exactly one
// message renders as its plain text; everything else renders as an indented
// structured listing of the output items in order.
func Text(resp *query.Response) (string, error) {
	if msg, ok := simpleMessage(resp); ok {
		return msg.Text, nil
	}

	data, err := json.MarshalIndent(resp.Output, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return string(data), nil
}

// Write renders a response to w, followed by a trailing newline.
func Write(w io.Writer, resp *query.Response) error {
	text, err := Text(resp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, text)
	return err
}

// simpleMessage reports whether the response is a single plain message.
func simpleMessage(resp *query.Response) (query.MessageItem, bool) {
	if len(resp.Output) != 1 {
		return query.MessageItem{}, false
	}
	msg, ok := resp.Output[0].(query.MessageItem)
	if !ok {
		return query.MessageItem{}, false
	}
	return msg, true
}
