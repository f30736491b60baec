package backend

import (
	"context"
	"net/http"

	"github.com/sandevgo/contactmind/internal/core"
)

// ParseText asks the remote AI parser to extract contacts from free text.
// The response shape is trusted verbatim when non-empty.
func (c *Client) ParseText(ctx context.Context, text string) (*core.ParseResult, error) {
	var result core.ParseResult
	err := c.doJSON(ctx, http.MethodPost, "/api/contacts/parse-ai",
		map[string]string{"text": text}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DetectIntent asks the remote classifier whether the message is a query.
func (c *Client) DetectIntent(ctx context.Context, text string) (core.Intent, error) {
	var resp struct {
		Intent string `json:"intent"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/api/detect-intent",
		map[string]string{"text": text}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Intent == string(core.IntentQuery) {
		return core.IntentQuery, nil
	}
	return core.IntentAdd, nil
}

// SmartSearch sends the query plus the roster snapshot and gets back a
// pre-formatted natural-language answer.
func (c *Client) SmartSearch(ctx context.Context, query string, roster []*core.Contact) (string, error) {
	var resp struct {
		Response string `json:"response"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/api/contacts/search-ai",
		map[string]any{"query": query, "contacts": roster}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}
