// Package client provides the HTTP adapter for the natural-language query
// backend. The query backend fronts a model call, so its default timeout is
// far longer than the catalog and cart ones.
package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"storefront_backend/internal/backend"
	"storefront_backend/internal/query/transport"
	"storefront_backend/platform/config"
)

// Client is the query backend adapter.
type Client struct {
	caller  backend.Caller
	baseURL string
	timeout time.Duration
}

// New creates a query adapter bound to the configured base address.
func New(caller backend.Caller, cfg config.QueryConfig) *Client {
	timeout := cfg.GetQueryTimeout()
	if timeout <= 0 {
		timeout = config.DefaultQueryTimeout
	}
	return &Client{
		caller:  caller,
		baseURL: strings.TrimRight(cfg.GetQueryBaseURL(), "/"),
		timeout: timeout,
	}
}

// Ask sends the free-text question and decodes the answer. The result
// payload is transport.Answer.
func (c *Client) Ask(ctx context.Context, text string) backend.Outcome {
	var answer transport.Answer
	call := backend.Call{
		Backend: backend.Query,
		Method:  http.MethodPost,
		URL:     c.baseURL + "/ask",
		Body:    transport.AskRequest{Query: text},
		Timeout: c.timeout,
	}
	if f := c.caller.Do(ctx, call, &answer); f != nil {
		return backend.Fault(backend.Query, f)
	}

	if answer.Text == "" {
		return backend.Fail(backend.Query, backend.KindDecodeError, "empty answer")
	}

	return backend.OK(backend.Query, answer)
}
