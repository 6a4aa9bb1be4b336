// Package client provides the HTTP adapter for the shopping cart backend.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront_backend/internal/backend"
	"storefront_backend/internal/cart/transport"
	"storefront_backend/platform/config"
)

// Client is the cart backend adapter.
type Client struct {
	caller  backend.Caller
	baseURL string
	timeout time.Duration
}

// New creates a cart adapter bound to the configured base address.
func New(caller backend.Caller, cfg config.CartConfig) *Client {
	timeout := cfg.GetCartTimeout()
	if timeout <= 0 {
		timeout = config.DefaultCartTimeout
	}
	return &Client{
		caller:  caller,
		baseURL: strings.TrimRight(cfg.GetCartBaseURL(), "/"),
		timeout: timeout,
	}
}

// Get fetches the current cart contents. The result payload is
// transport.Contents.
func (c *Client) Get(ctx context.Context) backend.Outcome {
	call := backend.Call{
		Backend: backend.Cart,
		Method:  http.MethodGet,
		URL:     c.baseURL + "/cart",
		Timeout: c.timeout,
	}
	return c.fetch(ctx, call)
}

// Update applies an add/remove mutation and returns the full cart after it.
// The result payload is transport.Contents.
func (c *Client) Update(ctx context.Context, req transport.UpdateRequest) backend.Outcome {
	call := backend.Call{
		Backend: backend.Cart,
		Method:  http.MethodPost,
		URL:     c.baseURL + "/cart",
		Body:    req,
		Timeout: c.timeout,
	}
	return c.fetch(ctx, call)
}

func (c *Client) fetch(ctx context.Context, call backend.Call) backend.Outcome {
	var contents transport.Contents
	if f := c.caller.Do(ctx, call, &contents); f != nil {
		return backend.Fault(backend.Cart, f)
	}

	for i, item := range contents.Items {
		if item.ProductID == "" {
			return backend.Fail(backend.Cart, backend.KindDecodeError,
				fmt.Sprintf("line item %d is missing productId", i))
		}
		if item.Quantity < 0 {
			return backend.Fail(backend.Cart, backend.KindDecodeError,
				fmt.Sprintf("line item %d has negative quantity", i))
		}
	}

	return backend.OK(backend.Cart, contents)
}
