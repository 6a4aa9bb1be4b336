// Package client provides the HTTP adapter for the product catalog backend.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront_backend/internal/backend"
	"storefront_backend/internal/catalog/transport"
	"storefront_backend/platform/config"
)

// Client is the catalog backend adapter.
type Client struct {
	caller  backend.Caller
	baseURL string
	timeout time.Duration
}

// New creates a catalog adapter bound to the configured base address.
func New(caller backend.Caller, cfg config.CatalogConfig) *Client {
	timeout := cfg.GetCatalogTimeout()
	if timeout <= 0 {
		timeout = config.DefaultCatalogTimeout
	}
	return &Client{
		caller:  caller,
		baseURL: strings.TrimRight(cfg.GetCatalogBaseURL(), "/"),
		timeout: timeout,
	}
}

// Search fetches the product list, optionally narrowed by a search filter.
// The result payload is []transport.Product.
func (c *Client) Search(ctx context.Context, filter string) backend.Outcome {
	query := url.Values{}
	if filter != "" {
		query.Set("search", filter)
	}

	var products []transport.Product
	call := backend.Call{
		Backend: backend.Catalog,
		Method:  http.MethodGet,
		URL:     c.baseURL + "/products",
		Query:   query,
		Timeout: c.timeout,
	}
	if f := c.caller.Do(ctx, call, &products); f != nil {
		return backend.Fault(backend.Catalog, f)
	}

	for i, p := range products {
		if p.ID == "" || p.Name == "" {
			return backend.Fail(backend.Catalog, backend.KindDecodeError,
				fmt.Sprintf("product %d is missing id or name", i))
		}
	}

	return backend.OK(backend.Catalog, products)
}
