// Package service implements the storefront aggregator: per user action it
// fans out to the required backend adapters, waits for every call to reach
// an outcome, and composes the page view with failure isolation.
package service

import (
	"context"

	"storefront_backend/internal/backend"
	carttransport "storefront_backend/internal/cart/transport"
	catalogtransport "storefront_backend/internal/catalog/transport"
	querytransport "storefront_backend/internal/query/transport"
	"storefront_backend/internal/storefront/transport"
	"storefront_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// CatalogSearcher is the catalog adapter surface the aggregator needs.
type CatalogSearcher interface {
	Search(ctx context.Context, filter string) backend.Outcome
}

// CartProvider is the cart adapter surface the aggregator needs.
type CartProvider interface {
	Get(ctx context.Context) backend.Outcome
	Update(ctx context.Context, req carttransport.UpdateRequest) backend.Outcome
}

// QueryAsker is the query adapter surface the aggregator needs.
type QueryAsker interface {
	Ask(ctx context.Context, text string) backend.Outcome
}

// Service orchestrates the backend adapters for one user action at a time.
// It holds no mutable state; every action composes its own view.
type Service struct {
	catalog CatalogSearcher
	cart    CartProvider
	query   QueryAsker
	log     *logger.Logger
}

// New creates the aggregator service.
func New(catalog CatalogSearcher, cart CartProvider, query QueryAsker, log *logger.Logger) *Service {
	return &Service{
		catalog: catalog,
		cart:    cart,
		query:   query,
		log:     log,
	}
}

// ViewPage composes the storefront page: catalog and cart always, the query
// backend only when a question is present.
func (s *Service) ViewPage(ctx context.Context, req transport.PageRequest) transport.ComposedView {
	calls := []func(context.Context) backend.Outcome{
		func(ctx context.Context) backend.Outcome { return s.catalog.Search(ctx, req.Search) },
		func(ctx context.Context) backend.Outcome { return s.cart.Get(ctx) },
	}
	if req.Question != "" {
		calls = append(calls, func(ctx context.Context) backend.Outcome {
			return s.query.Ask(ctx, req.Question)
		})
	}

	outcomes := s.fanOut(ctx, calls)
	return compose(outcomes)
}

// UpdateCart applies the cart mutation and rebuilds the complete page view
// around it, so the user never gets back a bare cart delta. The mutation and
// the page fetches are independent calls and run concurrently.
func (s *Service) UpdateCart(ctx context.Context, req transport.CartUpdateRequest) transport.ComposedView {
	update := carttransport.UpdateRequest{
		Operation: carttransport.Operation(req.Operation),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}

	calls := []func(context.Context) backend.Outcome{
		func(ctx context.Context) backend.Outcome { return s.cart.Update(ctx, update) },
		func(ctx context.Context) backend.Outcome { return s.catalog.Search(ctx, req.Search) },
	}
	if req.Question != "" {
		calls = append(calls, func(ctx context.Context) backend.Outcome {
			return s.query.Ask(ctx, req.Question)
		})
	}

	outcomes := s.fanOut(ctx, calls)
	return compose(outcomes)
}

// fanOut runs every call concurrently and waits for all of them. Each call
// owns its own outcome slot, and the calls share no cancellation: one
// backend hitting its timeout never cuts the others short. Their own
// deadlines bound the wait.
func (s *Service) fanOut(ctx context.Context, calls []func(context.Context) backend.Outcome) []backend.Outcome {
	outcomes := make([]backend.Outcome, len(calls))

	var g errgroup.Group
	for i, call := range calls {
		i, call := i, call
		g.Go(func() error {
			outcomes[i] = call(ctx)
			return nil
		})
	}
	// The calls never return errors; failures are outcome values.
	_ = g.Wait()

	for _, o := range outcomes {
		if o.Failure != nil {
			s.log.WithContext(ctx).BackendDegraded(string(o.Backend), string(o.Failure.Kind), o.Failure.Detail)
		}
	}

	return outcomes
}

// compose builds the view from a full outcome set. It walks backends in
// their stable identity order, so the result is identical for any
// permutation of the outcomes slice.
func compose(outcomes []backend.Outcome) transport.ComposedView {
	byID := make(map[backend.ID]backend.Outcome, len(outcomes))
	for _, o := range outcomes {
		byID[o.Backend] = o
	}

	view := transport.ComposedView{
		Backends: make(map[string]string, len(outcomes)),
		Notices:  []string{},
	}

	for _, id := range backend.All {
		o, invoked := byID[id]
		if !invoked {
			continue
		}

		if o.Failure != nil {
			view.Backends[string(id)] = string(o.Failure.Kind)
			view.Notices = append(view.Notices, o.Notice())
			continue
		}

		view.Backends[string(id)] = transport.StatusOK
		switch id {
		case backend.Catalog:
			if products, ok := o.Payload.([]catalogtransport.Product); ok {
				view.Products = products
			}
		case backend.Cart:
			if contents, ok := o.Payload.(carttransport.Contents); ok {
				view.Cart = &contents
			}
		case backend.Query:
			if answer, ok := o.Payload.(querytransport.Answer); ok {
				view.Answer = &answer
			}
		}
	}

	return view
}
