package transport

import (
	carttransport "storefront_backend/internal/cart/transport"
	catalogtransport "storefront_backend/internal/catalog/transport"
	querytransport "storefront_backend/internal/query/transport"
)

// PageRequest is the "view page" action.
type PageRequest struct {
	Search   string `form:"search" validate:"max=200"`
	Question string `form:"q" validate:"max=500"`
}

// CartUpdateRequest is the "add/remove cart item" action. It carries the
// page parameters too because the response is always a complete page view,
// never just a cart delta.
type CartUpdateRequest struct {
	Operation string `json:"op" validate:"required,oneof=add remove"`
	ProductID string `json:"productId" validate:"required,max=100"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Search    string `json:"search" validate:"max=200"`
	Question  string `json:"q" validate:"max=500"`
}

// StatusOK marks a backend entry whose call succeeded; failed entries carry
// the failure kind instead.
const StatusOK = "ok"

// ComposedView is the partial-failure-tolerant result of one user action and
// the only contract this core exposes to the presentation layer. Backends
// holds exactly one entry per invoked backend, keyed by backend identity.
// Notices lists one user-facing degradation message per failed backend, in
// stable backend order. The view itself is never a failure: at worst every
// payload is absent and every backend has a notice.
type ComposedView struct {
	Products []catalogtransport.Product `json:"products,omitempty"`
	Cart     *carttransport.Contents    `json:"cart,omitempty"`
	Answer   *querytransport.Answer     `json:"answer,omitempty"`
	Backends map[string]string          `json:"backends"`
	Notices  []string                   `json:"notices"`
}
