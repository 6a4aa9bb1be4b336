package transport

// Operation is a cart mutation verb.
type Operation string

const (
	OperationAdd    Operation = "add"
	OperationRemove Operation = "remove"
)

// LineItem is one entry in the cart as served by the cart backend.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Contents is the full current cart after any read or mutation. The cart
// backend owns all cart state; this service never computes or caches totals.
type Contents struct {
	Items []LineItem `json:"items"`
}

// UpdateRequest is the mutation sent to the cart backend.
type UpdateRequest struct {
	Operation Operation `json:"op"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
}
