// Package backend defines the shared outcome model for outbound backend
// calls. Every call to one of the storefront's upstream services resolves to
// exactly one Outcome: either a decoded payload or a typed Failure. Failures
// are plain values, never errors crossing the client boundary, so callers
// compose partial results without any error-handling ceremony.
package backend

import "fmt"

// ID identifies one of the upstream backends.
type ID string

const (
	// Catalog is the product catalog backend.
	Catalog ID = "catalog"
	// Cart is the shopping cart backend.
	Cart ID = "cart"
	// Query is the natural-language query backend.
	Query ID = "query"
)

// All lists the backend identities in their stable composition order.
var All = []ID{Catalog, Cart, Query}

// DisplayName returns the user-facing name used in degradation notices.
func (id ID) DisplayName() string {
	switch id {
	case Catalog:
		return "The product catalog"
	case Cart:
		return "The shopping cart"
	case Query:
		return "The search assistant"
	default:
		return string(id)
	}
}

// FailureKind categorizes why a backend call did not produce a payload.
type FailureKind string

const (
	// KindTimeout means the backend did not answer within the call's deadline.
	KindTimeout FailureKind = "timeout"
	// KindConnectionError means the backend could not be reached at all.
	KindConnectionError FailureKind = "connection_error"
	// KindBadStatus means the backend answered with a non-2xx status.
	KindBadStatus FailureKind = "bad_status"
	// KindDecodeError means the response body did not match the expected shape.
	KindDecodeError FailureKind = "decode_error"
)

// Failure describes one failed backend call.
type Failure struct {
	Kind   FailureKind
	Detail string
	// Status is the HTTP status code, set for KindBadStatus only.
	Status int
}

// String renders the failure for logs.
func (f *Failure) String() string {
	if f.Kind == KindBadStatus {
		return fmt.Sprintf("%s: status %d", f.Kind, f.Status)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

// Outcome is the result of exactly one backend call. Exactly one of Payload
// and Failure is set; use the constructors to preserve that invariant.
type Outcome struct {
	Backend ID
	// Payload is the adapter's decoded domain value, nil when Failure is set.
	Payload any
	// Failure is nil on success.
	Failure *Failure
}

// OK builds a successful outcome carrying the decoded payload.
func OK(id ID, payload any) Outcome {
	return Outcome{Backend: id, Payload: payload}
}

// Fail builds a failure outcome of the given kind.
func Fail(id ID, kind FailureKind, detail string) Outcome {
	return Outcome{Backend: id, Failure: &Failure{Kind: kind, Detail: detail}}
}

// Fault builds a failure outcome from an already-constructed Failure.
func Fault(id ID, f *Failure) Outcome {
	return Outcome{Backend: id, Failure: f}
}

// Succeeded reports whether the call produced a payload.
func (o Outcome) Succeeded() bool {
	return o.Failure == nil
}

// Notice returns the user-facing degradation message for a failed outcome,
// or the empty string for a successful one. Messages follow a fixed per-kind
// template keyed by the backend's display name.
func (o Outcome) Notice() string {
	if o.Failure == nil {
		return ""
	}
	switch o.Failure.Kind {
	case KindTimeout:
		return o.Backend.DisplayName() + " is slow to respond"
	case KindDecodeError:
		return o.Backend.DisplayName() + " returned an unexpected response"
	default:
		return o.Backend.DisplayName() + " is temporarily unavailable"
	}
}
