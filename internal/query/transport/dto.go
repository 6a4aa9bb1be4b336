package transport

// AskRequest is the free-text question sent to the query backend.
type AskRequest struct {
	Query string `json:"query"`
}

// Answer is the single text answer served by the query backend.
type Answer struct {
	Text string `json:"answer"`
}
