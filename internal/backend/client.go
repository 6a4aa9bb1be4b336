package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"storefront_backend/platform/logger"
)

// Call describes one outbound request to a backend.
type Call struct {
	Backend ID
	Method  string
	URL     string
	Query   url.Values
	// Body is JSON-encoded when non-nil.
	Body any
	// Timeout bounds the whole call, including reading the body.
	Timeout time.Duration
}

// Caller issues backend calls. The concrete Client talks HTTP; tests plug in
// fakes without any network.
type Caller interface {
	Do(ctx context.Context, call Call, out any) *Failure
}

// Client is the HTTP transport shared by all backend adapters. It enforces
// the per-call timeout strictly and maps every failure mode to a Failure
// value; it never returns a Go error and never retries.
type Client struct {
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates the shared backend HTTP client. Connection reuse comes
// from the default transport and has no bearing on call semantics.
func NewClient(log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		log:        log,
	}
}

// Do issues the call and decodes a 2xx JSON response into out (skipped when
// out is nil). A nil return means out is populated.
func (c *Client) Do(ctx context.Context, call Call, out any) *Failure {
	if call.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, call.Timeout)
		defer cancel()
	}

	reqURL := call.URL
	if len(call.Query) > 0 {
		reqURL += "?" + call.Query.Encode()
	}

	var body io.Reader
	if call.Body != nil {
		encoded, err := json.Marshal(call.Body)
		if err != nil {
			return &Failure{Kind: KindDecodeError, Detail: "encode request: " + err.Error()}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, reqURL, body)
	if err != nil {
		return &Failure{Kind: KindConnectionError, Detail: "create request: " + err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if call.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		f := classifyTransportError(err)
		c.logFailure(call.Backend, f)
		return f
	}
	defer resp.Body.Close()

	c.log.BackendCall(string(call.Backend), resp.StatusCode, float64(time.Since(start).Milliseconds()))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		f := &Failure{
			Kind:   KindBadStatus,
			Status: resp.StatusCode,
			Detail: fmt.Sprintf("status %d", resp.StatusCode),
		}
		c.logFailure(call.Backend, f)
		return f
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// The deadline can also fire mid-body; that is still a timeout.
		if isTimeout(err) {
			f := &Failure{Kind: KindTimeout, Detail: "reading response: " + err.Error()}
			c.logFailure(call.Backend, f)
			return f
		}
		f := &Failure{Kind: KindDecodeError, Detail: "decode response: " + err.Error()}
		c.logFailure(call.Backend, f)
		return f
	}

	return nil
}

func (c *Client) logFailure(id ID, f *Failure) {
	c.log.BackendDegraded(string(id), string(f.Kind), f.Detail)
}

func classifyTransportError(err error) *Failure {
	if isTimeout(err) {
		return &Failure{Kind: KindTimeout, Detail: err.Error()}
	}
	return &Failure{Kind: KindConnectionError, Detail: err.Error()}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

// Compile-time check that Client implements Caller
var _ Caller = (*Client)(nil)
