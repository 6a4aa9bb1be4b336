package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"storefront_backend/platform/logger"
)

func newTestClient() *Client {
	return NewClient(logger.New("development"))
}

func TestDoDecodesSuccessfulResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") != "ladder" {
			t.Errorf("expected search query param, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"ladder","price":49.5}`))
	}))
	defer srv.Close()

	var out struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	f := newTestClient().Do(context.Background(), Call{
		Backend: Catalog,
		Method:  http.MethodGet,
		URL:     srv.URL,
		Query:   url.Values{"search": {"ladder"}},
		Timeout: time.Second,
	}, &out)

	if f != nil {
		t.Fatalf("expected success, got failure %v", f)
	}
	if out.Name != "ladder" || out.Price != 49.5 {
		t.Fatalf("unexpected decoded payload %+v", out)
	}
}

func TestDoSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	f := newTestClient().Do(context.Background(), Call{
		Backend: Cart,
		Method:  http.MethodPost,
		URL:     srv.URL,
		Body:    map[string]string{"op": "add"},
		Timeout: time.Second,
	}, nil)

	if f != nil {
		t.Fatalf("expected success, got failure %v", f)
	}
}

func TestDoMapsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := newTestClient().Do(context.Background(), Call{
		Backend: Catalog,
		Method:  http.MethodGet,
		URL:     srv.URL,
		Timeout: time.Second,
	}, nil)

	if f == nil {
		t.Fatal("expected failure for 502 response")
	}
	if f.Kind != KindBadStatus {
		t.Fatalf("expected bad_status, got %s", f.Kind)
	}
	if f.Status != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", f.Status)
	}
}

func TestDoMapsTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Hold the response past the caller's deadline; the backend "would
		// have" answered successfully afterwards.
		<-release
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	var out map[string]bool
	f := newTestClient().Do(context.Background(), Call{
		Backend: Query,
		Method:  http.MethodGet,
		URL:     srv.URL,
		Timeout: 50 * time.Millisecond,
	}, &out)

	if f == nil {
		t.Fatal("expected timeout failure")
	}
	if f.Kind != KindTimeout {
		t.Fatalf("expected timeout, got %s (%s)", f.Kind, f.Detail)
	}
}

func TestDoMapsConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	f := newTestClient().Do(context.Background(), Call{
		Backend: Cart,
		Method:  http.MethodGet,
		URL:     srv.URL,
		Timeout: time.Second,
	}, nil)

	if f == nil {
		t.Fatal("expected connection failure")
	}
	if f.Kind != KindConnectionError {
		t.Fatalf("expected connection_error, got %s (%s)", f.Kind, f.Detail)
	}
}

func TestDoMapsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	var out map[string]any
	f := newTestClient().Do(context.Background(), Call{
		Backend: Catalog,
		Method:  http.MethodGet,
		URL:     srv.URL,
		Timeout: time.Second,
	}, &out)

	if f == nil {
		t.Fatal("expected decode failure")
	}
	if f.Kind != KindDecodeError {
		t.Fatalf("expected decode_error, got %s (%s)", f.Kind, f.Detail)
	}
}
