package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront_backend/internal/backend"
	carttransport "storefront_backend/internal/cart/transport"
	catalogtransport "storefront_backend/internal/catalog/transport"
	"storefront_backend/internal/storefront/service"
	"storefront_backend/internal/storefront/transport"
	"storefront_backend/platform/logger"
	"storefront_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type stubCatalog struct{ outcome backend.Outcome }

func (s stubCatalog) Search(context.Context, string) backend.Outcome { return s.outcome }

type stubCart struct{ outcome backend.Outcome }

func (s stubCart) Get(context.Context) backend.Outcome { return s.outcome }
func (s stubCart) Update(context.Context, carttransport.UpdateRequest) backend.Outcome {
	return s.outcome
}

type stubQuery struct{ outcome backend.Outcome }

func (s stubQuery) Ask(context.Context, string) backend.Outcome { return s.outcome }

func newTestRouter(catalog stubCatalog, cart stubCart, query stubQuery) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.New(catalog, cart, query, logger.New("development"))
	h := New(svc, validator.New())

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1/storefront"))
	return engine
}

func TestViewPageReturnsComposedView(t *testing.T) {
	router := newTestRouter(
		stubCatalog{outcome: backend.OK(backend.Catalog, []catalogtransport.Product{{ID: "p1", Name: "Ladder", Price: 89.95}})},
		stubCart{outcome: backend.OK(backend.Cart, carttransport.Contents{Items: []carttransport.LineItem{}})},
		stubQuery{},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/storefront?search=ladder", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var view transport.ComposedView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(view.Products) != 1 || view.Products[0].ID != "p1" {
		t.Fatalf("unexpected products %+v", view.Products)
	}
	if view.Backends["catalog"] != transport.StatusOK {
		t.Fatalf("unexpected backend statuses %v", view.Backends)
	}
}

// Backend failures degrade the view; they never become HTTP errors.
func TestViewPageDegradationStillAnswers200(t *testing.T) {
	router := newTestRouter(
		stubCatalog{outcome: backend.Fail(backend.Catalog, backend.KindConnectionError, "connection refused")},
		stubCart{outcome: backend.Fail(backend.Cart, backend.KindTimeout, "deadline exceeded")},
		stubQuery{},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/storefront", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 despite backend failures, got %d", w.Code)
	}

	var view transport.ComposedView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(view.Notices) != 2 {
		t.Fatalf("expected 2 notices, got %v", view.Notices)
	}
}

func TestUpdateCartValidatesRequest(t *testing.T) {
	router := newTestRouter(stubCatalog{}, stubCart{}, stubQuery{})

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown operation", body: `{"op":"clear","productId":"p1","quantity":1}`},
		{name: "missing product", body: `{"op":"add","quantity":1}`},
		{name: "zero quantity", body: `{"op":"add","productId":"p1","quantity":0}`},
		{name: "malformed json", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/storefront/cart", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestUpdateCartReturnsFullPageView(t *testing.T) {
	router := newTestRouter(
		stubCatalog{outcome: backend.OK(backend.Catalog, []catalogtransport.Product{{ID: "p1", Name: "Ladder", Price: 89.95}})},
		stubCart{outcome: backend.OK(backend.Cart, carttransport.Contents{Items: []carttransport.LineItem{
			{ProductID: "p1", Name: "Ladder", Quantity: 1, UnitPrice: 89.95},
		}})},
		stubQuery{},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/storefront/cart",
		strings.NewReader(`{"op":"add","productId":"p1","quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var view transport.ComposedView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.Cart == nil || len(view.Cart.Items) != 1 {
		t.Fatalf("expected full cart in page view, got %+v", view.Cart)
	}
	if len(view.Products) != 1 {
		t.Fatalf("expected catalog re-fetch in page view, got %+v", view.Products)
	}
}
