// Package storefront provides the storefront aggregation bounded context.
package storefront

import (
	"storefront_backend/internal/backend"
	cartclient "storefront_backend/internal/cart/client"
	catalogclient "storefront_backend/internal/catalog/client"
	apphttp "storefront_backend/internal/http"
	queryclient "storefront_backend/internal/query/client"
	"storefront_backend/internal/storefront/handler"
	"storefront_backend/internal/storefront/service"
	"storefront_backend/platform/config"
	"storefront_backend/platform/logger"
	"storefront_backend/platform/validator"
)

// Module is the storefront bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule wires the three backend adapters onto the shared caller and
// builds the aggregator service and its HTTP handler.
func NewModule(caller backend.Caller, cfg config.BackendsConfig, val *validator.Validator, log *logger.Logger) *Module {
	catalogAdapter := catalogclient.New(caller, cfg)
	cartAdapter := cartclient.New(caller, cfg)
	queryAdapter := queryclient.New(caller, cfg)

	svc := service.New(catalogAdapter, cartAdapter, queryAdapter, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "storefront"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts storefront routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/storefront"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
