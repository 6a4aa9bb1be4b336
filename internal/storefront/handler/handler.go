package handler

import (
	"net/http"

	"storefront_backend/internal/storefront/service"
	"storefront_backend/internal/storefront/transport"
	"storefront_backend/platform/httpkit"
	"storefront_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler is the presentation boundary for the storefront aggregator. A user
// action always answers 200 with a ComposedView; backend failures surface as
// notices inside the view, never as HTTP errors. Only malformed requests
// get a 400.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ViewPage)
	rg.POST("/cart", h.UpdateCart)
}

// ViewPage handles GET /storefront?search=&q=.
func (h *Handler) ViewPage(c *gin.Context) {
	var req transport.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	view := h.svc.ViewPage(c.Request.Context(), req)
	httpkit.OK(c, view)
}

// UpdateCart handles POST /storefront/cart.
func (h *Handler) UpdateCart(c *gin.Context) {
	var req transport.CartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	view := h.svc.UpdateCart(c.Request.Context(), req)
	httpkit.OK(c, view)
}
