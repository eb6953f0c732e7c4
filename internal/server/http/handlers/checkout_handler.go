package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	"github.com/tradewind/storefront/internal/server/http/dto"
	"github.com/tradewind/storefront/internal/server/http/middleware"
)

// CheckoutHandler drives the payment lifecycle endpoints.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Create handles POST /api/checkout/orders.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]model.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentUserID(c), items)
	if err != nil {
		middleware.RecordCheckoutOperation("create", false)
		switch {
		case errors.Is(err, domainErrors.ErrInvalidQuantity),
			errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrProviderUnavailable):
			c.Status(http.StatusBadGateway)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.RecordCheckoutOperation("create", true)
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Validate handles GET /api/checkout/orders/:orderID/validate.
func (h *CheckoutHandler) Validate(c *gin.Context) {
	provider, err := h.facade.ValidateOrder(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrNotApproved):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrProviderUnavailable):
			c.Status(http.StatusBadGateway)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ValidateOrderResponse{
		OrderID: provider.ExternalID,
		Status:  string(provider.Status),
	})
}

// Capture handles POST /api/checkout/orders/:orderID/capture.
func (h *CheckoutHandler) Capture(c *gin.Context) {
	order, err := h.facade.CaptureOrder(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		middleware.RecordCheckoutOperation("capture", false)
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrNotApproved):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrProviderUnavailable):
			c.Status(http.StatusBadGateway)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.RecordCheckoutOperation("capture", true)
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Refund handles POST /api/checkout/orders/:orderID/refund.
func (h *CheckoutHandler) Refund(c *gin.Context) {
	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.RefundOrder(c.Request.Context(), c.Param("orderID"), req.Amount, req.Reason)
	if err != nil {
		middleware.RecordCheckoutOperation("refund", false)
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrNotRefundable),
			errors.Is(err, domainErrors.ErrNoCaptureFound):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrProviderUnavailable):
			c.Status(http.StatusBadGateway)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.RecordCheckoutOperation("refund", true)
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Cancel handles POST /api/checkout/orders/:orderID/cancel.
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	order, err := h.facade.CancelPayment(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		middleware.RecordCheckoutOperation("cancel", false)
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrNotCancellable):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.RecordCheckoutOperation("cancel", true)
	c.JSON(http.StatusOK, toOrderResponse(order))
}
