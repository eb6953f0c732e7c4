package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	"github.com/tradewind/storefront/internal/server/http/dto"
)

// OrderHandler manages order history and fulfilment endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i]))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:orderID.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), CurrentUserID(c), c.Param("orderID"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrAccessDenied):
			c.Status(http.StatusForbidden)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Cancel handles POST /api/orders/:orderID/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	order, err := h.facade.CancelOrder(c.Request.Context(), CurrentUserID(c), c.Param("orderID"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrAccessDenied):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrNotCancellable):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateFulfilment handles PATCH /api/admin/orders/:orderID/fulfilment.
func (h *OrderHandler) UpdateFulfilment(c *gin.Context) {
	var req dto.FulfilmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateFulfilment(c.Request.Context(), c.Param("orderID"), model.OrderStatus(req.Status), req.TrackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Stats handles GET /api/admin/orders/stats.
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.facade.OrderStats(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderStatResponse, 0, len(stats))
	for _, s := range stats {
		response = append(response, dto.OrderStatResponse{
			Status: string(s.Status),
			Count:  s.Count,
			Total:  s.TotalAmount,
		})
	}

	c.JSON(http.StatusOK, response)
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.LineItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.LineItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	var refunds []dto.RefundResponse
	for _, r := range order.Refunds {
		refunds = append(refunds, dto.RefundResponse{
			RefundID:  r.RefundID,
			Amount:    r.Amount,
			Reason:    r.Reason,
			Status:    r.Status,
			CreatedAt: r.CreatedAt,
		})
	}

	return dto.OrderResponse{
		OrderID:        order.ExternalID,
		Status:         string(order.Status),
		TotalAmount:    order.TotalAmount,
		Items:          items,
		Refunds:        refunds,
		TrackingNumber: order.TrackingNumber,
		PaymentDetails: order.PaymentDetails,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}
