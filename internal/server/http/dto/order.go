package dto

import (
	"encoding/json"
	"time"
)

// LineItemRequest is one requested order line.
type LineItemRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// CreateOrderRequest describes checkout initiation payload.
type CreateOrderRequest struct {
	Items []LineItemRequest `json:"items"`
}

// RefundRequest describes a refund payload.
type RefundRequest struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

// FulfilmentRequest describes a fulfilment status change.
type FulfilmentRequest struct {
	Status         string `json:"status"`
	TrackingNumber string `json:"tracking_number"`
}

// LineItemResponse is one stored order line.
type LineItemResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// RefundResponse is one recorded refund.
type RefundResponse struct {
	RefundID  string    `json:"refund_id"`
	Amount    float64   `json:"amount"`
	Reason    string    `json:"reason,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderResponse describes a stored order.
type OrderResponse struct {
	OrderID        string             `json:"order_id"`
	Status         string             `json:"status"`
	TotalAmount    float64            `json:"total_amount"`
	Items          []LineItemResponse `json:"items"`
	Refunds        []RefundResponse   `json:"refunds,omitempty"`
	TrackingNumber string             `json:"tracking_number,omitempty"`
	PaymentDetails json.RawMessage    `json:"payment_details,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// ValidateOrderResponse reports the provider-side approval state.
type ValidateOrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// OrderStatResponse is one status bucket of the order ledger.
type OrderStatResponse struct {
	Status string  `json:"status"`
	Count  int64   `json:"count"`
	Total  float64 `json:"total"`
}
