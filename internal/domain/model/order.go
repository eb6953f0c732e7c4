package model

import (
	"encoding/json"
	"time"
)

// OrderStatus describes the order/payment lifecycle.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusApproved  OrderStatus = "APPROVED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusFailed    OrderStatus = "FAILED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
)

// Terminal reports whether no further transition is allowed from the status.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusFailed, OrderStatusCancelled, OrderStatusRefunded, OrderStatusDelivered:
		return true
	}
	return false
}

// CancellableByOwner reports whether the owner may still cancel the order.
func (s OrderStatus) CancellableByOwner() bool {
	switch s {
	case OrderStatusCreated, OrderStatusApproved, OrderStatusCompleted:
		return true
	}
	return false
}

// FulfilmentAllows validates fulfilment transitions applied by operators.
func (s OrderStatus) FulfilmentAllows(next OrderStatus) bool {
	switch {
	case s == OrderStatusCompleted && next == OrderStatusShipped:
		return true
	case s == OrderStatusShipped && next == OrderStatusDelivered:
		return true
	}
	return false
}

// LineItem is a price snapshot of a purchased product. Unit price is frozen
// at order creation and never re-read from the catalogue.
type LineItem struct {
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice float64
}

// Refund is an append-only record of a provider refund.
type Refund struct {
	RefundID  string
	Amount    float64
	Reason    string
	Status    string
	CreatedAt time.Time
}

// Order is the ledger record correlated with the provider order by ExternalID.
type Order struct {
	ID             int64
	ExternalID     string
	UserID         int64
	Items          []LineItem
	TotalAmount    float64
	Status         OrderStatus
	PaymentDetails json.RawMessage
	Refunds        []Refund
	TrackingNumber string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ItemsTotal sums quantity times unit price over line items.
func ItemsTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// captureDetails mirrors the fragment of the provider capture response the
// ledger reads back: purchase_units[0].payments.captures[0].id.
type captureDetails struct {
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID string `json:"id"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

// CaptureID extracts the capture identifier stored in PaymentDetails.
// Returns empty string when the order carries no capture snapshot.
func (o *Order) CaptureID() string {
	if len(o.PaymentDetails) == 0 {
		return ""
	}
	var details captureDetails
	if err := json.Unmarshal(o.PaymentDetails, &details); err != nil {
		return ""
	}
	for _, unit := range details.PurchaseUnits {
		for _, capture := range unit.Payments.Captures {
			if capture.ID != "" {
				return capture.ID
			}
		}
	}
	return ""
}

// OrderStat aggregates orders by status.
type OrderStat struct {
	Status      OrderStatus
	Count       int64
	TotalAmount float64
}
