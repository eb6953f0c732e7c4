package repository

import (
	"context"
	"encoding/json"

	"github.com/tradewind/storefront/internal/domain/model"
)

// OrderRepository describes persistence operations with the order ledger.
// Records are keyed by the provider-assigned external identifier.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByExternalID(ctx context.Context, externalID string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	UpdateStatus(ctx context.Context, externalID string, status model.OrderStatus) error
	SetCaptured(ctx context.Context, externalID string, details json.RawMessage) error
	AppendRefund(ctx context.Context, externalID string, refund model.Refund) error
	SetFulfilment(ctx context.Context, externalID string, status model.OrderStatus, trackingNumber string) error
	StatsByStatus(ctx context.Context) ([]model.OrderStat, error)
}
