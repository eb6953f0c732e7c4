package usecase

import (
	"context"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	"github.com/tradewind/storefront/internal/domain/repository"
)

// OrderUseCase covers order management outside the payment path: history,
// owner cancellation, and fulfilment.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// ListByUser returns orders sorted by creation time.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// GetForUser fetches a single order, rejecting access by non-owners.
func (u *OrderUseCase) GetForUser(ctx context.Context, userID int64, externalID string) (*model.Order, error) {
	order, err := u.orders.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrAccessDenied
	}
	return order, nil
}

// CancelByOwner cancels an order on the owner's request. Allowed from
// CREATED, APPROVED, and COMPLETED; shipped orders can no longer be
// cancelled.
func (u *OrderUseCase) CancelByOwner(ctx context.Context, userID int64, externalID string) (*model.Order, error) {
	order, err := u.orders.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrAccessDenied
	}
	if !order.Status.CancellableByOwner() {
		return nil, domainErrors.ErrNotCancellable
	}

	if err := u.orders.UpdateStatus(ctx, externalID, model.OrderStatusCancelled); err != nil {
		return nil, err
	}
	order.Status = model.OrderStatusCancelled
	return order, nil
}

// UpdateFulfilment applies operator shipping transitions:
// COMPLETED to SHIPPED, SHIPPED to DELIVERED.
func (u *OrderUseCase) UpdateFulfilment(ctx context.Context, externalID string, status model.OrderStatus, trackingNumber string) (*model.Order, error) {
	order, err := u.orders.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if !order.Status.FulfilmentAllows(status) {
		return nil, domainErrors.ErrInvalidTransition
	}

	if trackingNumber == "" {
		trackingNumber = order.TrackingNumber
	}
	if err := u.orders.SetFulfilment(ctx, externalID, status, trackingNumber); err != nil {
		return nil, err
	}
	order.Status = status
	order.TrackingNumber = trackingNumber
	return order, nil
}

// Stats aggregates order counts and totals per status.
func (u *OrderUseCase) Stats(ctx context.Context) ([]model.OrderStat, error) {
	return u.orders.StatsByStatus(ctx)
}
