package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	"github.com/tradewind/storefront/internal/domain/repository"
)

// PaymentProvider exposes the subset of provider operations the order
// lifecycle depends on.
type PaymentProvider interface {
	CreateOrder(ctx context.Context, total float64, currency string, items []model.LineItem) (*model.ProviderOrder, error)
	GetOrder(ctx context.Context, externalID string) (*model.ProviderOrder, error)
	CaptureOrder(ctx context.Context, externalID string) (*model.CaptureOutcome, error)
	RefundCapture(ctx context.Context, captureID string, amount float64, currency, note string) (*model.ProviderRefund, error)
}

// CheckoutUseCase drives an order through the payment state machine, keeping
// the local ledger consistent with the provider's authoritative state.
type CheckoutUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	provider PaymentProvider
	currency string
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(orders repository.OrderRepository, products repository.ProductRepository, provider PaymentProvider, currency string) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, products: products, provider: provider, currency: currency}
}

// CreateOrder registers an external order with the provider and persists the
// ledger entry with status CREATED. The total is computed from the
// caller-supplied unit prices, which become the immutable price snapshot; the
// ledger entry is not written when the provider call fails.
func (u *CheckoutUseCase) CreateOrder(ctx context.Context, userID int64, items []model.LineItem) (*model.Order, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, domainErrors.ErrInvalidQuantity
		}
		if item.UnitPrice < 0 {
			return nil, domainErrors.ErrInvalidAmount
		}
	}

	ids := make([]int64, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	products, err := u.products.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(products) != len(ids) {
		return nil, domainErrors.ErrNotFound
	}

	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	for i := range items {
		if items[i].Name == "" {
			items[i].Name = names[items[i].ProductID]
		}
	}

	total := model.ItemsTotal(items)

	providerOrder, err := u.provider.CreateOrder(ctx, total, u.currency, items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrProviderUnavailable, err)
	}

	order := &model.Order{
		ExternalID:  providerOrder.ExternalID,
		UserID:      userID,
		Items:       items,
		TotalAmount: total,
		Status:      model.OrderStatusCreated,
	}
	return u.orders.Create(ctx, order)
}

// ValidateForCapture checks the live provider-side status ahead of capture.
// Read-only; fails unless the provider reports the order APPROVED.
func (u *CheckoutUseCase) ValidateForCapture(ctx context.Context, externalID string) (*model.ProviderOrder, error) {
	providerOrder, err := u.provider.GetOrder(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrProviderUnavailable, err)
	}
	if providerOrder.Status != model.ProviderOrderApproved {
		return nil, domainErrors.ErrNotApproved
	}
	return providerOrder, nil
}

// CaptureOrder executes the money-moving capture. Preconditions leave the
// ledger untouched; once the provider capture call has been issued the entry
// never stays CREATED — it lands in COMPLETED or FAILED.
func (u *CheckoutUseCase) CaptureOrder(ctx context.Context, externalID string) (*model.Order, error) {
	order, err := u.orders.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusCreated {
		return nil, domainErrors.ErrNotApproved
	}

	if _, err := u.ValidateForCapture(ctx, externalID); err != nil {
		return nil, err
	}

	outcome, err := u.provider.CaptureOrder(ctx, externalID)
	if err != nil {
		// The provider call is the point of no return.
		if updateErr := u.orders.UpdateStatus(ctx, externalID, model.OrderStatusFailed); updateErr != nil {
			return nil, updateErr
		}
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrProviderUnavailable, err)
	}

	if err := u.orders.SetCaptured(ctx, externalID, outcome.Details); err != nil {
		_ = u.orders.UpdateStatus(ctx, externalID, model.OrderStatusFailed)
		return nil, err
	}

	return u.orders.GetByExternalID(ctx, externalID)
}

// RefundOrder refunds against the stored capture of a COMPLETED order and
// appends the refund record. Partial refunds append without bound-checking
// against the captured amount.
func (u *CheckoutUseCase) RefundOrder(ctx context.Context, externalID string, amount float64, reason string) (*model.Order, error) {
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	order, err := u.orders.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusCompleted {
		return nil, domainErrors.ErrNotRefundable
	}

	captureID := order.CaptureID()
	if captureID == "" {
		return nil, domainErrors.ErrNoCaptureFound
	}

	refund, err := u.provider.RefundCapture(ctx, captureID, amount, u.currency, reason)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrProviderUnavailable, err)
	}

	record := model.Refund{
		RefundID: refund.RefundID,
		Amount:   amount,
		Reason:   reason,
		Status:   refund.Status,
	}
	if err := u.orders.AppendRefund(ctx, externalID, record); err != nil {
		return nil, err
	}

	return u.orders.GetByExternalID(ctx, externalID)
}

// CancelOrder cancels a not-yet-captured order. No provider call is made;
// an uncaptured provider order simply expires remotely.
func (u *CheckoutUseCase) CancelOrder(ctx context.Context, externalID string) (*model.Order, error) {
	order, err := u.orders.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusCreated {
		return nil, domainErrors.ErrNotCancellable
	}

	if err := u.orders.UpdateStatus(ctx, externalID, model.OrderStatusCancelled); err != nil {
		return nil, err
	}
	order.Status = model.OrderStatusCancelled
	return order, nil
}
