package usecase

import (
	"context"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	"github.com/tradewind/storefront/internal/domain/repository"
)

// CartUseCase manages shopping carts. Cart line prices always come from the
// catalogue; the repository recomputes the total on every mutation.
type CartUseCase struct {
	carts repository.CartRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository) *CartUseCase {
	return &CartUseCase{carts: carts}
}

// AddItems adds products to the user's cart. Repeated product ids in one
// request are merged by summing their quantities.
func (u *CartUseCase) AddItems(ctx context.Context, userID int64, items []model.CartItem) (*model.Cart, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	merged := make([]model.CartItem, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, domainErrors.ErrInvalidQuantity
		}
		if pos, ok := index[item.ProductID]; ok {
			merged[pos].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, model.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return u.carts.AddItems(ctx, userID, merged)
}

// UpdateItem sets the quantity of one cart line.
func (u *CartUseCase) UpdateItem(ctx context.Context, userID, productID int64, quantity int) (*model.Cart, error) {
	if quantity < 1 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	return u.carts.UpdateItem(ctx, userID, productID, quantity)
}

// RemoveItem deletes one cart line.
func (u *CartUseCase) RemoveItem(ctx context.Context, userID, productID int64) (*model.Cart, error) {
	return u.carts.RemoveItem(ctx, userID, productID)
}

// Get returns the user's cart; an empty cart when none exists yet.
func (u *CartUseCase) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	return u.carts.Get(ctx, userID)
}

// Clear removes the cart and all its lines.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Clear(ctx, userID)
}
