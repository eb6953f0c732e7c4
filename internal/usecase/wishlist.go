package usecase

import (
	"context"

	"github.com/tradewind/storefront/internal/domain/model"
	"github.com/tradewind/storefront/internal/domain/repository"
)

// WishlistUseCase manages per-user wishlists.
type WishlistUseCase struct {
	wishlist repository.WishlistRepository
}

// NewWishlistUseCase constructs WishlistUseCase.
func NewWishlistUseCase(wishlist repository.WishlistRepository) *WishlistUseCase {
	return &WishlistUseCase{wishlist: wishlist}
}

// Add puts the product on the user's wishlist.
func (u *WishlistUseCase) Add(ctx context.Context, userID, productID int64) error {
	return u.wishlist.Add(ctx, userID, productID)
}

// Remove takes the product off the user's wishlist.
func (u *WishlistUseCase) Remove(ctx context.Context, userID, productID int64) error {
	return u.wishlist.Remove(ctx, userID, productID)
}

// Clear empties the user's wishlist.
func (u *WishlistUseCase) Clear(ctx context.Context, userID int64) error {
	return u.wishlist.Clear(ctx, userID)
}

// List returns the wishlist entries, newest first.
func (u *WishlistUseCase) List(ctx context.Context, userID int64) ([]model.WishlistEntry, error) {
	return u.wishlist.List(ctx, userID)
}

// Contains reports whether the product is on the user's wishlist.
func (u *WishlistUseCase) Contains(ctx context.Context, userID, productID int64) (bool, error) {
	return u.wishlist.Contains(ctx, userID, productID)
}
