package repository

import (
	"context"

	"github.com/tradewind/storefront/internal/domain/model"
)

// WishlistRepository maintains the per-user wishlist together with the
// mirrored membership set on the user record. Both views change in the same
// transaction.
type WishlistRepository interface {
	Add(ctx context.Context, userID, productID int64) error
	Remove(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, userID int64) error
	List(ctx context.Context, userID int64) ([]model.WishlistEntry, error)
	Contains(ctx context.Context, userID, productID int64) (bool, error)
}

// CartRepository maintains the per-user cart. Totals are recomputed from
// catalogue prices inside the mutation transaction.
type CartRepository interface {
	AddItems(ctx context.Context, userID int64, items []model.CartItem) (*model.Cart, error)
	UpdateItem(ctx context.Context, userID, productID int64, quantity int) (*model.Cart, error)
	RemoveItem(ctx context.Context, userID, productID int64) (*model.Cart, error)
	Get(ctx context.Context, userID int64) (*model.Cart, error)
	Clear(ctx context.Context, userID int64) error
}
