package repository

import (
	"context"

	"github.com/tradewind/storefront/internal/domain/model"
)

// ProductRepository describes catalogue persistence. Create resolves the
// category by name, creating it when absent.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product, categoryName string) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	GetMany(ctx context.Context, ids []int64) ([]model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error)
}

// ReviewRepository maintains reviews together with the product rating
// aggregate. All mutations run inside a single transaction that recomputes
// the product's average rating; no partial state is ever visible.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	Update(ctx context.Context, review *model.Review) (*model.Review, error)
	Delete(ctx context.Context, productID, reviewID, userID int64) error
	ListByProduct(ctx context.Context, productID int64, page, limit int) ([]model.Review, int64, error)
}
