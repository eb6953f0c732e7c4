package usecase

import (
	"context"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	"github.com/tradewind/storefront/internal/domain/repository"
)

// CatalogUseCase exposes the product catalogue.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// Create adds a product, creating its category on first use.
func (u *CatalogUseCase) Create(ctx context.Context, product *model.Product, categoryName string) (*model.Product, error) {
	if product.Price < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.products.Create(ctx, product, categoryName)
}

// GetByID returns one product with its rating aggregate.
func (u *CatalogUseCase) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns a filtered, sorted, paginated product page plus total count.
func (u *CatalogUseCase) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error) {
	return u.products.List(ctx, filter)
}
