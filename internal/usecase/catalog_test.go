package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	testhelpers "github.com/tradewind/storefront/internal/test"
)

func TestCatalogCreateRejectsNegativePrice(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	uc := NewCatalogUseCase(products)

	if _, err := uc.Create(context.Background(), &model.Product{Name: "x", Price: -1}, "vinyl"); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}

	created, err := uc.Create(context.Background(), &model.Product{Name: "x", Price: 10}, "vinyl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CategoryName != "vinyl" {
		t.Fatalf("unexpected category %q", created.CategoryName)
	}
}

func TestCatalogGetAndList(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	products.Products[3] = &model.Product{ID: 3, Name: "amp", Price: 99}
	uc := NewCatalogUseCase(products)

	product, err := uc.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name != "amp" {
		t.Fatalf("unexpected product %+v", product)
	}

	if _, err := uc.GetByID(context.Background(), 4); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	items, total, err := uc.List(context.Background(), model.ProductFilter{Page: 1, Limit: 10})
	if err != nil || total != 1 || len(items) != 1 {
		t.Fatalf("unexpected page %+v %d %v", items, total, err)
	}
}
