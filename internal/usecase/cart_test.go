package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	testhelpers "github.com/tradewind/storefront/internal/test"
)

func TestCartAddItemsMergesDuplicates(t *testing.T) {
	carts := &testhelpers.CartRepositoryStub{}
	uc := NewCartUseCase(carts)

	_, err := uc.AddItems(context.Background(), 1, []model.CartItem{
		{ProductID: 10, Quantity: 1},
		{ProductID: 11, Quantity: 2},
		{ProductID: 10, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(carts.AddedItems) != 2 {
		t.Fatalf("expected 2 merged lines, got %d", len(carts.AddedItems))
	}
	if carts.AddedItems[0].ProductID != 10 || carts.AddedItems[0].Quantity != 4 {
		t.Fatalf("expected product 10 quantity 4, got %+v", carts.AddedItems[0])
	}
}

func TestCartAddItemsValidation(t *testing.T) {
	carts := &testhelpers.CartRepositoryStub{}
	uc := NewCartUseCase(carts)

	if _, err := uc.AddItems(context.Background(), 1, nil); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity for empty request, got %v", err)
	}
	if _, err := uc.AddItems(context.Background(), 1, []model.CartItem{{ProductID: 1, Quantity: 0}}); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	if len(carts.AddedItems) != 0 {
		t.Fatal("repository must not be touched on validation errors")
	}
}

func TestCartUpdateItemValidation(t *testing.T) {
	carts := &testhelpers.CartRepositoryStub{}
	uc := NewCartUseCase(carts)

	if _, err := uc.UpdateItem(context.Background(), 1, 10, 0); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	cart, err := uc.UpdateItem(context.Background(), 1, 10, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart == nil {
		t.Fatal("expected cart")
	}
}

func TestCartGetAndClear(t *testing.T) {
	carts := &testhelpers.CartRepositoryStub{
		Cart: &model.Cart{UserID: 1, Items: []model.CartItem{{ProductID: 2, Quantity: 1}}, TotalPrice: 10},
	}
	uc := NewCartUseCase(carts)

	cart, err := uc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.TotalPrice != 10 {
		t.Fatalf("unexpected total %v", cart.TotalPrice)
	}
	if err := uc.Clear(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
