package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	testhelpers "github.com/tradewind/storefront/internal/test"
)

func TestWishlistAddRemoveRoundTrip(t *testing.T) {
	repo := testhelpers.NewWishlistRepositoryStub()
	uc := NewWishlistUseCase(repo)

	if err := uc.Add(context.Background(), 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Add(context.Background(), 1, 10); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists on duplicate, got %v", err)
	}

	ok, err := uc.Contains(context.Background(), 1, 10)
	if err != nil || !ok {
		t.Fatalf("expected membership, got %v %v", ok, err)
	}

	entries, err := uc.List(context.Background(), 1)
	if err != nil || len(entries) != 1 {
		t.Fatalf("unexpected list %+v %v", entries, err)
	}

	if err := uc.Remove(context.Background(), 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Remove(context.Background(), 1, 10); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found on second removal, got %v", err)
	}
}

func TestWishlistClear(t *testing.T) {
	repo := testhelpers.NewWishlistRepositoryStub()
	uc := NewWishlistUseCase(repo)

	_ = uc.Add(context.Background(), 1, 10)
	_ = uc.Add(context.Background(), 1, 11)
	if err := uc.Clear(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, err := uc.List(context.Background(), 1)
	if err != nil || len(entries) != 0 {
		t.Fatalf("expected empty wishlist, got %+v %v", entries, err)
	}
}
