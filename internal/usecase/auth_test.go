package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	pkgAuth "github.com/tradewind/storefront/internal/pkg/auth"
	testhelpers "github.com/tradewind/storefront/internal/test"
)

func newAuth(users *testhelpers.UserRepositoryStub) *AuthUseCase {
	return NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{
		IssueFn: func(id int64) (string, error) { return "token-1", nil },
	})
}

func TestAuthRegisterSuccess(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := newAuth(users)

	usr, token, err := uc.Register(context.Background(), "User@Example.com ", "Jamie Doe", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
	if usr.Email != "user@example.com" {
		t.Fatalf("email must be normalized, got %q", usr.Email)
	}
	if usr.PasswordHash != "hash:secret" {
		t.Fatalf("unexpected hash %q", usr.PasswordHash)
	}
}

func TestAuthRegisterValidationAndConflict(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := newAuth(users)

	if _, _, err := uc.Register(context.Background(), "", "x", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for empty email, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "a@b.c", "x", ""); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for empty password, got %v", err)
	}

	if _, _, err := uc.Register(context.Background(), "a@b.c", "x", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "a@b.c", "x", "secret"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestAuthAuthenticate(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := newAuth(users)

	if _, _, err := uc.Register(context.Background(), "a@b.c", "x", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, token, err := uc.Authenticate(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}

	if _, _, err := uc.Authenticate(context.Background(), "a@b.c", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for wrong password, got %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "nobody@b.c", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("unknown user must map to invalid credentials, got %v", err)
	}
}

func TestAuthRegisterManyDistinctEmails(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := newAuth(users)

	for i := 0; i < 20; i++ {
		email := testhelpers.RandomEmail()
		if _, _, err := uc.Register(context.Background(), email, "Jamie Doe", "secret"); err != nil {
			t.Fatalf("unexpected error for %q: %v", email, err)
		}
		if _, _, err := uc.Authenticate(context.Background(), email, "secret"); err != nil {
			t.Fatalf("authenticate failed for %q: %v", email, err)
		}
	}
}

func TestAuthParseTokenEmpty(t *testing.T) {
	uc := newAuth(testhelpers.NewUserRepositoryStub())
	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}
