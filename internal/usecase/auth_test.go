package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	pkgAuth "github.com/sellaro/storefront/internal/pkg/auth"
	testhelpers "github.com/sellaro/storefront/internal/test"
)

func TestRegister(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	user, token, err := uc.Register(context.Background(), "  Shopper@Example.COM ", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "shopper@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if token == "" {
		t.Fatal("expected token")
	}

	if _, _, err := uc.Register(context.Background(), "shopper@example.com", "secret"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}

	if _, _, err := uc.Register(context.Background(), "", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "a@b.c", ""); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Register(context.Background(), "shopper@example.com", "secret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(context.Background(), "shopper@example.com", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := uc.Authenticate(context.Background(), "shopper@example.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	if _, _, err := uc.Authenticate(context.Background(), "ghost@example.com", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestParseTokenDelegates(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{
		ParseFn: func(string) (pkgAuth.Claims, error) {
			return pkgAuth.Claims{UserID: 42, Admin: true}, nil
		},
	})

	claims, err := uc.ParseToken("token")
	if err != nil || claims.UserID != 42 || !claims.Admin {
		t.Fatalf("unexpected claims: %+v err=%v", claims, err)
	}
}
