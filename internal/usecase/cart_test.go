package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
	testhelpers "github.com/sellaro/storefront/internal/test"
)

func TestCartAddItem(t *testing.T) {
	variants := testhelpers.NewVariantRepositoryStub()
	variants.Items[5] = &model.Variant{ID: 5, SKU: "SKU-5", Price: decimal.NewFromInt(10)}
	carts := testhelpers.NewCartRepositoryStub()
	uc := NewCartUseCase(carts, variants)

	if err := uc.AddItem(context.Background(), 1, model.CartItem{VariantID: 5, Quantity: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.AddItem(context.Background(), 1, model.CartItem{VariantID: 5, Quantity: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart, err := uc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("expected merged line with quantity 3, got %+v", cart.Items)
	}
}

func TestCartAddItemValidation(t *testing.T) {
	uc := NewCartUseCase(testhelpers.NewCartRepositoryStub(), testhelpers.NewVariantRepositoryStub())

	if err := uc.AddItem(context.Background(), 1, model.CartItem{VariantID: 5, Quantity: 0}); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	if err := uc.AddItem(context.Background(), 1, model.CartItem{VariantID: 5, Quantity: -1}); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	if err := uc.AddItem(context.Background(), 1, model.CartItem{VariantID: 99, Quantity: 1}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown variant, got %v", err)
	}
}

func TestCartSetQuantity(t *testing.T) {
	variants := testhelpers.NewVariantRepositoryStub()
	variants.Items[5] = &model.Variant{ID: 5, SKU: "SKU-5"}
	carts := testhelpers.NewCartRepositoryStub()
	carts.Carts[1] = &model.Cart{UserID: 1, Items: []model.CartItem{{VariantID: 5, Quantity: 2}}}
	uc := NewCartUseCase(carts, variants)

	if err := uc.SetQuantity(context.Background(), 1, 5, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if carts.Carts[1].Items[0].Quantity != 4 {
		t.Fatalf("quantity not updated: %+v", carts.Carts[1].Items)
	}

	// Zero removes the line.
	if err := uc.SetQuantity(context.Background(), 1, 5, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(carts.Carts[1].Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", carts.Carts[1].Items)
	}

	if err := uc.SetQuantity(context.Background(), 1, 5, -2); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
}
