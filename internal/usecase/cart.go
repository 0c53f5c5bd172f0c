package usecase

import (
	"context"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
	"github.com/sellaro/storefront/internal/domain/repository"
)

// CartUseCase manages the per-user pending selection.
type CartUseCase struct {
	carts    repository.CartRepository
	variants repository.VariantRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, variants repository.VariantRepository) *CartUseCase {
	return &CartUseCase{carts: carts, variants: variants}
}

func (u *CartUseCase) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	return u.carts.Get(ctx, userID)
}

// AddItem merges the item into the cart: an existing line for the same
// variant is incremented. The variant must exist.
func (u *CartUseCase) AddItem(ctx context.Context, userID int64, item model.CartItem) error {
	if item.Quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	if _, err := u.variants.GetByID(ctx, item.VariantID); err != nil {
		return err
	}
	return u.carts.Merge(ctx, userID, item)
}

// SetQuantity replaces the quantity of a cart line; zero removes it.
func (u *CartUseCase) SetQuantity(ctx context.Context, userID, variantID int64, quantity int) error {
	if quantity < 0 {
		return domainErrors.ErrInvalidQuantity
	}
	if quantity == 0 {
		return u.carts.Remove(ctx, userID, variantID)
	}
	if _, err := u.variants.GetByID(ctx, variantID); err != nil {
		return err
	}
	return u.carts.SetQuantity(ctx, userID, variantID, quantity)
}

func (u *CartUseCase) RemoveItem(ctx context.Context, userID, variantID int64) error {
	return u.carts.Remove(ctx, userID, variantID)
}

func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Clear(ctx, userID)
}
