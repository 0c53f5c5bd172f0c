package repository

import (
	"context"

	"github.com/sellaro/storefront/internal/domain/model"
)

// CartRepository stores per-user pending selections.
type CartRepository interface {
	Get(ctx context.Context, userID int64) (*model.Cart, error)
	Merge(ctx context.Context, userID int64, item model.CartItem) error
	SetQuantity(ctx context.Context, userID, variantID int64, quantity int) error
	Remove(ctx context.Context, userID, variantID int64) error
	Clear(ctx context.Context, userID int64) error
}
