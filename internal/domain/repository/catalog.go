package repository

import (
	"context"

	"github.com/sellaro/storefront/internal/domain/model"
)

// CategoryRepository describes persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, name, slug string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Delete(ctx context.Context, id int64) error
}

// ProductRepository describes persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	List(ctx context.Context, categoryID int64, activeOnly bool) ([]model.Product, error)
	Delete(ctx context.Context, id int64) error
}

// VariantRepository describes persistence operations for variants.
type VariantRepository interface {
	Create(ctx context.Context, variant *model.Variant) (*model.Variant, error)
	Update(ctx context.Context, variant *model.Variant) error
	GetBySKU(ctx context.Context, sku string) (*model.Variant, error)
	GetByID(ctx context.Context, id int64) (*model.Variant, error)
	ListByProduct(ctx context.Context, productID int64) ([]model.Variant, error)
	AdjustInventory(ctx context.Context, id int64, delta int) error
	Delete(ctx context.Context, id int64) error
}
