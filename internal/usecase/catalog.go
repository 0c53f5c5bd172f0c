package usecase

import (
	"context"
	"log/slog"

	"github.com/sellaro/storefront/internal/cache"
	"github.com/sellaro/storefront/internal/domain/model"
	"github.com/sellaro/storefront/internal/domain/repository"
)

// CatalogUseCase serves the product catalog for storefront and admin.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	variants   repository.VariantRepository
	cache      cache.Cache
	logger     *slog.Logger
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(categories repository.CategoryRepository, products repository.ProductRepository, variants repository.VariantRepository, c cache.Cache, logger *slog.Logger) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, products: products, variants: variants, cache: c, logger: logger}
}

func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

func (u *CatalogUseCase) CreateCategory(ctx context.Context, name, slug string) (*model.Category, error) {
	return u.categories.Create(ctx, name, slug)
}

func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return u.categories.Delete(ctx, id)
}

// Products lists products visible to customers; categoryID zero means
// all categories.
func (u *CatalogUseCase) Products(ctx context.Context, categoryID int64) ([]model.Product, error) {
	return u.products.List(ctx, categoryID, true)
}

// ProductBySlug returns a product with its variants. Reads are served
// from the cache when a fresh snapshot exists; cache failures degrade
// to the repositories.
func (u *CatalogUseCase) ProductBySlug(ctx context.Context, slug string) (*model.Product, []model.Variant, error) {
	snapshot, err := u.cache.GetProduct(ctx, slug)
	if err != nil {
		u.logger.Warn("product cache read failed",
			slog.String("slug", slug), slog.String("error", err.Error()))
	}
	if snapshot != nil {
		return &snapshot.Product, snapshot.Variants, nil
	}
	product, err := u.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	variants, err := u.variants.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, nil, err
	}
	if err := u.cache.SetProduct(ctx, slug, &model.ProductSnapshot{Product: *product, Variants: variants}); err != nil {
		u.logger.Warn("product cache write failed",
			slog.String("slug", slug), slog.String("error", err.Error()))
	}
	return product, variants, nil
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return u.products.Create(ctx, product)
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := u.products.Update(ctx, product); err != nil {
		return err
	}
	if err := u.cache.InvalidateProduct(ctx, product.Slug); err != nil {
		u.logger.Warn("product cache invalidation failed",
			slog.String("slug", product.Slug), slog.String("error", err.Error()))
	}
	return nil
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}

func (u *CatalogUseCase) CreateVariant(ctx context.Context, variant *model.Variant) (*model.Variant, error) {
	return u.variants.Create(ctx, variant)
}

func (u *CatalogUseCase) UpdateVariant(ctx context.Context, variant *model.Variant) error {
	return u.variants.Update(ctx, variant)
}

// AdjustInventory applies a manual stock correction to a variant.
func (u *CatalogUseCase) AdjustInventory(ctx context.Context, variantID int64, delta int) error {
	return u.variants.AdjustInventory(ctx, variantID, delta)
}

func (u *CatalogUseCase) DeleteVariant(ctx context.Context, id int64) error {
	return u.variants.Delete(ctx, id)
}
