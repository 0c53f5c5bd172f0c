package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sellaro/storefront/internal/domain/model"
)

// CategoryResponse describes a catalog category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryRequest describes a category create payload.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

// ProductRequest describes a product create/update payload.
type ProductRequest struct {
	CategoryID  int64  `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

// ProductResponse describes a product.
type ProductResponse struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// VariantRequest describes a variant create/update payload.
type VariantRequest struct {
	ProductID  int64                  `json:"product_id"`
	SKU        string                 `json:"sku" binding:"required"`
	Price      decimal.Decimal        `json:"price" binding:"required"`
	Cost       decimal.Decimal        `json:"cost"`
	Inventory  int                    `json:"inventory"`
	Properties map[string]model.Value `json:"properties"`
}

// VariantResponse describes a sellable SKU.
type VariantResponse struct {
	ID         int64                  `json:"id"`
	ProductID  int64                  `json:"product_id"`
	SKU        string                 `json:"sku"`
	Price      decimal.Decimal        `json:"price"`
	Inventory  int                    `json:"inventory"`
	Properties map[string]model.Value `json:"properties,omitempty"`
}

// InventoryAdjustRequest describes a manual stock correction.
type InventoryAdjustRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ProductDetailResponse pairs a product with its variants.
type ProductDetailResponse struct {
	Product  ProductResponse   `json:"product"`
	Variants []VariantResponse `json:"variants"`
}
