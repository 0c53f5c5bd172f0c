package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products for navigation.
type Category struct {
	ID   int64
	Name string
	Slug string
}

// Product is a sellable item; concrete purchasable units are its variants.
type Product struct {
	ID          int64
	CategoryID  int64
	Name        string
	Slug        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductSnapshot is a product together with its variants, as served to
// the storefront and cached between reads.
type ProductSnapshot struct {
	Product  Product   `json:"product"`
	Variants []Variant `json:"variants"`
}

// Variant is a specific SKU of a product (e.g. a colour/size combination).
// Inventory counts units available for sale and never goes below zero.
type Variant struct {
	ID         int64
	ProductID  int64
	SKU        string
	Price      decimal.Decimal
	Cost       decimal.Decimal
	Inventory  int
	Properties Attrs
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
