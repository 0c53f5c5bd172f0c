package handlers

import (
	"context"
	"time"

	"github.com/sellaro/storefront/internal/domain/model"
	pkgAuth "github.com/sellaro/storefront/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
}

// CatalogFacade encapsulates catalog operations exposed via HTTP.
type CatalogFacade interface {
	Categories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name, slug string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	Products(ctx context.Context, categoryID int64) ([]model.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*model.Product, []model.Variant, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	CreateVariant(ctx context.Context, variant *model.Variant) (*model.Variant, error)
	UpdateVariant(ctx context.Context, variant *model.Variant) error
	AdjustInventory(ctx context.Context, variantID int64, delta int) error
	DeleteVariant(ctx context.Context, id int64) error
}

// CartFacade provides cart operations.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) (*model.Cart, error)
	AddCartItem(ctx context.Context, userID int64, item model.CartItem) error
	SetCartQuantity(ctx context.Context, userID, variantID int64, quantity int) error
	RemoveCartItem(ctx context.Context, userID, variantID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Checkout(ctx context.Context, userID int64, shippingAddress string) (*model.CheckoutResult, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, code string, userID int64, admin bool) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, code string, status model.OrderStatus) error
	CancelOrder(ctx context.Context, code string) error
}

// PaymentFacade processes provider callbacks.
type PaymentFacade interface {
	ProcessPaymentNotification(ctx context.Context, n model.PaymentNotification) error
}

// StatsFacade provides reporting aggregates.
type StatsFacade interface {
	SalesSummary(ctx context.Context, from, to time.Time) (*model.SalesSummary, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
	PaymentFacade
	StatsFacade
}
