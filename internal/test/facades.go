package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sellaro/storefront/internal/domain/model"
	pkgAuth "github.com/sellaro/storefront/internal/pkg/auth"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (pkgAuth.Claims, error)
	Claims         pkgAuth.Claims
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// ParseToken returns stored identity for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Claims == (pkgAuth.Claims{}) {
		return pkgAuth.Claims{UserID: 1}, nil
	}
	return s.Claims, nil
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	CategoriesFn      func(context.Context) ([]model.Category, error)
	CreateCategoryFn  func(context.Context, string, string) (*model.Category, error)
	DeleteCategoryFn  func(context.Context, int64) error
	ProductsFn        func(context.Context, int64) ([]model.Product, error)
	ProductBySlugFn   func(context.Context, string) (*model.Product, []model.Variant, error)
	CreateProductFn   func(context.Context, *model.Product) (*model.Product, error)
	UpdateProductFn   func(context.Context, *model.Product) error
	DeleteProductFn   func(context.Context, int64) error
	CreateVariantFn   func(context.Context, *model.Variant) (*model.Variant, error)
	UpdateVariantFn   func(context.Context, *model.Variant) error
	AdjustInventoryFn func(context.Context, int64, int) error
	DeleteVariantFn   func(context.Context, int64) error
}

func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: 1, Name: "Default", Slug: "default"}}, nil
}

func (s CatalogFacadeStub) CreateCategory(ctx context.Context, name, slug string) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, name, slug)
	}
	return &model.Category{ID: 1, Name: name, Slug: slug}, nil
}

func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, id int64) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) Products(ctx context.Context, categoryID int64) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, categoryID)
	}
	return []model.Product{{ID: 1, Name: "Widget", Slug: "widget", Active: true}}, nil
}

func (s CatalogFacadeStub) ProductBySlug(ctx context.Context, slug string) (*model.Product, []model.Variant, error) {
	if s.ProductBySlugFn != nil {
		return s.ProductBySlugFn(ctx, slug)
	}
	return &model.Product{ID: 1, Slug: slug, Active: true},
		[]model.Variant{{ID: 1, ProductID: 1, SKU: "SKU-1", Inventory: 10}}, nil
}

func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	created := *product
	created.ID = 1
	return &created, nil
}

func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, product *model.Product) error {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, product)
	}
	return nil
}

func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) CreateVariant(ctx context.Context, variant *model.Variant) (*model.Variant, error) {
	if s.CreateVariantFn != nil {
		return s.CreateVariantFn(ctx, variant)
	}
	created := *variant
	created.ID = 1
	return &created, nil
}

func (s CatalogFacadeStub) UpdateVariant(ctx context.Context, variant *model.Variant) error {
	if s.UpdateVariantFn != nil {
		return s.UpdateVariantFn(ctx, variant)
	}
	return nil
}

func (s CatalogFacadeStub) AdjustInventory(ctx context.Context, variantID int64, delta int) error {
	if s.AdjustInventoryFn != nil {
		return s.AdjustInventoryFn(ctx, variantID, delta)
	}
	return nil
}

func (s CatalogFacadeStub) DeleteVariant(ctx context.Context, id int64) error {
	if s.DeleteVariantFn != nil {
		return s.DeleteVariantFn(ctx, id)
	}
	return nil
}

// CartFacadeStub provides controllable behaviour for cart endpoints.
type CartFacadeStub struct {
	CartFn        func(context.Context, int64) (*model.Cart, error)
	AddItemFn     func(context.Context, int64, model.CartItem) error
	SetQuantityFn func(context.Context, int64, int64, int) error
	RemoveItemFn  func(context.Context, int64, int64) error
	ClearFn       func(context.Context, int64) error
}

func (s CartFacadeStub) Cart(ctx context.Context, userID int64) (*model.Cart, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return &model.Cart{UserID: userID, Items: []model.CartItem{{VariantID: 1, Quantity: 2}}}, nil
}

func (s CartFacadeStub) AddCartItem(ctx context.Context, userID int64, item model.CartItem) error {
	if s.AddItemFn != nil {
		return s.AddItemFn(ctx, userID, item)
	}
	return nil
}

func (s CartFacadeStub) SetCartQuantity(ctx context.Context, userID, variantID int64, quantity int) error {
	if s.SetQuantityFn != nil {
		return s.SetQuantityFn(ctx, userID, variantID, quantity)
	}
	return nil
}

func (s CartFacadeStub) RemoveCartItem(ctx context.Context, userID, variantID int64) error {
	if s.RemoveItemFn != nil {
		return s.RemoveItemFn(ctx, userID, variantID)
	}
	return nil
}

func (s CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CheckoutFn     func(context.Context, int64, string) (*model.CheckoutResult, error)
	OrdersFn       func(context.Context, int64) ([]model.Order, error)
	OrderFn        func(context.Context, string, int64, bool) (*model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) error
	CancelFn       func(context.Context, string) error
}

// Checkout delegates to provided function or returns default order.
func (s OrderFacadeStub) Checkout(ctx context.Context, userID int64, shippingAddress string) (*model.CheckoutResult, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, shippingAddress)
	}
	order := &model.Order{
		Code:            "ORD-1",
		UserID:          userID,
		Status:          model.OrderStatusNew,
		PaymentStatus:   model.PaymentStatusPending,
		Amount:          decimal.NewFromInt(10),
		ShippingAddress: shippingAddress,
	}
	return &model.CheckoutResult{Order: order, PayURL: "https://pay.example/ORD-1"}, nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{Code: "ORD-1", UserID: userID}}, nil
}

// Order returns a single order snapshot.
func (s OrderFacadeStub) Order(ctx context.Context, code string, userID int64, admin bool) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, code, userID, admin)
	}
	return &model.Order{Code: code, UserID: userID}, nil
}

// UpdateOrderStatus executes configured override.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, code string, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, code, status)
	}
	return nil
}

// CancelOrder executes configured override.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, code string) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, code)
	}
	return nil
}

// PaymentFacadeStub simulates webhook processing.
type PaymentFacadeStub struct {
	ProcessFn func(context.Context, model.PaymentNotification) error
	Received  []model.PaymentNotification
}

// ProcessPaymentNotification records deliveries and applies overrides.
func (s *PaymentFacadeStub) ProcessPaymentNotification(ctx context.Context, n model.PaymentNotification) error {
	s.Received = append(s.Received, n)
	if s.ProcessFn != nil {
		return s.ProcessFn(ctx, n)
	}
	return nil
}

// StatsFacadeStub returns configured sales aggregates.
type StatsFacadeStub struct {
	SummaryFn func(context.Context, time.Time, time.Time) (*model.SalesSummary, error)
}

// SalesSummary returns stored summary or default data.
func (s StatsFacadeStub) SalesSummary(ctx context.Context, from, to time.Time) (*model.SalesSummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, from, to)
	}
	return &model.SalesSummary{OrderCount: 2, Revenue: decimal.NewFromInt(30), UnitsSold: 5}, nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	OrderFacadeStub
	*PaymentFacadeStub
	StatsFacadeStub
}

// NewStoreFacadeStub constructs composite stub with defaults.
func NewStoreFacadeStub() *StoreFacadeStub {
	return &StoreFacadeStub{PaymentFacadeStub: &PaymentFacadeStub{}}
}

// WorkerFacadeStub mimics the expiration worker's view of the facade.
type WorkerFacadeStub struct {
	Batches   [][]model.Order
	OrdersFn  func(context.Context, time.Duration, int) ([]model.Order, error)
	ExpireFn  func(context.Context, model.Order) error
	Expired   []model.Order
	mu        sync.Mutex
	callCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// ExpiredOrders returns batches from configured queue.
func (s *WorkerFacadeStub) ExpiredOrders(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, olderThan, limit)
	}
	call := atomic.AddInt32(&s.callCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// ExpireOrder records expired orders.
func (s *WorkerFacadeStub) ExpireOrder(ctx context.Context, order model.Order) error {
	if s.ExpireFn != nil {
		return s.ExpireFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Expired = append(s.Expired, order)
	return nil
}
