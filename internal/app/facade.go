package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/sellaro/storefront/internal/adapter/payment"
	"github.com/sellaro/storefront/internal/domain/model"
	pkgAuth "github.com/sellaro/storefront/internal/pkg/auth"
	"github.com/sellaro/storefront/internal/usecase"
)

// StoreFacade aggregates the application's use cases behind one surface
// consumed by HTTP handlers and the background worker.
type StoreFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	cart     *usecase.CartUseCase
	orders   *usecase.OrderUseCase
	payments *usecase.PaymentUseCase
	stats    *usecase.StatsUseCase
	provider payment.Client
	logger   *slog.Logger
}

// NewStoreFacade constructs the facade.
func NewStoreFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	payments *usecase.PaymentUseCase,
	stats *usecase.StatsUseCase,
	provider payment.Client,
	logger *slog.Logger,
) *StoreFacade {
	return &StoreFacade{
		auth:     auth,
		catalog:  catalog,
		cart:     cart,
		orders:   orders,
		payments: payments,
		stats:    stats,
		provider: provider,
		logger:   logger,
	}
}

// --- auth ---

func (f *StoreFacade) Register(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, email, password)
	return token, err
}

func (f *StoreFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *StoreFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

// --- catalog ---

func (f *StoreFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.Categories(ctx)
}

func (f *StoreFacade) CreateCategory(ctx context.Context, name, slug string) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, name, slug)
}

func (f *StoreFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteCategory(ctx, id)
}

func (f *StoreFacade) Products(ctx context.Context, categoryID int64) ([]model.Product, error) {
	return f.catalog.Products(ctx, categoryID)
}

func (f *StoreFacade) ProductBySlug(ctx context.Context, slug string) (*model.Product, []model.Variant, error) {
	return f.catalog.ProductBySlug(ctx, slug)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, product)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, product *model.Product) error {
	return f.catalog.UpdateProduct(ctx, product)
}

func (f *StoreFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.DeleteProduct(ctx, id)
}

func (f *StoreFacade) CreateVariant(ctx context.Context, variant *model.Variant) (*model.Variant, error) {
	return f.catalog.CreateVariant(ctx, variant)
}

func (f *StoreFacade) UpdateVariant(ctx context.Context, variant *model.Variant) error {
	return f.catalog.UpdateVariant(ctx, variant)
}

func (f *StoreFacade) AdjustInventory(ctx context.Context, variantID int64, delta int) error {
	return f.catalog.AdjustInventory(ctx, variantID, delta)
}

func (f *StoreFacade) DeleteVariant(ctx context.Context, id int64) error {
	return f.catalog.DeleteVariant(ctx, id)
}

// --- cart ---

func (f *StoreFacade) Cart(ctx context.Context, userID int64) (*model.Cart, error) {
	return f.cart.Get(ctx, userID)
}

func (f *StoreFacade) AddCartItem(ctx context.Context, userID int64, item model.CartItem) error {
	return f.cart.AddItem(ctx, userID, item)
}

func (f *StoreFacade) SetCartQuantity(ctx context.Context, userID, variantID int64, quantity int) error {
	return f.cart.SetQuantity(ctx, userID, variantID, quantity)
}

func (f *StoreFacade) RemoveCartItem(ctx context.Context, userID, variantID int64) error {
	return f.cart.RemoveItem(ctx, userID, variantID)
}

func (f *StoreFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

// --- orders ---

// Checkout creates the order from the cart and opens a payment with the
// provider. A provider failure does not undo the order: it stays
// pending and is either paid later or swept by the expiration worker.
func (f *StoreFacade) Checkout(ctx context.Context, userID int64, shippingAddress string) (*model.CheckoutResult, error) {
	order, err := f.orders.Checkout(ctx, userID, shippingAddress)
	if err != nil {
		return nil, err
	}

	result := &model.CheckoutResult{Order: order}
	intent, err := f.provider.CreatePayment(ctx, order)
	if err != nil {
		f.logger.Error("create payment failed",
			slog.String("order", order.Code), slog.String("error", err.Error()))
		return result, nil
	}
	result.PayURL = intent.PayURL
	return result, nil
}

func (f *StoreFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StoreFacade) Order(ctx context.Context, code string, userID int64, admin bool) (*model.Order, error) {
	return f.orders.GetByCode(ctx, code, userID, admin)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, code string, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, code, status)
}

// CancelOrder cancels an order and restores its stock; cancelling an
// order whose payment is already resolved reports ErrAlreadyResolved.
func (f *StoreFacade) CancelOrder(ctx context.Context, code string) error {
	_, err := f.orders.Cancel(ctx, code)
	return err
}

// ExpiredOrders returns pending unpaid orders older than the duration.
func (f *StoreFacade) ExpiredOrders(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	return f.orders.SelectExpired(ctx, olderThan, limit)
}

// ExpireOrder cancels one stale unpaid order and restores its stock.
func (f *StoreFacade) ExpireOrder(ctx context.Context, order model.Order) error {
	return f.orders.ExpireOrder(ctx, order)
}

// --- payment ---

func (f *StoreFacade) ProcessPaymentNotification(ctx context.Context, n model.PaymentNotification) error {
	return f.payments.ProcessNotification(ctx, n)
}

// --- stats ---

func (f *StoreFacade) SalesSummary(ctx context.Context, from, to time.Time) (*model.SalesSummary, error) {
	return f.stats.Summary(ctx, from, to)
}
