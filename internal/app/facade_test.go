package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
	"github.com/sellaro/storefront/internal/domain/repository"
	testhelpers "github.com/sellaro/storefront/internal/test"
	"github.com/sellaro/storefront/internal/usecase"
)

type facadeFixture struct {
	facade   *StoreFacade
	users    *testhelpers.UserRepositoryStub
	variants *testhelpers.VariantRepositoryStub
	carts    *testhelpers.CartRepositoryStub
	orders   *testhelpers.OrderRepositoryStub
	provider *testhelpers.PaymentClientStub
}

func newFacade() *facadeFixture {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	users := testhelpers.NewUserRepositoryStub()
	authUC := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	categories := &testhelpers.CategoryRepositoryStub{}
	products := &testhelpers.ProductRepositoryStub{}
	variants := testhelpers.NewVariantRepositoryStub()
	catalogUC := usecase.NewCatalogUseCase(categories, products, variants, testhelpers.NewCacheStub(), logger)

	carts := testhelpers.NewCartRepositoryStub()
	cartUC := usecase.NewCartUseCase(carts, variants)

	orders := &testhelpers.OrderRepositoryStub{}
	publisher := &testhelpers.PublisherStub{}
	orderUC := usecase.NewOrderUseCase(orders, carts, variants, publisher, logger)

	paymentUC := usecase.NewPaymentUseCase(orders, testhelpers.VerifierStub{Valid: true}, testhelpers.NewCacheStub(), publisher, logger)
	statsUC := usecase.NewStatsUseCase(&testhelpers.StatsRepositoryStub{Count: 3, Units: 9})

	provider := &testhelpers.PaymentClientStub{}
	facade := NewStoreFacade(authUC, catalogUC, cartUC, orderUC, paymentUC, statsUC, provider, logger)

	return &facadeFixture{
		facade:   facade,
		users:    users,
		variants: variants,
		carts:    carts,
		orders:   orders,
		provider: provider,
	}
}

func (f *facadeFixture) seedCart(userID int64) {
	f.variants.Items[1] = &model.Variant{ID: 1, ProductID: 1, SKU: "SKU-1", Price: decimal.NewFromInt(10), Inventory: 5}
	f.carts.Carts[userID] = &model.Cart{UserID: userID, Items: []model.CartItem{{VariantID: 1, Quantity: 2}}}
}

func TestStoreFacadeAuth(t *testing.T) {
	fx := newFacade()

	token, err := fx.facade.Register(context.Background(), "a@shop.dev", "pass")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := fx.users.GetByEmail(context.Background(), "a@shop.dev")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Email != "a@shop.dev" {
		t.Fatalf("unexpected stored email %q", stored.Email)
	}

	if _, err := fx.facade.Authenticate(context.Background(), "a@shop.dev", "pass"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	claims, err := fx.facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if claims.UserID != 1 {
		t.Fatalf("expected user 1, got %d", claims.UserID)
	}
}

func TestStoreFacadeCheckout(t *testing.T) {
	fx := newFacade()
	fx.seedCart(7)

	result, err := fx.facade.Checkout(context.Background(), 7, "10 Main St")
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}
	if result.Order == nil || result.Order.Code == "" {
		t.Fatalf("expected created order, got %+v", result.Order)
	}
	if result.PayURL == "" {
		t.Fatal("expected payment redirect")
	}
}

func TestStoreFacadeCheckoutProviderFailure(t *testing.T) {
	fx := newFacade()
	fx.seedCart(7)
	fx.provider.Err = errors.New("provider down")

	result, err := fx.facade.Checkout(context.Background(), 7, "10 Main St")
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}
	if result.Order == nil {
		t.Fatal("expected order despite provider failure")
	}
	if result.PayURL != "" {
		t.Fatalf("expected empty pay url, got %q", result.PayURL)
	}
}

func TestStoreFacadeCancelOrder(t *testing.T) {
	fx := newFacade()
	fx.orders.Orders = []model.Order{{ID: 4, Code: "ORD-4", Status: model.OrderStatusNew, PaymentStatus: model.PaymentStatusPending}}

	if err := fx.facade.CancelOrder(context.Background(), "ORD-4"); err != nil {
		t.Fatalf("cancel returned error: %v", err)
	}
	if len(fx.orders.CancelCalls) != 1 || fx.orders.CancelCalls[0] != 4 {
		t.Fatalf("unexpected cancel calls %v", fx.orders.CancelCalls)
	}
}

func TestStoreFacadeExpireOrder(t *testing.T) {
	fx := newFacade()
	order := model.Order{ID: 2, Code: "ORD-2", Status: model.OrderStatusNew, PaymentStatus: model.PaymentStatusPending}

	if err := fx.facade.ExpireOrder(context.Background(), order); err != nil {
		t.Fatalf("expire returned error: %v", err)
	}
	if len(fx.orders.CancelCalls) != 1 || fx.orders.CancelCalls[0] != 2 {
		t.Fatalf("unexpected cancel calls %v", fx.orders.CancelCalls)
	}

	fx.orders.CancelAndRestockFn = func(context.Context, int64) (*repository.RestockResult, error) {
		return nil, domainErrors.ErrAlreadyResolved
	}
	if err := fx.facade.ExpireOrder(context.Background(), order); err != nil {
		t.Fatalf("expected resolved order to be skipped quietly, got %v", err)
	}
}

func TestStoreFacadeSalesSummary(t *testing.T) {
	fx := newFacade()
	summary, err := fx.facade.SalesSummary(context.Background(), time.Now().Add(-time.Hour), time.Now())
	if err != nil {
		t.Fatalf("summary returned error: %v", err)
	}
	if summary.OrderCount != 3 || summary.UnitsSold != 9 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}
