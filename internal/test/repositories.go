package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
	"github.com/sellaro/storefront/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string, admin bool) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash, Admin: admin}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CategoryRepositoryStub allows tests to customize category behaviour.
type CategoryRepositoryStub struct {
	CreateFn func(context.Context, string, string) (*model.Category, error)
	ListFn   func(context.Context) ([]model.Category, error)
	DeleteFn func(context.Context, int64) error
	Items    []model.Category
}

func (s *CategoryRepositoryStub) Create(ctx context.Context, name, slug string) (*model.Category, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, slug)
	}
	category := model.Category{ID: int64(len(s.Items) + 1), Name: name, Slug: slug}
	s.Items = append(s.Items, category)
	return &category, nil
}

func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Items, nil
}

func (s *CategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ProductRepositoryStub allows tests to customize product behaviour.
type ProductRepositoryStub struct {
	CreateFn    func(context.Context, *model.Product) (*model.Product, error)
	UpdateFn    func(context.Context, *model.Product) error
	GetBySlugFn func(context.Context, string) (*model.Product, error)
	ListFn      func(context.Context, int64, bool) ([]model.Product, error)
	DeleteFn    func(context.Context, int64) error
	Items       []model.Product
}

func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	created := *product
	created.ID = int64(len(s.Items) + 1)
	s.Items = append(s.Items, created)
	return &created, nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	return nil
}

func (s *ProductRepositoryStub) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if s.GetBySlugFn != nil {
		return s.GetBySlugFn(ctx, slug)
	}
	for _, p := range s.Items {
		if p.Slug == slug {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) List(ctx context.Context, categoryID int64, activeOnly bool) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, categoryID, activeOnly)
	}
	return s.Items, nil
}

func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// VariantRepositoryStub keeps variants in-memory with overridable hooks.
type VariantRepositoryStub struct {
	CreateFn          func(context.Context, *model.Variant) (*model.Variant, error)
	UpdateFn          func(context.Context, *model.Variant) error
	GetBySKUFn        func(context.Context, string) (*model.Variant, error)
	GetByIDFn         func(context.Context, int64) (*model.Variant, error)
	ListByProductFn   func(context.Context, int64) ([]model.Variant, error)
	AdjustInventoryFn func(context.Context, int64, int) error
	DeleteFn          func(context.Context, int64) error
	Items             map[int64]*model.Variant

	AdjustCalls []InventoryAdjustCall
}

// InventoryAdjustCall records one AdjustInventory invocation.
type InventoryAdjustCall struct {
	VariantID int64
	Delta     int
}

// NewVariantRepositoryStub constructs stub with initialized map.
func NewVariantRepositoryStub() *VariantRepositoryStub {
	return &VariantRepositoryStub{Items: make(map[int64]*model.Variant)}
}

func (s *VariantRepositoryStub) Create(ctx context.Context, variant *model.Variant) (*model.Variant, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, variant)
	}
	created := *variant
	created.ID = int64(len(s.Items) + 1)
	if s.Items == nil {
		s.Items = make(map[int64]*model.Variant)
	}
	s.Items[created.ID] = &created
	return &created, nil
}

func (s *VariantRepositoryStub) Update(ctx context.Context, variant *model.Variant) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, variant)
	}
	return nil
}

func (s *VariantRepositoryStub) GetBySKU(ctx context.Context, sku string) (*model.Variant, error) {
	if s.GetBySKUFn != nil {
		return s.GetBySKUFn(ctx, sku)
	}
	for _, v := range s.Items {
		if v.SKU == sku {
			return v, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *VariantRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Variant, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if v, ok := s.Items[id]; ok {
		return v, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *VariantRepositoryStub) ListByProduct(ctx context.Context, productID int64) ([]model.Variant, error) {
	if s.ListByProductFn != nil {
		return s.ListByProductFn(ctx, productID)
	}
	var out []model.Variant
	for _, v := range s.Items {
		if v.ProductID == productID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *VariantRepositoryStub) AdjustInventory(ctx context.Context, id int64, delta int) error {
	s.AdjustCalls = append(s.AdjustCalls, InventoryAdjustCall{VariantID: id, Delta: delta})
	if s.AdjustInventoryFn != nil {
		return s.AdjustInventoryFn(ctx, id, delta)
	}
	if v, ok := s.Items[id]; ok {
		if v.Inventory+delta < 0 {
			return domainErrors.ErrInsufficientStock
		}
		v.Inventory += delta
		return nil
	}
	return domainErrors.ErrNotFound
}

func (s *VariantRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	delete(s.Items, id)
	return nil
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	CreateFn           func(context.Context, *model.Order) (*model.Order, error)
	GetByCodeFn        func(context.Context, string) (*model.Order, error)
	ListByUserFn       func(context.Context, int64) ([]model.Order, error)
	UpdateStatusFn     func(context.Context, int64, model.OrderStatus) error
	MarkPaidFn         func(context.Context, int64, string) error
	CancelAndRestockFn func(context.Context, int64) (*repository.RestockResult, error)
	SelectExpiredFn    func(context.Context, time.Time, int) ([]model.Order, error)

	Orders      []model.Order
	Created     []model.Order
	StatusCalls []OrderStatusCall
	PaidCalls   []MarkPaidCall
	CancelCalls []int64
}

// OrderStatusCall records one UpdateStatus invocation.
type OrderStatusCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// MarkPaidCall records one MarkPaid invocation.
type MarkPaidCall struct {
	OrderID       int64
	TransactionID string
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.Created = append(s.Created, *order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	created := *order
	created.ID = int64(len(s.Created))
	return &created, nil
}

// GetByCode returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByCode(ctx context.Context, code string) (*model.Order, error) {
	if s.GetByCodeFn != nil {
		return s.GetByCodeFn(ctx, code)
	}
	for _, o := range s.Orders {
		if o.Code == code {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	s.StatusCalls = append(s.StatusCalls, OrderStatusCall{OrderID: orderID, Status: status})
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	return nil
}

// MarkPaid records payment resolutions.
func (s *OrderRepositoryStub) MarkPaid(ctx context.Context, orderID int64, transactionID string) error {
	s.PaidCalls = append(s.PaidCalls, MarkPaidCall{OrderID: orderID, TransactionID: transactionID})
	if s.MarkPaidFn != nil {
		return s.MarkPaidFn(ctx, orderID, transactionID)
	}
	return nil
}

// CancelAndRestock records cancellations and returns configured result.
func (s *OrderRepositoryStub) CancelAndRestock(ctx context.Context, orderID int64) (*repository.RestockResult, error) {
	s.CancelCalls = append(s.CancelCalls, orderID)
	if s.CancelAndRestockFn != nil {
		return s.CancelAndRestockFn(ctx, orderID)
	}
	return &repository.RestockResult{
		Order: &model.Order{
			ID:            orderID,
			Status:        model.OrderStatusCancelled,
			PaymentStatus: model.PaymentStatusFailed,
		},
	}, nil
}

// SelectExpired returns configured stale orders.
func (s *OrderRepositoryStub) SelectExpired(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	if s.SelectExpiredFn != nil {
		return s.SelectExpiredFn(ctx, cutoff, limit)
	}
	return s.Orders, nil
}

// CartRepositoryStub keeps carts in-memory for tests.
type CartRepositoryStub struct {
	GetFn         func(context.Context, int64) (*model.Cart, error)
	MergeFn       func(context.Context, int64, model.CartItem) error
	SetQuantityFn func(context.Context, int64, int64, int) error
	RemoveFn      func(context.Context, int64, int64) error
	ClearFn       func(context.Context, int64) error
	Carts         map[int64]*model.Cart
	ClearCalls    []int64
}

// NewCartRepositoryStub constructs stub with initialized map.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Carts: make(map[int64]*model.Cart)}
}

func (s *CartRepositoryStub) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID)
	}
	if cart, ok := s.Carts[userID]; ok {
		return cart, nil
	}
	return &model.Cart{UserID: userID}, nil
}

func (s *CartRepositoryStub) Merge(ctx context.Context, userID int64, item model.CartItem) error {
	if s.MergeFn != nil {
		return s.MergeFn(ctx, userID, item)
	}
	if s.Carts == nil {
		s.Carts = make(map[int64]*model.Cart)
	}
	cart, ok := s.Carts[userID]
	if !ok {
		cart = &model.Cart{UserID: userID}
		s.Carts[userID] = cart
	}
	cart.Merge(item)
	return nil
}

func (s *CartRepositoryStub) SetQuantity(ctx context.Context, userID, variantID int64, quantity int) error {
	if s.SetQuantityFn != nil {
		return s.SetQuantityFn(ctx, userID, variantID, quantity)
	}
	cart, ok := s.Carts[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].VariantID == variantID {
			cart.Items[i].Quantity = quantity
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *CartRepositoryStub) Remove(ctx context.Context, userID, variantID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, variantID)
	}
	cart, ok := s.Carts[userID]
	if !ok {
		return nil
	}
	for i := range cart.Items {
		if cart.Items[i].VariantID == variantID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	s.ClearCalls = append(s.ClearCalls, userID)
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	delete(s.Carts, userID)
	return nil
}

// StatsRepositoryStub returns configured aggregates.
type StatsRepositoryStub struct {
	OrderCountFn    func(context.Context, time.Time, time.Time) (int64, error)
	RevenueFn       func(context.Context, time.Time, time.Time) (decimal.Decimal, error)
	UnitsSoldFn     func(context.Context, time.Time, time.Time) (int64, error)
	PendingOrdersFn func(context.Context) (int64, error)

	Count   int64
	Total   decimal.Decimal
	Units   int64
	Pending int64
	Err     error
}

func (s *StatsRepositoryStub) OrderCount(ctx context.Context, from, to time.Time) (int64, error) {
	if s.OrderCountFn != nil {
		return s.OrderCountFn(ctx, from, to)
	}
	return s.Count, s.Err
}

func (s *StatsRepositoryStub) Revenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	if s.RevenueFn != nil {
		return s.RevenueFn(ctx, from, to)
	}
	return s.Total, s.Err
}

func (s *StatsRepositoryStub) UnitsSold(ctx context.Context, from, to time.Time) (int64, error) {
	if s.UnitsSoldFn != nil {
		return s.UnitsSoldFn(ctx, from, to)
	}
	return s.Units, s.Err
}

func (s *StatsRepositoryStub) PendingOrders(ctx context.Context) (int64, error) {
	if s.PendingOrdersFn != nil {
		return s.PendingOrdersFn(ctx)
	}
	return s.Pending, s.Err
}
