package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
	"github.com/sellaro/storefront/internal/domain/repository"
	"github.com/sellaro/storefront/internal/events"
)

// OrderUseCase encapsulates checkout and order lifecycle logic.
type OrderUseCase struct {
	orders    repository.OrderRepository
	carts     repository.CartRepository
	variants  repository.VariantRepository
	publisher events.Publisher
	logger    *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, carts repository.CartRepository, variants repository.VariantRepository, publisher events.Publisher, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, carts: carts, variants: variants, publisher: publisher, logger: logger}
}

func generateOrderCode() string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("ORD-%d-%s", time.Now().Unix(), suffix)
}

// Checkout turns the user's cart into an order: line prices are
// snapshotted from current variant prices and stock is reserved in the
// same transaction that creates the order. The cart is cleared only
// after the order is persisted.
func (u *OrderUseCase) Checkout(ctx context.Context, userID int64, shippingAddress string) (*model.Order, error) {
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	order := &model.Order{
		Code:            generateOrderCode(),
		UserID:          userID,
		ShippingAddress: shippingAddress,
		Amount:          decimal.Zero,
	}

	for _, item := range cart.Items {
		variant, err := u.variants.GetByID(ctx, item.VariantID)
		if err != nil {
			return nil, err
		}
		lineAmount := variant.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		order.Variants = append(order.Variants, model.OrderVariant{
			VariantID:  variant.ID,
			SKU:        variant.SKU,
			UnitPrice:  variant.Price,
			Quantity:   item.Quantity,
			LineAmount: lineAmount,
		})
		order.Amount = order.Amount.Add(lineAmount)
	}

	order, err = u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := u.carts.Clear(ctx, userID); err != nil {
		u.logger.Warn("clear cart after checkout failed",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}

	if err := u.publisher.Publish(ctx, events.TypeOrderCreated, events.FromOrder(order)); err != nil {
		u.logger.Warn("publish order created failed",
			slog.String("order", order.Code), slog.String("error", err.Error()))
	}

	return order, nil
}

// GetByCode returns the order for its owner; admins may read any order.
func (u *OrderUseCase) GetByCode(ctx context.Context, code string, userID int64, admin bool) (*model.Order, error) {
	order, err := u.orders.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !admin && order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// UpdateStatus moves an order between fulfilment states; transitions to
// cancelled go through Cancel so inventory is restored.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, code string, status model.OrderStatus) error {
	order, err := u.orders.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if !order.Status.CanTransition(status) {
		return domainErrors.ErrIllegalTransition
	}
	if status == model.OrderStatusCancelled {
		_, err := u.Cancel(ctx, code)
		return err
	}
	return u.orders.UpdateStatus(ctx, order.ID, status)
}

// Cancel cancels the order and restores its reserved stock. The
// restoration is gated on the payment still being pending, so a
// concurrent payment notification cannot race it into a double restore.
func (u *OrderUseCase) Cancel(ctx context.Context, code string) (*repository.RestockResult, error) {
	order, err := u.orders.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	// Only unpaid orders are cancellable; a paid order needs a refund
	// first, which this service does not perform.
	if order.PaymentStatus == model.PaymentStatusPaid {
		return nil, domainErrors.ErrIllegalTransition
	}

	result, err := u.orders.CancelAndRestock(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	payload := events.FromOrder(result.Order)
	payload.RestoredUnits = result.RestoredUnits
	if err := u.publisher.Publish(ctx, events.TypeOrderCancelled, payload); err != nil {
		u.logger.Warn("publish order cancelled failed",
			slog.String("order", code), slog.String("error", err.Error()))
	}

	return result, nil
}

// SelectExpired returns pending unpaid orders older than the duration.
func (u *OrderUseCase) SelectExpired(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	cutoff := time.Now().Add(-olderThan)
	return u.orders.SelectExpired(ctx, cutoff, limit)
}

// ExpireOrder cancels one stale unpaid order and restores its stock.
// An order resolved between the sweep select and the cancel is skipped
// silently: the restock gate already rejected it.
func (u *OrderUseCase) ExpireOrder(ctx context.Context, order model.Order) error {
	result, err := u.orders.CancelAndRestock(ctx, order.ID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyResolved) {
			return nil
		}
		return err
	}

	u.logger.Info("stale order expired",
		slog.String("order", order.Code),
		slog.Int("restored_units", result.RestoredUnits),
	)

	payload := events.FromOrder(result.Order)
	payload.RestoredUnits = result.RestoredUnits
	if err := u.publisher.Publish(ctx, events.TypeOrderCancelled, payload); err != nil {
		u.logger.Warn("publish order cancelled failed",
			slog.String("order", order.Code), slog.String("error", err.Error()))
	}
	return nil
}
