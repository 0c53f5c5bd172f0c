package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sellaro/storefront/internal/cache"
	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
	"github.com/sellaro/storefront/internal/domain/repository"
	"github.com/sellaro/storefront/internal/events"
)

// NotificationVerifier checks provider signatures on payment callbacks.
type NotificationVerifier interface {
	VerifyNotification(n model.PaymentNotification) bool
}

// PaymentUseCase processes asynchronous payment notifications.
type PaymentUseCase struct {
	orders    repository.OrderRepository
	verifier  NotificationVerifier
	cache     cache.Cache
	publisher events.Publisher
	logger    *slog.Logger
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(orders repository.OrderRepository, verifier NotificationVerifier, c cache.Cache, publisher events.Publisher, logger *slog.Logger) *PaymentUseCase {
	return &PaymentUseCase{orders: orders, verifier: verifier, cache: c, publisher: publisher, logger: logger}
}

// ProcessNotification applies a provider payment result to the order.
//
// Returned errors map onto the webhook contract: ErrBadSignature means
// the payload must be rejected with no state change, ErrNotFound means
// the order is unknown, and ErrAlreadyResolved means a duplicate
// delivery that was acknowledged without changes. Failures while
// applying the result are logged and NOT returned — the webhook must
// still acknowledge so the provider stops redelivering.
func (u *PaymentUseCase) ProcessNotification(ctx context.Context, n model.PaymentNotification) error {
	if !u.verifier.VerifyNotification(n) {
		return domainErrors.ErrBadSignature
	}

	if n.RequestID != "" {
		seen, err := u.cache.MarkNotification(ctx, n.RequestID)
		if err != nil {
			u.logger.Warn("notification dedup unavailable", slog.String("error", err.Error()))
		} else if seen {
			u.logger.Info("duplicate notification dropped",
				slog.String("order", n.OrderCode), slog.String("request_id", n.RequestID))
			return domainErrors.ErrAlreadyResolved
		}
	}

	order, err := u.orders.GetByCode(ctx, n.OrderCode)
	if err != nil {
		return err
	}

	if order.PaymentStatus != model.PaymentStatusPending {
		u.logger.Info("notification for already resolved order",
			slog.String("order", order.Code),
			slog.Int("payment_status", int(order.PaymentStatus)),
		)
		return domainErrors.ErrAlreadyResolved
	}

	if n.Succeeded() {
		u.applyPaid(ctx, order, n.TransactionID)
	} else {
		u.applyFailed(ctx, order, n.ResultCode)
	}
	return nil
}

func (u *PaymentUseCase) applyPaid(ctx context.Context, order *model.Order, transactionID string) {
	if err := u.orders.MarkPaid(ctx, order.ID, transactionID); err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyResolved) {
			u.logger.Info("payment already resolved concurrently", slog.String("order", order.Code))
			return
		}
		u.logger.Error("mark order paid failed",
			slog.String("order", order.Code), slog.String("error", err.Error()))
		return
	}

	order.Status = model.OrderStatusProcessing
	order.PaymentStatus = model.PaymentStatusPaid
	order.TransactionID = transactionID

	if err := u.cache.SetOrderStatus(ctx, order.Code, order.Status, order.PaymentStatus); err != nil {
		u.logger.Warn("cache order status failed", slog.String("error", err.Error()))
	}
	if err := u.publisher.Publish(ctx, events.TypeOrderPaid, events.FromOrder(order)); err != nil {
		u.logger.Warn("publish order paid failed",
			slog.String("order", order.Code), slog.String("error", err.Error()))
	}

	u.logger.Info("order paid",
		slog.String("order", order.Code), slog.String("transaction_id", transactionID))
}

func (u *PaymentUseCase) applyFailed(ctx context.Context, order *model.Order, resultCode int) {
	result, err := u.orders.CancelAndRestock(ctx, order.ID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyResolved) {
			u.logger.Info("payment already resolved concurrently", slog.String("order", order.Code))
			return
		}
		u.logger.Error("cancel and restock failed",
			slog.String("order", order.Code), slog.String("error", err.Error()))
		return
	}

	if err := u.cache.SetOrderStatus(ctx, order.Code, result.Order.Status, result.Order.PaymentStatus); err != nil {
		u.logger.Warn("cache order status failed", slog.String("error", err.Error()))
	}

	payload := events.FromOrder(result.Order)
	payload.RestoredUnits = result.RestoredUnits
	if err := u.publisher.Publish(ctx, events.TypeOrderCancelled, payload); err != nil {
		u.logger.Warn("publish order cancelled failed",
			slog.String("order", order.Code), slog.String("error", err.Error()))
	}

	u.logger.Info("payment failed, inventory restored",
		slog.String("order", order.Code),
		slog.Int("result_code", resultCode),
		slog.Int("restored_units", result.RestoredUnits),
		slog.Int("missing_variants", len(result.MissingVariants)),
	)
}
