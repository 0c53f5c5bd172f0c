package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
	"github.com/sellaro/storefront/internal/domain/repository"
)

// Create inserts the order and its line items, reserving stock for each
// line inside one transaction. A line whose variant lacks stock aborts
// the whole order.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (code, user_id, status, payment_status, amount, shipping_address)
                             VALUES ($1, $2, $3, $4, $5, $6)
                             RETURNING id, created_at, updated_at`
		err := tx.QueryRow(ctx, insertOrder,
			order.Code, order.UserID, model.OrderStatusNew, model.PaymentStatusPending,
			order.Amount, order.ShippingAddress,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}
		order.Status = model.OrderStatusNew
		order.PaymentStatus = model.PaymentStatusPending

		for i := range order.Variants {
			line := &order.Variants[i]

			const reserve = `UPDATE variants SET inventory = inventory - $2, updated_at = NOW()
                             WHERE id = $1 AND inventory >= $2`
			tag, err := tx.Exec(ctx, reserve, line.VariantID, line.Quantity)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrInsufficientStock
			}

			const insertLine = `INSERT INTO order_variants (order_id, variant_id, sku, unit_price, quantity, line_amount)
                                VALUES ($1, $2, $3, $4, $5, $6)`
			if _, err := tx.Exec(ctx, insertLine,
				order.ID, line.VariantID, line.SKU, line.UnitPrice, line.Quantity, line.LineAmount,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByCode(ctx context.Context, code string) (*model.Order, error) {
	const query = `SELECT id, code, user_id, status, payment_status, amount, transaction_id, shipping_address, created_at, updated_at
                   FROM orders WHERE code=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, code).Scan(
		&o.ID, &o.Code, &o.UserID, &o.Status, &o.PaymentStatus, &o.Amount,
		&o.TransactionID, &o.ShippingAddress, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	lines, err := r.lineItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Variants = lines
	return &o, nil
}

func (r *orderRepository) lineItems(ctx context.Context, orderID int64) ([]model.OrderVariant, error) {
	const query = `SELECT variant_id, sku, unit_price, quantity, line_amount
                   FROM order_variants WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderVariant
	for rows.Next() {
		var v model.OrderVariant
		if err := rows.Scan(&v.VariantID, &v.SKU, &v.UnitPrice, &v.Quantity, &v.LineAmount); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT id, code, user_id, status, payment_status, amount, transaction_id, shipping_address, created_at, updated_at
                   FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID, &o.Code, &o.UserID, &o.Status, &o.PaymentStatus, &o.Amount,
			&o.TransactionID, &o.ShippingAddress, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// MarkPaid resolves a pending payment with a compare-and-swap on the
// payment status, so a redelivered notification cannot apply twice.
func (r *orderRepository) MarkPaid(ctx context.Context, orderID int64, transactionID string) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `UPDATE orders
                       SET payment_status=$1, status=$2, transaction_id=$3, updated_at=NOW()
                       WHERE id=$4 AND payment_status=$5`
		tag, err := tx.Exec(ctx, query,
			model.PaymentStatusPaid, model.OrderStatusProcessing, transactionID,
			orderID, model.PaymentStatusPending,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return r.resolveMissedUpdate(ctx, tx, orderID)
		}
		return nil
	})
}

// CancelAndRestock cancels the order and returns each purchased quantity
// to its variant's inventory. The whole routine is one transaction: the
// pending-to-failed payment transition gates it, so only the first
// invocation for an order restores stock; later ones see
// ErrAlreadyResolved and change nothing. A line item whose variant has
// disappeared is logged and skipped without aborting the rest.
func (r *orderRepository) CancelAndRestock(ctx context.Context, orderID int64) (*repository.RestockResult, error) {
	result := &repository.RestockResult{}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const cancel = `UPDATE orders
                        SET status=$1, payment_status=$2, updated_at=NOW()
                        WHERE id=$3 AND payment_status=$4
                        RETURNING id, code, user_id, status, payment_status, amount, created_at, updated_at`
		var o model.Order
		err := tx.QueryRow(ctx, cancel,
			model.OrderStatusCancelled, model.PaymentStatusFailed,
			orderID, model.PaymentStatusPending,
		).Scan(&o.ID, &o.Code, &o.UserID, &o.Status, &o.PaymentStatus, &o.Amount, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return r.resolveMissedUpdate(ctx, tx, orderID)
			}
			return err
		}

		const lines = `SELECT variant_id, quantity FROM order_variants WHERE order_id=$1 ORDER BY id`
		rows, err := tx.Query(ctx, lines, orderID)
		if err != nil {
			return err
		}
		defer rows.Close()

		type lineItem struct {
			variantID int64
			quantity  int
		}
		var items []lineItem
		for rows.Next() {
			var it lineItem
			if err := rows.Scan(&it.variantID, &it.quantity); err != nil {
				return err
			}
			items = append(items, it)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		if len(items) == 0 {
			return domainErrors.ErrNoLineItems
		}

		for _, it := range items {
			const restock = `UPDATE variants SET inventory = inventory + $2, updated_at = NOW() WHERE id = $1`
			tag, err := tx.Exec(ctx, restock, it.variantID, it.quantity)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				r.storage.logger.Warn("variant missing during restock",
					slog.Int64("order_id", orderID),
					slog.Int64("variant_id", it.variantID),
					slog.Int("quantity", it.quantity),
				)
				result.MissingVariants = append(result.MissingVariants, it.variantID)
				continue
			}
			result.RestoredUnits += it.quantity
		}

		result.Order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveMissedUpdate classifies a zero-row compare-and-swap: the order
// either does not exist or its payment was already resolved.
func (r *orderRepository) resolveMissedUpdate(ctx context.Context, tx pgx.Tx, orderID int64) error {
	const query = `SELECT payment_status FROM orders WHERE id=$1`
	var status model.PaymentStatus
	if err := tx.QueryRow(ctx, query, orderID).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return domainErrors.ErrAlreadyResolved
}

func (r *orderRepository) SelectExpired(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	const query = `SELECT id, code, user_id, status, payment_status, amount, created_at, updated_at
                   FROM orders
                   WHERE payment_status=$1 AND created_at < $2
                   ORDER BY created_at
                   LIMIT $3
                   FOR UPDATE SKIP LOCKED`

	var orders []model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, model.PaymentStatusPending, cutoff, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var o model.Order
			if err := rows.Scan(&o.ID, &o.Code, &o.UserID, &o.Status, &o.PaymentStatus, &o.Amount, &o.CreatedAt, &o.UpdatedAt); err != nil {
				return err
			}
			orders = append(orders, o)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}
