package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sellaro/storefront/internal/domain/model"
)

func (r *statsRepository) OrderCount(ctx context.Context, from, to time.Time) (int64, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE created_at >= $1 AND created_at < $2 AND payment_status=$3`
	var n int64
	err := r.storage.pool.QueryRow(ctx, query, from, to, model.PaymentStatusPaid).Scan(&n)
	return n, err
}

func (r *statsRepository) Revenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM orders
                   WHERE created_at >= $1 AND created_at < $2 AND payment_status=$3`
	var sum decimal.Decimal
	err := r.storage.pool.QueryRow(ctx, query, from, to, model.PaymentStatusPaid).Scan(&sum)
	return sum, err
}

func (r *statsRepository) UnitsSold(ctx context.Context, from, to time.Time) (int64, error) {
	const query = `SELECT COALESCE(SUM(ov.quantity), 0)
                   FROM order_variants ov
                   JOIN orders o ON o.id = ov.order_id
                   WHERE o.created_at >= $1 AND o.created_at < $2 AND o.payment_status=$3`
	var n int64
	err := r.storage.pool.QueryRow(ctx, query, from, to, model.PaymentStatusPaid).Scan(&n)
	return n, err
}

func (r *statsRepository) PendingOrders(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE payment_status=$1`
	var n int64
	err := r.storage.pool.QueryRow(ctx, query, model.PaymentStatusPending).Scan(&n)
	return n, err
}
