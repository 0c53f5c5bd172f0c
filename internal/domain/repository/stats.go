package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StatsRepository computes reporting aggregates over orders.
type StatsRepository interface {
	OrderCount(ctx context.Context, from, to time.Time) (int64, error)
	Revenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	UnitsSold(ctx context.Context, from, to time.Time) (int64, error)
	PendingOrders(ctx context.Context) (int64, error)
}
