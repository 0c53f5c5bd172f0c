package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sellaro/storefront/internal/domain/model"
	"github.com/sellaro/storefront/internal/domain/repository"
)

// StatsUseCase computes reporting aggregates.
type StatsUseCase struct {
	stats repository.StatsRepository
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(stats repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{stats: stats}
}

// Summary gathers the period's aggregates; the independent queries run
// concurrently.
func (u *StatsUseCase) Summary(ctx context.Context, from, to time.Time) (*model.SalesSummary, error) {
	summary := &model.SalesSummary{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := u.stats.OrderCount(gctx, from, to)
		summary.OrderCount = n
		return err
	})
	g.Go(func() error {
		sum, err := u.stats.Revenue(gctx, from, to)
		summary.Revenue = sum
		return err
	})
	g.Go(func() error {
		n, err := u.stats.UnitsSold(gctx, from, to)
		summary.UnitsSold = n
		return err
	})
	g.Go(func() error {
		n, err := u.stats.PendingOrders(gctx)
		summary.PendingOrders = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}
