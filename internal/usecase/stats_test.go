package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	testhelpers "github.com/sellaro/storefront/internal/test"
)

func TestStatsSummary(t *testing.T) {
	stats := &testhelpers.StatsRepositoryStub{
		Count:   12,
		Total:   decimal.NewFromInt(340),
		Units:   27,
		Pending: 3,
	}
	uc := NewStatsUseCase(stats)

	summary, err := uc.Summary(context.Background(), time.Now().Add(-24*time.Hour), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.OrderCount != 12 || summary.UnitsSold != 27 || summary.PendingOrders != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if !summary.Revenue.Equal(decimal.NewFromInt(340)) {
		t.Fatalf("unexpected revenue: %s", summary.Revenue)
	}
}

func TestStatsSummaryPropagatesError(t *testing.T) {
	stats := &testhelpers.StatsRepositoryStub{Err: errors.New("query failed")}
	uc := NewStatsUseCase(stats)

	if _, err := uc.Summary(context.Background(), time.Now().Add(-time.Hour), time.Now()); err == nil {
		t.Fatal("expected error")
	}
}
