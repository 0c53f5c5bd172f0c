package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sellaro/storefront/internal/domain/model"
	testhelpers "github.com/sellaro/storefront/internal/test"
)

func TestNewOrderExpirerDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	exp := NewOrderExpirer(&testhelpers.WorkerFacadeStub{}, time.Minute, time.Second, 0, 0, logger)
	if exp.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", exp.batchSize)
	}
	if exp.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", exp.workers)
	}
}

func TestOrderExpirerCancelsStaleOrders(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.WorkerFacadeStub{Batches: [][]model.Order{{
		{ID: 1, Code: "ORD-1", Status: model.OrderStatusNew, PaymentStatus: model.PaymentStatusPending},
		{ID: 2, Code: "ORD-2", Status: model.OrderStatusNew, PaymentStatus: model.PaymentStatusPending},
	}}}
	exp := NewOrderExpirer(facade, time.Minute, 10*time.Millisecond, 2, 2, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	exp.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		done := len(facade.Expired) == 2
		facade.Unlock()
		if done {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for expiration")
		case <-time.After(10 * time.Millisecond):
		}
	}

	exp.Stop()
	facade.Lock()
	defer facade.Unlock()
	codes := map[string]bool{}
	for _, order := range facade.Expired {
		codes[order.Code] = true
	}
	if !codes["ORD-1"] || !codes["ORD-2"] {
		t.Fatalf("expected both orders expired, got %v", codes)
	}
}

func TestOrderExpirerSurvivesFetchErrors(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	attempts := int32(0)
	facade := &testhelpers.WorkerFacadeStub{
		OrdersFn: func(context.Context, time.Duration, int) ([]model.Order, error) {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return nil, errors.New("db unavailable")
			}
			return []model.Order{{ID: 1, Code: "ORD-1"}}, nil
		},
	}
	facade.ExpireFn = func(_ context.Context, order model.Order) error {
		facade.Lock()
		defer facade.Unlock()
		facade.Expired = append(facade.Expired, order)
		return nil
	}

	exp := NewOrderExpirer(facade, time.Minute, 5*time.Millisecond, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	exp.Start(ctx)

	deadline := time.After(time.Second)
	for {
		facade.Lock()
		done := len(facade.Expired) > 0
		facade.Unlock()
		if done {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for recovery after fetch error")
		case <-time.After(10 * time.Millisecond):
		}
	}
	exp.Stop()
}

func TestOrderExpirerStopIsIdempotent(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	exp := NewOrderExpirer(&testhelpers.WorkerFacadeStub{}, time.Minute, 10*time.Millisecond, 1, 1, logger)

	ctx := context.Background()
	exp.Start(ctx)
	exp.Stop()
	exp.Stop()
}
