package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sellaro/storefront/internal/domain/model"
)

// StoreFacade exposes the subset of application functionality required by the worker.
type StoreFacade interface {
	ExpiredOrders(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error)
	ExpireOrder(ctx context.Context, order model.Order) error
}

// OrderExpirer periodically cancels orders whose payment never arrived,
// returning their reserved stock to inventory.
type OrderExpirer struct {
	facade       StoreFacade
	maxAge       time.Duration
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOrderExpirer constructs the expiration worker pool.
func NewOrderExpirer(facade StoreFacade, maxAge, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *OrderExpirer {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &OrderExpirer{
		facade:       facade,
		maxAge:       maxAge,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (p *OrderExpirer) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *OrderExpirer) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *OrderExpirer) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *OrderExpirer) fetchAndDispatch(ctx context.Context) {
	orders, err := p.facade.ExpiredOrders(ctx, p.maxAge, p.batchSize)
	if err != nil {
		p.logger.Error("fetch expired orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- order:
		}
	}
}

func (p *OrderExpirer) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-p.jobs:
			if !ok {
				return
			}
			if err := p.facade.ExpireOrder(ctx, order); err != nil {
				p.logger.Error("expire order failed",
					slog.String("order", order.Code),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
