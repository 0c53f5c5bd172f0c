package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
)

func pendingOrder() *model.Order {
	return &model.Order{
		Code:            "ORD-1",
		UserID:          1,
		Amount:          decimal.NewFromInt(30),
		ShippingAddress: "10 Main St",
		Variants: []model.OrderVariant{
			{VariantID: 5, SKU: "SKU-5", UnitPrice: decimal.NewFromInt(10), Quantity: 2, LineAmount: decimal.NewFromInt(20)},
			{VariantID: 7, SKU: "SKU-7", UnitPrice: decimal.NewFromInt(10), Quantity: 1, LineAmount: decimal.NewFromInt(10)},
		},
	}
}

func TestOrderRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	now := time.Now()

	t.Run("reserves every line", func(t *testing.T) {
		order := pendingOrder()
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs("ORD-1", int64(1), model.OrderStatusNew, model.PaymentStatusPending, order.Amount, "10 Main St").
			WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))
		mock.ExpectExec("UPDATE variants SET inventory = inventory -").
			WithArgs(int64(5), 2).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
		mock.ExpectExec("INSERT INTO order_variants").
			WithArgs(int64(10), int64(5), "SKU-5", order.Variants[0].UnitPrice, 2, order.Variants[0].LineAmount).
			WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
		mock.ExpectExec("UPDATE variants SET inventory = inventory -").
			WithArgs(int64(7), 1).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
		mock.ExpectExec("INSERT INTO order_variants").
			WithArgs(int64(10), int64(7), "SKU-7", order.Variants[1].UnitPrice, 1, order.Variants[1].LineAmount).
			WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
		mock.ExpectCommit()

		created, err := repo.Create(context.Background(), order)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 10 || created.Status != model.OrderStatusNew || created.PaymentStatus != model.PaymentStatusPending {
			t.Fatalf("unexpected order: %+v", created)
		}
	})

	t.Run("insufficient stock aborts the whole order", func(t *testing.T) {
		order := pendingOrder()
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs("ORD-1", int64(1), model.OrderStatusNew, model.PaymentStatusPending, order.Amount, "10 Main St").
			WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))
		mock.ExpectExec("UPDATE variants SET inventory = inventory -").
			WithArgs(int64(5), 2).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		if _, err := repo.Create(context.Background(), order); !errors.Is(err, domainErrors.ErrInsufficientStock) {
			t.Fatalf("expected insufficient stock, got %v", err)
		}
	})

	t.Run("duplicate code", func(t *testing.T) {
		order := pendingOrder()
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs("ORD-1", int64(1), model.OrderStatusNew, model.PaymentStatusPending, order.Amount, "10 Main St").
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		if _, err := repo.Create(context.Background(), order); !errors.Is(err, domainErrors.ErrAlreadyExists) {
			t.Fatalf("expected already exists, got %v", err)
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryGetByCode(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	now := time.Now()
	amount := decimal.NewFromInt(30)
	mock.ExpectQuery("SELECT id, code, user_id, status, payment_status, amount, transaction_id, shipping_address, created_at, updated_at").
		WithArgs("ORD-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "code", "user_id", "status", "payment_status", "amount", "transaction_id", "shipping_address", "created_at", "updated_at"}).
			AddRow(int64(10), "ORD-1", int64(1), model.OrderStatusNew, model.PaymentStatusPending, amount, "", "10 Main St", now, now))
	mock.ExpectQuery("SELECT variant_id, sku, unit_price, quantity, line_amount").
		WithArgs(int64(10)).
		WillReturnRows(pgxmockv3.NewRows([]string{"variant_id", "sku", "unit_price", "quantity", "line_amount"}).
			AddRow(int64(5), "SKU-5", decimal.NewFromInt(10), 2, decimal.NewFromInt(20)))

	order, err := repo.GetByCode(context.Background(), "ORD-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Code != "ORD-1" || len(order.Variants) != 1 || order.Variants[0].Quantity != 2 {
		t.Fatalf("unexpected order: %+v", order)
	}

	mock.ExpectQuery("SELECT id, code, user_id, status, payment_status, amount, transaction_id, shipping_address, created_at, updated_at").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByCode(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryMarkPaid(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	t.Run("pending order resolves", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders").
			WithArgs(model.PaymentStatusPaid, model.OrderStatusProcessing, "tx-1", int64(10), model.PaymentStatusPending).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		if err := repo.MarkPaid(context.Background(), 10, "tx-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already resolved", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders").
			WithArgs(model.PaymentStatusPaid, model.OrderStatusProcessing, "tx-1", int64(10), model.PaymentStatusPending).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
		mock.ExpectQuery("SELECT payment_status FROM orders WHERE id=").
			WithArgs(int64(10)).
			WillReturnRows(pgxmockv3.NewRows([]string{"payment_status"}).AddRow(model.PaymentStatusPaid))
		mock.ExpectRollback()

		if err := repo.MarkPaid(context.Background(), 10, "tx-1"); !errors.Is(err, domainErrors.ErrAlreadyResolved) {
			t.Fatalf("expected already resolved, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders").
			WithArgs(model.PaymentStatusPaid, model.OrderStatusProcessing, "tx-1", int64(99), model.PaymentStatusPending).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
		mock.ExpectQuery("SELECT payment_status FROM orders WHERE id=").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		if err := repo.MarkPaid(context.Background(), 99, "tx-1"); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func expectCancelRow(mock pgxmockv3.PgxPoolIface, orderID int64) {
	now := time.Now()
	mock.ExpectQuery("UPDATE orders").
		WithArgs(model.OrderStatusCancelled, model.PaymentStatusFailed, orderID, model.PaymentStatusPending).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "code", "user_id", "status", "payment_status", "amount", "created_at", "updated_at"}).
			AddRow(orderID, "ORD-1", int64(1), model.OrderStatusCancelled, model.PaymentStatusFailed, decimal.NewFromInt(30), now, now))
}

func TestCancelAndRestock(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	t.Run("restores every purchased quantity", func(t *testing.T) {
		mock.ExpectBegin()
		expectCancelRow(mock, 10)
		mock.ExpectQuery("SELECT variant_id, quantity FROM order_variants").
			WithArgs(int64(10)).
			WillReturnRows(pgxmockv3.NewRows([]string{"variant_id", "quantity"}).
				AddRow(int64(5), 2).
				AddRow(int64(7), 3))
		mock.ExpectExec("UPDATE variants SET inventory = inventory").
			WithArgs(int64(5), 2).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
		mock.ExpectExec("UPDATE variants SET inventory = inventory").
			WithArgs(int64(7), 3).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		result, err := repo.CancelAndRestock(context.Background(), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.RestoredUnits != 5 {
			t.Fatalf("expected 5 restored units, got %d", result.RestoredUnits)
		}
		if len(result.MissingVariants) != 0 {
			t.Fatalf("expected no missing variants, got %v", result.MissingVariants)
		}
		if result.Order.Status != model.OrderStatusCancelled || result.Order.PaymentStatus != model.PaymentStatusFailed {
			t.Fatalf("unexpected order state: %+v", result.Order)
		}
	})

	t.Run("missing variant is skipped, the rest restored", func(t *testing.T) {
		mock.ExpectBegin()
		expectCancelRow(mock, 10)
		mock.ExpectQuery("SELECT variant_id, quantity FROM order_variants").
			WithArgs(int64(10)).
			WillReturnRows(pgxmockv3.NewRows([]string{"variant_id", "quantity"}).
				AddRow(int64(5), 2).
				AddRow(int64(666), 4).
				AddRow(int64(7), 3))
		mock.ExpectExec("UPDATE variants SET inventory = inventory").
			WithArgs(int64(5), 2).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
		mock.ExpectExec("UPDATE variants SET inventory = inventory").
			WithArgs(int64(666), 4).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
		mock.ExpectExec("UPDATE variants SET inventory = inventory").
			WithArgs(int64(7), 3).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		result, err := repo.CancelAndRestock(context.Background(), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.RestoredUnits != 5 {
			t.Fatalf("expected 5 restored units, got %d", result.RestoredUnits)
		}
		if len(result.MissingVariants) != 1 || result.MissingVariants[0] != 666 {
			t.Fatalf("unexpected missing variants: %v", result.MissingVariants)
		}
	})

	t.Run("second invocation changes nothing", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE orders").
			WithArgs(model.OrderStatusCancelled, model.PaymentStatusFailed, int64(10), model.PaymentStatusPending).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery("SELECT payment_status FROM orders WHERE id=").
			WithArgs(int64(10)).
			WillReturnRows(pgxmockv3.NewRows([]string{"payment_status"}).AddRow(model.PaymentStatusFailed))
		mock.ExpectRollback()

		if _, err := repo.CancelAndRestock(context.Background(), 10); !errors.Is(err, domainErrors.ErrAlreadyResolved) {
			t.Fatalf("expected already resolved, got %v", err)
		}
	})

	t.Run("unknown order aborts with not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE orders").
			WithArgs(model.OrderStatusCancelled, model.PaymentStatusFailed, int64(99), model.PaymentStatusPending).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery("SELECT payment_status FROM orders WHERE id=").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		if _, err := repo.CancelAndRestock(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("order without line items rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		expectCancelRow(mock, 10)
		mock.ExpectQuery("SELECT variant_id, quantity FROM order_variants").
			WithArgs(int64(10)).
			WillReturnRows(pgxmockv3.NewRows([]string{"variant_id", "quantity"}))
		mock.ExpectRollback()

		if _, err := repo.CancelAndRestock(context.Background(), 10); !errors.Is(err, domainErrors.ErrNoLineItems) {
			t.Fatalf("expected no line items error, got %v", err)
		}
	})

	t.Run("restock failure rolls back the cancellation", func(t *testing.T) {
		mock.ExpectBegin()
		expectCancelRow(mock, 10)
		mock.ExpectQuery("SELECT variant_id, quantity FROM order_variants").
			WithArgs(int64(10)).
			WillReturnRows(pgxmockv3.NewRows([]string{"variant_id", "quantity"}).AddRow(int64(5), 2))
		mock.ExpectExec("UPDATE variants SET inventory = inventory").
			WithArgs(int64(5), 2).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		if _, err := repo.CancelAndRestock(context.Background(), 10); err == nil {
			t.Fatal("expected error")
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSelectExpired(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	cutoff := time.Now().Add(-time.Hour)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE SKIP LOCKED").
		WithArgs(model.PaymentStatusPending, cutoff, 10).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "code", "user_id", "status", "payment_status", "amount", "created_at", "updated_at"}).
			AddRow(int64(1), "ORD-1", int64(1), model.OrderStatusNew, model.PaymentStatusPending, decimal.NewFromInt(10), now, now))
	mock.ExpectCommit()

	orders, err := repo.SelectExpired(context.Background(), cutoff, 10)
	if err != nil || len(orders) != 1 || orders[0].Code != "ORD-1" {
		t.Fatalf("unexpected result: %+v err=%v", orders, err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE SKIP LOCKED").
		WithArgs(model.PaymentStatusPending, cutoff, 10).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()
	if _, err := repo.SelectExpired(context.Background(), cutoff, 10); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	mock.ExpectExec("UPDATE orders SET status=").
		WithArgs(model.OrderStatusShipping, int64(10)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.UpdateStatus(context.Background(), 10, model.OrderStatusShipping); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE orders SET status=").
		WithArgs(model.OrderStatusShipping, int64(99)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.UpdateStatus(context.Background(), 99, model.OrderStatusShipping); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
