package repository

import (
	"context"
	"time"

	"github.com/sellaro/storefront/internal/domain/model"
)

// RestockResult reports the outcome of a cancel-and-restock run.
type RestockResult struct {
	Order           *model.Order
	RestoredUnits   int
	MissingVariants []int64
}

// OrderRepository describes persistence operations with orders and their
// embedded line items.
type OrderRepository interface {
	// Create inserts the order with its line items and decrements each
	// variant's inventory in the same transaction. Returns
	// ErrInsufficientStock when any line cannot be reserved.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)

	GetByCode(ctx context.Context, code string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)

	// UpdateStatus moves the order between fulfilment states.
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	// MarkPaid resolves a pending payment: payment status becomes paid
	// and the order moves to processing, recording the provider
	// transaction id. Returns ErrAlreadyResolved when the payment is no
	// longer pending and ErrNotFound when the order does not exist.
	MarkPaid(ctx context.Context, orderID int64, transactionID string) error

	// CancelAndRestock cancels the order and returns every purchased
	// quantity to its variant's inventory as one atomic unit. The
	// pending-to-failed payment transition is the gate: an order whose
	// payment is already resolved yields ErrAlreadyResolved and no
	// inventory change, so the operation is safe to invoke twice.
	CancelAndRestock(ctx context.Context, orderID int64) (*RestockResult, error)

	// SelectExpired returns pending unpaid orders created before the
	// cutoff, locking them against concurrent pickers.
	SelectExpired(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
}
