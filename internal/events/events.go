package events

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sellaro/storefront/internal/domain/model"
)

// Event types published on the order lifecycle topic.
const (
	TypeOrderCreated   = "order.created"
	TypeOrderPaid      = "order.paid"
	TypeOrderCancelled = "order.cancelled"
)

// Envelope wraps every published event with routing metadata.
type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	Payload      json.RawMessage `json:"payload"`
}

// OrderEvent is the payload for all order lifecycle events.
type OrderEvent struct {
	OrderCode     string          `json:"order_code"`
	UserID        int64           `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        int             `json:"status"`
	PaymentStatus int             `json:"payment_status"`
	RestoredUnits int             `json:"restored_units,omitempty"`
}

// FromOrder builds the event payload for an order snapshot.
func FromOrder(o *model.Order) OrderEvent {
	return OrderEvent{
		OrderCode:     o.Code,
		UserID:        o.UserID,
		Amount:        o.Amount,
		Status:        int(o.Status),
		PaymentStatus: int(o.PaymentStatus),
	}
}
