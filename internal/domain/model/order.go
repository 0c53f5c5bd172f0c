package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes order fulfilment lifecycle. Values are persisted
// as integers and exposed on the wire unchanged.
type OrderStatus int

const (
	OrderStatusNew        OrderStatus = 1
	OrderStatusProcessing OrderStatus = 2
	OrderStatusShipping   OrderStatus = 3
	OrderStatusDelivered  OrderStatus = 4
	OrderStatusCancelled  OrderStatus = 5
)

// Terminal reports whether no further status transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransition reports whether moving to the given status is legal.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	switch to {
	case OrderStatusProcessing:
		return s == OrderStatusNew
	case OrderStatusShipping:
		return s == OrderStatusProcessing
	case OrderStatusDelivered:
		return s == OrderStatusShipping
	case OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus describes payment resolution of an order.
type PaymentStatus int

const (
	PaymentStatusPending PaymentStatus = 1
	PaymentStatusPaid    PaymentStatus = 2
	PaymentStatusFailed  PaymentStatus = 3
)

// OrderVariant is one purchased line item embedded in an order. Price
// fields are snapshots taken at checkout time.
type OrderVariant struct {
	VariantID  int64
	SKU        string
	UnitPrice  decimal.Decimal
	Quantity   int
	LineAmount decimal.Decimal
}

// CheckoutResult pairs the created order with the provider redirect.
type CheckoutResult struct {
	Order  *Order
	PayURL string
}

// Order describes a customer purchase with its embedded line items.
type Order struct {
	ID              int64
	Code            string
	UserID          int64
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	Amount          decimal.Decimal
	TransactionID   string
	ShippingAddress string
	Variants        []OrderVariant
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
