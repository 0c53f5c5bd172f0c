package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest starts an order from the current cart.
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
}

// CheckoutResponse returns the created order and payment redirect.
type CheckoutResponse struct {
	Order  OrderResponse `json:"order"`
	PayURL string        `json:"pay_url,omitempty"`
}

// LineItemResponse is one purchased line of an order.
type LineItemResponse struct {
	VariantID  int64           `json:"variant_id"`
	SKU        string          `json:"sku"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	LineAmount decimal.Decimal `json:"line_amount"`
}

// OrderResponse describes an order.
type OrderResponse struct {
	Code            string             `json:"code"`
	Status          int                `json:"status"`
	PaymentStatus   int                `json:"payment_status"`
	Amount          decimal.Decimal    `json:"amount"`
	TransactionID   string             `json:"transaction_id,omitempty"`
	ShippingAddress string             `json:"shipping_address,omitempty"`
	Items           []LineItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// OrderStatusRequest updates an order's fulfilment status.
type OrderStatusRequest struct {
	Status int `json:"status" binding:"required"`
}
