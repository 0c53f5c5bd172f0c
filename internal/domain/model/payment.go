package model

import "github.com/shopspring/decimal"

// Payment result codes reported by the provider. Zero means success;
// anything else is a failure.
const PaymentResultSuccess = 0

// PaymentNotification is the parsed server-to-server payment callback.
type PaymentNotification struct {
	OrderCode     string
	RequestID     string
	Amount        decimal.Decimal
	ResultCode    int
	TransactionID string
	ExtraData     string
	Signature     string
}

// Succeeded reports whether the provider confirmed the payment.
func (n PaymentNotification) Succeeded() bool {
	return n.ResultCode == PaymentResultSuccess
}
