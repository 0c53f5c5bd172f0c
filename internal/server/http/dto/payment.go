package dto

import "github.com/shopspring/decimal"

// PaymentNotificationRequest is the provider's signed IPN payload.
type PaymentNotificationRequest struct {
	OrderID    string          `json:"orderId" binding:"required"`
	RequestID  string          `json:"requestId"`
	Amount     decimal.Decimal `json:"amount"`
	ResultCode int             `json:"resultCode"`
	TransID    string          `json:"transId"`
	ExtraData  string          `json:"extraData"`
	Signature  string          `json:"signature" binding:"required"`
}
