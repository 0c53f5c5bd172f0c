package model

import "github.com/shopspring/decimal"

// SalesSummary aggregates shop activity over a reporting period.
type SalesSummary struct {
	OrderCount    int64
	Revenue       decimal.Decimal
	UnitsSold     int64
	PendingOrders int64
}
