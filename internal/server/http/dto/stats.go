package dto

import "github.com/shopspring/decimal"

// SalesSummaryResponse aggregates shop activity over a period.
type SalesSummaryResponse struct {
	OrderCount    int64           `json:"order_count"`
	Revenue       decimal.Decimal `json:"revenue"`
	UnitsSold     int64           `json:"units_sold"`
	PendingOrders int64           `json:"pending_orders"`
}
