package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sellaro/storefront/internal/server/http/dto"
)

// StatsHandler serves admin reporting endpoints.
type StatsHandler struct {
	facade StatsFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// Summary handles GET /api/v1/admin/stats/summary.
// Accepts optional RFC 3339 "from" and "to" query parameters; defaults to
// the trailing 30 days.
func (h *StatsHandler) Summary(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		to = parsed
	}
	if to.Before(from) {
		c.Status(http.StatusBadRequest)
		return
	}

	summary, err := h.facade.SalesSummary(c.Request.Context(), from, to)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.SalesSummaryResponse{
		OrderCount:    summary.OrderCount,
		Revenue:       summary.Revenue,
		UnitsSold:     summary.UnitsSold,
		PendingOrders: summary.PendingOrders,
	})
}
