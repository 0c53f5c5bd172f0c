package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
	"github.com/sellaro/storefront/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/v1/orders.
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.Checkout(c.Request.Context(), userID, req.ShippingAddress)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyCart):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrInsufficientStock):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		Order:  toOrderResponse(result.Order),
		PayURL: result.PayURL,
	})
}

// List handles GET /api/v1/orders.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	orders, err := h.facade.Orders(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/orders/:code.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("code"), CurrentUserID(c), IsAdmin(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateStatus handles PATCH /api/v1/admin/orders/:code/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	status := model.OrderStatus(req.Status)
	if status < model.OrderStatusNew || status > model.OrderStatusCancelled {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("code"), status)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrIllegalTransition):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrAlreadyResolved):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

// Cancel handles POST /api/v1/admin/orders/:code/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	err := h.facade.CancelOrder(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrAlreadyResolved), errors.Is(err, domainErrors.ErrIllegalTransition):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.LineItemResponse, 0, len(order.Variants))
	for _, v := range order.Variants {
		items = append(items, dto.LineItemResponse{
			VariantID:  v.VariantID,
			SKU:        v.SKU,
			UnitPrice:  v.UnitPrice,
			Quantity:   v.Quantity,
			LineAmount: v.LineAmount,
		})
	}
	return dto.OrderResponse{
		Code:            order.Code,
		Status:          int(order.Status),
		PaymentStatus:   int(order.PaymentStatus),
		Amount:          order.Amount,
		TransactionID:   order.TransactionID,
		ShippingAddress: order.ShippingAddress,
		Items:           items,
		CreatedAt:       order.CreatedAt,
	}
}
