package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
	"github.com/sellaro/storefront/internal/server/http/dto"
)

// CartHandler manages the authenticated user's cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/v1/cart.
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.facade.Cart(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(cart.Items))}
	for _, item := range cart.Items {
		response.Items = append(response.Items, dto.CartItemResponse{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}
	c.JSON(http.StatusOK, response)
}

// AddItem handles POST /api/v1/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item := model.CartItem{VariantID: req.VariantID, Quantity: req.Quantity}
	if err := h.facade.AddCartItem(c.Request.Context(), CurrentUserID(c), item); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidQuantity):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

// SetQuantity handles PUT /api/v1/cart/items/:variantID.
func (h *CartHandler) SetQuantity(c *gin.Context) {
	variantID, err := strconv.ParseInt(c.Param("variantID"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetCartQuantity(c.Request.Context(), CurrentUserID(c), variantID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidQuantity):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

// RemoveItem handles DELETE /api/v1/cart/items/:variantID.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	variantID, err := strconv.ParseInt(c.Param("variantID"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.RemoveCartItem(c.Request.Context(), CurrentUserID(c), variantID); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /api/v1/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearCart(c.Request.Context(), CurrentUserID(c)); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
