package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
	"github.com/sellaro/storefront/internal/server/http/dto"
)

// PaymentHandler receives the provider's server-to-server callbacks.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Notify handles POST /api/v1/payment/momo-ipn.
//
// The provider redelivers until it receives success, so every processed
// notification -- including duplicates -- is acknowledged with 204.
// Only a bad signature or malformed payload (400) and an unknown order
// (404) are rejected.
func (h *PaymentHandler) Notify(c *gin.Context) {
	var req dto.PaymentNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	notification := model.PaymentNotification{
		OrderCode:     req.OrderID,
		RequestID:     req.RequestID,
		Amount:        req.Amount,
		ResultCode:    req.ResultCode,
		TransactionID: req.TransID,
		ExtraData:     req.ExtraData,
		Signature:     req.Signature,
	}

	err := h.facade.ProcessPaymentNotification(c.Request.Context(), notification)
	switch {
	case err == nil, errors.Is(err, domainErrors.ErrAlreadyResolved):
		c.Status(http.StatusNoContent)
	case errors.Is(err, domainErrors.ErrBadSignature):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
