package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skilz-store/internal/models"
	"skilz-store/internal/services"
)

type CheckoutHandler struct {
	checkout *services.CheckoutService
}

func NewCheckoutHandler(checkout *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
	}
}

// POST /api/checkout
// Begin the flow. An empty cart cannot enter checkout; the client is
// expected to redirect back to the cart view.
func (h *CheckoutHandler) Begin(c *gin.Context) {
	if err := h.checkout.Begin(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"checkout": h.checkout.State(),
	})
}

// GET /api/checkout
func (h *CheckoutHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"checkout": h.checkout.State(),
	})
}

// POST /api/checkout/shipping
func (h *CheckoutHandler) SubmitShipping(c *gin.Context) {
	var form models.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.checkout.SubmitShipping(form); err != nil {
		c.JSON(checkoutStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkout": h.checkout.State(),
	})
}

// POST /api/checkout/back
func (h *CheckoutHandler) Back(c *gin.Context) {
	if err := h.checkout.Back(); err != nil {
		c.JSON(checkoutStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkout": h.checkout.State(),
	})
}

// POST /api/checkout/payment
// Settlement is asynchronous; the response is 202 and the client polls
// GET /api/checkout until the step reaches confirmation.
func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	var req models.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.checkout.SubmitPayment(req.PaymentMethod); err != nil {
		c.JSON(checkoutStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":  "Payment processing",
		"checkout": h.checkout.State(),
	})
}

// DELETE /api/checkout
// Abandon the flow; a pending settlement is cancelled.
func (h *CheckoutHandler) Abandon(c *gin.Context) {
	h.checkout.Abandon()

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout abandoned",
	})
}

func checkoutStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidForm):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNoActiveCheckout):
		return http.StatusNotFound
	default:
		// empty cart, wrong step, pending settlement
		return http.StatusConflict
	}
}
