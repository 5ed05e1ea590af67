package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Checkout handles POST /api/v1/users/:userID/checkout
// A declined payment returns 402 with the cart left as it was; a
// reconciliation case returns 502 with a distinct payload.
func (h *Handlers) Checkout(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	result, err := h.checkout.Checkout(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": result.Status.String(),
		"order":  result.Order,
	})
}

// OrderHistory handles GET /api/v1/users/:userID/orders
// Orders are returned most recent first.
func (h *Handlers) OrderHistory(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	orders, err := h.orders.History(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to load order history", "user_id", userID, "error", err)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}
