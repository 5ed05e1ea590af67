package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopeasy/shopeasy-commerce-service/internal/apperr"
	"github.com/shopeasy/shopeasy-commerce-service/internal/config"
	"github.com/shopeasy/shopeasy-commerce-service/internal/service"
)

// Handlers holds all HTTP handlers for the commerce service.
type Handlers struct {
	catalog  *service.CatalogService
	auth     *service.AuthService
	carts    *service.CartService
	checkout *service.CheckoutService
	orders   *service.OrderService
	config   *config.Config
	logger   *slog.Logger
}

// NewHandlers creates a new handlers instance.
func NewHandlers(
	catalog *service.CatalogService,
	auth *service.AuthService,
	carts *service.CartService,
	checkout *service.CheckoutService,
	orders *service.OrderService,
	cfg *config.Config,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		catalog:  catalog,
		auth:     auth,
		carts:    carts,
		checkout: checkout,
		orders:   orders,
		config:   cfg,
		logger:   logger,
	}
}

// userIDParam parses the :userID path segment. A non-numeric value gets a
// 400 written and ok=false returned.
func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	var validationErr *apperr.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperr.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, apperr.ErrPaymentDeclined):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "payment declined"})
	case errors.Is(err, service.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
	case errors.Is(err, apperr.ErrReconciliationRequired):
		// Money moved but the order was not recorded. This must never look
		// like an ordinary failure to the caller.
		c.JSON(http.StatusBadGateway, gin.H{
			"error":                   "payment captured but order not recorded",
			"reconciliation_required": true,
		})
	case errors.Is(err, apperr.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
