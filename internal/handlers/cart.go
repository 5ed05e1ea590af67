package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shopeasy/shopeasy-commerce-service/internal/service"
)

type addCartItemRequest struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type discountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type cartLineResponse struct {
	Key       string          `json:"key"`
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type cartResponse struct {
	Lines     []cartLineResponse `json:"lines"`
	ItemCount int                `json:"item_count"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
	Tax       decimal.Decimal    `json:"tax"`
	Shipping  decimal.Decimal    `json:"shipping"`
	Discount  decimal.Decimal    `json:"discount"`
	Total     decimal.Decimal    `json:"total"`
}

func toCartResponse(view service.CartView) cartResponse {
	lines := make([]cartLineResponse, 0, len(view.Lines))
	for _, l := range view.Lines {
		lines = append(lines, cartLineResponse{
			Key:       l.Key,
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			UnitPrice: l.Product.Price,
			Quantity:  l.Quantity,
			Size:      l.Size,
			Color:     l.Color,
			Subtotal:  l.Subtotal(),
		})
	}
	return cartResponse{
		Lines:     lines,
		ItemCount: view.ItemCount,
		Subtotal:  view.Totals.Subtotal,
		Tax:       view.Totals.Tax,
		Shipping:  view.Totals.Shipping,
		Discount:  view.Totals.Discount,
		Total:     view.Totals.Total,
	}
}

// GetCart handles GET /api/v1/users/:userID/cart
func (h *Handlers) GetCart(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toCartResponse(h.carts.View(userID)))
}

// AddCartItem handles POST /api/v1/users/:userID/cart/items
func (h *Handlers) AddCartItem(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.carts.AddItem(c.Request.Context(), userID, req.ProductID, req.Quantity, req.Size, req.Color)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(view))
}

// UpdateCartItem handles PATCH /api/v1/users/:userID/cart/items/:key
// A quantity of zero or less removes the line.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view := h.carts.UpdateQuantity(userID, c.Param("key"), req.Quantity)
	c.JSON(http.StatusOK, toCartResponse(view))
}

// RemoveCartItem handles DELETE /api/v1/users/:userID/cart/items/:key
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	view := h.carts.RemoveItem(userID, c.Param("key"))
	c.JSON(http.StatusOK, toCartResponse(view))
}

// ClearCart handles DELETE /api/v1/users/:userID/cart
func (h *Handlers) ClearCart(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	h.carts.Clear(userID)
	c.JSON(http.StatusOK, toCartResponse(h.carts.View(userID)))
}

// SetDiscount handles PUT /api/v1/users/:userID/cart/discount
func (h *Handlers) SetDiscount(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.carts.SetDiscount(userID, req.Amount)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(view))
}
