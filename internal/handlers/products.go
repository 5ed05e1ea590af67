package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
	"github.com/shopeasy/shopeasy-commerce-service/internal/service"
)

type addProductRequest struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImagePath string          `json:"image_path"`
	Category  string          `json:"category"`
}

// ListProducts handles GET /api/v1/products
// Supported query parameters: category, search, sort
// (price_asc|price_desc|name_asc|name_desc).
func (h *Handlers) ListProducts(c *gin.Context) {
	filter := service.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}

	products, err := h.catalog.Products(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// AddProduct handles POST /api/v1/products
func (h *Handlers) AddProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.catalog.AddProduct(c.Request.Context(), models.Product{
		Name:      req.Name,
		Price:     req.Price,
		ImagePath: req.ImagePath,
		Category:  req.Category,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}
