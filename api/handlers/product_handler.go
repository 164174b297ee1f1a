package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"skilz-store/internal/services"
)

type ProductHandler struct {
	catalog *services.CatalogService
}

func NewProductHandler(catalog *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
	}
}

// GET /api/products
// Listing view: filter and sort criteria come in as query parameters and
// are re-applied on every request. An empty result is a normal response,
// the "no results" state belongs to the client.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	minPrice, _ := strconv.ParseFloat(c.Query("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)
	minRating, _ := strconv.ParseFloat(c.Query("min_rating"), 64)

	criteria := services.FilterCriteria{
		Category:   c.Query("category"),
		PriceMin:   minPrice,
		PriceMax:   maxPrice,
		SearchText: c.Query("q"),
		MinRating:  minRating,
		SortKey:    services.SortKey(c.DefaultQuery("sort", string(services.SortFeatured))),
	}

	products := services.FilterProducts(h.catalog.GetAllProducts(), criteria)

	c.JSON(http.StatusOK, gin.H{
		"data": products,
		"meta": gin.H{
			"total":    len(products),
			"category": criteria.Category,
			"query":    criteria.SearchText,
			"sort":     string(criteria.SortKey),
		},
	})
}

// GET /api/products/:id
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, exists := h.catalog.GetProductByID(id)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": product,
	})
}

// GET /api/products/featured
func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "4"))
	if err != nil || limit < 0 {
		limit = 4
	}

	c.JSON(http.StatusOK, gin.H{
		"data": h.catalog.GetFeaturedProducts(limit),
	})
}

// GET /api/products/discounted
func (h *ProductHandler) GetDiscountedProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "4"))
	if err != nil || limit < 0 {
		limit = 4
	}

	c.JSON(http.StatusOK, gin.H{
		"data": h.catalog.GetDiscountedProducts(limit),
	})
}

// GET /api/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.catalog.GetCategories(),
	})
}

// GET /api/health
func (h *ProductHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"products":  h.catalog.Size(),
		"timestamp": time.Now().Unix(),
	})
}
