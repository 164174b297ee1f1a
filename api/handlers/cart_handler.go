package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skilz-store/internal/models"
	"skilz-store/internal/services"
)

type CartHandler struct {
	cart    *services.CartService
	catalog *services.CatalogService
}

func NewCartHandler(cart *services.CartService, catalog *services.CatalogService) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: catalog,
	}
}

// GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.cart.Snapshot(),
	})
}

// GET /api/cart/count
// The header badge number.
func (h *CartHandler) GetCartCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count": h.cart.ItemCount(),
	})
}

// POST /api/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, exists := h.catalog.GetProductByID(req.ProductID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	h.cart.AddToCart(product, req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"cart":    h.cart.Snapshot(),
	})
}

// PUT /api/cart/items/:product_id
// Out-of-range quantities are clamped, unknown ids ignored; the cart never
// rejects a user action.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.cart.UpdateQuantity(productID, req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"cart":    h.cart.Snapshot(),
	})
}

// DELETE /api/cart/items/:product_id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	h.cart.RemoveFromCart(productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed",
		"cart":    h.cart.Snapshot(),
	})
}

// DELETE /api/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.ClearCart()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"cart":    h.cart.Snapshot(),
	})
}
