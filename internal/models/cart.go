package models

// CartItem pairs a product with the selected quantity. Quantity is always
// kept within [1, Product.StockCount] by the cart service.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is the line total for this item.
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// CartSnapshot is an immutable view of the cart handed to readers and
// subscribers. Totals are derived from Items at snapshot time and can
// never drift from them.
type CartSnapshot struct {
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"total_price"`
	ItemCount  int        `json:"item_count"`
}

type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartItemRequest carries the new absolute quantity. Out-of-range
// values are clamped by the cart service, never rejected.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
