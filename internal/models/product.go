package models

// Product is a single catalog record. The catalog is built once at startup
// and never mutated, so Product values are shared freely between goroutines.
type Product struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	OldPrice       float64           `json:"old_price,omitempty"` // 0 = no discount
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	Rating         float64           `json:"rating"`
	StockCount     int               `json:"stock_count"`
	Features       []string          `json:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// Discounted reports whether the product carries an old price.
func (p Product) Discounted() bool {
	return p.OldPrice > 0
}
