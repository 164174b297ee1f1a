package services

import (
	"fmt"
	"sort"

	"skilz-store/internal/models"
)

// CatalogService provides read-only access to the fixed product set. The
// catalog never changes after construction, so no synchronization is needed;
// all methods are safe for concurrent readers.
type CatalogService struct {
	products []models.Product
	byID     map[int]models.Product
}

// NewCatalogService builds the store over the built-in Skilz Store catalog.
func NewCatalogService() *CatalogService {
	return NewCatalogServiceFrom(defaultCatalog)
}

// NewCatalogServiceFrom builds the store over an explicit product set.
func NewCatalogServiceFrom(products []models.Product) *CatalogService {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &CatalogService{
		products: products,
		byID:     byID,
	}
}

// Validate checks the catalog data invariants. Called once at startup;
// a failure here means the compiled-in data is broken.
func (s *CatalogService) Validate() error {
	seen := make(map[int]bool, len(s.products))
	for _, p := range s.products {
		if p.ID <= 0 {
			return fmt.Errorf("product %q: id must be positive", p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = true
		if p.Price <= 0 {
			return fmt.Errorf("product %d: price must be positive", p.ID)
		}
		if p.OldPrice != 0 && p.OldPrice <= p.Price {
			return fmt.Errorf("product %d: old price must exceed price", p.ID)
		}
		if len(p.Images) == 0 {
			return fmt.Errorf("product %d: at least one image required", p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return fmt.Errorf("product %d: rating %v out of range", p.ID, p.Rating)
		}
		if p.StockCount < 0 {
			return fmt.Errorf("product %d: negative stock count", p.ID)
		}
	}
	return nil
}

// GetAllProducts returns the catalog in its original order. The returned
// slice is a copy; callers may reorder it.
func (s *CatalogService) GetAllProducts() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetProductByID looks a product up by its id. Unknown ids are absence,
// not an error.
func (s *CatalogService) GetProductByID(id int) (models.Product, bool) {
	p, exists := s.byID[id]
	return p, exists
}

// GetProductsByCategory returns products with an exact category match,
// preserving catalog order.
func (s *CatalogService) GetProductsByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// GetFeaturedProducts returns the top limit products by rating, descending.
// Ties keep catalog order.
func (s *CatalogService) GetFeaturedProducts(limit int) []models.Product {
	out := s.GetAllProducts()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// GetDiscountedProducts returns the first limit products carrying an old
// price, in catalog order (not sorted by discount size).
func (s *CatalogService) GetDiscountedProducts(limit int) []models.Product {
	var out []models.Product
	for _, p := range s.products {
		if !p.Discounted() {
			continue
		}
		out = append(out, p)
		if limit >= 0 && len(out) == limit {
			break
		}
	}
	return out
}

// GetCategories returns the distinct category values present in the
// catalog, in first-seen order.
func (s *CatalogService) GetCategories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Size returns the number of products in the catalog.
func (s *CatalogService) Size() int {
	return len(s.products)
}
