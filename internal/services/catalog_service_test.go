package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilz-store/internal/models"
)

func TestCatalogValidate(t *testing.T) {
	require.NoError(t, NewCatalogService().Validate())

	t.Run("duplicate id", func(t *testing.T) {
		svc := NewCatalogServiceFrom([]models.Product{
			{ID: 1, Name: "a", Price: 10, Images: []string{"a.png"}, Rating: 4},
			{ID: 1, Name: "b", Price: 10, Images: []string{"b.png"}, Rating: 4},
		})
		assert.Error(t, svc.Validate())
	})

	t.Run("old price below price", func(t *testing.T) {
		svc := NewCatalogServiceFrom([]models.Product{
			{ID: 1, Name: "a", Price: 10, OldPrice: 5, Images: []string{"a.png"}, Rating: 4},
		})
		assert.Error(t, svc.Validate())
	})

	t.Run("rating out of range", func(t *testing.T) {
		svc := NewCatalogServiceFrom([]models.Product{
			{ID: 1, Name: "a", Price: 10, Images: []string{"a.png"}, Rating: 5.5},
		})
		assert.Error(t, svc.Validate())
	})
}

func TestGetProductByID(t *testing.T) {
	svc := NewCatalogService()

	for _, want := range svc.GetAllProducts() {
		got, exists := svc.GetProductByID(want.ID)
		require.True(t, exists, "product %d should exist", want.ID)
		assert.Equal(t, want, got)
	}

	_, exists := svc.GetProductByID(999)
	assert.False(t, exists)
}

func TestGetProductsByCategory(t *testing.T) {
	svc := NewCatalogService()

	hoodies := svc.GetProductsByCategory("hoodies")
	require.Len(t, hoodies, 4)
	for i, p := range hoodies {
		assert.Equal(t, "hoodies", p.Category)
		assert.Equal(t, i+1, p.ID, "catalog order preserved")
	}

	assert.Empty(t, svc.GetProductsByCategory("no-such-category"))
}

func TestGetFeaturedProducts(t *testing.T) {
	svc := NewCatalogService()

	featured := svc.GetFeaturedProducts(4)
	require.Len(t, featured, 4)

	// Rating descending, catalog order on ties: 2 (4.9), then the two
	// 4.8 products in catalog order, then the first 4.7 product.
	ids := []int{featured[0].ID, featured[1].ID, featured[2].ID, featured[3].ID}
	assert.Equal(t, []int{2, 1, 5, 3}, ids)

	t.Run("limit above catalog size", func(t *testing.T) {
		all := svc.GetFeaturedProducts(100)
		assert.Len(t, all, svc.Size())
		for i := 1; i < len(all); i++ {
			assert.GreaterOrEqual(t, all[i-1].Rating, all[i].Rating)
		}
	})

	t.Run("zero limit", func(t *testing.T) {
		assert.Empty(t, svc.GetFeaturedProducts(0))
	})
}

func TestGetDiscountedProducts(t *testing.T) {
	svc := NewCatalogService()

	discounted := svc.GetDiscountedProducts(4)
	require.Len(t, discounted, 4)

	// First four discounted products in catalog order, not by discount size.
	ids := []int{discounted[0].ID, discounted[1].ID, discounted[2].ID, discounted[3].ID}
	assert.Equal(t, []int{1, 2, 3, 4}, ids)

	for _, p := range svc.GetDiscountedProducts(100) {
		assert.True(t, p.Discounted())
		assert.Greater(t, p.OldPrice, p.Price)
	}
}

func TestGetCategories(t *testing.T) {
	svc := NewCatalogService()

	categories := svc.GetCategories()
	assert.ElementsMatch(t,
		[]string{"hoodies", "sets", "tshirts", "pants", "jackets", "accessories"},
		categories,
	)

	seen := make(map[string]bool)
	for _, c := range categories {
		assert.False(t, seen[c], "category %q duplicated", c)
		seen[c] = true
	}
}
