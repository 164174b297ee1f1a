package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilz-store/internal/models"
)

func TestFilterByCategory(t *testing.T) {
	result := FilterProducts(defaultCatalog, FilterCriteria{Category: "hoodies"})

	require.Len(t, result, 4)
	for _, p := range result {
		assert.Equal(t, "hoodies", p.Category)
	}
	// Default sort is rating descending.
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Rating, result[i].Rating)
	}
}

func TestFilterByPrice(t *testing.T) {
	result := FilterProducts(defaultCatalog, FilterCriteria{PriceMin: 200, PriceMax: 400})
	require.NotEmpty(t, result)
	for _, p := range result {
		assert.GreaterOrEqual(t, p.Price, 200.0)
		assert.LessOrEqual(t, p.Price, 400.0)
	}

	t.Run("zero max means no cap", func(t *testing.T) {
		result := FilterProducts(defaultCatalog, FilterCriteria{})
		assert.Len(t, result, len(defaultCatalog))
	})
}

func TestFilterBySearchText(t *testing.T) {
	t.Run("case insensitive, name or description", func(t *testing.T) {
		// Every product name carries the store brand.
		result := FilterProducts(defaultCatalog, FilterCriteria{SearchText: "skilz"})
		assert.Len(t, result, len(defaultCatalog))
	})

	t.Run("arabic substring", func(t *testing.T) {
		result := FilterProducts(defaultCatalog, FilterCriteria{SearchText: "هودي"})
		require.NotEmpty(t, result)
		for _, p := range result {
			assert.Equal(t, "hoodies", p.Category)
		}
	})

	t.Run("no matches is a valid empty result", func(t *testing.T) {
		result := FilterProducts(defaultCatalog, FilterCriteria{SearchText: "zzzzz"})
		assert.Empty(t, result)
	})
}

func TestFilterByMinRating(t *testing.T) {
	result := FilterProducts(defaultCatalog, FilterCriteria{MinRating: 4.7})
	require.NotEmpty(t, result)
	for _, p := range result {
		assert.GreaterOrEqual(t, p.Rating, 4.7)
	}
}

func TestFilterCombined(t *testing.T) {
	result := FilterProducts(defaultCatalog, FilterCriteria{
		Category:  "accessories",
		PriceMax:  150,
		MinRating: 4,
	})
	require.Len(t, result, 1)
	assert.Equal(t, 9, result[0].ID) // the cap
}

func TestSortKeys(t *testing.T) {
	t.Run("price ascending", func(t *testing.T) {
		result := FilterProducts(defaultCatalog, FilterCriteria{SortKey: SortPriceAsc})
		for i := 1; i < len(result); i++ {
			assert.LessOrEqual(t, result[i-1].Price, result[i].Price)
		}
	})

	t.Run("price descending", func(t *testing.T) {
		result := FilterProducts(defaultCatalog, FilterCriteria{SortKey: SortPriceDesc})
		for i := 1; i < len(result); i++ {
			assert.GreaterOrEqual(t, result[i-1].Price, result[i].Price)
		}
	})

	t.Run("name descending reverses ascending", func(t *testing.T) {
		asc := FilterProducts(defaultCatalog, FilterCriteria{SortKey: SortNameAsc})
		desc := FilterProducts(defaultCatalog, FilterCriteria{SortKey: SortNameDesc})
		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
		}
	})

	t.Run("featured equals rating order", func(t *testing.T) {
		featured := FilterProducts(defaultCatalog, FilterCriteria{SortKey: SortFeatured})
		rating := FilterProducts(defaultCatalog, FilterCriteria{SortKey: SortRating})
		assert.Equal(t, featured, rating)
	})
}

func TestSortIsStable(t *testing.T) {
	products := []models.Product{
		testProduct(1, 100, 5),
		testProduct(2, 100, 5),
		testProduct(3, 50, 5),
		testProduct(4, 100, 5),
	}

	result := FilterProducts(products, FilterCriteria{SortKey: SortPriceAsc})
	ids := []int{result[0].ID, result[1].ID, result[2].ID, result[3].ID}
	assert.Equal(t, []int{3, 1, 2, 4}, ids, "tied prices keep input order")
}

func TestFilterIsPure(t *testing.T) {
	before := make([]models.Product, len(defaultCatalog))
	copy(before, defaultCatalog)

	FilterProducts(defaultCatalog, FilterCriteria{SortKey: SortPriceDesc})

	assert.Equal(t, before, defaultCatalog, "input slice must not be reordered")
}
