package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"skilz-store/internal/models"
)

// SortKey selects the ordering of a filtered product list.
type SortKey string

const (
	SortFeatured  SortKey = "featured" // rating descending, the default
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortRating    SortKey = "rating" // rating descending
)

// FilterCriteria is the set of user-selected filter and sort parameters.
// Zero values mean "not set": empty category/search match everything,
// PriceMax <= 0 means no price cap, MinRating <= 0 means no rating floor.
type FilterCriteria struct {
	Category   string
	PriceMin   float64
	PriceMax   float64
	SearchText string
	MinRating  float64
	SortKey    SortKey
}

// FilterProducts derives the visible product list from the criteria. Pure
// function: the input slice is never modified and the result is a fresh
// slice. An empty result is a valid "no results" value, not an error.
//
// Predicates are independent; the sort is applied last and is stable with
// respect to the input order for tied keys.
func FilterProducts(products []models.Product, criteria FilterCriteria) []models.Product {
	result := make([]models.Product, 0, len(products))
	query := strings.ToLower(criteria.SearchText)

	for _, p := range products {
		if criteria.Category != "" && p.Category != criteria.Category {
			continue
		}
		if p.Price < criteria.PriceMin {
			continue
		}
		if criteria.PriceMax > 0 && p.Price > criteria.PriceMax {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if criteria.MinRating > 0 && p.Rating < criteria.MinRating {
			continue
		}
		result = append(result, p)
	}

	sortProducts(result, criteria.SortKey)
	return result
}

func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNameAsc:
		sortByName(products, false)
	case SortNameDesc:
		sortByName(products, true)
	case SortRating, SortFeatured, "":
		// featured is rating descending, same as rating
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}

// sortByName sorts by name with locale-aware collation. The catalog is
// Arabic, where byte order and collation order differ.
func sortByName(products []models.Product, desc bool) {
	c := collate.New(language.Arabic)
	sort.SliceStable(products, func(i, j int) bool {
		cmp := c.CompareString(products[i].Name, products[j].Name)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}
