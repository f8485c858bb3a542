package store

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/chronoshop/storefront-api/models"
)

// Filter is a conjunctive product filter: every set predicate must match,
// an unset predicate matches everything.
type Filter struct {
	Categories []string // empty = any category
	Brands     []string // empty = any brand
	PriceMin   *float64
	PriceMax   *float64
	InStock    *bool
	Search     string // case-insensitive substring on name OR description
}

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortFeatured   SortKey = "featured" // input order passthrough
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortNameAsc    SortKey = "name_asc"
	SortNameDesc   SortKey = "name_desc"
	SortRatingDesc SortKey = "rating_desc"
)

// ParseSortKey maps a query-string value to a SortKey, defaulting to featured.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(s)) {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc, SortRatingDesc:
		return SortKey(strings.ToLower(s))
	default:
		return SortFeatured
	}
}

// Query filters and sorts the product collection. It is a pure function of
// (products, filter, sortKey): the input slice is never mutated and no state
// is kept between calls, so results are memoizable by the caller.
func Query(products []models.Product, f Filter, key SortKey) []models.Product {
	out := make([]models.Product, 0, len(products))
	search := strings.ToLower(f.Search)
	for _, p := range products {
		if !matches(p, f, search) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, key)
	return out
}

func matches(p models.Product, f Filter, search string) bool {
	if len(f.Categories) > 0 && !containsFold(f.Categories, p.Category) {
		return false
	}
	if len(f.Brands) > 0 && !containsFold(f.Brands, p.Brand) {
		return false
	}
	if f.PriceMin != nil && p.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.Price > *f.PriceMax {
		return false
	}
	if f.InStock != nil && p.InStock() != *f.InStock {
		return false
	}
	if search != "" &&
		!strings.Contains(strings.ToLower(p.Name), search) &&
		!strings.Contains(strings.ToLower(p.Description), search) {
		return false
	}
	return true
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
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
	case SortNameAsc, SortNameDesc:
		col := collate.New(language.English, collate.IgnoreCase)
		asc := key == SortNameAsc
		sort.SliceStable(products, func(i, j int) bool {
			cmp := col.CompareString(products[i].Name, products[j].Name)
			if asc {
				return cmp < 0
			}
			return cmp > 0
		})
	case SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortFeatured:
		// keep input order
	}
}
