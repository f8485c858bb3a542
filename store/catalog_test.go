package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoshop/storefront-api/models"
)

func testCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Diver 200", Description: "automatic dive watch", Price: 450, Brand: "Chrono", Category: "sport", Stock: 4, Rating: 4.6},
		{ID: 2, Name: "Field 38", Description: "rugged field watch", Price: 180, Brand: "Meridian", Category: "sport", Stock: 0, Rating: 4.1},
		{ID: 3, Name: "Moonphase Classic", Description: "dress watch with moonphase", Price: 980, Brand: "Chrono", Category: "classic", Stock: 2, Rating: 4.9},
		{ID: 4, Name: "aviator GMT", Description: "dual time pilot watch", Price: 620, Brand: "Altus", Category: "sport", Stock: 7, Rating: 3.8},
		{ID: 5, Name: "Dress 40", Description: "slim quartz dress watch", Price: 180, Brand: "Meridian", Category: "classic", Stock: 1, Rating: 4.1},
	}
}

func ids(products []models.Product) []uint {
	out := make([]uint, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestQueryEmptyFilterReturnsAllInOrder(t *testing.T) {
	catalog := testCatalog()

	got := Query(catalog, Filter{}, SortFeatured)

	assert.Equal(t, ids(catalog), ids(got))
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	want := ids(catalog)

	Query(catalog, Filter{}, SortPriceDesc)

	assert.Equal(t, want, ids(catalog))
}

func TestQueryPriceRangeBounds(t *testing.T) {
	lo, hi := 180.0, 620.0
	got := Query(testCatalog(), Filter{PriceMin: &lo, PriceMax: &hi}, SortFeatured)

	require.NotEmpty(t, got)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Price, lo)
		assert.LessOrEqual(t, p.Price, hi)
	}
	// Range is inclusive on both ends.
	assert.Contains(t, ids(got), uint(2))
	assert.Contains(t, ids(got), uint(4))
}

func TestQueryFiltersAreConjunctive(t *testing.T) {
	lo := 100.0
	hi := 500.0
	got := Query(testCatalog(), Filter{
		Categories: []string{"sport"},
		PriceMin:   &lo,
		PriceMax:   &hi,
	}, SortFeatured)

	// Intersection of category and price range, not the union.
	assert.Equal(t, []uint{1, 2}, ids(got))
}

func TestQueryBrandAndStockFilters(t *testing.T) {
	inStock := true
	got := Query(testCatalog(), Filter{Brands: []string{"meridian"}, InStock: &inStock}, SortFeatured)

	// Brand matching is case-insensitive; the out-of-stock Field 38 is dropped.
	assert.Equal(t, []uint{5}, ids(got))
}

func TestQuerySearchMatchesNameOrDescription(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []uint
	}{
		{"name match, case-insensitive", "DIVER", []uint{1}},
		{"description match", "pilot", []uint{4}},
		{"substring across both fields", "dress", []uint{3, 5}},
		{"no match", "chronograph", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Query(testCatalog(), Filter{Search: tt.search}, SortFeatured)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestQueryPriceSortsAreReverses(t *testing.T) {
	catalog := []models.Product{
		{ID: 1, Price: 450}, {ID: 2, Price: 180}, {ID: 3, Price: 980}, {ID: 4, Price: 620},
	}

	asc := Query(catalog, Filter{}, SortPriceAsc)
	desc := Query(catalog, Filter{}, SortPriceDesc)

	require.Len(t, asc, len(desc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestQueryNameSortIsCaseInsensitive(t *testing.T) {
	got := Query(testCatalog(), Filter{}, SortNameAsc)

	// "aviator GMT" sorts with the A names, not after the uppercase block.
	assert.Equal(t, []uint{4, 1, 5, 2, 3}, ids(got))
}

func TestQueryRatingDesc(t *testing.T) {
	got := Query(testCatalog(), Filter{}, SortRatingDesc)

	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
	// Equal ratings keep input order (stable sort).
	assert.Equal(t, []uint{3, 1, 2, 5, 4}, ids(got))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortKey("price_asc"))
	assert.Equal(t, SortNameDesc, ParseSortKey("NAME_DESC"))
	assert.Equal(t, SortFeatured, ParseSortKey(""))
	assert.Equal(t, SortFeatured, ParseSortKey("bogus"))
}
