package productcontroller

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterFullQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET",
		"/products?category=sport,classic&brand=Chrono&min_price=100&max_price=900&in_stock=true&search=diver", nil)

	filter, err := parseFilter(c)
	require.NoError(t, err)

	assert.Equal(t, []string{"sport", "classic"}, filter.Categories)
	assert.Equal(t, []string{"Chrono"}, filter.Brands)
	require.NotNil(t, filter.PriceMin)
	assert.Equal(t, 100.0, *filter.PriceMin)
	require.NotNil(t, filter.PriceMax)
	assert.Equal(t, 900.0, *filter.PriceMax)
	require.NotNil(t, filter.InStock)
	assert.True(t, *filter.InStock)
	assert.Equal(t, "diver", filter.Search)
}

func TestParseFilterEmptyQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/products", nil)

	filter, err := parseFilter(c)
	require.NoError(t, err)

	assert.Empty(t, filter.Categories)
	assert.Empty(t, filter.Brands)
	assert.Nil(t, filter.PriceMin)
	assert.Nil(t, filter.PriceMax)
	assert.Nil(t, filter.InStock)
	assert.Empty(t, filter.Search)
}

func TestParseFilterRejectsBadParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"bad min_price", "min_price=abc"},
		{"bad max_price", "max_price=12x"},
		{"bad in_stock", "in_stock=maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/products?"+tt.query, nil)

			_, err := parseFilter(c)
			assert.Error(t, err)
		})
	}
}

func TestSplitMultiHandlesRepeatsAndCommas(t *testing.T) {
	got := splitMulti([]string{"sport, classic", "luxury", " "})
	assert.Equal(t, []string{"sport", "classic", "luxury"}, got)
}
