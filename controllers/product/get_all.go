package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chronoshop/storefront-api/models"
	"github.com/chronoshop/storefront-api/store"
)

// parseFilter maps the query string onto a catalog filter. Repeatable
// params (category, brand) also accept comma-separated values.
func parseFilter(c *gin.Context) (store.Filter, error) {
	f := store.Filter{
		Categories: splitMulti(c.QueryArray("category")),
		Brands:     splitMulti(c.QueryArray("brand")),
		Search:     c.Query("search"),
	}

	if v := c.Query("min_price"); v != "" {
		mp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, errInvalidParam("min_price")
		}
		f.PriceMin = &mp
	}
	if v := c.Query("max_price"); v != "" {
		mp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, errInvalidParam("max_price")
		}
		f.PriceMax = &mp
	}
	if v := c.Query("in_stock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, errInvalidParam("in_stock")
		}
		f.InStock = &b
	}
	return f, nil
}

func splitMulti(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

type paramError string

func (e paramError) Error() string { return "Invalid " + string(e) }

func errInvalidParam(name string) error { return paramError(name) }

// GET /products
//
// Loads the catalog and runs the filter/sort in memory: the collection is
// small and the query function is pure, so the handler stays a thin shell.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, err := parseFilter(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sortKey := store.ParseSortKey(c.DefaultQuery("sort", string(store.SortFeatured)))

		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, store.Query(products, filter, sortKey))
	}
}
