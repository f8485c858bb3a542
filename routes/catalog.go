package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/chronoshop/storefront-api/controllers/product"
)

// SetupCatalogRoutes registers the public browse endpoints. The product
// list accepts category, brand, min_price, max_price, in_stock, search and
// sort query params.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/brands", productControllers.GetBrands(db))
}
