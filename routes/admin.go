package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/chronoshop/storefront-api/controllers/cart"
	orderControllers "github.com/chronoshop/storefront-api/controllers/order"
	productControllers "github.com/chronoshop/storefront-api/controllers/product"
	userControllers "github.com/chronoshop/storefront-api/controllers/user"
	"github.com/chronoshop/storefront-api/middleware"
	"github.com/chronoshop/storefront-api/store"
)

// SetupAdminRoutes registers the back-office endpoints. "/admin/*" is for
// staff accounts (JWT with the admin role); "/internal/*" is for headless
// tooling authenticated by the shared API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, sessions *store.SessionCache) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ──────────────── Products ────────────────
		adminGroup.POST("/products", productControllers.CreateProduct(db))
		adminGroup.PUT("/products/:id", productControllers.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(db))

		// ──────────────── Users & Carts ────────────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.DELETE("/users/:id", userControllers.DeleteUser(db, sessions))
		adminGroup.GET("/carts/:user_id", cartControllers.GetAdminUserCart(db))

		// ──────────────── Orders ────────────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.PUT("/orders/:id/status", orderControllers.UpdateOrderStatusHandler(db))
		adminGroup.PUT("/orders/:id/payment", orderControllers.UpdatePaymentStatusHandler(db))
	}

	internalGroup := r.Group("/internal")
	internalGroup.Use(middleware.ValidateAPIKey)
	{
		internalGroup.GET("/products/export", productControllers.ExportProductsToExcel(db))
		internalGroup.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
	}
}
