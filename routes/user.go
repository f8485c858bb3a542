package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/chronoshop/storefront-api/controllers/cart"
	orderControllers "github.com/chronoshop/storefront-api/controllers/order"
	userControllers "github.com/chronoshop/storefront-api/controllers/user"
	wishlistControllers "github.com/chronoshop/storefront-api/controllers/wishlist"
	"github.com/chronoshop/storefront-api/middleware"
	"github.com/chronoshop/storefront-api/store"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, sessions *store.SessionCache) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(sessions))
		userGroup.PUT("/", userControllers.UpdateUser(db, sessions))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.POST("/", cartControllers.AddCartItem(db))
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(db))
			wishlistGroup.POST("/toggle", wishlistControllers.ToggleWishlistItem(db))
			wishlistGroup.DELETE("/:product_id", wishlistControllers.DeleteWishlistItem(db))
			wishlistGroup.POST("/:product_id/move-to-cart", wishlistControllers.MoveToCart(db))
		}

		// ──────────────── Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("/", orderControllers.CheckoutHandler(db))
			orderGroup.GET("/", orderControllers.GetUserOrdersHandler(db))
		}
	}
}
