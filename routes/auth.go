package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chronoshop/storefront-api/auth"
	"github.com/chronoshop/storefront-api/middleware"
	"github.com/chronoshop/storefront-api/store"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, sessions *store.SessionCache) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db, sessions))
		authGroup.POST("/login", auth.Login(db, sessions))
		authGroup.POST("/logout", auth.Logout(sessions)) // always 200, even without a valid token
		authGroup.POST("/forgot-password", auth.ForgotPassword(db))
		authGroup.POST("/reset-password", auth.ResetPassword(db, sessions))

		authGroup.GET("/profile", middleware.ValidateToken, auth.Profile(sessions))
	}
}
