package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chronoshop/storefront-api/store"
)

// SetupRoutes is the single entry-point that wires up Auth, Catalog, User,
// and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sessions *store.SessionCache) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, db, sessions)

	// 2️⃣ Public catalog routes
	SetupCatalogRoutes(r, db)

	// 3️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, db, sessions)

	// 4️⃣ Admin routes (JWT role for staff, API key for internal tooling)
	SetupAdminRoutes(r, db, sessions)
}
