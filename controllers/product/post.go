package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chronoshop/storefront-api/models"
)

type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Image       string  `json:"image" binding:"required"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Rating      float64 `json:"rating" binding:"gte=0,lte=5"`
	ReviewCount int     `json:"review_count" binding:"gte=0"`
	DiscountPct int     `json:"discount_pct" binding:"gte=0,lte=100"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Image:       input.Image,
			Brand:       input.Brand,
			Category:    input.Category,
			Stock:       input.Stock,
			Rating:      input.Rating,
			ReviewCount: input.ReviewCount,
			DiscountPct: input.DiscountPct,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
