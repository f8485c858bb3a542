package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chronoshop/storefront-api/models"
	"github.com/chronoshop/storefront-api/store"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// loadCart materializes the user's persisted lines into a store.Cart.
func loadCart(db *gorm.DB, userID string) (models.Cart, *store.Cart, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return cart, nil, err
	}

	lines := make([]store.CartLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, store.CartLine{
			ProductID: item.ProductID,
			Name:      item.ProductName,
			Image:     item.ProductImage,
			Brand:     item.ProductBrand,
			UnitPrice: item.ProductPrice,
			Quantity:  item.Quantity,
			AddedAt:   item.AddedAt,
		})
	}
	return cart, store.NewCartFromLines(lines), nil
}

// saveCart writes the cart's lines back, replacing the previous rows so the
// stored state always mirrors the container exactly.
func saveCart(db *gorm.DB, cartID uint, c *store.Cart) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		lines := c.Lines()
		if len(lines) == 0 {
			return nil
		}
		items := make([]models.CartItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, models.CartItem{
				CartID:       cartID,
				ProductID:    l.ProductID,
				ProductName:  l.Name,
				ProductImage: l.Image,
				ProductBrand: l.Brand,
				ProductPrice: l.UnitPrice,
				Quantity:     l.Quantity,
				AddedAt:      l.AddedAt,
			})
		}
		return tx.Create(&items).Error
	})
}

// cartResponse always recomputes the totals from the lines.
func cartResponse(c *store.Cart) gin.H {
	totals := c.Totals()
	return gin.H{
		"items":          c.Lines(),
		"total_quantity": totals.TotalQuantity,
		"total_amount":   totals.TotalAmount,
	}
}

func requestUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		_, cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// POST /user/cart
//
// Adding a product already in the cart increments its line; that is the
// documented merge behavior, not an error.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		record, cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User cart not found"})
			return
		}

		if err := cart.AddItem(product, input.Quantity); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := saveCart(db, record.CartID, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, cartResponse(cart))
	}
}

// PUT /user/cart/:product_id
//
// A quantity of zero or less removes the line.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		record, cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User cart not found"})
			return
		}

		if cart.Quantity(uint(productID)) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		cart.UpdateQuantity(uint(productID), input.Quantity)

		if err := saveCart(db, record.CartID, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// DELETE /user/cart/:product_id
//
// Removing an id that is not in the cart is a no-op and still answers 200.
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		record, cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User cart not found"})
			return
		}

		cart.RemoveItem(uint(productID))

		if err := saveCart(db, record.CartID, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		record, cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user cart"})
			return
		}

		cart.Clear()

		if err := saveCart(db, record.CartID, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// GET /admin/carts/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		_, cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(cart))
	}
}
