package wishlistControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chronoshop/storefront-api/models"
	"github.com/chronoshop/storefront-api/store"
)

type ToggleInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// loadWishlist materializes the user's persisted entries into a store.Wishlist.
func loadWishlist(db *gorm.DB, userID string) (models.Wishlist, *store.Wishlist, error) {
	var record models.Wishlist
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&record).Error; err != nil {
		return record, nil, err
	}

	entries := make([]store.WishlistEntry, 0, len(record.Items))
	for _, item := range record.Items {
		entries = append(entries, store.WishlistEntry{
			ProductID: item.ProductID,
			Name:      item.ProductName,
			Image:     item.ProductImage,
			Brand:     item.ProductBrand,
			UnitPrice: item.ProductPrice,
			AddedAt:   item.AddedAt,
		})
	}
	return record, store.NewWishlistFromEntries(entries), nil
}

func saveWishlist(db *gorm.DB, wishlistID uint, w *store.Wishlist) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wishlist_id = ?", wishlistID).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		entries := w.Entries()
		if len(entries) == 0 {
			return nil
		}
		items := make([]models.WishlistItem, 0, len(entries))
		for _, e := range entries {
			items = append(items, models.WishlistItem{
				WishlistID:   wishlistID,
				ProductID:    e.ProductID,
				ProductName:  e.Name,
				ProductImage: e.Image,
				ProductBrand: e.Brand,
				ProductPrice: e.UnitPrice,
				AddedAt:      e.AddedAt,
			})
		}
		return tx.Create(&items).Error
	})
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

// GET /user/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		_, wishlist, err := loadWishlist(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": wishlist.Entries(), "count": wishlist.Len()})
	}
}

// POST /user/wishlist/toggle
//
// Flips membership for the product: present entries are removed, absent
// ones added. Product cards call this on every heart click.
func ToggleWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		var input ToggleInput
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

		record, wishlist, err := loadWishlist(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User wishlist not found"})
			return
		}

		added := wishlist.Toggle(product)

		if err := saveWishlist(db, record.ID, wishlist); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"in_wishlist": added,
			"items":       wishlist.Entries(),
			"count":       wishlist.Len(),
		})
	}
}

// DELETE /user/wishlist/:product_id
//
// Removing an absent product is a no-op and still answers 200.
func DeleteWishlistItem(db *gorm.DB) gin.HandlerFunc {
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

		record, wishlist, err := loadWishlist(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User wishlist not found"})
			return
		}

		wishlist.Remove(uint(productID))

		if err := saveWishlist(db, record.ID, wishlist); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": wishlist.Entries(), "count": wishlist.Len()})
	}
}

// POST /user/wishlist/:product_id/move-to-cart
//
// Drops the wishlist entry and adds one unit to the cart with a fresh
// product snapshot.
func MoveToCart(db *gorm.DB) gin.HandlerFunc {
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

		wishRecord, wishlist, err := loadWishlist(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User wishlist not found"})
			return
		}
		if !wishlist.Contains(uint(productID)) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product is not in the wishlist"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		var cartRecord models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cartRecord).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User cart not found"})
			return
		}
		lines := make([]store.CartLine, 0, len(cartRecord.Items))
		for _, item := range cartRecord.Items {
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
		cart := store.NewCartFromLines(lines)

		wishlist.Remove(uint(productID))
		if err := cart.AddItem(product, 1); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("wishlist_id = ?", wishRecord.ID).Delete(&models.WishlistItem{}).Error; err != nil {
				return err
			}
			if entries := wishlist.Entries(); len(entries) > 0 {
				items := make([]models.WishlistItem, 0, len(entries))
				for _, e := range entries {
					items = append(items, models.WishlistItem{
						WishlistID:   wishRecord.ID,
						ProductID:    e.ProductID,
						ProductName:  e.Name,
						ProductImage: e.Image,
						ProductBrand: e.Brand,
						ProductPrice: e.UnitPrice,
						AddedAt:      e.AddedAt,
					})
				}
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}

			if err := tx.Where("cart_id = ?", cartRecord.CartID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			cartLines := cart.Lines()
			if len(cartLines) == 0 {
				return nil
			}
			cartItems := make([]models.CartItem, 0, len(cartLines))
			for _, l := range cartLines {
				cartItems = append(cartItems, models.CartItem{
					CartID:       cartRecord.CartID,
					ProductID:    l.ProductID,
					ProductName:  l.Name,
					ProductImage: l.Image,
					ProductBrand: l.Brand,
					ProductPrice: l.UnitPrice,
					Quantity:     l.Quantity,
					AddedAt:      l.AddedAt,
				})
			}
			return tx.Create(&cartItems).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move item to cart"})
			return
		}

		totals := cart.Totals()
		c.JSON(http.StatusOK, gin.H{
			"wishlist": gin.H{"items": wishlist.Entries(), "count": wishlist.Len()},
			"cart": gin.H{
				"items":          cart.Lines(),
				"total_quantity": totals.TotalQuantity,
				"total_amount":   totals.TotalAmount,
			},
		})
	}
}
