package models

import "time"

type Wishlist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE wishlist per user
	Items     []WishlistItem `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// WishlistItem has set semantics: the unique index makes a duplicate
// (wishlist, product) pair a constraint violation, not just a convention.
type WishlistItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	WishlistID   uint      `gorm:"index:idx_wishlist_product,unique" json:"wishlist_id"`
	ProductID    uint      `gorm:"index:idx_wishlist_product,unique" json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	ProductBrand string    `json:"product_brand"`
	ProductPrice float64   `json:"product_price"`
	AddedAt      time.Time `json:"added_at"`
}
