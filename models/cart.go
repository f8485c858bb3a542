package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"`                    // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem carries a denormalized snapshot of the product taken at add time,
// so the cart renders without a product join even if the product later changes.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index:idx_cart_product,unique" json:"cart_id"`
	ProductID    uint      `gorm:"index:idx_cart_product,unique" json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	ProductBrand string    `json:"product_brand"`
	ProductPrice float64   `json:"product_price"`
	ProductStock int       `json:"product_stock"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}
