package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"` // decimal price, same unit everywhere
	Image       string         `gorm:"not null" json:"image"`
	Brand       string         `gorm:"index" json:"brand"`
	Category    string         `gorm:"index" json:"category"` // e.g. "sport", "classic", "luxury"
	Stock       int            `json:"stock"`
	Rating      float64        `json:"rating"` // 0–5
	ReviewCount int            `json:"review_count"`
	DiscountPct int            `json:"discount_pct"` // 0–100, 0 means no discount
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// InStock reports whether the product can currently be added to an order.
func (p Product) InStock() bool {
	return p.Stock > 0
}
