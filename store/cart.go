// Package store holds the in-memory state containers behind the storefront
// endpoints: the cart and wishlist collections, the catalog query, and the
// profile session cache. Everything here is synchronous and free of I/O so
// the HTTP layer can load rows, apply a mutation, and persist the result.
package store

import (
	"errors"
	"time"

	"github.com/chronoshop/storefront-api/models"
)

// CartLine is one product in the cart with its denormalized snapshot.
type CartLine struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Brand     string    `json:"brand"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// CartTotals is derived from the lines and never stored.
type CartTotals struct {
	TotalQuantity int     `json:"total_quantity"`
	TotalAmount   float64 `json:"total_amount"`
}

// Cart keeps at most one line per product. The index map makes the
// uniqueness invariant structural; the slice preserves insertion order.
type Cart struct {
	lines []CartLine
	index map[uint]int // product id -> position in lines
}

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

func NewCart() *Cart {
	return &Cart{index: make(map[uint]int)}
}

// NewCartFromLines rebuilds a cart from persisted lines. Lines repeating a
// product id are merged, keeping the first line's snapshot.
func NewCartFromLines(lines []CartLine) *Cart {
	c := NewCart()
	for _, l := range lines {
		if i, ok := c.index[l.ProductID]; ok {
			c.lines[i].Quantity += l.Quantity
			continue
		}
		c.index[l.ProductID] = len(c.lines)
		c.lines = append(c.lines, l)
	}
	return c
}

// AddItem adds quantity units of the product. If the product already has a
// line its quantity is incremented and the original snapshot kept; this is
// the documented merge behavior, not an error. The store enforces no upper
// bound — stock checks belong to the caller.
func (c *Cart) AddItem(p models.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if i, ok := c.index[p.ID]; ok {
		c.lines[i].Quantity += quantity
		return nil
	}
	c.index[p.ID] = len(c.lines)
	c.lines = append(c.lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Brand:     p.Brand,
		UnitPrice: p.Price,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	})
	return nil
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line: with lines keyed by product id, "set to nothing" and
// "remove" are the same structural operation. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(productID uint, quantity int) {
	i, ok := c.index[productID]
	if !ok {
		return
	}
	if quantity < 1 {
		c.removeAt(i)
		return
	}
	c.lines[i].Quantity = quantity
}

// RemoveItem deletes the product's line. Removing an absent id is a no-op.
func (c *Cart) RemoveItem(productID uint) {
	if i, ok := c.index[productID]; ok {
		c.removeAt(i)
	}
}

func (c *Cart) removeAt(i int) {
	delete(c.index, c.lines[i].ProductID)
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].ProductID] = j
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[uint]int)
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Quantity returns the quantity for a product, zero when absent.
func (c *Cart) Quantity(productID uint) int {
	if i, ok := c.index[productID]; ok {
		return c.lines[i].Quantity
	}
	return 0
}

// Totals folds over the current lines every time it is called. Totals are
// never patched incrementally, so they cannot drift from the lines.
func (c *Cart) Totals() CartTotals {
	var t CartTotals
	for _, l := range c.lines {
		t.TotalQuantity += l.Quantity
		t.TotalAmount += l.UnitPrice * float64(l.Quantity)
	}
	return t
}
