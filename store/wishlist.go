package store

import (
	"time"

	"github.com/chronoshop/storefront-api/models"
)

// WishlistEntry is a product snapshot with no quantity.
type WishlistEntry struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Brand     string    `json:"brand"`
	UnitPrice float64   `json:"unit_price"`
	AddedAt   time.Time `json:"added_at"`
}

// Wishlist is a set of liked products keyed by product id, insertion order
// preserved. Membership checks are map lookups.
type Wishlist struct {
	entries []WishlistEntry
	index   map[uint]int
}

func NewWishlist() *Wishlist {
	return &Wishlist{index: make(map[uint]int)}
}

// NewWishlistFromEntries rebuilds a wishlist from persisted entries,
// dropping duplicate product ids.
func NewWishlistFromEntries(entries []WishlistEntry) *Wishlist {
	w := NewWishlist()
	for _, e := range entries {
		if _, ok := w.index[e.ProductID]; ok {
			continue
		}
		w.index[e.ProductID] = len(w.entries)
		w.entries = append(w.entries, e)
	}
	return w
}

// Toggle flips membership: remove when present, add when absent. Returns
// true when the product ended up in the wishlist. Two toggles restore the
// original state.
func (w *Wishlist) Toggle(p models.Product) bool {
	if w.Contains(p.ID) {
		w.Remove(p.ID)
		return false
	}
	w.Add(p)
	return true
}

// Add inserts the product; a no-op when already present.
func (w *Wishlist) Add(p models.Product) {
	if _, ok := w.index[p.ID]; ok {
		return
	}
	w.index[p.ID] = len(w.entries)
	w.entries = append(w.entries, WishlistEntry{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Brand:     p.Brand,
		UnitPrice: p.Price,
		AddedAt:   time.Now(),
	})
}

// Remove deletes the entry; a no-op when absent.
func (w *Wishlist) Remove(productID uint) {
	i, ok := w.index[productID]
	if !ok {
		return
	}
	delete(w.index, productID)
	w.entries = append(w.entries[:i], w.entries[i+1:]...)
	for j := i; j < len(w.entries); j++ {
		w.index[w.entries[j].ProductID] = j
	}
}

// Contains reports membership for a product id.
func (w *Wishlist) Contains(productID uint) bool {
	_, ok := w.index[productID]
	return ok
}

// Entries returns a copy of the entries in insertion order.
func (w *Wishlist) Entries() []WishlistEntry {
	out := make([]WishlistEntry, len(w.entries))
	copy(out, w.entries)
	return out
}

// Len returns the number of entries.
func (w *Wishlist) Len() int {
	return len(w.entries)
}
