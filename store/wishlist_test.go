package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistToggleIsInvolution(t *testing.T) {
	w := NewWishlist()
	p := watch(1, "Diver 200", 100)
	other := watch(2, "Field 38", 200)
	w.Add(other)

	added := w.Toggle(p)
	assert.True(t, added)
	assert.True(t, w.Contains(1))

	removed := w.Toggle(p)
	assert.False(t, removed)
	assert.False(t, w.Contains(1))

	// Other entries are untouched by the round trip.
	assert.True(t, w.Contains(2))
	assert.Equal(t, 1, w.Len())
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	w := NewWishlist()
	p := watch(1, "Diver 200", 100)

	w.Add(p)
	w.Add(p)

	assert.Equal(t, 1, w.Len())
}

func TestWishlistRemoveAbsentIsNoOp(t *testing.T) {
	w := NewWishlist()
	w.Add(watch(1, "Diver 200", 100))

	w.Remove(999)

	assert.Equal(t, 1, w.Len())
	assert.True(t, w.Contains(1))
}

func TestWishlistPreservesInsertionOrder(t *testing.T) {
	w := NewWishlist()
	w.Add(watch(3, "C", 30))
	w.Add(watch(1, "A", 10))
	w.Add(watch(2, "B", 20))
	w.Remove(1)

	entries := w.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, uint(3), entries[0].ProductID)
	assert.Equal(t, uint(2), entries[1].ProductID)
}

func TestNewWishlistFromEntriesDropsDuplicates(t *testing.T) {
	w := NewWishlistFromEntries([]WishlistEntry{
		{ProductID: 1, Name: "Diver 200"},
		{ProductID: 2, Name: "Field 38"},
		{ProductID: 1, Name: "Diver 200"},
	})

	assert.Equal(t, 2, w.Len())
	assert.True(t, w.Contains(1))
	assert.True(t, w.Contains(2))
}
