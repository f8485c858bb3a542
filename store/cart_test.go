package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoshop/storefront-api/models"
)

func watch(id uint, name string, price float64) models.Product {
	return models.Product{ID: id, Name: name, Price: price, Image: "img", Brand: "Chrono", Stock: 10}
}

func TestCartAddMergesDuplicateProduct(t *testing.T) {
	c := NewCart()
	p := watch(1, "Diver 200", 100)

	require.NoError(t, c.AddItem(p, 1))
	require.NoError(t, c.AddItem(p, 2))

	assert.Equal(t, 1, c.Len(), "duplicate add must merge, not duplicate")
	assert.Equal(t, 3, c.Quantity(1))
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	c := NewCart()
	p := watch(1, "Diver 200", 100)

	assert.ErrorIs(t, c.AddItem(p, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.AddItem(p, -3), ErrInvalidQuantity)
	assert.Equal(t, 0, c.Len())
}

func TestCartTotalsMatchFreshFold(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.AddItem(watch(1, "Diver 200", 100), 2))
	require.NoError(t, c.AddItem(watch(2, "Field 38", 200), 2))
	require.NoError(t, c.AddItem(watch(3, "Dress 40", 59.5), 1))
	c.UpdateQuantity(3, 4)
	c.RemoveItem(2)

	// Recompute from the lines and compare with Totals.
	var wantQty int
	var wantAmount float64
	for _, l := range c.Lines() {
		wantQty += l.Quantity
		wantAmount += l.UnitPrice * float64(l.Quantity)
	}

	got := c.Totals()
	assert.Equal(t, wantQty, got.TotalQuantity)
	assert.InDelta(t, wantAmount, got.TotalAmount, 1e-9)
}

func TestCartCheckoutScenario(t *testing.T) {
	// P1(price=100, sport), P2(price=200, classic):
	// add P1 x1, P2 x2, P1 x1 -> two lines, qty 4, amount 600.
	c := NewCart()
	p1 := watch(1, "Sport GMT", 100)
	p2 := watch(2, "Classic Moonphase", 200)

	require.NoError(t, c.AddItem(p1, 1))
	require.NoError(t, c.AddItem(p2, 2))
	require.NoError(t, c.AddItem(p1, 1))

	require.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.Quantity(1))
	assert.Equal(t, 2, c.Quantity(2))

	totals := c.Totals()
	assert.Equal(t, 4, totals.TotalQuantity)
	assert.InDelta(t, 600.0, totals.TotalAmount, 1e-9)
}

func TestCartRemoveAbsentIsNoOp(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.AddItem(watch(1, "Diver 200", 100), 2))
	before := c.Totals()

	c.RemoveItem(999)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, before, c.Totals())
}

func TestCartUpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantLen  int
		wantQty  int
	}{
		{"positive sets quantity", 5, 1, 5},
		{"zero removes the line", 0, 0, 0},
		{"negative removes the line", -2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCart()
			require.NoError(t, c.AddItem(watch(1, "Diver 200", 100), 2))

			c.UpdateQuantity(1, tt.quantity)

			assert.Equal(t, tt.wantLen, c.Len())
			assert.Equal(t, tt.wantQty, c.Quantity(1))
		})
	}
}

func TestCartUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.AddItem(watch(1, "Diver 200", 100), 2))

	c.UpdateQuantity(42, 7)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Quantity(1))
}

func TestCartClear(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.AddItem(watch(1, "Diver 200", 100), 2))
	require.NoError(t, c.AddItem(watch(2, "Field 38", 200), 1))

	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, CartTotals{}, c.Totals())

	// The cart stays usable after a clear.
	require.NoError(t, c.AddItem(watch(3, "Dress 40", 50), 1))
	assert.Equal(t, 1, c.Len())
}

func TestCartSnapshotCapturedAtAddTime(t *testing.T) {
	c := NewCart()
	p := watch(1, "Diver 200", 100)
	require.NoError(t, c.AddItem(p, 1))

	// A later catalog price change must not touch the captured line.
	p.Price = 250
	require.NoError(t, c.AddItem(p, 1))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.InDelta(t, 100.0, lines[0].UnitPrice, 1e-9)
	assert.InDelta(t, 200.0, c.Totals().TotalAmount, 1e-9)
}

func TestCartRemovePreservesOrderAndIndex(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.AddItem(watch(1, "A", 10), 1))
	require.NoError(t, c.AddItem(watch(2, "B", 20), 1))
	require.NoError(t, c.AddItem(watch(3, "C", 30), 1))

	c.RemoveItem(2)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, uint(1), lines[0].ProductID)
	assert.Equal(t, uint(3), lines[1].ProductID)

	// Index still resolves after the shift.
	c.UpdateQuantity(3, 9)
	assert.Equal(t, 9, c.Quantity(3))
}

func TestNewCartFromLinesMergesDuplicates(t *testing.T) {
	c := NewCartFromLines([]CartLine{
		{ProductID: 1, Name: "Diver 200", UnitPrice: 100, Quantity: 1},
		{ProductID: 2, Name: "Field 38", UnitPrice: 200, Quantity: 2},
		{ProductID: 1, Name: "Diver 200", UnitPrice: 100, Quantity: 2},
	})

	require.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Quantity(1))
	assert.InDelta(t, 700.0, c.Totals().TotalAmount, 1e-9)
}
