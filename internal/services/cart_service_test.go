package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilz-store/internal/models"
)

func testProduct(id int, price float64, stock int) models.Product {
	return models.Product{
		ID:         id,
		Name:       fmt.Sprintf("product-%d", id),
		Price:      price,
		Images:     []string{"x.png"},
		Category:   "test",
		Rating:     4,
		StockCount: stock,
	}
}

// manualTotal recomputes what TotalPrice must always equal.
func manualTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func TestAddToCartAccumulatesAndClamps(t *testing.T) {
	cart := NewCartService(nil)
	p1 := testProduct(1, 100, 4)

	cart.AddToCart(p1, 2)
	cart.AddToCart(p1, 3)

	items := cart.Items()
	require.Len(t, items, 1, "same product must accumulate into one item")
	assert.Equal(t, 4, items[0].Quantity, "quantity clamped to stock")
	assert.Equal(t, 4*p1.Price, cart.TotalPrice())
}

func TestAddToCartClampsNewItem(t *testing.T) {
	cart := NewCartService(nil)

	cart.AddToCart(testProduct(1, 50, 10), 0)
	cart.AddToCart(testProduct(2, 50, 3), 99)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity, "below one clamps to one")
	assert.Equal(t, 3, items[1].Quantity, "above stock clamps to stock")
}

func TestAddToCartZeroStock(t *testing.T) {
	cart := NewCartService(nil)

	cart.AddToCart(testProduct(1, 50, 0), 1)

	assert.Empty(t, cart.Items(), "out-of-stock product cannot be added")
}

func TestUpdateQuantity(t *testing.T) {
	cart := NewCartService(nil)
	cart.AddToCart(testProduct(1, 10, 5), 3)

	t.Run("set directly", func(t *testing.T) {
		cart.UpdateQuantity(1, 2)
		assert.Equal(t, 2, cart.Items()[0].Quantity)
	})

	t.Run("clamps at one, never removes", func(t *testing.T) {
		cart.UpdateQuantity(1, 0)
		require.Len(t, cart.Items(), 1)
		assert.Equal(t, 1, cart.Items()[0].Quantity)

		cart.UpdateQuantity(1, -5)
		assert.Equal(t, 1, cart.Items()[0].Quantity)
	})

	t.Run("clamps to stock", func(t *testing.T) {
		cart.UpdateQuantity(1, 50)
		assert.Equal(t, 5, cart.Items()[0].Quantity)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		before := cart.Snapshot()
		cart.UpdateQuantity(42, 3)
		assert.Equal(t, before, cart.Snapshot())
	})
}

func TestRemoveFromCart(t *testing.T) {
	cart := NewCartService(nil)
	cart.AddToCart(testProduct(1, 10, 5), 1)
	cart.AddToCart(testProduct(2, 20, 5), 1)

	cart.RemoveFromCart(1)
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Product.ID)

	// Absent id is a no-op, not a fault.
	cart.RemoveFromCart(999)
	assert.Len(t, cart.Items(), 1)
}

func TestClearCart(t *testing.T) {
	cart := NewCartService(nil)
	cart.AddToCart(testProduct(1, 10, 5), 2)
	cart.AddToCart(testProduct(2, 20, 5), 1)

	cart.ClearCart()

	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.TotalPrice())
	assert.Zero(t, cart.ItemCount())
}

func TestTotalPriceNeverDrifts(t *testing.T) {
	cart := NewCartService(nil)
	p1 := testProduct(1, 450, 15)
	p2 := testProduct(2, 120, 30)
	p3 := testProduct(3, 280, 12)

	steps := []func(){
		func() { cart.AddToCart(p1, 2) },
		func() { cart.AddToCart(p2, 1) },
		func() { cart.AddToCart(p1, 5) },
		func() { cart.UpdateQuantity(2, 4) },
		func() { cart.AddToCart(p3, 3) },
		func() { cart.RemoveFromCart(1) },
		func() { cart.UpdateQuantity(3, 0) },
		func() { cart.ClearCart() },
	}
	for i, step := range steps {
		step()
		snap := cart.Snapshot()
		assert.Equal(t, manualTotal(snap.Items), snap.TotalPrice, "after step %d", i)
	}
}

func TestSubscribeDeliversSynchronously(t *testing.T) {
	cart := NewCartService(nil)
	var got []models.CartSnapshot
	unsubscribe := cart.Subscribe(func(snap models.CartSnapshot) {
		got = append(got, snap)
	})

	cart.AddToCart(testProduct(1, 100, 5), 2)

	// Delivery happens before the mutating call returns.
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ItemCount)
	assert.Equal(t, 200.0, got[0].TotalPrice)

	cart.UpdateQuantity(1, 3)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[1].ItemCount)

	unsubscribe()
	cart.ClearCart()
	assert.Len(t, got, 2, "unsubscribed observers receive nothing")
}

func TestSubscriberMayReadCart(t *testing.T) {
	cart := NewCartService(nil)
	var seen int
	cart.Subscribe(func(models.CartSnapshot) {
		// Re-reading from inside a notification must not deadlock.
		seen = cart.ItemCount()
	})

	cart.AddToCart(testProduct(1, 10, 9), 4)
	assert.Equal(t, 4, seen)
}

func TestMultipleSubscribers(t *testing.T) {
	cart := NewCartService(nil)
	var a, b int
	cart.Subscribe(func(snap models.CartSnapshot) { a = snap.ItemCount })
	cart.Subscribe(func(snap models.CartSnapshot) { b = snap.ItemCount })

	cart.AddToCart(testProduct(1, 10, 9), 2)

	assert.Equal(t, 2, a)
	assert.Equal(t, 2, b)
}
