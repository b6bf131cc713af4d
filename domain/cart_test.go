package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func laptop(qty int) CartItem {
	return CartItem{ProductID: "ITEM001", Name: "Laptop Pro 15", Price: 999.99, Quantity: qty}
}

func headphones(qty int) CartItem {
	return CartItem{ProductID: "ITEM002", Name: "Wireless Headphones", Price: 25.00, Quantity: qty}
}

func TestCartAddItem(t *testing.T) {
	t.Run("appends new lines in insertion order", func(t *testing.T) {
		var cart Cart
		cart.AddItem(laptop(1))
		cart.AddItem(headphones(2))

		require.Len(t, cart.Items, 2)
		assert.Equal(t, "ITEM001", cart.Items[0].ProductID)
		assert.Equal(t, "ITEM002", cart.Items[1].ProductID)
		assert.InDelta(t, 1049.99, cart.Total(), 0.001)
	})

	t.Run("merges quantity for an existing product id", func(t *testing.T) {
		var cart Cart
		cart.AddItem(laptop(1))
		cart.AddItem(laptop(2))

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 3, cart.Items[0].Quantity)
		assert.InDelta(t, 2999.97, cart.Total(), 0.001)
	})

	t.Run("ignores non-positive quantity for a new product", func(t *testing.T) {
		var cart Cart
		cart.AddItem(laptop(0))
		cart.AddItem(headphones(-3))

		assert.True(t, cart.IsEmpty())
	})

	t.Run("non-positive quantity still merges into an existing line", func(t *testing.T) {
		var cart Cart
		cart.AddItem(laptop(3))
		cart.AddItem(laptop(-1))

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	t.Run("sets the quantity exactly", func(t *testing.T) {
		var cart Cart
		cart.AddItem(laptop(1))

		ok := cart.UpdateQuantity("ITEM001", 5)
		require.True(t, ok)
		assert.Equal(t, 5, cart.Items[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		var cart Cart
		cart.AddItem(laptop(2))
		cart.AddItem(headphones(1))

		ok := cart.UpdateQuantity("ITEM001", 0)
		require.True(t, ok)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, "ITEM002", cart.Items[0].ProductID)
	})

	t.Run("unknown product reports false", func(t *testing.T) {
		var cart Cart
		cart.AddItem(laptop(1))

		assert.False(t, cart.UpdateQuantity("ITEM999", 2))
		assert.Len(t, cart.Items, 1)
	})
}

func TestCartRemoveItem(t *testing.T) {
	var cart Cart
	cart.AddItem(laptop(1))
	cart.AddItem(headphones(2))

	assert.True(t, cart.RemoveItem("ITEM001"))
	assert.False(t, cart.RemoveItem("ITEM001"))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "ITEM002", cart.Items[0].ProductID)
}

func TestCartClearAndTotal(t *testing.T) {
	var cart Cart
	assert.InDelta(t, 0.0, cart.Total(), 0.001)

	cart.AddItem(laptop(1))
	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.InDelta(t, 0.0, cart.Total(), 0.001)
}

func TestCartClone(t *testing.T) {
	var cart Cart
	cart.AddItem(laptop(1))

	clone := cart.Clone()
	clone.AddItem(laptop(4))

	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 5, clone.Items[0].Quantity)
}
