package engine

import (
	"testing"

	"github.com/skylark-hq/skylark/internal/models"
	"github.com/stretchr/testify/assert"
)

func menuItem(id, name string, price int) models.MenuItem {
	return models.MenuItem{
		ID:        id,
		Name:      name,
		Category:  "Snacks",
		Price:     price,
		IsVeg:     true,
		PrepTime:  models.PrepQuick,
		Available: true,
	}
}

func TestAddToCart(t *testing.T) {
	chai := menuItem("chai", "Masala Chai", 30)
	toast := menuItem("toast", "Butter Toast", 50)

	cart := AddToCart(nil, chai)
	assert.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)

	cart = AddToCart(cart, chai)
	assert.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)

	cart = AddToCart(cart, toast)
	assert.Len(t, cart, 2)
	assert.Equal(t, "toast", cart[1].ID)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestAddToCartDoesNotMutatePrior(t *testing.T) {
	chai := menuItem("chai", "Masala Chai", 30)
	before := AddToCart(nil, chai)

	after := AddToCart(before, chai)

	assert.Equal(t, 1, before[0].Quantity)
	assert.Equal(t, 2, after[0].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	chai := menuItem("chai", "Masala Chai", 30)
	cart := AddToCart(AddToCart(AddToCart(nil, chai), chai), chai)

	tests := []struct {
		name      string
		itemID    string
		removeAll bool
		wantLen   int
		wantQty   int
	}{
		{name: "decrement", itemID: "chai", removeAll: false, wantLen: 1, wantQty: 2},
		{name: "remove all", itemID: "chai", removeAll: true, wantLen: 0},
		{name: "unknown id is a no-op", itemID: "nope", removeAll: false, wantLen: 1, wantQty: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveFromCart(cart, tt.itemID, tt.removeAll)
			assert.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantQty, got[0].Quantity)
			}
		})
	}
}

func TestRemoveFromCartDeletesAtQuantityOne(t *testing.T) {
	chai := menuItem("chai", "Masala Chai", 30)
	cart := AddToCart(nil, chai)

	got := RemoveFromCart(cart, "chai", false)
	assert.Empty(t, got)
}

func TestUpdateQuantity(t *testing.T) {
	chai := menuItem("chai", "Masala Chai", 30)
	cart := AddToCart(AddToCart(nil, chai), chai)

	tests := []struct {
		name    string
		delta   int
		wantLen int
		wantQty int
	}{
		{name: "increment", delta: 3, wantLen: 1, wantQty: 5},
		{name: "decrement", delta: -1, wantLen: 1, wantQty: 1},
		{name: "to zero removes", delta: -2, wantLen: 0},
		{name: "below zero removes", delta: -10, wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpdateQuantity(cart, "chai", tt.delta)
			assert.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantQty, got[0].Quantity)
			}
		})
	}
}

func TestCartTotals(t *testing.T) {
	chai := menuItem("chai", "Masala Chai", 30)
	thali := menuItem("thali", "Veg Thali", 180)

	var cart Cart
	assert.Equal(t, 0, CartTotal(cart))
	assert.Equal(t, 0, CartCount(cart))

	cart = AddToCart(cart, chai)
	cart = AddToCart(cart, chai)
	cart = AddToCart(cart, thali)

	assert.Equal(t, 2*30+180, CartTotal(cart))
	assert.Equal(t, 3, CartCount(cart))
}

func TestClearCart(t *testing.T) {
	cart := AddToCart(nil, menuItem("chai", "Masala Chai", 30))
	assert.Empty(t, ClearCart())
	assert.Len(t, cart, 1)
}
