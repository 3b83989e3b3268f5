package engine

import "github.com/skylark-hq/skylark/internal/models"

// Cart is an ordered list of (menu item, quantity) entries. All mutation
// functions are pure: they take the prior cart and return a fresh slice, so a
// caller holding the old value never observes a partial update.
type Cart []models.CartItem

// AddToCart increments the quantity of an existing entry for item.ID, or
// appends a new entry with quantity 1. Availability is not checked here; the
// owning Engine guards adds against unavailable items.
func AddToCart(cart Cart, item models.MenuItem) Cart {
	next := make(Cart, 0, len(cart)+1)
	found := false
	for _, entry := range cart {
		if entry.ID == item.ID {
			entry.Quantity++
			found = true
		}
		next = append(next, entry)
	}
	if !found {
		next = append(next, models.CartItem{MenuItem: item, Quantity: 1})
	}
	return next
}

// RemoveFromCart decrements the entry's quantity, deleting it when removeAll
// is set or the quantity would drop below 1.
func RemoveFromCart(cart Cart, itemID string, removeAll bool) Cart {
	next := make(Cart, 0, len(cart))
	for _, entry := range cart {
		if entry.ID != itemID {
			next = append(next, entry)
			continue
		}
		if removeAll || entry.Quantity <= 1 {
			continue
		}
		entry.Quantity--
		next = append(next, entry)
	}
	return next
}

// UpdateQuantity adds delta to the entry's quantity, clamped at a floor of 0;
// an entry reaching 0 is removed. Unknown ids are a no-op.
func UpdateQuantity(cart Cart, itemID string, delta int) Cart {
	next := make(Cart, 0, len(cart))
	for _, entry := range cart {
		if entry.ID == itemID {
			entry.Quantity += delta
			if entry.Quantity <= 0 {
				continue
			}
		}
		next = append(next, entry)
	}
	return next
}

func ClearCart() Cart {
	return Cart{}
}

// CartTotal is the exact integer sum of price * quantity over all entries.
func CartTotal(cart Cart) int {
	total := 0
	for _, entry := range cart {
		total += entry.Price * entry.Quantity
	}
	return total
}

// CartCount is the total number of units in the cart (sum of quantities).
func CartCount(cart Cart) int {
	count := 0
	for _, entry := range cart {
		count += entry.Quantity
	}
	return count
}
