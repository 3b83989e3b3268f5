package models

// CartItem is a menu item plus the quantity ordered. A cart holds at most one
// entry per menu item id, and a present entry always has Quantity >= 1.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}
