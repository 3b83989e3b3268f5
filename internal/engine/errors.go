package engine

import "errors"

var (
	ErrEmptyCart          = errors.New("cannot place an order with an empty cart")
	ErrMissingName        = errors.New("customer name is required")
	ErrMissingPhone       = errors.New("customer phone is required")
	ErrMissingTable       = errors.New("table number is required for dine-in orders")
	ErrInvalidService     = errors.New("unknown service type")
	ErrItemNotFound       = errors.New("menu item not found")
	ErrItemUnavailable    = errors.New("menu item is currently unavailable")
	ErrOrderNotFound      = errors.New("order not found")
	ErrIllegalTransition  = errors.New("illegal order status transition")
	ErrInvalidStatus      = errors.New("unknown order status")
	ErrIngredientNotFound = errors.New("ingredient not found")
)
