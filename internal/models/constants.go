package models

// PrepTier is the coarse preparation-time bucket assigned to a menu item.
type PrepTier string

const (
	PrepQuick  PrepTier = "Quick"
	PrepMedium PrepTier = "Medium"
	PrepSlow   PrepTier = "Slow"
)

func (p PrepTier) Valid() bool {
	switch p {
	case PrepQuick, PrepMedium, PrepSlow:
		return true
	}
	return false
}

// ServiceType is the fulfilment channel for an order.
type ServiceType string

const (
	ServiceDineIn   ServiceType = "Dine-in"
	ServiceTakeaway ServiceType = "Takeaway"
	ServiceDelivery ServiceType = "Delivery"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceDineIn, ServiceTakeaway, ServiceDelivery:
		return true
	}
	return false
}

// OrderStatus is the lifecycle state of a placed order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IngredientCategory groups raw ingredients on the stock screen.
type IngredientCategory string

const (
	IngredientDairy      IngredientCategory = "Dairy"
	IngredientVegetables IngredientCategory = "Vegetables"
	IngredientProteins   IngredientCategory = "Proteins"
	IngredientPantry     IngredientCategory = "Pantry"
	IngredientBeverages  IngredientCategory = "Beverages"
	IngredientBreads     IngredientCategory = "Breads"
)

// CategoryStay marks room bookings carried on the menu; they need no kitchen prep.
const CategoryStay = "Stay"
