package models

// Facilities inventory (linen, cookware, furniture); tracked separately from
// kitchen ingredient stock and only touched by the CSV bulk-edit round trip.

type InventoryArea string

const (
	AreaRooms    InventoryArea = "Rooms"
	AreaKitchen  InventoryArea = "Kitchen"
	AreaOpenArea InventoryArea = "Open Area"
)

type InventoryStatus string

const (
	InventoryGood             InventoryStatus = "Good"
	InventoryNeedsReplacement InventoryStatus = "Needs Replacement"
	InventoryDamaged          InventoryStatus = "Damaged"
)

type InventoryItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	Unit         string          `json:"unit"`
	Area         InventoryArea   `json:"area"`
	Category     string          `json:"category"`
	PurchaseDate string          `json:"purchase_date"` // YYYY-MM-DD
	Cost         int             `json:"cost"`
	Supplier     string          `json:"supplier"`
	Status       InventoryStatus `json:"status"`
	MinStock     int             `json:"min_stock"`
}
