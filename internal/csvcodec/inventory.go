package csvcodec

import (
	"strconv"
	"strings"
	"time"

	"github.com/lucsky/cuid"
	"github.com/skylark-hq/skylark/internal/models"
)

var inventoryHeaders = []string{"ID", "Name", "Quantity", "Unit", "Area", "Category", "Cost", "Supplier", "Status"}

// ExportInventory renders facilities inventory as CSV. Purchase date and
// minimum stock are bookkeeping fields and are not part of the exchange
// format, so the round trip is intentionally lossy for them.
func ExportInventory(items []models.InventoryItem) string {
	var b strings.Builder
	b.WriteString(strings.Join(inventoryHeaders, ","))
	for _, item := range items {
		row := []string{
			item.ID,
			quote(item.Name),
			strconv.Itoa(item.Quantity),
			quote(item.Unit),
			string(item.Area),
			quote(item.Category),
			strconv.Itoa(item.Cost),
			quote(item.Supplier),
			string(item.Status),
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}

// ImportInventory parses inventory CSV into a full replacement list. Headers
// match by substring, so "Item Name" resolves the name column. A name column
// is required; everything else falls back to sensible defaults.
func ImportInventory(csvText string) ([]models.InventoryItem, error) {
	rows, header, err := readAll(csvText)
	if err != nil {
		return nil, err
	}

	idx := func(key string) int {
		for h, i := range header {
			if strings.Contains(h, key) {
				return i
			}
		}
		return -1
	}

	iID := idx("id")
	iName := idx("name")
	iQty := idx("quantity")
	iUnit := idx("unit")
	iArea := idx("area")
	iCat := idx("category")
	iCost := idx("cost")
	iSupp := idx("supplier")
	iStat := idx("status")

	if iName == -1 {
		return nil, ErrMissingColumns
	}

	today := time.Now().Format("2006-01-02")
	items := make([]models.InventoryItem, 0, len(rows))
	for _, row := range rows {
		name := field(row, iName)
		if name == "" {
			continue
		}
		item := models.InventoryItem{
			ID:           field(row, iID),
			Name:         name,
			Quantity:     parseCount(field(row, iQty)),
			Unit:         field(row, iUnit),
			Area:         models.InventoryArea(field(row, iArea)),
			Category:     field(row, iCat),
			PurchaseDate: today,
			Cost:         parseCount(field(row, iCost)),
			Supplier:     field(row, iSupp),
			Status:       models.InventoryStatus(field(row, iStat)),
			MinStock:     5,
		}
		if item.ID == "" {
			item.ID = cuid.Slug()
		}
		if item.Unit == "" {
			item.Unit = "pcs"
		}
		if item.Area == "" {
			item.Area = models.AreaKitchen
		}
		if item.Category == "" {
			item.Category = "General"
		}
		if item.Status == "" {
			item.Status = models.InventoryGood
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, ErrNoData
	}
	return items, nil
}

func parseCount(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return int(n)
}
