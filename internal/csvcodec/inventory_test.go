package csvcodec

import (
	"strings"
	"testing"

	"github.com/skylark-hq/skylark/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportInventory(t *testing.T) {
	items := []models.InventoryItem{
		{
			ID:       "bed-01",
			Name:     "Double Bedsheet",
			Quantity: 12,
			Unit:     "pcs",
			Area:     models.AreaRooms,
			Category: "Linen",
			Cost:     450,
			Supplier: "Sharma Textiles",
			Status:   models.InventoryGood,
		},
	}

	got := ExportInventory(items)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Name,Quantity,Unit,Area,Category,Cost,Supplier,Status", lines[0])
	assert.Equal(t, `bed-01,"Double Bedsheet",12,"pcs",Rooms,"Linen",450,"Sharma Textiles",Good`, lines[1])
}

func TestImportInventory(t *testing.T) {
	csvText := strings.Join([]string{
		"ID,Name,Quantity,Unit,Area,Category,Cost,Supplier,Status",
		`bed-01,"Double Bedsheet",12,"pcs",Rooms,"Linen",450,"Sharma Textiles",Good`,
		`,"Steel Kadai",3,,,,,"",Damaged`,
	}, "\n")

	items, err := ImportInventory(csvText)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "bed-01", items[0].ID)
	assert.Equal(t, 12, items[0].Quantity)
	assert.Equal(t, models.AreaRooms, items[0].Area)

	// missing fields fall back to defaults, including a generated id
	assert.NotEmpty(t, items[1].ID)
	assert.Equal(t, "pcs", items[1].Unit)
	assert.Equal(t, models.AreaKitchen, items[1].Area)
	assert.Equal(t, "General", items[1].Category)
	assert.Equal(t, models.InventoryDamaged, items[1].Status)
	assert.Equal(t, 5, items[1].MinStock)
}

func TestImportInventoryHeaderSubstrings(t *testing.T) {
	csvText := strings.Join([]string{
		"Item Name,Stock Quantity,Unit Cost",
		`"Plastic Chair",24,350.50`,
	}, "\n")

	items, err := ImportInventory(csvText)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Plastic Chair", items[0].Name)
	assert.Equal(t, 24, items[0].Quantity)
	assert.Equal(t, 350, items[0].Cost)
}

func TestImportInventoryErrors(t *testing.T) {
	_, err := ImportInventory("")
	assert.ErrorIs(t, err, ErrNoData)

	_, err = ImportInventory("Quantity,Cost\n3,100")
	assert.ErrorIs(t, err, ErrMissingColumns)

	// rows without a name never make it into the list
	_, err = ImportInventory("Name,Quantity\n\"\",3")
	assert.ErrorIs(t, err, ErrNoData)
}
