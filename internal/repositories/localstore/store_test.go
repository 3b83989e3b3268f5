package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/skylark-hq/skylark/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrders() []models.Order {
	placed := time.Date(2024, 3, 18, 12, 30, 0, 0, time.UTC)
	return []models.Order{
		{
			ID:           "order-2",
			CustomerName: "Asha",
			CustomerInfo: models.CustomerInfo{Name: "Asha", Phone: "9876543210", ServiceType: models.ServiceDineIn, TableNumber: "4"},
			Items: []models.CartItem{
				{MenuItem: models.MenuItem{ID: "thali", Name: "Veg Thali", Price: 180, PrepTime: models.PrepMedium, IsVeg: true}, Quantity: 2},
			},
			Status:        models.StatusPreparing,
			TotalAmount:   360,
			Timestamp:     models.NewMillis(placed.Add(time.Hour)),
			EstimatedTime: 20,
		},
		{
			ID:           "order-1",
			CustomerName: "Ravi",
			CustomerInfo: models.CustomerInfo{Name: "Ravi", Phone: "9000000000", ServiceType: models.ServiceTakeaway},
			Status:       models.StatusCompleted,
			TotalAmount:  30,
			Timestamp:    models.NewMillis(placed),
		},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()
	orders := sampleOrders()

	require.NoError(t, store.Save(ctx, orders))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, orders[0].ID, got[0].ID)
	assert.Equal(t, orders[0].CustomerInfo, got[0].CustomerInfo)
	assert.Equal(t, orders[0].Items, got[0].Items)
	assert.Equal(t, orders[0].Status, got[0].Status)
	// timestamps persist as unix milliseconds
	assert.Equal(t, orders[0].Timestamp.UnixMilli(), got[0].Timestamp.UnixMilli())
}

func TestStoreLoadBeforeFirstSave(t *testing.T) {
	store := New(t.TempDir())

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStoreSaveReplacesPrevious(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleOrders()))
	require.NoError(t, store.Save(ctx, nil))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStoreUsesStableKey(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, store.Save(context.Background(), sampleOrders()))

	_, err := os.Stat(filepath.Join(dir, "skylark_orders.json"))
	assert.NoError(t, err)
}

func TestStoreLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skylark_orders.json"), []byte("{not json"), 0o644))

	_, err := New(dir).Load(context.Background())
	assert.Error(t, err)
}
