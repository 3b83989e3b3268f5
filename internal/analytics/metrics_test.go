package analytics

import (
	"testing"

	"github.com/skylark-hq/skylark/internal/models"
	"github.com/stretchr/testify/assert"
)

func order(status models.OrderStatus, total, estimate int, items ...models.CartItem) models.Order {
	return models.Order{Status: status, TotalAmount: total, EstimatedTime: estimate, Items: items}
}

func line(name string, qty int) models.CartItem {
	return models.CartItem{MenuItem: models.MenuItem{Name: name}, Quantity: qty}
}

func TestComputeEmpty(t *testing.T) {
	got := Compute(nil)

	assert.Equal(t, 0, got.TotalOrders)
	assert.Equal(t, 0, got.TotalRevenue)
	assert.Zero(t, got.AvgOrderValue)
	assert.Zero(t, got.AvgEstimatedTime)
	assert.Empty(t, got.PopularItems)
}

func TestCompute(t *testing.T) {
	orders := []models.Order{
		order(models.StatusCompleted, 360, 20, line("Veg Thali", 2)),
		order(models.StatusPending, 80, 20, line("Masala Omelette", 1)),
		order(models.StatusPreparing, 60, 10, line("Masala Chai", 2)),
		order(models.StatusCancelled, 500, 30, line("Chicken Biryani", 2)),
	}

	got := Compute(orders)

	assert.Equal(t, 4, got.TotalOrders)
	assert.Equal(t, 1, got.CompletedOrders)
	assert.Equal(t, 1, got.CancelledOrders)
	assert.Equal(t, 2, got.ActiveOrders)

	// cancelled orders carry no revenue but still count items and estimates
	assert.Equal(t, 360+80+60, got.TotalRevenue)
	assert.InDelta(t, 500.0/3.0, got.AvgOrderValue, 0.001)
	assert.InDelta(t, 20.0, got.AvgEstimatedTime, 0.001)

	assert.Equal(t, 2, got.PopularItems["Veg Thali"])
	assert.Equal(t, 2, got.PopularItems["Chicken Biryani"])
	assert.Equal(t, 2, got.PopularItems["Masala Chai"])
	assert.Equal(t, 1, got.PopularItems["Masala Omelette"])
}
