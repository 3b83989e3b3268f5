package analytics

import "github.com/skylark-hq/skylark/internal/models"

// SalesMetrics summarizes the order book for the admin dashboard. Revenue
// excludes cancelled orders.
type SalesMetrics struct {
	TotalOrders      int            `json:"total_orders"`
	TotalRevenue     int            `json:"total_revenue"`
	AvgOrderValue    float64        `json:"avg_order_value"`
	CompletedOrders  int            `json:"completed_orders"`
	CancelledOrders  int            `json:"cancelled_orders"`
	ActiveOrders     int            `json:"active_orders"` // pending, preparing or ready
	AvgEstimatedTime float64        `json:"avg_estimated_time"`
	PopularItems     map[string]int `json:"popular_items"` // item name -> units ordered
}

func Compute(orders []models.Order) SalesMetrics {
	metrics := SalesMetrics{
		TotalOrders:  len(orders),
		PopularItems: make(map[string]int),
	}

	billed := 0
	totalEstimate := 0
	for _, order := range orders {
		switch order.Status {
		case models.StatusCompleted:
			metrics.CompletedOrders++
		case models.StatusCancelled:
			metrics.CancelledOrders++
		default:
			metrics.ActiveOrders++
		}

		if order.Status != models.StatusCancelled {
			metrics.TotalRevenue += order.TotalAmount
			billed++
		}
		totalEstimate += order.EstimatedTime

		for _, item := range order.Items {
			metrics.PopularItems[item.Name] += item.Quantity
		}
	}

	if billed > 0 {
		metrics.AvgOrderValue = float64(metrics.TotalRevenue) / float64(billed)
	}
	if len(orders) > 0 {
		metrics.AvgEstimatedTime = float64(totalEstimate) / float64(len(orders))
	}
	return metrics
}
