package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skylark-hq/skylark/internal/models"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Save replaces the stored order list wholesale inside one transaction,
// matching the load/save contract the engine expects.
func (r *OrderRepository) Save(ctx context.Context, orders []models.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE orders"); err != nil {
		return fmt.Errorf("failed to clear orders: %w", err)
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"orders"},
		[]string{
			"id", "customer_name", "customer_info", "items", "status",
			"total_amount", "estimated_time", "placed_at",
		},
		pgx.CopyFromSlice(len(orders), func(i int) ([]interface{}, error) {
			info, err := json.Marshal(orders[i].CustomerInfo)
			if err != nil {
				return nil, err
			}
			items, err := json.Marshal(orders[i].Items)
			if err != nil {
				return nil, err
			}
			return []interface{}{
				orders[i].ID,
				orders[i].CustomerName,
				info,
				items,
				string(orders[i].Status),
				orders[i].TotalAmount,
				orders[i].EstimatedTime,
				orders[i].Timestamp.Time,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy orders: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) Load(ctx context.Context) ([]models.Order, error) {
	query := `
        SELECT id, customer_name, customer_info, items, status,
               total_amount, estimated_time, placed_at
        FROM orders
        ORDER BY placed_at DESC
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var (
			order    models.Order
			info     []byte
			items    []byte
			status   string
			placedAt = &order.Timestamp.Time
		)
		err := rows.Scan(
			&order.ID,
			&order.CustomerName,
			&info,
			&items,
			&status,
			&order.TotalAmount,
			&order.EstimatedTime,
			placedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(info, &order.CustomerInfo); err != nil {
			return nil, fmt.Errorf("failed to decode customer info for order %s: %w", order.ID, err)
		}
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, fmt.Errorf("failed to decode items for order %s: %w", order.ID, err)
		}
		order.Status = models.OrderStatus(status)
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}
