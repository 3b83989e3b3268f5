package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skylark-hq/skylark/internal/models"
)

type MenuItemRepository struct {
	pool *pgxpool.Pool
}

func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

func (r *MenuItemRepository) BulkCreate(ctx context.Context, menuItems []*models.MenuItem) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"menu_items"},
		[]string{
			"id", "name", "category", "price", "is_veg",
			"prep_time", "available", "description",
		},
		pgx.CopyFromSlice(len(menuItems), func(i int) ([]interface{}, error) {
			return []interface{}{
				menuItems[i].ID,
				menuItems[i].Name,
				menuItems[i].Category,
				menuItems[i].Price,
				menuItems[i].IsVeg,
				string(menuItems[i].PrepTime),
				menuItems[i].Available,
				menuItems[i].Description,
			}, nil
		}),
	)
	return err
}

func (r *MenuItemRepository) GetAll(ctx context.Context) (map[string]*models.MenuItem, error) {
	query := `
        SELECT id, name, category, price, is_veg, prep_time, available, description
        FROM menu_items
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menuItems := make(map[string]*models.MenuItem)
	for rows.Next() {
		menuItem := &models.MenuItem{}
		var prepTime string
		err := rows.Scan(
			&menuItem.ID,
			&menuItem.Name,
			&menuItem.Category,
			&menuItem.Price,
			&menuItem.IsVeg,
			&prepTime,
			&menuItem.Available,
			&menuItem.Description,
		)
		if err != nil {
			return nil, err
		}
		menuItem.PrepTime = models.PrepTier(prepTime)
		menuItems[menuItem.ID] = menuItem
	}
	return menuItems, rows.Err()
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

func (r *MenuItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE menu_items CASCADE")
	return err
}
