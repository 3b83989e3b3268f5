package repositories

import (
	"context"

	"github.com/skylark-hq/skylark/internal/models"
)

// OrderRepository persists the order list as an opaque whole. The engine
// replaces the stored list after every mutation, so implementations only need
// load and save, not row-level updates.
type OrderRepository interface {
	Load(ctx context.Context) ([]models.Order, error)
	Save(ctx context.Context, orders []models.Order) error
}

// MenuItemRepository is the bulk-load surface used by the seed command.
type MenuItemRepository interface {
	BulkCreate(ctx context.Context, menuItems []*models.MenuItem) error
	GetAll(ctx context.Context) (map[string]*models.MenuItem, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
