// Package localstore persists the order list as a JSON document under a
// fixed key in a directory of key files, mirroring the key-value contract the
// ordering app has always used.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skylark-hq/skylark/internal/models"
)

const ordersKey = "skylark_orders"

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load returns the persisted order list, or an empty list when nothing has
// been saved yet.
func (s *Store) Load(_ context.Context) ([]models.Order, error) {
	data, err := os.ReadFile(s.keyPath(ordersKey))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read order store: %w", err)
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode order store: %w", err)
	}
	return orders, nil
}

// Save replaces the stored order list. The write goes through a temp file and
// rename so a crash mid-write cannot corrupt the previous list.
func (s *Store) Save(_ context.Context, orders []models.Order) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to encode order list: %w", err)
	}

	tmp := s.keyPath(ordersKey) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write order store: %w", err)
	}
	if err := os.Rename(tmp, s.keyPath(ordersKey)); err != nil {
		return fmt.Errorf("failed to replace order store: %w", err)
	}
	return nil
}
