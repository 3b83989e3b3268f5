package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schollz/progressbar/v3"
	"github.com/skylark-hq/skylark/internal/catalog"
	"github.com/skylark-hq/skylark/internal/csvcodec"
	"github.com/skylark-hq/skylark/internal/engine"
	"github.com/skylark-hq/skylark/internal/models"
	"github.com/skylark-hq/skylark/internal/repositories/postgres"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import menu or inventory data from CSV",
}

var importMenuCmd = &cobra.Command{
	Use:   "menu <file>",
	Short: "Apply a menu CSV over the standard catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		current := engine.ResolveAvailability(catalog.Menu(), catalog.Ingredients(), catalog.Recipes())
		updated, err := csvcodec.ImportMenu(current, string(raw))
		if err != nil {
			return fmt.Errorf("import failed, nothing applied: %w", err)
		}

		if cfg.PostgresEnabled {
			return storeMenu(cmd, cfg, updated)
		}

		// without a database the merged menu is written back out so the
		// result of the edit can be inspected and re-imported
		bar := progressbar.Default(int64(len(updated)), "applying rows")
		_ = bar.Add(len(updated))
		path := filepath.Join(cfg.DataDir, "menu.csv")
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(csvcodec.ExportMenu(updated)), 0o644); err != nil {
			return err
		}
		fmt.Printf("Imported %d menu items to %s\n", len(updated), path)
		return nil
	},
}

func storeMenu(cmd *cobra.Command, cfg *models.Config, menu []models.MenuItem) error {
	ctx := cmd.Context()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	repo := postgres.NewMenuItemRepository(pool)
	if err := repo.DeleteAll(ctx); err != nil {
		return err
	}

	bar := progressbar.Default(int64(len(menu)), "applying rows")
	for start := 0; start < len(menu); start += seedBatchSize {
		end := start + seedBatchSize
		if end > len(menu) {
			end = len(menu)
		}
		batch := make([]*models.MenuItem, 0, end-start)
		for i := start; i < end; i++ {
			item := menu[i]
			batch = append(batch, &item)
		}
		if err := repo.BulkCreate(ctx, batch); err != nil {
			return err
		}
		_ = bar.Add(len(batch))
	}

	fmt.Printf("Imported %d menu items into postgres\n", len(menu))
	return nil
}

var importInventoryCmd = &cobra.Command{
	Use:   "inventory <file>",
	Short: "Normalize an inventory CSV",
	Long: `inventory parses a stock-count CSV, fills in defaults for missing
columns and writes the normalized sheet into the data directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		items, err := csvcodec.ImportInventory(string(raw))
		if err != nil {
			return fmt.Errorf("import failed, nothing applied: %w", err)
		}

		bar := progressbar.Default(int64(len(items)), "applying rows")
		_ = bar.Add(len(items))

		path := filepath.Join(cfg.DataDir, "inventory.csv")
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(csvcodec.ExportInventory(items)), 0o644); err != nil {
			return err
		}
		fmt.Printf("Imported %d inventory items to %s\n", len(items), path)
		return nil
	},
}

func init() {
	importCmd.AddCommand(importMenuCmd)
	importCmd.AddCommand(importInventoryCmd)
	rootCmd.AddCommand(importCmd)
}
