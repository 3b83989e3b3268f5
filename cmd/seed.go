package cmd

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schollz/progressbar/v3"
	"github.com/skylark-hq/skylark/internal/catalog"
	"github.com/skylark-hq/skylark/internal/models"
	"github.com/skylark-hq/skylark/internal/repositories/postgres"
	"github.com/spf13/cobra"
)

const seedBatchSize = 25

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the standard menu catalog into Postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("seed requires database_url to be set")
		}

		ctx := cmd.Context()
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		defer pool.Close()

		repo := postgres.NewMenuItemRepository(pool)
		existing, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if existing > 0 {
			fmt.Printf("Replacing %d existing menu items\n", existing)
			if err := repo.DeleteAll(ctx); err != nil {
				return err
			}
		}

		menu := catalog.Menu()
		bar := progressbar.Default(int64(len(menu)), "seeding menu")
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

		fmt.Printf("Seeded %d menu items\n", len(menu))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
