package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/skylark-hq/skylark/internal/analytics"
	"github.com/skylark-hq/skylark/internal/catalog"
	"github.com/skylark-hq/skylark/internal/cloudwriter"
	"github.com/skylark-hq/skylark/internal/csvcodec"
	"github.com/skylark-hq/skylark/internal/engine"
	"github.com/skylark-hq/skylark/internal/models"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export menu or order data",
}

var exportMenuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Write the current menu as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		menu := engine.ResolveAvailability(catalog.Menu(), catalog.Ingredients(), catalog.Recipes())
		data := []byte(csvcodec.ExportMenu(menu))

		dest, err := writeExport(cfg, "skylark_menu_data", "csv", data)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d menu items to %s\n", len(menu), dest)
		return nil
	},
}

var exportOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Write persisted orders as a Parquet file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		repo, closeRepo, err := newOrderRepository(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		orders, err := repo.Load(cmd.Context())
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			return fmt.Errorf("no orders to export")
		}

		path := localExportPath(cfg, "skylark_orders", "parquet")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := analytics.WriteOrdersParquet(path, orders); err != nil {
			return err
		}

		dest := path
		if cfg.OutputDestination == "s3" {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			dest, err = uploadExport(cfg, "skylark_orders", "parquet", data)
			if err != nil {
				return err
			}
		}
		fmt.Printf("Exported %d orders to %s\n", len(orders), dest)
		return nil
	},
}

func localExportPath(cfg *models.Config, name, ext string) string {
	return filepath.Join(cfg.OutputFolder, fmt.Sprintf("%s_%s.%s", name, time.Now().Format("2006-01-02"), ext))
}

// writeExport routes a finished export either to the local output folder or
// to the configured S3 bucket.
func writeExport(cfg *models.Config, name, ext string, data []byte) (string, error) {
	if cfg.OutputDestination == "s3" {
		return uploadExport(cfg, name, ext, data)
	}

	path := localExportPath(cfg, name, ext)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func uploadExport(cfg *models.Config, name, ext string, data []byte) (string, error) {
	factory, err := cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
	if err != nil {
		return "", err
	}

	key := cloudwriter.ObjectKey(cfg.OutputFolder, name, ext, time.Now())
	w, err := factory.NewWriter(cfg.CloudStorage.BucketName, key)
	if err != nil {
		return "", err
	}
	if _, err := w.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return fmt.Sprintf("s3://%s/%s", cfg.CloudStorage.BucketName, key), nil
}

func init() {
	exportCmd.AddCommand(exportMenuCmd)
	exportCmd.AddCommand(exportOrdersCmd)
	rootCmd.AddCommand(exportCmd)
}
