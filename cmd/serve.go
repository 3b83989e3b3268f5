package cmd

import (
	"github.com/skylark-hq/skylark/internal/api"
	"github.com/skylark-hq/skylark/internal/models"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ordering HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		logger, err := newLogger(cfg.Env)
		if err != nil {
			return err
		}
		defer logger.Sync()

		eng, cleanup, err := buildEngine(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		logger.Infow("starting skylark",
			"guesthouse", cfg.GuesthouseName,
			"env", cfg.Env,
			"kafka_enabled", cfg.KafkaEnabled,
			"postgres_enabled", cfg.PostgresEnabled,
		)

		app := api.New(eng, logger, cfg.ListenAddr)
		return app.Run(app.Mount())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
