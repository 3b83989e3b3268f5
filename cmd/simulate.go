package cmd

import (
	"github.com/skylark-hq/skylark/internal/analytics"
	"github.com/skylark-hq/skylark/internal/catalog"
	"github.com/skylark-hq/skylark/internal/engine"
	"github.com/skylark-hq/skylark/internal/events"
	"github.com/skylark-hq/skylark/internal/models"
	"github.com/skylark-hq/skylark/internal/simulator"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Place random orders and walk them through the kitchen lifecycle",
	Long: `simulate seeds the engine with the standard catalog, places a batch of
randomized orders and advances each one through preparing, ready and
completed (with the occasional cancellation). Events go to Kafka when
enabled, otherwise to stdout.`,
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

		eng := engine.New(catalog.Menu(), catalog.Ingredients(), catalog.Recipes(), logger)

		repo, closeRepo, err := newOrderRepository(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeRepo()
		if err := eng.AttachRepository(cmd.Context(), repo); err != nil {
			return err
		}

		var sink events.Sink = &events.ConsoleSink{}
		if cfg.KafkaEnabled {
			sink, err = events.NewKafkaSink(cfg.KafkaBrokerList, logger)
			if err != nil {
				return err
			}
		}
		defer sink.Close()
		eng.AttachSink(sink, cfg.EventTopic)

		if err := simulator.New(eng, cfg, logger).Run(cmd.Context()); err != nil {
			return err
		}

		metrics := analytics.Compute(eng.Orders())
		logger.Infow("simulation finished",
			"orders", metrics.TotalOrders,
			"completed", metrics.CompletedOrders,
			"cancelled", metrics.CancelledOrders,
			"revenue", metrics.TotalRevenue,
			"avg_order_value", metrics.AvgOrderValue,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}
