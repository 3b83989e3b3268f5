package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "skylark",
	Short: "Order lifecycle and availability engine for the Skylark guesthouse",
	Long: `skylark runs the ordering backend for the Skylark guesthouse and cafe:
menu availability derived from ingredient stock, a kiosk cart, order
placement with prep-time estimates, and the kitchen order lifecycle.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./skylark.yaml)")

	pf := rootCmd.PersistentFlags()
	pf.String("listen-addr", ":8080", "HTTP listen address")
	pf.String("data-dir", "data", "Directory for local order storage and event logs")
	pf.String("env", "development", "Runtime environment (development or production)")
	pf.Bool("kafka-enabled", false, "Publish order events to Kafka")
	pf.String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	pf.String("event-topic", "skylark.orders", "Topic order events are published to")
	pf.Bool("postgres-enabled", false, "Persist orders in Postgres instead of the local store")
	pf.String("database-url", "", "Postgres connection string")
	pf.String("output-destination", "local", "Export destination (local or s3)")
	pf.String("output-folder", "exports", "Folder or object prefix for exports")
	pf.Int("seed", 42, "Random seed for the simulator")
	pf.Int("sim-orders", 20, "Number of orders the simulator places")
	pf.Bool("veg-only", false, "Restrict simulated orders to vegetarian items")

	bindings := map[string]string{
		"listen_addr":        "listen-addr",
		"data_dir":           "data-dir",
		"env":                "env",
		"kafka_enabled":      "kafka-enabled",
		"kafka_broker_list":  "kafka-broker-list",
		"event_topic":        "event-topic",
		"postgres_enabled":   "postgres-enabled",
		"database_url":       "database-url",
		"output_destination": "output-destination",
		"output_folder":      "output-folder",
		"seed":               "seed",
		"sim_orders":         "sim-orders",
		"veg_only":           "veg-only",
	}
	for key, flag := range bindings {
		cobra.CheckErr(viper.BindPFlag(key, pf.Lookup(flag)))
	}
}

func initConfig() {
	if cfgFile != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", cfgFile)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
