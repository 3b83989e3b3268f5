package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type Config struct {
	ListenAddr string `mapstructure:"listen_addr"`
	DataDir    string `mapstructure:"data_dir"`
	Env        string `mapstructure:"env"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	EventTopic      string `mapstructure:"event_topic"`

	PostgresEnabled bool   `mapstructure:"postgres_enabled"`
	DatabaseURL     string `mapstructure:"database_url"`

	OutputDestination string             `mapstructure:"output_destination"` // "local" or "s3"
	OutputFolder      string             `mapstructure:"output_folder"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`

	Seed           int           `mapstructure:"seed"`
	SimOrders      int           `mapstructure:"sim_orders"`
	SimTick        time.Duration `mapstructure:"sim_tick"`
	SimStartDate   time.Time     `mapstructure:"sim_start_date"`
	VegOnly        bool          `mapstructure:"veg_only"`
	GuesthouseName string        `mapstructure:"guesthouse_name"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("skylark")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // environment variables take precedence

	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("data_dir", "data")
	viper.SetDefault("env", "development")
	viper.SetDefault("event_topic", "skylark.orders")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("output_folder", "exports")
	viper.SetDefault("sim_orders", 20)
	viper.SetDefault("sim_tick", "2s")
	viper.SetDefault("guesthouse_name", "Skylark")

	if err := viper.ReadInConfig(); err != nil {
		// a missing config file is fine, flags and defaults still apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
