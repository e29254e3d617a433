package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Port             string `mapstructure:"PORT"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	DiagnosticsPort  string `mapstructure:"DIAGNOSTICS_PORT"`
	OrderEventsURL   string `mapstructure:"ORDER_EVENTS_URL"`
	OrderEventsQueue string `mapstructure:"ORDER_EVENTS_QUEUE"`
	ChannelPoolSize  int    `mapstructure:"CHANNEL_POOL_SIZE"`
}

// LoadConfig reads an optional .env file from path, then lets the environment
// override each key.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("PORT", "3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DIAGNOSTICS_PORT", "9090")
	v.SetDefault("ORDER_EVENTS_URL", "")
	v.SetDefault("ORDER_EVENTS_QUEUE", "order_events")
	v.SetDefault("CHANNEL_POOL_SIZE", 10)

	v.AutomaticEnv()

	envFile := filepath.Join(path, ".env")
	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// OrderEventsEnabled reports whether POST /orders should publish notifications.
func (c *Config) OrderEventsEnabled() bool {
	return c.OrderEventsURL != ""
}
