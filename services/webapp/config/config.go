package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	APIURL string `mapstructure:"API_URL"`
}

// LoadConfig resolves settings from, in rising priority: defaults, a .env file
// in path, the environment and command line flags.
func LoadConfig(path string, args []string) (*Config, error) {
	flags := pflag.NewFlagSet("webapp", pflag.ContinueOnError)
	flags.String("api-url", "", "base URL of the e-commerce API")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("API_URL", "http://localhost:3000")
	if err := v.BindPFlag("API_URL", flags.Lookup("api-url")); err != nil {
		return nil, err
	}

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
