package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything read from the environment.
type Config struct {
	Port         string
	Environment  string
	LogLevel     string
	PaymentDelay time.Duration // simulated settlement delay
}

// Load reads configuration from environment variables, with an optional
// .env file for local development.
func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PAYMENT_DELAY_MS", 1500)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine, we fall back to env vars.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:         viper.GetString("PORT"),
		Environment:  viper.GetString("ENVIRONMENT"),
		LogLevel:     viper.GetString("LOG_LEVEL"),
		PaymentDelay: time.Duration(viper.GetInt("PAYMENT_DELAY_MS")) * time.Millisecond,
	}
	if cfg.PaymentDelay < 0 {
		return nil, fmt.Errorf("PAYMENT_DELAY_MS must not be negative")
	}
	return cfg, nil
}
