package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
}

// Load reads configuration from environment variables (and optional .env file).
// DATABASE_URL and JWT_SECRET have no fallback: the process must not start
// without them.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Unmarshal only decodes keys viper already knows about; env-only keys
	// without a default must be bound explicitly or they stay invisible.
	for _, key := range []string{"PORT", "APP_ENV", "DATABASE_URL", "REDIS_URL", "JWT_SECRET", "JWT_EXPIRATION_HOURS"} {
		_ = viper.BindEnv(key)
	}

	viper.SetDefault("PORT", 3000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 1)

	// Optional .env file for local development; does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL não está definida")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET não está definida")
	}
	return cfg, nil
}
