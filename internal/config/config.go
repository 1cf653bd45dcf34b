package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
// Загружается один раз при старте процесса и дальше не меняется
type Config struct {
	Address      string `env:"ADDRESS" envDefault:":8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"notekeeper.db"`
	LogLevel     int    `env:"LOG_LEVEL" envDefault:"0"`
	BcryptCost   int    `env:"BCRYPT_COST" envDefault:"10"`
	JWT          JWT    `envPrefix:"JWT_"`
}

// JWT contains JWT-related parameters.
type JWT struct {
	Secret         string        `env:"SECRET,notEmpty"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
