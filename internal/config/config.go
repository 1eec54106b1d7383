package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds application level configuration loaded from environment
// variables. The signing secret has no default on purpose: a process that
// starts without one would mint tokens nobody else can verify.
type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"3000"`
	JWTSecret  string `env:"JWT_SECRET,required,notEmpty"`
}

// Load builds Config from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
