package main

import (
	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// config holds CLI defaults taken from the environment. Flags win over
// environment values.
type config struct {
	// Log verbosity: debug, info, warn or error.
	LogLevel string `env:"SFA_LOG_LEVEL" envDefault:"info"`
	// Default output path for pack when --out is not given.
	Output string `env:"SFA_OUTPUT"`
}

// loadConfig loads .env (if present) and parses environment variables.
func loadConfig() (config, error) {
	// Ignore a missing .env file.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
