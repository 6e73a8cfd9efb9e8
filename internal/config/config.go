// Package config loads server configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings. Flags in cmd/vinc override these.
type Config struct {
	Addr          string `env:"VINC_ADDR" envDefault:":8080"`
	DBPath        string `env:"VINC_DB" envDefault:"vinc.sqlite3"`
	LogPath       string `env:"VINC_LOG"`
	AdminUser     string `env:"VINC_ADMIN_USER" envDefault:"admin"`
	AdminPassword string `env:"VINC_ADMIN_PASSWORD" envDefault:"admin123"`
}

// FromEnv parses the environment into a Config.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
