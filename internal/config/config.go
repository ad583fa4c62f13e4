package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the API server configuration.
type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"` // postgres | memory
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"navodaya"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	JWTSecret             string `env:"JWT_SECRET" envDefault:"supersecret_change_me"`
	AccessTokenTTLMinutes int    `env:"ACCESS_TOKEN_TTL_MINUTES" envDefault:"60"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// AccessTTL falls back to an hour when the configured value is not positive.
func (c *Config) AccessTTL() time.Duration {
	if c.AccessTokenTTLMinutes <= 0 {
		return 60 * time.Minute
	}
	return time.Duration(c.AccessTokenTTLMinutes) * time.Minute
}

// ClientConfig is read by navctl. BackendURL is resolved once at startup.
type ClientConfig struct {
	BackendURL string `env:"BACKEND_URL" envDefault:"http://localhost:8080"`
	TokenFile  string `env:"NAVCTL_TOKEN_FILE"`
}

func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.TokenFile = filepath.Join(home, ".navctl", "session.env")
	}
	return cfg, nil
}
