package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvStore       = "DHYAN_STORE"
	EnvDBPath      = "DHYAN_DB_PATH"
	EnvPostgresDSN = "DHYAN_POSTGRES_DSN"
	EnvLogLevel    = "DHYAN_LOG_LEVEL"

	defaultEnvFile = ".env"
)

type Config struct {
	Store       string
	DBPath      string
	PostgresDSN string
	LogLevel    string
}

// LoadConfig reads an optional dotenv file and the DHYAN_* environment.
// An explicit envFile must exist; the implicit ./.env may be absent.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file %q: %w", envFile, err)
		}
	} else if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file %q: %w", defaultEnvFile, err)
	}

	cfg := Config{
		Store:       strings.ToLower(strings.TrimSpace(os.Getenv(EnvStore))),
		DBPath:      strings.TrimSpace(os.Getenv(EnvDBPath)),
		PostgresDSN: strings.TrimSpace(os.Getenv(EnvPostgresDSN)),
		LogLevel:    strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))),
	}
	if cfg.Store == "" {
		cfg.Store = "sqlite"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	return cfg, nil
}

// ResolveDBPath falls back to the per-user default location.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	return DefaultDBPath()
}
