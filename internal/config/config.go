package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// DevJWTSecret is the signing key used when JWT_SECRET is unset. It is only
// accepted outside release mode.
const DevJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port       string        `env:"PORT" envDefault:"8080"`
	GinMode    string        `env:"GIN_MODE" envDefault:"release"`
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret  string        `env:"JWT_SECRET" envDefault:"dev-secret-change-in-production"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"60m"`
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.GinMode == gin.ReleaseMode && (cfg.JWTSecret == "" || cfg.JWTSecret == DevJWTSecret) {
		return nil, errors.New("JWT_SECRET must be set in release mode")
	}
	return &cfg, nil
}
