package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=4200"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Token   TokenConfig
	Redis   RedisConfig
}

// BackendConfig locates the REST backend every data operation is proxied to.
type BackendConfig struct {
	URL            string `env:"BACKEND_URL,     default=http://localhost:8080"`
	TimeoutSeconds int    `env:"BACKEND_TIMEOUT, default=10"`
}

// Timeout returns the backend transport timeout. Timeouts live at this layer
// only; the session subsystem sees them as the connectivity fault.
func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TokenConfig controls where and under which key the bearer token persists
// between runs.
type TokenConfig struct {
	// Key is the constant storage key the raw token is stored under.
	Key string `env:"TOKEN_KEY,     default=auth_token"`
	// Driver selects the vault backend: "file" or "redis".
	Driver string `env:"TOKEN_DRIVER,  default=file"`
	// File is the path of the file vault (created 0600 on first login).
	File string `env:"TOKEN_FILE,    default=.smartlogi/session.json"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
