package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the settings shared by the accounts and templates services.
type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// DBPath is the service's single-file SQLite database. Each binary
	// applies its own default when unset.
	DBPath string `env:"DB_PATH"`

	// AuthRequired gates the ledger mutation routes behind the bearer
	// token middleware. Off by default; template routes are always gated.
	AuthRequired bool `env:"AUTH_REQUIRED, default=false"`

	Redis RedisConfig
}

// RedisConfig configures the optional idempotency store. An empty Addr
// disables Redis entirely.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// GatewayConfig holds the reverse-proxy gateway settings. Upstream lists are
// comma-separated URLs, one per service replica.
type GatewayConfig struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	AccountsUpstreams  []string `env:"ACCOUNTS_UPSTREAMS,  default=http://localhost:5000"`
	TemplatesUpstreams []string `env:"TEMPLATES_UPSTREAMS, default=http://localhost:5001"`
}

// Load reads service configuration from environment variables using
// go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// LoadGateway reads gateway configuration from environment variables.
func LoadGateway() *GatewayConfig {
	var cfg GatewayConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
