// Package config loads the application configuration from environment
// variables, prefixed with ADDRWATCH_, and validates it.
package config

import (
	"time"

	"github.com/gabapcia/addrwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every environment variable read by Load.
const envPrefix = "addrwatch"

// Config carries all tunables for one addrwatch process.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	// Explorer API access. The API key is optional here because watch-list
	// management commands never reach the explorer; the run command fails
	// upstream with a clear API error when the key is missing or wrong.
	ExplorerBaseURL string        `envconfig:"EXPLORER_BASE_URL" default:"https://api.etherscan.io/api" validate:"url"`
	ExplorerAPIKey  string        `envconfig:"EXPLORER_API_KEY"`
	HTTPTimeout     time.Duration `envconfig:"HTTP_TIMEOUT" default:"5s"`
	HTTPRetryMax    int           `envconfig:"HTTP_RETRY_MAX" default:"2" validate:"gte=0"`

	// Per-address fetch retries on top of HTTP-level retries. Zero disables.
	FetchRetryAttempts uint          `envconfig:"FETCH_RETRY_ATTEMPTS" default:"0"`
	FetchRetryDelay    time.Duration `envconfig:"FETCH_RETRY_DELAY" default:"1s"`

	// IncrementalFlush persists the ledger after every changed address
	// instead of once at the end of a cycle.
	IncrementalFlush bool `envconfig:"INCREMENTAL_FLUSH" default:"false"`

	// Storage backend selection: flat files or Redis.
	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"file" validate:"oneof=file redis"`
	WatchlistPath  string `envconfig:"WATCHLIST_PATH" default:"addrs.txt"`
	LedgerPath     string `envconfig:"LEDGER_PATH" default:"latest_txs.txt"`
	RedisAddr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisUsername  string `envconfig:"REDIS_USERNAME"`
	RedisPassword  string `envconfig:"REDIS_PASSWORD"`
	RedisDB        int    `envconfig:"REDIS_DB" default:"0"`

	// WebhookURL switches the notification sink from console to an HTTP
	// endpoint when set.
	WebhookURL string `envconfig:"WEBHOOK_URL" validate:"omitempty,url"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
